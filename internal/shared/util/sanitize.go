package util

import (
	"errors"
	"strings"
)

// SanitizeFileSuffix makes a temp file suffix safe for os.CreateTemp: path
// separators are replaced and traversal patterns rejected.
func SanitizeFileSuffix(suffix string) (string, error) {
	if strings.Contains(suffix, "..") {
		return "", errors.New("invalid file suffix")
	}
	s := strings.TrimSpace(suffix)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file suffix")
	}
	return s, nil
}
