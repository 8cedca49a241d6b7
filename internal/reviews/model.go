package reviews

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// IssueTypeGeneral labels synthetic findings produced when the model fails
// or answers with something other than a findings list.
const IssueTypeGeneral = "general"

// UnknownLinePlaceholder is emitted when a finding has no usable line number.
const UnknownLinePlaceholder = "-"

// LineNumber is a source line reported by the model, or unknown.
type LineNumber struct {
	Value int
	Known bool
}

// Line returns a known line number.
func Line(n int) LineNumber {
	return LineNumber{Value: n, Known: true}
}

// UnknownLine returns the placeholder line number.
func UnknownLine() LineNumber {
	return LineNumber{}
}

// String renders the line for display.
func (l LineNumber) String() string {
	if !l.Known {
		return UnknownLinePlaceholder
	}
	return strconv.Itoa(l.Value)
}

// MarshalJSON emits an integer, or "-" when the line is unknown.
func (l LineNumber) MarshalJSON() ([]byte, error) {
	if !l.Known {
		return json.Marshal(UnknownLinePlaceholder)
	}
	return []byte(strconv.Itoa(l.Value)), nil
}

// UnmarshalJSON accepts numbers, numeric strings and null. Any other string
// (for example "-" or "N/A") decodes as unknown.
func (l *LineNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*l = LineNumber{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*l = Line(n)
		}
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	// Whole numbers outside the int range are as unusable as fractions.
	if f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt {
		*l = Line(int(f))
	}
	return nil
}

// Finding is a single model-produced observation about the submitted code.
type Finding struct {
	IssueType    string     `json:"issue_type"`
	Description  string     `json:"description"`
	LineNumber   LineNumber `json:"line_number"`
	SuggestedFix string     `json:"suggested_fix"`
}

// Result is the merged outcome of one review request.
type Result struct {
	ID         string
	LintIssues []string
	AIFeedback []Finding
}

// GeneralFinding wraps free text as a single finding with no known line.
func GeneralFinding(description string) Finding {
	return Finding{
		IssueType:   IssueTypeGeneral,
		Description: description,
		LineNumber:  UnknownLine(),
	}
}
