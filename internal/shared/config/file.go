package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Zero values mean "not set".
type fileConfig struct {
	Port             string   `yaml:"port"`
	Env              string   `yaml:"env"`
	CORSAllowOrigins []string `yaml:"cors_allow_origins"`
	Model            struct {
		Provider       string `yaml:"provider"`
		URL            string `yaml:"url"`
		Name           string `yaml:"name"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"model"`
	Lint struct {
		Command    string `yaml:"command"`
		Args       string `yaml:"args"`
		FileSuffix string `yaml:"file_suffix"`
		MaxIssues  int    `yaml:"max_issues"`
	} `yaml:"lint"`
	Console struct {
		Port       string `yaml:"port"`
		BackendURL string `yaml:"backend_url"`
	} `yaml:"console"`
}

func loadFile(path string) (fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
