package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	Assistant AssistantConfig `yaml:"assistant"`
}

// AssistantConfig overrides which model answers and how it is instructed.
// Sampling parameters, safety settings and the upstream deadline are fixed.
type AssistantConfig struct {
	SystemPrompt string `yaml:"system_prompt,omitempty"`
	Model        string `yaml:"model,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseYAMLConfig(data)
}

// ParseYAMLConfig decodes YAML configuration. Unknown keys are rejected so
// a stale file that still sets sampling or timeout values fails loudly.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return &cfg, nil
}

// Apply merges the YAML overrides into c. A nil receiver is a no-op.
func (y *YAMLConfig) Apply(c *Config) {
	if y == nil {
		return
	}
	a := y.Assistant
	if a.Model != "" {
		c.GeminiModel = a.Model
	}
	c.Assistant = &a
}
