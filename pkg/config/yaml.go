package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent())

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// ToYAMLWithHeader serializes the configuration with a header comment.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	yamlBytes, err := c.ToYAML()
	if err != nil {
		return nil, err
	}

	if header == "" {
		return yamlBytes, nil
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if header[len(header)-1] != '\n' {
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.Write(yamlBytes)

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields absent from the
// YAML keep their zero values; callers that want defaults for absent
// fields should start from NewConfig and unmarshal over it.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Renderer: c.Renderer,
		Scan:     ScanConfig{CodeBlocks: c.Scan.CodeBlocks},
		Backups:  c.Backups,
		Write:    c.Write,
		DryRun:   c.DryRun,
		Restore:  c.Restore,
		Jobs:     c.Jobs,
	}

	if c.Delimiters != nil {
		clone.Delimiters = make([]DelimiterConfig, len(c.Delimiters))
		copy(clone.Delimiters, c.Delimiters)
	}
	if c.Scan.Extensions != nil {
		clone.Scan.Extensions = make([]string, len(c.Scan.Extensions))
		copy(clone.Scan.Extensions, c.Scan.Extensions)
	}
	if c.Ignore != nil {
		clone.Ignore = make([]string, len(c.Ignore))
		copy(clone.Ignore, c.Ignore)
	}

	return clone
}

// YAMLIndent returns the YAML indentation used for generated files.
func YAMLIndent() int {
	return 2
}
