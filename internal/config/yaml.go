package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so the YAML config file can spell durations
// the human way ("30s", "1m") instead of integer nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for [Duration].
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("error decoding duration: %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("error parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredYAMLConfig mirrors [StructuredConfig] with yaml tags for the
// optional config file. Durations are written as strings ("30s", "1m").
type StructuredYAMLConfig struct {
	App struct {
		Version string `yaml:"version"`
	} `yaml:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `yaml:"http_address"`
		RequestTimeout Duration `yaml:"request_timeout"`
	} `yaml:"server,omitempty"`

	Values struct {
		Directory          string   `yaml:"directory"`
		UpstreamURL        string   `yaml:"upstream_url"`
		DefaultEnvironment string   `yaml:"default_environment"`
		RequiredPaths      []string `yaml:"required_paths"`
		ReplaceOnConflict  bool     `yaml:"replace_on_conflict"`
		DeleteOnNull       bool     `yaml:"delete_on_null"`
	} `yaml:"values,omitempty"`
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml config file: %w", err)
	}

	var yamlCfg StructuredYAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: yamlCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    yamlCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(yamlCfg.Server.RequestTimeout),
		},
		Values: Values{
			Directory:          yamlCfg.Values.Directory,
			UpstreamURL:        yamlCfg.Values.UpstreamURL,
			DefaultEnvironment: yamlCfg.Values.DefaultEnvironment,
			RequiredPaths:      yamlCfg.Values.RequiredPaths,
			ReplaceOnConflict:  yamlCfg.Values.ReplaceOnConflict,
			DeleteOnNull:       yamlCfg.Values.DeleteOnNull,
		},
	}, nil
}
