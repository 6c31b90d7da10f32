package config

import (
	"github.com/babarot/goduration"
	"gopkg.in/yaml.v2"
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Core: Core{
			Concurrency: 4,
			Timeout:     30 * goduration.Second,
		},
		Output: Output{
			Format:   "plain", // or table, json
			Encoding: "string",
			Color:    "auto",
		},
		Logging: Logging{
			Enabled: false,
			Level:   "info",
			Format:  "text",
			Rotation: Rotation{
				MaxSize:  "10MB",
				MaxFiles: 3,
			},
		},
	}
}

// DefaultContents renders Default() as YAML.
func DefaultContents() string {
	content, _ := yaml.Marshal(Default())
	return string(content)
}
