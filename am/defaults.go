package am

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.format", FormatTable)

	v.SetDefault("log.json", false)

	v.SetDefault("typegen.output", "")
	v.SetDefault("typegen.class_name", "Config")
	v.SetDefault("typegen.file_name", "config.ts")

	v.SetDefault("check.file", "")
}

// GetTypegenClassName returns the configured class name, falling back to "Config"
func (c *Config) GetTypegenClassName() string {
	if c.Typegen.ClassName == "" {
		return "Config"
	}
	return c.Typegen.ClassName
}

// GetTypegenFileName returns the configured file name, falling back to "config.ts"
func (c *Config) GetTypegenFileName() string {
	if c.Typegen.FileName == "" {
		return "config.ts"
	}
	return c.Typegen.FileName
}
