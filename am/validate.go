package am

import (
	"strings"

	"github.com/teranos/cegconf/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML:
	default:
		return errors.WithHint(
			errors.Newf("output.format %q is not supported", c.Output.Format),
			"use one of: table, json, yaml, toml")
	}

	// Empty class name falls back to the default, anything else must be a TS identifier
	if name := c.Typegen.ClassName; name != "" && !isIdentifier(name) {
		return errors.Newf("typegen.class_name %q is not a valid TypeScript identifier", name)
	}

	if name := c.Typegen.FileName; name != "" {
		if strings.ContainsAny(name, `/\`) {
			return errors.Newf("typegen.file_name %q must not contain a path", name)
		}
		if !strings.HasSuffix(name, ".ts") {
			return errors.Newf("typegen.file_name %q must end in .ts", name)
		}
	}

	return nil
}

func isIdentifier(s string) bool {
	for i, ch := range s {
		letter := ch == '_' || ch == '$' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		if !letter && (i == 0 || ch < '0' || ch > '9') {
			return false
		}
	}
	return s != ""
}
