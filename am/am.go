package am

// Config represents the cegconf tool configuration. It only steers how
// the CLI presents and writes things; the registry values themselves are
// compiled in and cannot be configured.
type Config struct {
	Output  OutputConfig  `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Typegen TypegenConfig `mapstructure:"typegen" json:"typegen" yaml:"typegen" toml:"typegen"`
	Check   CheckConfig   `mapstructure:"check" json:"check" yaml:"check" toml:"check"`
}

// OutputConfig configures command output
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format"` // Default format for `show`: table, json, yaml, toml
}

// LogConfig configures the logger
type LogConfig struct {
	JSON bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"` // Structured JSON logs instead of console output
}

// TypegenConfig configures TypeScript generation
type TypegenConfig struct {
	Output    string `mapstructure:"output" json:"output" yaml:"output" toml:"output"`                 // Output directory (empty = stdout)
	ClassName string `mapstructure:"class_name" json:"class_name" yaml:"class_name" toml:"class_name"` // Name of the generated class (default: Config)
	FileName  string `mapstructure:"file_name" json:"file_name" yaml:"file_name" toml:"file_name"`     // Name of the generated file (default: config.ts)
}

// CheckConfig configures drift detection
type CheckConfig struct {
	File string `mapstructure:"file" json:"file" yaml:"file" toml:"file"` // Exported registry compared by `check` when no file is given
}

// Output formats accepted by `show`
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTOML  = "toml"
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// ConfigFileName is the name searched for in the project and user directories
const ConfigFileName = "cegconf.toml"
