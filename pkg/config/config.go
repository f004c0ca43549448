// Package config provides configuration management for otudb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, path, host, port, user, password, database, ssl_mode
//   - Load: atomic
//   - Extract: fasta_width, report_format
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use OTUDB_ prefix with underscores for nesting:
//
//	OTUDB_DATABASE_DRIVER=sqlite
//	OTUDB_DATABASE_PATH=otus.sqlite
//	OTUDB_LOAD_ATOMIC=true
//	OTUDB_LOG_LEVEL=info
package config

// Config represents the complete otudb configuration.
type Config struct {
	// Database contains connection settings for SQLite or PostgreSQL.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Load contains settings of the make-tables command.
	Load LoadConfig `mapstructure:"load" yaml:"load"`

	// Extract contains settings of the extract-seqs command.
	Extract ExtractConfig `mapstructure:"extract" yaml:"extract"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress shows progress bars during loading.
	WithProgress bool `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DatabaseConfig contains database connection parameters.
type DatabaseConfig struct {
	// Driver is either "sqlite" (default) or "postgres".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Path is the SQLite database file. Ignored by PostgreSQL.
	Path string `mapstructure:"path" yaml:"path"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// LoadConfig contains settings for table creation and loading.
type LoadConfig struct {
	// Atomic runs all loaders, the join and the drop of the sequence table
	// in one transaction. Either everything is committed or nothing is.
	// When false, every loader commits its own table when its file is
	// read completely, so a failure keeps tables of the loaders that
	// finished before it.
	Atomic bool `mapstructure:"atomic" yaml:"atomic"`
}

// ExtractConfig contains settings for sequence extraction.
type ExtractConfig struct {
	// FastaWidth is the maximum length of a sequence line in output FASTA.
	FastaWidth int `mapstructure:"fasta_width" yaml:"fasta_width"`

	// ReportFormat is the format of the matched taxa report:
	// "csv", "tsv", "compact" (JSON) or "pretty" (JSON).
	ReportFormat string `mapstructure:"report_format" yaml:"report_format"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   "sqlite",
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "otudb",
			SSLMode:  "disable",
		},
		Extract: ExtractConfig{
			FastaWidth:   80,
			ReportFormat: "tsv",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: true,
	}

	return res
}
