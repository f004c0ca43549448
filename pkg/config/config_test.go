package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/otudb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "otudb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "otudb", "logs"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "otudb"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "otudb", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, "", cfg.Database.Path)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "otudb", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		assert.False(t, cfg.Load.Atomic)
		assert.Equal(t, 80, cfg.Extract.FastaWidth)
		assert.Equal(t, "tsv", cfg.Extract.ReportFormat)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.True(t, cfg.WithProgress)
	})
}

func TestOptionDatabaseDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets postgres",
			input:    "postgres",
			expected: "postgres",
		},
		{
			name:     "normalizes to lowercase",
			input:    " SQLite ",
			expected: "sqlite",
		},
		{
			name:     "ignores unknown driver",
			input:    "mysql",
			expected: "sqlite", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseDriver(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Driver)
		})
	}
}

func TestOptionDatabasePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets path",
			input:    "otus.sqlite",
			expected: "otus.sqlite",
		},
		{
			name:     "trims whitespace",
			input:    "  /tmp/otus.sqlite ",
			expected: "/tmp/otus.sqlite",
		},
		{
			name:     "ignores empty string",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePath(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Path)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    6543,
			expected: 6543,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432,
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePort(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionExtract(t *testing.T) {
	t.Run("fasta width", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExtractFastaWidth(60)})
		assert.Equal(t, 60, cfg.Extract.FastaWidth)

		cfg.Update([]config.Option{config.OptExtractFastaWidth(0)})
		assert.Equal(t, 60, cfg.Extract.FastaWidth, "zero is ignored")
	})

	t.Run("report format", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptExtractReportFormat("Pretty")})
		assert.Equal(t, "pretty", cfg.Extract.ReportFormat)

		cfg.Update([]config.Option{config.OptExtractReportFormat("xml")})
		assert.Equal(t, "pretty", cfg.Extract.ReportFormat, "xml is ignored")
	})
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("stderr")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabaseDriver("postgres"),
			config.OptDatabaseHost("db.example.org"),
			config.OptLoadAtomic(true),
			config.OptLogLevel("debug"),
		}

		cfg.Update(opts)

		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.example.org", cfg.Database.Host)
		assert.True(t, cfg.Load.Atomic)
		assert.Equal(t, "debug", cfg.Log.Level)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptDatabasePath("first.sqlite"),
			config.OptDatabasePath("second.sqlite"),
		}

		cfg.Update(opts)

		assert.Equal(t, "second.sqlite", cfg.Database.Path)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptDatabaseDriver("postgres"),
			config.OptDatabasePath("otus.sqlite"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(6543),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptLoadAtomic(true),
			config.OptExtractFastaWidth(70),
			config.OptExtractReportFormat("csv"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Load, newCfg.Load)
		assert.Equal(t, original.Extract, newCfg.Extract)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptWithProgress(false),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.True(t, newCfg.WithProgress)
	})
}
