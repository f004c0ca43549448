package config

import (
	"path/filepath"
	"strings"
)

var (
	// AppName is used in generating file system paths.
	AppName = "otudb"

	// EnvPrefix starts the names of environment variables that
	// override config.yaml, for example OTUDB_DATABASE_PATH.
	EnvPrefix = strings.ToUpper(AppName)
)

// ConfigDir returns ~/.config/otudb, the place of config.yaml.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns ~/.local/share/otudb.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory of otudb.log inside DataDir.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
