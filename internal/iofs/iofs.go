// Package iofs prepares directories and files otudb keeps in the
// user's home.
package iofs

import (
	"os"

	"github.com/gnames/otudb/pkg/config"
	"gopkg.in/yaml.v3"
)

const configHeader = `# otudb configuration.
# Precedence: command line flags > OTUDB_* environment variables >
# this file > defaults.
`

// EnsureDirs creates config and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// ConfigYAML returns the content of config.yaml with default values.
func ConfigYAML() ([]byte, error) {
	bs, err := yaml.Marshal(config.New())
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), bs...), nil
}

// EnsureConfigFile writes config.yaml with default values unless
// the file exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	bs, err := ConfigYAML()
	if err != nil {
		return WriteFileError(configPath, err)
	}

	if err := os.WriteFile(configPath, bs, 0644); err != nil {
		return WriteFileError(configPath, err)
	}

	return nil
}
