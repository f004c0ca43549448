package cmd

import (
	"errors"
	"strings"

	"github.com/gnames/otudb/pkg/config"
	"github.com/spf13/cobra"
)

// envName converts a config key to its environment variable:
// database.ssl_mode -> OTUDB_DATABASE_SSL_MODE.
func envName(key string) string {
	key = strings.ReplaceAll(key, ".", "_")
	return config.EnvPrefix + "_" + strings.ToUpper(key)
}

// databaseFlags converts persistent database flags to options.
// Only flags given on the command line override the config.
func databaseFlags(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("driver") {
		s, _ := flags.GetString("driver")
		res = append(res, config.OptDatabaseDriver(s))
	}
	if flags.Changed("db") {
		s, _ := flags.GetString("db")
		res = append(res, config.OptDatabasePath(s))
	}
	return res
}

// requireDatabase returns a usage error when SQLite has no file.
func requireDatabase() error {
	if cfg.Database.Driver == "sqlite" && cfg.Database.Path == "" {
		return errors.New(`required flag(s) "db" not set`)
	}
	return nil
}
