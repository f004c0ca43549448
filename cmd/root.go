/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/internal/iofs"
	"github.com/gnames/otudb/internal/iologger"
	app "github.com/gnames/otudb/pkg"
	"github.com/gnames/otudb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command when called without any
// subcommands. Every call creates a new command tree.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "otudb",
		Short:   "Converts OTU clustering results into a database",
		Long: `otudb converts an OTU map (.uc file of vsearch/usearch), a FASTA file
with reads and a taxonomy assignment file into database tables, and
extracts sequences of a taxon into a new FASTA file.

Commands:
  - make-tables: load the three files and join sequences with OTUs
  - extract-seqs: write sequences of a rank/name to FASTA
  - stats: show row counts and columns of the tables

The database is a SQLite file by default. PostgreSQL is used with
--driver postgres and database settings from config.yaml.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (OTUDB_*)
  3. Config file (~/.config/otudb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.path -> OTUDB_DATABASE_PATH).

  Examples:
    OTUDB_DATABASE_DRIVER           sqlite or postgres
    OTUDB_DATABASE_PATH             SQLite file
    OTUDB_DATABASE_HOST             PostgreSQL host
    OTUDB_LOAD_ATOMIC               single transaction for make-tables
    OTUDB_LOG_LEVEL                 Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "otudb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for otudb")

	rootCmd.PersistentFlags().String("db", "",
		"SQLite database file")
	rootCmd.PersistentFlags().String("driver", "",
		"database backend: sqlite or postgres")

	rootCmd.AddCommand(
		getMakeTablesCmd(),
		getExtractSeqsCmd(),
		getStatsCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if _, err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, databaseFlags(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if _, err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.Name(),
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := execute(getRootCmd(), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree. Errors from commands are printed
// by commands themselves, errors of command line usage are printed
// here together with the usage of the command.
func execute(rootCmd *cobra.Command, w io.Writer) error {
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return err
	}

	fmt.Fprintf(w, "Error: %s\n\n%s", err, cmd.UsageString())
	return err
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Environment variables are bound one by one, so it is clear which
	// ones are allowed. They match the fields of config.ToOptions().
	envs := []string{
		"database.driver",
		"database.path",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"database.ssl_mode",
		"load.atomic",
		"extract.fasta_width",
		"extract.report_format",
		"log.level",
		"log.format",
		"log.destination",
	}
	for _, key := range envs {
		v.BindEnv(key, envName(key))
	}
}
