// Package iologger sets up the global slog logger of otudb.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	app "github.com/gnames/otudb/pkg"
	"github.com/gnames/otudb/pkg/config"
)

// LogFile is the name of the log file in the log directory.
const LogFile = "otudb.log"

// Init sets the default slog logger according to cfg.
// With "file" destination the log goes to LogFile in logDir. The
// file is truncated unless append is true, so a command starts a
// fresh log and its second initialization (after config.yaml is
// read) continues it.
// The returned function closes the log file.
func Init(logDir string, cfg config.LogConfig, append bool) (func(), error) {
	w, closer, err := logWriter(logDir, cfg.Destination, append)
	if err != nil {
		return closer, err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "tint":
		opts.ReplaceAttr = shortTime
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With("version", app.Version)
	slog.SetDefault(logger)

	return closer, nil
}

func logWriter(
	logDir, destination string,
	append bool,
) (io.Writer, func(), error) {
	closer := func() {}
	switch destination {
	case "stdout":
		return os.Stdout, closer, nil
	case "file":
	default:
		return os.Stderr, closer, nil
	}

	logPath := filepath.Join(logDir, LogFile)
	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(logPath, flag, 0644)
	if err != nil {
		return nil, closer, CreateLogFileError(logPath, err)
	}
	return f, func() { f.Close() }, nil
}

// shortTime keeps only the clock time in human-oriented logs.
func shortTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.String(slog.TimeKey, a.Value.Time().Format(time.TimeOnly))
	}
	return a
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
