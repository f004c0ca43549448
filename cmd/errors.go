package cmd

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
)

// ReadConfigError creates an error for config.yaml that cannot
// be read or decoded.
func ReadConfigError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

// OutputError creates an error for an output file that cannot
// be created or written.
func OutputError(path string, err error) error {
	msg := "Cannot write output file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
