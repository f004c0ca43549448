package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
)

// CreateDirError is returned when a config or log directory
// cannot be made.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

<em>How to fix:</em>
  Check that HOME is set and writable`
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: mkdir %s: %w",
			fn, dir, err),
	}
}

func WriteFileError(file string, err error) error {
	msg := "Cannot write default config.yaml to <em>%s</em>"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: write %s: %w",
			fn, file, err),
	}
}
