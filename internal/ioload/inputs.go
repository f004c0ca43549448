package ioload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnuuid"
	"github.com/gnames/otudb/pkg/lifecycle"
)

// CheckInputs verifies that all three input files exist and
// returns their absolute paths. It touches no database, so
// callers can run it before any table is changed.
func CheckInputs(inp lifecycle.Inputs) (lifecycle.Inputs, error) {
	paths := []struct {
		name string
		path *string
	}{
		{"OTU map", &inp.OTUMapPath},
		{"FASTA", &inp.FastaPath},
		{"taxonomy", &inp.TaxonomyPath},
	}

	for _, v := range paths {
		if strings.TrimSpace(*v.path) == "" {
			return inp, MissingInputError(v.name)
		}
		fi, err := os.Stat(*v.path)
		if err != nil {
			return inp, InputNotFoundError(*v.path, err)
		}
		if fi.IsDir() {
			return inp, InputNotFoundError(
				*v.path, errors.New("path is a directory"),
			)
		}
		abs, err := filepath.Abs(*v.path)
		if err != nil {
			return inp, InputNotFoundError(*v.path, err)
		}
		*v.path = abs
	}
	return inp, nil
}

// InputID returns UUID v5 of the input paths. Runs with the
// same inputs get the same ID.
func InputID(inp lifecycle.Inputs) string {
	s := strings.Join(
		[]string{inp.OTUMapPath, inp.FastaPath, inp.TaxonomyPath}, "|",
	)
	return gnuuid.New(s).String()
}
