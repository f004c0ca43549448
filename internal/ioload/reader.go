package ioload

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
)

const (
	// maxLineSize limits the length of one line, sequences of
	// full genomes still fit.
	maxLineSize = 256 * 1024 * 1024

	// checkEvery is the number of lines between checks of
	// context cancellation.
	checkEvery = 10_000
)

// lineFunc receives a line without the end of line and its
// 1-based number.
type lineFunc func(lineNum int, line string) error

// eachLine feeds every line of a file to fn. It stops at the
// first error. When progress is on, a bar shows bytes read.
func (l *loader) eachLine(
	ctx context.Context,
	path, prefix string,
	fn lineFunc,
) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, ReadFileError(path, err)
	}
	defer f.Close()

	r, finish, err := l.progressReader(f, prefix)
	if err != nil {
		return 0, ReadFileError(path, err)
	}
	defer finish()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lineNum int
	for sc.Scan() {
		lineNum++
		if lineNum%checkEvery == 0 {
			if err = ctx.Err(); err != nil {
				return lineNum, CancelledError(err)
			}
		}
		if err = fn(lineNum, sc.Text()); err != nil {
			return lineNum, err
		}
	}
	if err = sc.Err(); err != nil {
		return lineNum, ReadFileError(path, err)
	}
	return lineNum, nil
}

// progressReader wraps the file into a pb proxy reader.
func (l *loader) progressReader(
	f *os.File,
	prefix string,
) (io.Reader, func(), error) {
	if !l.cfg.WithProgress {
		return f, func() {}, nil
	}

	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}

	bar := pb.Full.Start64(st.Size())
	bar.Set("prefix", prefix)
	bar.Set(pb.Bytes, true)
	bar.Set(pb.CleanOnFinish, true)
	return bar.NewProxyReader(f), func() { bar.Finish() }, nil
}
