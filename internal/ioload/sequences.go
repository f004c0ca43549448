package ioload

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/gnames/otudb/pkg/schema"
)

// loadSequences inserts reads of a two-line FASTA file into
// seq_data. Every header line is followed by exactly one
// sequence line. Empty lines between records are skipped, an empty
// line or a header in place of a sequence is a malformed record.
func (l *loader) loadSequences(
	ctx context.Context,
	exec db.Executor,
	path string,
) (int64, error) {
	slog.Info("Loading sequences", "path", path)
	ins, err := l.newInserter(ctx, exec, schema.SeqData{}, path)
	if err != nil {
		return 0, err
	}
	defer ins.close()

	var header string
	var headerLine int
	lines, err := l.eachLine(ctx, path, "seq_data: ",
		func(lineNum int, line string) error {
			if headerLine == 0 {
				if strings.TrimSpace(line) == "" {
					return nil
				}
				header, headerLine = line, lineNum
				return nil
			}

			se, err := otu.ParseFastaRecord(header, line)
			if err != nil {
				return MalformedRecordError(path, headerLine, err)
			}
			recLine := headerLine
			header, headerLine = "", 0
			return ins.insert(ctx, recLine, se.Header, se.Sequence)
		})
	if err != nil {
		return 0, err
	}

	if headerLine > 0 {
		slog.Warn("Header without sequence at the end of file is ignored",
			"path", path, "line", headerLine, "header", header)
	}

	slog.Info("Sequences loaded",
		"lines", humanize.Comma(int64(lines)),
		"inserted", humanize.Comma(ins.count),
	)
	return ins.count, nil
}
