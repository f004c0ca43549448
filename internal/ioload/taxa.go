package ioload

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/gnames/otudb/pkg/schema"
)

// loadTaxa inserts taxonomy assignments into tax_data.
// Every row gets exactly seven ranks.
func (l *loader) loadTaxa(
	ctx context.Context,
	exec db.Executor,
	path string,
) (int64, error) {
	slog.Info("Loading taxonomy", "path", path)
	ins, err := l.newInserter(ctx, exec, schema.TaxData{}, path)
	if err != nil {
		return 0, err
	}
	defer ins.close()

	lines, err := l.eachLine(ctx, path, "tax_data: ",
		func(lineNum int, line string) error {
			te, err := otu.ParseTaxonomyLine(line)
			if err != nil {
				return MalformedRecordError(path, lineNum, err)
			}
			args := make([]any, 0, otu.RanksNum+1)
			args = append(args, te.OTU)
			for _, v := range te.Ranks() {
				args = append(args, v)
			}
			return ins.insert(ctx, lineNum, args...)
		})
	if err != nil {
		return 0, err
	}

	slog.Info("Taxonomy loaded",
		"lines", humanize.Comma(int64(lines)),
		"inserted", humanize.Comma(ins.count),
	)
	return ins.count, nil
}
