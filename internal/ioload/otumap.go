package ioload

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/otu"
	"github.com/gnames/otudb/pkg/schema"
)

// loadOTUMap inserts `.uc` records into otu_map and returns the
// number of inserted rows.
func (l *loader) loadOTUMap(
	ctx context.Context,
	exec db.Executor,
	path string,
) (int64, error) {
	slog.Info("Loading OTU map", "path", path)
	ins, err := l.newInserter(ctx, exec, schema.OTUMap{}, path)
	if err != nil {
		return 0, err
	}
	defer ins.close()

	lines, err := l.eachLine(ctx, path, "otu_map: ",
		func(lineNum int, line string) error {
			e, err := otu.ParseOTUMapLine(line)
			if err != nil {
				return MalformedRecordError(path, lineNum, err)
			}
			return ins.insert(ctx, lineNum,
				e.RecordType,
				e.ClusterNumber,
				e.SeqLength,
				e.PercentIdentity,
				e.Strand,
				e.Alignment,
				e.Header,
				e.Target,
			)
		})
	if err != nil {
		return 0, err
	}

	slog.Info("OTU map loaded",
		"lines", humanize.Comma(int64(lines)),
		"inserted", humanize.Comma(ins.count),
	)
	return ins.count, nil
}
