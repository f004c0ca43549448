package ioload

import (
	"context"
	"time"

	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/schema"
)

// saveRun records the run in load_runs.
func (l *loader) saveRun(
	ctx context.Context,
	exec db.Executor,
	inp lifecycle.Inputs,
	res *lifecycle.LoadSummary,
	startTime time.Time,
) error {
	run := schema.LoadRun{
		ID:           res.RunID,
		InputID:      res.InputID,
		OTUMapPath:   inp.OTUMapPath,
		FastaPath:    inp.FastaPath,
		TaxonomyPath: inp.TaxonomyPath,
		OTURows:      res.OTURows,
		TaxRows:      res.TaxRows,
		SeqRows:      res.SeqRows,
		JoinedRows:   res.JoinedRows,
		Atomic:       l.cfg.Load.Atomic,
		StartedAt:    startTime.UTC(),
		FinishedAt:   time.Now().UTC(),
	}

	q := insertSQL(l.operator.Dialect(), run)
	_, err := exec.ExecContext(ctx, q,
		run.ID,
		run.InputID,
		run.OTUMapPath,
		run.FastaPath,
		run.TaxonomyPath,
		run.OTURows,
		run.TaxRows,
		run.SeqRows,
		run.JoinedRows,
		run.Atomic,
		run.StartedAt,
		run.FinishedAt,
	)
	if err != nil {
		return RunMetadataError(err)
	}
	return nil
}
