// Package ioload implements Loader interface that converts an OTU map,
// a FASTA file and a taxonomy file into database tables.
// This is an impure I/O package that reads files and inserts
// their records.
package ioload

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"
	"github.com/gnames/otudb/pkg/config"
	"github.com/gnames/otudb/pkg/db"
	"github.com/gnames/otudb/pkg/lifecycle"
	"github.com/gnames/otudb/pkg/schema"
	"github.com/google/uuid"
)

// loader implements the lifecycle.Loader interface.
type loader struct {
	cfg      *config.Config
	operator db.Operator
	schema   lifecycle.SchemaManager
}

// stage is a step of a load run that writes through exec.
type stage struct {
	name string
	fn   func(ctx context.Context, exec db.Executor) error
}

// New creates a new Loader.
func New(
	cfg *config.Config,
	op db.Operator,
	sm lifecycle.SchemaManager,
) lifecycle.Loader {
	return &loader{cfg: cfg, operator: op, schema: sm}
}

// Load creates tables and fills them with data from the inputs.
//
// Without atomic mode every stage is committed on its own, so a failure
// keeps the tables finished before it. In atomic mode the whole run is
// one transaction.
func (l *loader) Load(
	ctx context.Context,
	inp lifecycle.Inputs,
) (*lifecycle.LoadSummary, error) {
	if l.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	inp, err := CheckInputs(inp)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	slog.Info("Starting make-tables",
		"otu_map", inp.OTUMapPath,
		"fasta", inp.FastaPath,
		"taxonomy", inp.TaxonomyPath,
		"atomic", l.cfg.Load.Atomic,
	)

	if err = l.schema.Create(ctx); err != nil {
		return nil, err
	}

	res := &lifecycle.LoadSummary{
		RunID:   uuid.NewString(),
		InputID: InputID(inp),
	}
	stages := l.stages(inp, res, startTime)

	if l.cfg.Load.Atomic {
		err = l.withTx(ctx, "make-tables",
			func(ctx context.Context, exec db.Executor) error {
				for _, s := range stages {
					slog.Debug("Running stage", "stage", s.name)
					if err := s.fn(ctx, exec); err != nil {
						return err
					}
				}
				return nil
			})
	} else {
		for _, s := range stages {
			if err = l.withTx(ctx, s.name, s.fn); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(startTime)
	slog.Info("make-tables complete",
		"run_id", res.RunID,
		"otu_rows", res.OTURows,
		"tax_rows", res.TaxRows,
		"seq_rows", res.SeqRows,
		"joined_rows", res.JoinedRows,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)
	return res, nil
}

func (l *loader) stages(
	inp lifecycle.Inputs,
	res *lifecycle.LoadSummary,
	startTime time.Time,
) []stage {
	return []stage{
		{
			name: schema.OTUMapTable,
			fn: func(ctx context.Context, exec db.Executor) (err error) {
				res.OTURows, err = l.loadOTUMap(ctx, exec, inp.OTUMapPath)
				return err
			},
		},
		{
			name: schema.TaxDataTable,
			fn: func(ctx context.Context, exec db.Executor) (err error) {
				res.TaxRows, err = l.loadTaxa(ctx, exec, inp.TaxonomyPath)
				return err
			},
		},
		{
			name: schema.SeqDataTable,
			fn: func(ctx context.Context, exec db.Executor) (err error) {
				res.SeqRows, err = l.loadSequences(ctx, exec, inp.FastaPath)
				return err
			},
		},
		{
			name: schema.JoinedTable,
			fn: func(ctx context.Context, exec db.Executor) (err error) {
				if res.JoinedRows, err = join(ctx, exec); err != nil {
					return err
				}
				return l.schema.DropTable(ctx, exec, schema.SeqDataTable)
			},
		},
		{
			name: schema.LoadRunsTable,
			fn: func(ctx context.Context, exec db.Executor) error {
				return l.saveRun(ctx, exec, inp, res, startTime)
			},
		},
	}
}

// withTx runs fn in a transaction. The transaction is committed
// if fn succeeds and rolled back otherwise.
func (l *loader) withTx(
	ctx context.Context,
	name string,
	fn func(context.Context, db.Executor) error,
) error {
	tx, err := l.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return TransactionError(name, err)
	}

	if err = fn(ctx, tx); err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("Rollback failed", "stage", name, "error", rbErr)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return CancelledError(ctxErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return TransactionError(name, err)
	}
	slog.Debug("Committed", "stage", name)
	return nil
}
