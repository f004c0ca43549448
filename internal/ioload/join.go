package ioload

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/otudb/pkg/db"
)

// `WHERE TRUE` keeps SQLite from reading ON CONFLICT as a
// part of the join.
const joinSQL = `
INSERT INTO otus_w_seqs (cluster_number, header, target, sequence)
SELECT m.cluster_number, m.header, m.target, s.sequence
  FROM otu_map m
    JOIN seq_data s ON m.header = s.header
  WHERE TRUE
ON CONFLICT DO NOTHING`

// join copies sequences that have an OTU into otus_w_seqs.
// Headers absent from either table are left out.
func join(ctx context.Context, exec db.Executor) (int64, error) {
	slog.Info("Joining OTU map with sequences")
	res, err := exec.ExecContext(ctx, joinSQL)
	if err != nil {
		return 0, JoinError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, JoinError(err)
	}
	slog.Info("Sequences joined", "inserted", humanize.Comma(n))
	return n, nil
}
