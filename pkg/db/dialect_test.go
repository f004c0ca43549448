package db_test

import (
	"testing"

	"github.com/gnames/otudb/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		msg     string
		dialect db.Dialect
		n       int
		res     string
	}{
		{"sqlite one", db.SQLite, 1, "?"},
		{"sqlite three", db.SQLite, 3, "?, ?, ?"},
		{"postgres one", db.Postgres, 1, "$1"},
		{"postgres three", db.Postgres, 3, "$1, $2, $3"},
		{"none", db.Postgres, 0, ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.dialect.Placeholders(v.n), v.msg)
	}
}
