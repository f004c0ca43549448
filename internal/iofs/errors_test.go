package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/otudb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	originalErr := errors.New("permission denied")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"create dir", CreateDirError("/test/dir", originalErr), errcode.CreateDirError},
		{"write file", WriteFileError("/test/config.yaml", originalErr), errcode.WriteFileError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.ErrorIs(t, gnErr.Err, originalErr, v.msg)
	}
}
