package util

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("permission denied")
	err := WrapErrorf(orig, ErrIO, "could not open file %s", "in.txt")

	assert.EqualError(t, err, "could not open file in.txt: permission denied")
	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrIO, ErrorCode(err))

	wrapped := WrapErrorf(nil, ErrBadParamInput, "bad input")
	assert.EqualError(t, wrapped, "bad input")
	assert.Equal(t, ErrBadParamInput, ErrorCode(wrapped))

	assert.Nil(t, ErrorCode(orig))
}

func TestReadConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_records: 12\nconstruction: indexed\n"), 0o644))

	require.NoError(t, ReadConfig(path))
	assert.Equal(t, 12, viper.GetInt("MAX_RECORDS"))
	assert.Equal(t, "indexed", viper.GetString("CONSTRUCTION"))

	viper.Reset()
	assert.Error(t, ReadConfig(filepath.Join(dir, "missing.yaml")))
}
