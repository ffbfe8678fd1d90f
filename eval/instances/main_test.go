package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lintang-b-s/tourx/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSolveAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("1 0 0\n2 0 3\n3 4 0\n4 4 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1 0 0\n2 10 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("skip"), 0o644))

	paths, err := instanceFiles(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	results, err := solveAll(context.Background(), paths, solver.DefaultOptions(), 2, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "a.txt", results[0].name)
	assert.Equal(t, [solver.NumRegions]int{2, 0}, results[0].sizes)
	assert.Equal(t, 20.0, results[0].total)

	assert.Equal(t, "b.txt", results[1].name)
	assert.Equal(t, 4, results[1].cities)
	assert.Equal(t, 14.0, results[1].total)
}

func TestSolveAllMissingFile(t *testing.T) {
	_, err := solveAll(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")},
		solver.DefaultOptions(), 1, zap.NewNop())
	assert.Error(t, err)
}
