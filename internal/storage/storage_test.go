package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/internal/storage"
	"github.com/eventtix/eventtix/pkg/errors"
)

func TestWriteAndReadJSON(t *testing.T) {
	dir := storage.NewDir(t.TempDir())

	in := map[string]int64{"a": 1, "b": 2}
	require.NoError(t, dir.WriteJSON("state.json", in))

	var out map[string]int64
	require.NoError(t, dir.ReadJSON("state.json", &out))
	assert.Equal(t, in, out)
}

func TestReadJSONMissingFile(t *testing.T) {
	dir := storage.NewDir(t.TempDir())

	var out map[string]int64
	err := dir.ReadJSON("absent.json", &out)
	assert.True(t, errors.IsNotFound(err))
}

func TestReadJSONMalformed(t *testing.T) {
	path := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(path, "bad.json"), []byte("{not json"), 0o644))

	dir := storage.NewDir(path)
	var out map[string]int64
	err := dir.ReadJSON("bad.json", &out)
	require.Error(t, err)
	assert.False(t, errors.IsNotFound(err))
}

func TestWriteJSONCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state")
	dir := storage.NewDir(path)

	require.NoError(t, dir.WriteJSON("state.json", []int64{7}))

	var out []int64
	require.NoError(t, dir.ReadJSON("state.json", &out))
	assert.Equal(t, []int64{7}, out)
}

func TestRemoveMissingFile(t *testing.T) {
	dir := storage.NewDir(t.TempDir())
	assert.NoError(t, dir.Remove("absent.json"))
}
