package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAtomicWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, AtomicWriteYAML(path, map[string]any{"name": "site", "frames": 250}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, "site", decoded["name"])
	assert.Equal(t, 250, decoded["frames"])
}

func TestAtomicWriteJSON_CreatesBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, AtomicWriteJSON(path, map[string]int{"v": 1}))
	assert.NoFileExists(t, path+".bak", "first write has nothing to back up")

	require.NoError(t, AtomicWriteJSON(path, map[string]int{"v": 2}))

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(current), `"v": 2`)

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Contains(t, string(backup), `"v": 1`)
}

func TestAtomicWriteRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.txt")

	require.NoError(t, AtomicWriteRaw(path, []byte("not json, not yaml: {{{")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not json, not yaml: {{{", string(raw))
}

func TestAtomicWrite_NoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	require.NoError(t, AtomicWriteJSON(path, map[string]int{"v": 1}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), "sequence4d-tmp")
	}
}

func TestFileBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	blob := &FileBlob{Path: path}

	t.Run("missing file reads as nil", func(t *testing.T) {
		raw, err := blob.Load()
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, blob.Store([]byte(`{"DEFAULT": {"ColorTypes": []}}`)))

		raw, err := blob.Load()
		require.NoError(t, err)
		assert.JSONEq(t, `{"DEFAULT": {"ColorTypes": []}}`, string(raw))
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		err := blob.Store([]byte("not json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")

		// The previous content survives a rejected write.
		raw, err := blob.Load()
		require.NoError(t, err)
		assert.JSONEq(t, `{"DEFAULT": {"ColorTypes": []}}`, string(raw))
	})
}
