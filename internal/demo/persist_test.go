package demo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamStudy/vscroll/internal/virtual"
)

func TestSaveAndLoadSnapshotRoundTrip(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "vscroll-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "snapshot.yaml")

	cache := virtual.NewCache(5, 12)
	cache.SetItemSize(2, 40)
	snap := cache.Snapshot()

	require.NoError(t, SaveSnapshot(path, snap))

	restored, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, snap.Length, restored.Length)
	assert.Equal(t, snap.DefaultSize, restored.DefaultSize)
	assert.Equal(t, snap.Sizes, restored.Sizes)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
