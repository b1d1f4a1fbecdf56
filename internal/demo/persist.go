package demo

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/HamStudy/vscroll/internal/virtual"
)

// snapshotFile is the on-disk form of a persisted cache snapshot. It
// wraps virtual.CacheSnapshot instead of marshaling it directly so the
// file can carry a version marker across format changes.
type snapshotFile struct {
	Version  int                   `yaml:"version"`
	Snapshot virtual.CacheSnapshot `yaml:"snapshot"`
}

const snapshotFileVersion = 1

// SaveSnapshot persists snap to path as YAML.
func SaveSnapshot(path string, snap virtual.CacheSnapshot) error {
	out, err := yaml.Marshal(snapshotFile{Version: snapshotFileVersion, Snapshot: snap})
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// LoadSnapshot reads a previously persisted snapshot from path.
func LoadSnapshot(path string) (virtual.CacheSnapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return virtual.CacheSnapshot{}, err
	}
	var sf snapshotFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return virtual.CacheSnapshot{}, err
	}
	return sf.Snapshot, nil
}
