package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	root := t.TempDir()
	yaml := "content_dir: src\ndata_dir: out\nreport_cap: 50\ninclude:\n  - \"*.txt\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFile), []byte(yaml), 0644))

	layout, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "src", "events"), layout.EventsDir)
	assert.Equal(t, filepath.Join(root, "out", "events", "events.json"), layout.EventsOut)
	assert.Equal(t, 50, layout.ReportCap)
	assert.Equal(t, []string{"*.txt"}, layout.Include)
}

func TestLoadConfigBadPattern(t *testing.T) {
	root := t.TempDir()
	yaml := "include:\n  - \"[\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFile), []byte(yaml), 0644))

	_, err := LoadConfig(root)
	assert.Error(t, err)
}

func TestLayoutDefaults(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root, Config{})

	assert.Equal(t, filepath.Join(root, "content", "events"), layout.EventsDir)
	assert.Equal(t, filepath.Join(root, "gallery", "meta"), layout.GalleryMetaDir)
	assert.Equal(t, filepath.Join(root, "gallery", "index.json"), layout.GalleryLegacyIndex)
	assert.Equal(t, filepath.Join(root, "data", "maps", "maps.json"), layout.MapsOut)
	assert.Equal(t, DefaultReportCap, layout.ReportCap)
	assert.Equal(t, DefaultInclude, layout.Include)
}

func TestRel(t *testing.T) {
	root := t.TempDir()
	layout := NewLayout(root, Config{})
	assert.Equal(t, "content/events", layout.Rel(layout.EventsDir))
}
