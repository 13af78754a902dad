package drift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernhollow/stile/pkg/build"
	"github.com/fernhollow/stile/pkg/site"
)

func setupSite(t *testing.T) (site.Layout, string) {
	t.Helper()
	root := t.TempDir()

	eventsDir := filepath.Join(root, "content", "events")
	require.NoError(t, os.MkdirAll(eventsDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(eventsDir, "2024-05-01-a.txt"),
		[]byte("Title: A\nDate: 2024-05-01\n"), 0644))

	return site.NewLayout(root, site.Config{}), root
}

func TestRunCleanAfterBuild(t *testing.T) {
	layout, _ := setupSite(t)

	_, err := build.New(layout, nil).Run()
	require.NoError(t, err)

	stale, err := New(layout, nil).Run()
	require.NoError(t, err)
	assert.Empty(t, stale, "a fresh build must not drift")
}

func TestRunDetectsStaleOutput(t *testing.T) {
	layout, _ := setupSite(t)

	_, err := build.New(layout, nil).Run()
	require.NoError(t, err)

	// Hand-edit the committed document.
	require.NoError(t, os.WriteFile(layout.EventsOut, []byte("{\"items\":[]}\n"), 0644))

	stale, err := New(layout, nil).Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"data/events/events.json"}, stale)
}

func TestRunDetectsMissingOutput(t *testing.T) {
	layout, _ := setupSite(t)

	stale, err := New(layout, nil).Run()
	require.NoError(t, err)

	// Nothing was ever built: events differ (sources exist), links and
	// gallery render to empty documents which also have no committed file.
	assert.Contains(t, stale, "data/events/events.json")
	assert.Contains(t, stale, "data/links/links.json")
	assert.Contains(t, stale, "data/gallery/gallery.json")
}
