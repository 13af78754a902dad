package stile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernhollow/stile"
	"github.com/fernhollow/stile/pkg/site"
)

func seedSite(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(parts []string, content string) {
		path := filepath.Join(append([]string{root}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	write([]string{"content", "events", "2024-05-01-picnic.txt"},
		"Title: Picnic\nDate: 2024-05-01\nTime: 12:30\nLocation: Meadow\nDescription: Food.\n")
	write([]string{"content", "links", "atlas.txt"},
		"Title: Atlas\nURL: https://example.org\nDescription: Maps.\n")
	write([]string{"gallery", "meta", "pic.json"},
		`{"title":"Pic","image":"images/pic.jpg","date":"2024-05-01"}`)
	write([]string{"gallery", "images", "pic.jpg"}, "jpegdata")

	return root
}

func TestBuildValidateCheckRoundTrip(t *testing.T) {
	root := seedSite(t)

	summary, err := stile.Build(root)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Events)
	assert.Equal(t, 1, summary.Links)
	assert.Equal(t, 1, summary.Gallery)
	assert.True(t, summary.SeededMaps)

	report, err := stile.Validate(root)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 0, report.Counts.Warnings)

	stale, err := stile.CheckDrift(root)
	require.NoError(t, err)
	assert.Empty(t, stale)
}

func TestCheckDriftAfterSourceChange(t *testing.T) {
	root := seedSite(t)

	_, err := stile.Build(root)
	require.NoError(t, err)

	// Edit a source without rebuilding.
	eventPath := filepath.Join(root, "content", "events", "2024-05-01-picnic.txt")
	require.NoError(t, os.WriteFile(eventPath,
		[]byte("Title: Renamed Picnic\nDate: 2024-05-01\n"), 0644))

	stale, err := stile.CheckDrift(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"data/events/events.json"}, stale)
}

func TestWithConfigOverridesLayout(t *testing.T) {
	root := t.TempDir()
	eventsDir := filepath.Join(root, "src", "events")
	require.NoError(t, os.MkdirAll(eventsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(eventsDir, "2024-01-01-a.txt"),
		[]byte("Title: A\nDate: 2024-01-01\n"), 0644))

	summary, err := stile.Build(root, stile.WithConfig(site.Config{
		ContentDir: "src",
		DataDir:    "out",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Events)

	_, err = os.Stat(filepath.Join(root, "out", "events", "events.json"))
	assert.NoError(t, err)
}
