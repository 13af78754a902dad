package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/site"
)

func newTestBuilder(t *testing.T) (*Builder, string) {
	t.Helper()
	root := t.TempDir()
	return New(site.NewLayout(root, site.Config{}), nil), root
}

func writeSource(t *testing.T, root string, parts []string, content string) {
	t.Helper()
	path := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func decodeItems[T any](t *testing.T, doc []byte) []T {
	t.Helper()
	var col core.Collection[T]
	require.NoError(t, json.Unmarshal(doc, &col))
	return col.Items
}

func TestRenderEventsSorting(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "events", "zz-late.txt"},
		"Title: Dateless\n")
	writeSource(t, root, []string{"content", "events", "b.txt"},
		"Title: Evening\nDate: 2024-05-01\nTime: 19:00\n")
	writeSource(t, root, []string{"content", "events", "a.txt"},
		"Title: Morning\nDate: 2024-05-01\nTime: 08:00\n")

	doc, n, err := b.RenderEvents()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items := decodeItems[core.Event](t, doc)
	require.Len(t, items, 3)
	assert.Equal(t, "Morning", items[0].Title)
	assert.Equal(t, "Evening", items[1].Title)
	assert.Equal(t, "Dateless", items[2].Title, "undated events sort last")

	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].SortKey, items[i].SortKey)
	}
}

func TestRenderEventsFallbacks(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "events", "2024-05-01-spring-picnic.txt"},
		"Location: The Meadow\n")

	doc, _, err := b.RenderEvents()
	require.NoError(t, err)

	items := decodeItems[core.Event](t, doc)
	require.Len(t, items, 1)
	assert.Equal(t, "2024-05-01-spring-picnic.txt", items[0].ID)
	assert.Equal(t, "Spring Picnic", items[0].Title, "title falls back to the filename")
	assert.Equal(t, "2024-05-01", items[0].Date, "date falls back to the filename prefix")
	assert.Equal(t, "2024-05-01T00:00", items[0].SortKey)
	assert.Equal(t, "content/events/2024-05-01-spring-picnic.txt", items[0].Source)
}

func TestRenderEventsLegacyKeys(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "events", "old.txt"},
		"Event: Old Style\nWhen: 2024-06-01\nStart: 10:00\nPlace: Hall\n")

	doc, _, err := b.RenderEvents()
	require.NoError(t, err)

	items := decodeItems[core.Event](t, doc)
	require.Len(t, items, 1)
	assert.Equal(t, "Old Style", items[0].Title)
	assert.Equal(t, "2024-06-01", items[0].Date)
	assert.Equal(t, "10:00", items[0].Time)
	assert.Equal(t, "Hall", items[0].Location)
}

func TestRenderEventsMalformedDatePassesThrough(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "events", "bad.txt"},
		"Title: Oops\nDate: not-a-date\n")

	doc, _, err := b.RenderEvents()
	require.NoError(t, err, "builders do not validate")

	items := decodeItems[core.Event](t, doc)
	require.Len(t, items, 1)
	assert.Equal(t, "not-a-date", items[0].Date)
}

func TestRenderLinks(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "links", "birds.txt"},
		"Title: Bird Atlas\nURL: https://example.org/atlas\nCategory: Nature\n")
	writeSource(t, root, []string{"content", "links", "misc.txt"},
		"Title: Misc\nLink: https://example.org/misc\n")

	doc, n, err := b.RenderLinks()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items := decodeItems[core.Link](t, doc)
	require.Len(t, items, 2)
	// "General::Misc" sorts before "Nature::Bird Atlas".
	assert.Equal(t, "Misc", items[0].Title)
	assert.Equal(t, core.DefaultCategory, items[0].Category)
	assert.Equal(t, "https://example.org/misc", items[0].URL, "Link: is a legacy alias for URL:")
	assert.Equal(t, "Nature::Bird Atlas", items[1].SortKey)
}

func TestRenderGalleryFromMeta(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"gallery", "meta", "a.json"},
		`{"image": "images/pic.jpg", "date": "2024-01-01"}`)
	writeSource(t, root, []string{"gallery", "meta", "b.json"},
		`{"id": "newer", "image": "http://example.com/p.jpg", "date": "2024-02-01", "tags": "single"}`)
	writeSource(t, root, []string{"gallery", "images", "pic.jpg"}, "jpegdata")

	doc, n, err := b.RenderGallery()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items := decodeItems[core.GalleryItem](t, doc)
	require.Len(t, items, 2)

	// Newest first.
	assert.Equal(t, "newer", items[0].ID)
	assert.Equal(t, "http://example.com/p.jpg", items[0].Image, "URLs are not rewritten")
	assert.Equal(t, []string{"single"}, items[0].Tags, "scalar tags are tolerated")

	assert.Equal(t, "a", items[1].ID, "id falls back to the filename stem")
	assert.Equal(t, "gallery/images/pic.jpg", items[1].Image, "file paths are rewritten")
	assert.Equal(t, []string{}, items[1].Tags)
}

func TestRenderGalleryLegacyFallback(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"gallery", "index.json"},
		`{"items":[{"id":"x","image":"http://e.com/p.jpg"}]}`)

	doc, n, err := b.RenderGallery()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items := decodeItems[core.GalleryItem](t, doc)
	require.Len(t, items, 1)
	assert.Equal(t, "x", items[0].ID)
	assert.Equal(t, "http://e.com/p.jpg", items[0].Image)
}

func TestRenderGalleryMetaTakesPrecedence(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"gallery", "meta", "a.json"},
		`{"image": "http://e.com/a.jpg"}`)
	writeSource(t, root, []string{"gallery", "index.json"},
		`{"items":[{"id":"legacy","image":"http://e.com/b.jpg"}]}`)

	doc, n, err := b.RenderGallery()
	require.NoError(t, err)
	assert.Equal(t, 1, n, "legacy index is ignored when the meta directory exists")

	items := decodeItems[core.GalleryItem](t, doc)
	assert.Equal(t, "a", items[0].ID)
}

func TestRunIdempotent(t *testing.T) {
	b, root := newTestBuilder(t)
	writeSource(t, root, []string{"content", "events", "2024-05-01-a.txt"},
		"Title: A\nDate: 2024-05-01\n")
	writeSource(t, root, []string{"content", "links", "l.txt"},
		"Title: L\nURL: https://example.org\n")
	writeSource(t, root, []string{"gallery", "meta", "g.json"},
		`{"image": "http://e.com/p.jpg"}`)

	_, err := b.Run()
	require.NoError(t, err)

	layout := site.NewLayout(root, site.Config{})
	first := map[string][]byte{}
	for _, out := range []string{layout.EventsOut, layout.LinksOut, layout.GalleryOut, layout.MapsOut} {
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		first[out] = data
	}

	_, err = b.Run()
	require.NoError(t, err)

	for out, before := range first {
		after, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, before, after, "rebuild must be byte-identical: %s", out)
	}
}

func TestSeedMapsOnlyOnce(t *testing.T) {
	b, root := newTestBuilder(t)

	seeded, err := b.SeedMaps()
	require.NoError(t, err)
	assert.True(t, seeded)

	layout := site.NewLayout(root, site.Config{})
	custom := []byte(`{"items":[]}` + "\n")
	require.NoError(t, os.WriteFile(layout.MapsOut, custom, 0644))

	seeded, err = b.SeedMaps()
	require.NoError(t, err)
	assert.False(t, seeded)

	data, err := os.ReadFile(layout.MapsOut)
	require.NoError(t, err)
	assert.Equal(t, custom, data, "existing maps content is never overwritten")
}

func TestRenderEventsMissingDirIsEmpty(t *testing.T) {
	b, _ := newTestBuilder(t)

	doc, n, err := b.RenderEvents()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.JSONEq(t, `{"items":[]}`, string(doc))
}
