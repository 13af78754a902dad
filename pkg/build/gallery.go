package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/imageref"
	"github.com/fernhollow/stile/pkg/source"
)

// RenderGallery produces the gallery document, newest first. Per-item
// metadata under gallery/meta takes precedence; the consolidated legacy
// index is consulted only when that directory does not exist.
func (b *Builder) RenderGallery() ([]byte, int, error) {
	var items []core.GalleryItem

	if _, err := os.Stat(b.layout.GalleryMetaDir); err == nil {
		items, err = b.galleryFromMeta()
		if err != nil {
			return nil, 0, err
		}
	} else if errors.Is(err, os.ErrNotExist) {
		items, err = b.galleryFromLegacyIndex()
		if err != nil {
			return nil, 0, err
		}
	} else {
		return nil, 0, err
	}

	// Newest first: items with a date sort by it, dateless ones by id.
	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := gallerySortValue(items[i]), gallerySortValue(items[j])
		if ki != kj {
			return ki > kj
		}
		return items[i].ID > items[j].ID
	})

	if items == nil {
		items = []core.GalleryItem{}
	}
	doc, err := marshalDoc(core.Collection[core.GalleryItem]{Items: items})
	return doc, len(items), err
}

func (b *Builder) galleryFromMeta() ([]core.GalleryItem, error) {
	names, err := source.List(b.layout.GalleryMetaDir, []string{"*.json"})
	if err != nil {
		return nil, err
	}

	items := make([]core.GalleryItem, 0, len(names))
	for _, name := range names {
		obj, err := source.ReadJSON(filepath.Join(b.layout.GalleryMetaDir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		items = append(items, galleryItem(obj, stem(name)))
	}
	return items, nil
}

func (b *Builder) galleryFromLegacyIndex() ([]core.GalleryItem, error) {
	obj, err := source.ReadJSON(b.layout.GalleryLegacyIndex)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("legacy index: %w", err)
	}

	raw, _ := obj["items"].([]any)
	items := make([]core.GalleryItem, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, galleryItem(m, ""))
	}
	return items, nil
}

func galleryItem(obj map[string]any, fallbackID string) core.GalleryItem {
	id := jsonString(obj, "id")
	if id == "" {
		id = fallbackID
	}

	return core.GalleryItem{
		ID:          id,
		Title:       jsonString(obj, "title"),
		Date:        jsonString(obj, "date"),
		Image:       imageref.SitePath(jsonString(obj, "image")),
		Credit:      jsonString(obj, "credit"),
		Description: jsonString(obj, "description"),
		Tags:        jsonTags(obj["tags"]),
	}
}

func gallerySortValue(item core.GalleryItem) string {
	if item.Date != "" {
		return item.Date
	}
	return item.ID
}

// jsonString pulls a string field out of a decoded JSON object; non-string
// scalars are tolerated and stringified.
func jsonString(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// jsonTags coerces a tags value into a string list. A scalar becomes a
// single tag; non-string members of a list are skipped. The validator warns
// about non-list shapes, the builder just keeps going.
func jsonTags(v any) []string {
	switch t := v.(type) {
	case nil:
		return []string{}
	case []any:
		tags := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				tags = append(tags, strings.TrimSpace(s))
			}
		}
		return tags
	case string:
		if strings.TrimSpace(t) == "" {
			return []string{}
		}
		return []string{strings.TrimSpace(t)}
	default:
		return []string{}
	}
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
