package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fernhollow/stile/pkg/check"
	"github.com/fernhollow/stile/pkg/imageref"
	"github.com/fernhollow/stile/pkg/source"
)

// maxTagLength flags tags that look like sentences pasted into the wrong
// field rather than labels.
const maxTagLength = 40

func (v *Validator) validateGallery(r *Report) error {
	if _, err := os.Stat(v.layout.GalleryMetaDir); err == nil {
		return v.validateGalleryMeta(r)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return v.validateGalleryLegacy(r)
}

func (v *Validator) validateGalleryMeta(r *Report) error {
	names, err := source.List(v.layout.GalleryMetaDir, []string{"*.json"})
	if err != nil {
		return err
	}

	ids := newIDSet()
	for _, name := range names {
		r.Counts.Files++
		file := v.layout.Rel(v.layout.GalleryMetaDir) + "/" + name

		obj, err := source.ReadJSON(filepath.Join(v.layout.GalleryMetaDir, name))
		if err != nil {
			r.errorf(file, "Invalid JSON: %v", err)
			continue
		}

		id := jsonString(obj, "id")
		if id == "" {
			// The filename stem is the documented fallback identity.
			id = strings.TrimSuffix(name, filepath.Ext(name))
		}
		ids.add(r, file, id)

		v.checkGalleryItem(r, file, obj)
	}

	return nil
}

// validateGalleryLegacy checks the consolidated index file used before
// per-item metadata existed. All findings are attributed to the index file,
// qualified by item position.
func (v *Validator) validateGalleryLegacy(r *Report) error {
	file := v.layout.Rel(v.layout.GalleryLegacyIndex)

	obj, err := source.ReadJSON(v.layout.GalleryLegacyIndex)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		r.Counts.Files++
		r.errorf(file, "Invalid JSON: %v", err)
		return nil
	}
	r.Counts.Files++

	raw, ok := obj["items"].([]any)
	if !ok {
		r.errorf(file, "Missing items list")
		return nil
	}

	ids := newIDSet()
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			r.errorf(file, "items[%d]: not an object", i)
			continue
		}
		at := fmt.Sprintf("%s#items[%d]", file, i)
		if id := jsonString(m, "id"); id == "" {
			r.errorf(at, "Missing id")
		} else {
			ids.add(r, at, id)
		}
		v.checkGalleryItem(r, at, m)
	}

	return nil
}

// checkGalleryItem applies the per-item rules shared by both input shapes.
func (v *Validator) checkGalleryItem(r *Report, file string, obj map[string]any) {
	image := jsonString(obj, "image")
	ref := imageref.Resolve(image, v.layout.Root, v.layout.GalleryImagesDir)
	switch {
	case ref == nil:
		r.errorf(file, "Missing image (an image path or URL is required)")
	case ref.Kind == imageref.KindURL:
		if !check.IsHTTPURL(ref.Value) {
			r.errorf(file, "Invalid image URL %q", ref.Value)
		}
	case ref.Kind == imageref.KindFile:
		if _, err := os.Stat(ref.Value); err != nil {
			r.errorf(file, "Image file not found: %s", v.layout.Rel(ref.Value))
		}
	}

	if date := jsonString(obj, "date"); date != "" && !check.IsISODate(date) {
		r.errorf(file, "Invalid date %q (expected a real YYYY-MM-DD calendar date)", date)
	}

	switch tags := obj["tags"].(type) {
	case nil:
	case []any:
		for _, t := range tags {
			s, ok := t.(string)
			if !ok {
				r.warnf(file, "Non-string tag %v", t)
				continue
			}
			if len(s) > maxTagLength {
				r.warnf(file, "Overlong tag %q (max %d characters recommended)", s, maxTagLength)
			}
		}
	default:
		r.warnf(file, "tags is not a list (value tolerated, but use a JSON array)")
	}

	if !check.NonEmpty(jsonString(obj, "title")) {
		r.warnf(file, "Missing title")
	}
}
