package validate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fernhollow/stile/pkg/check"
	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/source"
)

// validateNews checks news metadata files. News content arrives from an
// external channel, so an absent directory is not a problem — only present
// files are held to the contract.
func (v *Validator) validateNews(r *Report) error {
	names, err := source.List(v.layout.NewsDir, []string{"*.json"})
	if errors.Is(err, os.ErrNotExist) {
		v.log.Debug("news directory absent, skipping")
		return nil
	}
	if err != nil {
		return err
	}

	ids := newIDSet()
	dates := make(map[string]string) // date -> first file using it
	for _, name := range names {
		r.Counts.Files++
		file := v.layout.Rel(v.layout.NewsDir) + "/" + name

		obj, err := source.ReadJSON(filepath.Join(v.layout.NewsDir, name))
		if err != nil {
			// One malformed file must not end the run.
			r.errorf(file, "Invalid JSON: %v", err)
			continue
		}

		id := jsonString(obj, "id")
		if id == "" {
			r.errorf(file, "Missing id")
		}
		ids.add(r, file, id)

		switch date := jsonString(obj, "date"); {
		case date == "":
			r.errorf(file, "Missing date")
		case !check.IsISODate(date):
			r.errorf(file, "Invalid date %q (expected a real YYYY-MM-DD calendar date)", date)
		default:
			// Dates double as the publication order, so they must be
			// unique across the directory like ids.
			if first, ok := dates[date]; ok {
				r.errorf(file, "Duplicate date %q (already used by %s)", date, first)
			} else {
				dates[date] = file
			}
		}

		switch newsType := jsonString(obj, "type"); {
		case newsType == "":
			r.errorf(file, "Missing type (allowed: %s)", strings.Join(core.NewsTypes, ", "))
		case !core.IsNewsType(newsType):
			r.errorf(file, "Unknown type %q (allowed: %s)", newsType, strings.Join(core.NewsTypes, ", "))
		}

		if thumb := jsonString(obj, "thumb"); !check.IsHTTPURLOptional(thumb) {
			r.errorf(file, "Invalid thumb %q (must start with http:// or https://)", thumb)
		}

		if !check.NonEmpty(jsonString(obj, "title")) {
			r.warnf(file, "Missing title")
		}
		if !check.NonEmpty(jsonString(obj, "summary")) {
			r.warnf(file, "Missing summary")
		}
	}

	return nil
}

func jsonString(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
