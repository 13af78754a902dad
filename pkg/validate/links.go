package validate

import (
	"errors"
	"os"

	"github.com/fernhollow/stile/pkg/check"
	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/source"
)

func (v *Validator) validateLinks(r *Report) error {
	names, err := source.List(v.layout.LinksDir, v.layout.Include)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	ids := newIDSet()
	for _, name := range names {
		r.Counts.Files++
		file := v.layout.Rel(v.layout.LinksDir) + "/" + name
		ids.add(r, file, name)

		rec, err := source.ReadRecord(v.layout.LinksDir, name)
		if err != nil {
			r.errorf(file, "Unreadable source file: %v", err)
			continue
		}
		f := rec.Fields

		switch url := core.Pick(f, core.LinkURLKeys); {
		case url == "":
			r.errorf(file, "Missing URL (a URL: or Link: field is required)")
		case !check.IsHTTPURL(url):
			r.errorf(file, "Invalid URL %q (must start with http:// or https://)", url)
		}

		if !check.NonEmpty(core.Pick(f, core.LinkTitleKeys)) {
			r.warnf(file, "Missing Title (the filename will be used as a fallback)")
		}
		if !check.NonEmpty(core.Pick(f, core.LinkDescriptionKeys)) {
			r.warnf(file, "Missing Description")
		}
	}

	return nil
}
