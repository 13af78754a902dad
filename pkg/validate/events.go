package validate

import (
	"errors"
	"os"
	"regexp"

	"github.com/fernhollow/stile/pkg/check"
	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/source"
)

// canonicalEventNameRe is the recommended event filename convention. It is
// advisory: deviations are warnings, never errors.
var canonicalEventNameRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-[a-z0-9][a-z0-9-]*\.(txt|md)$`)

func (v *Validator) validateEvents(r *Report) error {
	names, err := source.List(v.layout.EventsDir, v.layout.Include)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	ids := newIDSet()
	for _, name := range names {
		r.Counts.Files++
		file := v.layout.Rel(v.layout.EventsDir) + "/" + name
		ids.add(r, file, name)

		rec, err := source.ReadRecord(v.layout.EventsDir, name)
		if err != nil {
			r.errorf(file, "Unreadable source file: %v", err)
			continue
		}
		f := rec.Fields

		date := core.Pick(f, core.EventDateKeys)
		if date == "" {
			// The filename prefix is an accepted way to declare the date.
			date = core.DateFromFilename(name)
		}
		switch {
		case date == "":
			r.errorf(file, "Missing Date (expected a Date: field or a YYYY-MM-DD- filename prefix)")
		case !check.IsISODate(date):
			r.errorf(file, "Invalid Date %q (expected a real YYYY-MM-DD calendar date)", date)
		}

		if tm := core.Pick(f, core.EventTimeKeys); !check.IsTimeOptional(tm) {
			r.errorf(file, "Invalid Time %q (expected 24-hour HH:mm)", tm)
		}

		if link := core.Pick(f, core.EventLinkKeys); !check.IsHTTPURLOptional(link) {
			r.errorf(file, "Invalid Link %q (must start with http:// or https://)", link)
		}

		if !check.NonEmpty(core.Pick(f, core.EventTitleKeys)) {
			r.warnf(file, "Missing Title (the filename will be used as a fallback)")
		}
		if !check.NonEmpty(core.Pick(f, core.EventLocationKeys)) {
			r.warnf(file, "Missing Location")
		}
		if !check.NonEmpty(core.Pick(f, core.EventDescriptionKeys)) {
			r.warnf(file, "Missing Description")
		}
		if !canonicalEventNameRe.MatchString(name) {
			r.warnf(file, "Non-canonical filename (recommended: YYYY-MM-DD-slug.txt)")
		}
	}

	return nil
}
