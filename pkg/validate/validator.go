// Package validate re-reads the same sources as the builders and reports
// everything that would break rendering (errors) or degrade it (warnings).
//
// The validator never mutates the tree and never stops at the first bad
// file: one run surfaces the complete list of problems so content authors
// fix everything in one pass.
package validate

import (
	"log/slog"
	"strings"

	"github.com/fernhollow/stile/pkg/site"
)

// Validator checks every content section of one site.
type Validator struct {
	layout site.Layout
	log    *slog.Logger
}

// New creates a Validator for the given site layout.
func New(layout site.Layout, log *slog.Logger) *Validator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Validator{layout: layout, log: log}
}

// Run validates all sections and returns the aggregate report. The returned
// error is reserved for environment failures (unreadable directories); bad
// content never causes an error here.
func (v *Validator) Run() (*Report, error) {
	r := newReport()
	r.Cap = v.layout.ReportCap

	if err := v.validateEvents(r); err != nil {
		return nil, err
	}
	if err := v.validateLinks(r); err != nil {
		return nil, err
	}
	if err := v.validateNews(r); err != nil {
		return nil, err
	}
	if err := v.validateGallery(r); err != nil {
		return nil, err
	}

	v.log.Info("validation complete",
		"files", r.Counts.Files, "errors", r.Counts.Errors, "warnings", r.Counts.Warnings)

	return r, nil
}

// idSet tracks identifiers within one directory. Exact duplicates are
// errors, attributed to the second and later occurrences; ids differing only
// by case get a warning because case-insensitive filesystems would collide.
type idSet struct {
	seen   map[string]string // id -> first file
	folded map[string]string // lowercased id -> first file
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]string), folded: make(map[string]string)}
}

// add registers id for file and reports collisions on r.
func (s *idSet) add(r *Report, file, id string) {
	if id == "" {
		return
	}
	if first, ok := s.seen[id]; ok {
		r.errorf(file, "Duplicate id %q (already used by %s)", id, first)
		return
	}
	s.seen[id] = file

	lower := strings.ToLower(id)
	if first, ok := s.folded[lower]; ok {
		r.warnf(file, "Id %q differs only by case from an id in %s; this collides on case-insensitive filesystems", id, first)
		return
	}
	s.folded[lower] = file
}
