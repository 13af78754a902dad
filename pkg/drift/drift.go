// Package drift verifies that the committed canonical documents match a
// fresh rebuild of the sources. Any difference means someone edited sources
// without rebuilding (or edited generated output by hand).
package drift

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fernhollow/stile/pkg/build"
	"github.com/fernhollow/stile/pkg/site"
)

// Checker compares freshly rendered documents against the working tree.
type Checker struct {
	layout site.Layout
	log    *slog.Logger
}

// New creates a Checker for the given site layout.
func New(layout site.Layout, log *slog.Logger) *Checker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Checker{layout: layout, log: log}
}

// Run rebuilds every generated section in memory and returns the relative
// paths of committed documents that differ. The maps placeholder is excluded
// since it is seeded once and then owned by content editors.
func (c *Checker) Run() ([]string, error) {
	b := build.New(c.layout, c.log)

	sections := []struct {
		name string
		out  string
		fn   func() ([]byte, int, error)
	}{
		{"events", c.layout.EventsOut, b.RenderEvents},
		{"links", c.layout.LinksOut, b.RenderLinks},
		{"gallery", c.layout.GalleryOut, b.RenderGallery},
	}

	var stale []string
	for _, s := range sections {
		fresh, _, err := s.fn()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		committed, err := os.ReadFile(s.out)
		if errors.Is(err, os.ErrNotExist) {
			committed = nil
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		if !bytes.Equal(fresh, committed) {
			stale = append(stale, c.layout.Rel(s.out))
			c.log.Debug("document drifted", "section", s.name,
				"committed_bytes", len(committed), "fresh_bytes", len(fresh))
		}
	}

	return stale, nil
}
