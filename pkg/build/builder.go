// Package build turns source content files into the canonical JSON documents
// the renderer consumes.
//
// Builders are deliberately permissive: a malformed date or URL passes
// through into the output unchanged. Catching bad content is the validator's
// job; the builder's contract is determinism — the same sources always
// produce byte-identical documents.
package build

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fernhollow/stile/pkg/site"
	"github.com/fernhollow/stile/pkg/source"
)

// Builder renders and writes every canonical document for one site.
type Builder struct {
	layout site.Layout
	log    *slog.Logger
}

// New creates a Builder for the given site layout.
func New(layout site.Layout, log *slog.Logger) *Builder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Builder{layout: layout, log: log}
}

// Summary reports what one build run produced.
type Summary struct {
	Events     int
	Links      int
	Gallery    int
	SeededMaps bool
}

// Run builds every section and writes the output documents.
func (b *Builder) Run() (Summary, error) {
	var s Summary

	eventsDoc, n, err := b.RenderEvents()
	if err != nil {
		return s, fmt.Errorf("events: %w", err)
	}
	s.Events = n
	if err := b.write(b.layout.EventsOut, eventsDoc); err != nil {
		return s, err
	}

	linksDoc, n, err := b.RenderLinks()
	if err != nil {
		return s, fmt.Errorf("links: %w", err)
	}
	s.Links = n
	if err := b.write(b.layout.LinksOut, linksDoc); err != nil {
		return s, err
	}

	galleryDoc, n, err := b.RenderGallery()
	if err != nil {
		return s, fmt.Errorf("gallery: %w", err)
	}
	s.Gallery = n
	if err := b.write(b.layout.GalleryOut, galleryDoc); err != nil {
		return s, err
	}

	seeded, err := b.SeedMaps()
	if err != nil {
		return s, fmt.Errorf("maps: %w", err)
	}
	s.SeededMaps = seeded

	b.log.Info("build complete",
		"events", s.Events, "links", s.Links, "gallery", s.Gallery,
		"maps_seeded", s.SeededMaps)

	return s, nil
}

// marshalDoc serializes a canonical document. Two-space indent plus a
// trailing newline; this exact byte layout is what the drift check compares.
func marshalDoc(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (b *Builder) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return err
	}
	b.log.Debug("wrote document", "path", b.layout.Rel(path), "bytes", len(data))
	return nil
}

// listSources enumerates one content directory. A missing directory is an
// empty section, not a failure; any other read error propagates.
func listSources(dir string, patterns []string) ([]string, error) {
	names, err := source.List(dir, patterns)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return names, err
}
