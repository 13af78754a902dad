// Package imageref classifies gallery image references and resolves them
// against the site tree.
//
// Several generations of content used different conventions for the same
// image ("pic.jpg", "images/pic.jpg", "gallery/images/pic.jpg", ...). The
// resolution rules below accept all of them; rule order matters because the
// prefixes overlap.
package imageref

import (
	"path"
	"path/filepath"
	"strings"
)

// Kind discriminates the two flavors of image reference.
type Kind string

const (
	// KindURL is an external http(s) image.
	KindURL Kind = "url"
	// KindFile is an image stored in the site tree.
	KindFile Kind = "file"
)

// Ref is a resolved image reference. For KindFile, Value is the absolute
// path to the expected file on disk.
type Ref struct {
	Kind  Kind
	Value string
}

// Resolve classifies raw and, for file references, resolves it to an
// absolute path. siteRoot is the repository root, imagesRoot the gallery
// images directory. Returns nil for empty input.
func Resolve(raw, siteRoot, imagesRoot string) *Ref {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return &Ref{Kind: KindURL, Value: raw}
	case strings.HasPrefix(raw, "images/"):
		return &Ref{Kind: KindFile, Value: filepath.Join(imagesRoot, strings.TrimPrefix(raw, "images/"))}
	case strings.HasPrefix(raw, "gallery/images/"):
		return &Ref{Kind: KindFile, Value: filepath.Join(imagesRoot, strings.TrimPrefix(raw, "gallery/images/"))}
	case strings.HasPrefix(raw, "gallery/"):
		return &Ref{Kind: KindFile, Value: filepath.Join(siteRoot, raw)}
	case !strings.Contains(raw, "/"):
		return &Ref{Kind: KindFile, Value: filepath.Join(imagesRoot, raw)}
	default:
		return &Ref{Kind: KindFile, Value: filepath.Join(siteRoot, raw)}
	}
}

// SitePath rewrites raw into the path the renderer should fetch: bare
// filenames and "images/..." references move under "gallery/images/", URLs
// and already-qualified paths pass through unchanged.
func SitePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	case strings.HasPrefix(raw, "images/"):
		return path.Join("gallery", raw)
	case !strings.Contains(raw, "/"):
		return path.Join("gallery", "images", raw)
	default:
		return raw
	}
}
