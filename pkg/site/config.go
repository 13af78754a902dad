// Package site describes where a site keeps its content and where the
// canonical JSON documents are written.
package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-site configuration file at the site root.
const ConfigFile = "stile.yaml"

// DefaultReportCap bounds how many warnings and errors the validator prints
// per severity before truncating.
const DefaultReportCap = 200

// DefaultInclude are the source filename patterns consulted when the config
// does not override them.
var DefaultInclude = []string{"*.txt", "*.md"}

// Config is the YAML shape of stile.yaml. Zero values mean "use defaults",
// so a missing file behaves identically to an empty one.
type Config struct {
	ContentDir string   `yaml:"content_dir"`
	DataDir    string   `yaml:"data_dir"`
	GalleryDir string   `yaml:"gallery_dir"`
	ReportCap  int      `yaml:"report_cap"`
	Include    []string `yaml:"include"`
}

// LoadConfig reads stile.yaml from the site root. A missing file yields the
// zero Config; a malformed file or an invalid include pattern is an error.
func LoadConfig(root string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}

	for _, pat := range cfg.Include {
		if !doublestar.ValidatePattern(pat) {
			return cfg, fmt.Errorf("invalid include pattern %q in %s", pat, ConfigFile)
		}
	}

	return cfg, nil
}

// Layout resolves every directory and file the pipeline touches. All paths
// are absolute except the Rel helper's output.
type Layout struct {
	Root string

	EventsDir string
	LinksDir  string
	NewsDir   string

	GalleryMetaDir     string
	GalleryImagesDir   string
	GalleryLegacyIndex string

	EventsOut  string
	LinksOut   string
	GalleryOut string
	MapsOut    string

	ReportCap int
	Include   []string
}

// NewLayout builds the layout for a site root, applying config overrides.
func NewLayout(root string, cfg Config) Layout {
	abs, err := filepath.Abs(root)
	if err == nil {
		root = abs
	}

	content := orDefault(cfg.ContentDir, "content")
	data := orDefault(cfg.DataDir, "data")
	gallery := orDefault(cfg.GalleryDir, "gallery")

	l := Layout{
		Root: root,

		EventsDir: filepath.Join(root, content, "events"),
		LinksDir:  filepath.Join(root, content, "links"),
		NewsDir:   filepath.Join(root, content, "news"),

		GalleryMetaDir:     filepath.Join(root, gallery, "meta"),
		GalleryImagesDir:   filepath.Join(root, gallery, "images"),
		GalleryLegacyIndex: filepath.Join(root, gallery, "index.json"),

		EventsOut:  filepath.Join(root, data, "events", "events.json"),
		LinksOut:   filepath.Join(root, data, "links", "links.json"),
		GalleryOut: filepath.Join(root, data, "gallery", "gallery.json"),
		MapsOut:    filepath.Join(root, data, "maps", "maps.json"),

		ReportCap: cfg.ReportCap,
		Include:   cfg.Include,
	}

	if l.ReportCap <= 0 {
		l.ReportCap = DefaultReportCap
	}
	if len(l.Include) == 0 {
		l.Include = DefaultInclude
	}

	return l
}

// Load combines LoadConfig and NewLayout for the common case.
func Load(root string) (Layout, error) {
	cfg, err := LoadConfig(root)
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(root, cfg), nil
}

// Rel rewrites an absolute path relative to the site root for display.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
