// Package source reads human-authored content records. The builders and the
// validator both go through this package, so a file one layer can read, the
// other can too.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/fernhollow/stile/pkg/kvtext"
)

// Record is a parsed source file. ID is the filename (extension included),
// the historical identity scheme for content records.
type Record struct {
	ID     string
	Path   string
	Fields map[string]string
}

// List returns the names of files in dir matching any of the include
// patterns, sorted lexicographically for deterministic output. A missing
// directory propagates os.ErrNotExist so callers can distinguish "no
// content" from "no section".
func List(dir string, patterns []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, pat := range patterns {
			if ok, _ := doublestar.Match(pat, e.Name()); ok {
				names = append(names, e.Name())
				break
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadRecord parses one source file according to its extension: ".txt" as
// key-value text, ".md" as YAML frontmatter with the body becoming the
// description unless the frontmatter already declares one.
func ReadRecord(dir, name string) (Record, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	rec := Record{ID: name, Path: path}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".md":
		fields, err := parseFrontmatter(data)
		if err != nil {
			return Record{}, fmt.Errorf("%s: %w", name, err)
		}
		rec.Fields = fields
	default:
		rec.Fields = kvtext.Parse(string(data))
	}

	return rec, nil
}

func parseFrontmatter(data []byte) (map[string]string, error) {
	var matter map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	fields := make(map[string]string, len(matter))
	for k, v := range matter {
		fields[kvtext.NormalizeKey(k)] = stringify(v)
	}

	if text := strings.TrimSpace(string(body)); text != "" && fields["description"] == "" {
		fields["description"] = text
	}

	return fields, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, "\n")
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// ReadJSON decodes a single JSON object file into a generic map.
func ReadJSON(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return obj, nil
}
