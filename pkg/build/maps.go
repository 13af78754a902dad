package build

import (
	"fmt"
	"os"
)

type mapsItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type mapsDoc struct {
	Items []mapsItem `json:"items"`
}

// SeedMaps writes a placeholder maps document on first run only. Existing
// content is never overwritten, so hand-curated map entries survive builds.
func (b *Builder) SeedMaps() (bool, error) {
	if _, err := os.Stat(b.layout.MapsOut); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	doc, err := marshalDoc(mapsDoc{Items: []mapsItem{
		{
			ID:          "example-map",
			Title:       "Example map",
			Description: "Replace this entry with real map references.",
			URL:         "https://www.openstreetmap.org/",
		},
	}})
	if err != nil {
		return false, err
	}

	if err := b.write(b.layout.MapsOut, doc); err != nil {
		return false, fmt.Errorf("failed to seed maps document: %w", err)
	}
	return true, nil
}
