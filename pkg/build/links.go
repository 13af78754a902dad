package build

import (
	"sort"

	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/source"
)

// RenderLinks produces the links document and the number of items in it.
func (b *Builder) RenderLinks() ([]byte, int, error) {
	names, err := listSources(b.layout.LinksDir, b.layout.Include)
	if err != nil {
		return nil, 0, err
	}

	items := make([]core.Link, 0, len(names))
	for _, name := range names {
		rec, err := source.ReadRecord(b.layout.LinksDir, name)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, linkFromRecord(rec, b.layout.Rel(rec.Path)))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortKey != items[j].SortKey {
			return items[i].SortKey < items[j].SortKey
		}
		return items[i].ID < items[j].ID
	})

	doc, err := marshalDoc(core.Collection[core.Link]{Items: items})
	return doc, len(items), err
}

func linkFromRecord(rec source.Record, sourcePath string) core.Link {
	f := rec.Fields

	title := core.Pick(f, core.LinkTitleKeys)
	if title == "" {
		title = core.TitleFromFilename(rec.ID)
	}

	category := core.Pick(f, core.LinkCategoryKeys)
	if category == "" {
		category = core.DefaultCategory
	}

	return core.Link{
		ID:          rec.ID,
		Title:       title,
		URL:         core.Pick(f, core.LinkURLKeys),
		Description: core.Pick(f, core.LinkDescriptionKeys),
		Category:    category,
		SortKey:     core.LinkSortKey(category, title),
		Source:      sourcePath,
	}
}
