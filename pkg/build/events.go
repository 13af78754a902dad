package build

import (
	"sort"

	"github.com/fernhollow/stile/pkg/core"
	"github.com/fernhollow/stile/pkg/source"
)

// RenderEvents produces the events document and the number of items in it.
func (b *Builder) RenderEvents() ([]byte, int, error) {
	names, err := listSources(b.layout.EventsDir, b.layout.Include)
	if err != nil {
		return nil, 0, err
	}

	items := make([]core.Event, 0, len(names))
	for _, name := range names {
		rec, err := source.ReadRecord(b.layout.EventsDir, name)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, eventFromRecord(rec, b.layout.Rel(rec.Path)))
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortKey != items[j].SortKey {
			return items[i].SortKey < items[j].SortKey
		}
		return items[i].ID < items[j].ID
	})

	doc, err := marshalDoc(core.Collection[core.Event]{Items: items})
	return doc, len(items), err
}

func eventFromRecord(rec source.Record, sourcePath string) core.Event {
	f := rec.Fields

	date := core.Pick(f, core.EventDateKeys)
	if date == "" {
		// Conventional filenames carry the date; accept it like the
		// validator does so both layers agree on sorting.
		date = core.DateFromFilename(rec.ID)
	}

	title := core.Pick(f, core.EventTitleKeys)
	if title == "" {
		title = core.TitleFromFilename(rec.ID)
	}

	tm := core.Pick(f, core.EventTimeKeys)

	return core.Event{
		ID:          rec.ID,
		Title:       title,
		Date:        date,
		Time:        tm,
		Location:    core.Pick(f, core.EventLocationKeys),
		Link:        core.Pick(f, core.EventLinkKeys),
		Contact:     core.Pick(f, core.EventContactKeys),
		Description: core.Pick(f, core.EventDescriptionKeys),
		SortKey:     core.EventSortKey(date, tm),
		Source:      sourcePath,
	}
}
