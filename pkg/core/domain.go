// Package core defines the canonical records emitted by the build pipeline
// and the naming/ordering rules shared by the builders and the validator.
package core

// Event is a canonical calendar entry as the renderer reads it.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Link        string `json:"link"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
	SortKey     string `json:"sortKey"`
	Source      string `json:"source"`
}

// Link is a canonical entry on the links page.
type Link struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SortKey     string `json:"sortKey"`
	Source      string `json:"source"`
}

// GalleryItem is a canonical gallery entry. Image is either an external
// http(s) URL or a site-relative path under gallery/images.
type GalleryItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Date        string   `json:"date,omitempty"`
	Image       string   `json:"image"`
	Credit      string   `json:"credit,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

// NewsItem is produced by an external channel and only validated here,
// never built.
type NewsItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
	Thumb   string `json:"thumb,omitempty"`
}

// Collection is the shape of every canonical output document.
type Collection[T any] struct {
	Items []T `json:"items"`
}

// DefaultCategory is assigned to links that declare no category.
const DefaultCategory = "General"

// undatedSortDate makes events without a date sort after every dated event.
const undatedSortDate = "9999-12-31"

// EventSortKey builds the chronological sort key for an event. Lexicographic
// comparison of the result yields date-then-time order; undated events sort
// last, untimed events sort first within their day.
func EventSortKey(date, tm string) string {
	if date == "" {
		date = undatedSortDate
	}
	if tm == "" {
		tm = "00:00"
	}
	return date + "T" + tm
}

// LinkSortKey groups links by category, then orders alphabetically by title.
func LinkSortKey(category, title string) string {
	return category + "::" + title
}

// NewsTypes is the closed set of accepted news item types.
var NewsTypes = []string{
	"announcement",
	"updates",
	"field-notes",
	"in-the-news",
	"ideas",
	"admin",
	"qa",
}

// IsNewsType reports whether t is one of the accepted news types.
func IsNewsType(t string) bool {
	for _, n := range NewsTypes {
		if t == n {
			return true
		}
	}
	return false
}
