package core

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Legacy field aliases, first match wins. The order is a compatibility
// contract with existing content files: older conventions stay readable, and
// adding a new alias is a one-line change here.
var (
	EventTitleKeys       = []string{"title", "event", "name"}
	EventDateKeys        = []string{"date", "when"}
	EventTimeKeys        = []string{"time", "start", "start_time"}
	EventLocationKeys    = []string{"location", "place", "venue"}
	EventLinkKeys        = []string{"link", "url"}
	EventContactKeys     = []string{"contact", "email"}
	EventDescriptionKeys = []string{"description", "details", "notes"}

	LinkTitleKeys       = []string{"title", "name"}
	LinkURLKeys         = []string{"url", "link"}
	LinkCategoryKeys    = []string{"category", "section", "group"}
	LinkDescriptionKeys = []string{"description", "notes"}
)

// Pick returns the value of the first key present and non-empty in fields.
func Pick(fields map[string]string, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(fields[k]); v != "" {
			return v
		}
	}
	return ""
}

var filenameDateRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// DateFromFilename extracts a leading YYYY-MM-DD- prefix from a source
// filename, the conventional event naming scheme. Returns "" when the name
// carries no date prefix. The caller still decides whether the date is a
// real calendar date.
func DateFromFilename(name string) string {
	m := filenameDateRe.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	return m[1]
}

var titleCaser = cases.Title(language.English)

// TitleFromFilename derives a human-readable fallback title from a source
// filename: the extension and any date prefix are stripped, hyphens and
// underscores become spaces, and words are title-cased.
func TitleFromFilename(name string) string {
	stem := name
	if i := strings.LastIndex(stem, "."); i > 0 {
		stem = stem[:i]
	}
	stem = filenameDateRe.ReplaceAllString(stem, "")
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	stem = strings.TrimSpace(stem)
	if stem == "" {
		return name
	}
	return titleCaser.String(stem)
}
