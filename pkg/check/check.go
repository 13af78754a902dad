// Package check holds the pure field predicates shared by the builders and
// the content validator. Sharing one implementation guarantees that content
// the validator accepts is content the builders can process.
package check

import (
	"regexp"
	"strings"
	"time"
)

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	httpURLRe = regexp.MustCompile(`^https?://\S+$`)
)

// IsISODate reports whether s is a YYYY-MM-DD string naming a real calendar
// date. The round trip through time.Parse rejects shapes like 2021-02-30
// that the pattern alone would accept.
func IsISODate(s string) bool {
	if !isoDateRe.MatchString(s) {
		return false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return t.UTC().Format("2006-01-02") == s
}

// IsTimeOptional reports whether s is empty (time is optional) or a valid
// 24-hour HH:mm string.
func IsTimeOptional(s string) bool {
	return s == "" || timeRe.MatchString(s)
}

// IsHTTPURL reports whether s is a non-empty http(s) URL.
func IsHTTPURL(s string) bool {
	return httpURLRe.MatchString(s)
}

// IsHTTPURLOptional reports whether s is empty or an http(s) URL.
func IsHTTPURLOptional(s string) bool {
	return s == "" || IsHTTPURL(s)
}

// NonEmpty reports whether s contains any non-whitespace character.
func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
