// Package kvtext parses the restricted "Label: value" text format used by
// hand-edited content files.
//
// The parser is deliberately lenient: lines that fit no rule are dropped, not
// rejected. Strictness about the resulting values belongs to the validator,
// which can then report every problem in a file instead of failing on the
// first malformed line.
package kvtext

import (
	"regexp"
	"strings"
)

// labelRe matches a line that starts a new field. Labels are letters, spaces
// and hyphens; everything after the first colon is the initial value.
var labelRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z \-]*?)\s*:\s*(.*?)\s*$`)

var wsRe = regexp.MustCompile(`\s+`)

// NormalizeKey canonicalizes a field label: trimmed, lowercased, internal
// whitespace collapsed to single underscores.
func NormalizeKey(label string) string {
	return wsRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(label)), "_")
}

// Parse reads line-oriented text into a mapping of normalized field names to
// accumulated values.
//
// A line matching "Label: value" starts a new field. Any other non-blank line
// extends the most recently started field, joined with "\n" after trimming.
// Non-blank lines before the first label have no accumulation target and are
// dropped. A repeated label appends to the existing value rather than
// overwriting it.
func Parse(text string) map[string]string {
	fields := make(map[string]string)
	current := ""

	for _, line := range strings.Split(text, "\n") {
		if m := labelRe.FindStringSubmatch(line); m != nil {
			key := NormalizeKey(m[1])
			val := m[2]
			if prev, ok := fields[key]; ok && prev != "" {
				if val != "" {
					fields[key] = prev + "\n" + val
				}
			} else {
				fields[key] = val
			}
			current = key
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || current == "" {
			continue
		}
		if fields[current] == "" {
			fields[current] = trimmed
		} else {
			fields[current] += "\n" + trimmed
		}
	}

	return fields
}
