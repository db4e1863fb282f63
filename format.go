package remodel

import (
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PublishedOnLayout is the date layout used for "publishedOn" field values
const PublishedOnLayout = "2006-01-02"

// FormatPublished formats a published date as yyyy-MM-dd
func FormatPublished(t time.Time) string {
	return t.Format(PublishedOnLayout)
}

// ParsePublished parses a yyyy-MM-dd published date
func ParsePublished(s string) (time.Time, error) {
	return time.Parse(PublishedOnLayout, s)
}

// PublishedAgo formats a published date relative to now (e.g. "3 days ago")
func PublishedAgo(t time.Time) string {
	return humanize.Time(t)
}

// TitleCase converts a string to title case
func TitleCase(s string) string {
	// cases.Caser carries state, so one is created per call
	return cases.Title(language.English).String(s)
}

// KebabCase converts a string to kebab-case - runs of non-alphanumerics
// become a single dash and camelCase word boundaries are split
func KebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	pendingDash := false
	var prev rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash || (unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev))) {
				if b.Len() > 0 {
					b.WriteRune('-')
				}
				pendingDash = false
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			pendingDash = true
		}
		prev = r
	}
	return b.String()
}
