// Package resources turns subtopic search queries into links on the
// supported learning platforms.
package resources

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/learngrid/learngrid/internal/api"
)

// Link is a rendered resource link for one platform.
type Link struct {
	Platform string
	Label    string
	URL      string
}

type platform struct {
	key      string
	template string
}

// platforms lists the recognised keys in display order.
var platforms = []platform{
	{"youtube", "https://www.youtube.com/results?search_query=%s"},
	{"udemy", "https://www.udemy.com/courses/search/?src=ukw&q=%s"},
	{"coursera", "https://www.coursera.org/search?query=%s"},
	{"articles", "https://www.google.com/search?q=%s"},
}

// Platforms returns the recognised platform keys.
func Platforms() []string {
	keys := make([]string, len(platforms))
	for i, p := range platforms {
		keys[i] = p.key
	}
	return keys
}

// Build returns the link for platform with query encoded into its search
// URL. Unknown platforms report false.
func Build(platformKey, query string) (Link, bool) {
	for _, p := range platforms {
		if p.key != platformKey {
			continue
		}
		return Link{
			Platform: p.key,
			Label:    Label(p.key),
			URL:      fmt.Sprintf(p.template, EscapeComponent(query)),
		}, true
	}
	return Link{}, false
}

// ForSubtopic builds links for every recognised platform in res, keeping
// the server's order and silently skipping the rest.
func ForSubtopic(res api.Resources) []Link {
	links := make([]Link, 0, len(res))
	for _, r := range res {
		if l, ok := Build(r.Platform, r.Query); ok {
			links = append(links, l)
		}
	}
	return links
}

// Label capitalises the first letter of a platform key.
func Label(key string) string {
	return cases.Title(language.Und, cases.NoLower).String(key)
}

// EscapeComponent percent-encodes s the way browsers encode a URI
// component: spaces become %20 and only A-Z a-z 0-9 - _ . ! ~ * ' ( )
// pass through.
func EscapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
