// Package sanitizer normalizes free-text input before validation and
// storage. Sanitization never rejects input, it only cleans it; rejection
// is the validator's job.
package sanitizer

import (
	"net/url"
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var reCollapseSpaces = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return reCollapseSpaces.ReplaceAllString(s, " ")
}

// SanitizeText trims surrounding whitespace and collapses internal runs of
// whitespace. Used for names, titles, comments and chat messages.
func SanitizeText(input string) string {
	p := Pipeline{
		strings.TrimSpace,
		collapseSpaces,
	}
	return p.Apply(input)
}

// SanitizeSlice applies a strategy to every element, dropping empties and
// duplicates while preserving order.
func SanitizeSlice(values []string, strategy Strategy) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, v := range values {
		s := strategy(v)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// SanitizeTag lowercases and trims a tag-like value (service types, pet
// sizes).
func SanitizeTag(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// SanitizeURL returns a cleaned absolute URL, or "" when the input cannot
// be parsed as one.
func SanitizeURL(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}

	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return ""
	}

	u.Path = strings.TrimSuffix(strings.TrimSpace(u.Path), "/")
	return u.String()
}
