// Package seo maps directory locations to URL path segments and back.
//
// A city/category pair is published under a single combined segment,
// "{city}-{category}-photographers". Resolving a segment is only possible
// against the live city and category allow-lists, since hyphens inside a
// segment do not tell where the city ends and the category begins.
package seo

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"directory/internal/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// PathPrefix is the root of every public directory path.
	PathPrefix = "/directory"
	// SegmentSuffix terminates every city/category segment.
	SegmentSuffix = "photographers"

	// DescriptionLimit is the maximum rune length of generated descriptions.
	DescriptionLimit = 160

	defaultNameSlug = "listing"
)

// ErrNotFound is returned when a segment does not resolve to an allowed pair.
var ErrNotFound = errors.New("city/category segment not found")

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	nonSlugChars    = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Fragment lower-cases value and replaces every run of characters outside
// [a-z0-9] with a single hyphen.
func Fragment(value string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(value), "-"), "-")
}

// Canonicalize returns the combined "{city}-{category}" fragment.
func Canonicalize(city, category string) string {
	return Fragment(city) + "-" + Fragment(category)
}

// Segment returns the city/category path segment including the suffix.
func Segment(city, category string) string {
	return Canonicalize(city, category) + "-" + SegmentSuffix
}

// CityCategoryPath returns the path of a city/category page.
func CityCategoryPath(city, category string) string {
	return PathPrefix + "/" + Segment(city, category)
}

// ProfilePath returns the path of a listing profile.
func ProfilePath(city, category, slug string) string {
	return CityCategoryPath(city, category) + "/" + slug
}

// Resolve parses a city/category segment against the allow-lists and returns
// the allow-list spelling of both values.
//
// The category is found by accumulating tokens from the right; the first
// accumulated buffer that names an allowed category wins, so a shorter
// category shadows a longer one ending with the same words. The remaining
// tokens must name an allowed city.
func Resolve(segment string, cities, categories []string) (city, category string, err error) {
	tokens := strings.Split(segment, "-")
	if len(tokens) < 3 || tokens[len(tokens)-1] != SegmentSuffix {
		return "", "", ErrNotFound
	}
	tokens = tokens[:len(tokens)-1]

	for _, token := range tokens {
		if token == "" {
			return "", "", ErrNotFound
		}
	}

	split := -1
	for i := len(tokens) - 1; i >= 1; i-- {
		if match, ok := lookup(tokens[i:], categories); ok {
			category = match
			split = i

			break
		}
	}
	if split < 0 {
		return "", "", ErrNotFound
	}

	city, ok := lookup(tokens[:split], cities)
	if !ok {
		return "", "", ErrNotFound
	}

	return city, category, nil
}

// lookup compares in lower-case fragment form so that allowed values containing
// hyphens or punctuation ("Stoke-On-Trent") resolve like space separated ones.
func lookup(tokens []string, allowed []string) (string, bool) {
	candidate := strings.ToLower(strings.Join(tokens, "-"))
	for _, value := range allowed {
		if Fragment(value) == candidate {
			return strings.TrimSpace(value), true
		}
	}

	return "", false
}

// TitleCase collapses whitespace and upper-cases the first letter of every
// word. Letters following a hyphen or apostrophe start a new word.
func TitleCase(value string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(value), " "))
}

// NameSlug derives the base slug of a listing from its business name.
func NameSlug(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "")
	slug = whitespaceRuns.ReplaceAllString(strings.TrimSpace(slug), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return defaultNameSlug
	}

	return slug
}

// Truncate shortens value to limit runes, ending with an ellipsis when cut.
func Truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	if limit <= 3 {
		return string([]rune(value)[:limit])
	}

	return string([]rune(value)[:limit-3]) + "..."
}
