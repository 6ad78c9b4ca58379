// Package textnorm turns free-form job titles and locations into the canonical
// form every matcher works on: HTML-unescaped, accent-stripped, lowercased.
package textnorm

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	genderMarkerRegex = regexp.MustCompile(`\((?:h/?f|f/?h|e|ere|rice)\)`)
	slashFeminine     = regexp.MustCompile(`([a-z]{3,})/a`)
)

// StripAccents decomposes s (NFD) and drops every combining mark.
func StripAccents(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HTMLUnescape decodes HTML entities such as &amp; and &eacute;.
func HTMLUnescape(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(s)
}

// Prep unescapes, strips accents and lowercases.
func Prep(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(StripAccents(HTMLUnescape(s)))
}

// SoftNormalize is Prep plus removal of gender markers like "(h/f)" and
// collapsing of slash feminine suffixes ("banquero/a" -> "banqueroa"), so that
// gendered variants of a title match the same rules.
func SoftNormalize(s string) string {
	if s == "" {
		return ""
	}
	t := Prep(s)
	t = genderMarkerRegex.ReplaceAllString(t, "")
	t = slashFeminine.ReplaceAllString(t, "${1}a")
	return t
}

// Words lowercases and accent-strips s, then replaces every rune that is not a
// letter or digit with a single space. The result has no leading, trailing or
// repeated spaces.
func Words(s string) string {
	t := Prep(s)
	return strings.Join(strings.FieldsFunc(t, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), " ")
}
