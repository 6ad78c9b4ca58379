// Package country maps free-text locations to ISO 3166-1 alpha-2 codes. It
// prefers no answer to a guess: a location without an explicit code, a known
// alias or a known city yields nil.
package country

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/amishk599/bankradar/internal/textnorm"
)

// Confidence grades how a match was found.
type Confidence string

const (
	High   Confidence = "high"   // explicit ISO code in the text
	Medium Confidence = "medium" // country name, city or other alias
	Low    Confidence = "low"    // city file lookup
)

// Match is a resolved country.
type Match struct {
	Code       string
	Name       string
	Confidence Confidence
}

// Normalizer resolves locations. It is immutable after New and safe for
// concurrent use.
type Normalizer struct {
	aliasCode map[string]string
	aliasRe   *regexp.Regexp
	retryRe   *regexp.Regexp
	cities    *Cities
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithCities enables the low-confidence city lookup.
func WithCities(c *Cities) Option {
	return func(n *Normalizer) { n.cities = c }
}

// New builds a Normalizer over the built-in canonical and alias tables.
func New(opts ...Option) *Normalizer {
	codes := make(map[string]string, len(canonical)+len(aliases)+len(dottedAbbreviations))
	for code, name := range canonical {
		key := textnorm.Words(name)
		if ambiguousNames[key] {
			continue
		}
		codes[key] = code
	}
	for alias, code := range aliases {
		codes[alias] = code
	}

	n := &Normalizer{aliasCode: codes}
	n.aliasRe = compileAlternation(keys(codes))

	retry := keys(codes)
	for abbr, code := range dottedAbbreviations {
		if _, ok := codes[abbr]; !ok {
			codes[abbr] = code
			retry = append(retry, abbr)
		}
	}
	n.retryRe = compileAlternation(retry)

	for _, opt := range opts {
		opt(n)
	}
	return n
}

// compileAlternation builds one word-bounded alternation. Longer aliases come
// first so that at equal start the longest alias wins.
func compileAlternation(words []string) *regexp.Regexp {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Normalize resolves location to a country, or returns nil when the text
// carries no country signal.
func (n *Normalizer) Normalize(location string) *Match {
	if strings.TrimSpace(location) == "" {
		return nil
	}
	if code, ok := explicitCode(location); ok {
		return n.match(code, High)
	}
	if code, ok := n.scan(n.aliasRe, textnorm.Words(location)); ok {
		return n.match(code, Medium)
	}
	if strings.Contains(location, ".") {
		stripped := textnorm.Words(strings.ReplaceAll(location, ".", ""))
		if code, ok := n.scan(n.retryRe, stripped); ok {
			return n.match(code, Medium)
		}
	}
	if n.cities != nil {
		if code, ok := n.cities.lookup(textnorm.Words(location)); ok {
			return n.match(code, Low)
		}
	}
	return nil
}

func (n *Normalizer) match(code string, c Confidence) *Match {
	return &Match{Code: code, Name: canonical[code], Confidence: c}
}

// scan returns the code of the leftmost alias in text.
func (n *Normalizer) scan(re *regexp.Regexp, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	code, ok := n.aliasCode[m[1]]
	return code, ok
}

// explicitCode finds the first token of exactly two uppercase ASCII letters
// that is a canonical code and not also a US state abbreviation.
func explicitCode(location string) (string, bool) {
	tokens := strings.FieldsFunc(location, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		if len(tok) != 2 || !isUpperASCII(tok[0]) || !isUpperASCII(tok[1]) {
			continue
		}
		if usStateCodes[tok] {
			continue
		}
		if _, ok := canonical[tok]; ok {
			return tok, true
		}
	}
	return "", false
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
