// Package classify maps job titles to an occupational taxonomy with an ordered
// cascade of regular expressions. The first rule that matches decides the
// category; rule order, not pattern specificity, resolves overlaps.
package classify

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/amishk599/bankradar/internal/textnorm"
)

// matchTimeout caps a single pattern evaluation. A timed-out pattern counts as
// not matching.
const matchTimeout = 250 * time.Millisecond

const maxExplanationKey = 60

type compiledRule struct {
	Rule
	re *regexp2.Regexp
}

// Classifier holds a compiled, immutable rule cascade. It is safe for
// concurrent use.
type Classifier struct {
	rules []compiledRule
}

// Explanation reports which rule decided a classification.
type Explanation struct {
	Category string
	Tag      string // rule tag, or the matched substring when the rule has none
	Matched  string // literal substring of the normalized text that matched
	Pattern  string
}

func (e Explanation) String() string {
	if e.Pattern == "" {
		return e.Category + "  |  —"
	}
	return fmt.Sprintf("%s  |  %s", e.Tag, e.Pattern)
}

// New compiles the three tiers into one cascade: overrides first, then
// priority rules, then base rules. A pattern defined more than once across
// priority and base keeps its first position and takes the category of its last
// definition.
func New(overrides, priority, base []Rule) (*Classifier, error) {
	merged := make([]Rule, 0, len(priority)+len(base))
	slot := make(map[string]int)
	for _, r := range append(append([]Rule(nil), priority...), base...) {
		if i, ok := slot[r.Pattern]; ok {
			merged[i].Category = r.Category
			if r.Tag != "" {
				merged[i].Tag = r.Tag
			}
			continue
		}
		slot[r.Pattern] = len(merged)
		merged = append(merged, r)
	}

	all := append(append([]Rule(nil), overrides...), merged...)
	c := &Classifier{rules: make([]compiledRule, 0, len(all))}
	for i, r := range all {
		if r.Category == "" {
			return nil, fmt.Errorf("rule %d (%s): empty category", i, r.Pattern)
		}
		re, err := regexp2.Compile(r.Pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling rule %d (%s): %w", i, r.Category, err)
		}
		re.MatchTimeout = matchTimeout
		c.rules = append(c.rules, compiledRule{Rule: r, re: re})
	}
	return c, nil
}

// Default builds a classifier over the built-in banking taxonomy.
func Default() (*Classifier, error) {
	return New(DefaultRules())
}

// Len returns the number of rules in the cascade.
func (c *Classifier) Len() int {
	return len(c.rules)
}

// Classify returns the category of the first rule matching the soft-normalized
// text, or Other.
func (c *Classifier) Classify(text string) string {
	return c.ClassifyWithExplanation(text).Category
}

// ClassifyWithExplanation classifies text like Classify and also reports the
// rule that fired.
func (c *Classifier) ClassifyWithExplanation(text string) Explanation {
	normalized := textnorm.SoftNormalize(text)
	if normalized == "" {
		return Explanation{Category: Other}
	}
	for _, r := range c.rules {
		m, err := r.re.FindStringMatch(normalized)
		if err != nil || m == nil {
			continue
		}
		matched := m.String()
		return Explanation{
			Category: r.Category,
			Tag:      explanationKey(r.Tag, matched),
			Matched:  matched,
			Pattern:  r.Pattern,
		}
	}
	return Explanation{Category: Other}
}

func explanationKey(tag, matched string) string {
	key := tag
	if key == "" {
		key = matched
	}
	key = strings.TrimSpace(key)
	if runes := []rune(key); len(runes) > maxExplanationKey {
		key = string(runes[:maxExplanationKey-3]) + "..."
	}
	return key
}
