package tags

import (
	"sort"
	"strings"
)

// Selection bounds for a tag list.
const (
	MinTags = 2
	MaxTags = 4
)

// Rule pairs a tag with the lowercase substrings that vote for it.
// Rule order is significant: ties in score resolve to the earlier rule.
type Rule struct {
	Tag      string
	Keywords []string
}

// Classifier assigns topical tags to a scoring corpus by keyword
// frequency. The rule table is fixed at construction and never
// mutated afterwards.
type Classifier struct {
	rules    []Rule
	fallback [2]string
}

// NewClassifier builds a classifier over the given rules. Keywords
// are normalized to lowercase. fallback names the two tags returned
// when nothing in the corpus matches any rule.
func NewClassifier(rules []Rule, fallback [2]string) *Classifier {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Rule{Tag: r.Tag, Keywords: kws}
	}
	return &Classifier{rules: normalized, fallback: fallback}
}

// scored is an ephemeral per-rule tally.
type scored struct {
	tag   string
	score int
}

// Classify scores the corpus against every rule and returns 2 to 4
// distinct tags. Rules are ordered by descending score with the
// table order breaking ties; up to four positive scorers are taken.
// With no positive scorer the fixed fallback pair is returned, and a
// single positive scorer is padded with the next rule in sorted
// order regardless of its score.
func (c *Classifier) Classify(corpus string) []string {
	lower := strings.ToLower(corpus)

	ranked := make([]scored, len(c.rules))
	for i, r := range c.rules {
		total := 0
		for _, kw := range r.Keywords {
			total += countOccurrences(lower, kw)
		}
		ranked[i] = scored{tag: r.Tag, score: total}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var out []string
	for _, s := range ranked {
		if s.score <= 0 || len(out) == MaxTags {
			break
		}
		out = append(out, s.tag)
	}

	if len(out) == 0 {
		return []string{c.fallback[0], c.fallback[1]}
	}
	if len(out) == 1 && len(ranked) > 1 {
		out = append(out, ranked[1].tag)
	}
	return out
}

// countOccurrences counts non-overlapping occurrences of needle in
// haystack by repeated substring search, advancing past each match.
func countOccurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count := 0
	for {
		i := strings.Index(haystack, needle)
		if i < 0 {
			return count
		}
		count++
		haystack = haystack[i+len(needle):]
	}
}
