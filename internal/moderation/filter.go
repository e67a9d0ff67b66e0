// Package moderation masks blocked words in outgoing messages and statuses.
//
// Matching runs an Aho-Corasick automaton over a normalized copy of the text
// (lowercased, leet-speak folded, punctuation and spaces dropped) and maps
// each hit back onto the original runes, so "B.4.d" is caught while the
// surrounding spacing is preserved.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
	"github.com/zhubert/murmur/internal/logger"
)

// DefaultCensorChar replaces each masked rune.
const DefaultCensorChar = '*'

// Filter censors blocked words. A Filter with no words is a pass-through.
type Filter struct {
	matcher    *goahocorasick.Machine
	censorChar rune
	log        *slog.Logger
}

// textMapping pairs the normalized runes with their index in the original.
type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewFilter builds the automaton for words. Entries that normalize to
// nothing (pure punctuation, blanks) and duplicates are skipped.
func NewFilter(words []string, censorChar rune) (*Filter, error) {
	if censorChar == 0 {
		censorChar = DefaultCensorChar
	}
	f := &Filter{censorChar: censorChar, log: logger.WithComponent("moderation")}

	patterns := lo.UniqBy(
		lo.Filter(
			lo.Map(words, func(w string, _ int) []rune { return normalizeRunes([]rune(w)) }),
			func(p []rune, _ int) bool { return len(p) > 0 },
		),
		func(p []rune) string { return string(p) },
	)
	if len(patterns) == 0 {
		return f, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	f.matcher = m
	f.log.Debug("filter built", "patterns", len(patterns))
	return f, nil
}

// Enabled reports whether the filter has anything to match.
func (f *Filter) Enabled() bool {
	return f != nil && f.matcher != nil
}

// Censor returns original with every blocked word masked, plus the words
// that matched in order of appearance. It returns nil words when nothing
// matched.
func (f *Filter) Censor(original string) (string, []string) {
	if !f.Enabled() {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.normalized) == 0 {
		return original, nil
	}

	spans := f.matcher.MultiPatternSearch(mapping.normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var found []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapping.origIdx) {
			continue
		}
		from := mapping.origIdx[start]
		to := mapping.origIdx[end-1] + 1
		for i := from; i < to; i++ {
			origRunes[i] = f.censorChar
		}
		found = append(found, string(span.Word))
	}
	if len(found) > 0 {
		f.log.Debug("text censored", "matches", len(found))
	}
	return string(origRunes), found
}

// Apply is Censor without the match list.
func (f *Filter) Apply(text string) string {
	out, _ := f.Censor(text)
	return out
}

func normalize(input string) textMapping {
	origRunes := []rune(input)
	m := textMapping{
		normalized: make([]rune, 0, len(origRunes)),
		origIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		m.normalized = append(m.normalized, unicode.ToLower(clean))
		m.origIdx = append(m.origIdx, i)
	}
	return m
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune folds common leet-speak substitutions back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
