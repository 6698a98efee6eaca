package match

import "strings"

// CJK Unified Ideographs block.
const (
	ideographFirst = '\u4e00'
	ideographLast  = '\u9fff'
)

// Transliterator maps ideographic text to lowercase romanized syllables.
type Transliterator interface {
	Transliterate(s string) []string
}

// TransliteratorFunc adapts a function to Transliterator.
type TransliteratorFunc func(s string) []string

// Transliterate calls f(s).
func (f TransliteratorFunc) Transliterate(s string) []string { return f(s) }

// PlainMatch reports whether query is a case-insensitive substring of
// candidate. It is false when either string is empty.
func PlainMatch(query, candidate string) bool {
	if query == "" || candidate == "" {
		return false
	}
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(query))
}

// ContainsIdeograph reports whether s has at least one CJK Unified Ideograph.
func ContainsIdeograph(s string) bool {
	for _, r := range s {
		if r >= ideographFirst && r <= ideographLast {
			return true
		}
	}
	return false
}

// Matcher applies identity matching with a fixed transliteration scheme.
type Matcher struct {
	translit Transliterator
}

// NewMatcher creates a Matcher. A nil Transliterator uses Pinyin.
func NewMatcher(t Transliterator) *Matcher {
	if t == nil {
		t = NewPinyin()
	}
	return &Matcher{translit: t}
}

// IdentityMatch reports whether query identifies candidate, bridging an
// ideographic query to a romanized candidate.
func (m *Matcher) IdentityMatch(query, candidate string) bool {
	return m.Compile(query).Match(candidate)
}

// Compile prepares query for repeated matching against many candidates.
func (m *Matcher) Compile(query string) *Pattern {
	p := &Pattern{lowered: strings.ToLower(query)}
	if query == "" || !ContainsIdeograph(query) {
		return p
	}

	for _, tok := range m.translit.Transliterate(query) {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" {
			p.syllables = append(p.syllables, tok)
		}
	}
	return p
}

// Pattern is a compiled identity-match query.
type Pattern struct {
	lowered   string
	syllables []string
}

// Syllables returns the transliterated tokens, or nil when the query has no
// ideographs.
func (p *Pattern) Syllables() []string {
	if len(p.syllables) == 0 {
		return nil
	}
	out := make([]string, len(p.syllables))
	copy(out, p.syllables)
	return out
}

// Match reports whether the compiled query identifies candidate.
func (p *Pattern) Match(candidate string) bool {
	if p.lowered == "" || candidate == "" {
		return false
	}
	lc := strings.ToLower(candidate)
	if strings.Contains(lc, p.lowered) {
		return true
	}
	if len(p.syllables) == 0 {
		return false
	}
	for _, syl := range p.syllables {
		if !strings.Contains(lc, syl) {
			return false
		}
	}
	return true
}
