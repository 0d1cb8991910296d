package substr

import "strings"

// Pattern finds at most one span per input string: the first or otherwise
// best match by the pattern's own rule. Patterns are stateless and safe for
// concurrent use against different inputs.
type Pattern func(s string) (Span, bool)

// None never matches.
var None Pattern = func(s string) (Span, bool) {
	return Span{}, false
}

// All matches the entire input, including the empty string.
var All Pattern = func(s string) (Span, bool) {
	return Span{s, 0, len(s)}, true
}

// Prefix matches inputs starting with prefix. An empty prefix matches a
// zero-length span at the start of any input.
func Prefix(prefix string) Pattern {
	return func(s string) (Span, bool) {
		if !strings.HasPrefix(s, prefix) {
			return Span{}, false
		}
		return Span{s, 0, len(prefix)}, true
	}
}

// Suffix matches inputs ending with suffix. An empty suffix matches a
// zero-length span at the end of any input.
func Suffix(suffix string) Pattern {
	return func(s string) (Span, bool) {
		if !strings.HasSuffix(s, suffix) {
			return Span{}, false
		}
		return Span{s, len(s) - len(suffix), len(s)}, true
	}
}

// First matches the leftmost occurrence of snippet. An empty snippet
// matches a zero-length span at the start of any input.
func First(snippet string) Pattern {
	return func(s string) (Span, bool) {
		return occurrence(s, strings.Index(s, snippet), len(snippet))
	}
}

// Last matches the rightmost occurrence of snippet. An empty snippet
// matches a zero-length span at the end of any input.
func Last(snippet string) Pattern {
	return func(s string) (Span, bool) {
		return occurrence(s, strings.LastIndex(s, snippet), len(snippet))
	}
}

func occurrence(s string, index, length int) (Span, bool) {
	if index < 0 {
		return Span{}, false
	}
	return Span{s, index, index + length}, true
}

// In finds the span in s, or reports false if the pattern does not match.
func (p Pattern) In(s string) (Span, bool) {
	return p(s)
}

// RemoveFrom returns s with the matched span removed, or s unchanged if the
// pattern does not match.
func (p Pattern) RemoveFrom(s string) string {
	if span, ok := p(s); ok {
		return span.Remove()
	}
	return s
}

// ReplaceFrom returns s with the matched span replaced by replacement, or s
// unchanged if the pattern does not match.
func (p Pattern) ReplaceFrom(s, replacement string) string {
	if span, ok := p(s); ok {
		return span.ReplaceWith(replacement)
	}
	return s
}

// Or returns a pattern that falls back to q when p does not match. q is
// tried on the same original input and only when p fails.
func (p Pattern) Or(q Pattern) Pattern {
	return func(s string) (Span, bool) {
		if span, ok := p(s); ok {
			return span, true
		}
		return q(s)
	}
}

// then matches with p and applies f to the span on success.
func (p Pattern) then(f func(Span) Span) Pattern {
	return func(s string) (Span, bool) {
		span, ok := p(s)
		if !ok {
			return Span{}, false
		}
		return f(span), true
	}
}

// Before projects the match to the region before it, for example:
//
//	startFromDoubleSlash := substr.First("//").Before().RemoveFrom(uri)
func (p Pattern) Before() Pattern {
	return p.then(Span.left)
}

// After projects the match to the region after it.
func (p Pattern) After() Pattern {
	return p.then(Span.right)
}

// AndBefore extends the match to the beginning of the input, for example:
//
//	schemeStripped := substr.First("://").AndBefore().RemoveFrom(uri)
func (p Pattern) AndBefore() Pattern {
	return p.then(Span.extendLeft)
}

// AndAfter extends the match to the end of the input, for example:
//
//	commentRemoved := substr.First("//").AndAfter().RemoveFrom(line)
func (p Pattern) AndAfter() Pattern {
	return p.then(Span.extendRight)
}
