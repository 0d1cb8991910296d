// Package substr locates a single contiguous span inside a string and
// derives new strings from it. A Pattern finds at most one Span per input;
// patterns compose through Or and the before/after projections.
//
// Typical use, stripping a scheme prefix:
//
//	substr.Prefix("http://").Or(substr.Prefix("https://")).RemoveFrom(uri)
//
// or splitting "name:value" text:
//
//	if colon, ok := substr.First(":").In(s); ok {
//		name, value := colon.Before(), colon.After()
//	}
package substr

// Span is a matched region [start, end) inside the string it was found in.
// It is a comparable value: two spans are equal iff they have equal owning
// strings and identical bounds. The zero Span is an empty match in an empty
// string.
type Span struct {
	str   string
	start int
	end   int
}

// Index returns the starting offset of the span in the owning string.
func (s Span) Index() int { return s.start }

// Len returns the length of the span.
func (s Span) Len() int { return s.end - s.start }

// String returns the matched text itself.
func (s Span) String() string { return s.str[s.start:s.end] }

// Before returns the part of the owning string before the span.
func (s Span) Before() string { return s.str[:s.start] }

// After returns the part of the owning string after the span.
func (s Span) After() string { return s.str[s.end:] }

// Remove returns the owning string with the span excised.
func (s Span) Remove() string {
	if s.end == len(s.str) {
		return s.Before()
	}
	if s.start == 0 {
		return s.After()
	}
	return s.Before() + s.After()
}

// ReplaceWith returns the owning string with the span replaced by
// replacement. The replacement is inserted literally, even for spans
// produced by a regex pattern.
func (s Span) ReplaceWith(replacement string) string {
	return s.Before() + replacement + s.After()
}

// left covers the part before the span.
func (s Span) left() Span { return Span{s.str, 0, s.start} }

// right covers the part after the span.
func (s Span) right() Span { return Span{s.str, s.end, len(s.str)} }

// extendLeft extends the span to the beginning of the owning string.
func (s Span) extendLeft() Span { return Span{s.str, 0, s.end} }

// extendRight extends the span to the end of the owning string.
func (s Span) extendRight() Span { return Span{s.str, s.start, len(s.str)} }
