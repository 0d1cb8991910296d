package substr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"
)

// FirstOfAny matches the leftmost occurrence of any of the given snippets,
// regardless of argument order; when several snippets match at the same
// position, the longest wins. The snippets are compiled once into an
// Aho-Corasick automaton that screens the input in a single pass.
//
// At least one snippet is required and snippets must be non-empty; use
// First("") for the empty-needle anchor semantics.
func FirstOfAny(snippets ...string) (Pattern, error) {
	if len(snippets) == 0 {
		return nil, errors.New("substr: FirstOfAny requires at least one snippet")
	}
	builder := ahocorasick.NewBuilder()
	for _, snippet := range snippets {
		if snippet == "" {
			return nil, errors.New("substr: FirstOfAny snippets must be non-empty")
		}
		builder.AddPattern([]byte(snippet))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton for %d snippets: %w", len(snippets), err)
	}
	return func(s string) (Span, bool) {
		m, ok := auto.Find([]byte(s), 0)
		if !ok {
			return Span{}, false
		}
		// The automaton reports the match that ends first. A strictly
		// longer snippet may still start earlier (or extend a match at the
		// same start), so rescan those for the leftmost-longest span. A
		// snippet no longer than the reported match cannot start before it
		// without ending even earlier.
		candLen := m.End - m.Start
		best := Span{s, m.Start, m.End}
		for _, snippet := range snippets {
			if len(snippet) <= candLen {
				continue
			}
			i := strings.Index(s, snippet)
			if i < 0 || i > best.start {
				continue
			}
			if i < best.start || i+len(snippet) > best.end {
				best = Span{s, i, i + len(snippet)}
			}
		}
		return best, true
	}, nil
}
