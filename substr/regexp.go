package substr

import (
	"fmt"

	"github.com/coregx/coregex"
)

// Regexer is the part of a compiled regular expression used by Regexp and
// RegexpGroup. Both *coregex.Regex and the standard library's
// *regexp.Regexp satisfy it. The expression is compiled once by the caller;
// the returned indices follow the stdlib convention of start/end pairs per
// group, with -1 for groups that did not participate in the match.
type Regexer interface {
	FindStringSubmatchIndex(s string) []int
}

// Regexp matches the first find of re, using the regex engine's own
// left-to-right find semantics. Anchors inside the expression behave per
// the engine's rules.
func Regexp(re Regexer) Pattern {
	return RegexpGroup(re, 0)
}

// RegexpGroup matches capture group of the first find of re. Group 0 is
// the whole match.
//
// RegexpGroup panics if group is negative. The returned pattern panics at
// match time when the expression matches but does not define the requested
// group for that particular find; other inputs are unaffected.
func RegexpGroup(re Regexer, group int) Pattern {
	if group < 0 {
		panic(fmt.Sprintf("substr: group cannot be negative: %d", group))
	}
	return func(s string) (Span, bool) {
		idx := re.FindStringSubmatchIndex(s)
		if idx == nil {
			return Span{}, false
		}
		if 2*group+1 >= len(idx) || idx[2*group] < 0 {
			panic(fmt.Sprintf("substr: group %d out of range for match of %d groups", group, len(idx)/2))
		}
		return Span{s, idx[2*group], idx[2*group+1]}, true
	}
}

// CompileRegexp compiles expr with coregex and returns the pattern matching
// its first find. Reuse the returned pattern rather than recompiling per
// call.
func CompileRegexp(expr string) (Pattern, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %q: %w", expr, err)
	}
	return Regexp(re), nil
}

// MustRegexp is like CompileRegexp but panics if expr does not compile.
// Use for expressions known valid at compile time.
func MustRegexp(expr string) Pattern {
	return Regexp(coregex.MustCompile(expr))
}
