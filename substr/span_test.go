package substr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flattened view of a span for diffing
type spanView struct {
	Index  int
	Len    int
	Str    string
	Before string
	After  string
	Remove string
}

func view(s Span) spanView {
	return spanView{
		Index:  s.Index(),
		Len:    s.Len(),
		Str:    s.String(),
		Before: s.Before(),
		After:  s.After(),
		Remove: s.Remove(),
	}
}

func TestSpanAccessors(t *testing.T) {
	tests := map[string]struct {
		givenPattern Pattern
		givenStr     string
		want         spanView
	}{
		"first in middle": {
			givenPattern: First("bar"),
			givenStr:     "foobarbaz",
			want:         spanView{Index: 3, Len: 3, Str: "bar", Before: "foo", After: "baz", Remove: "foobaz"},
		},
		"last of repeated": {
			givenPattern: Last("bar"),
			givenStr:     "foobarbarbaz",
			want:         spanView{Index: 6, Len: 3, Str: "bar", Before: "foobar", After: "baz", Remove: "foobarbaz"},
		},
		"prefix at start": {
			givenPattern: Prefix("foo"),
			givenStr:     "foobar",
			want:         spanView{Index: 0, Len: 3, Str: "foo", Before: "", After: "bar", Remove: "bar"},
		},
		"suffix at end": {
			givenPattern: Suffix("baz"),
			givenStr:     "foobaz",
			want:         spanView{Index: 3, Len: 3, Str: "baz", Before: "foo", After: "", Remove: "foo"},
		},
		"all of string": {
			givenPattern: All,
			givenStr:     "foo",
			want:         spanView{Index: 0, Len: 3, Str: "foo", Before: "", After: "", Remove: ""},
		},
		"all of empty string": {
			givenPattern: All,
			givenStr:     "",
			want:         spanView{Index: 0, Len: 0, Str: "", Before: "", After: "", Remove: ""},
		},
		"stacked projections": {
			givenPattern: First("//").After().Before(),
			givenStr:     "a//b",
			want:         spanView{Index: 0, Len: 3, Str: "a//", Before: "", After: "b", Remove: "b"},
		},
		"zero length span": {
			givenPattern: First(""),
			givenStr:     "ab",
			want:         spanView{Index: 0, Len: 0, Str: "", Before: "", After: "ab", Remove: "ab"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			span, ok := tt.givenPattern.In(tt.givenStr)
			if !ok {
				t.Fatalf("In(%q) did not match", tt.givenStr)
			}
			if d := cmp.Diff(tt.want, view(span)); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}

func TestSpanPartition(t *testing.T) {
	patterns := map[string]Pattern{
		"first":      First("bar"),
		"last":       Last("a"),
		"prefix":     Prefix("f"),
		"suffix":     Suffix("z"),
		"all":        All,
		"empty":      First(""),
		"and after":  First("b").AndAfter(),
		"and before": First("b").AndBefore(),
	}
	strs := []string{"", "foobarbaz", "bar", "aaa", "fz"}

	for name, p := range patterns {
		t.Run(name, func(t *testing.T) {
			for _, s := range strs {
				span, ok := p.In(s)
				if !ok {
					continue
				}
				if got := span.Before() + span.String() + span.After(); got != s {
					t.Errorf("partition of %q broken: %q + %q + %q = %q", s, span.Before(), span.String(), span.After(), got)
				}
			}
		})
	}
}

func TestSpanReplaceWith(t *testing.T) {
	tests := map[string]struct {
		givenPattern Pattern
		givenStr     string
		givenRepl    string
		want         string
	}{
		"single char":       {First("bar"), "foobarbaz", "-", "foo-baz"},
		"longer string":     {First("bar"), "foobarbaz", "quux", "fooquuxbaz"},
		"empty replacement": {First("bar"), "foobarbaz", "", "foobaz"},
		"literal dollar":    {First("bar"), "foobarbaz", "$1", "foo$1baz"},
		"at start":          {Prefix("foo"), "foobar", "x", "xbar"},
		"at end":            {Suffix("bar"), "foobar", "x", "foox"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			span, ok := tt.givenPattern.In(tt.givenStr)
			if !ok {
				t.Fatalf("In(%q) did not match", tt.givenStr)
			}
			if got := span.ReplaceWith(tt.givenRepl); got != tt.want {
				t.Errorf("ReplaceWith(%q) = %q, want %q", tt.givenRepl, got, tt.want)
			}
		})
	}
}

func TestSpanEquality(t *testing.T) {
	a, _ := First("bar").In("foobarbaz")
	b, _ := First("bar").In("foobarbaz")
	if a != b {
		t.Errorf("spans of equal strings and bounds should be equal: %+v != %+v", a, b)
	}

	c, _ := First("bar").In("xxxbarbaz")
	if a == c {
		t.Errorf("spans of different owning strings should not be equal")
	}

	// same text, different bounds
	d, _ := Last("bar").In("foobarbarbaz")
	e, _ := First("bar").In("foobarbarbaz")
	if d == e {
		t.Errorf("spans with different bounds should not be equal")
	}
}

func TestSpanDerivations(t *testing.T) {
	span, ok := First("bar").In("foobarbaz")
	if !ok {
		t.Fatal("no match")
	}

	tests := map[string]struct {
		given Span
		want  spanView
	}{
		"left":        {span.left(), spanView{Index: 0, Len: 3, Str: "foo", Before: "", After: "barbaz", Remove: "barbaz"}},
		"right":       {span.right(), spanView{Index: 6, Len: 3, Str: "baz", Before: "foobar", After: "", Remove: "foobar"}},
		"extendLeft":  {span.extendLeft(), spanView{Index: 0, Len: 6, Str: "foobar", Before: "", After: "baz", Remove: "baz"}},
		"extendRight": {span.extendRight(), spanView{Index: 3, Len: 6, Str: "barbaz", Before: "foo", After: "", Remove: "foo"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, view(tt.given)); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
		})
	}
}
