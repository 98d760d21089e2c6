package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRenderRoundTrip(t *testing.T) {
	cases := []string{"d", "s", "f", "r", "ds", "dds", "sdf", "rsd", ""}
	for _, s := range cases {
		tl, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if got, want := Render(tl), s+"v"; got != want {
			t.Errorf("Render(Parse(%q)) = %q, want %q", s, got, want)
		}
	}
}

func TestParseUnknownCode(t *testing.T) {
	_, err := Parse("dq")
	if err == nil {
		t.Fatal("expected an error for an unknown format code")
	}
	ferr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if ferr.Char != 'q' || ferr.Pos != 1 {
		t.Errorf("got FormatError{%q, %d}, want {'q', 1}", ferr.Char, ferr.Pos)
	}
}

func TestParseUnknownCodeAtStart(t *testing.T) {
	_, err := Parse("q")
	ferr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if ferr.Char != 'q' || ferr.Pos != 0 {
		t.Errorf("got FormatError{%q, %d}, want {'q', 0}", ferr.Char, ferr.Pos)
	}
}

func TestDepth(t *testing.T) {
	tl, err := Parse("ds")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Depth(tl), 3; got != want {
		t.Errorf("Depth(ds+values) = %d, want %d", got, want)
	}
}

func TestEqual(t *testing.T) {
	a, _ := Parse("ds")
	b, _ := Parse("ds")
	c, _ := Parse("sd")
	if !Equal(a, b) {
		t.Error("expected structurally identical trees to be Equal")
	}
	if Equal(a, c) {
		t.Error("expected differently-ordered trees to not be Equal")
	}
}

type levelCounter struct {
	TreeWalker
	counts map[byte]int
}

func newLevelCounter() *levelCounter {
	lc := &levelCounter{counts: map[byte]int{}}
	lc.TreeWalker = NewTreeWalker(lc)
	return lc
}

func (lc *levelCounter) VisitDense(d Dense) {
	lc.counts['d']++
	lc.TreeWalker.VisitDense(d)
}

func (lc *levelCounter) VisitSparse(s Sparse) {
	lc.counts['s']++
	lc.TreeWalker.VisitSparse(s)
}

func TestPermissiveVisitorOverride(t *testing.T) {
	tl, _ := Parse("dsds")
	lc := newLevelCounter()
	tl.Accept(lc)

	want := map[byte]int{'d': 2, 's': 2}
	if diff := cmp.Diff(want, lc.counts); diff != "" {
		t.Errorf("level counts mismatch (-want +got):\n%s", diff)
	}
}
