package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 5}
	b := Span{File: 1, Start: 0, End: 1}
	if got := a.Cover(b); got != (Span{File: 1, Start: 0, End: 5}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files = %v, want %v", got, a)
	}
}

func TestSpan_LenEmptyString(t *testing.T) {
	sp := Span{File: 3, Start: 2, End: 7}
	if sp.Len() != 5 {
		t.Errorf("Len() = %d", sp.Len())
	}
	if sp.Empty() {
		t.Error("span should not be empty")
	}
	if s := sp.String(); s != "3:2-7" {
		t.Errorf("String() = %q", s)
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Error("zero-length span should be empty")
	}
}
