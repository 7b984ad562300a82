package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewFormula(t *testing.T) {
	f, err := NewFormula(3, [][]int{{1, 2, 3}, {-1, -2}}, "test")
	if err != nil {
		t.Fatalf("NewFormula(): want no error, got %s", err)
	}

	want := &Formula{
		NumVars: 3,
		Source:  "test",
		Clauses: []Clause{
			{ID: 0, Literals: []Literal{1, 2, 3}},
			{ID: 1, Literals: []Literal{-1, -2}},
		},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("NewFormula(): mismatch (-want, +got):\n%s", diff)
	}
}

func TestNewFormula_emptyClause(t *testing.T) {
	f, err := NewFormula(2, [][]int{{}}, "")
	if err != nil {
		t.Fatalf("NewFormula(): want no error, got %s", err)
	}
	if got := f.Clauses[0].Len(); got != 0 {
		t.Errorf("Clauses[0].Len() = %d, want 0", got)
	}
}

func TestNewFormula_outOfRangeVariable(t *testing.T) {
	_, err := NewFormula(2, [][]int{{1, 3}}, "")
	if err == nil {
		t.Errorf("NewFormula(): want error, got none")
	}
}

func TestNewFormula_zeroLiteral(t *testing.T) {
	_, err := NewFormula(2, [][]int{{1, 0}}, "")
	if err == nil {
		t.Errorf("NewFormula(): want error, got none")
	}
}

func TestClause_Len(t *testing.T) {
	c := Clause{Literals: []Literal{1, -2, 3}}
	if got := c.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
