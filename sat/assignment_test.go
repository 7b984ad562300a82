package sat

import "testing"

func TestAssignment_AssignContainsValue(t *testing.T) {
	a := NewAssignment(3)

	if a.Contains(1) {
		t.Errorf("Contains(1) = true before Assign, want false")
	}

	a.Assign(1, true)
	if !a.Contains(1) {
		t.Errorf("Contains(1) = false after Assign, want true")
	}
	if !a.Value(1) {
		t.Errorf("Value(1) = false, want true")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestAssignment_Assign_alreadySetIsNoOp(t *testing.T) {
	a := NewAssignment(2)
	a.Assign(1, true)
	a.Assign(1, false) // no-op: 1 is already set

	if !a.Value(1) {
		t.Errorf("Value(1) = false, want true (second Assign should be a no-op)")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
}

func TestAssignment_Assign_outOfRangeIsNoOp(t *testing.T) {
	a := NewAssignment(2)
	a.Assign(0, true)
	a.Assign(3, true)

	if a.Len() != 0 {
		t.Errorf("Len() = %d, want 0", a.Len())
	}
}

func TestAssignment_BacktrackTo(t *testing.T) {
	a := NewAssignment(4)
	a.Assign(1, true)
	a.Assign(2, false)
	a.Assign(3, true)

	a.BacktrackTo(1)

	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}
	if !a.Contains(1) {
		t.Errorf("Contains(1) = false, want true")
	}
	if a.Contains(2) || a.Contains(3) {
		t.Errorf("Contains(2) or Contains(3) = true, want both false")
	}
}

func TestAssignment_IsTotal(t *testing.T) {
	a := NewAssignment(2)
	if a.IsTotal() {
		t.Errorf("IsTotal() = true on empty assignment, want false")
	}
	a.Assign(1, true)
	a.Assign(2, true)
	if !a.IsTotal() {
		t.Errorf("IsTotal() = false, want true")
	}
}

func TestAssignment_Verify(t *testing.T) {
	f, err := NewFormula(2, [][]int{{1, 2}, {-1, 2}}, "")
	if err != nil {
		t.Fatalf("NewFormula(): %s", err)
	}

	a := NewAssignment(2)
	a.Assign(2, true)
	if !a.Verify(f) {
		t.Errorf("Verify() = false, want true: x2 alone satisfies both clauses")
	}

	b := NewAssignment(2)
	b.Assign(1, true)
	if b.Verify(f) {
		t.Errorf("Verify() = true, want false: x1=true with x2 unset falsifies (-1 v 2)")
	}
}

func TestAssignment_Verify_partialNeverVacuouslySatisfies(t *testing.T) {
	f, err := NewFormula(3, [][]int{{1, 2, 3}}, "")
	if err != nil {
		t.Fatalf("NewFormula(): %s", err)
	}

	a := NewAssignment(3)
	a.Assign(1, false)
	if a.Verify(f) {
		t.Errorf("Verify() = true, want false: clause has two unset literals and none true")
	}
}
