package world

import "testing"

func TestCalculateFOV_WallBlocksSight(t *testing.T) {
	// .....
	// ..#..  player at (0,1) cannot see (4,1) through the wall at (2,1)
	// .....
	m := NewMap(5, 3)
	m.SetTile(Pt(2, 1), Wall)
	visible := CalculateFOV(m, Pt(0, 1), 8)

	seen := make(map[Point]bool)
	for _, p := range visible {
		seen[p] = true
	}
	if !seen[Pt(2, 1)] {
		t.Error("wall itself should be visible")
	}
	if seen[Pt(4, 1)] {
		t.Error("(4,1) visible through wall")
	}
	if !seen[Pt(1, 0)] {
		t.Error("(1,0) should be visible")
	}
}

func TestRevealFOV_MarksRevealed(t *testing.T) {
	m := NewMap(5, 5)
	RevealFOV(m, Pt(2, 2), 1)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := m.IndexOf(x, y)
			inRange := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if m.IsRevealed(idx) != inRange {
				t.Errorf("IsRevealed(%d,%d) = %v, want %v", x, y, m.IsRevealed(idx), inRange)
			}
		}
	}
}

func TestCalculateFOV_OutOfBoundsCenter(t *testing.T) {
	if got := CalculateFOV(NewMap(2, 2), Pt(5, 5), 3); got != nil {
		t.Errorf("CalculateFOV(out of bounds) = %v, want nil", got)
	}
}

func TestDirectionDeltaAndOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Delta().Add(d.Opposite().Delta()) != (Point{}) {
			t.Errorf("%v delta + opposite delta != 0", d)
		}
	}
	if AllDirections()[0] != West || AllDirections()[3] != South {
		t.Errorf("AllDirections() = %v, want west first, south last", AllDirections())
	}
}
