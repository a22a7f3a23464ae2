package movement

import "testing"

func TestClassifyAllFlagCombinations(t *testing.T) {
	tests := []struct {
		name     string
		flags    NeighborFlags
		expected Position
	}{
		{"open", NeighborFlags{}, PosCenter},
		{"right", NeighborFlags{Right: true}, PosRight},
		{"left", NeighborFlags{Left: true}, PosLeft},
		{"left right", NeighborFlags{Left: true, Right: true}, PosVertical},
		{"bottom", NeighborFlags{Bottom: true}, PosBottom},
		{"bottom right", NeighborFlags{Bottom: true, Right: true}, PosBottomRight},
		{"bottom left", NeighborFlags{Bottom: true, Left: true}, PosBottomLeft},
		{"bottom left right", NeighborFlags{Bottom: true, Left: true, Right: true}, PosVertical},
		{"top", NeighborFlags{Top: true}, PosTop},
		{"top right", NeighborFlags{Top: true, Right: true}, PosTopRight},
		{"top left", NeighborFlags{Top: true, Left: true}, PosTopLeft},
		{"top left right", NeighborFlags{Top: true, Left: true, Right: true}, PosVertical},
		{"top bottom", NeighborFlags{Top: true, Bottom: true}, PosHorizontal},
		{"top bottom right", NeighborFlags{Top: true, Bottom: true, Right: true}, PosHorizontal},
		{"top bottom left", NeighborFlags{Top: true, Bottom: true, Left: true}, PosHorizontal},
		{"boxed in", NeighborFlags{Top: true, Bottom: true, Left: true, Right: true}, PosHorizontal},
	}

	if len(tests) != 16 {
		t.Fatalf("expected 16 flag combinations, got %d", len(tests))
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.flags)
			if got != tc.expected {
				t.Errorf("Classify(%+v) = %v, expected %v", tc.flags, got, tc.expected)
			}
			if again := Classify(tc.flags); again != got {
				t.Errorf("Classify is not deterministic: %v then %v", got, again)
			}
		})
	}
}

func TestClassifyCorridorIgnoresSides(t *testing.T) {
	for _, left := range []bool{false, true} {
		for _, right := range []bool{false, true} {
			f := NeighborFlags{Top: true, Bottom: true, Left: left, Right: right}
			if got := Classify(f); got != PosHorizontal {
				t.Errorf("Classify(%+v) = %v, expected Horizontal", f, got)
			}
		}
	}
}

func TestPositionString(t *testing.T) {
	if PosTopLeft.String() != "TopLeft" {
		t.Errorf("String() = %q, expected TopLeft", PosTopLeft.String())
	}
	if Position(42).String() != "Position(42)" {
		t.Errorf("String() = %q for unknown position", Position(42).String())
	}
}
