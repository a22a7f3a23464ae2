package movement

import "fmt"

// Position classifies the occupied cell by the walls around it.
type Position int

const (
	PosLeft Position = iota
	PosRight
	PosTop
	PosBottom
	PosCenter
	PosHorizontal
	PosVertical
	PosTopLeft
	PosTopRight
	PosBottomLeft
	PosBottomRight
)

// String returns the position name.
func (p Position) String() string {
	switch p {
	case PosLeft:
		return "Left"
	case PosRight:
		return "Right"
	case PosTop:
		return "Top"
	case PosBottom:
		return "Bottom"
	case PosCenter:
		return "Center"
	case PosHorizontal:
		return "Horizontal"
	case PosVertical:
		return "Vertical"
	case PosTopLeft:
		return "TopLeft"
	case PosTopRight:
		return "TopRight"
	case PosBottomLeft:
		return "BottomLeft"
	case PosBottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// NeighborFlags records which of the four neighbors are wall tiles.
type NeighborFlags struct {
	Top, Bottom, Left, Right bool
}

// Classify maps neighbor flags to a Position.
// Corridors win over corners, corners over single edges, edges over Center.
func Classify(f NeighborFlags) Position {
	switch {
	case f.Top && f.Bottom:
		return PosHorizontal
	case f.Right && f.Left:
		return PosVertical
	case f.Right && f.Top:
		return PosTopRight
	case f.Left && f.Top:
		return PosTopLeft
	case f.Left && f.Bottom:
		return PosBottomLeft
	case f.Right && f.Bottom:
		return PosBottomRight
	case f.Top:
		return PosTop
	case f.Bottom:
		return PosBottom
	case f.Left:
		return PosLeft
	case f.Right:
		return PosRight
	default:
		return PosCenter
	}
}
