package model

import "fmt"

// BoardSize is the side length of every board
const BoardSize = 10

// Coordinate identifies a cell on a board
type Coordinate struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// InBounds returns true if the coordinate is on a BoardSize x BoardSize grid
func (c Coordinate) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Step returns the neighbouring coordinate in the given direction
func (c Coordinate) Step(d Direction) Coordinate {
	return Coordinate{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// String renders the coordinate as row letter + 1-based column, e.g. "E3"
func (c Coordinate) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+c.Row, c.Col+1)
}

// Direction is a unit step on the grid
type Direction struct {
	DRow int
	DCol int
}

var (
	DirectionUp    = Direction{DRow: -1, DCol: 0}
	DirectionDown  = Direction{DRow: 1, DCol: 0}
	DirectionLeft  = Direction{DRow: 0, DCol: -1}
	DirectionRight = Direction{DRow: 0, DCol: 1}
)

// AllDirections returns a fresh queue of the four axis directions in probing order
func AllDirections() []Direction {
	return []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}
}

// Orientation is the axis a ship is laid along
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal" // extends to the right of the anchor
	OrientationVertical   Orientation = "vertical"   // extends below the anchor
)

// Valid returns true for the two known orientations
func (o Orientation) Valid() bool {
	return o == OrientationHorizontal || o == OrientationVertical
}

// ShipCoordinates expands an anchor into the cells a ship of the given size covers.
// The result may run off the board; placement validation rejects that.
func ShipCoordinates(anchor Coordinate, orientation Orientation, size int) []Coordinate {
	coords := make([]Coordinate, size)
	for i := 0; i < size; i++ {
		if orientation == OrientationVertical {
			coords[i] = Coordinate{Row: anchor.Row + i, Col: anchor.Col}
		} else {
			coords[i] = Coordinate{Row: anchor.Row, Col: anchor.Col + i}
		}
	}
	return coords
}
