package model

// ShipSpec describes a ship waiting to be placed
type ShipSpec struct {
	Name string
	Size int
}

// DefaultRoster returns the canonical six-ship fleet in placement order
func DefaultRoster() []ShipSpec {
	return []ShipSpec{
		{Name: "Carrier", Size: 5},
		{Name: "Battleship", Size: 4},
		{Name: "Destroyer 1", Size: 3},
		{Name: "Destroyer 2", Size: 3},
		{Name: "Submarine 1", Size: 2},
		{Name: "Submarine 2", Size: 2},
	}
}

// Ship is a vessel owned by a board
type Ship struct {
	Name      string
	Size      int
	Positions []Coordinate // Empty until placed
	Hits      int
}

// NewShip creates an unplaced ship from a spec
func NewShip(spec ShipSpec) Ship {
	return Ship{Name: spec.Name, Size: spec.Size}
}

// IsPlaced returns true once the ship has been given positions
func (s *Ship) IsPlaced() bool {
	return len(s.Positions) > 0
}

// Occupies returns true if the coordinate is one of the ship's positions
func (s *Ship) Occupies(c Coordinate) bool {
	for _, p := range s.Positions {
		if p == c {
			return true
		}
	}
	return false
}

// RegisterHit counts a hit if the coordinate belongs to the ship.
// Repeated calls for the same coordinate count again; Board.ReceiveAttack
// only calls it for cells that were still occupied.
func (s *Ship) RegisterHit(c Coordinate) bool {
	if !s.Occupies(c) {
		return false
	}
	s.Hits++
	return true
}

// IsSunk returns true once every cell of the ship has been hit
func (s *Ship) IsSunk() bool {
	return s.Hits == s.Size
}
