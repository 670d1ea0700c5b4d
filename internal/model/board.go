package model

// CellState is the resolution state of a single board cell
type CellState string

const (
	CellEmpty    CellState = "empty"
	CellOccupied CellState = "occupied" // Ship present, not yet attacked
	CellHit      CellState = "hit"
	CellMiss     CellState = "miss"
	CellSunk     CellState = "sunk"
)

// IsResolved returns true once the cell has been attacked
func (s CellState) IsResolved() bool {
	return s == CellHit || s == CellMiss || s == CellSunk
}

// Cell is one grid square. Ship indexes into Board.Ships and is only
// meaningful while State is occupied, hit or sunk.
type Cell struct {
	State CellState
	Ship  int
}

// Board is one side's grid together with the ships placed on it
type Board struct {
	Cells [BoardSize][BoardSize]Cell // Row-major: Cells[row][col]
	Ships []Ship
}

// NewBoard creates an empty board with no ships
func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.Cells[row][col] = Cell{State: CellEmpty}
		}
	}
	return b
}

// CellAt returns the cell at the given coordinate; out-of-bounds reads are empty
func (b *Board) CellAt(c Coordinate) Cell {
	if !c.InBounds() {
		return Cell{State: CellEmpty}
	}
	return b.Cells[c.Row][c.Col]
}

// IsResolved returns true if the coordinate has already been attacked
func (b *Board) IsResolved(c Coordinate) bool {
	return b.CellAt(c).State.IsResolved()
}

// ValidatePlacement checks every coordinate is on the board and unoccupied
func (b *Board) ValidatePlacement(coords []Coordinate) error {
	if len(coords) == 0 {
		return ErrPlacementOutOfBounds
	}
	for _, c := range coords {
		if !c.InBounds() {
			return ErrPlacementOutOfBounds
		}
	}
	for _, c := range coords {
		if b.Cells[c.Row][c.Col].State != CellEmpty {
			return ErrPlacementOverlap
		}
	}
	return nil
}

// IsValidPlacement returns true if the coordinates can take a ship
func (b *Board) IsValidPlacement(coords []Coordinate) bool {
	return b.ValidatePlacement(coords) == nil
}

// PlaceShip puts the ship on the given coordinates and returns its index.
// Coordinates must already have passed ValidatePlacement.
func (b *Board) PlaceShip(ship Ship, coords []Coordinate) int {
	idx := len(b.Ships)
	ship.Positions = append([]Coordinate(nil), coords...)
	for _, c := range ship.Positions {
		b.Cells[c.Row][c.Col] = Cell{State: CellOccupied, Ship: idx}
	}
	b.Ships = append(b.Ships, ship)
	return idx
}

// ReceiveAttack resolves a shot at the given coordinate
func (b *Board) ReceiveAttack(c Coordinate) (AttackResult, error) {
	if !c.InBounds() {
		return AttackResult{}, ErrCoordinateOutOfBounds
	}

	cell := &b.Cells[c.Row][c.Col]
	switch cell.State {
	case CellHit, CellMiss, CellSunk:
		return AttackResult{Outcome: OutcomeAlreadyAttacked}, nil

	case CellOccupied:
		cell.State = CellHit
		ship := &b.Ships[cell.Ship]
		ship.RegisterHit(c)
		if ship.IsSunk() {
			for _, p := range ship.Positions {
				b.Cells[p.Row][p.Col].State = CellSunk
			}
			return AttackResult{Outcome: OutcomeSunk, ShipName: ship.Name}, nil
		}
		return AttackResult{Outcome: OutcomeHit}, nil

	default:
		cell.State = CellMiss
		return AttackResult{Outcome: OutcomeMiss}, nil
	}
}

// AllShipsSunk returns true if every ship on the board is sunk
func (b *Board) AllShipsSunk() bool {
	for i := range b.Ships {
		if !b.Ships[i].IsSunk() {
			return false
		}
	}
	return true
}

// SunkCount returns the number of sunk ships
func (b *Board) SunkCount() int {
	count := 0
	for i := range b.Ships {
		if b.Ships[i].IsSunk() {
			count++
		}
	}
	return count
}

// CountState returns the number of cells in the given state
func (b *Board) CountState(state CellState) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col].State == state {
				count++
			}
		}
	}
	return count
}

// Unresolved returns every coordinate that has not been attacked, row-major
func (b *Board) Unresolved() []Coordinate {
	var coords []Coordinate
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Cells[row][col].State.IsResolved() {
				coords = append(coords, Coordinate{Row: row, Col: col})
			}
		}
	}
	return coords
}

// View returns a copy of the cell states. With reveal false, unhit ships
// read as empty so the grid can be shown to the opposing side.
func (b *Board) View(reveal bool) [][]CellState {
	view := make([][]CellState, BoardSize)
	for row := 0; row < BoardSize; row++ {
		view[row] = make([]CellState, BoardSize)
		for col := 0; col < BoardSize; col++ {
			state := b.Cells[row][col].State
			if !reveal && state == CellOccupied {
				state = CellEmpty
			}
			view[row][col] = state
		}
	}
	return view
}
