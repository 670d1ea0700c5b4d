package model

// Side distinguishes the two players of a match
type Side string

const (
	SideHuman     Side = "human"
	SideAutomated Side = "automated"
)

// Player pairs a board with the ships still waiting to be placed on it
type Player struct {
	Name         string
	Side         Side
	Board        *Board
	Roster       []ShipSpec // Placement order
	RosterCursor int        // Index of the next unplaced roster entry
}

// NewPlayer creates a player with an empty board and the canonical roster
func NewPlayer(name string, side Side) *Player {
	return &Player{
		Name:   name,
		Side:   side,
		Board:  NewBoard(),
		Roster: DefaultRoster(),
	}
}

// NextShip returns the next roster entry to place, or false when all are placed
func (p *Player) NextShip() (ShipSpec, bool) {
	if p.RosterCursor >= len(p.Roster) {
		return ShipSpec{}, false
	}
	return p.Roster[p.RosterCursor], true
}

// RemainingShips returns the roster entries not yet placed
func (p *Player) RemainingShips() []ShipSpec {
	if p.RosterCursor >= len(p.Roster) {
		return nil
	}
	remaining := make([]ShipSpec, len(p.Roster)-p.RosterCursor)
	copy(remaining, p.Roster[p.RosterCursor:])
	return remaining
}

// AdvanceRoster moves the cursor past the ship just placed
func (p *Player) AdvanceRoster() {
	if p.RosterCursor < len(p.Roster) {
		p.RosterCursor++
	}
}

// FleetPlaced returns true once every roster entry is on the board
func (p *Player) FleetPlaced() bool {
	return p.RosterCursor >= len(p.Roster)
}
