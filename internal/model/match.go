package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateSetup     MatchState = "setup"     // Human placing ships in roster order
	MatchStateBattle    MatchState = "battle"    // Alternating attacks, human first
	MatchStateGameOver  MatchState = "game_over" // One fleet sunk; Winner is set
	MatchStateAbandoned MatchState = "abandoned" // Ended by the front end
)

// TargetingState is the automated opponent's memory between turns
type TargetingState struct {
	LastHit    *Coordinate // Most recent hit whose ship is not yet sunk
	Directions []Direction // Directions still to probe around LastHit
}

// InTargetMode returns true while the opponent is probing around a hit
func (t *TargetingState) InTargetMode() bool {
	return t.LastHit != nil
}

// Reset drops back to random search
func (t *TargetingState) Reset() {
	t.LastHit = nil
	t.Directions = nil
}

// Match is a single game between a human and the automated opponent
type Match struct {
	ID        MatchID
	State     MatchState
	Winner    Side // Empty until game over
	Human     *Player
	Automated *Player
	Targeting TargetingState

	Turn int // Completed turns; a turn is one human shot plus the reply

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerFor returns the player on the given side
func (m *Match) PlayerFor(side Side) *Player {
	if side == SideAutomated {
		return m.Automated
	}
	return m.Human
}

// IsFinished returns true once no more moves are accepted
func (m *Match) IsFinished() bool {
	return m.State == MatchStateGameOver || m.State == MatchStateAbandoned
}

// MatchSnapshot is a render-ready copy of a match
type MatchSnapshot struct {
	ID            MatchID
	State         MatchState
	Winner        Side
	Turn          int
	HumanName     string
	RosterCursor  int
	NextShip      *ShipSpec     // Nil once the human fleet is placed
	HumanBoard    [][]CellState // Always fully revealed
	OpponentBoard [][]CellState // Unhit ships hidden until the match ends
	HumanSunk     int
	OpponentSunk  int
	FleetSize     int
}

// Snapshot builds a render-ready copy of the match
func (m *Match) Snapshot() MatchSnapshot {
	snap := MatchSnapshot{
		ID:            m.ID,
		State:         m.State,
		Winner:        m.Winner,
		Turn:          m.Turn,
		HumanName:     m.Human.Name,
		RosterCursor:  m.Human.RosterCursor,
		HumanBoard:    m.Human.Board.View(true),
		OpponentBoard: m.Automated.Board.View(m.IsFinished()),
		HumanSunk:     m.Human.Board.SunkCount(),
		OpponentSunk:  m.Automated.Board.SunkCount(),
		FleetSize:     len(m.Human.Roster),
	}
	if next, ok := m.Human.NextShip(); ok {
		snap.NextShip = &next
	}
	return snap
}
