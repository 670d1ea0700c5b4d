package model

// AttackOutcome classifies the result of a shot
type AttackOutcome string

const (
	OutcomeHit             AttackOutcome = "hit"
	OutcomeMiss            AttackOutcome = "miss"
	OutcomeSunk            AttackOutcome = "sunk"
	OutcomeAlreadyAttacked AttackOutcome = "already_attacked"
)

// AttackResult is what a board reports back after a shot
type AttackResult struct {
	Outcome  AttackOutcome
	ShipName string // Set only when Outcome is OutcomeSunk
}

// ConsumedTurn returns false for shots at cells that were already resolved
func (r AttackResult) ConsumedTurn() bool {
	return r.Outcome != OutcomeAlreadyAttacked
}

// String renders the result for logs and terminal output
func (r AttackResult) String() string {
	if r.Outcome == OutcomeSunk {
		return "sunk " + r.ShipName
	}
	return string(r.Outcome)
}
