package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventShipPlaced     EventType = "ship_placed"
	EventBattleStarted  EventType = "battle_started"
	EventAttackResolved EventType = "attack_resolved"
	EventMatchOver      EventType = "match_over"
	EventMatchAbandoned EventType = "match_abandoned"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	MatchID   MatchID
	Side      Side // The side that acted, empty for match-level events
	Payload   any  // Type-specific data
}

// ShipPlacedPayload contains data for ship placed events
type ShipPlacedPayload struct {
	Ship      string
	Positions []Coordinate
	Random    bool
}

// AttackResolvedPayload contains data for attack resolved events
type AttackResolvedPayload struct {
	Target Coordinate
	Result AttackResult
	Turn   int
}

// MatchOverPayload contains data for match over events
type MatchOverPayload struct {
	Winner Side
	Turns  int
}
