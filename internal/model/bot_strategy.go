package model

// Bot strategy constants
const (
	BotStrategyRandom     = "random"
	BotStrategyHuntTarget = "hunt_target"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyRandom:
		return "Random"
	case BotStrategyHuntTarget:
		return "Hunt/Target"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyRandom, BotStrategyHuntTarget}
}
