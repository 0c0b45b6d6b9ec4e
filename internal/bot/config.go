package bot

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Maximum number of cards presented in one /review session
	CardsPerSession int
	// Long-polling timeout for Telegram updates, in seconds
	UpdateTimeout int
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *BotConfig {
	return &BotConfig{
		CardsPerSession: 20,
		UpdateTimeout:   30,
	}
}
