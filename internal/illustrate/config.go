package illustrate

import "time"

// Config controls illustration generation.
type Config struct {
	// MaxTokens caps the prompt-synthesis response size.
	MaxTokens int

	// Temperature for prompt synthesis. Slightly creative on purpose.
	Temperature float64

	// Delay is inserted between successive generation calls to stay under
	// the image provider's rate limits.
	Delay time.Duration

	// KeyPrefix is prepended to generated object keys.
	KeyPrefix string
}

// DefaultConfig returns the standard illustration settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
		Delay:       2 * time.Second,
		KeyPrefix:   "illustrations",
	}
}
