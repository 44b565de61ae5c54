package batchsolve

// Config controls the behavior of the Solver.
type Config struct {
	// MaxBatchSize bounds how many questions share one solving call.
	MaxBatchSize int

	// MaxTokens is the token budget for one chunk's response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64

	// MaxTipChars bounds tip length in each language. Responses that
	// exceed it are truncated after decode.
	MaxTipChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxBatchSize: 5,
		MaxTokens:    4096,
		Temperature:  0.2,
		MaxTipChars:  150,
	}
}
