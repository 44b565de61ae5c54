package classify

// Config controls the behavior of the Classifier.
type Config struct {
	// MaxTokens is the token budget for the classification response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	// Classification wants determinism.
	Temperature float64

	// MaxParentContextChars bounds how much parent context is included
	// per sub-question in the prompt.
	MaxParentContextChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:             2048,
		Temperature:           0.0,
		MaxParentContextChars: 200,
	}
}
