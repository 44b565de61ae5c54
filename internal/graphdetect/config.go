package graphdetect

// Config controls the graph classifier.
type Config struct {
	// ChunkSize is how many questions run concurrently before the next
	// group starts.
	ChunkSize int

	// MaxTokens caps the per-question response size.
	MaxTokens int

	// Temperature for classification calls. Kept at zero for stable
	// extraction.
	Temperature float64
}

// DefaultConfig returns the standard graph classifier settings.
func DefaultConfig() Config {
	return Config{
		ChunkSize:   5,
		MaxTokens:   1024,
		Temperature: 0.0,
	}
}
