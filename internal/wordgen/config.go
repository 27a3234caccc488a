package wordgen

// Config controls the behavior of the LLMSource.
type Config struct {
	// MaxTokens is the token budget for the LLM response. Batches are
	// verbose (phonetics, examples, translations), so this scales with
	// the requested count at roughly 120 tokens per word.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}
