package lut

// Config configures the table compiler.
type Config struct {
	// MaxClosureRounds is the maximum number of composition rounds run while
	// closing the catalogue. Reaching the fixed point takes one round that adds
	// classes plus one that finds nothing new.
	//
	// Default: 4 (the UTF-8 automaton needs 2)
	MaxClosureRounds int
}

// DefaultConfig returns the configuration used for the shared tables.
func DefaultConfig() Config {
	return Config{
		MaxClosureRounds: 4,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MaxClosureRounds <= 0 {
		return &CompileError{
			Kind:    InvalidConfig,
			Message: "MaxClosureRounds must be > 0",
		}
	}
	return nil
}

// WithMaxClosureRounds returns a new config with the specified round limit
func (c Config) WithMaxClosureRounds(rounds int) Config {
	c.MaxClosureRounds = rounds
	return c
}
