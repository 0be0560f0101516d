package utf8lut

import "github.com/coregx/utf8lut/lut"

// Config configures a Validator.
type Config struct {
	// ASCIIFastPath lets the validator skip whole 8-byte ASCII words while it
	// is between sequences, without consulting the tables.
	//
	// Default: true
	ASCIIFastPath bool

	// MaxClosureRounds bounds table compilation; see lut.Config.
	// A Validator built with the default value shares the process-wide
	// tables, any other value compiles private tables.
	//
	// Default: lut.DefaultConfig().MaxClosureRounds
	MaxClosureRounds int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ASCIIFastPath:    true,
		MaxClosureRounds: lut.DefaultConfig().MaxClosureRounds,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	lc := c.lutConfig()
	return lc.Validate()
}

// WithASCIIFastPath returns a new config with the ASCII fast path enabled/disabled
func (c Config) WithASCIIFastPath(enabled bool) Config {
	c.ASCIIFastPath = enabled
	return c
}

// WithMaxClosureRounds returns a new config with the specified round limit
func (c Config) WithMaxClosureRounds(rounds int) Config {
	c.MaxClosureRounds = rounds
	return c
}

func (c *Config) lutConfig() lut.Config {
	return lut.DefaultConfig().WithMaxClosureRounds(c.MaxClosureRounds)
}
