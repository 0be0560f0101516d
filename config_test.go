package utf8lut

import (
	"errors"
	"testing"

	"github.com/coregx/utf8lut/lut"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if !c.ASCIIFastPath {
		t.Error("ASCIIFastPath should default to true")
	}
	if c.MaxClosureRounds != lut.DefaultConfig().MaxClosureRounds {
		t.Errorf("MaxClosureRounds = %d", c.MaxClosureRounds)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"no_fast_path", DefaultConfig().WithASCIIFastPath(false), false},
		{"one_round", DefaultConfig().WithMaxClosureRounds(1), false},
		{"zero_rounds", DefaultConfig().WithMaxClosureRounds(0), true},
		{"zero_value", Config{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, lut.ErrInvalidConfig) {
				t.Errorf("error = %v, want lut.ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_WithDoesNotMutate(t *testing.T) {
	base := DefaultConfig()
	_ = base.WithASCIIFastPath(false).WithMaxClosureRounds(9)
	if !base.ASCIIFastPath || base.MaxClosureRounds != lut.DefaultConfig().MaxClosureRounds {
		t.Error("With* mutated the receiver")
	}
}
