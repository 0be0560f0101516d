package lut

import "fmt"

// ErrCatalogueOverflow indicates that more distinct Behaviors were discovered
// than MaxClasses allows. The tables cannot represent the automaton.
var ErrCatalogueOverflow = &CompileError{
	Kind:    CatalogueOverflow,
	Message: "behavior catalogue overflow",
}

// ErrClosureUnstable indicates that composition closure did not reach a fixed
// point within Config.MaxClosureRounds rounds.
var ErrClosureUnstable = &CompileError{
	Kind:    ClosureUnstable,
	Message: "behavior closure did not stabilize",
}

// ErrInvalidConfig indicates that the provided configuration is invalid.
var ErrInvalidConfig = &CompileError{
	Kind:    InvalidConfig,
	Message: "invalid table compiler configuration",
}

// ErrorKind classifies table compiler errors
type ErrorKind uint8

const (
	// CatalogueOverflow indicates the class count exceeded MaxClasses
	CatalogueOverflow ErrorKind = iota

	// ClosureUnstable indicates closure ran out of rounds
	ClosureUnstable

	// InvalidConfig indicates configuration validation failed
	InvalidConfig
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case CatalogueOverflow:
		return "CatalogueOverflow"
	case ClosureUnstable:
		return "ClosureUnstable"
	case InvalidConfig:
		return "InvalidConfig"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// CompileError represents a failure to compile the lookup tables
type CompileError struct {
	Kind    ErrorKind
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lut: %s: %v", e.Message, e.Cause)
	}
	return "lut: " + e.Message
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *CompileError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CompileError of the same kind
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
