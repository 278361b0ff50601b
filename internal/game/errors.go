package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber matches every *InvalidNumberError.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidReplayChoice matches every *InvalidReplayChoiceError.
	ErrInvalidReplayChoice = errors.New("invalid replay choice")
)

// Reason classifies why an input failed number validation.
type Reason string

const (
	ReasonLength    Reason = "must be exactly 3 digits"
	ReasonDigit     Reason = "digits must be 1-9"
	ReasonDuplicate Reason = "digits must not repeat"
)

// InvalidNumberError indicates that an input is not a valid baseball number.
type InvalidNumberError struct {
	Input  string
	Reason Reason
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", e.Input, e.Reason)
}

// Is lets errors.Is match ErrInvalidNumber.
func (e *InvalidNumberError) Is(target error) bool { return target == ErrInvalidNumber }

// InvalidReplayChoiceError indicates that the replay answer was neither 1 nor 2.
type InvalidReplayChoiceError struct {
	Input string
}

// Error implements the error interface.
func (e *InvalidReplayChoiceError) Error() string {
	return fmt.Sprintf("invalid replay choice %q: enter 1 or 2", e.Input)
}

// Is lets errors.Is match ErrInvalidReplayChoice.
func (e *InvalidReplayChoiceError) Is(target error) bool { return target == ErrInvalidReplayChoice }
