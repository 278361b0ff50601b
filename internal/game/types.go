// internal/game/types.go
//
// Core type definitions for the number baseball engine.
// Defines:
//   - Number: a validated 3-digit baseball number (digits 1–9, unique).
//   - Score: strike/ball counts for a single guess.
//   - Round: state for a single in-progress or finished round.
//   - Messages: the user-facing texts printed by the session.
//   - ReplayChoice: the answer to the replay prompt.

package game

import "strconv"

// NumberLength is the number of digits in a baseball number.
const NumberLength = 3

const (
	minDigit = 1
	maxDigit = 9
)

// Number is an ordered set of NumberLength distinct digits in 1–9.
// Values are only produced by ParseNumber and GenerateNumber.
type Number [NumberLength]int

// String renders the digits without separators, e.g. "123".
func (n Number) String() string {
	b := make([]byte, 0, NumberLength)
	for _, d := range n {
		b = strconv.AppendInt(b, int64(d), 10)
	}
	return string(b)
}

// Score is the result of judging a guess against a secret.
// Strikes + Balls never exceeds NumberLength.
type Score struct {
	Strikes int // digit matches value and position
	Balls   int // digit matches value only
}

// Out reports whether the guess matched the secret exactly.
func (s Score) Out() bool { return s.Strikes == NumberLength }

// Round holds the state of a single round, from secret generation to 3 strikes.
type Round struct {
	ID       string   // Unique round identifier (random hex string).
	Secret   Number   // The number the player is trying to guess.
	Guesses  []Number // Valid guesses made so far, in order.
	Finished bool     // True once a guess scored 3 strikes.
}

// Attempts returns the number of judged guesses in the round.
func (r *Round) Attempts() int { return len(r.Guesses) }

// Messages holds every text the session writes to the console.
// Count templates use "{n}" as the placeholder.
type Messages struct {
	Start        string `yaml:"start"`
	Prompt       string `yaml:"prompt"`
	ThreeStrikes string `yaml:"three_strikes"`
	Nothing      string `yaml:"nothing"`
	Ball         string `yaml:"ball"`
	Balls        string `yaml:"balls"`
	Strike       string `yaml:"strike"`
	Strikes      string `yaml:"strikes"`
	ReplayPrompt string `yaml:"replay_prompt"`
	InvalidGuess string `yaml:"invalid_guess"`
}

// ReplayChoice is the player's answer to the replay prompt.
type ReplayChoice int

const (
	ChoiceReplay ReplayChoice = 1
	ChoiceStop   ReplayChoice = 2
)
