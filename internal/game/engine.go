// internal/game/engine.go
//
// Core rules of number baseball.
// Responsibilities:
//   - Validate raw input into a Number (length, digit range, uniqueness).
//   - Generate secrets by drawing digits without replacement from 1–9.
//   - Judge a guess against a secret (strikes, balls).
//   - Format a Score into the message printed after each turn.
//   - Parse the replay prompt answer.
//
// Notes:
//   - Randomness is injected through Picker so tests can script it.
//   - randomID() is a compact hex identifier for correlating rounds in logs.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"
)

// Picker returns a uniformly random integer in the inclusive range [lo, hi].
type Picker interface {
	PickNumberInRange(lo, hi int) int
}

// ParseNumber validates s and returns it as a Number.
//
// Validation rules:
//   - s must be exactly NumberLength bytes.
//   - every byte must be a digit '1'..'9' ('0' and non-digits are rejected).
//   - digits must be pairwise distinct.
//
// Every failure is an *InvalidNumberError matching ErrInvalidNumber.
func ParseNumber(s string) (Number, error) {
	var n Number
	if len(s) != NumberLength {
		return n, &InvalidNumberError{Input: s, Reason: ReasonLength}
	}
	var seen [maxDigit + 1]bool
	for i := 0; i < NumberLength; i++ {
		d := int(s[i]) - '0'
		if d < minDigit || d > maxDigit {
			return Number{}, &InvalidNumberError{Input: s, Reason: ReasonDigit}
		}
		if seen[d] {
			return Number{}, &InvalidNumberError{Input: s, Reason: ReasonDuplicate}
		}
		seen[d] = true
		n[i] = d
	}
	return n, nil
}

// GenerateNumber draws NumberLength digits without replacement from 1–9.
// Equivalent to a partial Fisher–Yates shuffle of the pool; the result
// always passes ParseNumber.
func GenerateNumber(p Picker) Number {
	pool := make([]int, 0, maxDigit)
	for d := minDigit; d <= maxDigit; d++ {
		pool = append(pool, d)
	}
	var n Number
	for i := range n {
		j := p.PickNumberInRange(0, len(pool)-1)
		n[i] = pool[j]
		pool = append(pool[:j], pool[j+1:]...)
	}
	return n
}

// Judge compares guess against secret.
//
// Strikes count positions holding the same digit. Balls are the digits
// shared by both numbers minus the strikes; since each Number has unique
// digits the shared count is a plain set intersection.
func Judge(guess, secret Number) Score {
	var inGuess [maxDigit + 1]bool
	for _, d := range guess {
		inGuess[d] = true
	}
	var s Score
	shared := 0
	for i, d := range secret {
		if guess[i] == d {
			s.Strikes++
		}
		if inGuess[d] {
			shared++
		}
	}
	s.Balls = shared - s.Strikes
	return s
}

// FormatResult maps a strike/ball count to the line shown after a turn.
// Rules are evaluated in order; the first match wins:
//  1. 3 strikes  → m.ThreeStrikes (ends the round)
//  2. no matches → m.Nothing
//  3. no balls   → "{strikes}"
//  4. no strikes → "{balls}"
//  5. otherwise  → "{balls} {strikes}"
func FormatResult(m Messages, strikes, balls int) string {
	switch {
	case strikes == NumberLength:
		return m.ThreeStrikes
	case strikes == 0 && balls == 0:
		return m.Nothing
	case balls == 0:
		return countPhrase(strikes, m.Strike, m.Strikes)
	case strikes == 0:
		return countPhrase(balls, m.Ball, m.Balls)
	default:
		return countPhrase(balls, m.Ball, m.Balls) + " " + countPhrase(strikes, m.Strike, m.Strikes)
	}
}

// countPhrase fills the singular or plural template with n.
func countPhrase(n int, one, many string) string {
	tmpl := many
	if n == 1 {
		tmpl = one
	}
	return strings.ReplaceAll(tmpl, "{n}", strconv.Itoa(n))
}

// ParseReplayChoice interprets the answer to the replay prompt.
// The whole line must parse as the integer 1 or 2 (a sign or leading
// zeros are fine, whitespace is not), otherwise an
// *InvalidReplayChoiceError is returned.
func ParseReplayChoice(s string) (ReplayChoice, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidReplayChoiceError{Input: s}
	}
	switch c := ReplayChoice(v); c {
	case ChoiceReplay, ChoiceStop:
		return c, nil
	default:
		return 0, &InvalidReplayChoiceError{Input: s}
	}
}

// newRound starts a round around secret.
func newRound(secret Number) *Round {
	return &Round{
		ID:      randomID(),
		Secret:  secret,
		Guesses: []Number{},
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
