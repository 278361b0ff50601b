package game

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConsole feeds scripted lines and records everything printed.
type fakeConsole struct {
	lines []string
	out   strings.Builder
}

func newFakeConsole(lines ...string) *fakeConsole {
	return &fakeConsole{lines: lines}
}

func (c *fakeConsole) ReadLine() (string, error) {
	if len(c.lines) == 0 {
		return "", io.EOF
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

func (c *fakeConsole) Print(s string) error {
	c.out.WriteString(s)
	return nil
}

// recordingStore keeps the last saved state of each round.
type recordingStore struct {
	saves  int
	rounds map[string]*Round
	order  []string
}

func (s *recordingStore) Save(_ context.Context, r *Round) error {
	if s.rounds == nil {
		s.rounds = map[string]*Round{}
	}
	if _, ok := s.rounds[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.rounds[r.ID] = r
	s.saves++
	return nil
}

func TestPlayTurn_ReportsScore(t *testing.T) {
	c := newFakeConsole("321")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})
	r := newRound(Number{1, 2, 3})

	strikes, err := s.PlayTurn(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, 1, strikes)
	require.Equal(t, "> 2 balls 1 strike\n", c.out.String())
	require.False(t, r.Finished)
	require.Equal(t, []Number{{3, 2, 1}}, r.Guesses)
}

func TestPlayTurn_InvalidGuessPropagates(t *testing.T) {
	for _, input := range []string{"12", "012", "112", "12a"} {
		t.Run(input, func(t *testing.T) {
			c := newFakeConsole(input)
			s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})

			_, err := s.PlayTurn(context.Background(), newRound(Number{1, 2, 3}))
			require.ErrorIs(t, err, ErrInvalidNumber)
			require.Equal(t, "> ", c.out.String())
		})
	}
}

func TestPlayRound_StopsAtThreeStrikes(t *testing.T) {
	c := newFakeConsole("456", "321", "123", "789")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})
	r := newRound(Number{1, 2, 3})

	require.NoError(t, s.PlayRound(context.Background(), r))
	require.True(t, r.Finished)
	require.Equal(t, 3, r.Attempts())
	require.Equal(t, []string{"789"}, c.lines, "no prompt after the winning guess")
	require.Equal(t,
		"> Nothing\n> 2 balls 1 strike\n> 3 strikes\nYou guessed all three numbers! Game over\n",
		c.out.String())
}

func TestPlayRound_DrivenByStrikeCount(t *testing.T) {
	c := newFakeConsole("321", "123", "789")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})
	r := newRound(Number{1, 2, 3})
	r.Finished = true // stale flag must not end the round early

	require.NoError(t, s.PlayRound(context.Background(), r))
	require.Equal(t, 2, r.Attempts())
	require.Equal(t, []string{"789"}, c.lines)
}

func TestRun_WinThenStop(t *testing.T) {
	c := newFakeConsole("321", "123", "2")
	st := &recordingStore{}
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{Store: st})

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t,
		"start\n> 2 balls 1 strike\n> 3 strikes\nYou guessed all three numbers! Game over\nagain?\n",
		c.out.String())

	require.Len(t, st.order, 1)
	r := st.rounds[st.order[0]]
	assert.Equal(t, Number{1, 2, 3}, r.Secret)
	assert.True(t, r.Finished)
	assert.Equal(t, 2, r.Attempts())
	assert.Equal(t, 3, st.saves) // round start + one per judged guess
}

func TestRun_ReplayGeneratesFreshSecret(t *testing.T) {
	// Round 1 secret 123 (picks 0,0,0); round 2 secret 987 (picks 8,7,6).
	p := &scriptedPicker{picks: []int{0, 0, 0, 8, 7, 6}}
	c := newFakeConsole("123", "1", "123", "987", "2")
	st := &recordingStore{}
	s := NewSession(c, c, p, english, Options{Store: st})

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t, 6, p.calls)
	require.Len(t, st.order, 2)
	require.NotEqual(t, st.order[0], st.order[1])
	assert.Equal(t, Number{9, 8, 7}, st.rounds[st.order[1]].Secret)
	assert.Equal(t, 2, strings.Count(c.out.String(), "start\n"))
	assert.Contains(t, c.out.String(), "> Nothing\n")
}

func TestRun_InvalidReplayChoiceIsFatal(t *testing.T) {
	for _, answer := range []string{"3", "abc", "", " 2", "1 "} {
		t.Run(answer, func(t *testing.T) {
			c := newFakeConsole("123", answer, "2")
			s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})

			err := s.Run(context.Background())
			require.ErrorIs(t, err, ErrInvalidReplayChoice)
			require.Equal(t, []string{"2"}, c.lines)
		})
	}
}

func TestRun_InvalidGuessIsFatalByDefault(t *testing.T) {
	c := newFakeConsole("11", "123", "2")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})

	err := s.Run(context.Background())
	var inv *InvalidNumberError
	require.True(t, errors.As(err, &inv))
	require.Equal(t, ReasonLength, inv.Reason)
}

func TestRun_RepromptAfterInvalidGuess(t *testing.T) {
	c := newFakeConsole("11", "112", "123", "2")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{Reprompt: true})

	require.NoError(t, s.Run(context.Background()))
	require.Equal(t,
		"start\n> invalid\n> invalid\n> 3 strikes\nYou guessed all three numbers! Game over\nagain?\n",
		c.out.String())
}

func TestRun_EndOfInput(t *testing.T) {
	c := newFakeConsole("321")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})

	err := s.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	require.Contains(t, err.Error(), "unexpected end of input")
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newFakeConsole("123", "2")
	s := NewSession(c, c, &scriptedPicker{picks: []int{0}}, english, Options{})

	require.ErrorIs(t, s.Run(ctx), context.Canceled)
	require.Len(t, c.lines, 2, "nothing read after cancellation")
}
