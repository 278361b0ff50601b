// internal/game/session.go
//
// Console session: the turn loop and the replay loop.
//
// State transitions:
//   - Run:       start → playing → awaiting replay choice → start | stopped
//   - PlayRound: repeats PlayTurn until a guess scores 3 strikes
//   - PlayTurn:  prompt → read → validate → judge → report
//
// An invalid guess ends the session with an *InvalidNumberError unless
// Options.Reprompt is set, in which case the player is asked again.
// An invalid replay answer always ends the session.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// LineReader supplies one line of player input per call.
type LineReader interface {
	ReadLine() (string, error)
}

// Printer writes text to the player verbatim.
type Printer interface {
	Print(s string) error
}

// RoundStore records rounds as they progress.
type RoundStore interface {
	Save(ctx context.Context, r *Round) error
}

// Options tunes a Session. The zero value gives the default behavior.
type Options struct {
	Reprompt bool           // ask again after an invalid guess instead of failing
	Store    RoundStore     // optional; nil disables round recording
	Logger   zerolog.Logger // debug events; zero value is a no-op logger
}

// Session plays rounds against a single player.
type Session struct {
	in     LineReader
	out    Printer
	picker Picker
	msgs   Messages
	opts   Options
	log    zerolog.Logger
}

// NewSession wires a session to its console, randomness source and texts.
func NewSession(in LineReader, out Printer, p Picker, m Messages, opts Options) *Session {
	return &Session{
		in:     in,
		out:    out,
		picker: p,
		msgs:   m,
		opts:   opts,
		log:    opts.Logger,
	}
}

// Run plays rounds until the player answers 2 at the replay prompt.
// Returns nil on a clean stop, or the first error that ends the session.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := s.println(s.msgs.Start); err != nil {
			return err
		}
		r := newRound(GenerateNumber(s.picker))
		s.log.Debug().Str("round", r.ID).Msg("round started")
		if err := s.save(ctx, r); err != nil {
			return err
		}

		if err := s.PlayRound(ctx, r); err != nil {
			return err
		}
		s.log.Debug().Str("round", r.ID).Int("attempts", r.Attempts()).Msg("round finished")

		if err := s.println(s.msgs.ReplayPrompt); err != nil {
			return err
		}
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		choice, err := ParseReplayChoice(line)
		if err != nil {
			return err
		}
		s.log.Debug().Int("choice", int(choice)).Msg("replay answered")
		if choice == ChoiceStop {
			return nil
		}
	}
}

// PlayRound runs turns until PlayTurn reports 3 strikes.
func (s *Session) PlayRound(ctx context.Context, r *Round) error {
	for {
		strikes, err := s.PlayTurn(ctx, r)
		if err != nil {
			return err
		}
		if strikes == NumberLength {
			return nil
		}
	}
}

// PlayTurn prompts for one guess, judges it against r.Secret and prints
// the result. Returns the strike count of the judged guess; 3 strikes
// marks r as finished.
func (s *Session) PlayTurn(ctx context.Context, r *Round) (int, error) {
	guess, err := s.readGuess(ctx)
	if err != nil {
		return 0, err
	}

	score := Judge(guess, r.Secret)
	r.Guesses = append(r.Guesses, guess)
	r.Finished = score.Out()
	s.log.Debug().
		Str("round", r.ID).
		Int("attempt", r.Attempts()).
		Int("strikes", score.Strikes).
		Int("balls", score.Balls).
		Msg("guess judged")
	if err := s.save(ctx, r); err != nil {
		return 0, err
	}

	if err := s.println(FormatResult(s.msgs, score.Strikes, score.Balls)); err != nil {
		return 0, err
	}
	return score.Strikes, nil
}

// readGuess prompts until a valid Number is read. Without Reprompt the
// first invalid input is returned as an error.
func (s *Session) readGuess(ctx context.Context) (Number, error) {
	for {
		if err := s.out.Print(s.msgs.Prompt); err != nil {
			return Number{}, fmt.Errorf("write prompt: %w", err)
		}
		line, err := s.readLine(ctx)
		if err != nil {
			return Number{}, err
		}
		n, err := ParseNumber(line)
		if err == nil {
			return n, nil
		}
		if !s.opts.Reprompt {
			return Number{}, err
		}
		s.log.Debug().Err(err).Msg("guess rejected")
		if err := s.println(s.msgs.InvalidGuess); err != nil {
			return Number{}, err
		}
	}
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.in.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("unexpected end of input: %w", err)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

func (s *Session) println(msg string) error {
	if err := s.out.Print(msg + "\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (s *Session) save(ctx context.Context, r *Round) error {
	if s.opts.Store == nil {
		return nil
	}
	if err := s.opts.Store.Save(ctx, r); err != nil {
		return fmt.Errorf("save round %s: %w", r.ID, err)
	}
	return nil
}
