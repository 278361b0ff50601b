package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/baseball/internal/config"
	"github.com/robalobadob/baseball/internal/console"
	"github.com/robalobadob/baseball/internal/daily"
	"github.com/robalobadob/baseball/internal/game"
	"github.com/robalobadob/baseball/internal/messages"
	"github.com/robalobadob/baseball/internal/random"
	"github.com/robalobadob/baseball/internal/store"
)

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// newRootCmd builds the command; flags override values loaded from the environment.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:           "baseball",
		Short:         "Play number baseball in the terminal",
		Long:          `Guess the secret 3-digit number (digits 1-9, no repeats). Strikes are right digits in the right place, balls are right digits in the wrong place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if fs.Changed("lang") {
				cfg.Language = flags.Language
			}
			if fs.Changed("reprompt") {
				cfg.Reprompt = flags.Reprompt
			}
			if fs.Changed("seed") {
				cfg.Seed = flags.Seed
			}
			if fs.Changed("daily") {
				cfg.Daily = flags.Daily
			}
			return run(cmd.Context(), cfg, in, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.LogLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	f.StringVar(&flags.Language, "lang", "en", "message language (en, ko)")
	f.BoolVar(&flags.Reprompt, "reprompt", false, "ask again after an invalid guess instead of exiting")
	f.Int64Var(&flags.Seed, "seed", 0, "fixed random seed (0 = unpredictable)")
	f.BoolVar(&flags.Daily, "daily", false, "play today's shared secrets")
	return cmd
}

func run(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	zerolog.SetGlobalLevel(lvl)

	msgs, err := messages.Load(cfg.Language)
	if err != nil {
		return err
	}
	picker, err := newPicker(cfg)
	if err != nil {
		return err
	}

	rounds := store.NewMemoryStore()
	c := console.New(in, out)
	s := game.NewSession(c, c, picker, msgs, game.Options{
		Reprompt: cfg.Reprompt,
		Store:    rounds,
		Logger:   log.Logger,
	})

	runErr := s.Run(ctx)

	if sum, err := store.Summarize(ctx, rounds); err == nil {
		log.Debug().
			Int("rounds", sum.Rounds).
			Int("finished", sum.Finished).
			Int("attempts", sum.Attempts).
			Msg("session summary")
	}
	return runErr
}

func newPicker(cfg config.Config) (game.Picker, error) {
	switch {
	case cfg.Daily:
		now := time.Now()
		p, err := daily.Picker(now, cfg.DailySalt)
		if err != nil {
			return nil, err
		}
		log.Info().Str("date", daily.DateKey(now)).Msg("daily mode")
		return p, nil
	case cfg.Seed != 0:
		return random.NewSeeded(cfg.Seed), nil
	default:
		return random.Crypto{}, nil
	}
}
