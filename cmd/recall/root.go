package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/spf13/cobra"
)

type options struct {
	mode          string
	strategy      string
	seed          int64
	timeUnit      time.Duration
	logLevel      string
	redisAddr     string
	redisPassword string
	clearScreen   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "recall",
		Short: "Memorize the shapes, then draw them back",
		Long: "recall is a shape memory game for the terminal. Shapes are shown for a few " +
			"moments, then hidden; reproduce them with circle and rect commands and submit " +
			"to be scored. Modes: solo (a fixed curriculum of ten drawings), two_player " +
			"(hot-seat, players take turns creating and reproducing) and random (ten " +
			"timed levels of growing difficulty).",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.mode, "mode", "m", string(models.ModeSolo), "game mode: solo, two_player or random")
	flags.StringVarP(&opts.strategy, "strategy", "s", "", "scoring strategy: "+strings.Join(scoring.Names(), " or "))
	flags.Int64Var(&opts.seed, "seed", 0, "seed for reproducible random games")
	flags.DurationVar(&opts.timeUnit, "time-unit", game.DefaultTimeUnit, "length of one game time unit")
	flags.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level")
	flags.StringVar(&opts.redisAddr, "redis-addr", os.Getenv("REDIS_ADDR"), "keep the score ledger in Redis at this address")
	flags.StringVar(&opts.redisPassword, "redis-password", os.Getenv("REDIS_PASSWORD"), "Redis password")
	flags.BoolVar(&opts.clearScreen, "clear-screen", true, "clear the terminal when shapes are hidden")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {
	mode, err := models.ParseModeKind(strings.ToLower(opts.mode))
	if err != nil {
		return err
	}

	if _, err := scoring.ByName(opts.strategy); err != nil {
		return fmt.Errorf("%w %q", err, opts.strategy)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := wireApp(opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	// stdin reads cannot be interrupted, so an interrupt abandons the REPL
	errC := make(chan error, 1)
	go func() {
		errC <- app.repl.Run(ctx, &game.StartModeInput{
			Mode:     mode,
			Strategy: opts.strategy,
		})
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
		app.logger.Info().Msg("interrupted")
		return nil
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
