package main

import (
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/common/uuid"
	"github.com/KirkDiggler/recall/internal/handlers/terminal"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type app struct {
	repl        *terminal.REPL
	gameService game.Service
	redisClient *redis.Client
	logger      zerolog.Logger
}

func wireApp(opts *options, in io.Reader, out, errOut io.Writer) (*app, error) {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("app", "recall").Logger()

	a := &app{logger: logger}

	var ledger score_ledger.Repository = score_ledger.NewMemory()
	if opts.redisAddr != "" {
		a.redisClient = redis.NewClient(&redis.Options{
			Addr:     opts.redisAddr,
			Password: opts.redisPassword,
		})

		ledger, err = score_ledger.NewRedis(&score_ledger.Config{RedisClient: a.redisClient})
		if err != nil {
			a.redisClient.Close()
			return nil, fmt.Errorf("failed to create score ledger: %w", err)
		}
		logger.Debug().Str("addr", opts.redisAddr).Msg("score ledger backed by redis")
	}

	var uuidGenerator uuid.UUID = uuid.New()
	if opts.seed != 0 {
		uuidGenerator = uuid.NewSequence(fmt.Sprintf("seed-%d", opts.seed))
	}
	roller := random.New(&random.Config{Seed: opts.seed})

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Random: roller})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	presenter := terminal.NewPresenter(&terminal.PresenterConfig{
		Out:         out,
		Messaging:   messagingService,
		ClearScreen: opts.clearScreen,
	})

	a.gameService, err = game.New(&game.Config{
		TimeUnit:        opts.timeUnit,
		ScoreLedgerRepo: ledger,
		Presenter:       presenter,
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuidGenerator,
		Random:          roller,
		Logger:          logger,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	a.repl, err = terminal.New(&terminal.Config{
		GameService: a.gameService,
		Presenter:   presenter,
		In:          in,
		Logger:      logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// Close stops the game and releases the ledger connection
func (a *app) Close() {
	if a.gameService != nil {
		a.gameService.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
