package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/common/uuid"
	"github.com/KirkDiggler/recall/internal/handlers/discord"
	"github.com/KirkDiggler/recall/internal/modes"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	gameService "github.com/KirkDiggler/recall/internal/services/game"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("app", "recall-bot").Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		logger = logger.Level(lvl)
	}

	timeUnit, err := time.ParseDuration(getEnv("TIME_UNIT", gameService.DefaultTimeUnit.String()))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid TIME_UNIT")
	}

	// Initialize the score ledger
	var ledger score_ledger.Repository
	switch backend := getEnv("LEDGER_BACKEND", "redis"); backend {
	case "memory":
		ledger = score_ledger.NewMemory()
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		defer redisClient.Close()

		ledger, err = score_ledger.NewRedis(&score_ledger.Config{
			RedisClient: redisClient,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create score ledger repository")
		}
	default:
		logger.Fatal().Str("backend", backend).Msg("LEDGER_BACKEND must be redis or memory")
	}

	roller := random.New(&random.Config{})

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{
		Random: roller,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	// Every channel gets its own game service sharing the ledger
	gameFactory := func(channelID string, presenter modes.Presenter) (gameService.Service, error) {
		return gameService.New(&gameService.Config{
			TimeUnit:        timeUnit,
			ScoreLedgerRepo: ledger,
			Presenter:       presenter,
			Clock:           &clock.DefaultClock{},
			UUIDGenerator:   uuid.New(),
			Random:          roller,
			Logger:          logger.With().Str("channel_id", channelID).Logger(),
		})
	}

	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal().Msg("DISCORD_TOKEN environment variable is required")
	}

	bot, err := discord.New(&discord.Config{
		Token:            discordToken,
		ApplicationID:    getEnv("APPLICATION_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		GameFactory:      gameFactory,
		MessagingService: messagingService,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
