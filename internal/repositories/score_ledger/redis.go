package score_ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis; every key is scoped by playthrough ID
	ledgerKeyPrefix = "ledger:"

	statsFieldTotal = "total"
	statsFieldCount = "count"
)

// Config holds configuration for the Redis score ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordScore appends a score entry to the ledger
func (r *redisRepository) RecordScore(ctx context.Context, input *RecordScoreInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	entry := &models.ScoreEntry{
		PlaythroughID: input.PlaythroughID,
		Round:         input.Round,
		PlayerID:      input.PlayerID,
		Score:         input.Score,
		RecordedAt:    input.RecordedAt,
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal score entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, entriesKey(input.PlaythroughID), entryJSON)
	pipe.SAdd(ctx, playersKey(input.PlaythroughID), string(input.PlayerID))
	statsKey := playerStatsKey(input.PlaythroughID, input.PlayerID)
	pipe.HIncrBy(ctx, statsKey, statsFieldTotal, int64(input.Score))
	pipe.HIncrBy(ctx, statsKey, statsFieldCount, 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}

	return nil
}

// GetPlayerStats returns the total, count and average for one player
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.PlaythroughID == "" {
		return nil, ErrEmptyPlaythroughID
	}

	fields, err := r.client.HGetAll(ctx, playerStatsKey(input.PlaythroughID, input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	total, err := parseCounter(fields[statsFieldTotal])
	if err != nil {
		return nil, err
	}
	count, err := parseCounter(fields[statsFieldCount])
	if err != nil {
		return nil, err
	}

	return &GetPlayerStatsOutput{Stats: newStats(input.PlayerID, total, count)}, nil
}

// GetEntries returns every entry of a playthrough in recording order
func (r *redisRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	raw, err := r.client.LRange(ctx, entriesKey(input.PlaythroughID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score entries: %w", err)
	}

	entries := make([]*models.ScoreEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.ScoreEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &GetEntriesOutput{Entries: entries}, nil
}

// Reset discards a playthrough's entries
func (r *redisRepository) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return ErrNilInput
	}

	players, err := r.client.SMembers(ctx, playersKey(input.PlaythroughID)).Result()
	if err != nil {
		return fmt.Errorf("failed to list ledger players: %w", err)
	}

	keys := []string{entriesKey(input.PlaythroughID), playersKey(input.PlaythroughID)}
	for _, player := range players {
		keys = append(keys, playerStatsKey(input.PlaythroughID, models.PlayerID(player)))
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset ledger: %w", err)
	}

	return nil
}

func entriesKey(playthroughID string) string {
	return fmt.Sprintf("%s%s:entries", ledgerKeyPrefix, playthroughID)
}

func playersKey(playthroughID string) string {
	return fmt.Sprintf("%s%s:players", ledgerKeyPrefix, playthroughID)
}

func playerStatsKey(playthroughID string, playerID models.PlayerID) string {
	return fmt.Sprintf("%s%s:stats:%s", ledgerKeyPrefix, playthroughID, playerID)
}

func parseCounter(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ledger counter %q: %w", value, err)
	}
	return n, nil
}
