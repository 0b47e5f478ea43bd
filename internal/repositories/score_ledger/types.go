package score_ledger

import (
	"time"

	"github.com/KirkDiggler/recall/internal/models"
)

// LedgerError is a sentinel error for ledger repositories
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNilInput           LedgerError = "input cannot be nil"
	ErrEmptyPlaythroughID LedgerError = "playthrough ID cannot be empty"
	ErrEmptyPlayerID      LedgerError = "player ID cannot be empty"
	ErrInvalidScore       LedgerError = "score must be between 0 and 100"
	ErrNilConfig          LedgerError = "config cannot be nil"
	ErrNilRedisClient     LedgerError = "redis client cannot be nil"
)

// RecordScoreInput contains parameters for recording a score
type RecordScoreInput struct {
	// PlaythroughID scopes the entry
	PlaythroughID string

	// Round is the round, drawing or level number
	Round int

	// PlayerID is the player being scored
	PlayerID models.PlayerID

	// Score is the reproduction score in [0, 100]
	Score int

	// RecordedAt defaults to now when zero
	RecordedAt time.Time
}

// GetPlayerStatsInput contains parameters for retrieving a player's stats
type GetPlayerStatsInput struct {
	PlaythroughID string
	PlayerID      models.PlayerID
}

// GetPlayerStatsOutput contains a player's aggregated stats
type GetPlayerStatsOutput struct {
	Stats *models.PlayerStats
}

// GetEntriesInput contains parameters for listing a playthrough's entries
type GetEntriesInput struct {
	PlaythroughID string
}

// GetEntriesOutput contains the entries of a playthrough
type GetEntriesOutput struct {
	Entries []*models.ScoreEntry
}

// ResetInput contains parameters for resetting a playthrough
type ResetInput struct {
	PlaythroughID string
}

func (in *RecordScoreInput) validate() error {
	if in == nil {
		return ErrNilInput
	}
	if in.PlaythroughID == "" {
		return ErrEmptyPlaythroughID
	}
	if in.PlayerID == "" {
		return ErrEmptyPlayerID
	}
	if in.Score < 0 || in.Score > 100 {
		return ErrInvalidScore
	}
	return nil
}

func newStats(playerID models.PlayerID, total, count int) *models.PlayerStats {
	stats := &models.PlayerStats{
		PlayerID: playerID,
		Total:    total,
		Count:    count,
	}
	if count > 0 {
		stats.Average = float64(total) / float64(count)
	}
	return stats
}
