package score_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/recall/internal/repositories/score_ledger Repository

import (
	"context"
)

// Repository defines the interface for score ledger persistence.
// Entries are append-only within a playthrough.
type Repository interface {
	// RecordScore appends a score entry to the ledger
	RecordScore(ctx context.Context, input *RecordScoreInput) error

	// GetPlayerStats returns the total, count and average for one player
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetEntries returns every entry of a playthrough in recording order
	GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error)

	// Reset discards a playthrough's entries
	Reset(ctx context.Context, input *ResetInput) error
}

// IsComplete reports whether the round counter has run past the last round
func IsComplete(currentRound, maxRounds int) bool {
	return currentRound > maxRounds
}
