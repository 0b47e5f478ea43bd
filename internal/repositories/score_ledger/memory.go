package score_ledger

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/recall/internal/models"
)

// memoryRepository keeps the ledger in process memory
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]*models.ScoreEntry
}

// NewMemory creates an in-memory ledger repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		entries: make(map[string][]*models.ScoreEntry),
	}
}

// RecordScore appends a score entry to the ledger
func (r *memoryRepository) RecordScore(ctx context.Context, input *RecordScoreInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[input.PlaythroughID] = append(r.entries[input.PlaythroughID], &models.ScoreEntry{
		PlaythroughID: input.PlaythroughID,
		Round:         input.Round,
		PlayerID:      input.PlayerID,
		Score:         input.Score,
		RecordedAt:    recordedAt,
	})
	return nil
}

// GetPlayerStats returns the total, count and average for one player
func (r *memoryRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.PlaythroughID == "" {
		return nil, ErrEmptyPlaythroughID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total, count := 0, 0
	for _, entry := range r.entries[input.PlaythroughID] {
		if entry.PlayerID == input.PlayerID {
			total += entry.Score
			count++
		}
	}

	return &GetPlayerStatsOutput{Stats: newStats(input.PlayerID, total, count)}, nil
}

// GetEntries returns every entry of a playthrough in recording order
func (r *memoryRepository) GetEntries(ctx context.Context, input *GetEntriesInput) (*GetEntriesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.entries[input.PlaythroughID]
	entries := make([]*models.ScoreEntry, 0, len(stored))
	for _, entry := range stored {
		copied := *entry
		entries = append(entries, &copied)
	}

	return &GetEntriesOutput{Entries: entries}, nil
}

// Reset discards a playthrough's entries
func (r *memoryRepository) Reset(ctx context.Context, input *ResetInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, input.PlaythroughID)
	return nil
}
