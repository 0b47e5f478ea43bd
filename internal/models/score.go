package models

import (
	"time"
)

// PlayerID identifies a player within a playthrough
type PlayerID string

const (
	// PlayerOne is the solo player, and the first player in two-player games
	PlayerOne PlayerID = "player1"

	// PlayerTwo is the second player in two-player games
	PlayerTwo PlayerID = "player2"
)

// DisplayName returns the name shown to players
func (p PlayerID) DisplayName() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return string(p)
	}
}

// Other returns the opposing player in a two-player game
func (p PlayerID) Other() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// ScoreEntry is a single line of the score ledger
type ScoreEntry struct {
	// PlaythroughID scopes the entry to one game from start to finish
	PlaythroughID string

	// Round is the round, drawing or level number the score belongs to
	Round int

	// PlayerID is the player who reproduced the shapes
	PlayerID PlayerID

	// Score is the reproduction score in [0, 100]
	Score int

	// RecordedAt is when the score was recorded
	RecordedAt time.Time
}

// PlayerStats aggregates a player's ledger entries
type PlayerStats struct {
	// PlayerID is the player the stats belong to
	PlayerID PlayerID

	// Total is the sum of all scores
	Total int

	// Count is the number of recorded scores
	Count int

	// Average is Total / Count, or 0 when nothing was recorded
	Average float64
}
