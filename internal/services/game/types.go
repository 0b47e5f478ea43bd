package game

import (
	"time"

	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/common/uuid"
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/modes"
	"github.com/KirkDiggler/recall/internal/random"
	scoreLedgerRepo "github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/rs/zerolog"
)

// Config holds configuration for the game service
type Config struct {
	// TimeUnit is the length of one game time unit
	TimeUnit time.Duration

	// Modes holds the round counts, delays and canvas geometry
	Modes modes.Config

	// DefaultStrategy scores solo and random games started without a strategy
	DefaultStrategy scoring.Strategy

	// Repository dependencies
	ScoreLedgerRepo scoreLedgerRepo.Repository

	// Service dependencies
	Presenter     modes.Presenter
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        random.Source
	Logger        zerolog.Logger
}

// DefaultTimeUnit is one second
const DefaultTimeUnit = time.Second

// StartModeInput contains parameters for starting a game mode
type StartModeInput struct {
	// Mode selects the state machine
	Mode models.ModeKind

	// Strategy names the scoring strategy; empty uses the default
	Strategy string
}

// StartModeOutput contains the result of starting a game mode
type StartModeOutput struct {
	// SessionID doubles as the ledger playthrough ID
	SessionID string
}

// AddShapeInput contains parameters for drawing a shape
type AddShapeInput struct {
	Shape models.Shape
}

// QuitOutput contains the final summary of a session
type QuitOutput struct {
	Summary string
}

// GetStateOutput is a snapshot of the current session
type GetStateOutput struct {
	SessionID string
	Mode      models.ModeKind
	Phase     models.Phase
	Controls  models.Controls

	// Round is the drawing, round or level number
	Round int

	Shapes []models.Shape
	Scores []*models.ScoreEntry
}
