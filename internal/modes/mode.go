// Package modes holds the game-mode state machines: the solo curriculum, the
// two-player hot-seat game and the random timed game. A mode is driven from a
// single execution context; none of its methods are safe for concurrent use.
package modes

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/recall/internal/modes Presenter

import (
	"context"

	"github.com/KirkDiggler/recall/internal/canvas"
	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/rs/zerolog"
)

// Presenter receives everything a front-end needs to render a game.
// Calls arrive on the game's execution context and must not call back into
// the game synchronously.
type Presenter interface {
	StatusChanged(text string)
	ScoreRecorded(text string)
	ControlsChanged(controls models.Controls)
	ShapesChanged(shapes []models.Shape)
	Alert(text string)
	GameOver(summary string)
}

// Scheduler runs fn on the game's execution context after a number of time units
type Scheduler interface {
	Schedule(units int, fn func()) clock.Timer
}

// Mode is one game-mode state machine
type Mode interface {
	Kind() models.ModeKind

	// Start enters the first phase
	Start(ctx context.Context)

	// Submit is the "validate" signal from the front-end
	Submit(ctx context.Context)

	// Quit ends the game and returns the final summary. Pending timers are
	// invalidated. Quitting a finished game returns the same summary.
	Quit(ctx context.Context) string

	Phase() models.Phase
	Controls() models.Controls

	// CanSubmit reports whether the validate control is enabled
	CanSubmit() bool

	// Round is the current drawing, round or level number
	Round() int
}

// Config holds the tunables shared by all modes
type Config struct {
	// Rounds is the number of two-player rounds
	Rounds int

	// ShapesPerCreation is how many shapes a two-player creator must draw
	ShapesPerCreation int

	// MemorizeUnits is the two-player memorization delay
	MemorizeUnits int

	// SoloDisplayUnits is how long a curriculum drawing stays visible
	SoloDisplayUnits int

	// MaxLevel is the last random-mode level
	MaxLevel int

	// CanvasSize is the side of the square drawing area
	CanvasSize int

	// CanvasMargin keeps generated shapes away from the edges
	CanvasMargin int
}

// DefaultConfig returns the standard game settings
func DefaultConfig() Config {
	return Config{
		Rounds:            10,
		ShapesPerCreation: 4,
		MemorizeUnits:     10,
		SoloDisplayUnits:  10,
		MaxLevel:          10,
		CanvasSize:        700,
		CanvasMargin:      30,
	}
}

// WithDefaults fills every zero field from DefaultConfig
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Rounds == 0 {
		c.Rounds = d.Rounds
	}
	if c.ShapesPerCreation == 0 {
		c.ShapesPerCreation = d.ShapesPerCreation
	}
	if c.MemorizeUnits == 0 {
		c.MemorizeUnits = d.MemorizeUnits
	}
	if c.SoloDisplayUnits == 0 {
		c.SoloDisplayUnits = d.SoloDisplayUnits
	}
	if c.MaxLevel == 0 {
		c.MaxLevel = d.MaxLevel
	}
	if c.CanvasSize == 0 {
		c.CanvasSize = d.CanvasSize
	}
	if c.CanvasMargin == 0 {
		c.CanvasMargin = d.CanvasMargin
	}
	return c
}

// Valid reports whether every setting is positive
func (c Config) Valid() bool {
	return c.Rounds > 0 && c.ShapesPerCreation > 0 && c.MemorizeUnits > 0 &&
		c.SoloDisplayUnits > 0 && c.MaxLevel > 0 && c.CanvasSize > 0 && c.CanvasMargin > 0
}

// Env carries a mode's collaborators
type Env struct {
	Canvas    *canvas.Canvas
	Scheduler Scheduler
	Ledger    score_ledger.Repository
	Presenter Presenter
	Clock     clock.Clock

	// Strategy scores solo and random reproductions
	Strategy scoring.Strategy

	// Random feeds the random-mode shape generator
	Random random.Source

	Config        Config
	PlaythroughID string
	Logger        zerolog.Logger
}

func (e *Env) validate() error {
	if e == nil {
		return ErrNilEnv
	}
	if e.Canvas == nil {
		return ErrNilCanvas
	}
	if e.Scheduler == nil {
		return ErrNilScheduler
	}
	if e.Ledger == nil {
		return ErrNilLedger
	}
	if e.Presenter == nil {
		return ErrNilPresenter
	}
	if e.Clock == nil {
		return ErrNilClock
	}
	return nil
}

// New selects a mode by kind
func New(kind models.ModeKind, env *Env) (Mode, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}

	switch kind {
	case models.ModeSolo:
		return newSolo(env), nil
	case models.ModeTwoPlayer:
		return newTwoPlayer(env), nil
	case models.ModeRandom:
		if env.Random == nil {
			return nil, ErrNilRandom
		}
		return newRandom(env), nil
	default:
		return nil, ErrUnknownMode
	}
}
