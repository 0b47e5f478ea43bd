package models

import "fmt"

// ModeKind selects which game mode a session runs
type ModeKind string

const (
	// ModeSolo replays a fixed curriculum of drawings
	ModeSolo ModeKind = "solo"

	// ModeTwoPlayer alternates creator and guesser between two players
	ModeTwoPlayer ModeKind = "two_player"

	// ModeRandom generates escalating random rounds against the clock
	ModeRandom ModeKind = "random"
)

// ParseModeKind maps user input onto a ModeKind
func ParseModeKind(s string) (ModeKind, error) {
	switch s {
	case "solo", "classic":
		return ModeSolo, nil
	case "two_player", "two-player", "duo", "2p":
		return ModeTwoPlayer, nil
	case "random", "timed":
		return ModeRandom, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// Phase is a named stage within a round
type Phase string

const (
	// PhaseIdle is the phase before a mode starts
	PhaseIdle Phase = "idle"

	// PhaseCreation is when the two-player creator draws the reference shapes
	PhaseCreation Phase = "creation"

	// PhaseWaiting is when the guesser memorizes the creator's shapes
	PhaseWaiting Phase = "waiting"

	// PhaseReproduction is when the guesser redraws the shapes
	PhaseReproduction Phase = "reproduction"

	// PhaseDisplaying is when generated or curriculum shapes are on screen
	PhaseDisplaying Phase = "displaying"

	// PhaseAwaitingReproduction is when the player redraws hidden shapes
	PhaseAwaitingReproduction Phase = "awaiting_reproduction"

	// PhaseGameOver is terminal
	PhaseGameOver Phase = "game_over"
)

// String returns the phase name
func (p Phase) String() string {
	return string(p)
}

// IsGameOver reports whether the phase is terminal
func (p Phase) IsGameOver() bool {
	return p == PhaseGameOver
}

// Controls tells the presentation which inputs are currently enabled
type Controls struct {
	// Validate enables the submit action
	Validate bool

	// Undo enables the undo action
	Undo bool

	// Redo enables the redo action
	Redo bool

	// ShapeTools enables drawing new shapes
	ShapeTools bool
}

// AllControls returns every control set to enabled
func AllControls(enabled bool) Controls {
	return Controls{
		Validate:   enabled,
		Undo:       enabled,
		Redo:       enabled,
		ShapeTools: enabled,
	}
}
