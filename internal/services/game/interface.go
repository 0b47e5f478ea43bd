package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/recall/internal/services/game Service

import (
	"context"

	"github.com/KirkDiggler/recall/internal/models"
)

// Service defines the interface for game operations. One Service drives at
// most one session at a time; every call is serialized with the session's
// timers.
type Service interface {
	// StartMode ends any running session and starts a new one
	StartMode(ctx context.Context, input *StartModeInput) (*StartModeOutput, error)

	// AddShape draws a shape on the session canvas
	AddShape(ctx context.Context, input *AddShapeInput) error

	// Undo removes the last drawn shape
	Undo(ctx context.Context) error

	// Redo restores the last undone shape
	Redo(ctx context.Context) error

	// Submit validates the current canvas for the active phase
	Submit(ctx context.Context) error

	// Quit ends the session and returns its final summary
	Quit(ctx context.Context) (*QuitOutput, error)

	// CurrentShapes returns the shapes currently on the canvas
	CurrentShapes(ctx context.Context) ([]models.Shape, error)

	// CanSubmit reports whether submission is currently permitted
	CanSubmit(ctx context.Context) (bool, error)

	// GetState returns a snapshot of the session
	GetState(ctx context.Context) (*GetStateOutput, error)

	// Close ends the session and stops the service
	Close()
}
