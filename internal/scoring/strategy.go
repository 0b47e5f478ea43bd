// Package scoring rates how faithfully a proposal reproduces a reference
// shape sequence. Shapes are compared position by position: index i of the
// reference against index i of the proposal, up to the shorter length.
package scoring

import (
	"math"

	"github.com/KirkDiggler/recall/internal/models"
)

// Strategy scores a proposal against a reference on a 0..100 scale
type Strategy interface {
	// Evaluate returns 0 when either sequence is empty
	Evaluate(reference, proposal []models.Shape) int

	// Name identifies the strategy in menus and logs
	Name() string
}

const (
	// NameSimilarity selects the graded similarity strategy
	NameSimilarity = "similarity"

	// NamePrecision selects the threshold-based precision strategy
	NamePrecision = "precision"
)

// ScoringError is a sentinel error for this package
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

// ErrUnknownStrategy is returned by ByName for unrecognised names
const ErrUnknownStrategy ScoringError = "unknown scoring strategy"

// ByName returns the strategy registered under name. An empty name selects similarity.
func ByName(name string) (Strategy, error) {
	switch name {
	case "", NameSimilarity:
		return Similarity{}, nil
	case NamePrecision:
		return Precision{}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// Names lists the available strategies
func Names() []string {
	return []string{NameSimilarity, NamePrecision}
}

// pairs returns how many positions are compared, or 0 if scoring is degenerate
func pairs(reference, proposal []models.Shape) int {
	if len(reference) == 0 || len(proposal) == 0 {
		return 0
	}
	return min(len(reference), len(proposal))
}

func distance(a, b models.Shape) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func absDiff(a, b int) float64 {
	return math.Abs(float64(a - b))
}
