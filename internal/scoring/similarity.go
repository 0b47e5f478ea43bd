package scoring

import (
	"math"

	"github.com/KirkDiggler/recall/internal/models"
)

const (
	similarityKindPoints     = 30.0
	similarityPositionPoints = 40.0
	similaritySizePoints     = 15.0
	similarityFalloff        = 0.5
)

// Similarity grants partial credit that falls off linearly with distance and
// size difference. A circle pair peaks at 85, a rectangle pair at 100.
// Pair totals are summed unclamped before averaging.
type Similarity struct{}

// Name implements Strategy
func (Similarity) Name() string {
	return NameSimilarity
}

// Evaluate implements Strategy
func (Similarity) Evaluate(reference, proposal []models.Shape) int {
	n := pairs(reference, proposal)
	if n == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < n; i++ {
		total += similarityPair(reference[i], proposal[i])
	}

	return int(math.Floor(total / float64(n)))
}

func similarityPair(ref, got models.Shape) float64 {
	if !ref.SameKind(got) {
		return 0
	}

	score := similarityKindPoints + positionScore(ref, got)
	switch ref.Kind {
	case models.ShapeKindCircle:
		score += sizeScore(ref.Radius, got.Radius)
	case models.ShapeKindRectangle:
		score += sizeScore(ref.Width, got.Width)
		score += sizeScore(ref.Height, got.Height)
	}
	return score
}

// positionScore reaches 0 at a distance of 80
func positionScore(ref, got models.Shape) float64 {
	return math.Max(0, similarityPositionPoints-distance(ref, got)*similarityFalloff)
}

// sizeScore reaches 0 at a difference of 30
func sizeScore(ref, got int) float64 {
	return math.Max(0, similaritySizePoints-absDiff(ref, got)*similarityFalloff)
}
