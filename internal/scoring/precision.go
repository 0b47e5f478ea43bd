package scoring

import "github.com/KirkDiggler/recall/internal/models"

const (
	precisionDistanceThreshold = 40
	precisionSizeThreshold     = 15

	precisionKindPoints           = 30
	precisionCirclePositionPoints = 40
	precisionCircleRadiusPoints   = 30
	precisionRectPositionPoints   = 30
	precisionRectDimensionPoints  = 20
)

// Precision awards fixed bonuses for staying under hard distance and size
// thresholds. There is no partial credit past a threshold.
type Precision struct{}

// Name implements Strategy
func (Precision) Name() string {
	return NamePrecision
}

// Evaluate implements Strategy
func (Precision) Evaluate(reference, proposal []models.Shape) int {
	n := pairs(reference, proposal)
	if n == 0 {
		return 0
	}

	total := 0
	for i := 0; i < n; i++ {
		total += precisionPair(reference[i], proposal[i])
	}

	return total / n
}

func precisionPair(ref, got models.Shape) int {
	if !ref.SameKind(got) {
		return 0
	}

	near := distance(ref, got) < precisionDistanceThreshold
	score := precisionKindPoints

	switch ref.Kind {
	case models.ShapeKindCircle:
		if near {
			score += precisionCirclePositionPoints
		}
		if absDiff(ref.Radius, got.Radius) < precisionSizeThreshold {
			score += precisionCircleRadiusPoints
		}
	case models.ShapeKindRectangle:
		if near {
			score += precisionRectPositionPoints
		}
		if absDiff(ref.Width, got.Width) < precisionSizeThreshold {
			score += precisionRectDimensionPoints
		}
		if absDiff(ref.Height, got.Height) < precisionSizeThreshold {
			score += precisionRectDimensionPoints
		}
	}
	return score
}
