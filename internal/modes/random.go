package modes

import (
	"context"

	"github.com/KirkDiggler/recall/internal/models"
)

const (
	// display time is max(minDisplayUnits, baseDisplayUnits - level)
	baseDisplayUnits = 10
	minDisplayUnits  = 2

	// shape dimensions are rand(max(minSizeSpan, baseSizeSpan - level*sizeStep)) + minShapeSize
	baseSizeSpan = 100
	minSizeSpan  = 20
	sizeStep     = 10
	minShapeSize = 20

	baseShapeCount = 4
)

// randomTimed generates harder rounds level after level. Every control,
// including the shape tools, stays disabled while the shapes are shown.
type randomTimed struct {
	base
	level     int
	awaiting  bool
	reference []models.Shape
}

func newRandom(env *Env) *randomTimed {
	return &randomTimed{base: newBase(models.ModeRandom, env)}
}

func (m *randomTimed) Round() int {
	return m.level
}

func (m *randomTimed) Start(ctx context.Context) {
	m.log.Info().
		Str("strategy", m.env.Strategy.Name()).
		Int("max_level", m.env.Config.MaxLevel).
		Msg("starting random timed game")
	m.level = 1
	m.beginLevel()
}

func displayUnits(level int) int {
	return max(minDisplayUnits, baseDisplayUnits-level)
}

func shapeCount(level int) int {
	return baseShapeCount + level
}

func (m *randomTimed) beginLevel() {
	m.env.Canvas.Clear()
	m.awaiting = false
	m.setPhase(models.PhaseDisplaying)
	m.setControls(models.AllControls(false))

	shapes := m.generate()
	for _, shape := range shapes {
		m.env.Canvas.Add(shape)
	}

	units := displayUnits(m.level)
	m.status("Level %d/%d: memorize %d shapes... (%d time units)",
		m.level, m.env.Config.MaxLevel, len(shapes), units)
	m.log.Debug().Int("level", m.level).Int("shapes", len(shapes)).Msg("level generated")

	m.timer.schedule(units, m.hide)
}

// generate builds the level's shapes so each one fits inside the canvas margin
func (m *randomTimed) generate() []models.Shape {
	rnd := m.env.Random
	zone := m.env.Config.CanvasSize
	margin := m.env.Config.CanvasMargin
	span := max(minSizeSpan, baseSizeSpan-m.level*sizeStep)

	shapes := make([]models.Shape, 0, shapeCount(m.level))
	for i := 0; i < shapeCount(m.level); i++ {
		isCircle := rnd.Bool()
		size1 := rnd.Intn(span) + minShapeSize
		size2 := rnd.Intn(span) + minShapeSize

		if isCircle {
			// the anchor is the bounding box corner, so the box is 2r wide
			diameter := 2 * size1
			x := rnd.Intn(zone-diameter-margin-margin) + margin
			y := rnd.Intn(zone-diameter-margin-margin) + margin
			shapes = append(shapes, models.NewCircle(x, y, size1))
			continue
		}

		x := rnd.Intn(zone-size1-margin-margin) + margin
		y := rnd.Intn(zone-size2-margin-margin) + margin
		shapes = append(shapes, models.NewRectangle(x, y, size1, size2))
	}
	return shapes
}

func (m *randomTimed) hide() {
	m.reference = m.env.Canvas.Clear()
	m.awaiting = true
	m.setPhase(models.PhaseAwaitingReproduction)
	m.setControls(models.AllControls(true))
	m.status("Level %d/%d: reproduce the shapes, then submit", m.level, m.env.Config.MaxLevel)
}

func (m *randomTimed) Submit(ctx context.Context) {
	if m.phase.IsGameOver() {
		m.alert(alertGameOver)
		return
	}
	if !m.awaiting {
		m.alert("Wait for the shapes to disappear before submitting!")
		return
	}
	if m.env.Canvas.Len() == 0 {
		m.alert(alertEmptyCanvas)
		return
	}

	m.awaiting = false
	proposal := m.env.Canvas.Clear()
	score := m.env.Strategy.Evaluate(m.reference, proposal)
	m.record(ctx, m.level, models.PlayerOne, score)
	m.env.Presenter.ScoreRecorded(scoreLine(m.level, score))

	if m.level >= m.env.Config.MaxLevel {
		m.finish(m.singlePlayerSummary(ctx))
		return
	}

	m.level++
	m.beginLevel()
}

func (m *randomTimed) Quit(ctx context.Context) string {
	if m.phase.IsGameOver() {
		return m.summary
	}
	return m.finish(m.singlePlayerSummary(ctx))
}
