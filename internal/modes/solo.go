package modes

import (
	"context"

	"github.com/KirkDiggler/recall/internal/models"
)

// solo replays the curriculum: each drawing is shown, hidden, then redrawn
// from memory and scored.
type solo struct {
	base
	index     int
	reference []models.Shape
}

func newSolo(env *Env) *solo {
	return &solo{base: newBase(models.ModeSolo, env)}
}

func (m *solo) Round() int {
	return m.index + 1
}

func (m *solo) Start(ctx context.Context) {
	m.log.Info().Str("strategy", m.env.Strategy.Name()).Msg("starting solo curriculum")
	m.index = 0
	m.display()
}

func (m *solo) display() {
	d := curriculum[m.index]
	m.log.Debug().Int("drawing", m.Round()).Str("name", d.name).Msg("displaying drawing")

	m.env.Canvas.Clear()
	m.setPhase(models.PhaseDisplaying)
	m.setControls(models.AllControls(false))
	for _, shape := range d.shapes {
		m.env.Canvas.Add(shape)
	}
	m.status("Drawing %d/%d: memorize the shapes... (%d time units)",
		m.Round(), len(curriculum), m.env.Config.SoloDisplayUnits)

	m.timer.schedule(m.env.Config.SoloDisplayUnits, m.hide)
}

func (m *solo) hide() {
	m.reference = m.env.Canvas.Clear()
	m.setPhase(models.PhaseAwaitingReproduction)
	m.setControls(models.AllControls(true))
	m.status("Drawing %d/%d: reproduce the shapes, then submit", m.Round(), len(curriculum))
}

func (m *solo) Submit(ctx context.Context) {
	switch m.phase {
	case models.PhaseDisplaying:
		m.alert("Wait for the drawing to disappear before submitting!")
		return
	case models.PhaseGameOver:
		m.alert(alertGameOver)
		return
	case models.PhaseAwaitingReproduction:
	default:
		m.alert(alertNotStarted)
		return
	}

	if m.env.Canvas.Len() == 0 {
		m.alert(alertEmptyCanvas)
		return
	}

	proposal := m.env.Canvas.Clear()
	score := m.env.Strategy.Evaluate(m.reference, proposal)
	m.record(ctx, m.Round(), models.PlayerOne, score)
	m.env.Presenter.ScoreRecorded(scoreLine(m.Round(), score))

	if m.index+1 >= len(curriculum) {
		m.finish(m.singlePlayerSummary(ctx))
		return
	}

	m.index++
	m.display()
}

func (m *solo) Quit(ctx context.Context) string {
	if m.phase.IsGameOver() {
		return m.summary
	}
	return m.finish(m.singlePlayerSummary(ctx))
}
