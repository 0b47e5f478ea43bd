package modes

import (
	"context"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/scoring"
)

// twoPlayer alternates the creator role: player one creates on odd rounds,
// player two on even rounds, and the other player reproduces.
type twoPlayer struct {
	base
	round     int
	active    models.PlayerID
	reference []models.Shape
	scorer    scoring.Strategy
}

func newTwoPlayer(env *Env) *twoPlayer {
	return &twoPlayer{
		base: newBase(models.ModeTwoPlayer, env),
		// reproductions are always rated on similarity, whatever strategy
		// the session was started with
		scorer: scoring.Similarity{},
	}
}

func (m *twoPlayer) Round() int {
	return m.round
}

func (m *twoPlayer) creator() models.PlayerID {
	if m.round%2 == 1 {
		return models.PlayerOne
	}
	return models.PlayerTwo
}

func (m *twoPlayer) Start(ctx context.Context) {
	m.log.Info().Int("rounds", m.env.Config.Rounds).Msg("starting two-player game")
	m.round = 1
	m.beginCreation()
}

func (m *twoPlayer) beginCreation() {
	creator := m.creator()
	m.active = creator
	m.reference = nil

	m.env.Canvas.Clear()
	m.setPhase(models.PhaseCreation)
	m.setControls(models.AllControls(true))
	m.status("Round %d/%d - %s, create exactly %d shapes for %s to reproduce",
		m.round, m.env.Config.Rounds, creator.DisplayName(),
		m.env.Config.ShapesPerCreation, creator.Other().DisplayName())
}

func (m *twoPlayer) Submit(ctx context.Context) {
	switch m.phase {
	case models.PhaseCreation:
		m.submitCreation()
	case models.PhaseWaiting:
		m.alert("Please wait until the memorization phase ends")
	case models.PhaseReproduction:
		m.submitReproduction(ctx)
	case models.PhaseGameOver:
		m.alert(alertGameOver)
	default:
		m.alert(alertNotStarted)
	}
}

func (m *twoPlayer) submitCreation() {
	if m.env.Canvas.Len() != m.env.Config.ShapesPerCreation {
		m.alert(exactShapesAlert(m.env.Config.ShapesPerCreation))
		return
	}

	m.reference = m.env.Canvas.Shapes()
	m.active = m.creator().Other()
	m.setPhase(models.PhaseWaiting)
	m.setControls(models.AllControls(false))
	m.status("Memorizing shapes... (%d time units)", m.env.Config.MemorizeUnits)

	m.timer.schedule(m.env.Config.MemorizeUnits, m.beginReproduction)
}

func (m *twoPlayer) beginReproduction() {
	m.env.Canvas.Clear()
	m.setPhase(models.PhaseReproduction)
	m.setControls(models.AllControls(true))
	m.status("%s, reproduce the shapes!", m.active.DisplayName())
}

func (m *twoPlayer) submitReproduction(ctx context.Context) {
	proposal := m.env.Canvas.Shapes()
	score := m.scorer.Evaluate(m.reference, proposal)

	m.record(ctx, m.round, m.active, score)
	m.env.Presenter.ScoreRecorded(playerScoreLine(m.round, m.active, score))

	m.round++
	if score_ledger.IsComplete(m.round, m.env.Config.Rounds) {
		m.env.Canvas.Clear()
		m.finish(m.summaryText(ctx))
		return
	}
	m.beginCreation()
}

func (m *twoPlayer) summaryText(ctx context.Context) string {
	return duelSummary(m.stats(ctx, models.PlayerOne), m.stats(ctx, models.PlayerTwo))
}

func (m *twoPlayer) Quit(ctx context.Context) string {
	if m.phase.IsGameOver() {
		return m.summary
	}
	return m.finish(m.summaryText(ctx))
}
