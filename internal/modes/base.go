package modes

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/rs/zerolog"
)

const (
	alertGameOver      = "The game is over. Start a new game to keep playing."
	alertEmptyCanvas   = "Draw at least one shape before submitting!"
	alertScoreNotSaved = "Your score could not be saved."
	alertNotStarted    = "The game has not started yet."
)

// timerSlot holds at most one pending timer. Every schedule or cancel bumps
// the generation, so a callback that was already queued when its timer was
// replaced finds a stale generation and does nothing.
type timerSlot struct {
	scheduler  Scheduler
	generation uint64
	pending    clock.Timer
}

func (t *timerSlot) schedule(units int, fn func()) {
	t.cancel()
	gen := t.generation
	t.pending = t.scheduler.Schedule(units, func() {
		if gen != t.generation {
			return
		}
		t.pending = nil
		fn()
	})
}

func (t *timerSlot) cancel() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

// base is the state every mode shares
type base struct {
	env      *Env
	kind     models.ModeKind
	log      zerolog.Logger
	phase    models.Phase
	controls models.Controls
	timer    timerSlot
	summary  string
}

func newBase(kind models.ModeKind, env *Env) base {
	strategy := env.Strategy
	if strategy == nil {
		strategy = scoring.Similarity{}
		env.Strategy = strategy
	}

	return base{
		env:  env,
		kind: kind,
		log: env.Logger.With().
			Str("mode", string(kind)).
			Str("playthrough_id", env.PlaythroughID).
			Logger(),
		phase: models.PhaseIdle,
		timer: timerSlot{scheduler: env.Scheduler},
	}
}

func (b *base) Kind() models.ModeKind {
	return b.kind
}

func (b *base) Phase() models.Phase {
	return b.phase
}

func (b *base) Controls() models.Controls {
	return b.controls
}

func (b *base) CanSubmit() bool {
	return b.controls.Validate
}

func (b *base) setPhase(phase models.Phase) {
	b.log.Debug().
		Str("from", b.phase.String()).
		Str("to", phase.String()).
		Msg("phase transition")
	b.phase = phase
}

func (b *base) setControls(controls models.Controls) {
	b.controls = controls
	b.env.Presenter.ControlsChanged(controls)
}

func (b *base) status(format string, args ...any) {
	b.env.Presenter.StatusChanged(fmt.Sprintf(format, args...))
}

func (b *base) alert(text string) {
	b.env.Presenter.Alert(text)
}

// record appends a score to the ledger. A failure is reported but does not
// stop the game.
func (b *base) record(ctx context.Context, round int, player models.PlayerID, score int) {
	err := b.env.Ledger.RecordScore(ctx, &score_ledger.RecordScoreInput{
		PlaythroughID: b.env.PlaythroughID,
		Round:         round,
		PlayerID:      player,
		Score:         score,
		RecordedAt:    b.env.Clock.Now(),
	})
	if err != nil {
		b.log.Error().Err(err).
			Int("round", round).
			Str("player_id", string(player)).
			Msg("failed to record score")
		b.alert(alertScoreNotSaved)
		return
	}

	b.log.Info().
		Int("round", round).
		Str("player_id", string(player)).
		Int("score", score).
		Msg("score recorded")
}

func (b *base) stats(ctx context.Context, player models.PlayerID) *models.PlayerStats {
	out, err := b.env.Ledger.GetPlayerStats(ctx, &score_ledger.GetPlayerStatsInput{
		PlaythroughID: b.env.PlaythroughID,
		PlayerID:      player,
	})
	if err != nil || out == nil || out.Stats == nil {
		b.log.Error().Err(err).
			Str("player_id", string(player)).
			Msg("failed to read player stats")
		return &models.PlayerStats{PlayerID: player}
	}
	return out.Stats
}

// finish moves to game over exactly once and publishes the summary
func (b *base) finish(summary string) string {
	if b.phase.IsGameOver() {
		return b.summary
	}

	b.timer.cancel()
	b.setPhase(models.PhaseGameOver)
	b.summary = summary
	b.setControls(models.AllControls(false))
	b.env.Presenter.GameOver(summary)
	b.log.Info().Msg("game over")
	return summary
}

// singlePlayerSummary reports player one's average
func (b *base) singlePlayerSummary(ctx context.Context) string {
	stats := b.stats(ctx, models.PlayerOne)

	var sb strings.Builder
	sb.WriteString("Final results\n\n")
	if stats.Count == 0 {
		sb.WriteString("Your average: 0 points")
	} else {
		fmt.Fprintf(&sb, "Your average: %.2f points", stats.Average)
	}
	return sb.String()
}
