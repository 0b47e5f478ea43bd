package modes

import (
	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/models"
)

// manualScheduler fires timers only when a test says so
type manualScheduler struct {
	timers []*manualTimer
}

type manualTimer struct {
	units   int
	fn      func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *manualScheduler) Schedule(units int, fn func()) clock.Timer {
	t := &manualTimer{units: units, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// pending returns the most recent live timer, or nil
func (s *manualScheduler) pending() *manualTimer {
	for i := len(s.timers) - 1; i >= 0; i-- {
		t := s.timers[i]
		if !t.stopped && !t.fired {
			return t
		}
	}
	return nil
}

func (s *manualScheduler) fire() bool {
	t := s.pending()
	if t == nil {
		return false
	}
	t.fired = true
	t.fn()
	return true
}

// recordingPresenter keeps every notification in order
type recordingPresenter struct {
	statuses  []string
	scores    []string
	controls  []models.Controls
	shapes    [][]models.Shape
	alerts    []string
	gameOvers []string
}

func (p *recordingPresenter) StatusChanged(text string) {
	p.statuses = append(p.statuses, text)
}

func (p *recordingPresenter) ScoreRecorded(text string) {
	p.scores = append(p.scores, text)
}

func (p *recordingPresenter) ControlsChanged(controls models.Controls) {
	p.controls = append(p.controls, controls)
}

func (p *recordingPresenter) ShapesChanged(shapes []models.Shape) {
	p.shapes = append(p.shapes, shapes)
}

func (p *recordingPresenter) Alert(text string) {
	p.alerts = append(p.alerts, text)
}

func (p *recordingPresenter) GameOver(summary string) {
	p.gameOvers = append(p.gameOvers, summary)
}

func (p *recordingPresenter) lastStatus() string {
	if len(p.statuses) == 0 {
		return ""
	}
	return p.statuses[len(p.statuses)-1]
}

func (p *recordingPresenter) lastAlert() string {
	if len(p.alerts) == 0 {
		return ""
	}
	return p.alerts[len(p.alerts)-1]
}

func (p *recordingPresenter) lastControls() models.Controls {
	if len(p.controls) == 0 {
		return models.Controls{}
	}
	return p.controls[len(p.controls)-1]
}
