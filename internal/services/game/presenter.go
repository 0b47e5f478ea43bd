package game

import (
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/modes"
)

// sessionPresenter forwards a session's notifications until the session is
// replaced or the service closes.
type sessionPresenter struct {
	target modes.Presenter
	muted  bool
}

func (p *sessionPresenter) mute() {
	p.muted = true
}

func (p *sessionPresenter) StatusChanged(text string) {
	if !p.muted {
		p.target.StatusChanged(text)
	}
}

func (p *sessionPresenter) ScoreRecorded(text string) {
	if !p.muted {
		p.target.ScoreRecorded(text)
	}
}

func (p *sessionPresenter) ControlsChanged(controls models.Controls) {
	if !p.muted {
		p.target.ControlsChanged(controls)
	}
}

func (p *sessionPresenter) ShapesChanged(shapes []models.Shape) {
	if !p.muted {
		p.target.ShapesChanged(shapes)
	}
}

func (p *sessionPresenter) Alert(text string) {
	if !p.muted {
		p.target.Alert(text)
	}
}

func (p *sessionPresenter) GameOver(summary string) {
	if !p.muted {
		p.target.GameOver(summary)
	}
}
