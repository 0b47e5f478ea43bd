package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenterClearsHiddenShapes(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPresenter(&PresenterConfig{Out: out, ClearScreen: true})

	p.ShapesChanged(nil)
	assert.Empty(t, out.String(), "an empty canvas that was already empty prints nothing")

	p.ShapesChanged([]models.Shape{models.NewCircle(1, 2, 3), models.NewRectangle(4, 5, 6, 7)})
	assert.Contains(t, out.String(), "Canvas (2 shapes)")
	assert.Contains(t, out.String(), "2. "+models.NewRectangle(4, 5, 6, 7).String())

	out.Reset()
	p.ShapesChanged(nil)
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
	assert.Contains(t, out.String(), "(canvas cleared)")
}

func TestPresenterWithoutClearScreen(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPresenter(&PresenterConfig{Out: out})

	p.ShapesChanged([]models.Shape{models.NewCircle(1, 2, 3)})
	p.ShapesChanged(nil)
	assert.NotContains(t, out.String(), clearScreen)
	assert.Contains(t, out.String(), "(canvas cleared)")
}

func TestPresenterFlavorText(t *testing.T) {
	svc, err := messaging.NewService(&messaging.ServiceConfig{Random: random.New(&random.Config{Seed: 7})})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	p := NewPresenter(&PresenterConfig{Out: out, Messaging: svc})

	p.SetMode(models.ModeTwoPlayer)
	assert.NotEmpty(t, out.String())
	assert.False(t, p.Finished())

	out.Reset()
	p.ScoreRecorded("Round 1 - Player 2: 100/100")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Round 1 - Player 2: 100/100")

	out.Reset()
	p.GameOver("Final results\n\nPlayer 1: 50.00 points\nPlayer 2: 50.00 points\n\nIt's a tie!")
	assert.Contains(t, out.String(), "It's a tie!")
	assert.True(t, p.Finished())
}

func TestPresenterAlertsAndControls(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPresenter(&PresenterConfig{Out: out})

	p.Alert("Draw at least one shape before submitting!")
	assert.Contains(t, out.String(), "! Draw at least one shape before submitting!")

	out.Reset()
	p.ControlsChanged(models.AllControls(false))
	p.PrintControls()
	assert.Contains(t, out.String(), "controls locked")

	out.Reset()
	p.ControlsChanged(models.AllControls(true))
	p.PrintControls()
	assert.Contains(t, out.String(), "available: circle, rect, undo, redo, submit")
}
