package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/services/messaging"
)

const clearScreen = "\x1b[H\x1b[2J"

// Presenter prints a game to a terminal
type Presenter struct {
	out         io.Writer
	messaging   messaging.Service
	clearScreen bool
	styles      styles

	mu       sync.Mutex
	mode     models.ModeKind
	shapes   []models.Shape
	controls models.Controls
	finished bool
}

// PresenterConfig holds the presenter's output settings
type PresenterConfig struct {
	Out io.Writer

	// Messaging adds flavor text under scores and results; optional
	Messaging messaging.Service

	// ClearScreen wipes the terminal when the canvas empties so hidden
	// shapes cannot be read back from the scrollback
	ClearScreen bool
}

// NewPresenter creates a terminal presenter
func NewPresenter(cfg *PresenterConfig) *Presenter {
	return &Presenter{
		out:         cfg.Out,
		messaging:   cfg.Messaging,
		clearScreen: cfg.ClearScreen,
		styles:      newStyles(),
	}
}

// SetMode records the mode of a newly started game
func (p *Presenter) SetMode(mode models.ModeKind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = mode
	p.finished = false

	if p.messaging == nil {
		return
	}
	out, err := p.messaging.GetGameStartedMessage(context.Background(), &messaging.GetGameStartedMessageInput{Mode: mode})
	if err == nil {
		p.printf("%s\n", p.styles.comment.Render(out.Message))
	}
}

func (p *Presenter) StatusChanged(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printf("%s\n", p.styles.status.Render(text))
}

func (p *Presenter) ScoreRecorded(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printf("%s\n", p.styles.score.Render(text))
	if p.messaging == nil {
		return
	}
	if score, ok := messaging.ScoreFromLine(text); ok {
		out, err := p.messaging.GetScoreMessage(context.Background(), &messaging.GetScoreMessageInput{Score: score})
		if err == nil {
			p.printf("%s\n", p.styles.comment.Render(out.Message))
		}
	}
}

func (p *Presenter) ControlsChanged(controls models.Controls) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.controls = controls
}

func (p *Presenter) ShapesChanged(shapes []models.Shape) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hadShapes := len(p.shapes) > 0
	p.shapes = shapes
	if len(shapes) > 0 {
		p.printShapes(shapes)
		return
	}
	if !hadShapes {
		return
	}
	if p.clearScreen {
		p.printf("%s", clearScreen)
	}
	p.printf("%s\n", p.styles.empty.Render("(canvas cleared)"))
}

func (p *Presenter) Alert(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printf("%s\n", p.styles.alert.Render("! "+text))
}

func (p *Presenter) GameOver(summary string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.finished = true
	p.printf("%s\n", p.styles.gameOver.Render(summary))
	if p.messaging == nil {
		return
	}
	out, err := p.messaging.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
		Mode:    p.mode,
		Average: messaging.AverageFromSummary(summary),
		Tie:     messaging.IsTie(summary),
	})
	if err == nil {
		p.printf("%s\n", p.styles.comment.Render(out.Message))
	}
}

// Finished reports whether the current game is over
func (p *Presenter) Finished() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finished
}

// PrintShapes lists the shapes currently shown
func (p *Presenter) PrintShapes(shapes []models.Shape) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printShapes(shapes)
}

// PrintControls shows which actions are enabled
func (p *Presenter) PrintControls() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printf("%s\n", p.styles.controls.Render(renderControls(p.controls)))
}

// Println writes a plain line between game notifications
func (p *Presenter) Println(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printf("%s\n", text)
}

// Prompt writes the input prompt without a newline
func (p *Presenter) Prompt(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.printf("%s", p.styles.prompt.Render(text))
}

func (p *Presenter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Presenter) printShapes(shapes []models.Shape) {
	if len(shapes) == 0 {
		p.printf("%s\n", p.styles.empty.Render("(canvas is empty)"))
		return
	}
	p.printf("%s\n", p.styles.title.Render(fmt.Sprintf("Canvas (%d shapes)", len(shapes))))
	for i, shape := range shapes {
		p.printf("  %s\n", p.styles.shape.Render(fmt.Sprintf("%d. %s", i+1, shape)))
	}
}

func renderControls(controls models.Controls) string {
	var enabled []string
	if controls.ShapeTools {
		enabled = append(enabled, "circle", "rect")
	}
	if controls.Undo {
		enabled = append(enabled, "undo")
	}
	if controls.Redo {
		enabled = append(enabled, "redo")
	}
	if controls.Validate {
		enabled = append(enabled, "submit")
	}
	if len(enabled) == 0 {
		return "controls locked"
	}
	return "available: " + strings.Join(enabled, ", ")
}
