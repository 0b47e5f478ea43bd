package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/rs/zerolog"
)

const helpText = `Commands:
  start <solo|two_player|random> [similarity|precision]
  circle <x> <y> <radius>
  rect <x> <y> <width> <height>
  undo | redo
  submit
  shapes          list the shapes on the canvas
  status          show the round and the available actions
  quit            end the game and show the final results
  help`

// TerminalError is a sentinel error for this package
type TerminalError string

// Error implements the error interface
func (e TerminalError) Error() string {
	return string(e)
}

const (
	ErrNilConfig    TerminalError = "config cannot be nil"
	ErrNilService   TerminalError = "game service cannot be nil"
	ErrNilPresenter TerminalError = "presenter cannot be nil"
	ErrNilInput     TerminalError = "input cannot be nil"

	errUsage TerminalError = "usage"
)

// Config holds the dependencies of a terminal session
type Config struct {
	GameService game.Service
	Presenter   *Presenter
	In          io.Reader
	Logger      zerolog.Logger
}

// REPL reads commands line by line and drives a game service
type REPL struct {
	service   game.Service
	presenter *Presenter
	scanner   *bufio.Scanner
	logger    zerolog.Logger
}

// New creates a REPL
func New(cfg *Config) (*REPL, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameService == nil {
		return nil, ErrNilService
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if cfg.In == nil {
		return nil, ErrNilInput
	}

	return &REPL{
		service:   cfg.GameService,
		presenter: cfg.Presenter,
		scanner:   bufio.NewScanner(cfg.In),
		logger:    cfg.Logger,
	}, nil
}

// Run starts a game in mode and processes commands until the game is over,
// the input ends or ctx is cancelled
func (r *REPL) Run(ctx context.Context, input *game.StartModeInput) error {
	if err := r.start(ctx, input); err != nil {
		return err
	}
	r.presenter.Println(`Type "help" for the list of commands.`)

	for !r.presenter.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.presenter.Prompt("> ")
		line, ok := r.readLine()
		if !ok {
			return r.scanner.Err()
		}

		if err := r.execute(ctx, line); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			r.presenter.Alert(describe(err))
		}
	}

	return nil
}

func (r *REPL) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

func (r *REPL) start(ctx context.Context, input *game.StartModeInput) error {
	out, err := r.service.StartMode(ctx, input)
	if err != nil {
		return err
	}
	r.logger.Debug().Str("session_id", out.SessionID).Str("mode", string(input.Mode)).Msg("terminal game started")
	r.presenter.SetMode(input.Mode)
	return nil
}

// execute runs one command line
func (r *REPL) execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "help", "?":
		r.presenter.Println(helpText)
		return nil
	case "start":
		input, err := startInputFromArgs(args)
		if err != nil {
			return err
		}
		return r.start(ctx, input)
	case "circle", "rect", "rectangle":
		shape, err := shapeFromArgs(command, args)
		if err != nil {
			return err
		}
		return r.service.AddShape(ctx, &game.AddShapeInput{Shape: shape})
	case "undo":
		return r.service.Undo(ctx)
	case "redo":
		return r.service.Redo(ctx)
	case "submit", "validate":
		return r.service.Submit(ctx)
	case "shapes":
		shapes, err := r.service.CurrentShapes(ctx)
		if err != nil {
			return err
		}
		r.presenter.PrintShapes(shapes)
		return nil
	case "status":
		state, err := r.service.GetState(ctx)
		if err != nil {
			return err
		}
		r.presenter.Println(fmt.Sprintf("%s game, round %d, phase %s", state.Mode, state.Round, state.Phase))
		r.presenter.PrintControls()
		return nil
	case "quit", "exit":
		return r.quit(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// quit asks for confirmation before ending the game
func (r *REPL) quit(ctx context.Context) error {
	r.presenter.Prompt("Do you want to quit the game? [y/N] ")
	answer, ok := r.readLine()
	if !ok {
		answer = "y"
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		r.presenter.Println("Quit cancelled.")
		return nil
	}

	_, err := r.service.Quit(ctx)
	return err
}

func startInputFromArgs(args []string) (*game.StartModeInput, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("%w: start <mode> [strategy]", errUsage)
	}

	mode, err := models.ParseModeKind(strings.ToLower(args[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidMode, err)
	}

	input := &game.StartModeInput{Mode: mode}
	if len(args) == 2 {
		input.Strategy = strings.ToLower(args[1])
	}
	return input, nil
}

func shapeFromArgs(command string, args []string) (models.Shape, error) {
	want, usage := 3, "circle <x> <y> <radius>"
	if command != "circle" {
		want, usage = 4, "rect <x> <y> <width> <height>"
	}
	if len(args) != want {
		return models.Shape{}, fmt.Errorf("%w: %s", errUsage, usage)
	}

	values := make([]int, want)
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return models.Shape{}, fmt.Errorf("%w: %s", errUsage, usage)
		}
		values[i] = v
	}

	var shape models.Shape
	if command == "circle" {
		shape = models.NewCircle(values[0], values[1], values[2])
	} else {
		shape = models.NewRectangle(values[0], values[1], values[2], values[3])
	}
	if err := shape.Validate(); err != nil {
		return models.Shape{}, err
	}
	return shape, nil
}

// describe turns a command failure into a line for the player
func describe(err error) string {
	switch {
	case errors.Is(err, errUsage):
		return strings.TrimPrefix(err.Error(), errUsage.Error()+": ")
	case errors.Is(err, game.ErrNoActiveSession):
		return `No game is running. Use "start <mode>" to begin.`
	case errors.Is(err, scoring.ErrUnknownStrategy):
		return "Unknown strategy. Choose one of: " + strings.Join(scoring.Names(), ", ")
	case errors.Is(err, game.ErrInvalidMode):
		return "Unknown mode. Choose one of: solo, two_player, random"
	default:
		return err.Error()
	}
}
