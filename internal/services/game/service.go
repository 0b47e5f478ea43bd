package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/recall/internal/canvas"
	"github.com/KirkDiggler/recall/internal/common/clock"
	"github.com/KirkDiggler/recall/internal/common/uuid"
	"github.com/KirkDiggler/recall/internal/eventloop"
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/modes"
	"github.com/KirkDiggler/recall/internal/random"
	scoreLedgerRepo "github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/rs/zerolog"
)

const alertShapeToolsDisabled = "Shape tools are disabled right now."

// service implements the Service interface
type service struct {
	timeUnit        time.Duration
	modeConfig      modes.Config
	defaultStrategy scoring.Strategy
	scoreLedgerRepo scoreLedgerRepo.Repository
	presenter       modes.Presenter
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	random          random.Source
	logger          zerolog.Logger

	loop *eventloop.Loop

	// owned by the loop
	session *session
}

// session is one running mode and its canvas
type session struct {
	id        string
	mode      modes.Mode
	canvas    *canvas.Canvas
	presenter *sessionPresenter
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if cfg.ScoreLedgerRepo == nil {
		return nil, ErrNilScoreLedgerRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.TimeUnit < 0 {
		return nil, ErrInvalidTimeUnit
	}

	timeUnit := cfg.TimeUnit
	if timeUnit == 0 {
		timeUnit = DefaultTimeUnit
	}

	modeConfig := cfg.Modes.WithDefaults()
	if !modeConfig.Valid() {
		return nil, ErrInvalidModeConfig
	}

	strategy := cfg.DefaultStrategy
	if strategy == nil {
		strategy = scoring.Similarity{}
	}

	return &service{
		timeUnit:        timeUnit,
		modeConfig:      modeConfig,
		defaultStrategy: strategy,
		scoreLedgerRepo: cfg.ScoreLedgerRepo,
		presenter:       cfg.Presenter,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		random:          cfg.Random,
		logger:          cfg.Logger,
		loop:            eventloop.New(),
	}, nil
}

// Schedule runs fn on the service loop after units time units
func (s *service) Schedule(units int, fn func()) clock.Timer {
	return s.clock.AfterFunc(time.Duration(units)*s.timeUnit, func() {
		if err := s.loop.Post(fn); err != nil {
			s.logger.Debug().Err(err).Msg("dropping timer fired after close")
		}
	})
}

// StartMode ends any running session and starts a new one
func (s *service) StartMode(ctx context.Context, input *StartModeInput) (*StartModeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	switch input.Mode {
	case models.ModeSolo, models.ModeTwoPlayer, models.ModeRandom:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, input.Mode)
	}

	strategy := s.defaultStrategy
	if input.Strategy != "" {
		var err error
		strategy, err = scoring.ByName(input.Strategy)
		if err != nil {
			return nil, err
		}
	}

	sessionID := s.uuidGenerator.NewUUID()

	var startErr error
	err := s.loop.Do(ctx, func() {
		s.endSession(ctx)

		if err := s.scoreLedgerRepo.Reset(ctx, &scoreLedgerRepo.ResetInput{PlaythroughID: sessionID}); err != nil {
			s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to reset score ledger")
		}

		presenter := &sessionPresenter{target: s.presenter}
		board := canvas.New(presenter.ShapesChanged)

		mode, err := modes.New(input.Mode, &modes.Env{
			Canvas:        board,
			Scheduler:     s,
			Ledger:        s.scoreLedgerRepo,
			Presenter:     presenter,
			Clock:         s.clock,
			Strategy:      strategy,
			Random:        s.random,
			Config:        s.modeConfig,
			PlaythroughID: sessionID,
			Logger:        s.logger,
		})
		if err != nil {
			startErr = err
			return
		}

		s.session = &session{
			id:        sessionID,
			mode:      mode,
			canvas:    board,
			presenter: presenter,
		}

		s.logger.Info().
			Str("session_id", sessionID).
			Str("mode", string(input.Mode)).
			Str("strategy", strategy.Name()).
			Msg("session started")

		mode.Start(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start mode: %w", err)
	}
	if startErr != nil {
		if errors.Is(startErr, modes.ErrUnknownMode) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMode, startErr)
		}
		return nil, startErr
	}

	return &StartModeOutput{SessionID: sessionID}, nil
}

// endSession silences and quits the running session, if any. Its pending
// timers are stopped; one already queued finds a stale generation.
func (s *service) endSession(ctx context.Context) {
	if s.session == nil {
		return
	}

	old := s.session
	s.session = nil
	old.presenter.mute()
	old.mode.Quit(ctx)

	if err := s.scoreLedgerRepo.Reset(ctx, &scoreLedgerRepo.ResetInput{PlaythroughID: old.id}); err != nil {
		s.logger.Error().Err(err).Str("session_id", old.id).Msg("failed to discard previous session scores")
	}

	s.logger.Info().Str("session_id", old.id).Msg("session ended")
}

// withSession runs fn on the loop against the current session
func (s *service) withSession(ctx context.Context, fn func(sess *session)) error {
	var noSession bool
	err := s.loop.Do(ctx, func() {
		if s.session == nil {
			noSession = true
			return
		}
		fn(s.session)
	})
	if err != nil {
		return err
	}
	if noSession {
		return ErrNoActiveSession
	}
	return nil
}

// AddShape draws a shape on the session canvas
func (s *service) AddShape(ctx context.Context, input *AddShapeInput) error {
	if input == nil {
		return ErrNilInput
	}

	return s.withSession(ctx, func(sess *session) {
		if !sess.mode.Controls().ShapeTools {
			sess.presenter.Alert(alertShapeToolsDisabled)
			return
		}
		if err := input.Shape.Validate(); err != nil {
			sess.presenter.Alert(fmt.Sprintf("Invalid shape: %v", err))
			return
		}
		sess.canvas.Add(input.Shape)
	})
}

// Undo removes the last drawn shape
func (s *service) Undo(ctx context.Context) error {
	return s.withSession(ctx, func(sess *session) {
		if sess.mode.Controls().Undo {
			sess.canvas.Undo()
		}
	})
}

// Redo restores the last undone shape
func (s *service) Redo(ctx context.Context) error {
	return s.withSession(ctx, func(sess *session) {
		if sess.mode.Controls().Redo {
			sess.canvas.Redo()
		}
	})
}

// Submit validates the current canvas for the active phase
func (s *service) Submit(ctx context.Context) error {
	return s.withSession(ctx, func(sess *session) {
		sess.mode.Submit(ctx)
	})
}

// Quit ends the session and returns its final summary
func (s *service) Quit(ctx context.Context) (*QuitOutput, error) {
	var summary string
	err := s.withSession(ctx, func(sess *session) {
		summary = sess.mode.Quit(ctx)
		s.logger.Info().Str("session_id", sess.id).Msg("session quit")
	})
	if err != nil {
		return nil, err
	}

	return &QuitOutput{Summary: summary}, nil
}

// CurrentShapes returns the shapes currently on the canvas
func (s *service) CurrentShapes(ctx context.Context) ([]models.Shape, error) {
	var shapes []models.Shape
	err := s.withSession(ctx, func(sess *session) {
		shapes = sess.canvas.Shapes()
	})
	if err != nil {
		return nil, err
	}
	return shapes, nil
}

// CanSubmit reports whether submission is currently permitted
func (s *service) CanSubmit(ctx context.Context) (bool, error) {
	var ok bool
	err := s.withSession(ctx, func(sess *session) {
		ok = sess.mode.CanSubmit()
	})
	return ok, err
}

// GetState returns a snapshot of the session
func (s *service) GetState(ctx context.Context) (*GetStateOutput, error) {
	var (
		output  *GetStateOutput
		repoErr error
	)
	err := s.withSession(ctx, func(sess *session) {
		entries, err := s.scoreLedgerRepo.GetEntries(ctx, &scoreLedgerRepo.GetEntriesInput{PlaythroughID: sess.id})
		if err != nil {
			repoErr = fmt.Errorf("failed to get score entries: %w", err)
			return
		}

		output = &GetStateOutput{
			SessionID: sess.id,
			Mode:      sess.mode.Kind(),
			Phase:     sess.mode.Phase(),
			Controls:  sess.mode.Controls(),
			Round:     sess.mode.Round(),
			Shapes:    sess.canvas.Shapes(),
			Scores:    entries.Entries,
		}
	})
	if err != nil {
		return nil, err
	}
	if repoErr != nil {
		return nil, repoErr
	}

	return output, nil
}

// Close ends the session and stops the service
func (s *service) Close() {
	_ = s.loop.Do(context.Background(), func() {
		s.endSession(context.Background())
	})
	s.loop.Close()
}
