package modes

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/recall/internal/canvas"
	clockMocks "github.com/KirkDiggler/recall/internal/common/clock/mocks"
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/repositories/score_ledger"
	ledgerMocks "github.com/KirkDiggler/recall/internal/repositories/score_ledger/mocks"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ModesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	ledger    score_ledger.Repository
	presenter *recordingPresenter
	scheduler *manualScheduler
	env       *Env
	ctx       context.Context

	testTime          time.Time
	testPlaythroughID string
}

func (s *ModesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.ctx = context.Background()
	s.testPlaythroughID = "test-playthrough-id"
	s.ledger = score_ledger.NewMemory()
	s.presenter = &recordingPresenter{}
	s.scheduler = &manualScheduler{}

	s.env = &Env{
		Canvas:        canvas.New(s.presenter.ShapesChanged),
		Scheduler:     s.scheduler,
		Ledger:        s.ledger,
		Presenter:     s.presenter,
		Clock:         s.mockClock,
		Strategy:      scoring.Similarity{},
		Random:        random.New(&random.Config{Seed: 42}),
		Config:        DefaultConfig(),
		PlaythroughID: s.testPlaythroughID,
		Logger:        zerolog.Nop(),
	}
}

func (s *ModesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ModesTestSuite) start(kind models.ModeKind) Mode {
	mode, err := New(kind, s.env)
	s.Require().NoError(err)
	mode.Start(s.ctx)
	return mode
}

func (s *ModesTestSuite) draw(shapes []models.Shape) {
	for _, shape := range shapes {
		s.env.Canvas.Add(shape)
	}
}

func (s *ModesTestSuite) entries() []*models.ScoreEntry {
	out, err := s.ledger.GetEntries(s.ctx, &score_ledger.GetEntriesInput{PlaythroughID: s.testPlaythroughID})
	s.Require().NoError(err)
	return out.Entries
}

func rectangles(n int) []models.Shape {
	shapes := make([]models.Shape, 0, n)
	for i := 0; i < n; i++ {
		shapes = append(shapes, models.NewRectangle(50+i*100, 50, 40, 30))
	}
	return shapes
}

func circles(n int) []models.Shape {
	shapes := make([]models.Shape, 0, n)
	for i := 0; i < n; i++ {
		shapes = append(shapes, models.NewCircle(100+i*100, 200, 30))
	}
	return shapes
}

func (s *ModesTestSuite) TestNewValidation() {
	tests := []struct {
		name    string
		kind    models.ModeKind
		mutate  func(env *Env)
		wantErr error
	}{
		{name: "unknown kind", kind: models.ModeKind("chess"), wantErr: ErrUnknownMode},
		{name: "nil presenter", kind: models.ModeSolo, mutate: func(env *Env) { env.Presenter = nil }, wantErr: ErrNilPresenter},
		{name: "nil canvas", kind: models.ModeSolo, mutate: func(env *Env) { env.Canvas = nil }, wantErr: ErrNilCanvas},
		{name: "nil scheduler", kind: models.ModeTwoPlayer, mutate: func(env *Env) { env.Scheduler = nil }, wantErr: ErrNilScheduler},
		{name: "nil ledger", kind: models.ModeSolo, mutate: func(env *Env) { env.Ledger = nil }, wantErr: ErrNilLedger},
		{name: "nil clock", kind: models.ModeSolo, mutate: func(env *Env) { env.Clock = nil }, wantErr: ErrNilClock},
		{name: "random without source", kind: models.ModeRandom, mutate: func(env *Env) { env.Random = nil }, wantErr: ErrNilRandom},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			env := *s.env
			if tc.mutate != nil {
				tc.mutate(&env)
			}
			_, err := New(tc.kind, &env)
			s.ErrorIs(err, tc.wantErr)
		})
	}

	_, err := New(models.ModeSolo, nil)
	s.ErrorIs(err, ErrNilEnv)
}

func (s *ModesTestSuite) TestConfigWithDefaults() {
	s.Equal(DefaultConfig(), Config{}.WithDefaults())

	cfg := Config{MaxLevel: 3, CanvasSize: 400}.WithDefaults()
	s.Equal(3, cfg.MaxLevel)
	s.Equal(400, cfg.CanvasSize)
	s.Equal(DefaultConfig().ShapesPerCreation, cfg.ShapesPerCreation)
	s.Equal(DefaultConfig().SoloDisplayUnits, cfg.SoloDisplayUnits)
	s.True(cfg.Valid())

	s.False(Config{Rounds: -2}.WithDefaults().Valid())
}

func (s *ModesTestSuite) TestSubmitBeforeStartAlerts() {
	for _, kind := range []models.ModeKind{models.ModeSolo, models.ModeTwoPlayer} {
		s.Run(string(kind), func() {
			s.presenter.alerts = nil
			mode, err := New(kind, s.env)
			s.Require().NoError(err)

			mode.Submit(s.ctx)

			s.Equal(alertNotStarted, s.presenter.lastAlert())
			s.Equal(models.PhaseIdle, mode.Phase())
			s.Empty(s.entries())
		})
	}
}

func (s *ModesTestSuite) TestSoloDisplaysFirstDrawing() {
	mode := s.start(models.ModeSolo)

	s.Equal(models.ModeSolo, mode.Kind())
	s.Equal(models.PhaseDisplaying, mode.Phase())
	s.Equal(1, mode.Round())
	s.Equal(models.AllControls(false), mode.Controls())
	s.False(mode.CanSubmit())
	s.Equal(curriculum[0].shapes, s.env.Canvas.Shapes())
	s.Require().NotNil(s.scheduler.pending())
	s.Equal(10, s.scheduler.pending().units)
}

func (s *ModesTestSuite) TestSoloSubmitWhileDisplaying() {
	mode := s.start(models.ModeSolo)

	mode.Submit(s.ctx)

	s.Equal("Wait for the drawing to disappear before submitting!", s.presenter.lastAlert())
	s.Equal(models.PhaseDisplaying, mode.Phase())
	s.Empty(s.entries())
}

func (s *ModesTestSuite) TestSoloRound() {
	mode := s.start(models.ModeSolo)
	s.Require().True(s.scheduler.fire())

	s.Equal(models.PhaseAwaitingReproduction, mode.Phase())
	s.Zero(s.env.Canvas.Len())
	s.Equal(models.AllControls(true), mode.Controls())
	s.True(mode.CanSubmit())

	mode.Submit(s.ctx)
	s.Equal(alertEmptyCanvas, s.presenter.lastAlert())
	s.Equal(models.PhaseAwaitingReproduction, mode.Phase())

	s.draw(curriculum[0].shapes)
	mode.Submit(s.ctx)

	// two circles at 85 and one rectangle at 100
	s.Equal([]string{"Round 1: 90/100"}, s.presenter.scores)
	s.Equal(models.PhaseDisplaying, mode.Phase())
	s.Equal(2, mode.Round())
	s.Equal(curriculum[1].shapes, s.env.Canvas.Shapes())

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal(models.PlayerOne, entries[0].PlayerID)
	s.Equal(1, entries[0].Round)
	s.Equal(90, entries[0].Score)
	s.Equal(s.testTime, entries[0].RecordedAt)
}

func (s *ModesTestSuite) TestSoloUsesConfiguredStrategy() {
	s.env.Strategy = scoring.Precision{}
	mode := s.start(models.ModeSolo)
	s.Require().True(s.scheduler.fire())

	s.draw(curriculum[0].shapes)
	mode.Submit(s.ctx)

	s.Equal([]string{"Round 1: 100/100"}, s.presenter.scores)
}

func (s *ModesTestSuite) TestSoloFullCurriculum() {
	mode := s.start(models.ModeSolo)

	total := 0
	for i, d := range curriculum {
		s.Require().Equal(i+1, mode.Round())
		s.Require().True(s.scheduler.fire())
		s.draw(d.shapes)
		mode.Submit(s.ctx)
		total += scoring.Similarity{}.Evaluate(d.shapes, d.shapes)
	}

	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Len(s.entries(), len(curriculum))
	s.Len(s.presenter.scores, len(curriculum))
	s.Nil(s.scheduler.pending())

	want := fmt.Sprintf("Final results\n\nYour average: %.2f points", float64(total)/float64(len(curriculum)))
	s.Equal([]string{want}, s.presenter.gameOvers)
	s.Equal(want, mode.Quit(s.ctx))
	s.Len(s.presenter.gameOvers, 1)

	mode.Submit(s.ctx)
	s.Equal(alertGameOver, s.presenter.lastAlert())
}

func (s *ModesTestSuite) TestSoloQuitInvalidatesTimer() {
	mode := s.start(models.ModeSolo)
	timer := s.scheduler.pending()
	s.Require().NotNil(timer)

	summary := mode.Quit(s.ctx)

	s.Equal("Final results\n\nYour average: 0 points", summary)
	s.True(timer.stopped)
	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Equal(models.AllControls(false), s.presenter.lastControls())

	// a callback already in flight when the quit happened is ignored
	timer.fn()
	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Equal(summary, mode.Quit(s.ctx))
	s.Len(s.presenter.gameOvers, 1)
}

func (s *ModesTestSuite) TestTwoPlayerCreation() {
	mode := s.start(models.ModeTwoPlayer)

	s.Equal(models.PhaseCreation, mode.Phase())
	s.Equal(1, mode.Round())
	s.Equal("Round 1/10 - Player 1, create exactly 4 shapes for Player 2 to reproduce", s.presenter.lastStatus())
	s.Equal(models.AllControls(true), mode.Controls())

	s.draw(rectangles(3))
	mode.Submit(s.ctx)
	s.Equal("You must create exactly 4 shapes!", s.presenter.lastAlert())
	s.Equal(models.PhaseCreation, mode.Phase())
	s.Equal(3, s.env.Canvas.Len())

	s.draw([]models.Shape{models.NewCircle(500, 500, 20), models.NewCircle(600, 500, 20)})
	mode.Submit(s.ctx)
	s.Len(s.presenter.alerts, 2)
	s.Equal(models.PhaseCreation, mode.Phase())
	s.Equal(5, s.env.Canvas.Len())

	s.Require().True(s.env.Canvas.Undo())
	mode.Submit(s.ctx)
	s.Len(s.presenter.alerts, 2)
	s.Equal(models.PhaseWaiting, mode.Phase())
	s.Equal(4, s.env.Canvas.Len())
}

func (s *ModesTestSuite) TestTwoPlayerEndsAfterConfiguredRounds() {
	s.env.Config.Rounds = 2
	mode := s.start(models.ModeTwoPlayer)

	s.playRound(mode, true)
	s.Equal(models.PhaseCreation, mode.Phase())
	s.Equal("Round 2/2 - Player 2, create exactly 4 shapes for Player 1 to reproduce", s.presenter.lastStatus())

	s.playRound(mode, true)
	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Len(s.entries(), 2)
	s.Require().Len(s.presenter.gameOvers, 1)
	s.Contains(s.presenter.gameOvers[0], "It's a tie!")
}

func (s *ModesTestSuite) TestTwoPlayerWaitingAndReproduction() {
	mode := s.start(models.ModeTwoPlayer)
	reference := rectangles(4)
	s.draw(reference)

	mode.Submit(s.ctx)

	s.Equal(models.PhaseWaiting, mode.Phase())
	s.Equal(models.AllControls(false), mode.Controls())
	s.Equal("Memorizing shapes... (10 time units)", s.presenter.lastStatus())
	s.Equal(reference, s.env.Canvas.Shapes())
	s.Equal(10, s.scheduler.pending().units)

	mode.Submit(s.ctx)
	s.Equal("Please wait until the memorization phase ends", s.presenter.lastAlert())
	s.Equal(models.PhaseWaiting, mode.Phase())

	s.Require().True(s.scheduler.fire())
	s.Equal(models.PhaseReproduction, mode.Phase())
	s.Zero(s.env.Canvas.Len())
	s.Equal(models.AllControls(true), mode.Controls())
	s.Equal("Player 2, reproduce the shapes!", s.presenter.lastStatus())

	s.draw(reference)
	mode.Submit(s.ctx)

	s.Equal([]string{"Round 1 - Player 2: 100/100"}, s.presenter.scores)
	s.Equal(models.PhaseCreation, mode.Phase())
	s.Equal(2, mode.Round())
	s.Zero(s.env.Canvas.Len())
	s.Equal("Round 2/10 - Player 2, create exactly 4 shapes for Player 1 to reproduce", s.presenter.lastStatus())

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal(models.PlayerTwo, entries[0].PlayerID)
}

func (s *ModesTestSuite) TestTwoPlayerAlwaysScoresSimilarity() {
	s.env.Strategy = scoring.Precision{}
	mode := s.start(models.ModeTwoPlayer)
	reference := circles(4)
	s.draw(reference)
	mode.Submit(s.ctx)
	s.Require().True(s.scheduler.fire())

	s.draw(reference)
	mode.Submit(s.ctx)

	// precision would rate an exact circle 100
	s.Equal([]string{"Round 1 - Player 2: 85/100"}, s.presenter.scores)
}

// playRound runs one full two-player round; the guesser reproduces the
// reference exactly when perfect is true and submits an empty canvas otherwise
func (s *ModesTestSuite) playRound(mode Mode, perfect bool) {
	reference := rectangles(4)
	s.draw(reference)
	mode.Submit(s.ctx)
	s.Require().True(s.scheduler.fire())
	if perfect {
		s.draw(reference)
	}
	mode.Submit(s.ctx)
}

func (s *ModesTestSuite) TestTwoPlayerWinner() {
	mode := s.start(models.ModeTwoPlayer)

	for round := 1; round <= 10; round++ {
		// player two guesses on odd rounds
		s.playRound(mode, round%2 == 1)
	}

	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Len(s.entries(), 10)
	s.Equal([]string{
		"Final results\n\nPlayer 1: 0.00 points\nPlayer 2: 100.00 points\n\nPlayer 2 wins the game!",
	}, s.presenter.gameOvers)
	s.Equal(models.AllControls(false), mode.Controls())
}

func (s *ModesTestSuite) TestTwoPlayerTie() {
	mode := s.start(models.ModeTwoPlayer)

	for round := 1; round <= 10; round++ {
		s.playRound(mode, true)
	}

	s.Require().Len(s.presenter.gameOvers, 1)
	s.Contains(s.presenter.gameOvers[0], "It's a tie!")
}

func (s *ModesTestSuite) TestTwoPlayerQuitDuringWaiting() {
	mode := s.start(models.ModeTwoPlayer)
	s.draw(rectangles(4))
	mode.Submit(s.ctx)
	timer := s.scheduler.pending()

	summary := mode.Quit(s.ctx)

	s.Contains(summary, "It's a tie!")
	s.True(timer.stopped)
	timer.fn()
	s.Equal(models.PhaseGameOver, mode.Phase())
}

func (s *ModesTestSuite) TestDuelSummary() {
	tests := []struct {
		name string
		one  float64
		two  float64
		want string
	}{
		{name: "player two wins", one: 70.0, two: 72.5, want: "Player 2 wins the game!"},
		{name: "player one wins", one: 80.25, two: 72.5, want: "Player 1 wins the game!"},
		{name: "tie", one: 72.5, two: 72.5, want: "It's a tie!"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			summary := duelSummary(
				&models.PlayerStats{PlayerID: models.PlayerOne, Average: tc.one},
				&models.PlayerStats{PlayerID: models.PlayerTwo, Average: tc.two},
			)
			s.Contains(summary, fmt.Sprintf("Player 1: %.2f points", tc.one))
			s.Contains(summary, fmt.Sprintf("Player 2: %.2f points", tc.two))
			s.Contains(summary, tc.want)
		})
	}
}

func (s *ModesTestSuite) TestRandomLevelDisablesEverything() {
	mode := s.start(models.ModeRandom)

	s.Equal(models.PhaseDisplaying, mode.Phase())
	s.Equal(1, mode.Round())
	s.Equal(5, s.env.Canvas.Len())
	s.Equal(models.AllControls(false), mode.Controls())
	s.False(mode.Controls().ShapeTools)
	s.Equal(9, s.scheduler.pending().units)
}

func (s *ModesTestSuite) TestRandomPrematureSubmit() {
	mode := s.start(models.ModeRandom)

	mode.Submit(s.ctx)

	s.Equal("Wait for the shapes to disappear before submitting!", s.presenter.lastAlert())
	s.Equal(1, mode.Round())
	s.Equal(models.PhaseDisplaying, mode.Phase())
	s.Empty(s.entries())
}

func (s *ModesTestSuite) TestRandomEmptySubmitKeepsAwaiting() {
	mode := s.start(models.ModeRandom)
	s.Require().True(s.scheduler.fire())

	mode.Submit(s.ctx)

	s.Equal(alertEmptyCanvas, s.presenter.lastAlert())
	s.True(mode.CanSubmit())
	s.Equal(models.PhaseAwaitingReproduction, mode.Phase())
	s.Equal(1, mode.Round())
}

func (s *ModesTestSuite) TestRandomLevels() {
	mode := s.start(models.ModeRandom)

	for level := 1; level <= 10; level++ {
		s.Require().Equal(level, mode.Round())
		s.Require().Equal(4+level, s.env.Canvas.Len())
		s.Require().Equal(max(2, 10-level), s.scheduler.pending().units)
		s.assertInsideCanvas(level, s.env.Canvas.Shapes())

		reference := s.env.Canvas.Shapes()
		s.Require().True(s.scheduler.fire())
		s.draw(reference)
		mode.Submit(s.ctx)

		want := scoring.Similarity{}.Evaluate(reference, reference)
		s.Equal(fmt.Sprintf("Round %d: %d/100", level, want), s.presenter.scores[level-1])
	}

	s.Equal(models.PhaseGameOver, mode.Phase())
	s.Equal(10, mode.Round())
	s.Len(s.entries(), 10)
	s.Require().Len(s.presenter.gameOvers, 1)
	s.Contains(s.presenter.gameOvers[0], "Your average: ")
}

func (s *ModesTestSuite) TestRandomShapesFitInsideMargin() {
	for seed := int64(1); seed <= 50; seed++ {
		env := *s.env
		env.Random = random.New(&random.Config{Seed: seed})
		mode := newRandom(&env)

		for _, level := range []int{1, 5, 10} {
			mode.level = level
			shapes := mode.generate()
			s.Require().Len(shapes, 4+level)
			s.assertInsideCanvas(level, shapes)
		}
	}
}

func (s *ModesTestSuite) assertInsideCanvas(level int, shapes []models.Shape) {
	span := max(20, 100-level*10)
	for _, shape := range shapes {
		if shape.IsCircle() {
			s.GreaterOrEqual(shape.Radius, 20)
			s.Less(shape.Radius, span+20)
			s.GreaterOrEqual(shape.X, 30)
			s.LessOrEqual(shape.X+2*shape.Radius, 670)
			s.GreaterOrEqual(shape.Y, 30)
			s.LessOrEqual(shape.Y+2*shape.Radius, 670)
			continue
		}
		s.GreaterOrEqual(shape.Width, 20)
		s.Less(shape.Width, span+20)
		s.GreaterOrEqual(shape.Height, 20)
		s.Less(shape.Height, span+20)
		s.GreaterOrEqual(shape.X, 30)
		s.LessOrEqual(shape.X+shape.Width, 670)
		s.GreaterOrEqual(shape.Y, 30)
		s.LessOrEqual(shape.Y+shape.Height, 670)
	}
}

func (s *ModesTestSuite) TestRecordFailureDoesNotStopGame() {
	mockLedger := ledgerMocks.NewMockRepository(s.mockCtrl)
	mockLedger.EXPECT().
		RecordScore(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))
	s.env.Ledger = mockLedger

	mode := s.start(models.ModeSolo)
	s.Require().True(s.scheduler.fire())
	s.draw(curriculum[0].shapes)
	mode.Submit(s.ctx)

	s.Equal(alertScoreNotSaved, s.presenter.lastAlert())
	s.Equal([]string{"Round 1: 90/100"}, s.presenter.scores)
	s.Equal(2, mode.Round())
}

func TestModesTestSuite(t *testing.T) {
	suite.Run(t, new(ModesTestSuite))
}
