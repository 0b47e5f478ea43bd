package canvas

import (
	"testing"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/stretchr/testify/suite"
)

type CanvasTestSuite struct {
	suite.Suite
	canvas  *Canvas
	changes [][]models.Shape

	circle models.Shape
	rect   models.Shape
	small  models.Shape
}

func (s *CanvasTestSuite) SetupTest() {
	s.changes = nil
	s.canvas = New(func(shapes []models.Shape) {
		s.changes = append(s.changes, shapes)
	})

	s.circle = models.NewCircle(100, 100, 20)
	s.rect = models.NewRectangle(10, 20, 30, 40)
	s.small = models.NewCircle(5, 5, 1)
}

func TestCanvasTestSuite(t *testing.T) {
	suite.Run(t, new(CanvasTestSuite))
}

func (s *CanvasTestSuite) TestAddAppendsInOrder() {
	s.canvas.Add(s.circle)
	s.canvas.Add(s.rect)

	s.Equal([]models.Shape{s.circle, s.rect}, s.canvas.Shapes())
	s.Equal(2, s.canvas.Len())
	s.Len(s.changes, 2)
}

func (s *CanvasTestSuite) TestUndoRedoRoundTrip() {
	s.canvas.Add(s.circle)
	s.canvas.Add(s.rect)
	s.canvas.Add(s.small)
	expected := s.canvas.Shapes()

	for i := 0; i < 5; i++ {
		s.True(s.canvas.Undo())
		s.True(s.canvas.Undo())
		s.Equal([]models.Shape{s.circle}, s.canvas.Shapes())

		s.True(s.canvas.Redo())
		s.True(s.canvas.Redo())
		s.Equal(expected, s.canvas.Shapes())
	}
}

func (s *CanvasTestSuite) TestRedoAfterFreshAddIsNoOp() {
	s.canvas.Add(s.circle)
	changesBefore := len(s.changes)

	s.False(s.canvas.Redo())
	s.Equal([]models.Shape{s.circle}, s.canvas.Shapes())
	s.Len(s.changes, changesBefore)
}

func (s *CanvasTestSuite) TestAddClearsRedo() {
	s.canvas.Add(s.circle)
	s.canvas.Add(s.rect)
	s.True(s.canvas.Undo())
	s.True(s.canvas.CanRedo())

	s.canvas.Add(s.small)

	s.False(s.canvas.CanRedo())
	s.False(s.canvas.Redo())
	s.Equal([]models.Shape{s.circle, s.small}, s.canvas.Shapes())
}

func (s *CanvasTestSuite) TestUndoOnEmptyIsNoOp() {
	s.False(s.canvas.Undo())
	s.False(s.canvas.Redo())
	s.Empty(s.canvas.Shapes())
	s.Empty(s.changes)
}

func (s *CanvasTestSuite) TestUndoRemovesLatestDuplicate() {
	s.canvas.Add(s.circle)
	s.canvas.Add(s.rect)
	s.canvas.Add(s.circle)

	s.True(s.canvas.Undo())

	s.Equal([]models.Shape{s.circle, s.rect}, s.canvas.Shapes())
}

func (s *CanvasTestSuite) TestClearCapturesAndEmpties() {
	s.canvas.Add(s.circle)
	s.canvas.Add(s.rect)
	s.True(s.canvas.Undo())

	captured := s.canvas.Clear()

	s.Equal([]models.Shape{s.circle}, captured)
	s.Empty(s.canvas.Shapes())
	s.False(s.canvas.CanUndo())
	s.False(s.canvas.CanRedo())
	s.Empty(s.changes[len(s.changes)-1])
}

func (s *CanvasTestSuite) TestClearedSnapshotIsIndependent() {
	s.canvas.Add(s.circle)
	captured := s.canvas.Clear()

	s.canvas.Add(s.rect)

	s.Equal([]models.Shape{s.circle}, captured)
}

func (s *CanvasTestSuite) TestShapesReturnsCopy() {
	s.canvas.Add(s.circle)
	shapes := s.canvas.Shapes()
	shapes[0] = s.rect

	s.Equal([]models.Shape{s.circle}, s.canvas.Shapes())
}

func (s *CanvasTestSuite) TestNilChangeFunc() {
	c := New(nil)
	c.Add(s.circle)
	s.True(c.Undo())
	s.True(c.Redo())
	s.Len(c.Clear(), 1)
}
