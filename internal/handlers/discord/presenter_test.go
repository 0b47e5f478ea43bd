package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// fakeMessenger stores channel messages in memory
type fakeMessenger struct {
	nextID   int
	messages map[string]*discordgo.MessageEmbed
	sent     []*discordgo.MessageEmbed
	edits    int
	deleted  []string
	sendErr  error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{messages: make(map[string]*discordgo.MessageEmbed)}
}

func (f *fakeMessenger) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.nextID++
	id := fmt.Sprintf("msg-%d", f.nextID)
	f.messages[id] = data.Embeds[0]
	f.sent = append(f.sent, data.Embeds[0])
	return &discordgo.Message{ID: id, ChannelID: channelID}, nil
}

func (f *fakeMessenger) ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if _, ok := f.messages[m.ID]; !ok {
		return nil, errors.New("unknown message")
	}
	f.edits++
	f.messages[m.ID] = (*m.Embeds)[0]
	return &discordgo.Message{ID: m.ID, ChannelID: m.Channel}, nil
}

func (f *fakeMessenger) ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error {
	delete(f.messages, messageID)
	f.deleted = append(f.deleted, messageID)
	return nil
}

type ChannelPresenterTestSuite struct {
	suite.Suite
	messenger *fakeMessenger
	presenter *ChannelPresenter
}

func (s *ChannelPresenterTestSuite) SetupTest() {
	s.messenger = newFakeMessenger()
	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Random: random.New(&random.Config{Seed: 9})})
	s.Require().NoError(err)
	s.presenter = NewChannelPresenter("test-channel-id", s.messenger, messagingService, zerolog.Nop())
	s.presenter.SetMode(models.ModeSolo)
}

func (s *ChannelPresenterTestSuite) TestStatusIsEditedInPlace() {
	s.presenter.StatusChanged("first")
	s.presenter.ControlsChanged(models.AllControls(true))
	s.presenter.StatusChanged("second")

	s.Len(s.messenger.sent, 1)
	s.Equal(2, s.messenger.edits)
	s.Require().Len(s.messenger.messages, 1)
	for _, embed := range s.messenger.messages {
		s.Equal("second", embed.Description)
		s.Equal("Available: draw, undo, redo, submit", embed.Footer.Text)
	}
}

func (s *ChannelPresenterTestSuite) TestShapesMessageIsDeletedOnClear() {
	s.presenter.ShapesChanged([]models.Shape{models.NewCircle(1, 2, 3)})
	s.presenter.ShapesChanged([]models.Shape{models.NewCircle(1, 2, 3), models.NewRectangle(4, 5, 6, 7)})

	s.Require().Len(s.messenger.messages, 1)
	for _, embed := range s.messenger.messages {
		s.Equal("Shapes on canvas (2)", embed.Title)
		s.Contains(embed.Description, "Rectangle(4, 5, 6x7)")
	}

	s.presenter.ShapesChanged(nil)

	s.Empty(s.messenger.messages)
	s.Len(s.messenger.deleted, 1)

	// nothing left to delete
	s.presenter.ShapesChanged(nil)
	s.Len(s.messenger.deleted, 1)
}

func (s *ChannelPresenterTestSuite) TestScoreAndGameOver() {
	s.presenter.ScoreRecorded("Round 3: 97/100")
	s.presenter.Alert("Wait!")
	s.presenter.GameOver("Final results\n\nYour average: 97.00 points")

	s.Require().Len(s.messenger.sent, 3)
	s.Equal("Round 3: 97/100", s.messenger.sent[0].Title)
	s.NotEmpty(s.messenger.sent[0].Description)
	s.Equal("Wait!", s.messenger.sent[1].Description)
	s.Equal("Game over", s.messenger.sent[2].Title)
	s.Contains(s.messenger.sent[2].Description, "Your average: 97.00 points")
}

func (s *ChannelPresenterTestSuite) TestNewGameDropsOldShapes() {
	s.presenter.ShapesChanged([]models.Shape{models.NewCircle(1, 2, 3)})

	s.presenter.SetMode(models.ModeRandom)

	s.Empty(s.messenger.messages)
}

func (s *ChannelPresenterTestSuite) TestSendFailureIsSwallowed() {
	s.messenger.sendErr = errors.New("discord down")

	s.presenter.StatusChanged("status")
	s.presenter.Alert("alert")

	s.Empty(s.messenger.messages)
}

func TestChannelPresenterTestSuite(t *testing.T) {
	suite.Run(t, new(ChannelPresenterTestSuite))
}
