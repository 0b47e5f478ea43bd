package discord

import (
	"context"
	"sync"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// ChannelMessenger is the part of the Discord session a channel presenter uses
type ChannelMessenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// ChannelPresenter renders one channel's game as Discord messages. It keeps a
// single status message and a single shapes message up to date; the shapes
// message is deleted whenever the canvas is cleared, which is how shapes are
// hidden from the players.
type ChannelPresenter struct {
	channelID string
	messenger ChannelMessenger
	messaging messaging.Service
	logger    zerolog.Logger

	mu              sync.Mutex
	mode            models.ModeKind
	status          string
	controls        models.Controls
	statusMessageID string
	shapesMessageID string
}

// NewChannelPresenter creates a presenter for a channel
func NewChannelPresenter(channelID string, messenger ChannelMessenger, messagingService messaging.Service, logger zerolog.Logger) *ChannelPresenter {
	return &ChannelPresenter{
		channelID: channelID,
		messenger: messenger,
		messaging: messagingService,
		logger:    logger.With().Str("channel_id", channelID).Logger(),
	}
}

// SetMode records the mode of the game being presented
func (p *ChannelPresenter) SetMode(mode models.ModeKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode

	// a new game gets fresh messages
	if p.shapesMessageID != "" {
		if err := p.messenger.ChannelMessageDelete(p.channelID, p.shapesMessageID); err != nil {
			p.logger.Error().Err(err).Msg("failed to delete previous shapes message")
		}
	}
	p.statusMessageID = ""
	p.shapesMessageID = ""
}

func (p *ChannelPresenter) StatusChanged(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = text
	p.refreshStatus()
}

func (p *ChannelPresenter) ControlsChanged(controls models.Controls) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.controls = controls
	if p.statusMessageID != "" {
		p.refreshStatus()
	}
}

func (p *ChannelPresenter) ShapesChanged(shapes []models.Shape) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(shapes) == 0 {
		if p.shapesMessageID == "" {
			return
		}
		if err := p.messenger.ChannelMessageDelete(p.channelID, p.shapesMessageID); err != nil {
			p.logger.Error().Err(err).Msg("failed to delete shapes message")
		}
		p.shapesMessageID = ""
		return
	}

	p.shapesMessageID = p.upsert(p.shapesMessageID, renderShapesEmbed(shapes))
}

func (p *ChannelPresenter) ScoreRecorded(text string) {
	comment := ""
	if score, ok := messaging.ScoreFromLine(text); ok {
		out, err := p.messaging.GetScoreMessage(context.Background(), &messaging.GetScoreMessageInput{Score: score})
		if err == nil {
			comment = out.Message
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.send(renderScoreEmbed(text, comment))
}

func (p *ChannelPresenter) Alert(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.send(renderAlertEmbed(text))
}

func (p *ChannelPresenter) GameOver(summary string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	comment := ""
	out, err := p.messaging.GetGameOverMessage(context.Background(), &messaging.GetGameOverMessageInput{
		Mode:    p.mode,
		Average: messaging.AverageFromSummary(summary),
		Tie:     messaging.IsTie(summary),
	})
	if err == nil {
		comment = out.Message
	}
	p.send(renderGameOverEmbed(summary, comment))
}

func (p *ChannelPresenter) refreshStatus() {
	p.statusMessageID = p.upsert(p.statusMessageID, renderStatusEmbed(p.status, p.controls))
}

// upsert edits messageID, or sends a new message when there is none.
// It returns the ID of the message now showing the embed.
func (p *ChannelPresenter) upsert(messageID string, embed *discordgo.MessageEmbed) string {
	if messageID != "" {
		embeds := []*discordgo.MessageEmbed{embed}
		_, err := p.messenger.ChannelMessageEditComplex(&discordgo.MessageEdit{
			Channel: p.channelID,
			ID:      messageID,
			Embeds:  &embeds,
		})
		if err == nil {
			return messageID
		}
		p.logger.Warn().Err(err).Str("message_id", messageID).Msg("failed to edit message, sending a new one")
	}
	return p.send(embed)
}

func (p *ChannelPresenter) send(embed *discordgo.MessageEmbed) string {
	msg, err := p.messenger.ChannelMessageSendComplex(p.channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		p.logger.Error().Err(err).Str("title", embed.Title).Msg("failed to send message")
		return ""
	}
	return msg.ID
}
