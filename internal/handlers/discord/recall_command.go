package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/scoring"
	"github.com/KirkDiggler/recall/internal/services/game"
	"github.com/KirkDiggler/recall/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// Button IDs
const (
	ButtonQuitConfirm = "recall_quit_confirm"
	ButtonQuitCancel  = "recall_quit_cancel"
)

// RecallCommand handles the /recall command
type RecallCommand struct {
	BaseCommand
	games     *Games
	messaging messaging.Service
	logger    zerolog.Logger
}

func intOption(name, description string) *discordgo.ApplicationCommandOption {
	minValue := 0.0
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: description,
		Required:    true,
		MinValue:    &minValue,
	}
}

// NewRecallCommand creates a new recall command handler
func NewRecallCommand(games *Games, messagingService messaging.Service, logger zerolog.Logger) *RecallCommand {
	return &RecallCommand{
		BaseCommand: BaseCommand{
			Name:        "recall",
			Description: "Shape memorization game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new game in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "mode",
							Description: "Game mode",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Solo curriculum", Value: string(models.ModeSolo)},
								{Name: "Two players", Value: string(models.ModeTwoPlayer)},
								{Name: "Random timed", Value: string(models.ModeRandom)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "strategy",
							Description: "Scoring strategy for solo and random games",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Similarity", Value: scoring.NameSimilarity},
								{Name: "Precision", Value: scoring.NamePrecision},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "circle",
					Description: "Draw a circle",
					Options: []*discordgo.ApplicationCommandOption{
						intOption("x", "Left edge"),
						intOption("y", "Top edge"),
						intOption("radius", "Radius"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rectangle",
					Description: "Draw a rectangle",
					Options: []*discordgo.ApplicationCommandOption{
						intOption("x", "Left edge"),
						intOption("y", "Top edge"),
						intOption("width", "Width"),
						intOption("height", "Height"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Remove the last shape",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "redo",
					Description: "Restore the last removed shape",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "submit",
					Description: "Submit the canvas",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shapes",
					Description: "Show the game state and the shapes you have drawn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "quit",
					Description: "End the current game",
				},
			},
		},
		games:     games,
		messaging: messagingService,
		logger:    logger,
	}
}

// Handle processes a Discord interaction for the recall command
func (c *RecallCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	channelID := i.ChannelID
	sub := data.Options[0]

	if sub.Name == "start" {
		return c.handleStart(ctx, s, i, channelID, sub.Options)
	}

	cg, ok := c.games.get(channelID)
	if !ok {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeNoSession)
	}

	var err error
	switch sub.Name {
	case "circle", "rectangle":
		err = c.handleShape(ctx, s, i, cg, sub)
	case "undo":
		err = c.handleAction(s, i, cg.service.Undo(ctx), "Undone.")
	case "redo":
		err = c.handleAction(s, i, cg.service.Redo(ctx), "Redone.")
	case "submit":
		err = c.handleAction(s, i, cg.service.Submit(ctx), "Submitted!")
	case "shapes":
		err = c.handleShapes(ctx, s, i, cg)
	case "quit":
		err = c.handleQuit(ctx, s, i, cg)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleStart handles the start subcommand
func (c *RecallCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input, err := startInputFromOptions(options)
	if err != nil {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeInvalidMode)
	}

	cg, err := c.games.getOrCreate(channelID)
	if err != nil {
		c.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to create channel game")
		return RespondWithError(s, i, fmt.Sprintf("Failed to create game: %v", err))
	}

	cg.presenter.SetMode(input.Mode)
	if _, err := cg.service.StartMode(ctx, input); err != nil {
		switch {
		case errors.Is(err, game.ErrInvalidMode):
			return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeInvalidMode)
		case errors.Is(err, scoring.ErrUnknownStrategy):
			return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeUnknownStrategy)
		}
		c.logger.Error().Err(err).Str("channel_id", channelID).Msg("failed to start mode")
		return RespondWithError(s, i, fmt.Sprintf("Failed to start game: %v", err))
	}

	message := "Game started!"
	if out, err := c.messaging.GetGameStartedMessage(ctx, &messaging.GetGameStartedMessageInput{Mode: input.Mode}); err == nil {
		message = out.Message
	}
	return RespondWithEphemeralMessage(s, i, message)
}

// handleShape handles the circle and rectangle subcommands
func (c *RecallCommand) handleShape(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cg *channelGame, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	shape, err := shapeFromOption(sub)
	if err != nil {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeInvalidShape)
	}

	if err := cg.service.AddShape(ctx, &game.AddShapeInput{Shape: shape}); err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Drew %s.", shape))
}

func (c *RecallCommand) handleAction(s *discordgo.Session, i *discordgo.InteractionCreate, err error, done string) error {
	if err != nil {
		return c.respondWithServiceError(context.Background(), s, i, err)
	}
	return RespondWithEphemeralMessage(s, i, done)
}

// handleShapes shows the session state privately
func (c *RecallCommand) handleShapes(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cg *channelGame) error {
	state, err := cg.service.GetState(ctx)
	if err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}
	return RespondWithEphemeralEmbed(s, i, renderStateEmbed(state))
}

// handleQuit asks for confirmation before ending the game
func (c *RecallCommand) handleQuit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cg *channelGame) error {
	if _, err := cg.service.GetState(ctx); err != nil {
		return c.respondWithServiceError(ctx, s, i, err)
	}

	return RespondWithEphemeralButtons(s, i, "Do you want to quit the game?", []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Quit",
			Style:    discordgo.DangerButton,
			CustomID: ButtonQuitConfirm,
		},
		discordgo.Button{
			Label:    "Keep playing",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonQuitCancel,
		},
	})
}

// HandleQuitConfirm ends the channel's game once the player confirmed
func (c *RecallCommand) HandleQuitConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	cg, ok := c.games.get(i.ChannelID)
	if !ok {
		return UpdateWithMessage(s, i, "There is no game to quit.")
	}

	if _, err := cg.service.Quit(ctx); err != nil {
		if errors.Is(err, game.ErrNoActiveSession) {
			return UpdateWithMessage(s, i, "There is no game to quit.")
		}
		c.logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("failed to quit game")
		return UpdateWithMessage(s, i, fmt.Sprintf("Failed to quit: %v", err))
	}

	return UpdateWithMessage(s, i, "Game ended.")
}

// HandleQuitCancel dismisses the quit confirmation
func (c *RecallCommand) HandleQuitCancel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return UpdateWithMessage(s, i, "Carry on!")
}

func (c *RecallCommand) respondWithServiceError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if errors.Is(err, game.ErrNoActiveSession) {
		return c.respondWithErrorType(ctx, s, i, messaging.ErrorTypeNoSession)
	}
	c.logger.Error().Err(err).Str("channel_id", i.ChannelID).Msg("game service call failed")
	return RespondWithError(s, i, fmt.Sprintf("Error: %v", err))
}

func (c *RecallCommand) respondWithErrorType(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, errorType messaging.ErrorType) error {
	out, err := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		return RespondWithError(s, i, string(errorType))
	}
	return RespondWithError(s, i, out.Message)
}

// startInputFromOptions reads the start subcommand's options
func startInputFromOptions(options []*discordgo.ApplicationCommandInteractionDataOption) (*game.StartModeInput, error) {
	input := &game.StartModeInput{}
	for _, opt := range options {
		switch opt.Name {
		case "mode":
			kind, err := models.ParseModeKind(opt.StringValue())
			if err != nil {
				return nil, err
			}
			input.Mode = kind
		case "strategy":
			input.Strategy = opt.StringValue()
		}
	}
	if input.Mode == "" {
		return nil, game.ErrInvalidMode
	}
	return input, nil
}

// shapeFromOption builds a shape from a circle or rectangle subcommand
func shapeFromOption(sub *discordgo.ApplicationCommandInteractionDataOption) (models.Shape, error) {
	values := make(map[string]int, len(sub.Options))
	for _, opt := range sub.Options {
		values[opt.Name] = int(opt.IntValue())
	}

	var shape models.Shape
	switch sub.Name {
	case "circle":
		shape = models.NewCircle(values["x"], values["y"], values["radius"])
	case "rectangle":
		shape = models.NewRectangle(values["x"], values["y"], values["width"], values["height"])
	default:
		return models.Shape{}, fmt.Errorf("unknown shape %q", sub.Name)
	}

	if err := shape.Validate(); err != nil {
		return models.Shape{}, err
	}
	return shape, nil
}
