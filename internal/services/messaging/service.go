package messaging

import (
	"context"
	"errors"

	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
)

var errNilInput = errors.New("input cannot be nil")

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var source random.Source
	if config != nil {
		source = config.Random
	}
	if source == nil {
		source = random.New(nil)
	}

	return &service{
		rand: source,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetGameStartedMessage returns a message for when a game mode starts
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	var messages []string
	switch input.Mode {
	case models.ModeSolo:
		messages = []string{
			"Ten drawings, one memory. Let's see what sticks.",
			"Eyes open! The first drawing won't stay long.",
			"Curriculum loaded. Stare hard, draw harder.",
		}
	case models.ModeTwoPlayer:
		messages = []string{
			"Player 1 draws first. Make it memorable... or don't.",
			"Two players, one canvas, zero mercy.",
			"Grab a friend and a good memory. Game on!",
		}
	case models.ModeRandom:
		messages = []string{
			"The shapes are getting smaller and faster. Good luck!",
			"Random mode: the clock is not your friend.",
			"Ten levels of chaos. Blink and you'll miss it.",
		}
	default:
		messages = []string{
			"A new game begins!",
		}
	}

	return &GetGameStartedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetScoreMessage returns a comment on a single reproduction score
func (s *service) GetScoreMessage(ctx context.Context, input *GetScoreMessageInput) (*GetScoreMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	var messages []string
	var tone MessageTone

	switch {
	case input.Score >= 95:
		tone = ToneCelebration
		messages = []string{
			"Photographic memory! 📸",
			"Flawless. Are you sure you didn't peek?",
			"That's basically a carbon copy!",
		}
	case input.Score >= 80:
		tone = ToneEncouraging
		messages = []string{
			"Great recall! Just a few pixels off.",
			"Solid work, your memory is in shape.",
			"So close to perfect you can taste it.",
		}
	case input.Score >= 50:
		tone = ToneNeutral
		messages = []string{
			"Not bad, the gist is there.",
			"Halfway to greatness.",
			"The shapes are recognizable. Mostly.",
		}
	case input.Score > 0:
		tone = ToneSarcastic
		messages = []string{
			"Modern art, maybe?",
			"Well, you drew *something*.",
			"Did you memorize a different canvas?",
		}
	default:
		tone = ToneFunny
		messages = []string{
			"Zero. The canvas remembers nothing, and neither do you.",
			"Bold strategy, drawing the wrong shapes entirely.",
			"Goldfish-level recall. 🐟",
		}
	}

	if input.PreferredTone != "" {
		tone = input.PreferredTone
	}

	return &GetScoreMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a comment on the final results
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	if input.Mode == models.ModeTwoPlayer {
		if input.Tie {
			return &GetGameOverMessageOutput{
				Message: s.pick([]string{
					"Dead even! Rematch?",
					"A tie. Two equally impressive (or unimpressive) memories.",
				}),
				Tone: ToneNeutral,
			}, nil
		}
		return &GetGameOverMessageOutput{
			Message: s.pick([]string{
				"Victory! Somebody owes somebody a rematch.",
				"The better memory wins. This time.",
			}),
			Tone: ToneCelebration,
		}, nil
	}

	switch {
	case input.Average >= 80:
		return &GetGameOverMessageOutput{
			Message: s.pick([]string{
				"Outstanding memory. The shapes fear you.",
				"Elite recall! Frame that scoreboard.",
			}),
			Tone: ToneCelebration,
		}, nil
	case input.Average >= 50:
		return &GetGameOverMessageOutput{
			Message: s.pick([]string{
				"Respectable! Another round to push past 80?",
				"A solid run. Your memory earned a snack.",
			}),
			Tone: ToneEncouraging,
		}, nil
	default:
		return &GetGameOverMessageOutput{
			Message: s.pick([]string{
				"Practice makes perfect. Lots of practice.",
				"The shapes won this time.",
			}),
			Tone: ToneSarcastic,
		}, nil
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errNilInput
	}

	var messages []string
	var tone MessageTone

	// Set default tone if not specified
	if input.PreferredTone == "" {
		tone = ToneFunny
	} else {
		tone = input.PreferredTone
	}

	switch input.ErrorType {
	case ErrorTypeNoSession:
		messages = []string{
			"There's no game running here. Start one with `/recall start`!",
			"Nothing to play yet. Try `/recall start` first.",
		}
	case ErrorTypeInvalidMode:
		messages = []string{
			"That's not a mode I know. Pick solo, two_player or random.",
		}
	case ErrorTypeUnknownStrategy:
		messages = []string{
			"Unknown scoring strategy. Use similarity or precision.",
		}
	case ErrorTypeInvalidShape:
		messages = []string{
			"That shape doesn't add up. Sizes must be positive.",
			"Shapes need a real size. Try again!",
		}
	default:
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The canvas got confused. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
