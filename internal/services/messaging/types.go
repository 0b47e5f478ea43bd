package messaging

import (
	"github.com/KirkDiggler/recall/internal/models"
	"github.com/KirkDiggler/recall/internal/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names a user-facing failure
type ErrorType string

const (
	ErrorTypeNoSession       ErrorType = "no_session"
	ErrorTypeInvalidMode     ErrorType = "invalid_mode"
	ErrorTypeUnknownStrategy ErrorType = "unknown_strategy"
	ErrorTypeInvalidShape    ErrorType = "invalid_shape"
)

// GetGameStartedMessageInput contains parameters for a game started message
type GetGameStartedMessageInput struct {
	Mode models.ModeKind
}

// GetGameStartedMessageOutput contains the generated message
type GetGameStartedMessageOutput struct {
	Message string
}

// GetScoreMessageInput contains parameters for a score comment
type GetScoreMessageInput struct {
	// Score is the reproduction score in [0, 100]
	Score int

	// PreferredTone overrides the tone picked from the score band
	PreferredTone MessageTone
}

// GetScoreMessageOutput contains the generated message
type GetScoreMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput contains parameters for a final results comment
type GetGameOverMessageInput struct {
	Mode models.ModeKind

	// Average is the single-player average, or the winner's average
	Average float64

	// Tie is set when both players finished level
	Tie bool
}

// GetGameOverMessageOutput contains the generated message
type GetGameOverMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone of the message
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the generated message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Random picks among message variants; a time-seeded roller when nil
	Random random.Source
}
