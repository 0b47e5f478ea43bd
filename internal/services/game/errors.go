package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveSession    GameError = "no active game session"
	ErrInvalidMode        GameError = "invalid game mode"
	ErrNilInput           GameError = "input cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilPresenter       GameError = "presenter cannot be nil"
	ErrNilScoreLedgerRepo GameError = "score ledger repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrNilRandom          GameError = "random source cannot be nil"
	ErrInvalidTimeUnit    GameError = "time unit must be positive"
	ErrInvalidModeConfig  GameError = "mode settings must be positive"
)
