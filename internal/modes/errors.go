package modes

// ModeError is a sentinel error for mode construction
type ModeError string

func (e ModeError) Error() string {
	return string(e)
}

const (
	ErrNilEnv       ModeError = "env cannot be nil"
	ErrNilCanvas    ModeError = "canvas cannot be nil"
	ErrNilScheduler ModeError = "scheduler cannot be nil"
	ErrNilLedger    ModeError = "ledger cannot be nil"
	ErrNilPresenter ModeError = "presenter cannot be nil"
	ErrNilClock     ModeError = "clock cannot be nil"
	ErrNilRandom    ModeError = "random source cannot be nil"
	ErrUnknownMode  ModeError = "unknown game mode"
)
