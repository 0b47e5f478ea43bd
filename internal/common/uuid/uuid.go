package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/recall/internal/common/uuid UUID

// UUID generates playthrough and session identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using the uuid package
type DefaultUUID struct{}

// New creates a random UUID generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// Sequence hands out deterministic identifiers; used for seeded runs so that
// two runs with the same seed log the same playthrough IDs.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence creates a generator whose IDs start at prefix-1
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewUUID returns prefix-1, prefix-2, ...
func (s *Sequence) NewUUID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.next.Add(1))
}
