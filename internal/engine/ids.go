package engine

import (
	"strconv"
	"sync"
	"time"

	"github.com/contactmanager/contact-manager/internal/contact"
)

// Clock abstracts time.Now() so id generation is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator hands out ids for contacts created on this client.
// The mock API answers every POST with the same id, so the server value
// cannot be used as a key.
//
// Ids are millisecond timestamps. Two creations in the same millisecond
// still get distinct ids: the generator never returns a value lower than or
// equal to the previous one.
type IDGenerator struct {
	Clock Clock

	mu   sync.Mutex
	last int64
}

// NewIDGenerator returns a generator reading the given clock.
func NewIDGenerator(clock Clock) *IDGenerator {
	if clock == nil {
		clock = RealClock{}
	}
	return &IDGenerator{Clock: clock}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() contact.ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.Clock.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return contact.ID(strconv.FormatInt(n, 10))
}
