package mocks

import (
	"time"

	"github.com/mcoot/rummy500-go/internal/dependencies/clock"
)

// MockClock is a mock implementation of Clock for testing
type MockClock struct {
	CurrentTime time.Time

	// AfterCalls records the durations passed to After
	AfterCalls []time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// After records the call and returns a channel that fires immediately,
// so code that sleeps between steps runs without delay in tests
func (c *MockClock) After(d time.Duration) <-chan time.Time {
	c.AfterCalls = append(c.AfterCalls, d)
	ch := make(chan time.Time, 1)
	ch <- c.CurrentTime.Add(d)
	return ch
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
