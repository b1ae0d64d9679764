package factory

import (
	"time"

	"github.com/mcoot/rummy500-go/internal/dependencies/mocks"
	"github.com/mcoot/rummy500-go/internal/dependencies/random"
	"github.com/mcoot/rummy500-go/internal/services/bot"
	"github.com/mcoot/rummy500-go/internal/storage/memory"
	"github.com/mcoot/rummy500-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls time; bot step delays fire immediately
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: mocked clock, a
// seeded random source for reproducible shuffles, and no bot delays
func NewTestApp(seed int64) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := random.NewSeeded(seed)
	botCfg := bot.Config{StepDelay: time.Millisecond}

	app := newWithDependencies(store, mockClock, rnd, botCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
