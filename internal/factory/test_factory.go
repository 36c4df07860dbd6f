package factory

import (
	"time"

	"github.com/roodle/server/internal/dependencies/mocks"
	"github.com/roodle/server/internal/storage/memory"
	"github.com/roodle/server/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, DefaultFlushInterval, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestWords loads small fixed word lists for testing
func (t *TestApp) LoadTestWords() {
	t.WordsService.LoadLists(map[int][]string{
		4: {"ABLE", "BEAR", "COLD", "DUSK"},
		5: {"APPLE", "BREAD", "CRANE", "DRAFT"},
		6: {"BANANA", "CASTLE", "DRAGON"},
		7: {"CAPTAIN", "DOLPHIN"},
	})
}
