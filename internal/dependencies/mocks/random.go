package mocks

import (
	"github.com/roodle/server/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing.
// Results are consumed from queues; empty queues yield zero values.
type MockRandom struct {
	IntnResults []int
	intnIndex   int

	CoinResults []bool
	coinIndex   int

	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Coin returns the next queued result, or false if none remaining
func (r *MockRandom) Coin() bool {
	if r.coinIndex >= len(r.CoinResults) {
		return false
	}
	result := r.CoinResults[r.coinIndex]
	r.coinIndex++
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueCoin adds values to the Coin result queue
func (r *MockRandom) QueueCoin(values ...bool) {
	r.CoinResults = append(r.CoinResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}
