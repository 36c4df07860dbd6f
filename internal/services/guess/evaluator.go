// Package guess implements the two-pass, frequency-aware guess evaluator.
package guess

import (
	"strings"

	"github.com/roodle/server/internal/model"
)

// Normalize upper-cases a guess for comparison against the target
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// Evaluate compares a guess against a target of the same length and returns
// a per-letter verdict for each position.
//
// The two passes guarantee a letter is never marked present more times than
// it occurs unused in the target, and that exact-position matches always
// consume a letter instance before out-of-position matches do.
func Evaluate(guess, target string) ([]model.Verdict, error) {
	guessRunes := []rune(Normalize(guess))
	targetRunes := []rune(Normalize(target))

	if len(guessRunes) != len(targetRunes) {
		return nil, model.ErrLengthMismatch
	}

	result := make([]model.Verdict, len(targetRunes))
	remaining := make(map[rune]int, len(targetRunes))
	for _, r := range targetRunes {
		remaining[r]++
	}

	// Pass 1: exact matches consume their letter instance first
	for i, r := range guessRunes {
		if r == targetRunes[i] {
			result[i] = model.VerdictCorrect
			remaining[r]--
		}
	}

	// Pass 2: remaining positions are present while instances are left
	for i, r := range guessRunes {
		if result[i] == model.VerdictCorrect {
			continue
		}
		if remaining[r] > 0 {
			result[i] = model.VerdictPresent
			remaining[r]--
		} else {
			result[i] = model.VerdictAbsent
		}
	}

	return result, nil
}

// IsWin reports whether a verdict sequence is the all-correct result
func IsWin(result []model.Verdict) bool {
	for _, v := range result {
		if v != model.VerdictCorrect {
			return false
		}
	}
	return len(result) > 0
}
