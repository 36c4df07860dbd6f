package guess

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/model"
)

type EvaluatorSuite struct {
	suite.Suite
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) evaluate(guess, target string) []model.Verdict {
	result, err := Evaluate(guess, target)
	s.Require().NoError(err)
	return result
}

func (s *EvaluatorSuite) TestAllCorrect() {
	result := s.evaluate("CRANE", "CRANE")

	for _, v := range result {
		s.Equal(model.VerdictCorrect, v)
	}
	s.True(IsWin(result))
}

func (s *EvaluatorSuite) TestAllAbsent() {
	result := s.evaluate("CRANE", "BOOTH")

	for _, v := range result {
		s.Equal(model.VerdictAbsent, v)
	}
	s.False(IsWin(result))
}

func (s *EvaluatorSuite) TestPresentLetters() {
	result := s.evaluate("NACRE", "CRANE")

	s.Equal([]model.Verdict{
		model.VerdictPresent, // N
		model.VerdictPresent, // A
		model.VerdictPresent, // C
		model.VerdictPresent, // R
		model.VerdictCorrect, // E
	}, result)
}

func (s *EvaluatorSuite) TestDuplicateGuessLetterSingleTarget() {
	// Target has one L; only the exact-position L may score
	result := s.evaluate("LLAMA", "BLAST")

	s.Equal([]model.Verdict{
		model.VerdictAbsent,  // first L: instance consumed by position 1
		model.VerdictCorrect, // L in place
		model.VerdictCorrect, // A in place
		model.VerdictAbsent,  // M
		model.VerdictAbsent,  // second A: target's single A already consumed
	}, result)
}

func (s *EvaluatorSuite) TestDuplicatePresentCappedByTargetCount() {
	// Guess has three Es, target THREE has two. The exact match at the end
	// consumes one instance, leaving one present mark for the earliest E.
	result := s.evaluate("EERIE", "THREE")

	s.Equal([]model.Verdict{
		model.VerdictPresent, // first E takes the last free instance
		model.VerdictAbsent,  // second E exceeds target count
		model.VerdictCorrect, // R in place
		model.VerdictAbsent,  // I
		model.VerdictCorrect, // E in place
	}, result)
}

func (s *EvaluatorSuite) TestExactMatchConsumesBeforePresent() {
	// Target ROBOT has two Os. Guess OOZES: position 1 O is exact, so only
	// one O instance remains for the position 0 present mark.
	result := s.evaluate("OOZES", "ROBOT")

	s.Equal(model.VerdictPresent, result[0])
	s.Equal(model.VerdictCorrect, result[1])
	s.Equal(model.VerdictAbsent, result[2])
	s.Equal(model.VerdictAbsent, result[3])
	s.Equal(model.VerdictAbsent, result[4])
}

func (s *EvaluatorSuite) TestCaseAndWhitespaceInsensitive() {
	result := s.evaluate("  crane ", "CRANE")
	s.True(IsWin(result))
}

func (s *EvaluatorSuite) TestLengthMismatch() {
	_, err := Evaluate("FOUR", "CRANE")
	s.ErrorIs(err, model.ErrLengthMismatch)
}

func (s *EvaluatorSuite) TestIsWinEmptyResult() {
	s.False(IsWin(nil))
	s.False(IsWin([]model.Verdict{}))
}

func (s *EvaluatorSuite) TestNormalize() {
	s.Equal("CRANE", Normalize(" crane\n"))
	s.Equal("CRANE", Normalize("CrAnE"))
}
