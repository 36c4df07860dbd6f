package words

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/roodle/server/internal/dependencies/mocks"
	"github.com/roodle/server/internal/model"
	"github.com/roodle/server/internal/storage/memory"
	"github.com/roodle/server/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
}

func (s *ServiceSuite) writeWordFile(lines string) string {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	err := os.WriteFile(path, []byte(lines), 0600)
	s.Require().NoError(err)
	return path
}

func (s *ServiceSuite) TestLoadFromFileIndexesByLength() {
	path := s.writeWordFile("able\napple\nbanana\ncaptain\n")

	err := s.service.LoadFromFile(context.Background(), path)
	s.Require().NoError(err)

	s.True(s.service.HasLength(4))
	s.True(s.service.HasLength(5))
	s.True(s.service.HasLength(6))
	s.True(s.service.HasLength(7))
}

func (s *ServiceSuite) TestLoadFromFileUppercasesAndFilters() {
	// Too-short and too-long words are dropped, blanks skipped
	path := s.writeWordFile("cat\napple\n\nelephants\n")

	err := s.service.LoadFromFile(context.Background(), path)
	s.Require().NoError(err)

	s.False(s.service.HasLength(3))
	s.True(s.service.HasLength(5))

	word, err := s.service.PickRandom(5)
	s.Require().NoError(err)
	s.Equal("APPLE", word)
}

func (s *ServiceSuite) TestLoadFromFileCachesToStorage() {
	path := s.writeWordFile("apple\nbread\n")

	err := s.service.LoadFromFile(context.Background(), path)
	s.Require().NoError(err)

	lists, err := s.storage.GetWordLists(context.Background())
	s.Require().NoError(err)
	s.Equal([]string{"APPLE", "BREAD"}, lists[5])
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveWordLists(context.Background(), map[int][]string{
		5: {"CRANE"},
	})
	s.Require().NoError(err)

	err = s.service.LoadFromStorage(context.Background())
	s.Require().NoError(err)

	word, err := s.service.PickRandom(5)
	s.Require().NoError(err)
	s.Equal("CRANE", word)
}

func (s *ServiceSuite) TestLoadFromStorageEmpty() {
	err := s.service.LoadFromStorage(context.Background())
	s.ErrorIs(err, model.ErrWordListsNotFound)
}

func (s *ServiceSuite) TestPickRandomUsesRandomIndex() {
	s.service.LoadLists(map[int][]string{
		5: {"APPLE", "BREAD", "CRANE"},
	})
	s.random.QueueIntn(2)

	word, err := s.service.PickRandom(5)
	s.Require().NoError(err)
	s.Equal("CRANE", word)
}

func (s *ServiceSuite) TestPickRandomNoWords() {
	_, err := s.service.PickRandom(6)
	s.ErrorIs(err, model.ErrNoWordsForLength)
}

func (s *ServiceSuite) TestLoadFromFileMissingFile() {
	err := s.service.LoadFromFile(context.Background(), "does-not-exist.txt")
	s.Error(err)
}
