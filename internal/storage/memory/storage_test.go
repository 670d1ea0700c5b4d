package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newMatch(id model.MatchID, created time.Time) *model.Match {
	return &model.Match{
		ID:        id,
		State:     model.MatchStateSetup,
		Human:     model.NewPlayer("Ada", model.SideHuman),
		Automated: model.NewPlayer("Computer", model.SideAutomated),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := newMatch("abc12345", time.Now())

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "abc12345")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal("Ada", retrieved.Human.Name)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestSaveMatchOverwrites() {
	match := newMatch("abc12345", time.Now())
	_ = s.storage.SaveMatch(s.ctx, match)

	updated := newMatch("abc12345", time.Now())
	updated.State = model.MatchStateBattle
	_ = s.storage.SaveMatch(s.ctx, updated)

	retrieved, err := s.storage.GetMatch(s.ctx, "abc12345")
	s.Require().NoError(err)
	s.Equal(model.MatchStateBattle, retrieved.State)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, newMatch("abc12345", time.Now()))

	err := s.storage.DeleteMatch(s.ctx, "abc12345")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "abc12345")
	s.ErrorIs(err, model.ErrMatchNotFound)

	// Deleting again is a no-op
	s.NoError(s.storage.DeleteMatch(s.ctx, "abc12345"))
}

func (s *StorageSuite) TestMatchExists() {
	exists, err := s.storage.MatchExists(s.ctx, "abc12345")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveMatch(s.ctx, newMatch("abc12345", time.Now()))

	exists, err = s.storage.MatchExists(s.ctx, "abc12345")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestListMatchesOldestFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatch(s.ctx, newMatch("c", base.Add(time.Minute)))
	_ = s.storage.SaveMatch(s.ctx, newMatch("b", base))
	_ = s.storage.SaveMatch(s.ctx, newMatch("a", base))

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(matches, 3)
	s.Equal(model.MatchID("a"), matches[0].ID)
	s.Equal(model.MatchID("b"), matches[1].ID)
	s.Equal(model.MatchID("c"), matches[2].ID)
}

func (s *StorageSuite) TestListMatchesEmpty() {
	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestConcurrentAccess() {
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := model.MatchID(string(rune('a' + i%26)))
			_ = s.storage.SaveMatch(s.ctx, newMatch(id, time.Now()))
			_, _ = s.storage.MatchExists(s.ctx, id)
			_, _ = s.storage.ListMatches(s.ctx)
		}()
	}
	wg.Wait()

	matches, err := s.storage.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Len(matches, 26)
}
