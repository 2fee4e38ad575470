package tag

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestEnsureTagsCreates() {
	out, err := s.repo.EnsureTags(context.Background(), &EnsureTagsInput{
		Names: []string{"modern", "casual"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Tags, 2)
	s.Equal("modern", out.Tags[0].Name)
	s.Equal("casual", out.Tags[1].Name)
	s.NotEmpty(out.Tags[0].ID)
	s.NotEmpty(out.Tags[1].ID)
}

func (s *RedisRepositoryTestSuite) TestEnsureTagsIsStable() {
	first, err := s.repo.EnsureTags(context.Background(), &EnsureTagsInput{
		Names: []string{"modern"},
	})
	s.Require().NoError(err)

	second, err := s.repo.EnsureTags(context.Background(), &EnsureTagsInput{
		Names: []string{"modern"},
	})
	s.Require().NoError(err)

	// Ensuring the same name twice yields the same tag
	s.Equal(first.Tags[0].ID, second.Tags[0].ID)
}

func (s *RedisRepositoryTestSuite) TestTagAndGetGameTags() {
	_, err := s.repo.EnsureTags(context.Background(), &EnsureTagsInput{
		Names: []string{"modern", "casual"},
	})
	s.Require().NoError(err)

	err = s.repo.TagGame(context.Background(), &TagGameInput{
		GameID:   "test-game-id",
		TagNames: []string{"modern", "casual"},
	})
	s.Require().NoError(err)

	out, err := s.repo.GetGameTags(context.Background(), &GetGameTagsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Tags, 2)

	// Names come back sorted
	s.Equal("casual", out.Tags[0].Name)
	s.Equal("modern", out.Tags[1].Name)
}

func (s *RedisRepositoryTestSuite) TestGetGameTagsEmpty() {
	out, err := s.repo.GetGameTags(context.Background(), &GetGameTagsInput{
		GameID: "untagged-game-id",
	})
	s.Require().NoError(err)
	s.Empty(out.Tags)
}

func (s *RedisRepositoryTestSuite) TestUntagGame() {
	err := s.repo.TagGame(context.Background(), &TagGameInput{
		GameID:   "test-game-id",
		TagNames: []string{"modern"},
	})
	s.Require().NoError(err)

	err = s.repo.UntagGame(context.Background(), &UntagGameInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)

	out, err := s.repo.GetGameTags(context.Background(), &GetGameTagsInput{
		GameID: "test-game-id",
	})
	s.Require().NoError(err)
	s.Empty(out.Tags)
}
