package guild

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/gatherbot/gatherbot/internal/models"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
	serverMocks "github.com/gatherbot/gatherbot/internal/repositories/server/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuildServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockServerRepo *serverMocks.MockRepository
	guildService   Service
	ctx            context.Context

	testGuildID string
	testServer  *models.Server
}

func (s *GuildServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockServerRepo = serverMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testServer = &models.Server{
		GuildID:       s.testGuildID,
		Prefix:        models.DefaultPrefix,
		ExpireMinutes: models.DefaultExpireMinutes,
	}

	svc, err := New(&Config{
		ServerRepo: s.mockServerRepo,
	})
	s.Require().NoError(err)
	s.guildService = svc
}

func (s *GuildServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GuildServiceTestSuite))
}

func (s *GuildServiceTestSuite) expectEnsure() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
}

func (s *GuildServiceTestSuite) TestSetPrefix() {
	s.expectEnsure()
	s.mockServerRepo.EXPECT().
		SaveServer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *serverRepo.SaveServerInput) error {
			s.Equal("?", input.Server.Prefix)
			return nil
		})

	out, err := s.guildService.SetPrefix(s.ctx, &SetPrefixInput{
		GuildID: s.testGuildID,
		Prefix:  "?",
	})
	s.Require().NoError(err)
	s.Equal("?", out.Prefix)
}

func (s *GuildServiceTestSuite) TestSetPrefixTruncatesOverlongValue() {
	s.expectEnsure()
	s.mockServerRepo.EXPECT().SaveServer(s.ctx, gomock.Any()).Return(nil)

	out, err := s.guildService.SetPrefix(s.ctx, &SetPrefixInput{
		GuildID: s.testGuildID,
		Prefix:  "0123456789abcdef",
	})
	s.Require().NoError(err)
	s.Equal("0123456789", out.Prefix)
}

func (s *GuildServiceTestSuite) TestSetPrefixTruncatesByRunesNotBytes() {
	s.expectEnsure()
	s.mockServerRepo.EXPECT().SaveServer(s.ctx, gomock.Any()).Return(nil)

	// Twelve three-byte runes; a byte slice at 10 would split the fourth
	out, err := s.guildService.SetPrefix(s.ctx, &SetPrefixInput{
		GuildID: s.testGuildID,
		Prefix:  "→→→→→→→→→→→→",
	})
	s.Require().NoError(err)
	s.Equal("→→→→→→→→→→", out.Prefix)
	s.True(utf8.ValidString(out.Prefix))
}

func (s *GuildServiceTestSuite) TestSetExpiry() {
	s.expectEnsure()
	s.mockServerRepo.EXPECT().
		SaveServer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *serverRepo.SaveServerInput) error {
			s.Equal(45, input.Server.ExpireMinutes)
			return nil
		})

	err := s.guildService.SetExpiry(s.ctx, &SetExpiryInput{
		GuildID: s.testGuildID,
		Minutes: 45,
	})
	s.Require().NoError(err)
}

func (s *GuildServiceTestSuite) TestSetExpiryRejectsOutOfBounds() {
	err := s.guildService.SetExpiry(s.ctx, &SetExpiryInput{
		GuildID: s.testGuildID,
		Minutes: 0,
	})
	s.Require().ErrorIs(err, ErrInvalidExpiry)

	err = s.guildService.SetExpiry(s.ctx, &SetExpiryInput{
		GuildID: s.testGuildID,
		Minutes: 61,
	})
	s.Require().ErrorIs(err, ErrInvalidExpiry)
}

func (s *GuildServiceTestSuite) TestSetChannels() {
	s.expectEnsure()
	s.mockServerRepo.EXPECT().
		SaveServer(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *serverRepo.SaveServerInput) error {
			s.Equal([]string{"gaming", "lfg"}, input.Server.ChannelNames)
			return nil
		})

	err := s.guildService.SetChannels(s.ctx, &SetChannelsInput{
		GuildID:      s.testGuildID,
		ChannelNames: []string{"gaming", "lfg"},
	})
	s.Require().NoError(err)
}

func (s *GuildServiceTestSuite) TestGetConfig() {
	s.expectEnsure()

	out, err := s.guildService.GetConfig(s.ctx, &GetConfigInput{
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(s.testServer, out.Server)
}
