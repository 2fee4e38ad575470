package game

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/gatherbot/gatherbot/internal/common/clock/mocks"
	uuidMocks "github.com/gatherbot/gatherbot/internal/common/uuid/mocks"
	"github.com/gatherbot/gatherbot/internal/models"
	gameRepo "github.com/gatherbot/gatherbot/internal/repositories/game"
	gameMocks "github.com/gatherbot/gatherbot/internal/repositories/game/mocks"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
	serverMocks "github.com/gatherbot/gatherbot/internal/repositories/server/mocks"
	tagRepo "github.com/gatherbot/gatherbot/internal/repositories/tag"
	tagMocks "github.com/gatherbot/gatherbot/internal/repositories/tag/mocks"
	userRepo "github.com/gatherbot/gatherbot/internal/repositories/user"
	userMocks "github.com/gatherbot/gatherbot/internal/repositories/user/mocks"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
	gatewayMocks "github.com/gatherbot/gatherbot/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockServerRepo *serverMocks.MockRepository
	mockUserRepo   *userMocks.MockRepository
	mockTagRepo    *tagMocks.MockRepository
	mockGateway    *gatewayMocks.MockGateway
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	gameService    Service
	ctx            context.Context

	// Test data
	testTime      time.Time
	testGameID    string
	testGuildID   string
	testChannelID string
	testMessageID string
	testCreatorID string
	testJoinerID  string
	testInviteeID string

	// Reusable test fixtures
	testServer *models.Server
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockServerRepo = serverMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockTagRepo = tagMocks.NewMockRepository(s.mockCtrl)
	s.mockGateway = gatewayMocks.NewMockGateway(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testMessageID = "test-message-id"
	s.testCreatorID = "test-creator-id"
	s.testJoinerID = "test-joiner-id"
	s.testInviteeID = "test-invitee-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.testServer = &models.Server{
		GuildID:       s.testGuildID,
		Prefix:        models.DefaultPrefix,
		ExpireMinutes: 30,
	}

	svc, err := New(&Config{
		GameRepo:      s.mockGameRepo,
		ServerRepo:    s.mockServerRepo,
		UserRepo:      s.mockUserRepo,
		TagRepo:       s.mockTagRepo,
		Gateway:       s.mockGateway,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// pendingGame builds a pending game fixture with the creator as the only
// member and room for one more
func (s *GameServiceTestSuite) pendingGame() *models.Game {
	return &models.Game{
		ID:        s.testGameID,
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Size:      2,
		Status:    models.GameStatusPending,
		MessageID: s.testMessageID,
		Members: []*models.Member{
			{UserID: s.testCreatorID, UserName: "Creator"},
		},
		TagNames:  []string{"default"},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
		ExpiresAt: s.testTime.Add(30 * time.Minute),
	}
}

// expectNotWaiting stubs the pending-game lookup to report no claim
func (s *GameServiceTestSuite) expectNotWaiting(userID string) {
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: userID}).
		Return(nil, gameRepo.ErrGameNotFound)
}

// expectNameCached stubs the best-effort display name cache writes
func (s *GameServiceTestSuite) expectNameCached(userID string) {
	s.mockUserRepo.EXPECT().
		GetUser(s.ctx, &userRepo.GetUserInput{UserID: userID}).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUserRepo.EXPECT().
		SaveUser(s.ctx, gomock.Any()).
		Return(nil)
}

// expectPosted stubs a successful game post with its reactions
func (s *GameServiceTestSuite) expectPosted(gameID string) {
	s.mockGateway.EXPECT().
		SendPost(s.ctx, gomock.Any()).
		Return(&messaging.SendPostOutput{MessageID: s.testMessageID}, nil)
	s.mockGameRepo.EXPECT().
		SetGameMessage(s.ctx, &gameRepo.SetGameMessageInput{
			GameID:    gameID,
			MessageID: s.testMessageID,
		}).
		Return(nil)
	s.mockGateway.EXPECT().
		AddReaction(s.ctx, gomock.Any()).
		Return(nil).
		Times(2)
}

func (s *GameServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.Require().ErrorIs(err, ErrNilGameRepo)
}

func (s *GameServiceTestSuite) TestCreateGameRejectsTinySize() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Size:      1,
	})
	s.Require().ErrorIs(err, ErrInvalidSize)
}

func (s *GameServiceTestSuite) TestCreateGameRejectsTooManyInvites() {
	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Size:      2,
		Invites: []*Invite{
			{UserID: s.testInviteeID, UserName: "Invitee"},
		},
	})
	s.Require().ErrorIs(err, ErrTooManyInvites)
}

func (s *GameServiceTestSuite) TestCreateGameRejectsWaitingCreator() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testCreatorID}).
		Return(s.pendingGame(), nil)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Size:      4,
	})
	s.Require().ErrorIs(err, ErrAlreadyWaiting)
}

func (s *GameServiceTestSuite) TestCreateGameRejectsWaitingInvitee() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.expectNotWaiting(s.testCreatorID)
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testInviteeID}).
		Return(s.pendingGame(), nil)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		CreatorID: s.testCreatorID,
		Size:      4,
		Invites: []*Invite{
			{UserID: s.testInviteeID, UserName: "Invitee"},
		},
	})
	s.Require().ErrorIs(err, ErrInviteeAlreadyWaiting)
}

func (s *GameServiceTestSuite) TestCreateGamePostsImmediately() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.expectNotWaiting(s.testCreatorID)
	s.mockTagRepo.EXPECT().
		EnsureTags(s.ctx, &tagRepo.EnsureTagsInput{Names: []string{"default"}}).
		Return(&tagRepo.EnsureTagsOutput{Tags: []*models.Tag{{ID: "tag-id", Name: "default"}}}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			s.Equal(s.testGameID, input.Game.ID)
			s.Equal(models.GameStatusPending, input.Game.Status)
			s.Len(input.Game.Members, 1)
			s.Equal(s.testCreatorID, input.Game.Members[0].UserID)
			s.Equal(s.testTime.Add(30*time.Minute), input.Game.ExpiresAt)
			return nil
		})
	s.mockTagRepo.EXPECT().
		TagGame(s.ctx, &tagRepo.TagGameInput{
			GameID:   s.testGameID,
			TagNames: []string{"default"},
		}).
		Return(nil)
	s.expectNameCached(s.testCreatorID)
	s.expectPosted(s.testGameID)

	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		CreatorName: "Creator",
		Size:        4,
	})
	s.Require().NoError(err)
	s.True(out.Posted)
	s.Equal(s.testMessageID, out.Game.MessageID)
}

func (s *GameServiceTestSuite) TestCreateGameTearsDownSavedGameWhenTaggingFails() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.expectNotWaiting(s.testCreatorID)
	s.mockTagRepo.EXPECT().
		EnsureTags(s.ctx, &tagRepo.EnsureTagsInput{Names: []string{"default"}}).
		Return(&tagRepo.EnsureTagsOutput{Tags: []*models.Tag{{ID: "tag-id", Name: "default"}}}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		Return(nil)
	tagErr := errors.New("tag store unavailable")
	s.mockTagRepo.EXPECT().
		TagGame(s.ctx, &tagRepo.TagGameInput{
			GameID:   s.testGameID,
			TagNames: []string{"default"},
		}).
		Return(tagErr)

	// The saved game and the creator's pending-game reference are released
	s.mockTagRepo.EXPECT().
		UntagGame(s.ctx, &tagRepo.UntagGameInput{GameID: s.testGameID}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(nil)

	_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		CreatorName: "Creator",
		Size:        4,
	})
	s.Require().ErrorIs(err, tagErr)
}

func (s *GameServiceTestSuite) TestCreateGameWithInvitesStaysUnposted() {
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.expectNotWaiting(s.testCreatorID)
	s.expectNotWaiting(s.testInviteeID)
	s.mockTagRepo.EXPECT().
		EnsureTags(s.ctx, gomock.Any()).
		Return(&tagRepo.EnsureTagsOutput{}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)
	s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
	s.mockTagRepo.EXPECT().TagGame(s.ctx, gomock.Any()).Return(nil)
	s.expectNameCached(s.testCreatorID)
	s.expectNameCached(s.testInviteeID)

	// The invitee gets a DM instead of the game being posted
	s.mockGateway.EXPECT().
		SendDirectMessage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.SendDirectMessageInput) error {
			s.Equal(s.testInviteeID, input.UserID)
			return nil
		})

	out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		CreatorName: "Creator",
		Size:        4,
		Invites: []*Invite{
			{UserID: s.testInviteeID, UserName: "Invitee"},
		},
	})
	s.Require().NoError(err)
	s.False(out.Posted)
	s.Len(out.Game.Members, 2)
	s.True(out.Game.Members[1].Invited)
}

func (s *GameServiceTestSuite) TestConfirmInviteNotInvited() {
	s.expectNotWaiting(s.testInviteeID)

	_, err := s.gameService.ConfirmInvite(s.ctx, &ConfirmInviteInput{
		UserID: s.testInviteeID,
		Accept: true,
	})
	s.Require().ErrorIs(err, ErrNotInvited)
}

func (s *GameServiceTestSuite) TestConfirmInviteAlreadyResolved() {
	game := s.pendingGame()
	game.Members = append(game.Members, &models.Member{
		UserID: s.testInviteeID, UserName: "Invitee", Invited: true, InviteConfirmed: true,
	})
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testInviteeID}).
		Return(game, nil)

	_, err := s.gameService.ConfirmInvite(s.ctx, &ConfirmInviteInput{
		UserID: s.testInviteeID,
		Accept: true,
	})
	s.Require().ErrorIs(err, ErrInviteResolved)
}

func (s *GameServiceTestSuite) TestConfirmInviteAcceptPostsWhenRoundCompletes() {
	game := s.pendingGame()
	game.Size = 3
	game.MessageID = ""
	game.Members = append(game.Members, &models.Member{
		UserID: s.testInviteeID, UserName: "Invitee", Invited: true,
	})
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testInviteeID}).
		Return(game, nil)

	confirmed := s.pendingGame()
	confirmed.Size = 3
	confirmed.MessageID = ""
	confirmed.Members = append(confirmed.Members, &models.Member{
		UserID: s.testInviteeID, UserName: "Invitee", Invited: true, InviteConfirmed: true,
	})
	s.mockGameRepo.EXPECT().
		ConfirmMember(s.ctx, &gameRepo.ConfirmMemberInput{
			GameID: s.testGameID,
			UserID: s.testInviteeID,
			Now:    s.testTime,
		}).
		Return(confirmed, nil)

	s.expectPosted(s.testGameID)

	out, err := s.gameService.ConfirmInvite(s.ctx, &ConfirmInviteInput{
		UserID: s.testInviteeID,
		Accept: true,
	})
	s.Require().NoError(err)
	s.True(out.Posted)
	s.False(out.Removed)
}

func (s *GameServiceTestSuite) TestConfirmInviteDeclineTearsDownUnviableGame() {
	game := s.pendingGame()
	game.MessageID = ""
	game.Members = append(game.Members, &models.Member{
		UserID: s.testInviteeID, UserName: "Invitee", Invited: true,
	})
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testInviteeID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)

	shrunk := s.pendingGame()
	shrunk.MessageID = ""
	s.mockGameRepo.EXPECT().
		RemoveMember(s.ctx, &gameRepo.RemoveMemberInput{
			GameID:    s.testGameID,
			UserID:    s.testInviteeID,
			Now:       s.testTime,
			ExpiresAt: s.testTime.Add(30 * time.Minute),
		}).
		Return(&gameRepo.RemoveMemberOutput{Game: shrunk, Removed: true}, nil)

	// The initiator hears about the decline
	s.mockGateway.EXPECT().
		SendDirectMessage(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *messaging.SendDirectMessageInput) error {
			s.Equal(s.testCreatorID, input.UserID)
			return nil
		})

	// One member left: the game is torn down, never posted
	s.mockTagRepo.EXPECT().
		UntagGame(s.ctx, &tagRepo.UntagGameInput{GameID: s.testGameID}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(nil)

	out, err := s.gameService.ConfirmInvite(s.ctx, &ConfirmInviteInput{
		UserID: s.testInviteeID,
		Accept: false,
	})
	s.Require().NoError(err)
	s.True(out.Removed)
	s.True(out.Deleted)
	s.Nil(out.Game)
}

func (s *GameServiceTestSuite) TestApplySignalIgnoresUnknownMessage() {
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: "unknown-message"}).
		Return(nil, gameRepo.ErrGameNotFound)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: "unknown-message",
		UserID:    s.testJoinerID,
		Kind:      SignalJoin,
	})
	s.Require().NoError(err)
	s.False(out.Handled)
}

func (s *GameServiceTestSuite) TestApplySignalIgnoresStartedGame() {
	game := s.pendingGame()
	game.Status = models.GameStatusStarted
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		Kind:      SignalJoin,
	})
	s.Require().NoError(err)
	s.False(out.Handled)
	s.False(out.Joined)
	s.NotNil(out.Game)
}

func (s *GameServiceTestSuite) TestApplySignalJoinUpdatesPost() {
	game := s.pendingGame()
	game.Size = 3
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)

	joined := s.pendingGame()
	joined.Size = 3
	joined.Members = append(joined.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		AddMember(s.ctx, &gameRepo.AddMemberInput{
			GameID:    s.testGameID,
			UserID:    s.testJoinerID,
			UserName:  "Joiner",
			Now:       s.testTime,
			ExpiresAt: s.testTime.Add(30 * time.Minute),
		}).
		Return(&gameRepo.AddMemberOutput{Game: joined, Added: true}, nil)
	s.expectNameCached(s.testJoinerID)

	// Not full yet: the post is refreshed, nothing starts
	s.mockGateway.EXPECT().
		EditPost(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		UserName:  "Joiner",
		Kind:      SignalJoin,
	})
	s.Require().NoError(err)
	s.True(out.Handled)
	s.True(out.Joined)
	s.False(out.Started)
}

func (s *GameServiceTestSuite) TestApplySignalJoinFillsAndStartsGame() {
	game := s.pendingGame()
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)

	full := s.pendingGame()
	full.Members = append(full.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		AddMember(s.ctx, gomock.Any()).
		Return(&gameRepo.AddMemberOutput{Game: full, Added: true}, nil)
	s.expectNameCached(s.testJoinerID)

	// Every member is still reachable
	s.mockGateway.EXPECT().
		FetchUser(s.ctx, &messaging.FetchUserInput{UserID: s.testCreatorID}).
		Return(&messaging.FetchUserOutput{User: &messaging.User{ID: s.testCreatorID}}, nil)
	s.mockGateway.EXPECT().
		FetchUser(s.ctx, &messaging.FetchUserInput{UserID: s.testJoinerID}).
		Return(&messaging.FetchUserOutput{User: &messaging.User{ID: s.testJoinerID}}, nil)

	started := s.pendingGame()
	started.Status = models.GameStatusStarted
	started.Members = full.Members
	s.mockGameRepo.EXPECT().
		MarkStarted(s.ctx, &gameRepo.MarkStartedInput{
			GameID: s.testGameID,
			Now:    s.testTime,
		}).
		Return(started, nil)

	// Everyone gets the final summary, the post flips, reactions go away
	s.mockGateway.EXPECT().
		SendDirectPost(s.ctx, gomock.Any()).
		Return(nil).
		Times(2)
	s.mockGateway.EXPECT().
		EditPost(s.ctx, gomock.Any()).
		Return(nil)
	s.mockGateway.EXPECT().
		ClearReactions(s.ctx, &messaging.ClearReactionsInput{
			ChannelID: s.testChannelID,
			MessageID: s.testMessageID,
		}).
		Return(nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		UserName:  "Joiner",
		Kind:      SignalJoin,
	})
	s.Require().NoError(err)
	s.True(out.Joined)
	s.True(out.Started)
	s.Equal(models.GameStatusStarted, out.Game.Status)
}

func (s *GameServiceTestSuite) TestApplySignalDropsUnreachableMemberOnFill() {
	game := s.pendingGame()
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil).
		Times(2)

	full := s.pendingGame()
	full.Members = append(full.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		AddMember(s.ctx, gomock.Any()).
		Return(&gameRepo.AddMemberOutput{Game: full, Added: true}, nil)
	s.expectNameCached(s.testJoinerID)

	// The creator left the platform between joining and filling
	s.mockGateway.EXPECT().
		FetchUser(s.ctx, &messaging.FetchUserInput{UserID: s.testCreatorID}).
		Return(&messaging.FetchUserOutput{}, nil)
	s.mockGateway.EXPECT().
		FetchUser(s.ctx, &messaging.FetchUserInput{UserID: s.testJoinerID}).
		Return(&messaging.FetchUserOutput{User: &messaging.User{ID: s.testJoinerID}}, nil)

	shrunk := s.pendingGame()
	shrunk.Members = []*models.Member{
		{UserID: s.testJoinerID, UserName: "Joiner"},
	}
	s.mockGameRepo.EXPECT().
		RemoveMember(s.ctx, &gameRepo.RemoveMemberInput{
			GameID:    s.testGameID,
			UserID:    s.testCreatorID,
			Now:       s.testTime,
			ExpiresAt: s.testTime.Add(30 * time.Minute),
		}).
		Return(&gameRepo.RemoveMemberOutput{Game: shrunk, Removed: true}, nil)

	// The game stays pending with a refreshed post
	s.mockGateway.EXPECT().
		EditPost(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		UserName:  "Joiner",
		Kind:      SignalJoin,
	})
	s.Require().NoError(err)
	s.True(out.Joined)
	s.False(out.Started)
	s.Len(out.Game.Members, 1)
}

func (s *GameServiceTestSuite) TestApplySignalJoinConflictsAcrossGames() {
	game := s.pendingGame()
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGameRepo.EXPECT().
		AddMember(s.ctx, gomock.Any()).
		Return(nil, gameRepo.ErrAlreadyInGame)

	_, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		Kind:      SignalJoin,
	})
	s.Require().ErrorIs(err, ErrAlreadyWaiting)
}

func (s *GameServiceTestSuite) TestApplySignalJoinRejectsFullGame() {
	game := s.pendingGame()
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGameRepo.EXPECT().
		AddMember(s.ctx, gomock.Any()).
		Return(nil, gameRepo.ErrGameFull)

	_, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		Kind:      SignalJoin,
	})
	s.Require().ErrorIs(err, ErrGameFull)
}

func (s *GameServiceTestSuite) TestApplySignalLeaveUpdatesPost() {
	game := s.pendingGame()
	game.Members = append(game.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)

	shrunk := s.pendingGame()
	s.mockGameRepo.EXPECT().
		RemoveMember(s.ctx, &gameRepo.RemoveMemberInput{
			GameID:    s.testGameID,
			UserID:    s.testJoinerID,
			Now:       s.testTime,
			ExpiresAt: s.testTime.Add(30 * time.Minute),
		}).
		Return(&gameRepo.RemoveMemberOutput{Game: shrunk, Removed: true}, nil)
	s.mockGateway.EXPECT().
		EditPost(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    s.testJoinerID,
		Kind:      SignalLeave,
	})
	s.Require().NoError(err)
	s.True(out.Handled)
	s.True(out.Left)
}

func (s *GameServiceTestSuite) TestApplySignalLeaveByNonMemberIsNoOp() {
	game := s.pendingGame()
	s.mockGameRepo.EXPECT().
		GetGameByMessage(s.ctx, &gameRepo.GetGameByMessageInput{MessageID: s.testMessageID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGameRepo.EXPECT().
		RemoveMember(s.ctx, gomock.Any()).
		Return(&gameRepo.RemoveMemberOutput{Game: game}, nil)

	out, err := s.gameService.ApplySignal(s.ctx, &ApplySignalInput{
		MessageID: s.testMessageID,
		UserID:    "test-stranger-id",
		Kind:      SignalLeave,
	})
	s.Require().NoError(err)
	s.True(out.Handled)
	s.False(out.Left)
}

func (s *GameServiceTestSuite) TestLeavePendingNotWaiting() {
	s.expectNotWaiting(s.testJoinerID)

	_, err := s.gameService.LeavePending(s.ctx, &LeavePendingInput{
		UserID: s.testJoinerID,
	})
	s.Require().ErrorIs(err, ErrNotWaiting)
}

func (s *GameServiceTestSuite) TestLeavePendingRemovesAndRefreshesPost() {
	game := s.pendingGame()
	game.Members = append(game.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		GetGameByUser(s.ctx, &gameRepo.GetGameByUserInput{UserID: s.testJoinerID}).
		Return(game, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)

	shrunk := s.pendingGame()
	s.mockGameRepo.EXPECT().
		RemoveMember(s.ctx, &gameRepo.RemoveMemberInput{
			GameID:    s.testGameID,
			UserID:    s.testJoinerID,
			Now:       s.testTime,
			ExpiresAt: s.testTime.Add(30 * time.Minute),
		}).
		Return(&gameRepo.RemoveMemberOutput{Game: shrunk, Removed: true}, nil)

	// The leaver's join reaction comes off the post before it refreshes
	s.mockGateway.EXPECT().
		RemoveReaction(s.ctx, &messaging.RemoveReactionInput{
			ChannelID: s.testChannelID,
			MessageID: s.testMessageID,
			Emoji:     EmojiJoin,
			UserID:    s.testJoinerID,
		}).
		Return(nil)
	s.mockGateway.EXPECT().
		EditPost(s.ctx, gomock.Any()).
		Return(nil)

	out, err := s.gameService.LeavePending(s.ctx, &LeavePendingInput{
		UserID: s.testJoinerID,
	})
	s.Require().NoError(err)
	s.Len(out.Game.Members, 1)
}

func (s *GameServiceTestSuite) TestSweepExpiredReclaimsGames() {
	expired := s.pendingGame()
	expired.Members = append(expired.Members, &models.Member{
		UserID: s.testJoinerID, UserName: "Joiner",
	})
	s.mockGameRepo.EXPECT().
		GetExpiredGames(s.ctx, &gameRepo.GetExpiredGamesInput{Now: s.testTime}).
		Return(&gameRepo.GetExpiredGamesOutput{Games: []*models.Game{expired}}, nil)

	s.mockGateway.EXPECT().
		DeleteMessage(s.ctx, &messaging.DeleteMessageInput{
			ChannelID: s.testChannelID,
			MessageID: s.testMessageID,
		}).
		Return(nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGateway.EXPECT().
		SendDirectMessage(s.ctx, gomock.Any()).
		Return(nil).
		Times(2)
	s.mockTagRepo.EXPECT().
		UntagGame(s.ctx, &tagRepo.UntagGameInput{GameID: s.testGameID}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(nil)

	out, err := s.gameService.SweepExpired(s.ctx, &SweepExpiredInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Swept)
}

func (s *GameServiceTestSuite) TestSweepExpiredSkipsFailedDeletes() {
	expired := s.pendingGame()
	expired.MessageID = ""
	s.mockGameRepo.EXPECT().
		GetExpiredGames(s.ctx, &gameRepo.GetExpiredGamesInput{Now: s.testTime}).
		Return(&gameRepo.GetExpiredGamesOutput{Games: []*models.Game{expired}}, nil)
	s.mockServerRepo.EXPECT().
		EnsureServer(s.ctx, &serverRepo.EnsureServerInput{GuildID: s.testGuildID}).
		Return(s.testServer, nil)
	s.mockGateway.EXPECT().
		SendDirectMessage(s.ctx, gomock.Any()).
		Return(nil)
	s.mockTagRepo.EXPECT().
		UntagGame(s.ctx, &tagRepo.UntagGameInput{GameID: s.testGameID}).
		Return(nil)
	s.mockGameRepo.EXPECT().
		DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).
		Return(gameRepo.ErrGameNotFound)

	out, err := s.gameService.SweepExpired(s.ctx, &SweepExpiredInput{})
	s.Require().NoError(err)
	s.Equal(0, out.Swept)
}
