package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gatherbot/gatherbot/internal/models"
	gameRepo "github.com/gatherbot/gatherbot/internal/repositories/game"
	serverRepo "github.com/gatherbot/gatherbot/internal/repositories/server"
	tagRepo "github.com/gatherbot/gatherbot/internal/repositories/tag"
	"github.com/gatherbot/gatherbot/internal/services/messaging"
)

// SweepExpired reclaims every pending game whose deadline has passed.
// Cleanup is best-effort per game: the posted message is deleted, each
// member is told once that their game expired, tag associations are cleared,
// and the record is removed. One game's failure never blocks the rest, and
// nothing is retried within the same cycle.
func (s *service) SweepExpired(ctx context.Context, input *SweepExpiredInput) (*SweepExpiredOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	expired, err := s.gameRepo.GetExpiredGames(ctx, &gameRepo.GetExpiredGamesInput{
		Now: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query expired games: %w", err)
	}

	swept := 0
	for _, game := range expired.Games {
		if game.MessageID != "" {
			_ = s.gateway.DeleteMessage(ctx, &messaging.DeleteMessageInput{
				ChannelID: game.ChannelID,
				MessageID: game.MessageID,
			})
		}

		window := s.expireWindowFor(ctx, game.GuildID)
		for _, m := range game.Members {
			_ = s.gateway.SendDirectMessage(ctx, &messaging.SendDirectMessageInput{
				UserID: m.UserID,
				Content: fmt.Sprintf(
					"Your pending game expired after %d minutes of inactivity.",
					int(window.Minutes()),
				),
			})
		}

		if err := s.tagRepo.UntagGame(ctx, &tagRepo.UntagGameInput{GameID: game.ID}); err != nil {
			log.Printf("sweep: failed to untag game %s: %v", game.ID, err)
		}

		if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: game.ID}); err != nil {
			log.Printf("sweep: failed to delete game %s: %v", game.ID, err)
			continue
		}

		swept++
	}

	return &SweepExpiredOutput{Swept: swept}, nil
}

// expireWindowFor looks up a guild's expiry window, falling back to the
// default when the server record cannot be read
func (s *service) expireWindowFor(ctx context.Context, guildID string) time.Duration {
	server, err := s.serverRepo.EnsureServer(ctx, &serverRepo.EnsureServerInput{GuildID: guildID})
	if err != nil {
		log.Printf("sweep: failed to ensure server %s: %v", guildID, err)
		return time.Duration(models.DefaultExpireMinutes) * time.Minute
	}
	return expireWindow(server)
}
