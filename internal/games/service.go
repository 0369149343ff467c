package games

import (
	"context"
	"errors"
	"time"

	"secret_santa/internal/clock"
	"secret_santa/internal/domain"
	"secret_santa/internal/store"
	"secret_santa/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// HostedMessage acknowledges a hosted game
const HostedMessage = "Game hosted successfully."

// ValidationError is a rejected game submission
type ValidationError struct {
	Rule *domain.RuleError
}

func (e *ValidationError) Error() string {
	return e.Rule.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Rule
}

// IsValidation reports whether err is a rejected submission
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Service stores hosted games after checking them against the game rules
type Service struct {
	gw       *store.Gateway
	clock    clock.Clock
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewService creates a game service. rdb may be nil to disable caching.
func NewService(gw *store.Gateway, clk clock.Clock, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{gw: gw, clock: clk, rdb: rdb, cacheTTL: cacheTTL}
}

// HostGame validates a submitted game and stores it under hostID. Drafts with
// missing or inconsistent fields never reach the store.
func (s *Service) HostGame(ctx context.Context, hostID uint, fg domain.FormattedGame) (*domain.Game, error) {
	draft := domain.DraftFromFormatted(fg)
	if err := draft.Validate(s.clock.Now()); err != nil {
		var rule *domain.RuleError
		if errors.As(err, &rule) {
			return nil, &ValidationError{Rule: rule}
		}
		return nil, err
	}

	game := &domain.Game{
		GameName:   draft.GameName,
		StartDate:  *draft.StartDate,
		EndDate:    *draft.EndDate,
		MaxPlayers: *draft.MaxPlayers,
		HostID:     hostID,
	}
	if err := s.gw.InsertGame(ctx, game); err != nil {
		return nil, err
	}
	if err := utils.DeleteCache(ctx, s.rdb, utils.HostedGamesCacheKey(hostID)); err != nil {
		logrus.WithFields(logrus.Fields{"host_id": hostID, "error": err.Error()}).Warn("Hosted games cache invalidation failed")
	}
	return game, nil
}

// ListHostedGames returns the games hosted by hostID
func (s *Service) ListHostedGames(ctx context.Context, hostID uint) ([]domain.Game, error) {
	key := utils.HostedGamesCacheKey(hostID)
	var cached []domain.Game
	found, err := utils.GetCache(ctx, s.rdb, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{"host_id": hostID, "error": err.Error()}).Warn("Hosted games cache read failed")
	}
	if found {
		return cached, nil
	}

	games, err := s.gw.GamesByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if err := utils.SetCache(ctx, s.rdb, key, games, s.cacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{"host_id": hostID, "error": err.Error()}).Warn("Hosted games cache write failed")
	}
	return games, nil
}
