package wishlist

import (
	"context"
	"time"

	"secret_santa/internal/domain"
	"secret_santa/internal/store"
	"secret_santa/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CreatedMessage acknowledges a stored wish
const CreatedMessage = "Wishlist created successfully."

// Ack is the acknowledgment of a write. It carries no row identifier.
type Ack struct {
	Message string `json:"message"`
}

// Service translates wishlist requests into gateway calls. It keeps no state
// of its own beyond an optional read cache.
type Service struct {
	gw       *store.Gateway
	rdb      *redis.Client
	cacheTTL time.Duration
}

// NewService creates a wishlist service. rdb may be nil to disable caching.
func NewService(gw *store.Gateway, rdb *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{gw: gw, rdb: rdb, cacheTTL: cacheTTL}
}

// GetUserWishlist returns the user's wishlist rows. A user with no items gets
// a single entry whose fields are nil, see domain.WishlistEntry.IsEmpty.
func (s *Service) GetUserWishlist(ctx context.Context, userID uint) ([]domain.WishlistEntry, error) {
	key := utils.WishlistCacheKey(userID)
	var cached []domain.WishlistEntry
	found, err := utils.GetCache(ctx, s.rdb, key, &cached)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Wishlist cache read failed")
	}
	if found {
		return cached, nil
	}

	entries, err := s.gw.UserWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := utils.SetCache(ctx, s.rdb, key, entries, s.cacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Wishlist cache write failed")
	}
	return entries, nil
}

// CreateUserWishlist inserts one wish for the user in the given game. Calling
// it twice with the same arguments stores two rows.
func (s *Service) CreateUserWishlist(ctx context.Context, userID uint, wish domain.Wish, gameID uint) (Ack, error) {
	if err := s.gw.InsertWish(ctx, userID, wish, gameID); err != nil {
		return Ack{}, err
	}
	if err := utils.DeleteCache(ctx, s.rdb, utils.WishlistCacheKey(userID)); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Warn("Wishlist cache invalidation failed")
	}
	return Ack{Message: CreatedMessage}, nil
}
