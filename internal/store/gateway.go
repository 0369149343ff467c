package store

import (
	"context"
	"secret_santa/internal/domain"

	"gorm.io/gorm"
)

const (
	userWishlistQuery = `
		SELECT w.name AS wishName, w.link
		FROM users u
		LEFT JOIN wishList w ON u.id = w.userId
		WHERE u.id = ?`

	insertWishQuery = "INSERT INTO wishList (name, link, userId, gameId) VALUES (?, ?, ?, ?)"
)

// Gateway issues parameterized statements against the relational store.
// It holds no business rules; every failure comes back as *DataAccessError.
type Gateway struct {
	db *gorm.DB
}

// New wraps an open GORM connection
func New(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// UserWishlist returns one entry per wishlist row of the user. The left join
// yields a single all-nil entry for a user without items and no entries for
// an unknown user.
func (g *Gateway) UserWishlist(ctx context.Context, userID uint) ([]domain.WishlistEntry, error) {
	entries := []domain.WishlistEntry{}
	if err := g.db.WithContext(ctx).Raw(userWishlistQuery, userID).Scan(&entries).Error; err != nil {
		return nil, wrap(err)
	}
	return entries, nil
}

// InsertWish adds exactly one wishlist row
func (g *Gateway) InsertWish(ctx context.Context, userID uint, wish domain.Wish, gameID uint) error {
	return wrap(g.db.WithContext(ctx).Exec(insertWishQuery, wish.ProductName, wish.ProductLink, userID, gameID).Error)
}

// InsertGame stores a game and fills in its ID
func (g *Gateway) InsertGame(ctx context.Context, game *domain.Game) error {
	return wrap(g.db.WithContext(ctx).Create(game).Error)
}

// GamesByHost lists the games a user hosts, latest start first
func (g *Gateway) GamesByHost(ctx context.Context, hostID uint) ([]domain.Game, error) {
	games := []domain.Game{}
	err := g.db.WithContext(ctx).
		Where("hostId = ?", hostID).
		Order("startDate desc").
		Find(&games).Error
	if err != nil {
		return nil, wrap(err)
	}
	return games, nil
}

// CreateUser inserts a new user and fills in its ID
func (g *Gateway) CreateUser(ctx context.Context, user *domain.User) error {
	return wrap(g.db.WithContext(ctx).Create(user).Error)
}

// UserByUsername looks a user up by its lowercase username
func (g *Gateway) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := g.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, wrap(err)
	}
	return &user, nil
}

// UserByID looks a user up by primary key
func (g *Gateway) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := g.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &user, nil
}

// Ping checks that the store is reachable
func (g *Gateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return wrap(err)
	}
	return wrap(sqlDB.PingContext(ctx))
}
