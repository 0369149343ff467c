package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"secret_santa/internal/db"
	"secret_santa/internal/domain"
)

type GatewaySuite struct {
	suite.Suite
	gw  *Gateway
	ctx context.Context
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewaySuite))
}

func (s *GatewaySuite) SetupTest() {
	conn, err := db.OpenMemory()
	s.Require().NoError(err)
	s.gw = New(conn)
	s.ctx = context.Background()
}

func (s *GatewaySuite) createUser(name string) *domain.User {
	u := &domain.User{Username: name, Password: "hash"}
	s.Require().NoError(s.gw.CreateUser(s.ctx, u))
	return u
}

func (s *GatewaySuite) TestUserWishlistEmptyYieldsNullRow() {
	u := s.createUser("alice")

	entries, err := s.gw.UserWishlist(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Nil(entries[0].WishName)
	s.Nil(entries[0].Link)
	s.True(entries[0].IsEmpty())
}

func (s *GatewaySuite) TestUserWishlistUnknownUserIsEmpty() {
	entries, err := s.gw.UserWishlist(s.ctx, 404)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *GatewaySuite) TestInsertWishThenRead() {
	u := s.createUser("alice")
	s.Require().NoError(s.gw.InsertWish(s.ctx, u.ID, domain.Wish{ProductName: "Socks", ProductLink: "https://example.com/socks"}, 7))

	entries, err := s.gw.UserWishlist(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Require().NotNil(entries[0].WishName)
	s.Equal("Socks", *entries[0].WishName)
	s.Equal("https://example.com/socks", *entries[0].Link)
	s.False(entries[0].IsEmpty())
}

func (s *GatewaySuite) TestInsertWishTwiceKeepsBothRows() {
	u := s.createUser("alice")
	wish := domain.Wish{ProductName: "Mug", ProductLink: "https://example.com/mug"}
	s.Require().NoError(s.gw.InsertWish(s.ctx, u.ID, wish, 3))
	s.Require().NoError(s.gw.InsertWish(s.ctx, u.ID, wish, 3))

	entries, err := s.gw.UserWishlist(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Len(entries, 2)
}

func (s *GatewaySuite) TestGamesByHostOrdersByStartDate() {
	u := s.createUser("host")
	early := &domain.Game{GameName: "Office", StartDate: time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2030, 12, 10, 0, 0, 0, 0, time.UTC), MaxPlayers: 5, HostID: u.ID}
	late := &domain.Game{GameName: "Family", StartDate: time.Date(2030, 12, 15, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2030, 12, 20, 0, 0, 0, 0, time.UTC), MaxPlayers: 8, HostID: u.ID}
	s.Require().NoError(s.gw.InsertGame(s.ctx, early))
	s.Require().NoError(s.gw.InsertGame(s.ctx, late))
	s.NotZero(early.ID)

	games, err := s.gw.GamesByHost(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal("Family", games[0].GameName)
	s.Equal("Office", games[1].GameName)
}

func (s *GatewaySuite) TestUserLookups() {
	u := s.createUser("bob")

	byName, err := s.gw.UserByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(u.ID, byName.ID)

	byID, err := s.gw.UserByID(s.ctx, u.ID)
	s.Require().NoError(err)
	s.Equal("bob", byID.Username)

	_, err = s.gw.UserByUsername(s.ctx, "nobody")
	s.True(IsNotFound(err))
	s.True(IsDataAccess(err))
}

func (s *GatewaySuite) TestDuplicateUsernameIsDataAccessError() {
	s.createUser("carol")
	err := s.gw.CreateUser(s.ctx, &domain.User{Username: "carol", Password: "x"})
	s.Require().Error(err)
	s.True(IsDataAccess(err))
	s.False(IsNotFound(err))
}

func (s *GatewaySuite) TestClosedStoreFailsWithDataAccessError() {
	sqlDB, err := s.gw.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	_, err = s.gw.UserWishlist(s.ctx, 1)
	s.Require().Error(err)
	s.True(IsDataAccess(err))
	s.Contains(err.Error(), "closed")

	err = s.gw.InsertWish(s.ctx, 1, domain.Wish{ProductName: "x"}, 1)
	s.True(IsDataAccess(err))

	s.True(IsDataAccess(s.gw.Ping(s.ctx)))
}
