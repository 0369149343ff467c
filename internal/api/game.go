package api

import (
	"net/http"                         // HTTP status codes
	"secret_santa/internal/domain"     // Importing domain models
	"secret_santa/internal/games"      // Game service
	"secret_santa/internal/middleware" // Authenticated user lookup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// HostGameResponse acknowledges a hosted game
type HostGameResponse struct {
	Message string `json:"message"` // Acknowledgment
	GameID  uint   `json:"gameId"`  // Stored game ID
}

// HostGameHandler validates and stores a game for the authenticated user
func HostGameHandler(svc *games.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := middleware.UserID(c) // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req domain.HostGameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// The payload names its host, it has to be the caller
		if req.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot host a game for another user"})
			return
		}
		game, err := svc.HostGame(c.Request.Context(), userID, req.FormattedGameData)
		if err != nil {
			writeError(c, err, "Failed to host game")
			return
		}
		// Log hosted game
		fields := logrus.Fields{
			"user_id":     userID,          // Host
			"game_id":     game.ID,         // Game ID
			"max_players": game.MaxPlayers, // Player cap
		}
		if user, ok := middleware.CurrentUser(c); ok {
			fields["username"] = user.Username // Host name
		}
		logrus.WithFields(fields).Info("Game hosted") // Log game creation
		c.JSON(http.StatusCreated, HostGameResponse{Message: games.HostedMessage, GameID: game.ID})
	}
}

// ListGamesHandler returns the games hosted by the authenticated user
func ListGamesHandler(svc *games.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := middleware.UserID(c) // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		hosted, err := svc.ListHostedGames(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err, "Failed to fetch games")
			return
		}
		c.JSON(http.StatusOK, gin.H{"games": hosted}) // Return hosted games
	}
}
