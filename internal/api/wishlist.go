package api

import (
	"net/http"                         // HTTP status codes
	"secret_santa/internal/domain"     // Importing domain models
	"secret_santa/internal/middleware" // Authenticated user lookup
	"secret_santa/internal/wishlist"   // Wishlist service
	"strconv"                          // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// CreateWishlistRequest represents a new wishlist entry
type CreateWishlistRequest struct {
	ProductName string `json:"productName" binding:"required"` // Product name
	ProductLink string `json:"productLink"`                    // Product link
	UserID      uint   `json:"userId" binding:"required"`      // Owning user
	GameID      uint   `json:"gameId" binding:"required"`      // Game the wish belongs to
}

// GetWishlistHandler returns the wishlist of the user in the path. Any
// signed-in player may read it, the giver needs the receiver's list.
func GetWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("userId"), 10, 64) // Parse user ID from path
		if err != nil || id == 0 {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		entries, err := svc.GetUserWishlist(c.Request.Context(), uint(id))
		if err != nil {
			writeError(c, err, "Failed to fetch wishlist")
			return
		}
		c.JSON(http.StatusOK, entries) // Return wishlist rows
	}
}

// CreateWishlistHandler stores one wish for the authenticated user
func CreateWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := middleware.UserID(c) // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateWishlistRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Users only write their own wishlist
		if req.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot edit another user's wishlist"})
			return
		}
		wish := domain.Wish{ProductName: req.ProductName, ProductLink: req.ProductLink}
		ack, err := svc.CreateUserWishlist(c.Request.Context(), req.UserID, wish, req.GameID)
		if err != nil {
			writeError(c, err, "Failed to create wishlist")
			return
		}
		// Log successful insert
		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID, // User ID
			"game_id": req.GameID, // Game ID
		}).Info("Wish added") // Log wish creation
		c.JSON(http.StatusCreated, ack) // Return acknowledgment
	}
}
