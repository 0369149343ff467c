package middleware

import (
	"net/http"                     // HTTP status codes
	"secret_santa/internal/domain" // Importing domain models
	"secret_santa/internal/store"  // Persistence gateway

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// CurrentUserKey holds the *domain.User loaded by CurrentUserMiddleware
const CurrentUserKey = "currentUser"

// CurrentUserMiddleware loads the token's user from the database on each
// request, so tokens of deleted accounts stop working before they expire
func CurrentUserMiddleware(gw *store.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := UserID(c) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := gw.UserByID(c.Request.Context(), userID) // Fetch user from database
		if store.IsNotFound(err) {
			// Account is gone, the token no longer identifies anyone
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Failed to load current user") // Log lookup failure
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(CurrentUserKey, user) // Store user in context
		c.Next()                    // Proceed to the next handler
	}
}

// CurrentUser returns the user stored by CurrentUserMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(CurrentUserKey) // Get user from context
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}
