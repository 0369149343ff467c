package api

import (
	"net/http"                    // HTTP status codes
	"secret_santa/internal/games" // Game validation errors
	"secret_santa/internal/store" // Data access errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// writeError maps a service error onto a status code and an {"error": msg}
// body. Data access errors keep the underlying message.
func writeError(c *gin.Context, err error, action string) {
	switch {
	case games.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()}) // Rule violation
	case store.IsDataAccess(err):
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route
			"error": err.Error(),  // Error message
		}).Error(action) // Log the failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(), // Route
			"error": err.Error(),  // Error message
		}).Error(action) // Log the failure
		c.JSON(http.StatusInternalServerError, gin.H{"error": action})
	}
}
