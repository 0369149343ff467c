package api

import (
	"net/http"                         // HTTP status codes
	"secret_santa/internal/clock"      // Time source
	"secret_santa/internal/games"      // Game service
	"secret_santa/internal/middleware" // Custom package for middleware
	"secret_santa/internal/store"      // Persistence gateway
	"secret_santa/internal/wishlist"   // Wishlist service
	"time"                             // Preflight cache duration

	"github.com/gin-contrib/cors" // Cross-origin requests from the web front end
	"github.com/gin-gonic/gin"    // Gin web framework
)

// RouterConfig holds the dependencies of the HTTP API
type RouterConfig struct {
	Gateway     *store.Gateway    // Persistence gateway
	Wishlists   *wishlist.Service // Wishlist service
	Games       *games.Service    // Game service
	Clock       clock.Clock       // Time source for tokens
	JWTSecret   string            // JWT secret key
	CORSOrigins []string          // Allowed browser origins
}

// NewRouter wires every route onto a fresh gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()                      // Gin router instance
	r.Use(gin.Logger(), gin.Recovery()) // Request logging and panic recovery

	// Allow the single page front end to call the API
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := cfg.Gateway.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/user", RegisterHandler(cfg.Gateway))                         // Registration endpoint
	r.POST("/login", LoginHandler(cfg.Gateway, cfg.JWTSecret, cfg.Clock)) // Login endpoint

	// Protected routes
	authed := r.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.CurrentUserMiddleware(cfg.Gateway))
	authed.GET("/wishlist/:userId", GetWishlistHandler(cfg.Wishlists)) // Read a user's wishlist
	authed.POST("/wishlist", CreateWishlistHandler(cfg.Wishlists))     // Add a wish
	authed.POST("/games", HostGameHandler(cfg.Games))                  // Host a game
	authed.GET("/games", ListGamesHandler(cfg.Games))                  // Games hosted by the caller

	return r
}
