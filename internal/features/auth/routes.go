package auth

import (
	"time"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/xyz-asif/voluntra/internal/config"
	"github.com/xyz-asif/voluntra/internal/features/users"
	"github.com/xyz-asif/voluntra/internal/pkg/ratelimit"
)

// RegisterRoutes wires the auth endpoints. The sign-in endpoint is rate
// limited per IP since it sits in front of the token exchange.
func RegisterRoutes(router *gin.RouterGroup, repo *users.Repository, cfg *config.Config, authMiddleware gin.HandlerFunc) {
	var firebaseClient *firebaseauth.Client
	if cfg.FirebaseServiceAccountPath != "" {
		client, err := InitFirebase(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("firebase unavailable, falling back to direct google validation")
		} else {
			firebaseClient = client
		}
	}

	handler := NewHandler(repo, cfg, firebaseClient)

	signInLimiter := ratelimit.New(10, time.Minute)
	signInLimiter.StartCleanup(10 * time.Minute)

	auth := router.Group("/auth")
	{
		auth.POST("/google", ratelimit.Middleware(signInLimiter), handler.GoogleSignIn)
		auth.GET("/me", authMiddleware, handler.Me)
	}
}
