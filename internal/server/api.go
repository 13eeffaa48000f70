package server

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/focusdeck/internal/auth"
	"github.com/desertthunder/focusdeck/internal/repositories"
	"golang.org/x/time/rate"
)

// NewAPI assembles the full dashboard API router.
//
// Credential endpoints sit behind the rate limiter only; playlist and video
// endpoints additionally require a bearer token. The router captures its
// middleware stack at registration time, so the ordering below is load-bearing.
func NewAPI(db *sql.DB, issuer *auth.TokenIssuer, logger *log.Logger) *BasicRouter {
	users := repositories.NewUserRepository(db)
	playlists := repositories.NewPlaylistRepository(db)
	videos := repositories.NewVideoRepository(db)

	router := NewBasicRouter()
	router.Use(RequestLogger(logger))

	// 5 credential attempts per second with small bursts.
	limiter := rate.NewLimiter(rate.Limit(5), 10)
	authHandler := NewAuthHandler(users, issuer, logger)
	limited := RateLimit(limiter)(authHandler)
	for _, route := range authHandler.Routes() {
		router.Handle(route, limited)
	}

	router.Use(BearerAuth(issuer))
	router.Handler(NewPlaylistHandler(playlists, videos, logger))

	return router
}
