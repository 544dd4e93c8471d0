package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vrotondo/session-auth-service/internal/auth"
	"github.com/vrotondo/session-auth-service/internal/auth/handler"
	"github.com/vrotondo/session-auth-service/internal/config"
	"github.com/vrotondo/session-auth-service/internal/middleware"
	"github.com/vrotondo/session-auth-service/internal/session"
	"github.com/vrotondo/session-auth-service/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	userStore := user.NewSQLStore(infra.DB)
	sessionStore := session.NewRedisStore(infra.Redis.Client, cfg.SessionTTL)
	codec := session.NewCodec(cfg.SessionSecret)

	authService := auth.NewService(userStore, sessionStore)
	authMiddleware := middleware.NewAuthMiddleware(authService, codec)

	authHandler := handler.NewHandler(
		authService,
		codec,
		session.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		},
		cfg.SessionTTL,
	)

	// ----------------------------
	// Router
	// ----------------------------

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// ----------------------------
	// Routes
	// ----------------------------

	authHandler.RegisterRoutes(router, authMiddleware)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
