// Package http wires the HTTP surface: repositories, use cases, handlers
// and routes.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	storyusecases "github.com/mado-app/mado/internal/application/story/usecases"
	userusecases "github.com/mado-app/mado/internal/application/user/usecases"
	"github.com/mado-app/mado/internal/infrastructure/auth"
	"github.com/mado-app/mado/internal/infrastructure/config"
	"github.com/mado-app/mado/internal/infrastructure/email"
	"github.com/mado-app/mado/internal/infrastructure/repository"
	"github.com/mado-app/mado/internal/interfaces/http/handlers"
	"github.com/mado-app/mado/internal/interfaces/http/middleware"
	"github.com/mado-app/mado/internal/interfaces/http/routes"
	"github.com/mado-app/mado/internal/shared/logger"
	"github.com/mado-app/mado/internal/shared/services/markdown"
)

// Router assembles the gin engine with all application routes.
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	storyHandler   *handlers.StoryHandler
	userHandler    *handlers.UserHandler
	authMiddleware *middleware.AuthMiddleware
	cfg            *config.Config
	logger         logger.Interface
}

// NewRouter wires the full dependency graph on top of the database handle.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	oauthRepo := repository.NewOAuthAccountRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	// Infrastructure services
	hasher := auth.NewBcryptHasher()
	jwtService := auth.NewJWTService(cfg.Auth.JWT)
	jwtAdapter := &jwtServiceAdapter{JWTService: jwtService}
	stateStore := auth.NewStateStore()
	googleClient := &oauthClientAdapter{provider: auth.NewGoogleProvider(cfg.OAuth.Google)}
	githubClient := &oauthClientAdapter{provider: auth.NewGitHubProvider(cfg.OAuth.GitHub)}
	mailer := email.NewSMTPSender(cfg.Email, log)
	markdownService := markdown.NewService()

	// Use cases
	loginUC := userusecases.NewLoginWithPasswordUseCase(userRepo, hasher, jwtAdapter, log)
	registerUC := userusecases.NewRegisterWithPasswordUseCase(userRepo, hasher, mailer, log)
	checkUsernameUC := userusecases.NewCheckUsernameUseCase(userRepo, log)
	initiateOAuthUC := userusecases.NewInitiateOAuthLoginUseCase(googleClient, githubClient, stateStore, log)
	oauthCallbackUC := userusecases.NewHandleOAuthCallbackUseCase(
		userRepo, oauthRepo, googleClient, githubClient, stateStore, jwtAdapter, mailer, log)
	refreshUC := userusecases.NewRefreshTokenUseCase(userRepo, jwtAdapter, jwtAdapter, log)
	getAccountUC := userusecases.NewGetAccountUseCase(userRepo, log)
	getProfileUC := userusecases.NewGetPublicProfileUseCase(userRepo, storyRepo, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)

	createStoryUC := storyusecases.NewCreateStoryUseCase(storyRepo, log)
	getStoryUC := storyusecases.NewGetStoryUseCase(storyRepo, chapterRepo, likeRepo, log)
	browseUC := storyusecases.NewBrowseStoriesUseCase(storyRepo, log)
	searchUC := storyusecases.NewSearchStoriesUseCase(storyRepo, log)
	toggleLikeUC := storyusecases.NewToggleLikeUseCase(storyRepo, likeRepo, log)
	createChapterUC := storyusecases.NewCreateChapterUseCase(storyRepo, chapterRepo, log)
	getChapterUC := storyusecases.NewGetChapterUseCase(storyRepo, chapterRepo, markdownService, log)
	listOwnStoriesUC := storyusecases.NewListOwnStoriesUseCase(storyRepo, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(
		loginUC, registerUC, checkUsernameUC, initiateOAuthUC, oauthCallbackUC,
		refreshUC, getAccountUC, cfg.Auth, cfg.Server.FrontendCallbackURL, log)
	storyHandler := handlers.NewStoryHandler(
		createStoryUC, getStoryUC, browseUC, searchUC, toggleLikeUC,
		createChapterUC, getChapterUC, listOwnStoriesUC, log)
	userHandler := handlers.NewUserHandler(getProfileUC, updateProfileUC, log)

	return &Router{
		authHandler:    authHandler,
		storyHandler:   storyHandler,
		userHandler:    userHandler,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		cfg:            cfg,
		logger:         log,
	}
}

// Setup builds the gin engine with middleware and routes.
func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.cfg.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery(r.logger))
	engine.Use(middleware.RequestLogger(r.logger))
	engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	routes.RegisterAuthRoutes(api, r.authHandler, r.authMiddleware)
	routes.RegisterStoryRoutes(api, r.storyHandler, r.authMiddleware)
	routes.RegisterUserRoutes(api, r.userHandler, r.authMiddleware)

	r.engine = engine
	return engine
}
