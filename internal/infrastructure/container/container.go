package container

import (
	"context"
	"fmt"

	"github.com/faithbliss/backend/internal/config"
	"github.com/faithbliss/backend/internal/delivery/http"
	"github.com/faithbliss/backend/internal/delivery/http/handler"
	"github.com/faithbliss/backend/internal/delivery/http/middleware"
	"github.com/faithbliss/backend/internal/infrastructure/blob"
	"github.com/faithbliss/backend/internal/infrastructure/database"
	"github.com/faithbliss/backend/internal/infrastructure/server"
	"github.com/faithbliss/backend/internal/realtime"
	"github.com/faithbliss/backend/internal/repository/postgres"
	redisrepo "github.com/faithbliss/backend/internal/repository/redis"
	"github.com/faithbliss/backend/internal/usecase/auth"
	"github.com/faithbliss/backend/internal/usecase/community"
	"github.com/faithbliss/backend/internal/usecase/discover"
	"github.com/faithbliss/backend/internal/usecase/match"
	"github.com/faithbliss/backend/internal/usecase/message"
	"github.com/faithbliss/backend/internal/usecase/user"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server

	hub         *realtime.Hub
	broadcaster *realtime.Broadcaster
	listenStop  context.CancelFunc
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize photo storage
	photoStore, err := blob.NewFSStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	prefsRepo := postgres.NewPreferencesRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	communityRepo := postgres.NewCommunityRepository(db)
	presenceRepo := redisrepo.NewPresenceRepository(redisClient)

	// Initialize realtime hub and the cross-instance broadcaster
	hub := realtime.NewHub(presenceRepo, logger)
	broadcaster := realtime.NewBroadcaster(redisClient, hub, logger)
	listenCtx, listenStop := context.WithCancel(context.Background())
	go broadcaster.Listen(listenCtx)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		prefsRepo,
		sessionRepo,
		cfg.JWT.Secret,
		logger,
	)

	userUseCase := user.NewUserUseCase(
		userRepo,
		prefsRepo,
		sessionRepo,
		photoStore,
		logger,
	)

	discoverUseCase := discover.NewDiscoverUseCase(
		userRepo,
		prefsRepo,
		likeRepo,
		presenceRepo,
		logger,
	)

	matchUseCase := match.NewMatchUseCase(
		userRepo,
		likeRepo,
		matchRepo,
		broadcaster,
		logger,
	)

	messageUseCase := message.NewMessageUseCase(
		userRepo,
		matchRepo,
		messageRepo,
		broadcaster,
		logger,
	)

	communityUseCase := community.NewCommunityUseCase(
		communityRepo,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	userHandler := handler.NewUserHandler(userUseCase)
	discoverHandler := handler.NewDiscoverHandler(discoverUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	communityHandler := handler.NewCommunityHandler(communityUseCase)
	wsHandler := handler.NewWSHandler(hub, messageUseCase, logger)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase, userUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		userHandler,
		discoverHandler,
		matchHandler,
		messageHandler,
		communityHandler,
		wsHandler,
		authMiddleware,
		cfg.Storage.Path,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Redis:       redisClient,
		Server:      srv,
		hub:         hub,
		broadcaster: broadcaster,
		listenStop:  listenStop,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.listenStop != nil {
		c.listenStop()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
