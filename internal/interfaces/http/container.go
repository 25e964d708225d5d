package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cordwain/internal/application/review"
	"cordwain/internal/infrastructure/auth"
	"cordwain/internal/infrastructure/config"
	"cordwain/internal/infrastructure/email"
	"cordwain/internal/infrastructure/mediastore"
	"cordwain/internal/infrastructure/scheduler"
	"cordwain/internal/infrastructure/translation"
	"cordwain/internal/interfaces/http/middleware"
	"cordwain/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers, and background services. It wires everything together and
// provides a Shutdown() method for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware

	// Auth infrastructure
	jwtSvc *auth.JWTService

	// Notification and storage collaborators
	notifier   *email.SMTPNotifier
	mediaStore *mediastore.MinioStore
	translator *translation.CachedTranslator

	// Review engine
	thread   *review.Thread
	registry *review.TicketRegistry
	specSvc  review.SpecificationService
	sessions *review.SessionManager

	// Background services
	schedulerManager *scheduler.Manager
}

// NewContainer creates a Container with all dependencies wired together.
// The error paths are limited to external collaborators (object storage,
// scheduler); everything else is plain struct construction.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, object storage, translation, auth
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Repositories and use cases
	c.initRepositories()
	c.initUseCases()

	// Section 3: Review engine - thread, registry, background refresh
	if err := c.initReviewEngine(); err != nil {
		return nil, err
	}

	// Section 4: Handlers and routes
	c.initHandlers()
	c.setupRoutes()

	return c, nil
}

// GetEngine returns the Gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Run starts the HTTP server.
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}

// Start launches background services. Call after NewContainer, before Run.
func (c *Container) Start(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.mediaStore.EnsureBucket(warmCtx); err != nil {
		c.log.Warnw("failed to ensure media bucket", "error", err)
	}

	// Warm the registry once so the first requests see merged state
	// instead of waiting out the first refresh interval.
	if err := c.registry.RefreshGlobal(warmCtx); err != nil {
		c.log.Warnw("initial registry refresh failed", "error", err)
	}

	c.schedulerManager.Start()
}

// Shutdown gracefully stops background services and closes connections.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Shutdown(); err != nil {
			c.log.Errorw("failed to shut down scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
