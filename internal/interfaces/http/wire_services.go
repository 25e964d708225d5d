package http

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cordwain/internal/application/review"
	specServices "cordwain/internal/application/specification/services"
	ticketServices "cordwain/internal/application/ticket/services"
	"cordwain/internal/infrastructure/auth"
	"cordwain/internal/infrastructure/email"
	"cordwain/internal/infrastructure/mediastore"
	"cordwain/internal/infrastructure/scheduler"
	"cordwain/internal/infrastructure/translation"
	"cordwain/internal/interfaces/http/middleware"
	"cordwain/internal/shared/services/markdown"
)

// initInfrastructure wires the external collaborators: Redis, object
// storage, the translation client, JWT auth, and email notifications.
func (c *Container) initInfrastructure() error {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	store, err := mediastore.NewMinioStore(&c.cfg.MediaStore)
	if err != nil {
		return fmt.Errorf("init media store: %w", err)
	}
	c.mediaStore = store

	cacheTTL := time.Duration(c.cfg.Translation.CacheTTLHours) * time.Hour
	c.translator = translation.NewCachedTranslator(
		translation.NewClient(&c.cfg.Translation),
		c.redis,
		cacheTTL,
	)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	c.notifier = email.NewSMTPNotifier(&c.cfg.Email, c.cfg.Server.BaseURL, c.cfg.Email.Recipients)

	return nil
}

// initReviewEngine wires the comment thread, the ticket registry, and the
// background refresh job. Requires use cases to be initialized first.
func (c *Container) initReviewEngine() error {
	c.thread = review.NewThread(c.translator, markdown.NewService(), c.log)

	ticketSvc := ticketServices.NewTicketService(
		c.ucs.createTicketUC,
		c.ucs.changeStatusUC,
		c.ucs.deleteTicketUC,
		c.ucs.addCommentUC,
		c.ucs.deleteCommentUC,
		c.ucs.listTicketsUC,
		c.log,
	)
	c.registry = review.NewTicketRegistry(ticketSvc, c.log)

	c.specSvc = specServices.NewSpecificationService(
		c.ucs.getSpecificationUC,
		c.ucs.uploadMediaUC,
		c.ucs.replaceMediaUC,
		c.ucs.deleteMediaUC,
		c.ucs.setMediaStatusUC,
		c.ucs.addAnnotationUC,
		c.ucs.deleteAnnotationUC,
		c.log,
	)
	c.sessions = review.NewSessionManager(c.specSvc, c.registry, c.log)

	mgr, err := scheduler.NewManager(c.log)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	refreshInterval := time.Duration(c.cfg.Review.RefreshIntervalSeconds) * time.Second
	if err := mgr.RegisterRegistryRefresh(c.registry, refreshInterval); err != nil {
		return fmt.Errorf("register registry refresh: %w", err)
	}
	c.schedulerManager = mgr

	return nil
}

