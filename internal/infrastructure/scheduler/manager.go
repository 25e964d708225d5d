// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"cordwain/internal/application/review"
	"cordwain/internal/shared/biztime"
	"cordwain/internal/shared/logger"
)

// Manager runs the background jobs of the review engine on a single
// gocron scheduler instance.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterRegistryRefresh schedules periodic re-fetches of the ticket
// registry's collections. Refreshes flow through the registry's merge
// path, so a refresh overlapping a mutation is always safe to apply.
func (m *Manager) RegisterRegistryRefresh(registry *review.TicketRegistry, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			m.refreshRegistry(ctx, registry)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("review", "registry-refresh"),
		gocron.WithName("registry-refresh"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered registry refresh job", "interval", interval)
	return nil
}

func (m *Manager) refreshRegistry(ctx context.Context, registry *review.TicketRegistry) {
	startTime := biztime.NowUTC()

	if err := registry.RefreshGlobal(ctx); err != nil {
		m.logger.Errorw("failed to refresh global ticket collection",
			"error", err,
			"duration", time.Since(startTime))
		return
	}

	for _, orderID := range registry.LoadedOrders() {
		if err := registry.RefreshOrder(ctx, orderID); err != nil {
			m.logger.Errorw("failed to refresh order ticket collection",
				"order_id", orderID,
				"error", err)
		}
	}

	m.logger.Debugw("registry refresh completed",
		"orders", len(registry.LoadedOrders()),
		"duration", time.Since(startTime))
}

// Start begins executing registered jobs. Idempotent.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Shutdown stops the scheduler and waits for running jobs to finish.
func (m *Manager) Shutdown() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		return err
	}

	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
