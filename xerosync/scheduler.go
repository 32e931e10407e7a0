package xerosync

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
)

// Scheduler drives one timer loop per enabled entity type. Timer faults are
// logged and the next tick proceeds; a broken remote never kills the process.
type Scheduler struct {
	engine   *Engine
	logger   *logrus.Logger
	cfg      config.XeroConfig
	entities []EntityConfig

	stopCh chan struct{}
	wg     sync.WaitGroup
}

func NewScheduler(engine *Engine, logger *logrus.Logger, cfg config.XeroConfig) *Scheduler {
	return &Scheduler{
		engine:   engine,
		logger:   logger,
		cfg:      cfg,
		entities: Entities(),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the per-entity loops. It returns immediately; the loops run
// until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	if !config.SyncTimersEnabled() {
		s.logger.Info("sync timers disabled, running on-demand only")
		return
	}
	for _, entity := range s.entities {
		if !config.SyncEntityEnabled(entity.Name) {
			s.logger.WithField("entity", entity.Name).Info("entity sync disabled")
			continue
		}
		s.wg.Add(1)
		go s.run(ctx, entity)
	}
}

// Stop halts all timer loops and waits for in-flight cycles to finish.
func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context, entity EntityConfig) {
	defer s.wg.Done()

	interval := s.cfg.EntityInterval(entity.Name)
	s.logger.WithFields(logrus.Fields{
		"entity":   entity.Name,
		"interval": interval.String(),
	}).Info("sync timer started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, entity)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, entity EntityConfig) {
	cycleCtx := utils.SetCorrelationIdInContext(ctx, uuid.New().String())

	if result, err := s.engine.SyncOnce(cycleCtx, entity); err != nil {
		config.LogError(s.logger, moduleName, "runOnce", "timer cycle failed: "+entity.Name, result, err)
	}
}
