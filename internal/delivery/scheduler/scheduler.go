// Package scheduler runs the periodic directory jobs: subscription
// reconciliation and sitemap/page regeneration.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	"directory/internal/delivery"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/lifecycle"
	"directory/internal/errors"
	"directory/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Job names used in logs
const (
	JobReconcile = "reconcile"
	JobSitemap   = "sitemap"
)

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	Reconciliation usecase.ReconciliationUsecase
	Sitemap        usecase.SitemapUsecase
}

type scheduler struct {
	cfg            config.SchedulerConfig
	logger         *slog.Logger
	reconciliation usecase.ReconciliationUsecase
	sitemap        usecase.SitemapUsecase

	runCtx context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates the scheduler delivery. Serve blocks until the
// application stops.
func NewScheduler(params Params) delivery.Delivery {
	var cfg config.SchedulerConfig
	if params.Cfg.Scheduler != nil {
		cfg = *params.Cfg.Scheduler
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s := &scheduler{
		cfg:            cfg,
		logger:         params.Logger,
		reconciliation: params.Reconciliation,
		sitemap:        params.Sitemap,
		runCtx:         runCtx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func (s *scheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.cfg.Enabled {
		s.logger.Info("[Scheduler] Disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(s.runCtx, cancel)
	defer stopAfter()

	s.logger.Info("[Scheduler] Starting",
		slog.Duration("reconcile_interval", s.cfg.ReconcileInterval),
		slog.Duration("sitemap_interval", s.cfg.SitemapInterval),
		slog.Bool("run_on_start", s.cfg.RunOnStart),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.loop(gctx, JobReconcile, s.cfg.ReconcileInterval, s.reconcile)

		return nil
	})
	g.Go(func() error {
		s.loop(gctx, JobSitemap, s.cfg.SitemapInterval, s.regenerateSitemap)

		return nil
	})

	return errors.WithStack(g.Wait())
}

func (s *scheduler) stop(ctx context.Context) error {
	s.cancel()

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
		s.logger.Info("[Scheduler] Stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "scheduler did not stop in time")
	}
}

func (s *scheduler) loop(ctx context.Context, job string, interval time.Duration, run func(ctx context.Context) error) {
	if interval <= 0 {
		s.logger.Warn("[Scheduler] Job has no interval, not scheduled", slog.String("job", job))

		return
	}

	if s.cfg.RunOnStart {
		s.runJob(ctx, job, run)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runJob(ctx, job, run)
		}
	}
}

// runJob runs one job with its own request scope. Failures are logged and
// retried on the next tick.
func (s *scheduler) runJob(ctx context.Context, job string, run func(ctx context.Context) error) {
	if ctx.Err() != nil {
		return
	}

	ctx, logger := deliverycontext.WithRequestScope(ctx, s.logger, "", slog.String("job", job))
	start := time.Now()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("[Scheduler] Job interrupted by shutdown")

			return
		}
		logger.Error("[Scheduler] Job failed", slog.Any("error", err), slog.Duration("duration", time.Since(start)))

		return
	}

	logger.Info("[Scheduler] Job finished", slog.Duration("duration", time.Since(start)))
}

// reconcile runs both sweeps. A failing sweep does not prevent the other.
func (s *scheduler) reconcile(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	var errs []error
	for _, sweep := range []func(context.Context) (*usecase.SweepResult, error){
		s.reconciliation.DeactivateExpired,
		s.reconciliation.ReactivateRenewed,
	} {
		result, err := sweep(ctx)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		logger.Info("[Scheduler] Sweep finished",
			slog.String("sweep", result.Job),
			slog.Int("scanned", result.Scanned),
			slog.Int("transitioned", result.Transitioned),
			slog.Int("skipped", result.Skipped),
			slog.Int("failed", result.Failed),
		)
	}

	return errors.Join(errs...)
}

func (s *scheduler) regenerateSitemap(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	pages, err := s.sitemap.GenerateCityCategoryPages(ctx)
	if err != nil {
		return errors.Wrap(err, "generate city category pages")
	}

	entries, err := s.sitemap.GenerateSitemapEntries(ctx)
	if err != nil {
		return errors.Wrap(err, "generate sitemap entries")
	}

	logger.Info("[Scheduler] Sitemap regenerated", slog.Int("pages", pages), slog.Int("entries", entries))

	return nil
}
