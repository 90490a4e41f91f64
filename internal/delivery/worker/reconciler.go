package worker

import (
	"context"
	"log/slog"
	"time"

	"expitrack/config"
	"expitrack/internal/delivery"
	"expitrack/internal/usecase"

	"go.uber.org/fx"
)

// ReconcilerParams holds dependencies for the reminder reconciler.
type ReconcilerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.ExpiryUsecase
}

type reconciler struct {
	cfg      *config.Config
	logger   *slog.Logger
	expiryUC usecase.ExpiryUsecase
	stop     chan struct{}
}

// NewReconciler creates the periodic reconciler that re-derives the full
// reminder set, recovering anything a missed write or restart dropped.
func NewReconciler(params ReconcilerParams) (delivery.Delivery, error) {
	r := &reconciler{
		cfg:      params.Cfg,
		logger:   params.Logger,
		expiryUC: params.ExpiryUC,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: r.shutdown,
	})

	return r, nil
}

// Serve reconciles once at startup and then on every interval tick.
func (r *reconciler) Serve(ctx context.Context) error {
	interval := r.cfg.Notification.ReconcileInterval
	r.logger.Info("Starting reminder reconciler", slog.Duration("interval", interval))

	r.reconcile(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.stop:
			return nil
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *reconciler) reconcile(ctx context.Context) {
	start := time.Now()
	if err := r.expiryUC.ReconcileAll(ctx); err != nil {
		r.logger.ErrorContext(ctx, "reconciliation failed",
			slog.String("error", err.Error()),
		)

		return
	}

	r.logger.InfoContext(ctx, "reconciliation finished",
		slog.Duration("took", time.Since(start)),
	)
}

func (r *reconciler) shutdown(ctx context.Context) error {
	r.logger.Info("Shutting down reminder reconciler")
	close(r.stop)

	return nil
}
