// Package worker contains the background deliveries that drive reminder
// processing.
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

// claimBatchSize bounds how many due jobs one poll claims.
const claimBatchSize = 100

// PollerParams holds dependencies for the delivery poller.
type PollerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.ExpiryUsecase
}

type poller struct {
	cfg      *config.Config
	logger   *slog.Logger
	expiryUC usecase.ExpiryUsecase
	stop     chan struct{}
}

// NewPoller creates the queue poller that delivers due reminder jobs.
func NewPoller(params PollerParams) (delivery.Delivery, error) {
	p := &poller{
		cfg:      params.Cfg,
		logger:   params.Logger,
		expiryUC: params.ExpiryUC,
		stop:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: p.shutdown,
	})

	return p, nil
}

// Serve polls the queue for due jobs until the context is cancelled.
func (p *poller) Serve(ctx context.Context) error {
	interval := p.cfg.Notification.PollInterval
	p.logger.Info("Starting delivery poller", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-p.stop:
			return nil
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *poller) poll(ctx context.Context) {
	processed, err := p.expiryUC.ProcessDueJobs(ctx, time.Now(), claimBatchSize)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to process due jobs",
			slog.String("error", err.Error()),
		)

		return
	}

	if processed > 0 {
		p.logger.InfoContext(ctx, "processed due jobs", slog.Int("count", processed))
	}
}

func (p *poller) shutdown(ctx context.Context) error {
	p.logger.Info("Shutting down delivery poller")
	close(p.stop)

	return nil
}
