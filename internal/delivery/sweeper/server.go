// Package sweeper runs the periodic job that ends stale proximity events.
package sweeper

import (
	"context"
	"log/slog"
	"time"

	"crosspath/config"
	"crosspath/internal/delivery"
	"crosspath/internal/usecase"

	"go.uber.org/fx"
)

type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	ProximityUC usecase.ProximityUsecase
}

type sweeper struct {
	cfg         *config.Config
	logger      *slog.Logger
	proximityUC usecase.ProximityUsecase
	stop        chan struct{}
	done        chan struct{}
}

func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &sweeper{
		cfg:         params.Config,
		logger:      params.Logger,
		proximityUC: params.ProximityUC,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s, nil
}

// Serve runs the sweep loop until the context is cancelled or shutdown is requested.
func (s *sweeper) Serve(ctx context.Context) error {
	interval := s.cfg.Proximity.SweepInterval
	s.logger.Info("Starting stale event sweeper", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.cfg.Proximity.OperationTimeout)
	defer cancel()

	ended, err := s.proximityUC.EndStaleEvents(sweepCtx)
	if err != nil {
		s.logger.Error("Stale event sweep failed", slog.Any("error", err))

		return
	}

	if ended > 0 {
		s.logger.Info("Ended stale proximity events", slog.Int64("count", ended))
	}
}

func (s *sweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down stale event sweeper")
	close(s.stop)

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
