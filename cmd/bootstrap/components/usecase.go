package components

import (
	"context"
	"log/slog"
	"time"

	"homestay/internal/pkg/clock"
	"homestay/internal/pkg/config"
	"homestay/internal/usecase"
	"homestay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSessionStore,
		NewBookingSessions,
		usecase.NewBookingCommands,
		queries.NewBookingQueries,
	),
	fx.Invoke(startSessionSweeper),
)

func NewSessionStore(clk clock.Clock, cfg config.Config) *usecase.SessionStore {
	return usecase.NewSessionStore(clk, cfg.Session.TTL)
}

func NewBookingSessions(
	store *usecase.SessionStore,
	reader usecase.BookingContextReader,
	writer usecase.BookingWriter,
	clk clock.Clock,
	cfg config.Config,
) usecase.BookingSessions {
	return usecase.NewBookingSessions(store, reader, writer, clk, cfg.Checkout.BaseURL)
}

// startSessionSweeper evicts idle sessions in the background so the
// store does not grow without bound between requests.
func startSessionSweeper(lc fx.Lifecycle, store *usecase.SessionStore, cfg config.Config, logger *slog.Logger) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Session.SweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Info("swept expired booking sessions", "count", n)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
