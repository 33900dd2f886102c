package components

import (
	"homestay/internal/infra/readstore"
	"homestay/internal/infra/repository"
	"homestay/internal/usecase"
	"homestay/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Property
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(usecase.BookingContextReader)),
		),
		// Booking write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingWriter)),
		),
		// Booking read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
)
