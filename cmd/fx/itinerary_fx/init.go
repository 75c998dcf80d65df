package itinerary_fx

import (
	"time"

	"go.uber.org/fx"

	"rionido/internal/services"
	"rionido/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideRandomFactory),
	fx.Provide(provideItineraryService),
	fx.Provide(provideReplacementService),
)

// provideRandomFactory hands each generation run its own time-seeded source.
func provideRandomFactory() func() utils.RandomSource {
	return func() utils.RandomSource {
		return utils.NewSeededSource(time.Now().UnixNano())
	}
}

func provideItineraryService(catalog services.CatalogServiceInterface, newRng func() utils.RandomSource) services.ItineraryServiceInterface {
	return services.NewItineraryService(catalog, newRng)
}

func provideReplacementService(catalog services.CatalogServiceInterface, newRng func() utils.RandomSource) services.ReplacementServiceInterface {
	return services.NewReplacementService(catalog, newRng)
}
