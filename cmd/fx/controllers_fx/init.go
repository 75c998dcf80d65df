package controllers_fx

import (
	"go.uber.org/fx"

	"rionido/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAuthController))
