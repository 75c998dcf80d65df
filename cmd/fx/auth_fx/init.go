package auth_fx

import (
	"go.uber.org/fx"

	"rionido/internal/services"
)

var Module = fx.Provide(
	services.NewAuthService)
