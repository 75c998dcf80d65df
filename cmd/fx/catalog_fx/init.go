package catalog_fx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"rionido/internal/repositories"
	"rionido/internal/services"
)

var Module = fx.Options(
	fx.Provide(provideCatalogRepository),
	fx.Provide(services.NewCatalogService),
)

func provideCatalogRepository(db *gorm.DB) repositories.CatalogRepositoryInterface {
	if db == nil {
		return repositories.NewStaticCatalogRepository()
	}

	if err := repositories.Migrate(db); err != nil {
		log.Fatalf("catalog migration failed: %v", err)
	}
	return repositories.NewCatalogRepository(db)
}
