package services

import (
	"context"
	"log"
	"sync"

	cm "rionido/internal/models/catalog_models"
	"rionido/internal/repositories"
)

type CatalogServiceInterface interface {
	// Catalog returns the loaded catalog, loading it on first use. The
	// returned value is read-only.
	Catalog(ctx context.Context) (*cm.Catalog, error)

	// Reload discards the cached catalog and reads it again from the
	// repository. Staff-only operation.
	Reload(ctx context.Context) error
}

type CatalogService struct {
	repo repositories.CatalogRepositoryInterface

	mu      sync.RWMutex
	catalog *cm.Catalog
}

func NewCatalogService(repo repositories.CatalogRepositoryInterface) CatalogServiceInterface {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Catalog(ctx context.Context) (*cm.Catalog, error) {
	s.mu.RLock()
	cached := s.catalog
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.catalog != nil {
		return s.catalog, nil
	}

	catalog, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.catalog = catalog
	return catalog, nil
}

func (s *CatalogService) Reload(ctx context.Context) error {
	catalog, err := s.repo.LoadCatalog(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	log.Printf("catalog reloaded: %d wineries, %d restaurants, %d activities, %d shops",
		len(catalog.Wineries), len(catalog.Restaurants), len(catalog.Activities), len(catalog.Shops))
	return nil
}
