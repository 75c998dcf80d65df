package repositories

import (
	"context"
	"fmt"
	"log"
	"sort"

	"gorm.io/gorm"

	cm "rionido/internal/models/catalog_models"
	"rionido/internal/models/db_models"
)

// CatalogRepositoryInterface loads the full read-only catalog the planning
// engine works against.
type CatalogRepositoryInterface interface {
	LoadCatalog(ctx context.Context) (*cm.Catalog, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &catalogRepository{db: db}
}

// Migrate creates the catalog tables and seeds them from the built-in dataset
// when they are empty.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&db_models.Business{},
		&db_models.WineTrail{},
		&db_models.TrailStop{},
		&db_models.ShoppingDistrict{},
		&db_models.SignatureExperience{},
		&db_models.RouteTheme{},
	)
	if err != nil {
		return fmt.Errorf("catalog migration failed: %w", err)
	}

	var count int64
	if err := db.Model(&db_models.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("catalog tables empty, inserting seed dataset")
	return seedDatabase(db, SeedCatalog())
}

func seedDatabase(db *gorm.DB, catalog *cm.Catalog) error {
	return db.Transaction(func(tx *gorm.DB) error {
		insertItems := func(collection cm.Collection, items []cm.CatalogItem) error {
			for _, item := range items {
				row := db_models.Business{
					Name:            item.Name,
					Collection:      string(collection),
					Category:        string(item.Category),
					Description:     item.Description,
					Location:        item.Location,
					Address:         item.Address,
					Phone:           item.Phone,
					Hours:           item.Hours,
					Price:           item.Price,
					Rating:          item.Rating,
					Zone:            string(item.Zone),
					HasBreakfast:    item.HasBreakfast,
					IsGrazeFallback: item.IsGrazeFallback,
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
			return nil
		}

		if err := insertItems(cm.CollectionWineries, catalog.Wineries); err != nil {
			return err
		}
		if err := insertItems(cm.CollectionRestaurants, catalog.Restaurants); err != nil {
			return err
		}
		if err := insertItems(cm.CollectionActivities, catalog.Activities); err != nil {
			return err
		}
		if err := insertItems(cm.CollectionShops, catalog.Shops); err != nil {
			return err
		}

		for _, trail := range catalog.WineTrails {
			row := db_models.WineTrail{
				Name:           trail.Name,
				Description:    trail.Description,
				ExclusivePerks: trail.ExclusivePerks,
				Zone:           string(trail.Zone),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for i, stop := range trail.Wineries {
				stopRow := db_models.TrailStop{
					WineTrailID: row.ID,
					Position:    i,
					Name:        stop.Name,
					Blurb:       stop.Blurb,
				}
				if err := tx.Create(&stopRow).Error; err != nil {
					return err
				}
			}
		}

		for _, district := range catalog.ShoppingDistricts {
			row := db_models.ShoppingDistrict{
				Name:        district.Name,
				Description: district.Description,
				Highlights:  district.Highlights,
				Hours:       district.Hours,
				Address:     district.Address,
				Zone:        string(district.Zone),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, exp := range catalog.SignatureExperiences {
			row := db_models.SignatureExperience{
				ExperienceID: exp.ID,
				Name:         exp.Name,
				Tagline:      exp.Tagline,
				Description:  exp.Description,
				Duration:     exp.Duration,
				Price:        exp.Price,
				BestTime:     exp.BestTime,
				Rating:       exp.Rating,
				Includes:     exp.Includes,
				IsExclusive:  exp.IsExclusive,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, route := range catalog.RouteThemes {
			row := db_models.RouteTheme{
				Name:      route.Name,
				ThemeName: route.Theme.Name,
				ThemeIcon: route.Theme.Icon,
			}
			for _, z := range route.Zones {
				row.Zones = append(row.Zones, string(z))
			}
			if route.TrailPick != nil {
				row.TrailName = route.TrailPick.TrailName
				row.TrailTimeSlot = route.TrailPick.TimeSlot
			}
			if route.DistrictPick != nil {
				row.DistrictName = route.DistrictPick.DistrictName
				row.DistrictTimeSlot = route.DistrictPick.TimeSlot
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *catalogRepository) LoadCatalog(ctx context.Context) (*cm.Catalog, error) {
	catalog := &cm.Catalog{}

	var businesses []db_models.Business
	if err := r.db.WithContext(ctx).Order("name").Find(&businesses).Error; err != nil {
		return nil, err
	}
	for _, b := range businesses {
		item := cm.CatalogItem{
			Name:            b.Name,
			Category:        cm.Category(b.Category),
			Description:     b.Description,
			Location:        b.Location,
			Address:         b.Address,
			Phone:           b.Phone,
			Hours:           b.Hours,
			Price:           b.Price,
			Rating:          b.Rating,
			Zone:            cm.Zone(b.Zone),
			HasBreakfast:    b.HasBreakfast,
			IsGrazeFallback: b.IsGrazeFallback,
		}
		switch cm.Collection(b.Collection) {
		case cm.CollectionWineries:
			catalog.Wineries = append(catalog.Wineries, item)
		case cm.CollectionRestaurants:
			catalog.Restaurants = append(catalog.Restaurants, item)
		case cm.CollectionActivities:
			catalog.Activities = append(catalog.Activities, item)
		case cm.CollectionShops:
			catalog.Shops = append(catalog.Shops, item)
		default:
			return nil, fmt.Errorf("unknown catalog collection %q for %q", b.Collection, b.Name)
		}
	}

	var trails []db_models.WineTrail
	if err := r.db.WithContext(ctx).Preload("Stops").Order("name").Find(&trails).Error; err != nil {
		return nil, err
	}
	for _, t := range trails {
		trail := cm.WineTrail{
			Name:           t.Name,
			Description:    t.Description,
			ExclusivePerks: t.ExclusivePerks,
			Zone:           cm.Zone(t.Zone),
		}
		sort.Slice(t.Stops, func(i, j int) bool { return t.Stops[i].Position < t.Stops[j].Position })
		for _, s := range t.Stops {
			trail.Wineries = append(trail.Wineries, cm.TrailStop{Name: s.Name, Blurb: s.Blurb})
		}
		catalog.WineTrails = append(catalog.WineTrails, trail)
	}

	var districts []db_models.ShoppingDistrict
	if err := r.db.WithContext(ctx).Order("name").Find(&districts).Error; err != nil {
		return nil, err
	}
	for _, d := range districts {
		catalog.ShoppingDistricts = append(catalog.ShoppingDistricts, cm.ShoppingDistrict{
			Name:        d.Name,
			Description: d.Description,
			Highlights:  d.Highlights,
			Hours:       d.Hours,
			Address:     d.Address,
			Zone:        cm.Zone(d.Zone),
		})
	}

	var experiences []db_models.SignatureExperience
	if err := r.db.WithContext(ctx).Order("experience_id").Find(&experiences).Error; err != nil {
		return nil, err
	}
	for _, e := range experiences {
		catalog.SignatureExperiences = append(catalog.SignatureExperiences, cm.SignatureExperience{
			ID:          e.ExperienceID,
			Name:        e.Name,
			Tagline:     e.Tagline,
			Description: e.Description,
			Duration:    e.Duration,
			Price:       e.Price,
			BestTime:    e.BestTime,
			Rating:      e.Rating,
			Includes:    e.Includes,
			IsExclusive: e.IsExclusive,
		})
	}

	var routes []db_models.RouteTheme
	if err := r.db.WithContext(ctx).Order("created_at").Find(&routes).Error; err != nil {
		return nil, err
	}
	for _, rt := range routes {
		route := cm.RouteTheme{
			Name:  rt.Name,
			Theme: cm.DayTheme{Name: rt.ThemeName, Icon: rt.ThemeIcon},
		}
		for _, z := range rt.Zones {
			route.Zones = append(route.Zones, cm.Zone(z))
		}
		if rt.TrailName != "" {
			route.TrailPick = &cm.TrailRecommendation{TrailName: rt.TrailName, TimeSlot: rt.TrailTimeSlot}
		}
		if rt.DistrictName != "" {
			route.DistrictPick = &cm.DistrictRecommendation{DistrictName: rt.DistrictName, TimeSlot: rt.DistrictTimeSlot}
		}
		catalog.RouteThemes = append(catalog.RouteThemes, route)
	}

	return catalog, nil
}

// staticCatalogRepository serves the seed dataset without a database. Used when
// POSTGRES_URL is unset and throughout the planner tests.
type staticCatalogRepository struct{}

func NewStaticCatalogRepository() CatalogRepositoryInterface {
	return staticCatalogRepository{}
}

func (staticCatalogRepository) LoadCatalog(_ context.Context) (*cm.Catalog, error) {
	return SeedCatalog(), nil
}
