package services

import (
	"context"

	cm "rionido/internal/models/catalog_models"
	"rionido/internal/models/request_models"
	"rionido/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, prefs request_models.Preferences) (*cm.Itinerary, error)
	PlanSignatureDay(ctx context.Context, experienceID string, prefs request_models.Preferences) (*cm.Itinerary, error)
}

type ItineraryService struct {
	catalogService CatalogServiceInterface
	newRng         func() utils.RandomSource
}

func NewItineraryService(catalogService CatalogServiceInterface, newRng func() utils.RandomSource) ItineraryServiceInterface {
	return &ItineraryService{
		catalogService: catalogService,
		newRng:         newRng,
	}
}

// GenerateItinerary runs the full multi-day planner: one route theme per day
// without repeats until exhausted, shared de-duplication and quota state
// across the trip.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, prefs request_models.Preferences) (*cm.Itinerary, error) {
	if prefs.Duration < 1 {
		return nil, utils.ErrInvalidPreferences
	}

	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	g := NewGenerationContext(catalog, s.newRng())
	wantsCoastal := prefs.Has(request_models.InterestCoastalAdventures)

	itinerary := &cm.Itinerary{GuestName: prefs.GuestName}

	for day := 1; day <= prefs.Duration; day++ {
		route := selectRoute(g, wantsCoastal)
		activities := planDay(g, prefs, route)

		itinerary.Days = append(itinerary.Days, cm.Day{
			Day:        day,
			RouteName:  route.Name,
			Theme:      deriveDayTheme(activities),
			Activities: activities,
		})
	}

	return itinerary, nil
}

// selectRoute picks an unused route theme, restricted to coastal themes when
// the guest asked for them and any remain. An exhausted set resets and every
// theme becomes eligible again.
func selectRoute(g *GenerationContext, wantsCoastal bool) cm.RouteTheme {
	var available []cm.RouteTheme
	for _, r := range g.Catalog.RouteThemes {
		if !g.UsedRoutes[r.Name] {
			available = append(available, r)
		}
	}

	if wantsCoastal {
		var coastal []cm.RouteTheme
		for _, r := range available {
			for _, z := range r.Zones {
				if z == cm.ZoneCoast {
					coastal = append(coastal, r)
					break
				}
			}
		}
		if len(coastal) > 0 {
			available = coastal
		}
	}

	if len(available) == 0 {
		g.UsedRoutes = make(map[string]bool)
		available = g.Catalog.RouteThemes
	}

	selected := available[g.Rng.Intn(len(available))]
	g.UsedRoutes[selected.Name] = true
	return selected
}

// Signature-day display slots differ from the standard planner.
const (
	slotSignatureMorning = "10:00 AM - 11:30 AM"
	slotSignatureDefault = "12:00 PM - 3:00 PM"
	slotSignatureTreat   = "3:30 PM - 4:30 PM"
)

// PlanSignatureDay builds a single day anchored on one signature experience.
// Zone and hours constraints do not apply here; only name uniqueness does,
// seeded with the experience itself.
func (s *ItineraryService) PlanSignatureDay(ctx context.Context, experienceID string, prefs request_models.Preferences) (*cm.Itinerary, error) {
	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	exp := catalog.FindSignatureExperience(experienceID)
	if exp == nil {
		return nil, utils.ErrExperienceNotFound
	}

	g := NewGenerationContext(catalog, s.newRng())
	g.markUsed(exp.Name)

	var activities []cm.Activity

	breakfast := g.selectAnywhere(catalog.Restaurants, func(item cm.CatalogItem) bool {
		return item.HasBreakfast
	})
	if breakfast != nil {
		activities = append(activities, cm.ActivityFromItem(*breakfast, slotBreakfast, badgeBreakfast, 1))
	}

	if morning := g.selectAnywhere(catalog.Activities, nil); morning != nil {
		activities = append(activities, cm.ActivityFromItem(*morning, slotSignatureMorning, badgeMorning, 2))
	}

	signatureSlot := exp.BestTime
	if signatureSlot == "" {
		signatureSlot = slotSignatureDefault
	}
	activities = append(activities, cm.ActivityFromSignature(*exp, signatureSlot, 3))

	if prefs.IncludeSweets {
		treat := g.selectAnywhere(catalog.Shops, func(item cm.CatalogItem) bool {
			return item.Category == cm.CategoryDessertShop || item.Category == cm.CategoryBakery
		})
		if treat != nil {
			activities = append(activities, cm.ActivityFromItem(*treat, slotSignatureTreat, badgeTreat, 4))
		}
	}

	dinner := g.selectAnywhere(catalog.Restaurants, func(item cm.CatalogItem) bool {
		return !item.HasBreakfast
	})
	if dinner != nil {
		activities = append(activities, cm.ActivityFromItem(*dinner, slotDinner, badgeDinner, 5))
	}

	return &cm.Itinerary{
		GuestName: prefs.GuestName,
		Days: []cm.Day{{
			Day:        1,
			RouteName:  exp.Name + " Day",
			Theme:      cm.DayTheme{Name: "Signature Experience", Icon: "⭐"},
			Activities: activities,
		}},
	}, nil
}
