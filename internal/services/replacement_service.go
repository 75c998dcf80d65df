package services

import (
	"context"

	cm "rionido/internal/models/catalog_models"
	"rionido/pkg/utils"
)

type ReplacementServiceInterface interface {
	// ReplaceActivity swaps one placed activity for an unused alternative of
	// the same kind. It returns false when no eligible candidate exists in
	// any tier; the itinerary is untouched in that case. Callers serialize
	// access to the itinerary.
	ReplaceActivity(ctx context.Context, itinerary *cm.Itinerary, dayIndex, activityIndex int) (bool, error)
}

type ReplacementService struct {
	catalogService CatalogServiceInterface
	newRng         func() utils.RandomSource
}

func NewReplacementService(catalogService CatalogServiceInterface, newRng func() utils.RandomSource) ReplacementServiceInterface {
	return &ReplacementService{
		catalogService: catalogService,
		newRng:         newRng,
	}
}

func (s *ReplacementService) ReplaceActivity(ctx context.Context, itinerary *cm.Itinerary, dayIndex, activityIndex int) (bool, error) {
	if itinerary == nil || dayIndex < 0 || dayIndex >= len(itinerary.Days) {
		return false, utils.ErrActivityNotFound
	}
	day := &itinerary.Days[dayIndex]
	if activityIndex < 0 || activityIndex >= len(day.Activities) {
		return false, utils.ErrActivityNotFound
	}
	activity := day.Activities[activityIndex]

	if activity.IsTrail || activity.IsDistrict || activity.IsSignature {
		return false, utils.ErrNotReplaceable
	}

	collection, ok := activity.Category.Collection()
	if !ok {
		return false, utils.ErrNotReplaceable
	}

	catalog, err := s.catalogService.Catalog(ctx)
	if err != nil {
		return false, err
	}
	pool := catalog.Collection(collection)

	// Zones come from what the day actually holds, not the original route.
	var dayZones []cm.Zone
	for _, a := range day.Activities {
		if a.Zone != "" {
			dayZones = append(dayZones, a.Zone)
		}
	}
	compatible := cm.CompatibleZones(dayZones)

	eligible := func(item cm.CatalogItem) bool {
		if collection == cm.CollectionRestaurants {
			// Restaurants swap within the same meal class.
			want := activity.HasBreakfast || activity.Category.IsBreakfastClass()
			have := item.HasBreakfast || item.Category.IsBreakfastClass()
			if want != have {
				return false
			}
		} else if item.Category != activity.Category {
			return false
		}
		return !itinerary.ContainsName(item.Name)
	}

	candidates := filterItems(pool, func(item cm.CatalogItem) bool {
		return eligible(item) && compatible[item.Zone] && utils.IsOpenDuringSlot(item.Hours, activity.TimeSlot)
	})
	if len(candidates) == 0 {
		candidates = filterItems(pool, func(item cm.CatalogItem) bool {
			return eligible(item) && compatible[item.Zone]
		})
	}
	if len(candidates) == 0 {
		candidates = filterItems(pool, eligible)
	}
	if len(candidates) == 0 {
		return false, nil
	}

	rng := s.newRng()
	replacement := candidates[rng.Intn(len(candidates))]
	day.Activities[activityIndex] = cm.ActivityFromItem(replacement, activity.TimeSlot, activity.Badge, activity.RouteStop)
	return true, nil
}
