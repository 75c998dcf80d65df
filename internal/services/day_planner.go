package services

import (
	cm "rionido/internal/models/catalog_models"
	"rionido/internal/models/request_models"
)

// Display slots and badges for the six candidate positions of a day.
const (
	slotBreakfast     = "8:00 AM - 9:30 AM"
	slotMorning       = "10:00 AM - 12:00 PM"
	slotWineTrail     = "12:00 PM - 3:00 PM"
	slotLunch         = "12:30 PM - 2:00 PM"
	slotAfternoon     = "3:00 PM - 5:00 PM"
	slotAfternoonLate = "3:30 PM - 5:30 PM"
	slotTreat         = "5:30 PM - 6:15 PM"
	slotDinner        = "6:30 PM - 8:30 PM"

	badgeBreakfast = "🥐 Breakfast"
	badgeMorning   = "🥾 Morning Activity"
	badgeSpa       = "🧘 Spa & Wellness"
	badgeCoastal   = "🌊 Coastal Adventure"
	badgeLunch     = "🍽️ Lunch"
	badgeAfternoon = "✨ Afternoon Activity"
	badgeTreat     = "🍨 Sweet Treat"
	badgeDinner    = "🍽️ Dinner"
)

const lodgeRestaurantName = "Graze"

// planDay fills one day's slots in temporal order against the shared
// generation context. Slots with no eligible candidate are omitted.
func planDay(g *GenerationContext, prefs request_models.Preferences, route cm.RouteTheme) []cm.Activity {
	var activities []cm.Activity
	dayTypes := make(map[activityType]bool)

	if breakfast := planBreakfast(g, prefs, route); breakfast != nil {
		activities = append(activities, cm.ActivityFromItem(*breakfast, slotBreakfast, badgeBreakfast, 1))
	}

	if morning := planMorning(g, prefs, route, dayTypes); morning != nil {
		activities = append(activities, *morning)
	}

	activities = append(activities, planMidday(g, prefs, route)...)

	if afternoon := planAfternoon(g, prefs, route, activities, dayTypes); afternoon != nil {
		activities = append(activities, *afternoon)
	}

	if prefs.Has(request_models.InterestShopping) && prefs.IncludeSweets {
		treat := g.selectUnused(g.Catalog.Shops, route.Zones, func(item cm.CatalogItem) bool {
			return item.Category == cm.CategoryDessertShop || item.Category == cm.CategoryBakery
		}, slotTreat)
		if treat != nil {
			activities = append(activities, cm.ActivityFromItem(*treat, slotTreat, badgeTreat, 5))
		}
	}

	if dinner := planDinner(g, route); dinner != nil {
		activities = append(activities, cm.ActivityFromItem(*dinner, slotDinner, badgeDinner, 6))
	}

	return activities
}

// planBreakfast prefers markets and delis when that toggle is on, widens to
// compatible zones dropping the market preference, and on trips of three or
// more days falls back to the lodge's own breakfast service regardless of
// zone.
func planBreakfast(g *GenerationContext, prefs request_models.Preferences, route cm.RouteTheme) *cm.CatalogItem {
	pool := filterItems(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
		return item.HasBreakfast && !item.IsGrazeFallback
	})

	if prefs.IncludeMarkets {
		markets := filterItems(pool, func(item cm.CatalogItem) bool {
			return item.Category.IsMarketCategory()
		})
		if len(markets) > 0 {
			pool = markets
		}
	}

	if breakfast := g.selectUnused(pool, route.Zones, nil, slotBreakfast); breakfast != nil {
		return breakfast
	}

	// Widen: any breakfast venue in compatible zones, hours unchecked.
	compatible := cm.CompatibleZones(route.Zones)
	widened := filterItems(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
		return item.HasBreakfast && !item.IsGrazeFallback && compatible[item.Zone] && !g.UsedNames[item.Name]
	})
	if len(widened) > 0 {
		selected := g.pickItem(widened)
		g.markUsed(selected.Name)
		return &selected
	}

	if prefs.Duration >= 3 {
		fallbacks := filterItems(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
			return item.IsGrazeFallback && !g.UsedNames[item.Name]
		})
		if len(fallbacks) > 0 {
			selected := g.pickItem(fallbacks)
			g.markUsed(selected.Name)
			return &selected
		}
	}

	return nil
}

// planMorning tries, in priority order, a shopping district, a spa visit, a
// nature outing, a coastal outing, then any activity of a type not yet seen
// today.
func planMorning(g *GenerationContext, prefs request_models.Preferences, route cm.RouteTheme, dayTypes map[activityType]bool) *cm.Activity {
	canAddDistrict := prefs.Duration >= 4 || !g.ShoppingDistrictUsed
	if prefs.Has(request_models.InterestShopping) && prefs.IncludeMarkets && canAddDistrict {
		if district := pickShoppingDistrict(g, route); district != nil {
			g.ShoppingDistrictUsed = true
			a := cm.ActivityFromDistrict(*district, slotMorning, 2)
			return &a
		}
	}

	if prefs.Has(request_models.InterestSpaWellness) {
		pool := filterItems(g.Catalog.Activities, func(item cm.CatalogItem) bool {
			return item.Category == cm.CategorySpa
		})
		if spa := g.selectUnused(pool, route.Zones, nil, slotMorning); spa != nil {
			a := cm.ActivityFromItem(*spa, slotMorning, badgeSpa, 2)
			return &a
		}
	}

	if prefs.Has(request_models.InterestNatureHiking) {
		pool := filterItems(g.Catalog.Activities, func(item cm.CatalogItem) bool {
			return item.Category == cm.CategoryNatureHiking || item.Category == cm.CategoryNature || item.Category == cm.CategoryOutdoor
		})
		if nature := g.selectUnused(pool, route.Zones, nil, slotMorning); nature != nil {
			dayTypes[classifyActivity(nature.Name)] = true
			a := cm.ActivityFromItem(*nature, slotMorning, badgeMorning, 2)
			return &a
		}
	}

	if prefs.Has(request_models.InterestCoastalAdventures) {
		pool := filterItems(g.Catalog.Activities, func(item cm.CatalogItem) bool {
			return item.Zone == cm.ZoneCoast
		})
		if coastal := g.selectUnused(pool, route.Zones, nil, slotMorning); coastal != nil {
			dayTypes[classifyActivity(coastal.Name)] = true
			a := cm.ActivityFromItem(*coastal, slotMorning, badgeCoastal, 2)
			return &a
		}
	}

	if fallback := selectFreshActivity(g, route, dayTypes, slotMorning); fallback != nil {
		a := cm.ActivityFromItem(*fallback, slotMorning, badgeMorning, 2)
		return &a
	}
	return nil
}

// planMidday places a wine trail when the interest and the trip-level quota
// allow it, preferring the route's recommended trail. Otherwise lunch is
// mandatory, with a catalog-wide last resort.
func planMidday(g *GenerationContext, prefs request_models.Preferences, route cm.RouteTheme) []cm.Activity {
	canAddTrail := prefs.Duration >= 4 || !g.WineTrailUsed

	if prefs.Has(request_models.InterestWineTasting) && canAddTrail {
		if trail := pickWineTrail(g, route); trail != nil {
			g.WineTrailUsed = true
			return []cm.Activity{cm.ActivityFromTrail(*trail, slotWineTrail, 3)}
		}
	}

	pool := filterItems(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
		return !item.HasBreakfast
	})
	if prefs.IncludeMarkets {
		markets := filterItems(pool, func(item cm.CatalogItem) bool {
			return item.Category.IsMarketCategory()
		})
		if len(markets) > 0 {
			pool = markets
		}
	}

	if lunch := g.selectUnused(pool, route.Zones, nil, slotLunch); lunch != nil {
		return []cm.Activity{cm.ActivityFromItem(*lunch, slotLunch, badgeLunch, 3)}
	}

	// Lunch must not be skipped: any unused non-breakfast venue will do.
	fallback := g.selectAnywhere(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
		return !item.HasBreakfast
	})
	if fallback != nil {
		return []cm.Activity{cm.ActivityFromItem(*fallback, slotLunch, badgeLunch, 3)}
	}
	return nil
}

// planAfternoon mirrors the morning priorities: shopping district (when not
// already placed today), spa, then any activity of an unseen type. The slot
// shifts later when a wine trail ran through the early afternoon.
func planAfternoon(g *GenerationContext, prefs request_models.Preferences, route cm.RouteTheme, placed []cm.Activity, dayTypes map[activityType]bool) *cm.Activity {
	hadTrail, hadDistrict := false, false
	for _, a := range placed {
		if a.IsTrail {
			hadTrail = true
		}
		if a.IsDistrict {
			hadDistrict = true
		}
	}

	slot := slotAfternoon
	districtSlot := slotAfternoon
	if hadTrail {
		districtSlot = slotAfternoonLate
	}

	canAddDistrict := (prefs.Duration >= 4 || !g.ShoppingDistrictUsed) && !hadDistrict
	if prefs.Has(request_models.InterestShopping) && prefs.IncludeMarkets && canAddDistrict {
		if district := pickShoppingDistrict(g, route); district != nil {
			g.ShoppingDistrictUsed = true
			a := cm.ActivityFromDistrict(*district, districtSlot, 4)
			return &a
		}
	}

	if prefs.Has(request_models.InterestSpaWellness) {
		pool := filterItems(g.Catalog.Activities, func(item cm.CatalogItem) bool {
			return item.Category == cm.CategorySpa
		})
		if spa := g.selectUnused(pool, route.Zones, nil, slot); spa != nil {
			a := cm.ActivityFromItem(*spa, slot, badgeSpa, 4)
			return &a
		}
	}

	if fresh := selectFreshActivity(g, route, dayTypes, slot); fresh != nil {
		a := cm.ActivityFromItem(*fresh, slot, badgeAfternoon, 4)
		return &a
	}
	return nil
}

// planDinner seats the party at the lodge's own restaurant on the first day
// whose route touches central or north, then picks from the return-route
// zones so the evening meal lies on the drive home.
func planDinner(g *GenerationContext, route cm.RouteTheme) *cm.CatalogItem {
	nearLodge := false
	for _, z := range route.Zones {
		if z == cm.ZoneCentral || z == cm.ZoneNorth {
			nearLodge = true
			break
		}
	}

	if nearLodge && !g.UsedNames[lodgeRestaurantName] {
		for _, item := range g.Catalog.Restaurants {
			if item.Name == lodgeRestaurantName {
				g.markUsed(item.Name)
				found := item
				return &found
			}
		}
	}

	returnZones := cm.ReturnZones(route.Zones)
	candidates := filterItems(g.Catalog.Restaurants, func(item cm.CatalogItem) bool {
		if item.HasBreakfast || item.IsGrazeFallback || item.Name == lodgeRestaurantName {
			return false
		}
		return returnZones[item.Zone] && !g.UsedNames[item.Name]
	})
	if len(candidates) == 0 {
		return nil
	}

	selected := g.pickItem(candidates)
	g.markUsed(selected.Name)
	return &selected
}

// pickShoppingDistrict prefers the route's recommendation, then districts in
// the exact route zones, then compatible zones.
func pickShoppingDistrict(g *GenerationContext, route cm.RouteTheme) *cm.ShoppingDistrict {
	if route.DistrictPick != nil && !g.UsedNames[route.DistrictPick.DistrictName] {
		if d := g.Catalog.FindDistrict(route.DistrictPick.DistrictName); d != nil {
			g.markUsed(d.Name)
			return d
		}
	}

	exact := make(map[cm.Zone]bool, len(route.Zones))
	for _, z := range route.Zones {
		exact[z] = true
	}
	var candidates []cm.ShoppingDistrict
	for _, d := range g.Catalog.ShoppingDistricts {
		if !g.UsedNames[d.Name] && exact[d.Zone] {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		compatible := cm.CompatibleZones(route.Zones)
		for _, d := range g.Catalog.ShoppingDistricts {
			if !g.UsedNames[d.Name] && compatible[d.Zone] {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	selected := candidates[g.Rng.Intn(len(candidates))]
	g.markUsed(selected.Name)
	return &selected
}

// pickWineTrail prefers the route's recommended trail, else any unused trail
// whose zone is compatible with today's route.
func pickWineTrail(g *GenerationContext, route cm.RouteTheme) *cm.WineTrail {
	if route.TrailPick != nil && !g.UsedNames[route.TrailPick.TrailName] {
		if t := g.Catalog.FindTrail(route.TrailPick.TrailName); t != nil {
			g.markUsed(t.Name)
			return t
		}
	}

	compatible := cm.CompatibleZones(route.Zones)
	var candidates []cm.WineTrail
	for _, t := range g.Catalog.WineTrails {
		if !g.UsedNames[t.Name] && compatible[t.Zone] {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	selected := candidates[g.Rng.Intn(len(candidates))]
	g.markUsed(selected.Name)
	return &selected
}

// selectFreshActivity picks any activity whose heuristic type is not already
// represented today. The selector's hours relaxation covers the widened
// retry; selection never leaves compatible zones.
func selectFreshActivity(g *GenerationContext, route cm.RouteTheme, dayTypes map[activityType]bool, slot string) *cm.CatalogItem {
	fresh := func(item cm.CatalogItem) bool {
		return !dayTypes[classifyActivity(item.Name)]
	}

	item := g.selectUnused(g.Catalog.Activities, route.Zones, fresh, slot)
	if item == nil {
		return nil
	}
	dayTypes[classifyActivity(item.Name)] = true
	return item
}

func filterItems(items []cm.CatalogItem, keep func(cm.CatalogItem) bool) []cm.CatalogItem {
	var out []cm.CatalogItem
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
