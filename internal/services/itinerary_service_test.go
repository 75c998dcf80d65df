package services

import (
	"context"
	"strings"
	"testing"

	cm "rionido/internal/models/catalog_models"
	"rionido/internal/models/request_models"
	"rionido/pkg/utils"
)

func TestGenerateItineraryRejectsInvalidDuration(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	for _, duration := range []int{0, -1} {
		_, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{Duration: duration})
		if err != utils.ErrInvalidPreferences {
			t.Errorf("duration %d: got %v, want ErrInvalidPreferences", duration, err)
		}
	}
}

// Single wine-country day: market-preferring breakfast, a wine trail instead
// of lunch, and a dinner, with no duplicate names.
func TestGenerateItineraryWineTastingDay(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{
		Duration:       1,
		Interests:      []request_models.Interest{request_models.InterestWineTasting},
		IncludeMarkets: true,
		IncludeSweets:  true,
		GuestName:      "Avery",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(it.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(it.Days))
	}
	day := it.Days[0]

	var hasBreakfast, hasTrail, hasLunch, hasDinner, hasActivity bool
	for _, a := range day.Activities {
		switch {
		case a.Badge == badgeBreakfast:
			hasBreakfast = true
			if !a.Category.IsMarketCategory() {
				t.Errorf("breakfast %s should prefer a market venue", a.Name)
			}
		case a.IsTrail:
			hasTrail = true
		case a.Badge == badgeLunch:
			hasLunch = true
		case a.Badge == badgeDinner:
			hasDinner = true
		case a.RouteStop == 2 || a.RouteStop == 4:
			hasActivity = true
		}
	}

	if !hasBreakfast {
		t.Error("day is missing breakfast")
	}
	if !hasTrail {
		t.Error("day is missing the wine trail")
	}
	if hasLunch {
		t.Error("wine trail and lunch are mutually exclusive within a day")
	}
	if !hasDinner {
		t.Error("day is missing dinner")
	}
	if !hasActivity {
		t.Error("day is missing a morning or afternoon activity")
	}

	assertNoDuplicateNames(t, it, 1)
}

// Five shopping days: quotas lift at duration >= 4, breakfast and dinner are
// present daily, and nothing else repeats.
func TestGenerateItineraryLongShoppingTrip(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{
		Duration:       5,
		Interests:      []request_models.Interest{request_models.InterestShopping},
		IncludeMarkets: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(it.Days) != 5 {
		t.Fatalf("got %d days, want 5", len(it.Days))
	}

	for _, day := range it.Days {
		var hasBreakfast, hasDinner bool
		for _, a := range day.Activities {
			if a.Badge == badgeBreakfast {
				hasBreakfast = true
			}
			if a.Badge == badgeDinner {
				hasDinner = true
			}
		}
		if !hasBreakfast {
			t.Errorf("day %d missing breakfast", day.Day)
		}
		if !hasDinner {
			t.Errorf("day %d missing dinner", day.Day)
		}
	}

	assertNoDuplicateNames(t, it, 5)
}

func TestGenerateItineraryTrailAndDistrictQuota(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{
		Duration: 3,
		Interests: []request_models.Interest{
			request_models.InterestWineTasting,
			request_models.InterestShopping,
		},
		IncludeMarkets: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	trails, districts := 0, 0
	for _, day := range it.Days {
		for _, a := range day.Activities {
			if a.IsTrail {
				trails++
			}
			if a.IsDistrict {
				districts++
			}
		}
	}
	if trails > 1 {
		t.Errorf("%d wine trails on a 3-day trip, quota is one", trails)
	}
	if districts > 1 {
		t.Errorf("%d shopping districts on a 3-day trip, quota is one", districts)
	}

	assertNoDuplicateNames(t, it, 3)
}

// Coastal preference holds while an unused coastal theme remains, then any
// theme becomes fair game.
func TestGenerateItineraryCoastalPreference(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{
		Duration:  2,
		Interests: []request_models.Interest{request_models.InterestCoastalAdventures},
	})
	if err != nil {
		t.Fatal(err)
	}

	catalog := seedCatalogService().catalog
	routeHasCoast := func(name string) bool {
		for _, r := range catalog.RouteThemes {
			if r.Name == name {
				for _, z := range r.Zones {
					if z == cm.ZoneCoast {
						return true
					}
				}
			}
		}
		return false
	}

	if !routeHasCoast(it.Days[0].RouteName) {
		t.Errorf("day 1 route %q should be coastal while coastal themes remain", it.Days[0].RouteName)
	}
	if it.Days[0].RouteName == it.Days[1].RouteName {
		t.Error("route themes must not repeat before the set is exhausted")
	}
}

// Non-meal stops stay inside the compatible-zone expansion of the day's
// route. Dinner legitimately ranges wider along the return route.
func TestGenerateItineraryZoneContainment(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{
		Duration: 4,
		Interests: []request_models.Interest{
			request_models.InterestNatureHiking,
			request_models.InterestSpaWellness,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	catalog := seedCatalogService().catalog
	for _, day := range it.Days {
		var routeZones []cm.Zone
		for _, r := range catalog.RouteThemes {
			if r.Name == day.RouteName {
				routeZones = r.Zones
			}
		}
		if routeZones == nil {
			t.Fatalf("day %d references unknown route %q", day.Day, day.RouteName)
		}
		compatible := cm.CompatibleZones(routeZones)

		for _, a := range day.Activities {
			if a.RouteStop < 2 || a.RouteStop > 5 || a.Zone == "" {
				continue
			}
			if !compatible[a.Zone] {
				t.Errorf("day %d: %s in zone %s, outside compatible zones of %v",
					day.Day, a.Name, a.Zone, routeZones)
			}
		}
	}
}

func TestGenerateItineraryRouteRotationResets(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{Duration: 7})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]int)
	for _, day := range it.Days {
		seen[day.RouteName]++
	}
	// Five themes over seven days: no theme may appear three times before
	// every theme has been used once.
	for name, count := range seen {
		if count > 2 {
			t.Errorf("route %q used %d times in 7 days", name, count)
		}
	}
}

func TestPlanSignatureDay(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	it, err := svc.PlanSignatureDay(context.Background(), "sig_rnl1", request_models.Preferences{
		GuestName:     "Rowan",
		IncludeSweets: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(it.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(it.Days))
	}
	day := it.Days[0]

	if !strings.HasSuffix(day.RouteName, " Day") {
		t.Errorf("route name %q should be derived from the experience", day.RouteName)
	}
	if day.Theme.Name != "Signature Experience" {
		t.Errorf("theme = %q, want Signature Experience", day.Theme.Name)
	}

	var signature *cm.Activity
	var hasBreakfast, hasTreat, hasDinner bool
	for i := range day.Activities {
		a := &day.Activities[i]
		switch {
		case a.IsSignature:
			signature = a
		case a.Badge == badgeBreakfast:
			hasBreakfast = true
		case a.Badge == badgeTreat:
			hasTreat = true
		case a.Badge == badgeDinner:
			hasDinner = true
			if a.HasBreakfast {
				t.Errorf("dinner %s must not be a breakfast venue", a.Name)
			}
		}
	}

	if signature == nil {
		t.Fatal("signature experience missing from its own day")
	}
	if signature.Name != "Wine Country Limo Package" {
		t.Errorf("signature = %q, want Wine Country Limo Package", signature.Name)
	}
	if signature.TimeSlot != "10am - 5pm" {
		t.Errorf("signature slot = %q, want the experience's best time", signature.TimeSlot)
	}
	if !hasBreakfast || !hasTreat || !hasDinner {
		t.Errorf("incomplete signature day: breakfast=%v treat=%v dinner=%v", hasBreakfast, hasTreat, hasDinner)
	}

	assertNoDuplicateNames(t, it, 1)
}

func TestPlanSignatureDayUnknownExperience(t *testing.T) {
	svc := NewItineraryService(seedCatalogService(), newRngFactory())

	_, err := svc.PlanSignatureDay(context.Background(), "sig_nope", request_models.Preferences{})
	if err != utils.ErrExperienceNotFound {
		t.Errorf("got %v, want ErrExperienceNotFound", err)
	}
}

// When every regular breakfast venue is out of reach, trips of three or more
// days still get day one's breakfast from the lodge's own service.
func TestGenerateItineraryLodgeBreakfastFallback(t *testing.T) {
	catalog := &cm.Catalog{
		RouteThemes: []cm.RouteTheme{{Name: "Coast Loop", Zones: []cm.Zone{cm.ZoneCoast}}},
		Restaurants: []cm.CatalogItem{
			{Name: "Lodge Lounge Breakfast", Category: cm.CategoryBreakfastBrunch, Zone: cm.ZoneCentral,
				Hours: "8am-2pm daily", HasBreakfast: true, IsGrazeFallback: true},
			{Name: "Coast Grill", Category: cm.CategoryFineDining, Zone: cm.ZoneCoast, Hours: "5pm-9pm daily"},
		},
	}
	svc := NewItineraryService(&stubCatalogService{catalog: catalog}, newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{Duration: 3})
	if err != nil {
		t.Fatal(err)
	}

	var breakfast *cm.Activity
	for i := range it.Days[0].Activities {
		if it.Days[0].Activities[i].Badge == badgeBreakfast {
			breakfast = &it.Days[0].Activities[i]
		}
	}
	if breakfast == nil {
		t.Fatal("day 1 has no breakfast despite the lodge fallback")
	}
	if breakfast.Name != "Lodge Lounge Breakfast" {
		t.Errorf("breakfast = %q, want the lodge fallback venue", breakfast.Name)
	}
}

// The lodge fallback is reserved for longer stays: short trips skip breakfast
// rather than seat every guest at the lodge.
func TestGenerateItineraryShortTripSkipsLodgeFallback(t *testing.T) {
	catalog := &cm.Catalog{
		RouteThemes: []cm.RouteTheme{{Name: "Coast Loop", Zones: []cm.Zone{cm.ZoneCoast}}},
		Restaurants: []cm.CatalogItem{
			{Name: "Lodge Lounge Breakfast", Category: cm.CategoryBreakfastBrunch, Zone: cm.ZoneCentral,
				Hours: "8am-2pm daily", HasBreakfast: true, IsGrazeFallback: true},
		},
	}
	svc := NewItineraryService(&stubCatalogService{catalog: catalog}, newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{Duration: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, day := range it.Days {
		for _, a := range day.Activities {
			if a.Badge == badgeBreakfast {
				t.Errorf("day %d placed %q, the fallback requires a stay of three days or more", day.Day, a.Name)
			}
		}
	}
}

// Lunch is never skipped: when no venue sits inside the route's compatible
// zones, the last resort searches the whole catalog.
func TestGenerateItineraryLunchLastResortCrossesZones(t *testing.T) {
	catalog := &cm.Catalog{
		RouteThemes: []cm.RouteTheme{{Name: "Coast Loop", Zones: []cm.Zone{cm.ZoneCoast}}},
		Restaurants: []cm.CatalogItem{
			{Name: "Dry Creek Supper Club", Category: cm.CategoryFineDining, Zone: cm.ZoneHealdsburg, Hours: "5pm-9pm daily"},
		},
	}
	svc := NewItineraryService(&stubCatalogService{catalog: catalog}, newRngFactory())

	it, err := svc.GenerateItinerary(context.Background(), request_models.Preferences{Duration: 1})
	if err != nil {
		t.Fatal(err)
	}

	var lunch *cm.Activity
	for i := range it.Days[0].Activities {
		if it.Days[0].Activities[i].Badge == badgeLunch {
			lunch = &it.Days[0].Activities[i]
		}
	}
	if lunch == nil {
		t.Fatal("the mandatory lunch slot is empty")
	}
	if lunch.Name != "Dry Creek Supper Club" {
		t.Errorf("lunch = %q, want the out-of-zone last resort", lunch.Name)
	}
	if cm.CompatibleZones([]cm.Zone{cm.ZoneCoast})[lunch.Zone] {
		t.Errorf("lunch zone %s is route-compatible, the last resort was not exercised", lunch.Zone)
	}
}

// assertNoDuplicateNames enforces the trip-wide uniqueness invariant. Trails
// and districts are exempt on trips of four or more days.
func assertNoDuplicateNames(t *testing.T, it *cm.Itinerary, duration int) {
	t.Helper()
	seen := make(map[string]bool)
	for _, day := range it.Days {
		for _, a := range day.Activities {
			if seen[a.Name] {
				if duration >= 4 && (a.IsTrail || a.IsDistrict) {
					continue
				}
				t.Errorf("%s appears more than once", a.Name)
			}
			seen[a.Name] = true
		}
	}
}
