package services

import (
	"context"
	"testing"

	cm "rionido/internal/models/catalog_models"
	"rionido/pkg/utils"
)

func replacementCatalog() *cm.Catalog {
	return &cm.Catalog{
		Restaurants: []cm.CatalogItem{
			{Name: "Placed Breakfast", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, Hours: "7am-2pm daily", HasBreakfast: true},
			{Name: "Open Breakfast", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, Hours: "7am-2pm daily", HasBreakfast: true},
			{Name: "Late Breakfast", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, Hours: "11am-2pm daily", HasBreakfast: true},
			{Name: "Far Breakfast", Category: cm.CategoryBreakfast, Zone: cm.ZoneCoast, Hours: "7am-2pm daily", HasBreakfast: true},
			{Name: "Dinner House", Category: cm.CategoryFineDining, Zone: cm.ZoneCentral, Hours: "5pm-9pm daily"},
		},
		Shops: []cm.CatalogItem{
			{Name: "Placed Scoop", Category: cm.CategoryDessertShop, Zone: cm.ZoneCentral, Hours: "12pm-9pm daily"},
			{Name: "Other Scoop", Category: cm.CategoryDessertShop, Zone: cm.ZoneCentral, Hours: "12pm-9pm daily"},
			{Name: "Bookshop", Category: cm.CategoryBookstore, Zone: cm.ZoneCentral, Hours: "10am-7pm daily"},
		},
	}
}

func breakfastItinerary() *cm.Itinerary {
	return &cm.Itinerary{
		Days: []cm.Day{{
			Day:       1,
			RouteName: "Test Route",
			Activities: []cm.Activity{
				{Name: "Placed Breakfast", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, HasBreakfast: true,
					TimeSlot: slotBreakfast, Badge: badgeBreakfast, RouteStop: 1},
				{Name: "Placed Scoop", Category: cm.CategoryDessertShop, Zone: cm.ZoneCentral,
					TimeSlot: slotTreat, Badge: badgeTreat, RouteStop: 5},
			},
		}},
	}
}

func TestReplaceActivitySwapsWithinMealClass(t *testing.T) {
	svc := NewReplacementService(&stubCatalogService{catalog: replacementCatalog()}, newRngFactory())
	it := breakfastItinerary()

	swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !swapped {
		t.Fatal("expected a swap")
	}

	got := it.Days[0].Activities[0]
	if got.Name != "Open Breakfast" {
		t.Errorf("replacement = %s, want the zone- and hours-compatible breakfast venue", got.Name)
	}
	if got.TimeSlot != slotBreakfast || got.Badge != badgeBreakfast || got.RouteStop != 1 {
		t.Errorf("slot metadata not preserved: %+v", got)
	}
}

func TestReplaceActivityRelaxesTiers(t *testing.T) {
	catalog := replacementCatalog()
	// Remove the hours-compatible candidate so tier 2 has to fire.
	catalog.Restaurants = []cm.CatalogItem{
		catalog.Restaurants[0], // Placed Breakfast
		catalog.Restaurants[2], // Late Breakfast, zone ok, wrong hours
		catalog.Restaurants[4], // Dinner House, wrong meal class
	}
	svc := NewReplacementService(&stubCatalogService{catalog: catalog}, newRngFactory())
	it := breakfastItinerary()

	swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !swapped || it.Days[0].Activities[0].Name != "Late Breakfast" {
		t.Errorf("expected tier-2 pick of Late Breakfast, got %s", it.Days[0].Activities[0].Name)
	}
}

func TestReplaceActivityFallsBackToAnyZone(t *testing.T) {
	catalog := replacementCatalog()
	catalog.Restaurants = []cm.CatalogItem{
		catalog.Restaurants[0], // Placed Breakfast
		catalog.Restaurants[3], // Far Breakfast, coast zone
	}
	svc := NewReplacementService(&stubCatalogService{catalog: catalog}, newRngFactory())
	it := breakfastItinerary()

	swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !swapped || it.Days[0].Activities[0].Name != "Far Breakfast" {
		t.Errorf("expected tier-3 pick of Far Breakfast, got %s", it.Days[0].Activities[0].Name)
	}
}

func TestReplaceActivityExactCategoryForShops(t *testing.T) {
	svc := NewReplacementService(&stubCatalogService{catalog: replacementCatalog()}, newRngFactory())
	it := breakfastItinerary()

	swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !swapped {
		t.Fatal("expected a swap")
	}
	got := it.Days[0].Activities[1]
	if got.Name != "Other Scoop" {
		t.Errorf("replacement = %s, want the same-category dessert shop", got.Name)
	}
}

func TestReplaceActivityNoCandidateIsNoOp(t *testing.T) {
	catalog := replacementCatalog()
	catalog.Restaurants = catalog.Restaurants[:1] // only the placed venue remains
	svc := NewReplacementService(&stubCatalogService{catalog: catalog}, newRngFactory())
	it := breakfastItinerary()

	swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if swapped {
		t.Error("swap reported with no eligible candidate")
	}
	if it.Days[0].Activities[0].Name != "Placed Breakfast" {
		t.Error("itinerary mutated on a no-op replacement")
	}
}

func TestReplaceActivityRefusesSpecials(t *testing.T) {
	svc := NewReplacementService(&stubCatalogService{catalog: replacementCatalog()}, newRngFactory())

	specials := []cm.Activity{
		{Name: "A Trail", Category: cm.CategoryWineTrail, IsTrail: true},
		{Name: "A District", Category: cm.CategoryShoppingDistrict, IsDistrict: true},
		{Name: "A Package", Category: cm.CategorySignature, IsSignature: true},
	}
	for _, special := range specials {
		it := &cm.Itinerary{Days: []cm.Day{{Day: 1, Activities: []cm.Activity{special}}}}

		swapped, err := svc.ReplaceActivity(context.Background(), it, 0, 0)
		if err != utils.ErrNotReplaceable {
			t.Errorf("%s: got %v, want ErrNotReplaceable", special.Name, err)
		}
		if swapped || it.Days[0].Activities[0].Name != special.Name {
			t.Errorf("%s: refusal must leave the itinerary untouched", special.Name)
		}
	}
}

func TestReplaceActivityBoundsChecks(t *testing.T) {
	svc := NewReplacementService(&stubCatalogService{catalog: replacementCatalog()}, newRngFactory())
	it := breakfastItinerary()

	for _, tc := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 9}} {
		if _, err := svc.ReplaceActivity(context.Background(), it, tc[0], tc[1]); err != utils.ErrActivityNotFound {
			t.Errorf("indexes %v: got %v, want ErrActivityNotFound", tc, err)
		}
	}
}
