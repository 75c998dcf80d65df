package services

import (
	"context"
	"testing"

	cm "rionido/internal/models/catalog_models"
	"rionido/internal/repositories"
	"rionido/pkg/utils"
)

// firstPick always takes the first candidate, making plans deterministic.
type firstPick struct{}

func (firstPick) Intn(n int) int { return 0 }

// stubCatalogService serves a fixed catalog without a repository.
type stubCatalogService struct {
	catalog *cm.Catalog
}

func (s *stubCatalogService) Catalog(_ context.Context) (*cm.Catalog, error) { return s.catalog, nil }
func (s *stubCatalogService) Reload(_ context.Context) error                 { return nil }

func seedCatalogService() *stubCatalogService {
	return &stubCatalogService{catalog: repositories.SeedCatalog()}
}

func newRngFactory() func() utils.RandomSource {
	return func() utils.RandomSource { return firstPick{} }
}

func selectorCatalog() *cm.Catalog {
	return &cm.Catalog{
		Restaurants: []cm.CatalogItem{
			{Name: "Early Central", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, Hours: "7am-2pm daily", HasBreakfast: true},
			{Name: "Late Central", Category: cm.CategoryBreakfast, Zone: cm.ZoneCentral, Hours: "10am-2pm daily", HasBreakfast: true},
			{Name: "North Diner", Category: cm.CategoryBreakfast, Zone: cm.ZoneNorth, Hours: "7am-2pm daily", HasBreakfast: true},
			{Name: "Coast Cafe", Category: cm.CategoryBreakfast, Zone: cm.ZoneCoast, Hours: "7am-2pm daily", HasBreakfast: true},
		},
	}
}

func TestSelectUnusedPrefersOpenCandidates(t *testing.T) {
	catalog := selectorCatalog()
	g := NewGenerationContext(catalog, utils.NewSeededSource(1))

	for i := 0; i < 10; i++ {
		g.UsedNames = make(map[string]bool)
		got := g.selectUnused(catalog.Restaurants, []cm.Zone{cm.ZoneCentral}, nil, "8:00 AM - 9:30 AM")
		if got == nil {
			t.Fatal("expected a candidate")
		}
		if got.Name == "Late Central" {
			t.Fatal("picked an hours-incompatible candidate while open ones existed")
		}
		if got.Name == "Coast Cafe" {
			t.Fatal("picked a candidate outside compatible zones")
		}
	}
}

func TestSelectUnusedRelaxesHoursBeforeGivingUp(t *testing.T) {
	catalog := selectorCatalog()
	g := NewGenerationContext(catalog, firstPick{})
	g.markUsed("Early Central")
	g.markUsed("North Diner")

	got := g.selectUnused(catalog.Restaurants, []cm.Zone{cm.ZoneCentral}, nil, "8:00 AM - 9:30 AM")
	if got == nil || got.Name != "Late Central" {
		t.Fatalf("expected hours-relaxed pick of Late Central, got %v", got)
	}
}

func TestSelectUnusedNeverLeavesCompatibleZones(t *testing.T) {
	catalog := selectorCatalog()
	g := NewGenerationContext(catalog, firstPick{})
	g.markUsed("Early Central")
	g.markUsed("Late Central")
	g.markUsed("North Diner")

	got := g.selectUnused(catalog.Restaurants, []cm.Zone{cm.ZoneCentral}, nil, "8:00 AM - 9:30 AM")
	if got != nil {
		t.Fatalf("expected no candidate, got %s", got.Name)
	}
	if g.UsedNames["Coast Cafe"] {
		t.Error("a failed selection must not touch the used set")
	}
}

func TestSelectUnusedMarksOnlySuccessfulPicks(t *testing.T) {
	catalog := selectorCatalog()
	g := NewGenerationContext(catalog, firstPick{})

	got := g.selectUnused(catalog.Restaurants, []cm.Zone{cm.ZoneCentral}, nil, "")
	if got == nil {
		t.Fatal("expected a candidate")
	}
	if !g.UsedNames[got.Name] {
		t.Errorf("%s should be marked used after selection", got.Name)
	}
	if len(g.UsedNames) != 1 {
		t.Errorf("only the selected name should be marked, got %v", g.UsedNames)
	}
}

func TestClassifyActivity(t *testing.T) {
	tests := []struct {
		name string
		want activityType
	}{
		{"Burke's Canoe Trips", typeWaterSports},
		{"Russian River Kayak Adventure", typeWaterSports},
		{"Armstrong Redwoods State Natural Reserve", typeHiking},
		{"Bodega Head Trail", typeHiking},
		{"Goat Rock State Beach", typeCoastal},
		{"Osmosis Day Spa Sanctuary", typeWellness},
		{"Duncans Mills Historic District", typeOther},
	}
	for _, tt := range tests {
		if got := classifyActivity(tt.name); got != tt.want {
			t.Errorf("classifyActivity(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
