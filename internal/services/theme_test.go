package services

import (
	"testing"

	cm "rionido/internal/models/catalog_models"
)

func TestDeriveDayTheme(t *testing.T) {
	trail := cm.Activity{IsTrail: true}
	district := cm.Activity{IsDistrict: true}
	spa := cm.Activity{Category: cm.CategorySpa}
	coastal := cm.Activity{Category: cm.CategoryEntertainment, Zone: cm.ZoneCoast}
	nature := cm.Activity{Category: cm.CategoryNatureHiking, Zone: cm.ZoneCentral}
	dinner := cm.Activity{Category: cm.CategoryFineDining, Zone: cm.ZoneCentral}

	tests := []struct {
		name       string
		activities []cm.Activity
		want       string
	}{
		{"trail and district outrank everything", []cm.Activity{trail, district, spa}, "Vineyard & Village Explorer"},
		{"trail alone", []cm.Activity{trail, nature}, "Wine Country Journey"},
		{"spa on the coast", []cm.Activity{spa, coastal}, "Coastal Serenity & Spa"},
		{"spa inland", []cm.Activity{spa, dinner}, "Relaxation & Renewal"},
		{"coast with nature", []cm.Activity{coastal, nature}, "Redwoods to Rugged Coast"},
		{"coast alone", []cm.Activity{coastal}, "Pacific Coast Discovery"},
		{"district with nature", []cm.Activity{district, nature}, "Village Charm & Natural Beauty"},
		{"district alone", []cm.Activity{district, dinner}, "Artisan Village Adventure"},
		{"nature alone", []cm.Activity{nature}, "Forest & Valley Escape"},
		{"nothing distinctive", []cm.Activity{dinner}, "Russian River Discovery"},
		{"empty day", nil, "Russian River Discovery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deriveDayTheme(tt.activities); got.Name != tt.want {
				t.Errorf("deriveDayTheme() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}
