package services

import (
	cm "rionido/internal/models/catalog_models"
)

// deriveDayTheme labels a day from what was actually placed, not from the
// route it was planned against. The checks run in a fixed priority order.
func deriveDayTheme(activities []cm.Activity) cm.DayTheme {
	var hasTrail, hasDistrict, hasSpa, hasCoastal, hasNature bool
	for _, a := range activities {
		if a.IsTrail {
			hasTrail = true
		}
		if a.IsDistrict {
			hasDistrict = true
		}
		if a.Category == cm.CategorySpa {
			hasSpa = true
		}
		if a.Zone == cm.ZoneCoast {
			hasCoastal = true
		}
		if a.Category == cm.CategoryNatureHiking || a.Category == cm.CategoryNature || a.Category == cm.CategoryOutdoor {
			hasNature = true
		}
	}

	switch {
	case hasTrail && hasDistrict:
		return cm.DayTheme{Name: "Vineyard & Village Explorer", Icon: "🍷🛍️"}
	case hasTrail:
		return cm.DayTheme{Name: "Wine Country Journey", Icon: "🍷"}
	case hasSpa && hasCoastal:
		return cm.DayTheme{Name: "Coastal Serenity & Spa", Icon: "🧘🌊"}
	case hasSpa:
		return cm.DayTheme{Name: "Relaxation & Renewal", Icon: "🧘"}
	case hasCoastal && hasNature:
		return cm.DayTheme{Name: "Redwoods to Rugged Coast", Icon: "🌊🌲"}
	case hasCoastal:
		return cm.DayTheme{Name: "Pacific Coast Discovery", Icon: "🌊"}
	case hasDistrict && hasNature:
		return cm.DayTheme{Name: "Village Charm & Natural Beauty", Icon: "🛍️🥾"}
	case hasDistrict:
		return cm.DayTheme{Name: "Artisan Village Adventure", Icon: "🛍️"}
	case hasNature:
		return cm.DayTheme{Name: "Forest & Valley Escape", Icon: "🌲"}
	default:
		return cm.DayTheme{Name: "Russian River Discovery", Icon: "✨"}
	}
}
