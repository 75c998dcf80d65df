package services

import (
	"strings"

	cm "rionido/internal/models/catalog_models"
	"rionido/pkg/utils"
)

// GenerationContext carries the mutable bookkeeping of one generation run:
// which names are already placed, which route themes were taken, and the
// once-per-trip quota flags. It is owned by a single call and never shared.
type GenerationContext struct {
	Catalog *cm.Catalog
	Rng     utils.RandomSource

	UsedNames  map[string]bool
	UsedRoutes map[string]bool

	WineTrailUsed        bool
	ShoppingDistrictUsed bool
}

func NewGenerationContext(catalog *cm.Catalog, rng utils.RandomSource) *GenerationContext {
	return &GenerationContext{
		Catalog:    catalog,
		Rng:        rng,
		UsedNames:  make(map[string]bool),
		UsedRoutes: make(map[string]bool),
	}
}

func (g *GenerationContext) markUsed(name string) {
	g.UsedNames[name] = true
}

// pickItem draws one element uniformly at random. Callers guarantee the slice
// is non-empty.
func (g *GenerationContext) pickItem(items []cm.CatalogItem) cm.CatalogItem {
	return items[g.Rng.Intn(len(items))]
}

// selectUnused is the core selection primitive. It filters pool to unused
// items in the compatible-zone expansion of routeZones that pass the
// predicate, preferring items open during slot and relaxing the hours check
// only when that leaves nothing. It never widens beyond compatible zones; a
// nil result leaves the used set untouched.
func (g *GenerationContext) selectUnused(pool []cm.CatalogItem, routeZones []cm.Zone, pred func(cm.CatalogItem) bool, slot string) *cm.CatalogItem {
	compatible := cm.CompatibleZones(routeZones)

	eligible := func(item cm.CatalogItem, checkHours bool) bool {
		if !compatible[item.Zone] || g.UsedNames[item.Name] {
			return false
		}
		if pred != nil && !pred(item) {
			return false
		}
		if checkHours && slot != "" && !utils.IsOpenDuringSlot(item.Hours, slot) {
			return false
		}
		return true
	}

	var available []cm.CatalogItem
	for _, item := range pool {
		if eligible(item, true) {
			available = append(available, item)
		}
	}

	if len(available) == 0 && slot != "" {
		for _, item := range pool {
			if eligible(item, false) {
				available = append(available, item)
			}
		}
	}

	if len(available) == 0 {
		return nil
	}

	selected := g.pickItem(available)
	g.markUsed(selected.Name)
	return &selected
}

// selectAnywhere relaxes every zone and hours constraint. Used only by the
// named guarantee steps (lodge breakfast fallback, mandatory lunch) and the
// signature-day planner.
func (g *GenerationContext) selectAnywhere(pool []cm.CatalogItem, pred func(cm.CatalogItem) bool) *cm.CatalogItem {
	var available []cm.CatalogItem
	for _, item := range pool {
		if g.UsedNames[item.Name] {
			continue
		}
		if pred != nil && !pred(item) {
			continue
		}
		available = append(available, item)
	}
	if len(available) == 0 {
		return nil
	}

	selected := g.pickItem(available)
	g.markUsed(selected.Name)
	return &selected
}

// activityType buckets an activity by keyword match on its name so a day does
// not double up on the same kind of outing. Best effort over free text.
type activityType string

const (
	typeWaterSports activityType = "water_sports"
	typeHiking      activityType = "hiking"
	typeCoastal     activityType = "coastal"
	typeWellness    activityType = "wellness"
	typeOther       activityType = "other"
)

func classifyActivity(name string) activityType {
	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "canoe", "kayak", "paddle"):
		return typeWaterSports
	case containsAny(lower, "hike", "trail", "redwood", "preserve"):
		return typeHiking
	case containsAny(lower, "beach", "coast"):
		return typeCoastal
	case containsAny(lower, "spa", "wellness"):
		return typeWellness
	default:
		return typeOther
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
