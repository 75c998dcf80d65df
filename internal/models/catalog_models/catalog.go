package catalog_models

// CatalogItem is one offering available for scheduling. Items are immutable;
// Name is the de-duplication key across a whole itinerary.
type CatalogItem struct {
	Name        string
	Category    Category
	Description string
	Location    string
	Address     string
	Phone       string
	Hours       string
	Price       string
	Rating      string
	Zone        Zone

	HasBreakfast    bool
	IsGrazeFallback bool
}

// TrailStop is one winery on a wine trail.
type TrailStop struct {
	Name  string
	Blurb string
}

// WineTrail is a multi-stop tasting route, itinerary-scoped to one use on
// short trips.
type WineTrail struct {
	Name           string
	Description    string
	ExclusivePerks string
	Zone           Zone
	Wineries       []TrailStop
}

// ShoppingDistrict is a multi-stop shopping area with the same quota rules as
// wine trails.
type ShoppingDistrict struct {
	Name        string
	Description string
	Highlights  []string
	Hours       string
	Address     string
	Zone        Zone
}

// SignatureExperience is a premium bookable package. It carries no zone and
// is exempt from zone-compatibility and replacement logic.
type SignatureExperience struct {
	ID          string
	Name        string
	Tagline     string
	Description string
	Duration    string
	Price       string
	BestTime    string
	Rating      string
	Includes    []string
	IsExclusive bool
}

// TrailRecommendation pairs a route theme with its preferred wine trail.
type TrailRecommendation struct {
	TrailName string
	TimeSlot  string
}

// DistrictRecommendation pairs a route theme with its preferred shopping
// district.
type DistrictRecommendation struct {
	DistrictName string
	TimeSlot     string
}

// RouteTheme is a preset pairing of compatible zones with an optional
// recommended wine trail or shopping district, selected once per day.
type RouteTheme struct {
	Name           string
	Theme          DayTheme
	Zones          []Zone
	TrailPick      *TrailRecommendation
	DistrictPick   *DistrictRecommendation
}

// Catalog bundles every read-only collection the engine selects from. Loaded
// once at startup and never mutated afterwards.
type Catalog struct {
	Wineries             []CatalogItem
	Restaurants          []CatalogItem
	Activities           []CatalogItem
	Shops                []CatalogItem
	WineTrails           []WineTrail
	ShoppingDistricts    []ShoppingDistrict
	SignatureExperiences []SignatureExperience
	RouteThemes          []RouteTheme
}

// Collection returns the named item collection, or nil for the special
// collections that are not plain catalog items.
func (c *Catalog) Collection(name Collection) []CatalogItem {
	switch name {
	case CollectionWineries:
		return c.Wineries
	case CollectionRestaurants:
		return c.Restaurants
	case CollectionActivities:
		return c.Activities
	case CollectionShops:
		return c.Shops
	default:
		return nil
	}
}

// FindTrail looks a wine trail up by name.
func (c *Catalog) FindTrail(name string) *WineTrail {
	for i := range c.WineTrails {
		if c.WineTrails[i].Name == name {
			return &c.WineTrails[i]
		}
	}
	return nil
}

// FindDistrict looks a shopping district up by name.
func (c *Catalog) FindDistrict(name string) *ShoppingDistrict {
	for i := range c.ShoppingDistricts {
		if c.ShoppingDistricts[i].Name == name {
			return &c.ShoppingDistricts[i]
		}
	}
	return nil
}

// FindSignatureExperience looks a signature experience up by id.
func (c *Catalog) FindSignatureExperience(id string) *SignatureExperience {
	for i := range c.SignatureExperiences {
		if c.SignatureExperiences[i].ID == id {
			return &c.SignatureExperiences[i]
		}
	}
	return nil
}
