package catalog_models

// DayTheme is the descriptive label derived from what a day actually holds.
type DayTheme struct {
	Name string
	Icon string
}

// Activity is a catalog offering annotated at placement time with its display
// slot, badge and route-stop ordinal.
type Activity struct {
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

	TimeSlot  string
	Badge     string
	RouteStop int

	HasBreakfast bool
	IsTrail      bool
	IsDistrict   bool
	IsSignature  bool
}

// Day is one planned day of the trip.
type Day struct {
	Day        int
	RouteName  string
	Theme      DayTheme
	Activities []Activity
}

// Itinerary is the ordered day list produced by one generation run.
type Itinerary struct {
	GuestName string
	Days      []Day
}

// ActivityFromItem lifts a catalog item into a placed activity. Slot, badge
// and ordinal are set by the planner.
func ActivityFromItem(item CatalogItem, timeSlot, badge string, routeStop int) Activity {
	return Activity{
		Name:         item.Name,
		Category:     item.Category,
		Description:  item.Description,
		Location:     item.Location,
		Address:      item.Address,
		Phone:        item.Phone,
		Hours:        item.Hours,
		Price:        item.Price,
		Rating:       item.Rating,
		Zone:         item.Zone,
		TimeSlot:     timeSlot,
		Badge:        badge,
		RouteStop:    routeStop,
		HasBreakfast: item.HasBreakfast,
	}
}

// ActivityFromTrail lifts a wine trail into a placed activity.
func ActivityFromTrail(trail WineTrail, timeSlot string, routeStop int) Activity {
	return Activity{
		Name:        trail.Name,
		Category:    CategoryWineTrail,
		Description: trail.Description,
		Zone:        trail.Zone,
		TimeSlot:    timeSlot,
		Badge:       "🍷 Wine Trail",
		RouteStop:   routeStop,
		IsTrail:     true,
	}
}

// ActivityFromDistrict lifts a shopping district into a placed activity.
func ActivityFromDistrict(district ShoppingDistrict, timeSlot string, routeStop int) Activity {
	return Activity{
		Name:        district.Name,
		Category:    CategoryShoppingDistrict,
		Description: district.Description,
		Hours:       district.Hours,
		Address:     district.Address,
		Zone:        district.Zone,
		TimeSlot:    timeSlot,
		Badge:       "🛍️ Shopping District",
		RouteStop:   routeStop,
		IsDistrict:  true,
	}
}

// ActivityFromSignature lifts a signature experience into a placed activity.
func ActivityFromSignature(exp SignatureExperience, timeSlot string, routeStop int) Activity {
	return Activity{
		Name:        exp.Name,
		Category:    CategorySignature,
		Description: exp.Description,
		Price:       exp.Price,
		Rating:      exp.Rating,
		TimeSlot:    timeSlot,
		Badge:       "⭐ Signature Experience",
		RouteStop:   routeStop,
		IsSignature: true,
	}
}

// ContainsName reports whether any activity across the itinerary carries the
// given catalog name.
func (it *Itinerary) ContainsName(name string) bool {
	for i := range it.Days {
		for j := range it.Days[i].Activities {
			if it.Days[i].Activities[j].Name == name {
				return true
			}
		}
	}
	return false
}
