package response_models

import "rionido/internal/models/catalog_models"

type ThemeResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ActivityResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Hours       string `json:"hours,omitempty"`
	Price       string `json:"price,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Zone        string `json:"zone,omitempty"`

	TimeSlot  string `json:"time_slot"`
	Badge     string `json:"badge"`
	RouteStop int    `json:"route_stop"`

	IsTrail     bool `json:"is_trail,omitempty"`
	IsDistrict  bool `json:"is_district,omitempty"`
	IsSignature bool `json:"is_signature,omitempty"`

	// DriveMinutes is the estimated leg from the previous stop's zone.
	DriveMinutes int `json:"drive_minutes,omitempty"`
}

type DayResponse struct {
	Day        int                `json:"day"`
	RouteName  string             `json:"route_name"`
	Theme      ThemeResponse      `json:"theme"`
	Activities []ActivityResponse `json:"activities"`
}

type ItineraryResponse struct {
	SessionID string        `json:"session_id,omitempty"`
	GuestName string        `json:"guest_name,omitempty"`
	Days      []DayResponse `json:"days"`
	Swapped   *bool         `json:"swapped,omitempty"`
}

// BuildItineraryResponse flattens the domain itinerary for the API, adding
// zone-to-zone drive estimates between consecutive stops.
func BuildItineraryResponse(it *catalog_models.Itinerary, sessionID string) *ItineraryResponse {
	out := &ItineraryResponse{
		SessionID: sessionID,
		GuestName: it.GuestName,
		Days:      make([]DayResponse, 0, len(it.Days)),
	}

	for _, day := range it.Days {
		dr := DayResponse{
			Day:       day.Day,
			RouteName: day.RouteName,
			Theme:     ThemeResponse{Name: day.Theme.Name, Icon: day.Theme.Icon},
		}

		var prevZone catalog_models.Zone
		for i, a := range day.Activities {
			ar := ActivityResponse{
				Name:        a.Name,
				Category:    string(a.Category),
				Description: a.Description,
				Location:    a.Location,
				Address:     a.Address,
				Phone:       a.Phone,
				Hours:       a.Hours,
				Price:       a.Price,
				Rating:      a.Rating,
				Zone:        string(a.Zone),
				TimeSlot:    a.TimeSlot,
				Badge:       a.Badge,
				RouteStop:   a.RouteStop,
				IsTrail:     a.IsTrail,
				IsDistrict:  a.IsDistrict,
				IsSignature: a.IsSignature,
			}
			if i > 0 {
				if mins, ok := catalog_models.EstimateDriveTime(prevZone, a.Zone); ok {
					ar.DriveMinutes = mins
				}
			}
			prevZone = a.Zone
			dr.Activities = append(dr.Activities, ar)
		}

		out.Days = append(out.Days, dr)
	}

	return out
}
