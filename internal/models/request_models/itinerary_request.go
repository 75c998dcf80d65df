package request_models

// Interest is one of the guest-selectable interest labels.
type Interest string

const (
	InterestWineTasting       Interest = "Wine Tasting"
	InterestDining            Interest = "Dining"
	InterestNatureHiking      Interest = "Nature & Hiking"
	InterestShopping          Interest = "Shopping"
	InterestSpaWellness       Interest = "Spa & Wellness"
	InterestCoastalAdventures Interest = "Coastal Adventures"
)

// Preferences is the guest-controlled configuration for one generation run.
type Preferences struct {
	Duration       int        `json:"duration"`
	Interests      []Interest `json:"interests"`
	IncludeSweets  bool       `json:"include_sweets"`
	IncludeMarkets bool       `json:"include_markets"`
	GuestName      string     `json:"guest_name"`
}

// Has reports whether the guest selected the given interest.
func (p Preferences) Has(interest Interest) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

type GenerateItineraryRequest struct {
	Preferences
}

type SignatureDayRequest struct {
	ExperienceID string `json:"experience_id"`
	Preferences
}

type ReplaceActivityRequest struct {
	DayIndex      int `json:"day_index"`
	ActivityIndex int `json:"activity_index"`
}

type EmailItineraryRequest struct {
	Email string `json:"email"`
}

type LoginRequest struct {
	Password string `json:"password"`
}
