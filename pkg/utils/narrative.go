package utils

import "context"

// NarrativeClientInterface produces the short welcome paragraph placed at the
// top of an emailed itinerary. Implementations call an external model, so the
// concierge treats every failure as "use the stock intro instead".
type NarrativeClientInterface interface {
	GenerateIntro(ctx context.Context, guestName string, dayCount int, highlights []string) (string, error)
}
