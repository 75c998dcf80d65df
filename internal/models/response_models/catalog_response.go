package response_models

import "rionido/internal/models/catalog_models"

type ExperienceResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Hours       string `json:"hours,omitempty"`
	Price       string `json:"price,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Zone        string `json:"zone"`
}

type SignatureExperienceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Duration    string   `json:"duration,omitempty"`
	Price       string   `json:"price,omitempty"`
	BestTime    string   `json:"best_time,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	Includes    []string `json:"includes,omitempty"`
	IsExclusive bool     `json:"is_exclusive,omitempty"`
}

// CatalogResponse groups plain catalog items by zone, then by category,
// mirroring the browse-all view of the guest app.
type CatalogResponse map[string]map[string][]ExperienceResponse

func BuildCatalogResponse(catalog *catalog_models.Catalog) CatalogResponse {
	out := make(CatalogResponse)

	add := func(items []catalog_models.CatalogItem) {
		for _, item := range items {
			zone := string(item.Zone)
			if out[zone] == nil {
				out[zone] = make(map[string][]ExperienceResponse)
			}
			cat := string(item.Category)
			out[zone][cat] = append(out[zone][cat], ExperienceResponse{
				Name:        item.Name,
				Category:    cat,
				Description: item.Description,
				Location:    item.Location,
				Hours:       item.Hours,
				Price:       item.Price,
				Rating:      item.Rating,
				Zone:        zone,
			})
		}
	}

	add(catalog.Wineries)
	add(catalog.Restaurants)
	add(catalog.Activities)
	add(catalog.Shops)

	return out
}

func BuildSignatureExperienceResponses(exps []catalog_models.SignatureExperience) []SignatureExperienceResponse {
	out := make([]SignatureExperienceResponse, 0, len(exps))
	for _, e := range exps {
		out = append(out, SignatureExperienceResponse{
			ID:          e.ID,
			Name:        e.Name,
			Tagline:     e.Tagline,
			Description: e.Description,
			Duration:    e.Duration,
			Price:       e.Price,
			BestTime:    e.BestTime,
			Rating:      e.Rating,
			Includes:    e.Includes,
			IsExclusive: e.IsExclusive,
		})
	}
	return out
}
