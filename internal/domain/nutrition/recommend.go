package nutrition

import (
	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
)

const (
	defaultItemsPerEntry = 3
	activeItemsPerEntry  = 4
)

// defaultConcerns es el perfil conservador cuando no hay condiciones declaradas.
var defaultConcerns = []catalog.Concern{
	catalog.ConcernJoints,
	catalog.ConcernSkin,
	catalog.ConcernRespiratory,
}

// Recommendation es una entrada de la vista "luz verde".
type Recommendation struct {
	Concern catalog.Concern `json:"concern"`
	Name    string          `json:"name"`
	Items   []string        `json:"items"`
}

// Recommender deriva los nutrientes recomendados a partir de los flags de salud.
// Es puro: no depende de alergias, edad ni peso.
type Recommender struct {
	catalog *catalog.Catalog
}

func NewRecommender(c *catalog.Catalog) *Recommender {
	return &Recommender{catalog: c}
}

func (r *Recommender) Recommend(p profile.Profile) []Recommendation {
	active := p.HealthConditions.ActiveConcerns()

	if len(active) == 0 {
		out := make([]Recommendation, 0, len(defaultConcerns))
		for _, c := range defaultConcerns {
			e, ok := r.catalog.Entry(c)
			if !ok {
				continue
			}
			out = append(out, toRecommendation(e, defaultItemsPerEntry))
		}
		return out
	}

	isActive := make(map[catalog.Concern]bool, len(active))
	for _, c := range active {
		isActive[c] = true
	}

	out := make([]Recommendation, 0, len(active))
	for _, e := range r.catalog.Guide() {
		if isActive[e.Concern] {
			out = append(out, toRecommendation(e, activeItemsPerEntry))
		}
	}
	return out
}

func toRecommendation(e catalog.GuideEntry, n int) Recommendation {
	return Recommendation{
		Concern: e.Concern,
		Name:    e.DisplayName,
		Items:   e.FirstItems(n),
	}
}
