package nutrition

import (
	"slices"

	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
)

// Hazards es la vista "luz roja".
// Poisons y Cautions son siempre el catálogo completo; Allergens solo si el perfil declara alergias.
// No se deduplican alergias que repitan ítems del catálogo.
type Hazards struct {
	Poisons   []string
	Cautions  []string
	Allergens []string
}

const allergenSectionName = "알고 있는 알러지 유발 식품"

// HazardSection es una lista a evitar con su título.
type HazardSection struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// HazardsView es la vista "luz roja" que se entrega por HTTP y MCP.
type HazardsView struct {
	Poisons   HazardSection  `json:"poisons"`
	Cautions  HazardSection  `json:"cautions"`
	Allergens *HazardSection `json:"allergens,omitempty"`
}

type HazardResolver struct {
	catalog *catalog.Catalog
}

func NewHazardResolver(c *catalog.Catalog) *HazardResolver {
	return &HazardResolver{catalog: c}
}

func (h *HazardResolver) Hazards(p profile.Profile) Hazards {
	out := Hazards{
		Poisons:  h.catalog.Poisons().Items,
		Cautions: h.catalog.Cautions().Items,
	}
	if len(p.KnownAllergies) > 0 {
		out.Allergens = slices.Clone(p.KnownAllergies)
	}
	return out
}

// View arma la vista con los títulos del catálogo. Allergens es nil sin alergias declaradas.
func (h *HazardResolver) View(p profile.Profile) HazardsView {
	hz := h.Hazards(p)
	out := HazardsView{
		Poisons:  HazardSection{Name: h.catalog.Poisons().DisplayName, Items: hz.Poisons},
		Cautions: HazardSection{Name: h.catalog.Cautions().DisplayName, Items: hz.Cautions},
	}
	if len(hz.Allergens) > 0 {
		out.Allergens = &HazardSection{Name: allergenSectionName, Items: hz.Allergens}
	}
	return out
}
