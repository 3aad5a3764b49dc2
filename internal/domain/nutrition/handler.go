package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"

	"github.com/go-chi/chi/v5"
)

// ProfileSource evita depender del servicio concreto de perfiles.
type ProfileSource interface {
	Get(ctx context.Context) (profile.Record, error)
}

func RegisterRoutes(r chi.Router, rec *Recommender, hz *HazardResolver, cat *catalog.Catalog, profiles ProfileSource) {
	r.Get("/profile/recommendations", recommendationsHandler(rec, profiles))
	r.Get("/profile/hazards", hazardsHandler(hz, profiles))
	r.Get("/catalog", catalogHandler(cat))
}

type recommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type catalogResponse struct {
	Guide    []catalog.GuideEntry `json:"guide"`
	Poisons  catalog.HazardList   `json:"poisons"`
	Cautions catalog.HazardList   `json:"cautions"`
}

// recommendationsHandler godoc
// @Summary Alimentos recomendados (luz verde)
// @Description Nutrientes recomendados según las condiciones de salud del perfil. Sin condiciones devuelve articulaciones, piel y respiratorio (3 ítems c/u).
// @Tags nutrition
// @Produce json
// @Success 200 {object} recommendationsResponse
// @Failure 404 {string} string "profile not found"
// @Failure 500 {string} string "internal error"
// @Router /profile/recommendations [get]
func recommendationsHandler(rec *Recommender, profiles ProfileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadProfile(w, r, profiles)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: rec.Recommend(p)})
	}
}

// hazardsHandler godoc
// @Summary Alimentos a evitar (luz roja)
// @Description Venenos absolutos y precauciones de la raza (siempre completos) más las alergias declaradas, si hay.
// @Tags nutrition
// @Produce json
// @Success 200 {object} HazardsView
// @Failure 404 {string} string "profile not found"
// @Failure 500 {string} string "internal error"
// @Router /profile/hazards [get]
func hazardsHandler(hz *HazardResolver, profiles ProfileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadProfile(w, r, profiles)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, hz.View(p))
	}
}

// catalogHandler godoc
// @Summary Catálogo completo
// @Description Guía nutricional y catálogo de peligros, solo lectura, en orden de declaración.
// @Tags nutrition
// @Produce json
// @Success 200 {object} catalogResponse
// @Router /catalog [get]
func catalogHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse{
			Guide:    cat.Guide(),
			Poisons:  cat.Poisons(),
			Cautions: cat.Cautions(),
		})
	}
}

func loadProfile(w http.ResponseWriter, r *http.Request, profiles ProfileSource) (profile.Profile, bool) {
	rec, err := profiles.Get(r.Context())
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return profile.Profile{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return profile.Profile{}, false
	}
	return rec.Profile, true
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
