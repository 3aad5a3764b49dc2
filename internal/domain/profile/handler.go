package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/profile", getProfileHandler(svc))
	r.Put("/profile", saveProfileHandler(svc))
}

// getProfileHandler godoc
// @Summary Obtener perfil
// @Description Devuelve el perfil de la mascota. 404 si todavía no se completó el onboarding.
// @Tags profile
// @Produce json
// @Success 200 {object} RecordDTO
// @Failure 404 {string} string "profile not found"
// @Failure 500 {string} string "internal error"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context())
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, NewRecordDTO(rec))
	}
}

// saveProfileHandler godoc
// @Summary Guardar perfil
// @Description Reemplaza el perfil completo (no hay actualización parcial). Crea el perfil en el primer guardado.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body ProfileDTO true "Perfil completo"
// @Success 200 {object} RecordDTO
// @Failure 400 {string} string "invalid json / reglas de validación"
// @Failure 500 {string} string "internal error"
// @Router /profile [put]
func saveProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req ProfileDTO
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Save(r.Context(), req.ToProfile())
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, NewRecordDTO(rec))
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
