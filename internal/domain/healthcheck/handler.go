package healthcheck

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-nutrition-guide/internal/domain/profile"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/healthcheck", getChecklistHandler(svc))
	r.Post("/healthcheck", submitChecklistHandler(svc))
	r.Get("/healthcheck/current", currentSubmissionHandler(svc))
}

type ChecklistDTO struct {
	Week      string          `json:"week"`
	Items     []Item          `json:"items"`
	Submitted bool            `json:"submitted"`
	Answers   map[ItemID]bool `json:"answers,omitempty"`
}

func NewChecklistDTO(c Checklist) ChecklistDTO {
	out := ChecklistDTO{Week: c.Week, Items: c.Items}
	if c.Submission != nil {
		out.Submitted = true
		out.Answers = c.Submission.Answers
	}
	return out
}

type SubmitRequestDTO struct {
	Answers map[ItemID]bool `json:"answers"`
}

type SubmissionDTO struct {
	ID        string          `json:"id"`
	Week      string          `json:"week"`
	Answers   map[ItemID]bool `json:"answers"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// getChecklistHandler godoc
// @Summary Checklist semanal
// @Description Preguntas relevantes para las condiciones del perfil y las respuestas de esta semana, si ya se enviaron.
// @Tags healthcheck
// @Produce json
// @Success 200 {object} ChecklistDTO
// @Failure 404 {string} string "profile not found"
// @Failure 500 {string} string "internal error"
// @Router /healthcheck [get]
func getChecklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Checklist(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NewChecklistDTO(c))
	}
}

// submitChecklistHandler godoc
// @Summary Enviar checklist semanal
// @Description Guarda las respuestas de la semana actual. Reenviar reemplaza las anteriores.
// @Tags healthcheck
// @Accept json
// @Produce json
// @Param payload body SubmitRequestDTO true "Respuestas por ítem"
// @Success 200 {object} SubmissionDTO
// @Failure 400 {string} string "invalid json / ítems desconocidos"
// @Failure 404 {string} string "profile not found"
// @Failure 500 {string} string "internal error"
// @Router /healthcheck [post]
func submitChecklistHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req SubmitRequestDTO
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sub, err := svc.Submit(r.Context(), req.Answers)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSubmissionDTO(sub))
	}
}

// currentSubmissionHandler godoc
// @Summary Respuestas de esta semana
// @Description Devuelve la submission de la semana actual del perfil.
// @Tags healthcheck
// @Produce json
// @Success 200 {object} SubmissionDTO
// @Failure 404 {string} string "profile not found / checklist submission not found"
// @Failure 500 {string} string "internal error"
// @Router /healthcheck/current [get]
func currentSubmissionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := svc.Current(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSubmissionDTO(sub))
	}
}

func toSubmissionDTO(sub Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:        sub.ID,
		Week:      sub.Week,
		Answers:   sub.Answers,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, profile.ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
