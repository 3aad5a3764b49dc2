package scan

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pet-nutrition-guide/internal/domain/profile"

	"github.com/go-chi/chi/v5"
)

// MaxImageBytes limita el tamaño de la foto del rótulo.
const MaxImageBytes = 10 << 20

type ProfileSource interface {
	Get(ctx context.Context) (profile.Record, error)
}

func RegisterRoutes(r chi.Router, svc *Service, profiles ProfileSource) {
	r.Post("/scans", createScanHandler(svc, profiles))
}

type IngredientDTO struct {
	Name     string `json:"name"`
	Category string `json:"category" enums:"Green,Yellow,Red"`
	Reason   string `json:"reason"`
}

type ScanResponseDTO struct {
	AttemptID   string          `json:"attempt_id"`
	State       string          `json:"state"`
	Summary     string          `json:"summary"`
	Ingredients []IngredientDTO `json:"ingredients"`
}

func NewScanResponseDTO(a *Attempt) ScanResponseDTO {
	out := ScanResponseDTO{AttemptID: a.ID, State: string(a.State), Ingredients: []IngredientDTO{}}
	if a.Result == nil {
		return out
	}
	out.Summary = a.Result.Summary
	for _, in := range a.Result.Ingredients {
		out.Ingredients = append(out.Ingredients, IngredientDTO{
			Name:     in.Name,
			Category: string(in.Category),
			Reason:   in.Reason,
		})
	}
	return out
}

// createScanHandler godoc
// @Summary Escanear rótulo de alimento
// @Description Envía la foto del rótulo al proveedor de análisis y clasifica cada ingrediente (Green/Yellow/Red) para el perfil actual. Un escaneo nuevo reemplaza al que siga en curso.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Foto del rótulo (image/*)"
// @Success 200 {object} ScanResponseDTO
// @Failure 400 {string} string "imagen inválida / perfil inválido"
// @Failure 404 {string} string "profile not found"
// @Failure 409 {string} string "scan superseded"
// @Failure 502 {string} string "respuesta inválida del proveedor"
// @Failure 503 {string} string "analysis provider not configured"
// @Router /scans [post]
func createScanHandler(svc *Service, profiles ProfileSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := profiles.Get(r.Context())
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				http.Error(w, "profile not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxImageBytes+(1<<20))
		if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		file, hdr, err := r.FormFile("image")
		if err != nil {
			http.Error(w, "image is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
		if err != nil {
			http.Error(w, "cannot read image", http.StatusBadRequest)
			return
		}
		if len(data) > MaxImageBytes {
			http.Error(w, "image too large", http.StatusRequestEntityTooLarge)
			return
		}

		mimeType := strings.TrimSpace(hdr.Header.Get("Content-Type"))
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = http.DetectContentType(data)
		}

		a, err := svc.Scan(r.Context(), rec.ID, rec.Profile, data, mimeType)
		if err != nil {
			http.Error(w, errorMessage(err), StatusFor(err))
			return
		}

		writeJSON(w, http.StatusOK, NewScanResponseDTO(a))
	}
}

// StatusFor traduce un error de escaneo a status HTTP.
func StatusFor(err error) int {
	switch KindOf(err) {
	case FailureValidation:
		return http.StatusBadRequest
	case FailureUnavailable:
		return http.StatusServiceUnavailable
	case FailureSuperseded:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// errorMessage no expone detalles del proveedor al cliente.
func errorMessage(err error) string {
	switch KindOf(err) {
	case FailureValidation:
		return err.Error()
	case FailureUnavailable:
		return ErrProviderUnavailable.Error()
	case FailureSuperseded:
		return "scan superseded"
	case FailureMalformed:
		return ErrMalformedResponse.Error()
	case FailureSchema:
		return ErrSchemaViolation.Error()
	default:
		return ErrProvider.Error()
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
