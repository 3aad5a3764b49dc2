package scan

import (
	"errors"
)

var (
	// ErrInvalidInput: problema en la entrada del caller (imagen, mime, perfil).
	ErrInvalidInput = errors.New("invalid input")
	// ErrProvider: falló la llamada externa. El error original queda en la cadena.
	ErrProvider            = errors.New("analysis provider failed")
	ErrProviderUnavailable = errors.New("analysis provider not configured")
	ErrMalformedResponse   = errors.New("malformed response")
	ErrSchemaViolation     = errors.New("schema violation")
	// ErrSuperseded: un escaneo más nuevo reemplazó a este; su resultado se descarta.
	ErrSuperseded = errors.New("scan superseded by a newer request")
)

// Category es la clasificación de seguridad de un ingrediente.
// @Enum Green, Yellow, Red
type Category string

const (
	CategoryGreen  Category = "Green"  // seguro
	CategoryYellow Category = "Yellow" // precaución
	CategoryRed    Category = "Red"    // peligroso
)

// Categories en el orden en que se declaran en el schema.
func Categories() []Category {
	return []Category{CategoryGreen, CategoryYellow, CategoryRed}
}

type Ingredient struct {
	Name     string   `json:"name"`
	Category Category `json:"category" enums:"Green,Yellow,Red"`
	Reason   string   `json:"reason"`
}

// IngredientClassification es el resultado tipado de un escaneo.
// Se devuelve tal cual lo clasificó el proveedor (sin reordenar ni puntuar).
type IngredientClassification struct {
	Summary     string       `json:"summary"`
	Ingredients []Ingredient `json:"ingredients"`
}

// AnalysisRequest es lo que recibe el proveedor externo.
type AnalysisRequest struct {
	Image    []byte
	MIMEType string
	Prompt   string
	Schema   *Schema
}

// FailureKind clasifica un error de escaneo (útil para métricas y respuestas HTTP).
type FailureKind string

const (
	FailureNone        FailureKind = ""
	FailureValidation  FailureKind = "validation"
	FailureUnavailable FailureKind = "unavailable"
	FailureProvider    FailureKind = "provider"
	FailureMalformed   FailureKind = "malformed_response"
	FailureSchema      FailureKind = "schema_violation"
	FailureSuperseded  FailureKind = "superseded"
)

func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrInvalidInput):
		return FailureValidation
	case errors.Is(err, ErrProviderUnavailable):
		return FailureUnavailable
	case errors.Is(err, ErrSuperseded):
		return FailureSuperseded
	case errors.Is(err, ErrMalformedResponse):
		return FailureMalformed
	case errors.Is(err, ErrSchemaViolation):
		return FailureSchema
	default:
		return FailureProvider
	}
}
