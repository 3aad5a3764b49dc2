package scan

import (
	"bytes"
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// wire* usan punteros para distinguir "campo ausente" de "campo vacío".
type wireIngredient struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Reason   *string `json:"reason"`
}

func (i wireIngredient) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.NotNil),
		validation.Field(&i.Category,
			validation.NotNil,
			validation.Required,
			validation.In(string(CategoryGreen), string(CategoryYellow), string(CategoryRed)),
		),
		validation.Field(&i.Reason, validation.NotNil),
	)
}

type wireClassification struct {
	Summary     *string          `json:"summary"`
	Ingredients []wireIngredient `json:"ingredients"`
}

func (c wireClassification) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Summary, validation.NotNil),
		validation.Field(&c.Ingredients, validation.NotNil),
	)
}

// ParseResponse es una compuerta estructural: no reinterpreta ni reordena la clasificación.
func ParseResponse(raw []byte) (IngredientClassification, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !json.Valid(raw) {
		return IngredientClassification{}, ErrMalformedResponse
	}

	var w wireClassification
	if err := json.Unmarshal(raw, &w); err != nil {
		// JSON válido pero con tipos que no encajan (ej: summary numérico, raíz array)
		return IngredientClassification{}, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if err := w.Validate(); err != nil {
		return IngredientClassification{}, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	out := IngredientClassification{
		Summary:     *w.Summary,
		Ingredients: make([]Ingredient, 0, len(w.Ingredients)),
	}
	for _, in := range w.Ingredients {
		out.Ingredients = append(out.Ingredients, Ingredient{
			Name:     *in.Name,
			Category: Category(*in.Category),
			Reason:   *in.Reason,
		})
	}
	return out, nil
}
