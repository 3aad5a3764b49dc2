package scan

// SchemaType es el subconjunto de tipos que usa el contrato.
type SchemaType string

const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema describe la forma de respuesta exigida al proveedor.
// Es neutral: cada adapter lo traduce a su formato (genai.Schema, JSON Schema, ...).
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	// PropertyOrder fija el orden de Properties para salidas deterministas.
	PropertyOrder []string
	Items         *Schema
	Enum          []string
	Required      []string
}

// ResponseSchema declara el schema exacto de IngredientClassification.
func ResponseSchema() *Schema {
	categories := make([]string, 0, 3)
	for _, c := range Categories() {
		categories = append(categories, string(c))
	}

	ingredient := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"name": {Type: TypeString, Description: "성분명입니다."},
			"category": {
				Type:        TypeString,
				Enum:        categories,
				Description: "성분의 안전도 분류입니다 (Green: 안전, Yellow: 주의, Red: 위험).",
			},
			"reason": {Type: TypeString, Description: "분류에 대한 이유입니다."},
		},
		PropertyOrder: []string{"name", "category", "reason"},
		Required:      []string{"name", "category", "reason"},
	}

	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"summary":     {Type: TypeString, Description: "제품에 대한 전반적인 요약입니다."},
			"ingredients": {Type: TypeArray, Items: ingredient},
		},
		PropertyOrder: []string{"summary", "ingredients"},
		Required:      []string{"summary", "ingredients"},
	}
}

// JSONSchema devuelve el schema como JSON Schema (para proveedores HTTP genéricos).
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Enum) > 0 {
		out["enum"] = append([]string(nil), s.Enum...)
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	return out
}
