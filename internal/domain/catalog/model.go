package catalog

import (
	"errors"
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Concern identifica una categoría de la guía nutricional.
// @Enum joints, respiratory, skin, heart, dental
type Concern string

const (
	ConcernJoints      Concern = "joints"
	ConcernRespiratory Concern = "respiratory"
	ConcernSkin        Concern = "skin"
	ConcernHeart       Concern = "heart"
	ConcernDental      Concern = "dental"
)

type concernRow struct {
	concern Concern
	label   string
}

// concernTable: concern <-> etiqueta coreana. El orden de la tabla es el orden de declaración de la guía.
var concernTable = []concernRow{
	{ConcernJoints, "슬개골 탈구"},
	{ConcernRespiratory, "기관지 협착증"},
	{ConcernSkin, "알로페시아 X (블랙스킨병)"},
	{ConcernHeart, "심장 질환"},
	{ConcernDental, "치아 문제"},
}

// Concerns devuelve todos los concerns en orden de declaración.
func Concerns() []Concern {
	out := make([]Concern, 0, len(concernTable))
	for _, row := range concernTable {
		out = append(out, row.concern)
	}
	return out
}

func (c Concern) Valid() bool {
	_, ok := c.row()
	return ok
}

// ConditionLabel es el nombre coreano de la condición, usado en el digest del perfil.
func (c Concern) ConditionLabel() string {
	row, ok := c.row()
	if !ok {
		return string(c)
	}
	return row.label
}

func (c Concern) row() (concernRow, bool) {
	for _, row := range concernTable {
		if row.concern == c {
			return row, true
		}
	}
	return concernRow{}, false
}

// GuideEntry es una categoría de soporte nutricional con sus ítems recomendados.
// El orden de Items es significativo.
type GuideEntry struct {
	Concern     Concern  `json:"concern" yaml:"concern"`
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	PromptLabel string   `json:"prompt_label" yaml:"prompt_label"`
	Items       []string `json:"items" yaml:"items"`
}

// FirstItems devuelve hasta n ítems (copia).
func (e GuideEntry) FirstItems(n int) []string {
	if n > len(e.Items) {
		n = len(e.Items)
	}
	if n < 0 {
		n = 0
	}
	return slices.Clone(e.Items[:n])
}

func (e GuideEntry) clone() GuideEntry {
	e.Items = slices.Clone(e.Items)
	return e
}

func (e GuideEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Concern, validation.Required, validation.By(func(v any) error {
			if c, _ := v.(Concern); !c.Valid() {
				return fmt.Errorf("unknown concern %q", c)
			}
			return nil
		})),
		validation.Field(&e.DisplayName, validation.Required),
		validation.Field(&e.PromptLabel, validation.Required),
		validation.Field(&e.Items, validation.Required, validation.Each(validation.Required)),
	)
}

// HazardList es una lista fija de alimentos a evitar.
type HazardList struct {
	Name        string   `json:"name" yaml:"name"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Items       []string `json:"items" yaml:"items"`
}

func (h HazardList) clone() HazardList {
	h.Items = slices.Clone(h.Items)
	return h
}

func (h HazardList) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.DisplayName, validation.Required),
		validation.Field(&h.Items, validation.Required, validation.Each(validation.Required)),
	)
}

// Catalog agrupa la guía nutricional y el catálogo de peligros.
// Es inmutable: todos los accesores devuelven copias.
type Catalog struct {
	guide    []GuideEntry
	poisons  HazardList
	cautions HazardList
}

// New valida y copia los datos. La guía debe contener cada concern exactamente una vez;
// el orden recibido se conserva como orden de declaración.
func New(guide []GuideEntry, poisons, cautions HazardList) (*Catalog, error) {
	seen := map[Concern]struct{}{}
	for i, e := range guide {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: guide[%d]: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := seen[e.Concern]; dup {
			return nil, fmt.Errorf("%w: duplicated concern %q", ErrInvalidCatalog, e.Concern)
		}
		seen[e.Concern] = struct{}{}
	}
	for _, c := range Concerns() {
		if _, ok := seen[c]; !ok {
			return nil, fmt.Errorf("%w: missing concern %q", ErrInvalidCatalog, c)
		}
	}
	if err := poisons.Validate(); err != nil {
		return nil, fmt.Errorf("%w: poisons: %v", ErrInvalidCatalog, err)
	}
	if err := cautions.Validate(); err != nil {
		return nil, fmt.Errorf("%w: cautions: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		guide:    make([]GuideEntry, 0, len(guide)),
		poisons:  poisons.clone(),
		cautions: cautions.clone(),
	}
	for _, e := range guide {
		c.guide = append(c.guide, e.clone())
	}
	return c, nil
}

// Guide devuelve las entradas en orden de declaración.
func (c *Catalog) Guide() []GuideEntry {
	out := make([]GuideEntry, 0, len(c.guide))
	for _, e := range c.guide {
		out = append(out, e.clone())
	}
	return out
}

func (c *Catalog) Entry(concern Concern) (GuideEntry, bool) {
	for _, e := range c.guide {
		if e.Concern == concern {
			return e.clone(), true
		}
	}
	return GuideEntry{}, false
}

// Poisons: venenos absolutos (independientes de la raza).
func (c *Catalog) Poisons() HazardList { return c.poisons.clone() }

// Cautions: precauciones específicas de la raza.
func (c *Catalog) Cautions() HazardList { return c.cautions.clone() }
