package profile

import (
	"slices"
	"time"

	"pet-nutrition-guide/internal/domain/catalog"
)

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel define el nivel de actividad diario.
// @Enum low, medium, high
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// NeuterStatus define si la mascota está castrada.
// @Enum neutered, intact
type NeuterStatus string

const (
	NeuterNeutered NeuterStatus = "neutered"
	NeuterIntact   NeuterStatus = "intact"
)

// HealthConditions son los flags de salud declarados por el dueño.
// PatellarLuxationGrade (0-4) solo tiene sentido si PatellarLuxation es true.
type HealthConditions struct {
	PatellarLuxation      bool
	PatellarLuxationGrade int
	TrachealCollapse      bool
	AlopeciaX             bool
	HeartDisease          bool
	DentalIssues          bool
}

// flag devuelve el campo que activa el concern, o nil si no hay ninguno.
func (h *HealthConditions) flag(c catalog.Concern) *bool {
	switch c {
	case catalog.ConcernJoints:
		return &h.PatellarLuxation
	case catalog.ConcernRespiratory:
		return &h.TrachealCollapse
	case catalog.ConcernSkin:
		return &h.AlopeciaX
	case catalog.ConcernHeart:
		return &h.HeartDisease
	case catalog.ConcernDental:
		return &h.DentalIssues
	}
	return nil
}

// Has indica si el flag asociado al concern está activo.
func (h HealthConditions) Has(c catalog.Concern) bool {
	f := h.flag(c)
	return f != nil && *f
}

// Set activa/desactiva el flag asociado al concern. Concerns desconocidos se ignoran.
func (h *HealthConditions) Set(c catalog.Concern, v bool) {
	if f := h.flag(c); f != nil {
		*f = v
	}
}

// ActiveConcerns devuelve los concerns activos en orden de declaración.
// El grado no es un concern.
func (h HealthConditions) ActiveConcerns() []catalog.Concern {
	out := make([]catalog.Concern, 0)
	for _, c := range catalog.Concerns() {
		if h.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Clear es true si no hay ningún flag activo y el grado es 0.
func (h HealthConditions) Clear() bool {
	return len(h.ActiveConcerns()) == 0 && h.PatellarLuxationGrade == 0
}

// Profile es el perfil de la (única) mascota. El core nunca lo muta.
type Profile struct {
	Name          string
	Age           float64 // años
	Weight        float64 // kg
	Gender        Gender
	ActivityLevel ActivityLevel
	NeuterStatus  NeuterStatus
	CurrentFood   string
	Photo         []byte

	HealthConditions HealthConditions
	KnownAllergies   []string
}

// Clone devuelve una copia profunda.
func (p Profile) Clone() Profile {
	p.Photo = slices.Clone(p.Photo)
	p.KnownAllergies = slices.Clone(p.KnownAllergies)
	return p
}

// Record es el perfil persistido. Se reemplaza completo en cada guardado.
type Record struct {
	ID      string
	Profile Profile

	CreatedAt time.Time
	UpdatedAt time.Time
}
