package profile

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

// ValidateOptions controla las reglas opcionales.
type ValidateOptions struct {
	// StrictGrade exige grado 0 cuando no hay luxación de rótula.
	// Apagado por defecto: los perfiles existentes no lo cumplen siempre.
	StrictGrade bool
}

func (h HealthConditions) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.PatellarLuxationGrade, validation.Min(0), validation.Max(4)),
	)
}

// Validate valida el perfil. Los errores envuelven ErrInvalidInput.
func Validate(p Profile, opts ValidateOptions) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Age, validation.Min(0.0)),
		validation.Field(&p.Weight, validation.Min(0.0)),
		validation.Field(&p.Gender, validation.Required, validation.In(GenderMale, GenderFemale)),
		validation.Field(&p.ActivityLevel, validation.Required, validation.In(ActivityLow, ActivityMedium, ActivityHigh)),
		validation.Field(&p.NeuterStatus, validation.Required, validation.In(NeuterNeutered, NeuterIntact)),
		validation.Field(&p.HealthConditions),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hc := p.HealthConditions
	if opts.StrictGrade && !hc.PatellarLuxation && hc.PatellarLuxationGrade != 0 {
		return fmt.Errorf("%w: patellar luxation grade must be 0 when patellar luxation is not set", ErrInvalidInput)
	}
	return nil
}
