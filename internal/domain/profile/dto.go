package profile

import "time"

// HealthConditionsDTO es la forma JSON de los flags de salud.
type HealthConditionsDTO struct {
	PatellarLuxation      bool `json:"patellar_luxation"`
	PatellarLuxationGrade int  `json:"patellar_luxation_grade" minimum:"0" maximum:"4"`
	TrachealCollapse      bool `json:"tracheal_collapse"`
	AlopeciaX             bool `json:"alopecia_x"`
	HeartDisease          bool `json:"heart_disease"`
	DentalIssues          bool `json:"dental_issues"`
}

// ProfileDTO es el cuerpo de PUT /profile y la base de la respuesta.
// photo viaja en base64 (encoding/json sobre []byte).
type ProfileDTO struct {
	Name             string              `json:"name"`
	Age              float64             `json:"age"`
	Weight           float64             `json:"weight"`
	Gender           Gender              `json:"gender" enums:"male,female"`
	ActivityLevel    ActivityLevel       `json:"activity_level" enums:"low,medium,high"`
	NeuterStatus     NeuterStatus        `json:"neuter_status" enums:"neutered,intact"`
	CurrentFood      string              `json:"current_food,omitempty"`
	Photo            []byte              `json:"photo,omitempty" swaggertype:"string" format:"base64"`
	HealthConditions HealthConditionsDTO `json:"health_conditions"`
	KnownAllergies   []string            `json:"known_allergies"`
}

// RecordDTO es la respuesta de GET/PUT /profile.
type RecordDTO struct {
	ID string `json:"id"`
	ProfileDTO
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d ProfileDTO) ToProfile() Profile {
	allergies := d.KnownAllergies
	if allergies == nil {
		allergies = []string{}
	}
	return Profile{
		Name:          d.Name,
		Age:           d.Age,
		Weight:        d.Weight,
		Gender:        d.Gender,
		ActivityLevel: d.ActivityLevel,
		NeuterStatus:  d.NeuterStatus,
		CurrentFood:   d.CurrentFood,
		Photo:         d.Photo,
		HealthConditions: HealthConditions{
			PatellarLuxation:      d.HealthConditions.PatellarLuxation,
			PatellarLuxationGrade: d.HealthConditions.PatellarLuxationGrade,
			TrachealCollapse:      d.HealthConditions.TrachealCollapse,
			AlopeciaX:             d.HealthConditions.AlopeciaX,
			HeartDisease:          d.HealthConditions.HeartDisease,
			DentalIssues:          d.HealthConditions.DentalIssues,
		},
		KnownAllergies: allergies,
	}.Clone()
}

func NewProfileDTO(p Profile) ProfileDTO {
	allergies := p.KnownAllergies
	if allergies == nil {
		allergies = []string{}
	}
	return ProfileDTO{
		Name:          p.Name,
		Age:           p.Age,
		Weight:        p.Weight,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		NeuterStatus:  p.NeuterStatus,
		CurrentFood:   p.CurrentFood,
		Photo:         p.Photo,
		HealthConditions: HealthConditionsDTO{
			PatellarLuxation:      p.HealthConditions.PatellarLuxation,
			PatellarLuxationGrade: p.HealthConditions.PatellarLuxationGrade,
			TrachealCollapse:      p.HealthConditions.TrachealCollapse,
			AlopeciaX:             p.HealthConditions.AlopeciaX,
			HeartDisease:          p.HealthConditions.HeartDisease,
			DentalIssues:          p.HealthConditions.DentalIssues,
		},
		KnownAllergies: allergies,
	}
}

func NewRecordDTO(rec Record) RecordDTO {
	return RecordDTO{
		ID:         rec.ID,
		ProfileDTO: NewProfileDTO(rec.Profile),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
