package healthcheck

import (
	"errors"
	"fmt"
	"time"

	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("checklist submission not found")
)

// ItemID identifica una pregunta del checklist semanal.
// @Enum coughing, limping, hairLoss, panting, badBreath
type ItemID string

const (
	ItemCoughing  ItemID = "coughing"
	ItemLimping   ItemID = "limping"
	ItemHairLoss  ItemID = "hairLoss"
	ItemPanting   ItemID = "panting"
	ItemBadBreath ItemID = "badBreath"
)

type Item struct {
	ID       ItemID          `json:"id"`
	Concern  catalog.Concern `json:"concern"`
	Question string          `json:"question"`
}

var items = []Item{
	{ID: ItemCoughing, Concern: catalog.ConcernRespiratory, Question: "이번 주에 '거위 소리' 같은 기침을 했나요?"},
	{ID: ItemLimping, Concern: catalog.ConcernJoints, Question: "이번 주에 다리를 저는 모습을 보였나요?"},
	{ID: ItemHairLoss, Concern: catalog.ConcernSkin, Question: "새로운 탈모나 피부가 검게 변하는 증상이 있었나요?"},
	{ID: ItemPanting, Concern: catalog.ConcernHeart, Question: "평소보다 숨을 더 헐떡이거나 피곤해 보였나요?"},
	{ID: ItemBadBreath, Concern: catalog.ConcernDental, Question: "입냄새가 심하거나 잇몸 건강에 이상이 있었나요?"},
}

// Items devuelve las cinco preguntas en orden fijo (copia).
func Items() []Item {
	return append([]Item(nil), items...)
}

func knownItem(id ItemID) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// RelevantItems: preguntas cuyas condiciones están activas.
// Un perfil sin flags y con grado 0 ve todas. Con grado > 0 y sin flags no ve ninguna.
func RelevantItems(p profile.Profile) []Item {
	hc := p.HealthConditions
	if hc.Clear() {
		return Items()
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if hc.Has(it.Concern) {
			out = append(out, it)
		}
	}
	return out
}

// WeekID calcula la clave semanal "YYYY-W<n>" en la zona horaria de t.
// n = floor((díaDelAño + díaSemana(1 de enero)) / 7) + 1, con domingo = 0.
func WeekID(t time.Time) string {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	n := (t.YearDay()+int(jan1.Weekday()))/7 + 1
	return fmt.Sprintf("%d-W%d", t.Year(), n)
}

// Submission son las respuestas de una semana para un perfil.
type Submission struct {
	ID          string
	ProfileName string
	Week        string
	Answers     map[ItemID]bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s Submission) Clone() Submission {
	out := s
	if s.Answers != nil {
		out.Answers = make(map[ItemID]bool, len(s.Answers))
		for k, v := range s.Answers {
			out.Answers[k] = v
		}
	}
	return out
}

// Checklist es la vista semanal: preguntas relevantes y, si existe, lo ya respondido.
type Checklist struct {
	Week       string
	Items      []Item
	Submission *Submission
}
