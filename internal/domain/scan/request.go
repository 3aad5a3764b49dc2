package scan

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"pet-nutrition-guide/internal/domain/catalog"
	"pet-nutrition-guide/internal/domain/profile"
)

const (
	noConcernsSentinel  = "특별한 건강 우려 없음"
	noAllergiesSentinel = "없음"
)

var promptTemplate = template.Must(template.New("prompt").Parse(`당신은 포메라니안 전문 수의 영양학 전문가입니다.
제공된 이미지의 성분표를 다음 프로필을 가진 포메라니안을 위해 분석해주세요:
- 나이: {{.Age}}살
- 체중: {{.Weight}}kg
- 성별: {{.Gender}}
- 활동량: {{.ActivityLevel}}
- 건강 상태: {{.Conditions}}
- 알려진 알러지: {{.Allergies}}

참고 정보:
- 일반적으로 추천되는 영양소/식품:
{{- range .Guide}}
  - {{.Label}}: {{.Items}}
{{- end}}
- 피해야 할 식품:
  - {{.Poisons.Label}}: {{.Poisons.Items}}
  - {{.Cautions.Label}}: {{.Cautions.Items}}. 특히 고지방 음식은 췌장염 위험을 높일 수 있으니 주의.

과업:
1. 이미지에서 모든 성분을 식별합니다.
2. 각 성분에 대해, 이 포메라니안의 특정 프로필과 일반적인 포메라니안 가이드라인을 기반으로 'Green'(안전), 'Yellow'(주의), 'Red'(위험)으로 분류합니다.
3. 각 분류에 대한 간결한 '이유'를 제공합니다. 특히 Yellow와 Red 항목에 대해, 강아지의 건강 프로필(예: 기관지 협착증, 알로페시아X)과 관련이 있다면 명확하게 연결지어 설명합니다.
4. 이 제품이 이 특정 포메라니안에게 추천되는지에 대한 간략한 전체 '요약'을 작성합니다.
5. 제공된 스키마와 일치하는 유효한 JSON 객체만 반환합니다. 다른 텍스트나 마크다운 서식을 포함하지 마세요.
`))

type promptLine struct {
	Label string
	Items string
}

type promptData struct {
	Age           string
	Weight        string
	Gender        string
	ActivityLevel string
	Conditions    string
	Allergies     string
	Guide         []promptLine
	Poisons       promptLine
	Cautions      promptLine
}

// Contract construye requests deterministas y valida respuestas.
// No guarda estado entre llamadas.
type Contract struct {
	catalog *catalog.Catalog
	opts    profile.ValidateOptions
}

func NewContract(c *catalog.Catalog, opts profile.ValidateOptions) *Contract {
	return &Contract{catalog: c, opts: opts}
}

// BuildRequest arma el request para el proveedor. Siempre incluye el catálogo completo,
// no solo las condiciones activas, para que el clasificador razone sobre todo.
func (c *Contract) BuildRequest(p profile.Profile, image []byte, mimeType string) (AnalysisRequest, error) {
	if len(image) == 0 {
		return AnalysisRequest{}, fmt.Errorf("%w: image is empty", ErrInvalidInput)
	}
	mimeType = strings.TrimSpace(mimeType)
	if !strings.HasPrefix(mimeType, "image/") {
		return AnalysisRequest{}, fmt.Errorf("%w: mime type %q is not an image", ErrInvalidInput, mimeType)
	}
	if err := profile.Validate(p, c.opts); err != nil {
		return AnalysisRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	prompt, err := c.Prompt(p)
	if err != nil {
		return AnalysisRequest{}, err
	}

	return AnalysisRequest{
		Image:    append([]byte(nil), image...),
		MIMEType: mimeType,
		Prompt:   prompt,
		Schema:   ResponseSchema(),
	}, nil
}

// Prompt genera el texto de instrucciones para el perfil dado.
func (c *Contract) Prompt(p profile.Profile) (string, error) {
	data := promptData{
		Age:           formatNumber(p.Age),
		Weight:        formatNumber(p.Weight),
		Gender:        genderLabel(p.Gender),
		ActivityLevel: string(p.ActivityLevel),
		Conditions:    conditionsDigest(p),
		Allergies:     allergiesDigest(p),
	}
	for _, e := range c.catalog.Guide() {
		data.Guide = append(data.Guide, promptLine{Label: e.PromptLabel, Items: strings.Join(e.Items, ", ")})
	}
	poisons, cautions := c.catalog.Poisons(), c.catalog.Cautions()
	data.Poisons = promptLine{Label: poisons.DisplayName, Items: strings.Join(poisons.Items, ", ")}
	data.Cautions = promptLine{Label: cautions.DisplayName, Items: strings.Join(cautions.Items, ", ")}

	var sb strings.Builder
	if err := promptTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}

// conditionsDigest: condiciones activas con etiqueta coreana, o el centinela.
func conditionsDigest(p profile.Profile) string {
	active := p.HealthConditions.ActiveConcerns()
	if len(active) == 0 {
		return noConcernsSentinel
	}
	labels := make([]string, 0, len(active))
	for _, c := range active {
		labels = append(labels, c.ConditionLabel())
	}
	return strings.Join(labels, ", ")
}

func allergiesDigest(p profile.Profile) string {
	if len(p.KnownAllergies) == 0 {
		return noAllergiesSentinel
	}
	return strings.Join(p.KnownAllergies, ", ")
}

func genderLabel(g profile.Gender) string {
	if g == profile.GenderMale {
		return "남아"
	}
	return "여아"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
