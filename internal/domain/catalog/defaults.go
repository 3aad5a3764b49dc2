package catalog

// Default construye el catálogo incorporado (guía para pomerania).
// Se llama una vez al arrancar y se inyecta en los motores.
func Default() *Catalog {
	c, err := New(defaultGuide(), defaultPoisons(), defaultCautions())
	if err != nil {
		// datos fijos: si falla es un bug de programación
		panic(err)
	}
	return c
}

func defaultGuide() []GuideEntry {
	return []GuideEntry{
		{
			Concern:     ConcernJoints,
			Name:        "Joint Support",
			DisplayName: "관절 건강",
			PromptLabel: "관절 (슬개골 탈구)",
			Items:       []string{"Glucosamine", "Chondroitin", "MSM", "Green-lipped Mussel", "Omega-3", "Salmon"},
		},
		{
			Concern:     ConcernRespiratory,
			Name:        "Respiratory & Trachea Support",
			DisplayName: "호흡기 & 기관지 건강",
			PromptLabel: "호흡기 (기관지 협착증)",
			Items:       []string{"Omega-3", "Honey (small amounts)", "Vitamin C", "Hydrolyzed proteins", "Duck"},
		},
		{
			Concern:     ConcernSkin,
			Name:        "Skin & Coat Health (Alopecia X Care)",
			DisplayName: "피부 & 피모 건강 (블랙스킨 케어)",
			PromptLabel: "피부/피모 (알로페시아 X)",
			Items:       []string{"Omega-3 & 6", "Biotin", "Zinc", "High-quality protein (e.g., salmon, duck)", "Flaxseed"},
		},
		{
			Concern:     ConcernHeart,
			Name:        "Heart Health",
			DisplayName: "심장 건강",
			PromptLabel: "심장",
			Items:       []string{"Coenzyme Q10", "L-Carnitine", "Taurine", "Omega-3", "Low-sodium chicken breast", "Spinach"},
		},
		{
			Concern:     ConcernDental,
			Name:        "Dental Health",
			DisplayName: "치아 건강",
			PromptLabel: "치아",
			Items:       []string{"SHMP", "Probiotics", "Parsley", "Kelp", "Crunchy kibble"},
		},
	}
}

func defaultPoisons() HazardList {
	return HazardList{
		Name:        "Absolute Poisons",
		DisplayName: "절대 금지 식품",
		Items:       []string{"Grapes/Raisins", "Onions", "Garlic", "Chocolate", "Macadamia Nuts", "Xylitol", "Avocado"},
	}
}

func defaultCautions() HazardList {
	return HazardList{
		Name:        "Pomeranian-Specific Cautions",
		DisplayName: "포메라니안 특별 주의 식품",
		Items:       []string{"High-fat foods (pancreatitis risk)", "Cooked bones", "High-sodium foods", "Artificial additives", "Corn", "Soy", "Wheat"},
	}
}
