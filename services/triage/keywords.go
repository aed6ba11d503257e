package triage

import (
	"strings"

	"medigo/models"
)

// Life-threatening indicators. Only the generation path may label a message
// "urgent", and the prompt restricts that label to these signs.
var urgentIndicators = []string{
	"chest pain",
	"severe bleeding",
	"breathing difficulty",
	"difficulty breathing",
	"trouble breathing",
	"unconscious",
	"unconsciousness",
}

// DefaultCatalogue is the built-in specialization catalogue, used when
// neither the cache nor the store can supply one.
func DefaultCatalogue() []models.Specialization {
	return []models.Specialization{
		{Name: "Cardiology", Description: "Heart and cardiovascular system", Weight: 10, IsActive: true,
			Keywords: []string{"chest pain", "heart", "palpitations", "shortness of breath", "high blood pressure", "irregular heartbeat"}},
		{Name: "Neurology", Description: "Brain and nervous system", Weight: 10, IsActive: true,
			Keywords: []string{"headache", "migraine", "seizure", "dizziness", "numbness", "tremor", "memory loss", "stroke"}},
		{Name: "Pediatrics", Description: "Children's health", Weight: 9, IsActive: true,
			Keywords: []string{"child", "baby", "infant", "vaccination", "growth", "development"}},
		{Name: "Orthopedics", Description: "Bones, joints, and muscles", Weight: 9, IsActive: true,
			Keywords: []string{"joint pain", "bone", "fracture", "sprain", "arthritis", "back pain", "knee pain", "shoulder pain"}},
		{Name: "Gynecology", Description: "Women's reproductive health", Weight: 9, IsActive: true,
			Keywords: []string{"menstrual", "period", "pregnancy", "pelvic pain", "vaginal", "breast", "menopause"}},
		{Name: "Dermatology", Description: "Skin, hair, and nails", Weight: 8, IsActive: true,
			Keywords: []string{"rash", "skin", "acne", "eczema", "psoriasis", "itching", "moles", "hair loss"}},
		{Name: "Gastroenterology", Description: "Digestive system", Weight: 8, IsActive: true,
			Keywords: []string{"stomach pain", "nausea", "diarrhea", "constipation", "bloating", "acid reflux", "vomiting"}},
		{Name: "Psychiatry", Description: "Mental health", Weight: 8, IsActive: true,
			Keywords: []string{"depression", "anxiety", "stress", "insomnia", "mood", "panic", "mental health"}},
		{Name: "Endocrinology", Description: "Hormones and metabolism", Weight: 8, IsActive: true,
			Keywords: []string{"diabetes", "thyroid", "hormone", "metabolism"}},
		{Name: "Ophthalmology", Description: "Eyes and vision", Weight: 8, IsActive: true,
			Keywords: []string{"eye", "vision", "blurred vision", "eye pain", "cataracts", "glaucoma"}},
		{Name: "General Medicine", Description: "General health and wellness", Weight: 7, IsActive: true,
			Keywords: []string{"fever", "cold", "flu", "cough", "general checkup", "fatigue", "weakness"}},
	}
}

// HasHealthConcern reports whether the message mentions any catalogue
// keyword or urgent indicator.
func HasHealthConcern(message string) bool {
	m := strings.ToLower(message)
	for _, ind := range urgentIndicators {
		if strings.Contains(m, ind) {
			return true
		}
	}
	for _, spec := range DefaultCatalogue() {
		for _, kw := range spec.Keywords {
			if strings.Contains(m, kw) {
				return true
			}
		}
	}
	return false
}

// matchSpecialization scores the message against the catalogue keyword
// tables. Highest weight wins; more keyword hits break ties. Returns the
// matched keywords so they can double as the symptom list.
func matchSpecialization(message string, catalogue []models.Specialization) (string, []string) {
	m := strings.ToLower(message)

	bestName := "General Medicine"
	bestWeight := 0
	bestHits := []string{}
	for _, spec := range catalogue {
		if !spec.IsActive {
			continue
		}
		var hits []string
		for _, kw := range spec.Keywords {
			if strings.Contains(m, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) == 0 {
			continue
		}
		if spec.Weight > bestWeight || (spec.Weight == bestWeight && len(hits) > len(bestHits)) {
			bestName = spec.Name
			bestWeight = spec.Weight
			bestHits = hits
		}
	}
	return bestName, bestHits
}

func catalogueHas(catalogue []models.Specialization, name string) bool {
	for _, spec := range catalogue {
		if strings.EqualFold(spec.Name, name) {
			return true
		}
	}
	return false
}

func catalogueNames(catalogue []models.Specialization) []string {
	names := make([]string, 0, len(catalogue))
	for _, spec := range catalogue {
		names = append(names, spec.Name)
	}
	return names
}
