package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"medigo/models"
	ai "medigo/services/intelligence"
	"medigo/utils"

	"go.uber.org/zap"
)

// Classifier maps a patient message to symptoms, a specialization and a
// severity level.
type Classifier interface {
	Classify(ctx context.Context, message string) *models.SymptomAnalysis
}

// CatalogueProvider supplies the specialization catalogue.
type CatalogueProvider interface {
	Catalogue(ctx context.Context) []models.Specialization
}

const classifyPromptTmpl = `You are a medical triage assistant. Analyze the patient message and respond with JSON only, no prose, in this exact shape:
{"symptoms": ["..."], "specialization": "...", "severity": "mild|moderate|severe|urgent", "confidence": 0.0}

Rules:
- "specialization" must be exactly one of: %s.
- "severity" is "urgent" ONLY when the message reports a life-threatening sign: chest pain, severe bleeding, breathing difficulty, or unconsciousness. Never use "urgent" for anything else.
- "confidence" is between 0 and 1.

Patient message: %q`

// DefaultClassifier tries the generation model first and falls back to the
// deterministic keyword tables when the model is unavailable or returns
// something unusable.
type DefaultClassifier struct {
	generator ai.TextGenerator
	catalogue CatalogueProvider
}

func NewDefaultClassifier(generator ai.TextGenerator, catalogue CatalogueProvider) *DefaultClassifier {
	return &DefaultClassifier{generator: generator, catalogue: catalogue}
}

func (c *DefaultClassifier) Classify(ctx context.Context, message string) *models.SymptomAnalysis {
	logger := utils.GetLogger()
	catalogue := c.catalogue.Catalogue(ctx)

	prompt := fmt.Sprintf(classifyPromptTmpl, strings.Join(catalogueNames(catalogue), ", "), message)
	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Warn("triage generation failed, using keyword fallback", zap.Error(err))
		return c.keywordFallback(message, catalogue)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		logger.Warn("triage output unparseable, using keyword fallback",
			zap.Error(err), zap.String("raw", raw))
		return c.keywordFallback(message, catalogue)
	}

	if !catalogueHas(catalogue, analysis.Specialization) {
		logger.Warn("triage returned unknown specialization",
			zap.String("specialization", analysis.Specialization))
		analysis.Specialization = "General Medicine"
	}
	switch analysis.Severity {
	case models.SeverityMild, models.SeverityModerate, models.SeveritySevere, models.SeverityUrgent:
	default:
		analysis.Severity = models.SeverityModerate
	}
	if analysis.Confidence < 0 {
		analysis.Confidence = 0
	}
	if analysis.Confidence > 1 {
		analysis.Confidence = 1
	}
	return analysis
}

func parseAnalysis(raw string) (*models.SymptomAnalysis, error) {
	cleaned := ai.CleanJSONResponse(raw)
	var analysis models.SymptomAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, fmt.Errorf("decoding triage response: %w", err)
	}
	if analysis.Specialization == "" {
		return nil, fmt.Errorf("triage response missing specialization")
	}
	return &analysis, nil
}

// keywordFallback never escalates to urgent; that call belongs to the
// generation path alone.
func (c *DefaultClassifier) keywordFallback(message string, catalogue []models.Specialization) *models.SymptomAnalysis {
	name, hits := matchSpecialization(message, catalogue)
	return &models.SymptomAnalysis{
		Symptoms:       hits,
		Specialization: name,
		Severity:       models.SeverityModerate,
		Confidence:     0.5,
	}
}
