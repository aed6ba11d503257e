package triage

import (
	"context"
	"errors"
	"testing"

	"medigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	output string
	err    error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.output, s.err
}

type fixedCatalogue struct{}

func (fixedCatalogue) Catalogue(ctx context.Context) []models.Specialization {
	return DefaultCatalogue()
}

func TestClassifyParsesFencedJSON(t *testing.T) {
	gen := &stubGenerator{output: "```json\n{\"symptoms\": [\"headache\"], \"specialization\": \"Neurology\", \"severity\": \"moderate\", \"confidence\": 0.85}\n```"}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "I keep getting headaches")

	require.NotNil(t, analysis)
	assert.Equal(t, "Neurology", analysis.Specialization)
	assert.Equal(t, models.SeverityModerate, analysis.Severity)
	assert.Equal(t, []string{"headache"}, analysis.Symptoms)
	assert.InDelta(t, 0.85, analysis.Confidence, 0.001)
}

func TestClassifyAcceptsUrgentFromGeneration(t *testing.T) {
	gen := &stubGenerator{output: `{"symptoms": ["chest pain"], "specialization": "Cardiology", "severity": "urgent", "confidence": 0.95}`}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "crushing chest pain")
	assert.Equal(t, models.SeverityUrgent, analysis.Severity)
}

func TestClassifyFallsBackOnGenerationError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "I keep getting headaches and dizziness")

	require.NotNil(t, analysis)
	assert.Equal(t, "Neurology", analysis.Specialization)
	assert.Contains(t, analysis.Symptoms, "headache")
	assert.Contains(t, analysis.Symptoms, "dizziness")
}

func TestFallbackNeverReturnsUrgent(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "chest pain and severe bleeding")

	assert.Equal(t, "Cardiology", analysis.Specialization)
	assert.NotEqual(t, models.SeverityUrgent, analysis.Severity)
}

func TestClassifyFallsBackOnGarbageOutput(t *testing.T) {
	gen := &stubGenerator{output: "I think you should see a neurologist."}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "stomach pain and nausea")
	assert.Equal(t, "Gastroenterology", analysis.Specialization)
}

func TestClassifyRejectsUnknownSpecialization(t *testing.T) {
	gen := &stubGenerator{output: `{"symptoms": ["tired"], "specialization": "Astrology", "severity": "mild", "confidence": 0.6}`}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "I feel tired all the time")
	assert.Equal(t, "General Medicine", analysis.Specialization)
}

func TestClassifyNormalizesBadSeverityAndConfidence(t *testing.T) {
	gen := &stubGenerator{output: `{"symptoms": ["cough"], "specialization": "General Medicine", "severity": "catastrophic", "confidence": 3.5}`}
	c := NewDefaultClassifier(gen, fixedCatalogue{})

	analysis := c.Classify(context.Background(), "bad cough")
	assert.Equal(t, models.SeverityModerate, analysis.Severity)
	assert.Equal(t, 1.0, analysis.Confidence)
}

func TestMatchSpecializationPrefersHigherWeight(t *testing.T) {
	// "chest pain" hits Cardiology (10); "fever" hits General Medicine (7).
	name, hits := matchSpecialization("fever and chest pain", DefaultCatalogue())
	assert.Equal(t, "Cardiology", name)
	assert.Contains(t, hits, "chest pain")
}

func TestMatchSpecializationDefaultsToGeneralMedicine(t *testing.T) {
	name, hits := matchSpecialization("something vague", DefaultCatalogue())
	assert.Equal(t, "General Medicine", name)
	assert.Empty(t, hits)
}

func TestHasHealthConcern(t *testing.T) {
	assert.True(t, HasHealthConcern("my knee pain is back"))
	assert.True(t, HasHealthConcern("severe bleeding from a cut"))
	assert.False(t, HasHealthConcern("thanks, goodbye"))
}
