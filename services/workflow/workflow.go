package workflow

import (
	"context"
	"time"

	"medigo/models"
	"medigo/services/booking"
	"medigo/services/triage"
	"medigo/utils"

	"go.uber.org/zap"
)

// Engine is the conversation state machine. ProcessMessage mutates the
// conversation record (step, status, extracted data) and returns the reply;
// the caller persists the record.
type Engine struct {
	Classifier   triage.Classifier
	Matcher      booking.MatchingService
	Availability booking.AvailabilityService
	Finalizer    booking.FinalizerService
	Now          func() time.Time // overridable for tests
}

func NewEngine(classifier triage.Classifier, matcher booking.MatchingService,
	availability booking.AvailabilityService, finalizer booking.FinalizerService) *Engine {
	return &Engine{
		Classifier:   classifier,
		Matcher:      matcher,
		Availability: availability,
		Finalizer:    finalizer,
	}
}

// ProcessMessage advances the conversation one turn. Panics anywhere below
// are converted into an apology and a reset to symptom collection so a
// single bad turn never takes the conversation down.
func (e *Engine) ProcessMessage(ctx context.Context, conv *models.Conversation, message string) (resp *models.ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("workflow turn panicked",
				zap.String("conversationId", conv.ConversationID), zap.Any("panic", r))
			conv.CurrentStep = models.StepSymptomCollection
			resp = &models.ChatResponse{
				Message:       "I'm sorry, something went wrong on my end. Could you describe your symptoms again?",
				AgentType:     models.AgentSystem,
				Confidence:    0,
				RequiresInput: true,
				NewStep:       models.StepSymptomCollection,
			}
		}
	}()

	switch conv.CurrentStep {
	case models.StepInitialGreeting, "":
		return e.handleGreeting(conv)
	case models.StepSymptomCollection:
		return e.handleSymptoms(ctx, conv, message)
	case models.StepDoctorConfirmation:
		return e.handleConfirmation(ctx, conv, message)
	case models.StepCompleted:
		return e.handleCompleted(ctx, conv, message)
	default:
		// Unknown step in the stored record; fold back into the funnel.
		utils.GetLogger().Warn("unknown conversation step",
			zap.String("conversationId", conv.ConversationID), zap.String("step", conv.CurrentStep))
		conv.CurrentStep = models.StepSymptomCollection
		return &models.ChatResponse{
			Message:       "Let's pick up from here. Please tell me what symptoms you're experiencing.",
			AgentType:     models.AgentSystem,
			Confidence:    0.5,
			RequiresInput: true,
			NewStep:       models.StepSymptomCollection,
		}
	}
}

func (e *Engine) handleGreeting(conv *models.Conversation) *models.ChatResponse {
	conv.CurrentStep = models.StepSymptomCollection
	return &models.ChatResponse{
		Message: "Hello! I'm your medical appointment assistant. I can help you find the right doctor " +
			"and book an appointment. What symptoms are you experiencing?",
		AgentType:     models.AgentSystem,
		Confidence:    1,
		RequiresInput: true,
		NewStep:       models.StepSymptomCollection,
	}
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
