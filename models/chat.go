package models

// Severity levels in increasing order of concern. "urgent" short-circuits
// the booking funnel into an emergency referral.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
	SeverityUrgent   = "urgent"
)

// Agent labels surfaced on responses so callers can attribute the reply.
const (
	AgentSystem             = "system"
	AgentSymptomAnalyzer    = "symptom_analyzer"
	AgentDoctorMatcher      = "doctor_matcher"
	AgentBookingCoordinator = "booking_coordinator"
)

// ChatRequest is the inbound message payload.
type ChatRequest struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId" binding:"required"`
	Message        string `json:"message" binding:"required"`
}

// ChatResponse is the outbound reply. NewStatus/NewStep are set only when
// the conversation record changed; the caller persists them.
type ChatResponse struct {
	ConversationID string         `json:"conversationId,omitempty"`
	Message        string         `json:"message"`
	AgentType      string         `json:"agentType"`
	Confidence     float64        `json:"confidence"` // 0..1
	RequiresInput  bool           `json:"requiresInput"`
	NewStatus      string         `json:"newStatus,omitempty"`
	NewStep        string         `json:"newStep,omitempty"`
	ExtractedData  *ExtractedData `json:"extractedData,omitempty"`
	AppointmentID  string         `json:"appointmentId,omitempty"`
}

// SymptomAnalysis is the structured result of the triage classifier.
type SymptomAnalysis struct {
	Symptoms       []string `json:"symptoms"`
	Specialization string   `json:"specialization"`
	Severity       string   `json:"severity"`
	Confidence     float64  `json:"confidence"`
}

// StatsResponse summarizes service activity.
type StatsResponse struct {
	ActiveConversations int64 `json:"activeConversations"`
	TotalMessages       int64 `json:"totalMessages"`
	TotalAppointments   int64 `json:"totalAppointments"`
}
