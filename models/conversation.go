package models

import "time"

// Conversation steps. The workflow only ever routes on these four; an
// unrecognized value falls back to symptom collection.
const (
	StepInitialGreeting    = "initial_greeting"
	StepSymptomCollection  = "symptom_collection"
	StepDoctorConfirmation = "doctor_confirmation"
	StepCompleted          = "completed"
)

// Conversation statuses.
const (
	ConversationStatusActive    = "active"
	ConversationStatusCompleted = "completed"
	ConversationStatusUrgent    = "urgent_referral"
	ConversationStatusCancelled = "cancelled"
)

// ConversationMessage is one turn of the exchange.
type ConversationMessage struct {
	Role      string    `bson:"role" json:"role"` // "user" or "assistant"
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ExtractedData carries the facts gathered so far. Fields are checked for
// presence explicitly (zero value means absent).
type ExtractedData struct {
	Symptoms        []string `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Severity        string   `bson:"severity,omitempty" json:"severity,omitempty"`
	Specialization  string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	DoctorID        string   `bson:"doctor_id,omitempty" json:"doctor_id,omitempty"`
	DoctorName      string   `bson:"doctor_name,omitempty" json:"doctor_name,omitempty"`
	Hospital        string   `bson:"hospital,omitempty" json:"hospital,omitempty"`
	ConsultationFee float64  `bson:"consultation_fee,omitempty" json:"consultation_fee,omitempty"`
	AvailableDays   []string `bson:"available_days,omitempty" json:"available_days,omitempty"`
}

// HasDoctor reports whether a doctor has been selected for confirmation.
func (d ExtractedData) HasDoctor() bool {
	return d.DoctorID != ""
}

// Conversation is the persisted state of one booking conversation.
type Conversation struct {
	ConversationID string                `bson:"conversationId" json:"conversationId"`
	UserID         string                `bson:"userId" json:"userId"`
	Status         string                `bson:"status" json:"status"`
	CurrentStep    string                `bson:"currentStep" json:"currentStep"`
	ExtractedData  ExtractedData         `bson:"extractedData" json:"extractedData"`
	Messages       []ConversationMessage `bson:"messages,omitempty" json:"messages,omitempty"`
	IsActive       bool                  `bson:"isActive" json:"isActive"`
	ExpiresAt      time.Time             `bson:"expiresAt" json:"expiresAt"`
	CreatedAt      time.Time             `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time             `bson:"updatedAt" json:"updatedAt"`
}
