package models

import "time"

// Appointment statuses. Anything other than cancelled blocks the slot.
const (
	AppointmentStatusScheduled  = "scheduled"
	AppointmentStatusConfirmed  = "confirmed"
	AppointmentStatusInProgress = "in-progress"
	AppointmentStatusCompleted  = "completed"
	AppointmentStatusCancelled  = "cancelled"
)

// BookedStatuses are the statuses that make a slot unavailable.
var BookedStatuses = []string{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
}

// Appointment represents a confirmed appointment record.
type Appointment struct {
	ID              string     `bson:"id" json:"id"` // UUID
	UserID          string     `bson:"userId" json:"userId"`
	DoctorID        string     `bson:"doctorId" json:"doctorId"`
	DoctorName      string     `bson:"doctorName" json:"doctorName"`
	Specialization  string     `bson:"specialization" json:"specialization"`
	Hospital        string     `bson:"hospital,omitempty" json:"hospital,omitempty"`
	Date            string     `bson:"appointmentDate" json:"appointmentDate"` // "YYYY-MM-DD"
	TimeSlot        SlotWindow `bson:"timeSlot" json:"timeSlot"`
	Symptoms        []string   `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	ConsultationFee float64    `bson:"consultationFee" json:"consultationFee"`
	ConversationID  string     `bson:"conversationId,omitempty" json:"conversationId,omitempty"`
	Status          string     `bson:"status" json:"status"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}
