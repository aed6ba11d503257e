package models

// ReminderPayload is the task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	DoctorName    string `json:"doctorName"`
	Hospital      string `json:"hospital,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}
