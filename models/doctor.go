package models

import "time"

// SlotWindow is a single bookable window in "HH:MM" 24h format.
type SlotWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Doctor represents a doctor document. Availability maps weekday names
// ("Monday", ...) to the weekly slot template for that day.
type Doctor struct {
	ID              string                  `bson:"id" json:"id"`
	Name            string                  `bson:"name" json:"name"`
	Specialization  string                  `bson:"specialization" json:"specialization"`
	Hospital        string                  `bson:"hospital" json:"hospital"`
	Location        string                  `bson:"location" json:"location"`
	Rating          float64                 `bson:"rating" json:"rating"`
	Experience      int                     `bson:"experience" json:"experience"` // years of practice
	ConsultationFee float64                 `bson:"consultationFee" json:"consultationFee"`
	Phone           string                  `bson:"phone,omitempty" json:"phone,omitempty"`
	Email           string                  `bson:"email,omitempty" json:"email,omitempty"`
	Qualifications  []string                `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Languages       []string                `bson:"languages,omitempty" json:"languages,omitempty"`
	Availability    map[string][]SlotWindow `bson:"availability" json:"availability"`
	IsActive        bool                    `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time               `bson:"updatedAt" json:"updatedAt"`
}

// Specialization is one entry of the triage catalogue. Keywords drive the
// deterministic fallback classifier; Weight breaks ties (higher wins).
type Specialization struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Keywords    []string `bson:"keywords" json:"keywords"`
	Weight      int      `bson:"weight" json:"weight"`
	IsActive    bool     `bson:"isActive" json:"isActive"`
}
