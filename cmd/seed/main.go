// Seeds the doctor roster and the specialization catalogue.
package main

import (
	"context"
	"time"

	"medigo/config"
	"medigo/database"
	"medigo/models"
	"medigo/services/triage"
	"medigo/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// standardSlots is the weekly template every seeded doctor uses: six
// one-hour windows with a lunch break.
var standardSlots = []models.SlotWindow{
	{StartTime: "09:00", EndTime: "10:00"},
	{StartTime: "10:00", EndTime: "11:00"},
	{StartTime: "11:00", EndTime: "12:00"},
	{StartTime: "14:00", EndTime: "15:00"},
	{StartTime: "15:00", EndTime: "16:00"},
	{StartTime: "16:00", EndTime: "17:00"},
}

type seedDoctor struct {
	name           string
	specialization string
	hospital       string
	location       string
	rating         float64
	experience     int
	fee            float64
	days           []string
}

var roster = []seedDoctor{
	{"Dr. Sarah Mitchell", "Cardiology", "City Heart Institute", "Downtown", 4.8, 15, 200, []string{"Monday", "Wednesday", "Friday"}},
	{"Dr. James Okafor", "Cardiology", "General Hospital", "Westside", 4.5, 11, 180, []string{"Tuesday", "Thursday"}},
	{"Dr. Emily Chen", "Neurology", "Neuroscience Center", "Downtown", 4.9, 18, 220, []string{"Monday", "Tuesday", "Thursday"}},
	{"Dr. Robert Kim", "Dermatology", "Skin & Care Clinic", "Northgate", 4.6, 9, 150, []string{"Wednesday", "Friday", "Saturday"}},
	{"Dr. Aisha Patel", "Pediatrics", "Children's Medical Center", "Eastside", 4.7, 12, 140, []string{"Monday", "Wednesday", "Friday"}},
	{"Dr. Michael Torres", "Orthopedics", "Sports & Joint Clinic", "Westside", 4.4, 14, 190, []string{"Tuesday", "Thursday", "Saturday"}},
	{"Dr. Linda Osei", "Gastroenterology", "Digestive Health Center", "Downtown", 4.5, 10, 170, []string{"Monday", "Thursday"}},
	{"Dr. Hannah Weiss", "Gynecology", "Women's Health Clinic", "Northgate", 4.8, 16, 180, []string{"Tuesday", "Wednesday", "Friday"}},
	{"Dr. David Nkemelu", "Psychiatry", "Mindcare Center", "Eastside", 4.6, 13, 160, []string{"Monday", "Tuesday", "Thursday"}},
	{"Dr. Grace Lindqvist", "General Medicine", "Community Health Center", "Downtown", 4.3, 8, 100, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	db := database.MongoClient.Database("medigo")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	doctorColl := db.Collection("doctors")
	count, err := doctorColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Sugar().Fatalf("seed: counting doctors: %v", err)
	}
	if count > 0 {
		logger.Info("doctors already seeded, skipping", zap.Int64("count", count))
	} else {
		now := time.Now()
		docs := make([]interface{}, 0, len(roster))
		for _, d := range roster {
			availability := make(map[string][]models.SlotWindow, len(d.days))
			for _, day := range d.days {
				availability[day] = standardSlots
			}
			docs = append(docs, models.Doctor{
				ID:              uuid.NewString(),
				Name:            d.name,
				Specialization:  d.specialization,
				Hospital:        d.hospital,
				Location:        d.location,
				Rating:          d.rating,
				Experience:      d.experience,
				ConsultationFee: d.fee,
				Languages:       []string{"English"},
				Availability:    availability,
				IsActive:        true,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
		}
		if _, err := doctorColl.InsertMany(ctx, docs); err != nil {
			logger.Sugar().Fatalf("seed: inserting doctors: %v", err)
		}
		logger.Info("seeded doctors", zap.Int("count", len(docs)))
	}

	specColl := db.Collection("specializations")
	count, err = specColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Sugar().Fatalf("seed: counting specializations: %v", err)
	}
	if count > 0 {
		logger.Info("specializations already seeded, skipping", zap.Int64("count", count))
		return
	}
	catalogue := triage.DefaultCatalogue()
	specs := make([]interface{}, 0, len(catalogue))
	for _, s := range catalogue {
		specs = append(specs, s)
	}
	if _, err := specColl.InsertMany(ctx, specs); err != nil {
		logger.Sugar().Fatalf("seed: inserting specializations: %v", err)
	}
	logger.Info("seeded specializations", zap.Int("count", len(specs)))
}
