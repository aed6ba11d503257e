package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medigo/database"
	"medigo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotTaken is returned by Create when the unique slot index rejects the
// insert, i.e. another appointment grabbed the slot first.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	FindBookedSlots(doctorID, date string) ([]models.SlotWindow, error)
	HasConflict(doctorID, date, startTime, endTime string) (bool, error)
	CountAll() (int64, error)
	EnsureIndexes() error
}

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	apptColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("medigo")
	return &MongoAppointmentRepo{
		apptColl: db.Collection("appointments"),
	}
}

// EnsureIndexes creates the unique slot index over non-cancelled
// appointments. It backstops the pre-insert conflict check against
// double submits.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "timeSlot.startTime", Value: 1},
			{Key: "timeSlot.endTime", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": models.BookedStatuses},
			}),
	}
	if _, err := repo.apptColl.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("error creating appointment slot index: %w", err)
	}
	return nil
}

// Create inserts a new appointment record.
func (repo *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.apptColl.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// FindBookedSlots returns the occupied windows for a doctor on a date.
func (repo *MongoAppointmentRepo) FindBookedSlots(doctorID, date string) ([]models.SlotWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":        doctorID,
		"appointmentDate": date,
		"status":          bson.M{"$in": models.BookedStatuses},
	}
	cursor, err := repo.apptColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching booked slots: %w", err)
	}
	defer cursor.Close(ctx)

	var booked []models.SlotWindow
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		booked = append(booked, a.TimeSlot)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return booked, nil
}

// HasConflict reports whether the exact slot is already held by a
// non-cancelled appointment.
func (repo *MongoAppointmentRepo) HasConflict(doctorID, date, startTime, endTime string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId":           doctorID,
		"appointmentDate":    date,
		"timeSlot.startTime": startTime,
		"timeSlot.endTime":   endTime,
		"status":             bson.M{"$in": models.BookedStatuses},
	}
	count, err := repo.apptColl.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking appointment conflict: %w", err)
	}
	return count > 0, nil
}

// CountAll returns the total number of appointment records.
func (repo *MongoAppointmentRepo) CountAll() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.apptColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return count, nil
}
