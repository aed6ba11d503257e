package doctorRepo

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

// DoctorRepository defines read access to the doctor roster and the
// specialization catalogue.
type DoctorRepository interface {
	GetByID(doctorID string) (*models.Doctor, error)
	FindBySpecialization(specialization string, limit int64) ([]models.Doctor, error)
	GetSpecializations() ([]models.Specialization, error)
}

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	doctorColl *mongo.Collection
	specColl   *mongo.Collection
}

// NewMongoDoctorRepo constructs a new instance of MongoDoctorRepo.
func NewMongoDoctorRepo() DoctorRepository {
	db := database.MongoClient.Database("medigo")
	return &MongoDoctorRepo{
		doctorColl: db.Collection("doctors"),
		specColl:   db.Collection("specializations"),
	}
}

// GetByID retrieves a doctor document by ID. A missing doctor is not an
// error; it returns (nil, nil).
func (repo *MongoDoctorRepo) GetByID(doctorID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doctor models.Doctor
	filter := bson.M{"id": doctorID}
	if err := repo.doctorColl.FindOne(ctx, filter).Decode(&doctor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching doctor with id %s: %w", doctorID, err)
	}
	return &doctor, nil
}

// FindBySpecialization returns active doctors for a specialization, highest
// rating first, capped at limit.
func (repo *MongoDoctorRepo) FindBySpecialization(specialization string, limit int64) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"specialization": bson.M{"$regex": "^" + specialization + "$", "$options": "i"},
		"isActive":       true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}).SetLimit(limit)
	cursor, err := repo.doctorColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching doctors for %s: %w", specialization, err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	for cursor.Next(ctx) {
		var d models.Doctor
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("error decoding doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return doctors, nil
}

// GetSpecializations returns the active specialization catalogue.
func (repo *MongoDoctorRepo) GetSpecializations() ([]models.Specialization, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.specColl.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("error fetching specializations: %w", err)
	}
	defer cursor.Close(ctx)

	var specs []models.Specialization
	for cursor.Next(ctx) {
		var s models.Specialization
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding specialization: %w", err)
		}
		specs = append(specs, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return specs, nil
}
