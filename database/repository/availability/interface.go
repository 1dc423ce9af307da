// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by the repository. The scheduling engine maps
// these to caller-facing error kinds.
var (
	ErrNotFound  = errors.New("availability not found")
	ErrDuplicate = errors.New("availability already exists for this date")
)

// AvailabilityRepository manages the per-professor per-date open-slot sets.
// The collection carries a unique index on (professorId, date), so concurrent
// first writes for the same day cannot create duplicate records.
type AvailabilityRepository interface {
	Create(ctx context.Context, av *models.Availability) error
	GetByProfessorAndDate(ctx context.Context, professorID string, date time.Time) (*models.Availability, error)
	ReplaceSlots(ctx context.Context, professorID string, date time.Time, slots []string) (*models.Availability, error)
	RemoveSlot(ctx context.Context, professorID string, date time.Time, slot string) error
	RestoreSlot(ctx context.Context, professorID string, date time.Time, slot string) error
	ListByProfessor(ctx context.Context, professorID string, date *time.Time) ([]models.Availability, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("slotbook")
	return &mongoAvailabilityRepo{
		coll: db.Collection("availabilities"),
	}
}
