// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"
	"time"

	"slotbook/database"
	"slotbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by the repository.
var (
	ErrNotFound  = errors.New("appointment not found")
	ErrDuplicate = errors.New("slot already has an active booking")
)

// AppointmentRepository manages booking records. The collection enforces the
// anti-double-booking guarantee with a partial unique index on
// (professorId, date, timeSlot) scoped to status "booked"; Create returns
// ErrDuplicate when a concurrent booking already won the slot.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	FindBooked(ctx context.Context, professorID string, date time.Time, timeSlot string) (*models.Appointment, error)
	Cancel(ctx context.Context, id string) (*models.Appointment, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Appointment, error)
	ListByProfessor(ctx context.Context, professorID string) ([]models.Appointment, error)
	BookedSlots(ctx context.Context, professorID string, date time.Time) ([]string, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("slotbook")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
