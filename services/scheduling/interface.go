// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"
)

// SchedulingService is the booking engine: it keeps the availability calendar
// and the appointment reservations mutually consistent. There is no engine-side
// locking; concurrency correctness rests on the stores' uniqueness constraints.
type SchedulingService interface {
	// Book reserves timeSlot on professorID's calendar for studentID.
	Book(ctx context.Context, studentID, professorID, date, timeSlot string) (*models.Appointment, error)

	// Cancel flips an appointment to cancelled and reopens its slot. Only the
	// owning professor may cancel, and only once.
	Cancel(ctx context.Context, appointmentID, actingProfessorID string) (*models.Appointment, error)

	// SetAvailability creates or wholesale-overwrites the slot set for one
	// date. The returned bool is true when a new record was created.
	SetAvailability(ctx context.Context, professorID, date string, slots []string) (*models.Availability, bool, error)

	// GetAvailability returns the professor's records with slot sets reduced
	// to the truly open view (stored slots minus active bookings), sorted by
	// date ascending. date may be empty to return all dates.
	GetAvailability(ctx context.Context, professorID, date string) ([]models.Availability, error)

	// ListMine returns the caller's appointments: by studentId for students,
	// by professorId for professors.
	ListMine(ctx context.Context, caller models.Caller) ([]models.Appointment, error)

	// ListForProfessor returns all appointments on a professor's calendar.
	ListForProfessor(ctx context.Context, professorID string) ([]models.Appointment, error)

	// GetByID returns one appointment, visible only to the student or
	// professor on the record.
	GetByID(ctx context.Context, appointmentID string, caller models.Caller) (*models.Appointment, error)
}

// DefaultSchedulingService is the concrete engine over the Mongo-backed
// repositories, with an optional redis cache for the reconciled availability
// view. A nil Cache disables caching.
type DefaultSchedulingService struct {
	Availability availabilityRepo.AvailabilityRepository
	Appointments appointmentRepo.AppointmentRepository
	Cache        *redis.Client
	CacheTTL     time.Duration
}
