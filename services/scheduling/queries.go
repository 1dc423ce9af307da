// File: services/scheduling/queries.go
package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
)

// ListMine returns the caller's own appointments, sorted by date then slot.
func (s *DefaultSchedulingService) ListMine(ctx context.Context, caller models.Caller) ([]models.Appointment, error) {
	if caller.ID == "" || !caller.Role.Valid() {
		return nil, E(KindInvalidInput, "caller identity is required")
	}

	var (
		appts []models.Appointment
		err   error
	)
	if caller.Role == models.RoleStudent {
		appts, err = s.Appointments.ListByStudent(ctx, caller.ID)
	} else {
		appts, err = s.Appointments.ListByProfessor(ctx, caller.ID)
	}
	if err != nil {
		return nil, storeErr("list appointments", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// ListForProfessor returns every appointment on the professor's calendar.
func (s *DefaultSchedulingService) ListForProfessor(ctx context.Context, professorID string) ([]models.Appointment, error) {
	if professorID == "" {
		return nil, E(KindInvalidInput, "professorId is required")
	}
	appts, err := s.Appointments.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, storeErr("list appointments", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// GetByID returns one appointment. Only the student or professor on the
// record may see it.
func (s *DefaultSchedulingService) GetByID(ctx context.Context, appointmentID string, caller models.Caller) (*models.Appointment, error) {
	if _, err := uuid.Parse(appointmentID); err != nil {
		return nil, E(KindInvalidInput, "invalid appointment ID format")
	}

	appt, err := s.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, E(KindNotFound, "appointment not found")
		}
		return nil, storeErr("appointment lookup", err)
	}

	isOwner := false
	switch caller.Role {
	case models.RoleStudent:
		isOwner = appt.StudentID == caller.ID
	case models.RoleProfessor:
		isOwner = appt.ProfessorID == caller.ID
	}
	if !isOwner {
		return nil, E(KindForbidden, "not authorized to view this appointment")
	}
	return appt, nil
}
