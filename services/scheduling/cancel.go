// File: services/scheduling/cancel.go
package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "slotbook/database/repository/appointment"
	"slotbook/models"
	"slotbook/utils"
)

// Cancel marks an appointment cancelled and returns its slot to the
// availability record with set-union semantics. Cancelled is terminal:
// cancelling twice is an error, not a no-op.
func (s *DefaultSchedulingService) Cancel(ctx context.Context, appointmentID, actingProfessorID string) (*models.Appointment, error) {
	logger := utils.GetLogger()

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

	if appt.ProfessorID != actingProfessorID {
		return nil, E(KindForbidden, "not authorized to cancel this appointment")
	}
	if appt.Status == models.StatusCancelled {
		return nil, E(KindAlreadyCancelled, "appointment is already cancelled")
	}

	updated, err := s.Appointments.Cancel(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			// Existence was just established, so the filtered update missing
			// means a concurrent cancel got there first.
			return nil, E(KindAlreadyCancelled, "appointment is already cancelled")
		}
		return nil, storeErr("cancel appointment", err)
	}

	if err := s.Availability.RestoreSlot(ctx, appt.ProfessorID, appt.Date, appt.TimeSlot); err != nil {
		logger.Error("failed to restore cancelled slot to availability",
			zap.String("appointmentId", appointmentID),
			zap.String("timeSlot", appt.TimeSlot),
			zap.Error(err))
		return nil, storeErr("restore slot", err)
	}

	s.invalidateAvailability(ctx, appt.ProfessorID, appt.Date.Format(dayLayout))

	logger.Info("appointment cancelled",
		zap.String("appointmentId", appointmentID),
		zap.String("professorId", appt.ProfessorID))
	return updated, nil
}
