// File: services/scheduling/booking.go
package scheduling

import (
	"context"
	"errors"

	"go.uber.org/zap"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"
	"slotbook/utils"
)

// Book reserves a slot. The availability and already-booked pre-checks fail
// fast with friendly errors, but the real race guard is the partial unique
// index on the appointments collection: two concurrent calls can both pass
// the pre-checks, and exactly one insert will win.
func (s *DefaultSchedulingService) Book(ctx context.Context, studentID, professorID, date, timeSlot string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if studentID == "" || professorID == "" {
		return nil, E(KindInvalidInput, "studentId and professorId are required")
	}
	if timeSlot == "" {
		return nil, E(KindInvalidInput, "timeSlot is required")
	}
	day, err := parseDay(date)
	if err != nil {
		return nil, E(KindInvalidInput, "invalid date format, expected YYYY-MM-DD")
	}

	av, err := s.Availability.GetByProfessorAndDate(ctx, professorID, day)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrNotFound) {
			return nil, E(KindSlotUnavailable, "time slot not available")
		}
		return nil, storeErr("availability lookup", err)
	}
	if !av.HasSlot(timeSlot) {
		return nil, E(KindSlotUnavailable, "time slot not available")
	}

	if _, err := s.Appointments.FindBooked(ctx, professorID, day, timeSlot); err == nil {
		return nil, E(KindSlotAlreadyBooked, "time slot already booked")
	} else if !errors.Is(err, appointmentRepo.ErrNotFound) {
		return nil, storeErr("booking lookup", err)
	}

	appt := &models.Appointment{
		StudentID:   studentID,
		ProfessorID: professorID,
		Date:        day,
		TimeSlot:    timeSlot,
		Status:      models.StatusBooked,
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicate) {
			// Lost the insert race; no state was mutated on this path.
			return nil, E(KindSlotAlreadyBooked, "time slot already booked")
		}
		return nil, storeErr("create appointment", err)
	}

	if err := s.Availability.RemoveSlot(ctx, professorID, day, timeSlot); err != nil {
		// The booking exists; the query path still reports the slot as taken
		// because open slots are always derived minus active bookings.
		logger.Error("failed to pull booked slot from availability",
			zap.String("professorId", professorID),
			zap.String("timeSlot", timeSlot),
			zap.Error(err))
		return nil, storeErr("remove slot", err)
	}

	s.invalidateAvailability(ctx, professorID, date)

	logger.Info("slot booked",
		zap.String("appointmentId", appt.ID),
		zap.String("professorId", professorID),
		zap.String("date", date),
		zap.String("timeSlot", timeSlot))
	return appt, nil
}
