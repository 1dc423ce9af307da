// File: services/scheduling/availability.go
package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"
	"slotbook/utils"
)

// SetAvailability creates or replaces the slot set for one date. Replacement
// is a wholesale overwrite: slots removed by bookings are NOT merged back in,
// and re-submitting a stale list can resurrect labels that are actually
// booked. Callers doing partial updates must fetch current state first.
func (s *DefaultSchedulingService) SetAvailability(ctx context.Context, professorID, date string, slots []string) (*models.Availability, bool, error) {
	if professorID == "" {
		return nil, false, E(KindInvalidInput, "professorId is required")
	}
	day, err := parseDay(date)
	if err != nil {
		return nil, false, E(KindInvalidInput, "invalid date format, expected YYYY-MM-DD")
	}
	for _, slot := range slots {
		if !ValidSlotLabel(slot) {
			return nil, false, E(KindInvalidInput, fmt.Sprintf("%q is not a valid time slot, expected HH:MM", slot))
		}
	}
	if slots == nil {
		slots = []string{}
	}

	if _, err := s.Availability.GetByProfessorAndDate(ctx, professorID, day); err == nil {
		updated, err := s.Availability.ReplaceSlots(ctx, professorID, day, slots)
		if err != nil {
			return nil, false, storeErr("replace availability", err)
		}
		s.invalidateAvailability(ctx, professorID, date)
		return updated, false, nil
	} else if !errors.Is(err, availabilityRepo.ErrNotFound) {
		return nil, false, storeErr("availability lookup", err)
	}

	av := &models.Availability{
		ProfessorID: professorID,
		Date:        day,
		Slots:       slots,
	}
	if err := s.Availability.Create(ctx, av); err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicate) {
			// A concurrent call created the record between our lookup and
			// insert; the unique (professorId, date) index caught it. Retry
			// once as an update rather than silently succeeding twice.
			updated, rerr := s.Availability.ReplaceSlots(ctx, professorID, day, slots)
			if rerr != nil {
				return nil, false, E(KindDuplicateAvailability, "availability already exists for this date")
			}
			s.invalidateAvailability(ctx, professorID, date)
			return updated, false, nil
		}
		return nil, false, storeErr("create availability", err)
	}

	s.invalidateAvailability(ctx, professorID, date)
	return av, true, nil
}

// GetAvailability returns the professor's records with each slot set reduced
// to the truly open view. Pure read-and-project: stored state is untouched.
func (s *DefaultSchedulingService) GetAvailability(ctx context.Context, professorID, date string) ([]models.Availability, error) {
	if professorID == "" {
		return nil, E(KindInvalidInput, "professorId is required")
	}

	var day *time.Time
	if date != "" {
		parsed, err := parseDay(date)
		if err != nil {
			return nil, E(KindInvalidInput, "invalid date format, expected YYYY-MM-DD")
		}
		day = &parsed
	}

	cacheKey := availabilityCacheKey(professorID, date)
	if cached, ok := s.cachedAvailability(ctx, cacheKey); ok {
		return cached, nil
	}

	records, err := s.Availability.ListByProfessor(ctx, professorID, day)
	if err != nil {
		return nil, storeErr("list availability", err)
	}

	for i := range records {
		booked, err := s.Appointments.BookedSlots(ctx, professorID, records[i].Date)
		if err != nil {
			return nil, storeErr("booked slots lookup", err)
		}
		records[i].Slots = openSlots(records[i].Slots, booked)
	}
	if records == nil {
		records = []models.Availability{}
	}

	s.cacheAvailability(ctx, cacheKey, records)
	return records, nil
}

func availabilityCacheKey(professorID, date string) string {
	if date == "" {
		date = "all"
	}
	return "availability:" + professorID + ":" + date
}

func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, key string) ([]models.Availability, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}
	var records []models.Availability
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, false
	}
	return records, true
}

func (s *DefaultSchedulingService) cacheAvailability(ctx context.Context, key string, records []models.Availability) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(records)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability view", zap.Error(err))
	}
}

// invalidateAvailability drops the cached view for the touched date and the
// all-dates key after any mutation.
func (s *DefaultSchedulingService) invalidateAvailability(ctx context.Context, professorID, date string) {
	if s.Cache == nil {
		return
	}
	keys := []string{
		availabilityCacheKey(professorID, date),
		availabilityCacheKey(professorID, ""),
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache", zap.Error(err))
	}
}
