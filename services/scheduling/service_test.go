package scheduling

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	appointmentRepo "slotbook/database/repository/appointment"
	availabilityRepo "slotbook/database/repository/availability"
	"slotbook/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

type fakeAvailRepo struct {
	mu            sync.Mutex
	records       map[string]*models.Availability
	createErr     error
	lookupErrOnce error
}

func newFakeAvailRepo() *fakeAvailRepo {
	return &fakeAvailRepo{records: make(map[string]*models.Availability)}
}

func availKey(professorID string, date time.Time) string {
	return professorID + "|" + date.Format("2006-01-02")
}

func (f *fakeAvailRepo) Create(ctx context.Context, av *models.Availability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	key := availKey(av.ProfessorID, av.Date)
	if _, exists := f.records[key]; exists {
		return availabilityRepo.ErrDuplicate
	}
	if av.ID == "" {
		av.ID = uuid.New().String()
	}
	cp := *av
	cp.Slots = append([]string(nil), av.Slots...)
	f.records[key] = &cp
	return nil
}

func (f *fakeAvailRepo) GetByProfessorAndDate(ctx context.Context, professorID string, date time.Time) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErrOnce != nil {
		err := f.lookupErrOnce
		f.lookupErrOnce = nil
		return nil, err
	}
	av, ok := f.records[availKey(professorID, date)]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	cp := *av
	cp.Slots = append([]string(nil), av.Slots...)
	return &cp, nil
}

func (f *fakeAvailRepo) ReplaceSlots(ctx context.Context, professorID string, date time.Time, slots []string) (*models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	av, ok := f.records[availKey(professorID, date)]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	av.Slots = append([]string(nil), slots...)
	cp := *av
	cp.Slots = append([]string(nil), av.Slots...)
	return &cp, nil
}

func (f *fakeAvailRepo) RemoveSlot(ctx context.Context, professorID string, date time.Time, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	av, ok := f.records[availKey(professorID, date)]
	if !ok {
		return nil
	}
	out := av.Slots[:0]
	for _, s := range av.Slots {
		if s != slot {
			out = append(out, s)
		}
	}
	av.Slots = out
	return nil
}

func (f *fakeAvailRepo) RestoreSlot(ctx context.Context, professorID string, date time.Time, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	av, ok := f.records[availKey(professorID, date)]
	if !ok {
		return nil
	}
	for _, s := range av.Slots {
		if s == slot {
			return nil
		}
	}
	av.Slots = append(av.Slots, slot)
	return nil
}

func (f *fakeAvailRepo) ListByProfessor(ctx context.Context, professorID string, date *time.Time) ([]models.Availability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Availability
	for _, av := range f.records {
		if av.ProfessorID != professorID {
			continue
		}
		if date != nil && !av.Date.Equal(*date) {
			continue
		}
		cp := *av
		cp.Slots = append([]string(nil), av.Slots...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (f *fakeAvailRepo) EnsureIndexes() error { return nil }

type fakeApptRepo struct {
	mu        sync.Mutex
	appts     map[string]*models.Appointment
	createErr error
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appts: make(map[string]*models.Appointment)}
}

// Create mimics the partial unique index: at most one booked appointment per
// (professorId, date, timeSlot).
func (f *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.appts {
		if existing.Status == models.StatusBooked &&
			existing.ProfessorID == appt.ProfessorID &&
			existing.Date.Equal(appt.Date) &&
			existing.TimeSlot == appt.TimeSlot {
			return appointmentRepo.ErrDuplicate
		}
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	cp := *appt
	return &cp, nil
}

func (f *fakeApptRepo) FindBooked(ctx context.Context, professorID string, date time.Time, timeSlot string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, appt := range f.appts {
		if appt.Status == models.StatusBooked &&
			appt.ProfessorID == professorID &&
			appt.Date.Equal(date) &&
			appt.TimeSlot == timeSlot {
			cp := *appt
			return &cp, nil
		}
	}
	return nil, appointmentRepo.ErrNotFound
}

func (f *fakeApptRepo) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.appts[id]
	if !ok || appt.Status != models.StatusBooked {
		return nil, appointmentRepo.ErrNotFound
	}
	appt.Status = models.StatusCancelled
	cp := *appt
	return &cp, nil
}

func (f *fakeApptRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Appointment, error) {
	return f.list(func(a *models.Appointment) bool { return a.StudentID == studentID })
}

func (f *fakeApptRepo) ListByProfessor(ctx context.Context, professorID string) ([]models.Appointment, error) {
	return f.list(func(a *models.Appointment) bool { return a.ProfessorID == professorID })
}

func (f *fakeApptRepo) list(match func(*models.Appointment) bool) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, appt := range f.appts {
		if match(appt) {
			out = append(out, *appt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].TimeSlot < out[j].TimeSlot
	})
	return out, nil
}

func (f *fakeApptRepo) BookedSlots(ctx context.Context, professorID string, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, appt := range f.appts {
		if appt.Status == models.StatusBooked && appt.ProfessorID == professorID && appt.Date.Equal(date) {
			out = append(out, appt.TimeSlot)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) EnsureIndexes() error { return nil }

func newService(avail *fakeAvailRepo, appts *fakeApptRepo) *DefaultSchedulingService {
	return &DefaultSchedulingService{Availability: avail, Appointments: appts}
}

func seedAvailability(t *testing.T, avail *fakeAvailRepo, professorID, date string, slots []string) {
	t.Helper()
	err := avail.Create(context.Background(), &models.Availability{
		ProfessorID: professorID,
		Date:        day(date),
		Slots:       slots,
	})
	if err != nil {
		t.Fatalf("seed availability: %v", err)
	}
}

func wantKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := KindOf(err); got != kind {
		t.Fatalf("error kind = %s, want %s (err: %v)", got, kind, err)
	}
}

func TestBook_CreatesAppointmentAndRemovesSlot(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00", "10:00"})

	appt, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00")
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if appt.ID == "" {
		t.Fatalf("expected populated appointment ID")
	}
	if appt.Status != models.StatusBooked {
		t.Fatalf("status = %q, want %q", appt.Status, models.StatusBooked)
	}
	if appt.StudentID != "stud-1" || appt.ProfessorID != "prof-1" || appt.TimeSlot != "09:00" {
		t.Fatalf("appointment fields not populated: %+v", appt)
	}

	stored, err := avail.GetByProfessorAndDate(context.Background(), "prof-1", day("2024-03-20"))
	if err != nil {
		t.Fatalf("availability lookup: %v", err)
	}
	if len(stored.Slots) != 1 || stored.Slots[0] != "10:00" {
		t.Fatalf("stored slots = %v, want [10:00]", stored.Slots)
	}
}

func TestBook_SlotUnavailable(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	// No availability record at all for this date.
	_, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-21", "09:00")
	wantKind(t, err, KindSlotUnavailable)

	// Record exists but the label is not in the set.
	_, err = svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "10:00")
	wantKind(t, err, KindSlotUnavailable)

	if len(appts.appts) != 0 {
		t.Fatalf("failed pre-check must not create appointments, got %d", len(appts.appts))
	}
}

func TestBook_SlotAlreadyBooked(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	if _, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00"); err != nil {
		t.Fatalf("first Book error: %v", err)
	}

	// Keep the label in the stored set so the availability pre-check passes
	// and the booked-appointment check is what fires.
	if err := avail.RestoreSlot(context.Background(), "prof-1", day("2024-03-20"), "09:00"); err != nil {
		t.Fatalf("restore slot: %v", err)
	}

	_, err := svc.Book(context.Background(), "stud-2", "prof-1", "2024-03-20", "09:00")
	wantKind(t, err, KindSlotAlreadyBooked)
}

func TestBook_ConstraintViolationMapsToSlotAlreadyBooked(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	// Simulate losing the insert race after both pre-checks pass.
	appts.createErr = appointmentRepo.ErrDuplicate

	_, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00")
	wantKind(t, err, KindSlotAlreadyBooked)
}

func TestBook_ConcurrentSameSlot_OneWins(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	const workers = 16
	var wg sync.WaitGroup
	var successes, conflicts int64
	var countMu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), "stud", "prof-1", "2024-03-20", "09:00")
			countMu.Lock()
			defer countMu.Unlock()
			switch {
			case err == nil:
				successes++
			case KindOf(err) == KindSlotAlreadyBooked || KindOf(err) == KindSlotUnavailable:
				conflicts++
			default:
				t.Errorf("unexpected error kind %s: %v", KindOf(err), err)
			}
		}()
	}
	wg.Wait()

	if successes != 1 {
		t.Fatalf("successes = %d, want exactly 1", successes)
	}
	if conflicts != workers-1 {
		t.Fatalf("conflicts = %d, want %d", conflicts, workers-1)
	}
}

func TestBook_InvalidInput(t *testing.T) {
	svc := newService(newFakeAvailRepo(), newFakeApptRepo())

	_, err := svc.Book(context.Background(), "stud-1", "prof-1", "not-a-date", "09:00")
	wantKind(t, err, KindInvalidInput)

	_, err = svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "")
	wantKind(t, err, KindInvalidInput)

	_, err = svc.Book(context.Background(), "", "prof-1", "2024-03-20", "09:00")
	wantKind(t, err, KindInvalidInput)
}

func TestCancel_RestoresSlot(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00", "10:00"})

	appt, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00")
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	updated, err := svc.Cancel(context.Background(), appt.ID, "prof-1")
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("status = %q, want %q", updated.Status, models.StatusCancelled)
	}

	stored, err := avail.GetByProfessorAndDate(context.Background(), "prof-1", day("2024-03-20"))
	if err != nil {
		t.Fatalf("availability lookup: %v", err)
	}
	got := append([]string(nil), stored.Slots...)
	sort.Strings(got)
	want := []string{"09:00", "10:00"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("stored slots = %v, want %v", got, want)
	}
}

func TestCancel_Failures(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	appt, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00")
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.Cancel(context.Background(), "not-a-uuid", "prof-1")
		wantKind(t, err, KindInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Cancel(context.Background(), uuid.New().String(), "prof-1")
		wantKind(t, err, KindNotFound)
	})

	t.Run("forbidden for other professor", func(t *testing.T) {
		_, err := svc.Cancel(context.Background(), appt.ID, "prof-2")
		wantKind(t, err, KindForbidden)
	})

	t.Run("second cancel rejected", func(t *testing.T) {
		if _, err := svc.Cancel(context.Background(), appt.ID, "prof-1"); err != nil {
			t.Fatalf("first Cancel error: %v", err)
		}
		_, err := svc.Cancel(context.Background(), appt.ID, "prof-1")
		wantKind(t, err, KindAlreadyCancelled)
	})
}

func TestSetAvailability_CreateAndOverwrite(t *testing.T) {
	avail := newFakeAvailRepo()
	svc := newService(avail, newFakeApptRepo())

	record, created, err := svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"09:00", "10:00"})
	if err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true on first call")
	}
	if record.ID == "" || len(record.Slots) != 2 {
		t.Fatalf("unexpected record: %+v", record)
	}

	// Second call overwrites wholesale, no merge.
	record, created, err = svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"14:00"})
	if err != nil {
		t.Fatalf("SetAvailability overwrite error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false on overwrite")
	}
	if len(record.Slots) != 1 || record.Slots[0] != "14:00" {
		t.Fatalf("slots = %v, want [14:00]", record.Slots)
	}
}

func TestSetAvailability_RejectsBadSlotLabel(t *testing.T) {
	avail := newFakeAvailRepo()
	svc := newService(avail, newFakeApptRepo())

	_, _, err := svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"09:00", "9am"})
	wantKind(t, err, KindInvalidInput)

	// The whole call is rejected; nothing may be created.
	if _, err := avail.GetByProfessorAndDate(context.Background(), "prof-1", day("2024-03-20")); !errors.Is(err, availabilityRepo.ErrNotFound) {
		t.Fatalf("expected no record, got err=%v", err)
	}
}

func TestSetAvailability_DuplicateInsertRetriesAsUpdate(t *testing.T) {
	avail := newFakeAvailRepo()
	svc := newService(avail, newFakeApptRepo())

	// Simulate a concurrent first write landing between lookup and insert:
	// the lookup misses, the insert hits the unique (professorId, date)
	// index, and the retry finds the record the other writer created.
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"08:00"})
	avail.lookupErrOnce = availabilityRepo.ErrNotFound
	avail.createErr = availabilityRepo.ErrDuplicate

	record, created, err := svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"09:00"})
	if err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false when the insert lost the race")
	}
	if len(record.Slots) != 1 || record.Slots[0] != "09:00" {
		t.Fatalf("slots = %v, want [09:00]", record.Slots)
	}
}

func TestSetAvailability_DuplicateInsertWithFailedRetry(t *testing.T) {
	avail := newFakeAvailRepo()
	svc := newService(avail, newFakeApptRepo())

	// Insert reports a duplicate but no record is reachable for the retry.
	avail.createErr = availabilityRepo.ErrDuplicate

	_, _, err := svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"09:00"})
	wantKind(t, err, KindDuplicateAvailability)
}

func TestGetAvailability_FiltersActiveBookings(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00", "10:00", "11:00"})

	// An active booking whose label is still in the stored set (the stored
	// set may transiently lag the booking path).
	err := appts.Create(context.Background(), &models.Appointment{
		StudentID: "stud-1", ProfessorID: "prof-1",
		Date: day("2024-03-20"), TimeSlot: "10:00", Status: models.StatusBooked,
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}

	records, err := svc.GetAvailability(context.Background(), "prof-1", "2024-03-20")
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0].Slots
	want := []string{"09:00", "11:00"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("open slots = %v, want %v", got, want)
	}

	// Cancelled bookings do not hide slots.
	if _, err := appts.Cancel(context.Background(), firstApptID(appts)); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	records, err = svc.GetAvailability(context.Background(), "prof-1", "2024-03-20")
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if len(records[0].Slots) != 3 {
		t.Fatalf("open slots = %v, want all three", records[0].Slots)
	}
}

func firstApptID(f *fakeApptRepo) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id := range f.appts {
		return id
	}
	return ""
}

func TestGetAvailability_SortedByDate(t *testing.T) {
	avail := newFakeAvailRepo()
	svc := newService(avail, newFakeApptRepo())
	seedAvailability(t, avail, "prof-1", "2024-03-22", []string{"09:00"})
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})
	seedAvailability(t, avail, "prof-1", "2024-03-21", []string{"09:00"})

	records, err := svc.GetAvailability(context.Background(), "prof-1", "")
	if err != nil {
		t.Fatalf("GetAvailability error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			t.Fatalf("records not sorted by date: %v before %v", records[i].Date, records[i-1].Date)
		}
	}
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	svc := newService(newFakeAvailRepo(), newFakeApptRepo())
	_, err := svc.GetAvailability(context.Background(), "prof-1", "03/20/2024")
	wantKind(t, err, KindInvalidInput)
}

func TestListMine_RoleFiltering(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00", "10:00"})
	seedAvailability(t, avail, "prof-2", "2024-03-20", []string{"09:00"})

	if _, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00"); err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if _, err := svc.Book(context.Background(), "stud-2", "prof-1", "2024-03-20", "10:00"); err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if _, err := svc.Book(context.Background(), "stud-1", "prof-2", "2024-03-20", "09:00"); err != nil {
		t.Fatalf("Book error: %v", err)
	}

	mine, err := svc.ListMine(context.Background(), models.Caller{ID: "stud-1", Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("ListMine error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("student appointments = %d, want 2", len(mine))
	}
	for _, a := range mine {
		if a.StudentID != "stud-1" {
			t.Fatalf("foreign appointment in student listing: %+v", a)
		}
	}

	profMine, err := svc.ListMine(context.Background(), models.Caller{ID: "prof-1", Role: models.RoleProfessor})
	if err != nil {
		t.Fatalf("ListMine error: %v", err)
	}
	if len(profMine) != 2 {
		t.Fatalf("professor appointments = %d, want 2", len(profMine))
	}
	for _, a := range profMine {
		if a.ProfessorID != "prof-1" {
			t.Fatalf("foreign appointment in professor listing: %+v", a)
		}
	}
}

func TestGetByID_Ownership(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)
	seedAvailability(t, avail, "prof-1", "2024-03-20", []string{"09:00"})

	appt, err := svc.Book(context.Background(), "stud-1", "prof-1", "2024-03-20", "09:00")
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	cases := []struct {
		name   string
		caller models.Caller
		kind   Kind
	}{
		{"owning student", models.Caller{ID: "stud-1", Role: models.RoleStudent}, ""},
		{"owning professor", models.Caller{ID: "prof-1", Role: models.RoleProfessor}, ""},
		{"other student", models.Caller{ID: "stud-2", Role: models.RoleStudent}, KindForbidden},
		{"other professor", models.Caller{ID: "prof-2", Role: models.RoleProfessor}, KindForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.GetByID(context.Background(), appt.ID, tc.caller)
			if tc.kind == "" {
				if err != nil {
					t.Fatalf("GetByID error: %v", err)
				}
				if got.ID != appt.ID {
					t.Fatalf("id = %q, want %q", got.ID, appt.ID)
				}
				return
			}
			wantKind(t, err, tc.kind)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), uuid.New().String(), models.Caller{ID: "stud-1", Role: models.RoleStudent})
		wantKind(t, err, KindNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "garbage", models.Caller{ID: "stud-1", Role: models.RoleStudent})
		wantKind(t, err, KindInvalidInput)
	})
}

// TestBookCancelRoundTrip walks the full open/reserved pool invariant: the
// open slots before a booking equal the open slots after that booking is
// cancelled, and a slot can never be won twice while booked.
func TestBookCancelRoundTrip(t *testing.T) {
	avail := newFakeAvailRepo()
	appts := newFakeApptRepo()
	svc := newService(avail, appts)

	if _, _, err := svc.SetAvailability(context.Background(), "prof-1", "2024-03-20", []string{"09:00", "10:00", "11:00"}); err != nil {
		t.Fatalf("SetAvailability error: %v", err)
	}

	openSet := func() []string {
		records, err := svc.GetAvailability(context.Background(), "prof-1", "2024-03-20")
		if err != nil {
			t.Fatalf("GetAvailability error: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("records = %d, want 1", len(records))
		}
		out := append([]string(nil), records[0].Slots...)
		sort.Strings(out)
		return out
	}

	apptA, err := svc.Book(context.Background(), "stud-a", "prof-1", "2024-03-20", "09:00")
	if err != nil {
		t.Fatalf("student A Book error: %v", err)
	}
	if got := openSet(); len(got) != 2 || got[0] != "10:00" || got[1] != "11:00" {
		t.Fatalf("open slots after A books = %v, want [10:00 11:00]", got)
	}

	if _, err := svc.Book(context.Background(), "stud-b", "prof-1", "2024-03-20", "10:00"); err != nil {
		t.Fatalf("student B Book error: %v", err)
	}

	_, err = svc.Book(context.Background(), "stud-b", "prof-1", "2024-03-20", "10:00")
	wantKind(t, err, KindSlotAlreadyBooked)

	cancelled, err := svc.Cancel(context.Background(), apptA.ID, "prof-1")
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Fatalf("status = %q, want cancelled", cancelled.Status)
	}

	if got := openSet(); len(got) != 2 || got[0] != "09:00" || got[1] != "11:00" {
		t.Fatalf("open slots after cancel = %v, want [09:00 11:00]", got)
	}
}
