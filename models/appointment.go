package models

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
// "cancelled" is terminal.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment binds a student to one of a professor's slots. At most one
// appointment per (professorId, date, timeSlot) may be in status "booked"
// at any time; the appointments collection enforces this with a partial
// unique index.
type Appointment struct {
	ID          string            `bson:"id" json:"id"`
	StudentID   string            `bson:"studentId" json:"studentId"`
	ProfessorID string            `bson:"professorId" json:"professorId"`
	Date        time.Time         `bson:"date" json:"date"`
	TimeSlot    string            `bson:"timeSlot" json:"timeSlot"`
	Status      AppointmentStatus `bson:"status" json:"status"`
	CreatedAt   time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt" json:"updatedAt"`
}
