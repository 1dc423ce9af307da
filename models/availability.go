package models

import "time"

// Availability is the set of open time-slot labels a professor publishes for
// one calendar date. There is at most one record per (professorId, date);
// Date is day-granular (midnight UTC).
type Availability struct {
	ID          string    `bson:"id" json:"id"`
	ProfessorID string    `bson:"professorId" json:"professorId"`
	Date        time.Time `bson:"date" json:"date"`
	Slots       []string  `bson:"slots" json:"slots"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasSlot reports whether the stored slot set contains the given label.
func (a *Availability) HasSlot(slot string) bool {
	for _, s := range a.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
