// File: services/scheduling/slots.go
package scheduling

import (
	"regexp"
	"time"
)

// Slot labels are zero-padded 24-hour "HH:MM" strings.
var slotLabelRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidSlotLabel reports whether the label is a well-formed time slot.
func ValidSlotLabel(label string) bool {
	return slotLabelRe.MatchString(label)
}

const dayLayout = "2006-01-02"

// parseDay parses a calendar date and normalizes it to midnight UTC.
// Availability and appointments key on the day, never on an instant.
func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// openSlots derives the externally observable open set: the stored slot set
// minus every label currently backing an active booking. Both the mutation
// path and the query path go through this one derivation so the two views of
// the slot pool cannot drift apart.
func openSlots(raw []string, booked []string) []string {
	if len(raw) == 0 {
		return []string{}
	}
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}
	open := make([]string, 0, len(raw))
	for _, s := range raw {
		if _, ok := taken[s]; !ok {
			open = append(open, s)
		}
	}
	return open
}
