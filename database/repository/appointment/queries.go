// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

var listSort = bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}}

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

// FindBooked returns the active booking holding (professorId, date, timeSlot),
// if any. Used by the engine's fail-fast pre-check before insert.
func (r *mongoAppointmentRepo) FindBooked(ctx context.Context, professorID string, date time.Time, timeSlot string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professorId": professorID,
		"date":        date,
		"timeSlot":    timeSlot,
		"status":      models.StatusBooked,
	}
	var appt models.Appointment
	if err := r.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booked appointment: %w", err)
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"studentId": studentID})
}

func (r *mongoAppointmentRepo) ListByProfessor(ctx context.Context, professorID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"professorId": professorID})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(listSort))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appts, nil
}

// BookedSlots returns the distinct slot labels currently backing active
// bookings for (professorId, date). The engine subtracts these from the
// stored slot set to derive the truly open view.
func (r *mongoAppointmentRepo) BookedSlots(ctx context.Context, professorID string, date time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professorId": professorID,
		"date":        date,
		"status":      models.StatusBooked,
	}
	raw, err := r.coll.Distinct(ctx, "timeSlot", filter)
	if err != nil {
		return nil, fmt.Errorf("distinct booked slots: %w", err)
	}

	slots := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			slots = append(slots, s)
		}
	}
	return slots, nil
}
