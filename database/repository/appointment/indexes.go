// File: database/repository/appointment/indexes.go
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

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique index is the single source of truth preventing two
// concurrent bookings from both winning the same slot; the engine's
// pre-checks only exist to fail fast with a friendly error.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{
				{Key: "professorId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "timeSlot", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_booking").
				SetPartialFilterExpression(bson.M{"status": string(models.StatusBooked)}),
		},
		{
			Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("student_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "professorId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("professor_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
