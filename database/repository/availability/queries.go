// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

func (r *mongoAvailabilityRepo) GetByProfessorAndDate(ctx context.Context, professorID string, date time.Time) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID, "date": date}
	var av models.Availability
	if err := r.coll.FindOne(ctx, filter).Decode(&av); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find availability: %w", err)
	}
	return &av, nil
}

// ListByProfessor returns a professor's availability records sorted by date
// ascending, optionally narrowed to a single date.
func (r *mongoAvailabilityRepo) ListByProfessor(ctx context.Context, professorID string, date *time.Time) ([]models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID}
	if date != nil {
		filter["date"] = *date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.Availability
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}
	return records, nil
}
