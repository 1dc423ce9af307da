// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotbook/models"
)

func (r *mongoAvailabilityRepo) Create(ctx context.Context, av *models.Availability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if av.ID == "" {
		av.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	av.CreatedAt = now
	av.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, av); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert availability: %w", err)
	}
	return nil
}

// ReplaceSlots overwrites the slot set wholesale for (professorId, date) and
// returns the updated record. Booked slots are not merged back in; callers
// must recompute the full desired set themselves.
func (r *mongoAvailabilityRepo) ReplaceSlots(ctx context.Context, professorID string, date time.Time, slots []string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID, "date": date}
	update := bson.M{"$set": bson.M{
		"slots":     slots,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Availability
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("replace slots: %w", err)
	}
	return &updated, nil
}

// RemoveSlot pulls one label out of the stored slot set when a booking wins it.
func (r *mongoAvailabilityRepo) RemoveSlot(ctx context.Context, professorID string, date time.Time, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID, "date": date}
	update := bson.M{
		"$pull": bson.M{"slots": slot},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("remove slot: %w", err)
	}
	return nil
}

// RestoreSlot adds a label back with set-union semantics; restoring a slot
// that is already present is a no-op.
func (r *mongoAvailabilityRepo) RestoreSlot(ctx context.Context, professorID string, date time.Time, slot string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professorId": professorID, "date": date}
	update := bson.M{
		"$addToSet": bson.M{"slots": slot},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}
	if _, err := r.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("restore slot: %w", err)
	}
	return nil
}
