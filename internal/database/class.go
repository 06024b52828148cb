package repository

import (
	"context"
	"errors"
	"fmt"
	"sportmaps/entity"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertClass stores a new class document.
func (m *MongoDB) InsertClass(ctx context.Context, class *entity.Class) error {
	_, err := m.collection(classesCollection).InsertOne(ctx, class)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// GetClassByID retrieves a class by id. Returns nil when missing.
func (m *MongoDB) GetClassByID(ctx context.Context, id string) (*entity.Class, error) {
	filter := bson.D{{"_id", id}}

	var class entity.Class
	err := m.collection(classesCollection).FindOne(ctx, filter).Decode(&class)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}

	return &class, nil
}

// ListClasses retrieves classes matching the filter with pagination.
func (m *MongoDB) ListClasses(ctx context.Context, f entity.ClassFilter) ([]entity.Class, error) {
	filter := bson.D{}
	if f.SchoolID != "" {
		filter = append(filter, bson.E{"school_id", f.SchoolID})
	}
	if f.Sport != "" {
		filter = append(filter, bson.E{"sport", f.Sport})
	}
	if f.Level != "" {
		filter = append(filter, bson.E{"level", f.Level})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{"status", f.Status})
	}
	if f.CoachID != "" {
		filter = append(filter, bson.E{"coach_id", f.CoachID})
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter = append(filter, bson.E{"$or", bson.A{
			bson.D{{"name", regex}},
			bson.D{{"sport", regex}},
			bson.D{{"coach_name", regex}},
		}})
	}

	opts := options.Find().SetSkip(f.Skip).SetLimit(f.Limit)

	cursor, err := m.collection(classesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find classes: %w", err)
	}
	defer cursor.Close(ctx)

	var classes []entity.Class
	if err = cursor.All(ctx, &classes); err != nil {
		return nil, fmt.Errorf("mongodb decode classes: %w", err)
	}

	return classes, nil
}

// UpdateClass applies a partial field set and stamps updated_at.
// Returns the modified count.
func (m *MongoDB) UpdateClass(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for key, val := range fields {
		set[key] = val
	}

	filter := bson.D{{"_id", id}}
	update := bson.M{"$set": set}

	result, err := m.collection(classesCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mongodb update error: %w", err)
	}
	return result.ModifiedCount, nil
}

// DeleteClass removes a class document. Returns the deleted count.
func (m *MongoDB) DeleteClass(ctx context.Context, id string) (int64, error) {
	filter := bson.D{{"_id", id}}

	result, err := m.collection(classesCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongodb delete error: %w", err)
	}
	return result.DeletedCount, nil
}

// ClassStats aggregates the catalog of one school. TotalEnrolled counts
// active enrollments across all classes.
func (m *MongoDB) ClassStats(ctx context.Context, schoolID string) (*entity.ClassStats, error) {
	coll := m.collection(classesCollection)
	school := bson.D{{"school_id", schoolID}}

	total, err := coll.CountDocuments(ctx, school)
	if err != nil {
		return nil, fmt.Errorf("mongodb count classes: %w", err)
	}
	active, err := coll.CountDocuments(ctx, bson.D{{"school_id", schoolID}, {"status", entity.ClassActive}})
	if err != nil {
		return nil, fmt.Errorf("mongodb count classes: %w", err)
	}
	full, err := coll.CountDocuments(ctx, bson.D{{"school_id", schoolID}, {"status", entity.ClassFull}})
	if err != nil {
		return nil, fmt.Errorf("mongodb count classes: %w", err)
	}

	bySport, err := m.groupCount(ctx, classesCollection, school, "sport")
	if err != nil {
		return nil, err
	}

	totalEnrolled, err := m.collection(enrollmentsCollection).CountDocuments(ctx, bson.D{{"status", entity.EnrollmentActive}})
	if err != nil {
		return nil, fmt.Errorf("mongodb count enrollments: %w", err)
	}

	return &entity.ClassStats{
		Total:         total,
		Active:        active,
		Full:          full,
		BySport:       bySport,
		TotalEnrolled: totalEnrolled,
	}, nil
}
