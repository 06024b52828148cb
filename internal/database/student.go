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

// InsertStudent stores a new student document.
func (m *MongoDB) InsertStudent(ctx context.Context, student *entity.Student) error {
	_, err := m.collection(studentsCollection).InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// GetStudentByID retrieves a student by id. Returns nil when missing.
func (m *MongoDB) GetStudentByID(ctx context.Context, id string) (*entity.Student, error) {
	filter := bson.D{{"_id", id}}

	var student entity.Student
	err := m.collection(studentsCollection).FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}

	return &student, nil
}

// ListStudents retrieves students matching the filter with pagination.
func (m *MongoDB) ListStudents(ctx context.Context, f entity.StudentFilter) ([]entity.Student, error) {
	filter := bson.D{}
	if f.SchoolID != "" {
		filter = append(filter, bson.E{"school_id", f.SchoolID})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{"status", f.Status})
	}
	if f.Grade != "" {
		filter = append(filter, bson.E{"grade", f.Grade})
	}
	if f.Search != "" {
		regex := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter = append(filter, bson.E{"$or", bson.A{
			bson.D{{"full_name", regex}},
			bson.D{{"email", regex}},
			bson.D{{"parent_name", regex}},
		}})
	}

	opts := options.Find().SetSkip(f.Skip).SetLimit(f.Limit)

	cursor, err := m.collection(studentsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []entity.Student
	if err = cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("mongodb decode students: %w", err)
	}

	return students, nil
}

// GetStudentsByIDs retrieves all students whose id is in the given set.
func (m *MongoDB) GetStudentsByIDs(ctx context.Context, ids []string) ([]entity.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	filter := bson.D{{"_id", bson.D{{"$in", ids}}}}

	cursor, err := m.collection(studentsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []entity.Student
	if err = cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("mongodb decode students: %w", err)
	}

	return students, nil
}

// UpdateStudent applies a partial field set and stamps updated_at.
// Returns the modified count.
func (m *MongoDB) UpdateStudent(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	for key, val := range fields {
		set[key] = val
	}

	filter := bson.D{{"_id", id}}
	update := bson.M{"$set": set}

	result, err := m.collection(studentsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mongodb update error: %w", err)
	}
	return result.ModifiedCount, nil
}

// DeleteStudent removes a student document. Returns the deleted count.
func (m *MongoDB) DeleteStudent(ctx context.Context, id string) (int64, error) {
	filter := bson.D{{"_id", id}}

	result, err := m.collection(studentsCollection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongodb delete error: %w", err)
	}
	return result.DeletedCount, nil
}

// StudentStats aggregates the roster of one school.
func (m *MongoDB) StudentStats(ctx context.Context, schoolID string) (*entity.StudentStats, error) {
	coll := m.collection(studentsCollection)
	school := bson.D{{"school_id", schoolID}}

	total, err := coll.CountDocuments(ctx, school)
	if err != nil {
		return nil, fmt.Errorf("mongodb count students: %w", err)
	}
	active, err := coll.CountDocuments(ctx, bson.D{{"school_id", schoolID}, {"status", entity.StudentActive}})
	if err != nil {
		return nil, fmt.Errorf("mongodb count students: %w", err)
	}
	inactive, err := coll.CountDocuments(ctx, bson.D{{"school_id", schoolID}, {"status", entity.StudentInactive}})
	if err != nil {
		return nil, fmt.Errorf("mongodb count students: %w", err)
	}

	byGrade, err := m.groupCount(ctx, studentsCollection, school, "grade")
	if err != nil {
		return nil, err
	}

	return &entity.StudentStats{
		Total:    total,
		Active:   active,
		Inactive: inactive,
		ByGrade:  byGrade,
	}, nil
}
