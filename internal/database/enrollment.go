package repository

import (
	"context"
	"errors"
	"fmt"
	"sportmaps/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertEnrollment stores a new enrollment record.
func (m *MongoDB) InsertEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	_, err := m.collection(enrollmentsCollection).InsertOne(ctx, enrollment)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// GetActiveEnrollment retrieves the active enrollment for a (class,
// student) pair. Returns nil when none exists.
func (m *MongoDB) GetActiveEnrollment(ctx context.Context, classID, studentID string) (*entity.Enrollment, error) {
	filter := bson.D{
		{"class_id", classID},
		{"student_id", studentID},
		{"status", entity.EnrollmentActive},
	}

	var enrollment entity.Enrollment
	err := m.collection(enrollmentsCollection).FindOne(ctx, filter).Decode(&enrollment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}

	return &enrollment, nil
}

// ListActiveEnrollments retrieves all active enrollments of a class in
// store order.
func (m *MongoDB) ListActiveEnrollments(ctx context.Context, classID string) ([]entity.Enrollment, error) {
	filter := bson.D{
		{"class_id", classID},
		{"status", entity.EnrollmentActive},
	}

	cursor, err := m.collection(enrollmentsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find enrollments: %w", err)
	}
	defer cursor.Close(ctx)

	var enrollments []entity.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, fmt.Errorf("mongodb decode enrollments: %w", err)
	}

	return enrollments, nil
}

// CountActiveEnrollments returns the live count of active enrollments
// for a class.
func (m *MongoDB) CountActiveEnrollments(ctx context.Context, classID string) (int64, error) {
	filter := bson.D{
		{"class_id", classID},
		{"status", entity.EnrollmentActive},
	}

	count, err := m.collection(enrollmentsCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("mongodb count enrollments: %w", err)
	}
	return count, nil
}

// DropEnrollment transitions the active enrollment of a (class,
// student) pair to dropped. Returns the modified count; the record is
// never deleted so history stays intact.
func (m *MongoDB) DropEnrollment(ctx context.Context, classID, studentID string) (int64, error) {
	filter := bson.D{
		{"class_id", classID},
		{"student_id", studentID},
		{"status", entity.EnrollmentActive},
	}
	update := bson.M{"$set": bson.M{"status": entity.EnrollmentDropped}}

	result, err := m.collection(enrollmentsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mongodb update error: %w", err)
	}
	return result.ModifiedCount, nil
}
