package entity

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment statuses. A drop is a status transition, never a delete,
// so the enrollment history of a class stays intact.
const (
	EnrollmentActive    = "active"
	EnrollmentDropped   = "dropped"
	EnrollmentCompleted = "completed"
)

type Enrollment struct {
	ID             string    `json:"id" bson:"_id"`
	ClassID        string    `json:"class_id" bson:"class_id"`
	StudentID      string    `json:"student_id" bson:"student_id"`
	StudentName    string    `json:"student_name" bson:"student_name"`
	EnrollmentDate time.Time `json:"enrollment_date" bson:"enrollment_date"`
	Status         string    `json:"status" bson:"status"`
}

// NewEnrollment creates an active enrollment for a (class, student) pair.
func NewEnrollment(classID, studentID, studentName string) *Enrollment {
	return &Enrollment{
		ID:             uuid.NewString(),
		ClassID:        classID,
		StudentID:      studentID,
		StudentName:    studentName,
		EnrollmentDate: time.Now().UTC(),
		Status:         EnrollmentActive,
	}
}

// EnrolledStudent is one row of a class roster: the enrollment joined
// with the full student document.
type EnrolledStudent struct {
	EnrollmentID   string    `json:"enrollment_id"`
	EnrollmentDate time.Time `json:"enrollment_date"`
	Student        Student   `json:"student"`
}
