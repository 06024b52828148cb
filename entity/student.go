package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student lifecycle statuses.
const (
	StudentActive    = "active"
	StudentInactive  = "inactive"
	StudentSuspended = "suspended"
)

type Student struct {
	ID               string    `json:"id" bson:"_id"`
	FullName         string    `json:"full_name" bson:"full_name" validate:"required,min=1,max=200"`
	Email            string    `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,max=200,contains=@"`
	Phone            string    `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=50"`
	DateOfBirth      string    `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	Gender           string    `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Grade            string    `json:"grade,omitempty" bson:"grade,omitempty"`
	SchoolID         string    `json:"school_id" bson:"school_id" validate:"required"`
	ParentName       string    `json:"parent_name,omitempty" bson:"parent_name,omitempty"`
	ParentEmail      string    `json:"parent_email,omitempty" bson:"parent_email,omitempty" validate:"omitempty,contains=@"`
	ParentPhone      string    `json:"parent_phone,omitempty" bson:"parent_phone,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	MedicalNotes     string    `json:"medical_notes,omitempty" bson:"medical_notes,omitempty"`
	Status           string    `json:"status" bson:"status" validate:"omitempty,oneof=active inactive suspended"`
	EnrollmentDate   string    `json:"enrollment_date,omitempty" bson:"enrollment_date,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

// NewStudent builds a Student with generated id and timestamps.
// Status falls back to active when the caller left it empty.
func NewStudent(s Student) *Student {
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	if s.Status == "" {
		s.Status = StudentActive
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	return &s
}

// StudentUpdate carries the partial field set of a student update.
// Nil pointers mean "leave unchanged".
type StudentUpdate struct {
	FullName         *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Email            *string `json:"email,omitempty" validate:"omitempty,max=200"`
	Phone            *string `json:"phone,omitempty"`
	DateOfBirth      *string `json:"date_of_birth,omitempty"`
	Gender           *string `json:"gender,omitempty"`
	Grade            *string `json:"grade,omitempty"`
	ParentName       *string `json:"parent_name,omitempty"`
	ParentEmail      *string `json:"parent_email,omitempty"`
	ParentPhone      *string `json:"parent_phone,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	MedicalNotes     *string `json:"medical_notes,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended"`
}

// Fields returns the bson field set of the update, only including
// fields the caller actually sent.
func (u *StudentUpdate) Fields() map[string]interface{} {
	set := make(map[string]interface{})
	put := func(key string, val *string) {
		if val != nil {
			set[key] = *val
		}
	}
	put("full_name", u.FullName)
	put("email", u.Email)
	put("phone", u.Phone)
	put("date_of_birth", u.DateOfBirth)
	put("gender", u.Gender)
	put("grade", u.Grade)
	put("parent_name", u.ParentName)
	put("parent_email", u.ParentEmail)
	put("parent_phone", u.ParentPhone)
	put("emergency_contact", u.EmergencyContact)
	put("medical_notes", u.MedicalNotes)
	put("status", u.Status)
	return set
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	SchoolID string
	Status   string
	Grade    string
	Search   string
	Skip     int64
	Limit    int64
}

// StudentStats aggregates the roster of one school.
type StudentStats struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	ByGrade  map[string]int64 `json:"by_grade"`
}
