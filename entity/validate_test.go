package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStudent(t *testing.T) {
	student := Student{FullName: "Ana Torres", SchoolID: "school_1"}
	assert.NoError(t, Validate(student))
}

func TestValidateStudentMissingName(t *testing.T) {
	err := Validate(Student{SchoolID: "school_1"})
	require.Error(t, err)
	assert.Equal(t, "Missing required field: full_name", err.Error())
}

func TestValidateStudentBadEmail(t *testing.T) {
	err := Validate(Student{FullName: "Ana", SchoolID: "school_1", Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email format", err.Error())
}

func TestValidateStudentBadGender(t *testing.T) {
	err := Validate(Student{FullName: "Ana", SchoolID: "school_1", Gender: "unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid value for gender")
}

func TestValidateClass(t *testing.T) {
	class := Class{
		Name:     "Fútbol Juvenil",
		Sport:    "futbol",
		Level:    "beginner",
		SchoolID: "school_1",
		Capacity: 20,
		Schedule: []ScheduleSlot{{Day: "monday", StartTime: "16:00", EndTime: "17:30"}},
	}
	assert.NoError(t, Validate(class))
}

func TestValidateClassBadLevel(t *testing.T) {
	err := Validate(Class{Name: "X", Sport: "futbol", Level: "expert", SchoolID: "s", Capacity: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid value for level")
}

func TestValidateClassBadScheduleTime(t *testing.T) {
	class := Class{
		Name:     "X",
		Sport:    "futbol",
		Level:    "beginner",
		SchoolID: "s",
		Capacity: 10,
		Schedule: []ScheduleSlot{{Day: "monday", StartTime: "25:00", EndTime: "17:30"}},
	}
	err := Validate(class)
	require.Error(t, err)
	assert.Equal(t, "Time must be in HH:MM format", err.Error())
}

func TestValidateClassCapacityBounds(t *testing.T) {
	class := Class{Name: "X", Sport: "futbol", Level: "beginner", SchoolID: "s", Capacity: 101}
	err := Validate(class)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")
}

func TestNewStudentDefaults(t *testing.T) {
	student := NewStudent(Student{FullName: "Ana", SchoolID: "school_1"})
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, StudentActive, student.Status)
	assert.False(t, student.CreatedAt.IsZero())
	assert.Equal(t, student.CreatedAt, student.UpdatedAt)
}

func TestNewClassDefaults(t *testing.T) {
	class := NewClass(Class{Name: "X", Sport: "futbol", Level: "beginner", SchoolID: "s"})
	assert.NotEmpty(t, class.ID)
	assert.Equal(t, DefaultCapacity, class.Capacity)
	assert.Equal(t, ClassActive, class.Status)
}

func TestStudentUpdateFields(t *testing.T) {
	name := "Ana Torres"
	status := "inactive"
	update := StudentUpdate{FullName: &name, Status: &status}

	fields := update.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "Ana Torres", fields["full_name"])
	assert.Equal(t, "inactive", fields["status"])
}
