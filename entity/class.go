package entity

import (
	"time"

	"github.com/google/uuid"
)

// Class statuses.
const (
	ClassActive    = "active"
	ClassInactive  = "inactive"
	ClassFull      = "full"
	ClassCancelled = "cancelled"
)

// DefaultCapacity applies when a class document carries no capacity.
const DefaultCapacity = 20

// ScheduleSlot is one weekly time slot of a class.
type ScheduleSlot struct {
	Day       string `json:"day" bson:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" bson:"start_time" validate:"required,hhmm"`
	EndTime   string `json:"end_time" bson:"end_time" validate:"required,hhmm"`
}

type Class struct {
	ID          string         `json:"id" bson:"_id"`
	Name        string         `json:"name" bson:"name" validate:"required,min=1,max=200"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Sport       string         `json:"sport" bson:"sport" validate:"required,min=1,max=100"`
	Level       string         `json:"level" bson:"level" validate:"required,oneof=beginner intermediate advanced"`
	SchoolID    string         `json:"school_id" bson:"school_id" validate:"required"`
	CoachID     string         `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	CoachName   string         `json:"coach_name,omitempty" bson:"coach_name,omitempty"`
	Capacity    int            `json:"capacity" bson:"capacity" validate:"min=1,max=100"`
	Schedule    []ScheduleSlot `json:"schedule" bson:"schedule" validate:"dive"`
	Location    string         `json:"location,omitempty" bson:"location,omitempty"`
	Price       float64        `json:"price,omitempty" bson:"price,omitempty" validate:"min=0"`
	Status      string         `json:"status" bson:"status" validate:"omitempty,oneof=active inactive full cancelled"`
	StartDate   string         `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     string         `json:"end_date,omitempty" bson:"end_date,omitempty"`

	// EnrolledCount is derived from the enrollments collection on every
	// read. The stored value is never the source of truth.
	EnrolledCount int64 `json:"enrolled_count" bson:"-"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewClass builds a Class with generated id, default capacity and timestamps.
func NewClass(c Class) *Class {
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Status == "" {
		c.Status = ClassActive
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	return &c
}

// ClassUpdate carries the partial field set of a class update.
type ClassUpdate struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string         `json:"description,omitempty"`
	Sport       *string         `json:"sport,omitempty" validate:"omitempty,min=1,max=100"`
	Level       *string         `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	CoachID     *string         `json:"coach_id,omitempty"`
	CoachName   *string         `json:"coach_name,omitempty"`
	Capacity    *int            `json:"capacity,omitempty" validate:"omitempty,min=1,max=100"`
	Schedule    *[]ScheduleSlot `json:"schedule,omitempty" validate:"omitempty,dive"`
	Location    *string         `json:"location,omitempty"`
	Price       *float64        `json:"price,omitempty" validate:"omitempty,min=0"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,oneof=active inactive full cancelled"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
}

func (u *ClassUpdate) Fields() map[string]interface{} {
	set := make(map[string]interface{})
	put := func(key string, val *string) {
		if val != nil {
			set[key] = *val
		}
	}
	put("name", u.Name)
	put("description", u.Description)
	put("sport", u.Sport)
	put("level", u.Level)
	put("coach_id", u.CoachID)
	put("coach_name", u.CoachName)
	put("location", u.Location)
	put("status", u.Status)
	put("start_date", u.StartDate)
	put("end_date", u.EndDate)
	if u.Capacity != nil {
		set["capacity"] = *u.Capacity
	}
	if u.Schedule != nil {
		set["schedule"] = *u.Schedule
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	return set
}

// ClassFilter narrows class listings.
type ClassFilter struct {
	SchoolID string
	Sport    string
	Level    string
	Status   string
	CoachID  string
	Search   string
	Skip     int64
	Limit    int64
}

// ClassStats aggregates the catalog of one school.
type ClassStats struct {
	Total         int64            `json:"total"`
	Active        int64            `json:"active"`
	Full          int64            `json:"full"`
	BySport       map[string]int64 `json:"by_sport"`
	TotalEnrolled int64            `json:"total_enrolled"`
}
