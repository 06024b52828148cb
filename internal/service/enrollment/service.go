package enrollment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sportmaps/entity"
	"sportmaps/internal/lib/sl"
)

// Domain failures of the enrollment lifecycle. Handlers map these to
// 404 (not found) and 400 (conflict) responses.
var (
	ErrClassNotFound      = errors.New("class not found")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in this class")
	ErrClassFull          = errors.New("class is full")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type Repository interface {
	GetClassByID(ctx context.Context, id string) (*entity.Class, error)
	InsertEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
	GetActiveEnrollment(ctx context.Context, classID, studentID string) (*entity.Enrollment, error)
	ListActiveEnrollments(ctx context.Context, classID string) ([]entity.Enrollment, error)
	CountActiveEnrollments(ctx context.Context, classID string) (int64, error)
	DropEnrollment(ctx context.Context, classID, studentID string) (int64, error)
	GetStudentsByIDs(ctx context.Context, ids []string) ([]entity.Student, error)
}

// Events receives enrollment lifecycle notifications.
type Events interface {
	Publish(eventType string, data interface{})
}

// Service mediates the transition of (student, class) pairs into and
// out of the active-enrollment state while preserving the capacity
// invariant.
type Service struct {
	repo   Repository
	events Events
	log    *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  logger.With(sl.Module("enrollment-service")),
	}
}

func (s *Service) SetEvents(events Events) {
	s.events = events
}

// Enroll admits a student into a class. Check order: class exists,
// no active duplicate, active count below capacity, then insert.
// Any failure short-circuits before the insert; no partial state is
// created. The count-then-insert window is not atomic across
// concurrent requests.
func (s *Service) Enroll(ctx context.Context, classID, studentID, studentName string) (*entity.Enrollment, error) {
	class, err := s.repo.GetClassByID(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	existing, err := s.repo.GetActiveEnrollment(ctx, classID, studentID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	count, err := s.repo.CountActiveEnrollments(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}
	capacity := class.Capacity
	if capacity == 0 {
		capacity = entity.DefaultCapacity
	}
	if count >= int64(capacity) {
		return nil, ErrClassFull
	}

	record := entity.NewEnrollment(classID, studentID, studentName)
	if err = s.repo.InsertEnrollment(ctx, record); err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	s.log.With(
		slog.String("class_id", classID),
		slog.String("student_id", studentID),
	).Debug("student enrolled")
	s.publish("enrollment_created", record)

	return record, nil
}

// Unenroll transitions the active enrollment of the pair to dropped.
// A second call yields ErrEnrollmentNotFound since the record is no
// longer active; that is the expected terminal behavior.
func (s *Service) Unenroll(ctx context.Context, classID, studentID string) error {
	modified, err := s.repo.DropEnrollment(ctx, classID, studentID)
	if err != nil {
		return fmt.Errorf("drop enrollment: %w", err)
	}
	if modified == 0 {
		return ErrEnrollmentNotFound
	}

	s.log.With(
		slog.String("class_id", classID),
		slog.String("student_id", studentID),
	).Debug("student unenrolled")
	s.publish("enrollment_dropped", map[string]string{
		"class_id":   classID,
		"student_id": studentID,
	})

	return nil
}

// ListEnrolledStudents returns the active roster of a class joined
// with full student documents. Enrollments whose student has been
// deleted are silently dropped.
func (s *Service) ListEnrolledStudents(ctx context.Context, classID string) ([]entity.EnrolledStudent, error) {
	enrollments, err := s.repo.ListActiveEnrollments(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	ids := make([]string, 0, len(enrollments))
	for _, e := range enrollments {
		ids = append(ids, e.StudentID)
	}
	students, err := s.repo.GetStudentsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get students: %w", err)
	}

	byID := make(map[string]entity.Student, len(students))
	for _, st := range students {
		byID[st.ID] = st
	}

	roster := make([]entity.EnrolledStudent, 0, len(enrollments))
	for _, e := range enrollments {
		student, ok := byID[e.StudentID]
		if !ok {
			continue
		}
		roster = append(roster, entity.EnrolledStudent{
			EnrollmentID:   e.ID,
			EnrollmentDate: e.EnrollmentDate,
			Student:        student,
		})
	}

	return roster, nil
}

// EnrolledCount is the live count of active enrollments for a class.
// It populates enrolled_count on every class read; the stored value is
// never trusted.
func (s *Service) EnrolledCount(ctx context.Context, classID string) (int64, error) {
	return s.repo.CountActiveEnrollments(ctx, classID)
}

func (s *Service) publish(eventType string, data interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}
