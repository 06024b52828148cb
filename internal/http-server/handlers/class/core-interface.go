package class

import (
	"context"
	"sportmaps/entity"
)

type Core interface {
	CreateClass(ctx context.Context, class entity.Class) (*entity.Class, error)
	ListClasses(ctx context.Context, filter entity.ClassFilter) ([]entity.Class, error)
	// GetClass returns nil when the id is unknown.
	GetClass(ctx context.Context, id string) (*entity.Class, error)
	// UpdateClass returns nil when the id is unknown.
	UpdateClass(ctx context.Context, id string, update entity.ClassUpdate) (*entity.Class, error)
	// DeleteClass reports whether a document was removed.
	DeleteClass(ctx context.Context, id string) (bool, error)
	ClassStats(ctx context.Context, schoolID string) (*entity.ClassStats, error)

	Enroll(ctx context.Context, classID, studentID, studentName string) (*entity.Enrollment, error)
	Unenroll(ctx context.Context, classID, studentID string) error
	ClassStudents(ctx context.Context, classID string) ([]entity.EnrolledStudent, error)
}
