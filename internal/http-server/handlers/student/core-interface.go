package student

import (
	"context"
	"sportmaps/entity"
	"sportmaps/internal/service/roster"
)

type Core interface {
	CreateStudent(ctx context.Context, student entity.Student) (*entity.Student, error)
	ListStudents(ctx context.Context, filter entity.StudentFilter) ([]entity.Student, error)
	// GetStudent returns nil when the id is unknown.
	GetStudent(ctx context.Context, id string) (*entity.Student, error)
	// UpdateStudent returns nil when the id is unknown.
	UpdateStudent(ctx context.Context, id string, update entity.StudentUpdate) (*entity.Student, error)
	// DeleteStudent reports whether a document was removed.
	DeleteStudent(ctx context.Context, id string) (bool, error)
	ImportRoster(ctx context.Context, filename string, payload []byte, schoolID string) (*roster.Result, error)
	StudentStats(ctx context.Context, schoolID string) (*entity.StudentStats, error)
}
