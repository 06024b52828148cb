package core

import (
	"context"
	"fmt"
	"sportmaps/entity"
	"sportmaps/internal/service/roster"
)

func (c *Core) CreateStudent(ctx context.Context, student entity.Student) (*entity.Student, error) {
	created := entity.NewStudent(student)
	if err := c.repo.InsertStudent(ctx, created); err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return created, nil
}

func (c *Core) ListStudents(ctx context.Context, filter entity.StudentFilter) ([]entity.Student, error) {
	return c.repo.ListStudents(ctx, filter)
}

func (c *Core) GetStudent(ctx context.Context, id string) (*entity.Student, error) {
	return c.repo.GetStudentByID(ctx, id)
}

func (c *Core) UpdateStudent(ctx context.Context, id string, update entity.StudentUpdate) (*entity.Student, error) {
	fields := update.Fields()
	if len(fields) == 0 {
		return c.repo.GetStudentByID(ctx, id)
	}

	if _, err := c.repo.UpdateStudent(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	return c.repo.GetStudentByID(ctx, id)
}

func (c *Core) DeleteStudent(ctx context.Context, id string) (bool, error) {
	deleted, err := c.repo.DeleteStudent(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	return deleted > 0, nil
}

func (c *Core) ImportRoster(ctx context.Context, filename string, payload []byte, schoolID string) (*roster.Result, error) {
	return c.importer.Import(ctx, filename, payload, schoolID)
}

func (c *Core) StudentStats(ctx context.Context, schoolID string) (*entity.StudentStats, error) {
	return c.repo.StudentStats(ctx, schoolID)
}
