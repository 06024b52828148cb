package core

import (
	"context"
	"fmt"
	"log/slog"
	"sportmaps/entity"
	"sportmaps/internal/lib/sl"
)

func (c *Core) CreateClass(ctx context.Context, class entity.Class) (*entity.Class, error) {
	created := entity.NewClass(class)
	if err := c.repo.InsertClass(ctx, created); err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}
	return created, nil
}

func (c *Core) ListClasses(ctx context.Context, filter entity.ClassFilter) ([]entity.Class, error) {
	classes, err := c.repo.ListClasses(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range classes {
		c.fillEnrolledCount(ctx, &classes[i])
	}
	return classes, nil
}

func (c *Core) GetClass(ctx context.Context, id string) (*entity.Class, error) {
	class, err := c.repo.GetClassByID(ctx, id)
	if err != nil || class == nil {
		return class, err
	}
	c.fillEnrolledCount(ctx, class)
	return class, nil
}

func (c *Core) UpdateClass(ctx context.Context, id string, update entity.ClassUpdate) (*entity.Class, error) {
	fields := update.Fields()
	if len(fields) > 0 {
		if _, err := c.repo.UpdateClass(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update class: %w", err)
		}
	}

	return c.GetClass(ctx, id)
}

func (c *Core) DeleteClass(ctx context.Context, id string) (bool, error) {
	deleted, err := c.repo.DeleteClass(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	return deleted > 0, nil
}

func (c *Core) ClassStats(ctx context.Context, schoolID string) (*entity.ClassStats, error) {
	return c.repo.ClassStats(ctx, schoolID)
}

func (c *Core) Enroll(ctx context.Context, classID, studentID, studentName string) (*entity.Enrollment, error) {
	return c.enrollments.Enroll(ctx, classID, studentID, studentName)
}

func (c *Core) Unenroll(ctx context.Context, classID, studentID string) error {
	return c.enrollments.Unenroll(ctx, classID, studentID)
}

func (c *Core) ClassStudents(ctx context.Context, classID string) ([]entity.EnrolledStudent, error) {
	return c.enrollments.ListEnrolledStudents(ctx, classID)
}

// fillEnrolledCount derives the live enrollment count; the value is never
// stored on the class document.
func (c *Core) fillEnrolledCount(ctx context.Context, class *entity.Class) {
	count, err := c.enrollments.EnrolledCount(ctx, class.ID)
	if err != nil {
		c.log.Warn("count enrollments", slog.String("class_id", class.ID), sl.Err(err))
		return
	}
	class.EnrolledCount = count
}
