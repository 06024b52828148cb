package enrollment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"sportmaps/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	classes     map[string]*entity.Class
	enrollments []*entity.Enrollment
	students    map[string]entity.Student
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		classes:  make(map[string]*entity.Class),
		students: make(map[string]entity.Student),
	}
}

func (f *fakeRepo) GetClassByID(_ context.Context, id string) (*entity.Class, error) {
	return f.classes[id], nil
}

func (f *fakeRepo) InsertEnrollment(_ context.Context, e *entity.Enrollment) error {
	f.enrollments = append(f.enrollments, e)
	return nil
}

func (f *fakeRepo) GetActiveEnrollment(_ context.Context, classID, studentID string) (*entity.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.ClassID == classID && e.StudentID == studentID && e.Status == entity.EnrollmentActive {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) ListActiveEnrollments(_ context.Context, classID string) ([]entity.Enrollment, error) {
	var out []entity.Enrollment
	for _, e := range f.enrollments {
		if e.ClassID == classID && e.Status == entity.EnrollmentActive {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountActiveEnrollments(_ context.Context, classID string) (int64, error) {
	var n int64
	for _, e := range f.enrollments {
		if e.ClassID == classID && e.Status == entity.EnrollmentActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) DropEnrollment(_ context.Context, classID, studentID string) (int64, error) {
	for _, e := range f.enrollments {
		if e.ClassID == classID && e.StudentID == studentID && e.Status == entity.EnrollmentActive {
			e.Status = entity.EnrollmentDropped
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRepo) GetStudentsByIDs(_ context.Context, ids []string) ([]entity.Student, error) {
	var out []entity.Student
	for _, id := range ids {
		if st, ok := f.students[id]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(t *testing.T, capacity int) (*Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	repo.classes["c1"] = &entity.Class{ID: "c1", Name: "Futbol", Capacity: capacity}
	return NewService(repo, discardLogger()), repo
}

func TestEnroll(t *testing.T) {
	svc, _ := testService(t, 10)

	record, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "c1", record.ClassID)
	assert.Equal(t, "s1", record.StudentID)
	assert.Equal(t, "Ana", record.StudentName)
	assert.Equal(t, entity.EnrollmentActive, record.Status)
	assert.False(t, record.EnrollmentDate.IsZero())
}

func TestEnrollUnknownClass(t *testing.T) {
	svc, _ := testService(t, 10)

	_, err := svc.Enroll(context.Background(), "missing", "s1", "Ana")
	assert.ErrorIs(t, err, ErrClassNotFound)
}

func TestEnrollDuplicate(t *testing.T) {
	svc, _ := testService(t, 10)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "c1", "s1", "Ana")
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	count, err := svc.EnrolledCount(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEnrollCapacity(t *testing.T) {
	svc, _ := testService(t, 2)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), "c1", "s2", "Leo")
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "c1", "s3", "Mia")
	assert.ErrorIs(t, err, ErrClassFull)

	count, err := svc.EnrolledCount(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestEnrollZeroCapacityDefaults(t *testing.T) {
	svc, repo := testService(t, 0)

	for i := 0; i < entity.DefaultCapacity; i++ {
		repo.enrollments = append(repo.enrollments, &entity.Enrollment{
			ID:        fmt.Sprintf("e%d", i),
			ClassID:   "c1",
			StudentID: fmt.Sprintf("bulk%d", i),
			Status:    entity.EnrollmentActive,
		})
	}

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	assert.ErrorIs(t, err, ErrClassFull)
}

func TestUnenrollFreesSeat(t *testing.T) {
	svc, _ := testService(t, 1)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "c1", "s2", "Leo")
	require.ErrorIs(t, err, ErrClassFull)

	require.NoError(t, svc.Unenroll(context.Background(), "c1", "s1"))

	_, err = svc.Enroll(context.Background(), "c1", "s2", "Leo")
	assert.NoError(t, err)
}

func TestUnenrollTwice(t *testing.T) {
	svc, _ := testService(t, 10)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)

	require.NoError(t, svc.Unenroll(context.Background(), "c1", "s1"))
	assert.ErrorIs(t, svc.Unenroll(context.Background(), "c1", "s1"), ErrEnrollmentNotFound)
}

func TestReEnrollAfterDrop(t *testing.T) {
	svc, _ := testService(t, 10)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	require.NoError(t, svc.Unenroll(context.Background(), "c1", "s1"))

	record, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	assert.Equal(t, entity.EnrollmentActive, record.Status)
}

func TestListEnrolledStudentsSkipsDeleted(t *testing.T) {
	svc, repo := testService(t, 10)
	repo.students["s1"] = entity.Student{ID: "s1", FullName: "Ana"}

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	_, err = svc.Enroll(context.Background(), "c1", "s2", "Leo")
	require.NoError(t, err)

	roster, err := svc.ListEnrolledStudents(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Ana", roster[0].Student.FullName)
	assert.NotEmpty(t, roster[0].EnrollmentID)
}

func TestEnrollPublishesEvent(t *testing.T) {
	svc, _ := testService(t, 10)

	events := &captureEvents{}
	svc.SetEvents(events)

	_, err := svc.Enroll(context.Background(), "c1", "s1", "Ana")
	require.NoError(t, err)
	require.NoError(t, svc.Unenroll(context.Background(), "c1", "s1"))

	require.Len(t, events.types, 2)
	assert.Equal(t, "enrollment_created", events.types[0])
	assert.Equal(t, "enrollment_dropped", events.types[1])
}

type captureEvents struct {
	types []string
}

func (c *captureEvents) Publish(eventType string, _ interface{}) {
	c.types = append(c.types, eventType)
}
