package class

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sportmaps/entity"
	"sportmaps/internal/lib/api/response"
	"sportmaps/internal/service/enrollment"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCore struct {
	enrollErr   error
	unenrollErr error
	enrolled    *entity.Enrollment
}

func (s *stubCore) CreateClass(_ context.Context, _ entity.Class) (*entity.Class, error) {
	return nil, nil
}

func (s *stubCore) ListClasses(_ context.Context, _ entity.ClassFilter) ([]entity.Class, error) {
	return nil, nil
}

func (s *stubCore) GetClass(_ context.Context, _ string) (*entity.Class, error) {
	return nil, nil
}

func (s *stubCore) UpdateClass(_ context.Context, _ string, _ entity.ClassUpdate) (*entity.Class, error) {
	return nil, nil
}

func (s *stubCore) DeleteClass(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *stubCore) ClassStats(_ context.Context, _ string) (*entity.ClassStats, error) {
	return nil, nil
}

func (s *stubCore) Enroll(_ context.Context, classID, studentID, studentName string) (*entity.Enrollment, error) {
	if s.enrollErr != nil {
		return nil, s.enrollErr
	}
	s.enrolled = entity.NewEnrollment(classID, studentID, studentName)
	return s.enrolled, nil
}

func (s *stubCore) Unenroll(_ context.Context, _, _ string) error {
	return s.unenrollErr
}

func (s *stubCore) ClassStudents(_ context.Context, _ string) ([]entity.EnrolledStudent, error) {
	return nil, nil
}

func testRouter(core *stubCore) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	router.Post("/api/classes/{class_id}/enroll", Enroll(log, core))
	router.Delete("/api/classes/{class_id}/enroll/{student_id}", Unenroll(log, core))
	return router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestEnrollHandler(t *testing.T) {
	core := &stubCore{}
	router := testRouter(core)

	req := httptest.NewRequest(http.MethodPost, "/api/classes/c1/enroll?student_id=s1&student_name=Ana", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, core.enrolled)
	assert.Equal(t, "c1", core.enrolled.ClassID)
	assert.Equal(t, "s1", core.enrolled.StudentID)
}

func TestEnrollHandlerMissingParams(t *testing.T) {
	router := testRouter(&stubCore{})

	req := httptest.NewRequest(http.MethodPost, "/api/classes/c1/enroll?student_id=s1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnrollHandlerErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"unknown class", enrollment.ErrClassNotFound, http.StatusNotFound, "Class not found"},
		{"duplicate", enrollment.ErrAlreadyEnrolled, http.StatusBadRequest, "Student already enrolled in this class"},
		{"full", enrollment.ErrClassFull, http.StatusBadRequest, "Class is full"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := testRouter(&stubCore{enrollErr: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/classes/c1/enroll?student_id=s1&student_name=Ana", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
			resp := decode(t, rec)
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestUnenrollHandler(t *testing.T) {
	router := testRouter(&stubCore{})

	req := httptest.NewRequest(http.MethodDelete, "/api/classes/c1/enroll/s1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnenrollHandlerNotFound(t *testing.T) {
	router := testRouter(&stubCore{unenrollErr: enrollment.ErrEnrollmentNotFound})

	req := httptest.NewRequest(http.MethodDelete, "/api/classes/c1/enroll/s1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "Enrollment not found", resp.Message)
}
