package roster

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"sportmaps/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	students []entity.Student
	failFor  string
}

func (m *memRepo) InsertStudent(_ context.Context, s *entity.Student) error {
	if m.failFor != "" && s.FullName == m.failFor {
		return errors.New("insert failed")
	}
	m.students = append(m.students, *s)
	return nil
}

func testImporter(repo Repository) *Importer {
	return NewImporter(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestImport(t *testing.T) {
	repo := &memRepo{}
	imp := testImporter(repo)

	payload := []byte("full_name,email,grade,gender\n" +
		"Ana Torres,ana@example.com,5,Female\n" +
		"Leo Ruiz,leo@example.com,6,male\n")

	result, err := imp.Import(context.Background(), "roster.csv", payload, "school_1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	require.Len(t, repo.students, 2)

	ana := repo.students[0]
	assert.NotEmpty(t, ana.ID)
	assert.Equal(t, "Ana Torres", ana.FullName)
	assert.Equal(t, "female", ana.Gender)
	assert.Equal(t, "school_1", ana.SchoolID)
	assert.Equal(t, entity.StudentActive, ana.Status)
}

func TestImportPartialSuccess(t *testing.T) {
	repo := &memRepo{}
	imp := testImporter(repo)

	payload := []byte("full_name,email\n" +
		"Ana Torres,ana@example.com\n" +
		",missing@example.com\n" +
		"Leo Ruiz,leo@example.com\n")

	result, err := imp.Import(context.Background(), "roster.csv", payload, "school_1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "Missing required field: full_name", result.Errors[0].Error)
	require.Len(t, repo.students, 2)
}

func TestImportRowOrderIndependence(t *testing.T) {
	repo := &memRepo{}
	imp := testImporter(repo)

	// same rows, bad one first: the good row still imports
	payload := []byte("full_name,email\n" +
		",missing@example.com\n" +
		"Ana Torres,ana@example.com\n")

	result, err := imp.Import(context.Background(), "roster.csv", payload, "school_1")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
}

func TestImportInvalidEmail(t *testing.T) {
	repo := &memRepo{}
	imp := testImporter(repo)

	payload := []byte("full_name,email\n" +
		"Ana Torres,not-an-email\n")

	result, err := imp.Import(context.Background(), "roster.csv", payload, "school_1")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Invalid email format", result.Errors[0].Error)
}

func TestImportRejectsNonCSV(t *testing.T) {
	imp := testImporter(&memRepo{})

	_, err := imp.Import(context.Background(), "roster.xlsx", []byte("full_name\nAna\n"), "school_1")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestImportRejectsInvalidEncoding(t *testing.T) {
	imp := testImporter(&memRepo{})

	_, err := imp.Import(context.Background(), "roster.csv", []byte{0xff, 0xfe, 0x00}, "school_1")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestImportHeaderOnly(t *testing.T) {
	imp := testImporter(&memRepo{})

	result, err := imp.Import(context.Background(), "roster.csv", []byte("full_name,email\n"), "school_1")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Students)
}

func TestImportEmptyFile(t *testing.T) {
	imp := testImporter(&memRepo{})

	result, err := imp.Import(context.Background(), "roster.csv", nil, "school_1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 0, result.Failed)
}

func TestImportInsertFailureCountsRow(t *testing.T) {
	repo := &memRepo{failFor: "Leo Ruiz"}
	imp := testImporter(repo)

	payload := []byte("full_name\n" +
		"Ana Torres\n" +
		"Leo Ruiz\n")

	result, err := imp.Import(context.Background(), "roster.csv", payload, "school_1")
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
}
