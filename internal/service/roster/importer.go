package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sportmaps/entity"
	"sportmaps/internal/lib/sl"
	"strings"
	"time"
	"unicode/utf8"
)

// Structural failures that abort the whole request. Row-level
// validation failures never do; they are accumulated in the result.
var (
	ErrUnsupportedFile = errors.New("only CSV files are supported")
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// RowError attributes one failed row. Row numbers are spreadsheet row
// numbers: the header is row 1, so the first data row is row 2.
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Result partitions a bulk import into successes and itemized
// failures, in file order.
type Result struct {
	Success  int              `json:"success"`
	Failed   int              `json:"failed"`
	Errors   []RowError       `json:"errors"`
	Students []entity.Student `json:"students"`
}

type Repository interface {
	InsertStudent(ctx context.Context, student *entity.Student) error
}

// Importer ingests a tabular student roster for one school, importing
// every valid row and reporting exactly which rows failed and why.
type Importer struct {
	repo Repository
	log  *slog.Logger
}

func NewImporter(repo Repository, logger *slog.Logger) *Importer {
	return &Importer{
		repo: repo,
		log:  logger.With(sl.Module("roster-importer")),
	}
}

// Import parses the uploaded roster and inserts one student per valid
// row. school_id is forced from the request for every row.
func (i *Importer) Import(ctx context.Context, filename string, payload []byte, schoolID string) (*Result, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, ErrUnsupportedFile
	}
	if !utf8.Valid(payload) {
		return nil, ErrInvalidEncoding
	}

	reader := csv.NewReader(strings.NewReader(string(payload)))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{Errors: []RowError{}, Students: []entity.Student{}}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = idx
	}

	result := &Result{
		Errors:   []RowError{},
		Students: []entity.Student{},
	}

	// Data rows are numbered from 2: row 1 is the header. This matches
	// the row numbers a spreadsheet shows the person fixing the file.
	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Error: err.Error()})
			result.Failed++
			continue
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		fullName := field("full_name")
		if fullName == "" {
			result.Errors = append(result.Errors, RowError{
				Row:   rowNum,
				Error: "Missing required field: full_name",
			})
			result.Failed++
			continue
		}

		student := entity.NewStudent(entity.Student{
			FullName:         fullName,
			Email:            field("email"),
			Phone:            field("phone"),
			DateOfBirth:      field("date_of_birth"),
			Gender:           strings.ToLower(field("gender")),
			Grade:            field("grade"),
			SchoolID:         schoolID,
			ParentName:       field("parent_name"),
			ParentEmail:      field("parent_email"),
			ParentPhone:      field("parent_phone"),
			EmergencyContact: field("emergency_contact"),
			Status:           entity.StudentActive,
			EnrollmentDate:   time.Now().UTC().Format(time.RFC3339),
		})

		if err = entity.Validate(student); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Error: err.Error()})
			result.Failed++
			continue
		}

		// one insert per row: a crash mid-batch leaves the committed
		// prefix in place, which is the intended partial-success model
		if err = i.repo.InsertStudent(ctx, student); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Error: err.Error()})
			result.Failed++
			continue
		}

		result.Students = append(result.Students, *student)
		result.Success++
	}

	i.log.With(
		slog.String("school_id", schoolID),
		slog.Int("success", result.Success),
		slog.Int("failed", result.Failed),
	).Info("roster imported")

	return result, nil
}
