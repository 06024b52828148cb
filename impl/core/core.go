package core

import (
	"context"
	"log/slog"
	"sportmaps/entity"
	"sportmaps/internal/lib/sl"
	"sportmaps/internal/service/payment"
	"sportmaps/internal/service/recommend"
	"sportmaps/internal/service/roster"
)

type Repository interface {
	InsertStudent(ctx context.Context, student *entity.Student) error
	GetStudentByID(ctx context.Context, id string) (*entity.Student, error)
	ListStudents(ctx context.Context, filter entity.StudentFilter) ([]entity.Student, error)
	UpdateStudent(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteStudent(ctx context.Context, id string) (int64, error)
	StudentStats(ctx context.Context, schoolID string) (*entity.StudentStats, error)

	InsertClass(ctx context.Context, class *entity.Class) error
	GetClassByID(ctx context.Context, id string) (*entity.Class, error)
	ListClasses(ctx context.Context, filter entity.ClassFilter) ([]entity.Class, error)
	UpdateClass(ctx context.Context, id string, fields map[string]interface{}) (int64, error)
	DeleteClass(ctx context.Context, id string) (int64, error)
	ClassStats(ctx context.Context, schoolID string) (*entity.ClassStats, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, classID, studentID, studentName string) (*entity.Enrollment, error)
	Unenroll(ctx context.Context, classID, studentID string) error
	ListEnrolledStudents(ctx context.Context, classID string) ([]entity.EnrolledStudent, error)
	EnrolledCount(ctx context.Context, classID string) (int64, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.IntentResponse, error)
	ProcessDemoPayment(ctx context.Context, intentID string, simulateFailure bool) (*payment.Outcome, error)
	StudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error)
	StudentSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error)
	SchoolTransactions(ctx context.Context, schoolID string, days int) (*entity.SchoolTransactions, error)
	Cancel(ctx context.Context, subscriptionID string) error
}

type RosterImporter interface {
	Import(ctx context.Context, filename string, payload []byte, schoolID string) (*roster.Result, error)
}

type RecommendService interface {
	Recommend(ctx context.Context, profile recommend.UserProfile) ([]recommend.Recommendation, error)
}

type WebhookVerifier interface {
	Verify(body []byte, signature string) error
}

// Core composes the store and the domain services behind the handler
// interfaces.
type Core struct {
	repo        Repository
	enrollments EnrollmentService
	payments    PaymentService
	importer    RosterImporter
	recommender RecommendService
	verifier    WebhookVerifier
	log         *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetEnrollmentService(svc EnrollmentService) {
	c.enrollments = svc
}

func (c *Core) SetPaymentService(svc PaymentService) {
	c.payments = svc
}

func (c *Core) SetRosterImporter(importer RosterImporter) {
	c.importer = importer
}

func (c *Core) SetRecommendService(svc RecommendService) {
	c.recommender = svc
}

func (c *Core) SetWebhookVerifier(verifier WebhookVerifier) {
	c.verifier = verifier
}
