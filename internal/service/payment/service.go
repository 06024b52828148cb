package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sportmaps/entity"
	"sportmaps/internal/lib/sl"
	"time"

	"github.com/google/uuid"
)

// Domain failures of the payment pipeline.
var (
	ErrIntentNotFound       = errors.New("payment intent not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type Repository interface {
	InsertPaymentIntent(ctx context.Context, intent *entity.PaymentIntent) error
	GetPaymentIntent(ctx context.Context, id string) (*entity.PaymentIntent, error)
	SetPaymentIntentStatus(ctx context.Context, id, status string) error
	InsertTransaction(ctx context.Context, txn *entity.Transaction) error
	ListStudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error)
	ListSchoolTransactions(ctx context.Context, schoolID string, since time.Time) ([]entity.Transaction, error)
	InsertSubscription(ctx context.Context, sub *entity.Subscription) error
	ListActiveSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error)
	CancelSubscription(ctx context.Context, id string) (int64, error)
}

// Events receives payment outcome notifications.
type Events interface {
	Publish(eventType string, data interface{})
}

// IntentRequest is the payload of a new payment intent.
type IntentRequest struct {
	StudentID     string `json:"student_id" validate:"required"`
	ProgramID     string `json:"program_id" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=pse card nequi"`
	Description   string `json:"description" validate:"required"`
	ParentName    string `json:"parent_name" validate:"required"`
	ParentEmail   string `json:"parent_email" validate:"required,contains=@"`
	ParentPhone   string `json:"parent_phone"`
}

// IntentResponse points the caller at the simulated checkout.
type IntentResponse struct {
	IntentID      string `json:"intent_id"`
	CheckoutURL   string `json:"checkout_url"`
	Amount        int64  `json:"amount"`
	PaymentMethod string `json:"payment_method"`
}

// Outcome is the result of processing a demo payment.
type Outcome struct {
	Success           bool   `json:"success"`
	TransactionID     string `json:"transaction_id"`
	Status            string `json:"status"`
	Reference         string `json:"reference"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
	Message           string `json:"message"`
}

// Service is a simulated payment pipeline: intents, demo processing,
// transaction history and recurring subscriptions. No real gateway is
// involved; sandbox identifiers get synthetic data.
type Service struct {
	repo        Repository
	events      Events
	successRate float64
	rng         *rand.Rand
	log         *slog.Logger
}

const demoSchoolID = "school_elite"

func NewService(repo Repository, successRate float64, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		successRate: successRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		log:         logger.With(sl.Module("payment-service")),
	}
}

func (s *Service) SetEvents(events Events) {
	s.events = events
}

// CreateIntent registers a pending payment intent and returns the
// simulated checkout location.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResponse, error) {
	intent := entity.NewPaymentIntent(req.StudentID, req.ProgramID, req.Amount, req.PaymentMethod, req.Description, map[string]string{
		"parent_name":  req.ParentName,
		"parent_email": req.ParentEmail,
		"parent_phone": req.ParentPhone,
	})

	if err := s.repo.InsertPaymentIntent(ctx, intent); err != nil {
		return nil, fmt.Errorf("insert intent: %w", err)
	}

	return &IntentResponse{
		IntentID:      intent.ID,
		CheckoutURL:   fmt.Sprintf("/payment-processing?intent_id=%s&method=%s", intent.ID, intent.PaymentMethod),
		Amount:        intent.Amount,
		PaymentMethod: intent.PaymentMethod,
	}, nil
}

// ProcessDemoPayment simulates gateway processing of an intent:
// it records a transaction, updates the intent status, and on approval
// opens a monthly subscription.
func (s *Service) ProcessDemoPayment(ctx context.Context, intentID string, simulateFailure bool) (*Outcome, error) {
	intent, err := s.repo.GetPaymentIntent(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("get intent: %w", err)
	}
	if intent == nil {
		return nil, ErrIntentNotFound
	}

	status := entity.PaymentApproved
	if simulateFailure || s.rng.Float64() > s.successRate {
		status = entity.PaymentRejected
	}

	now := time.Now().UTC()
	txn := &entity.Transaction{
		ID:              uuid.NewString(),
		PaymentIntentID: intentID,
		StudentID:       intent.StudentID,
		SchoolID:        demoSchoolID,
		ProgramID:       intent.ProgramID,
		Amount:          intent.Amount,
		PaymentMethod:   intent.PaymentMethod,
		Status:          status,
		Reference:       s.reference(),
		TransactionDate: now,
		Metadata:        intent.Metadata,
	}
	if status == entity.PaymentApproved {
		txn.AuthorizationCode = s.authCode()
	}

	if err = s.repo.InsertTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	if err = s.repo.SetPaymentIntentStatus(ctx, intentID, status); err != nil {
		return nil, fmt.Errorf("update intent: %w", err)
	}

	if status == entity.PaymentApproved {
		lastCharge := now
		sub := &entity.Subscription{
			ID:             uuid.NewString(),
			StudentID:      intent.StudentID,
			ProgramID:      intent.ProgramID,
			SchoolID:       demoSchoolID,
			Amount:         intent.Amount,
			PaymentMethod:  intent.PaymentMethod,
			Status:         entity.SubscriptionActive,
			NextChargeDate: now.AddDate(0, 0, 30),
			LastChargeDate: &lastCharge,
			CreatedAt:      now,
		}
		switch intent.PaymentMethod {
		case "card":
			sub.CardLast4 = "1234"
		case "pse":
			sub.BankName = "Bancolombia"
		}
		if err = s.repo.InsertSubscription(ctx, sub); err != nil {
			return nil, fmt.Errorf("insert subscription: %w", err)
		}
	}

	s.log.With(
		slog.String("intent_id", intentID),
		slog.String("status", status),
	).Info("demo payment processed")
	s.publish("payment_"+status, txn)

	message := "Pago aprobado exitosamente"
	if status != entity.PaymentApproved {
		message = "Pago rechazado"
	}
	return &Outcome{
		Success:           status == entity.PaymentApproved,
		TransactionID:     txn.ID,
		Status:            status,
		Reference:         txn.Reference,
		AuthorizationCode: txn.AuthorizationCode,
		Message:           message,
	}, nil
}

// StudentTransactions returns the transaction history of a student.
// Sandbox students get synthetic history instead of stored state.
func (s *Service) StudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error) {
	if isDemoStudent(studentID) {
		return s.demoTransactions(studentID), nil
	}
	return s.repo.ListStudentTransactions(ctx, studentID, limit)
}

// StudentSubscriptions returns the active subscriptions of a student,
// synthetic for sandbox students.
func (s *Service) StudentSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error) {
	if isDemoStudent(studentID) {
		return []entity.Subscription{s.demoSubscription(studentID)}, nil
	}
	return s.repo.ListActiveSubscriptions(ctx, studentID)
}

// SchoolTransactions returns the recent ledger of a school with totals
// and approval rate. Sandbox schools get synthetic data.
func (s *Service) SchoolTransactions(ctx context.Context, schoolID string, days int) (*entity.SchoolTransactions, error) {
	if isDemoSchool(schoolID) {
		return s.demoSchoolTransactions(schoolID), nil
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	transactions, err := s.repo.ListSchoolTransactions(ctx, schoolID, since)
	if err != nil {
		return nil, err
	}

	var totalAmount int64
	var approved int
	for _, txn := range transactions {
		if txn.Status == entity.PaymentApproved {
			totalAmount += txn.Amount
			approved++
		}
	}
	successRate := 0.0
	if len(transactions) > 0 {
		successRate = float64(approved) / float64(len(transactions))
	}

	return &entity.SchoolTransactions{
		Transactions: transactions,
		TotalAmount:  totalAmount,
		SuccessRate:  successRate,
	}, nil
}

// Cancel cancels a recurring subscription.
func (s *Service) Cancel(ctx context.Context, subscriptionID string) error {
	modified, err := s.repo.CancelSubscription(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	if modified == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func (s *Service) reference() string {
	return fmt.Sprintf("REF%06d", s.rng.Intn(900000)+100000)
}

func (s *Service) authCode() string {
	return fmt.Sprintf("AUTH%04d", s.rng.Intn(9000)+1000)
}

func (s *Service) publish(eventType string, data interface{}) {
	if s.events != nil {
		s.events.Publish(eventType, data)
	}
}
