package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment outcome statuses shared by intents and transactions.
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
	PaymentFailed   = "failed"
)

// Subscription statuses.
const (
	SubscriptionActive   = "active"
	SubscriptionPaused   = "paused"
	SubscriptionCanceled = "canceled"
)

// PaymentIntent is a request to pay, created before any processing.
type PaymentIntent struct {
	ID            string            `json:"id" bson:"_id"`
	StudentID     string            `json:"student_id" bson:"student_id"`
	ProgramID     string            `json:"program_id" bson:"program_id"`
	Amount        int64             `json:"amount" bson:"amount"` // in COP
	PaymentMethod string            `json:"payment_method" bson:"payment_method"`
	Description   string            `json:"description" bson:"description"`
	Status        string            `json:"status" bson:"status"`
	Metadata      map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

// NewPaymentIntent creates a pending intent.
func NewPaymentIntent(studentID, programID string, amount int64, method, description string, metadata map[string]string) *PaymentIntent {
	return &PaymentIntent{
		ID:            uuid.NewString(),
		StudentID:     studentID,
		ProgramID:     programID,
		Amount:        amount,
		PaymentMethod: method,
		Description:   description,
		Status:        PaymentPending,
		Metadata:      metadata,
		CreatedAt:     time.Now().UTC(),
	}
}

// Transaction is the outcome record of a processed intent.
type Transaction struct {
	ID                string            `json:"id" bson:"_id"`
	PaymentIntentID   string            `json:"payment_intent_id" bson:"payment_intent_id"`
	StudentID         string            `json:"student_id" bson:"student_id"`
	SchoolID          string            `json:"school_id" bson:"school_id"`
	ProgramID         string            `json:"program_id" bson:"program_id"`
	Amount            int64             `json:"amount" bson:"amount"`
	PaymentMethod     string            `json:"payment_method" bson:"payment_method"`
	Status            string            `json:"status" bson:"status"`
	Reference         string            `json:"reference" bson:"reference"`
	AuthorizationCode string            `json:"authorization_code,omitempty" bson:"authorization_code,omitempty"`
	TransactionDate   time.Time         `json:"transaction_date" bson:"transaction_date"`
	Metadata          map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Subscription is a recurring-charge schedule, created on an approved
// transaction.
type Subscription struct {
	ID             string     `json:"id" bson:"_id"`
	StudentID      string     `json:"student_id" bson:"student_id"`
	ProgramID      string     `json:"program_id" bson:"program_id"`
	SchoolID       string     `json:"school_id" bson:"school_id"`
	Amount         int64      `json:"amount" bson:"amount"`
	PaymentMethod  string     `json:"payment_method" bson:"payment_method"`
	Status         string     `json:"status" bson:"status"`
	NextChargeDate time.Time  `json:"next_charge_date" bson:"next_charge_date"`
	LastChargeDate *time.Time `json:"last_charge_date,omitempty" bson:"last_charge_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	CardLast4      string     `json:"card_last4,omitempty" bson:"card_last4,omitempty"`
	BankName       string     `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
}

// SchoolTransactions is the ledger summary of one school.
type SchoolTransactions struct {
	Transactions []Transaction `json:"transactions"`
	TotalAmount  int64         `json:"total_amount"`
	SuccessRate  float64       `json:"success_rate"`
}
