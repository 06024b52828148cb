package payment

import (
	"context"
	"sportmaps/entity"
	"sportmaps/internal/service/payment"
)

type Core interface {
	CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.IntentResponse, error)
	ProcessDemoPayment(ctx context.Context, intentID string, simulateFailure bool) (*payment.Outcome, error)
	StudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error)
	StudentSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error)
	SchoolTransactions(ctx context.Context, schoolID string, days int) (*entity.SchoolTransactions, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	VerifyWebhook(body []byte, signature string) error
}
