package core

import (
	"context"
	"sportmaps/entity"
	"sportmaps/internal/service/payment"
	"sportmaps/internal/service/recommend"
)

func (c *Core) CreateIntent(ctx context.Context, req payment.IntentRequest) (*payment.IntentResponse, error) {
	return c.payments.CreateIntent(ctx, req)
}

func (c *Core) ProcessDemoPayment(ctx context.Context, intentID string, simulateFailure bool) (*payment.Outcome, error) {
	return c.payments.ProcessDemoPayment(ctx, intentID, simulateFailure)
}

func (c *Core) StudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error) {
	return c.payments.StudentTransactions(ctx, studentID, limit)
}

func (c *Core) StudentSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error) {
	return c.payments.StudentSubscriptions(ctx, studentID)
}

func (c *Core) SchoolTransactions(ctx context.Context, schoolID string, days int) (*entity.SchoolTransactions, error) {
	return c.payments.SchoolTransactions(ctx, schoolID, days)
}

func (c *Core) CancelSubscription(ctx context.Context, subscriptionID string) error {
	return c.payments.Cancel(ctx, subscriptionID)
}

func (c *Core) VerifyWebhook(body []byte, signature string) error {
	return c.verifier.Verify(body, signature)
}

func (c *Core) Recommend(ctx context.Context, profile recommend.UserProfile) ([]recommend.Recommendation, error) {
	if c.recommender == nil {
		return nil, recommend.ErrNotConfigured
	}
	return c.recommender.Recommend(ctx, profile)
}
