package payment

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"sportmaps/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	intents       map[string]*entity.PaymentIntent
	transactions  []*entity.Transaction
	subscriptions []*entity.Subscription
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{intents: make(map[string]*entity.PaymentIntent)}
}

func (f *fakeRepo) InsertPaymentIntent(_ context.Context, intent *entity.PaymentIntent) error {
	f.intents[intent.ID] = intent
	return nil
}

func (f *fakeRepo) GetPaymentIntent(_ context.Context, id string) (*entity.PaymentIntent, error) {
	return f.intents[id], nil
}

func (f *fakeRepo) SetPaymentIntentStatus(_ context.Context, id, status string) error {
	if intent, ok := f.intents[id]; ok {
		intent.Status = status
	}
	return nil
}

func (f *fakeRepo) InsertTransaction(_ context.Context, txn *entity.Transaction) error {
	f.transactions = append(f.transactions, txn)
	return nil
}

func (f *fakeRepo) ListStudentTransactions(_ context.Context, studentID string, limit int64) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, txn := range f.transactions {
		if txn.StudentID == studentID && int64(len(out)) < limit {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSchoolTransactions(_ context.Context, schoolID string, since time.Time) ([]entity.Transaction, error) {
	var out []entity.Transaction
	for _, txn := range f.transactions {
		if txn.SchoolID == schoolID && txn.TransactionDate.After(since) {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func (f *fakeRepo) InsertSubscription(_ context.Context, sub *entity.Subscription) error {
	f.subscriptions = append(f.subscriptions, sub)
	return nil
}

func (f *fakeRepo) ListActiveSubscriptions(_ context.Context, studentID string) ([]entity.Subscription, error) {
	var out []entity.Subscription
	for _, sub := range f.subscriptions {
		if sub.StudentID == studentID && sub.Status == entity.SubscriptionActive {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeRepo) CancelSubscription(_ context.Context, id string) (int64, error) {
	for _, sub := range f.subscriptions {
		if sub.ID == id && sub.Status == entity.SubscriptionActive {
			sub.Status = entity.SubscriptionCanceled
			return 1, nil
		}
	}
	return 0, nil
}

func testService(repo Repository) *Service {
	// successRate 1.0 keeps the rng out of the approved path
	return NewService(repo, 1.0, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func intentRequest() IntentRequest {
	return IntentRequest{
		StudentID:     "s1",
		ProgramID:     "prog_1",
		Amount:        220000,
		PaymentMethod: "card",
		Description:   "Mensualidad Fútbol Juvenil",
		ParentName:    "Carlos Torres",
		ParentEmail:   "carlos@example.com",
	}
}

func TestCreateIntent(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	resp, err := svc.CreateIntent(context.Background(), intentRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.IntentID)
	assert.Equal(t, int64(220000), resp.Amount)
	assert.Equal(t, "card", resp.PaymentMethod)
	assert.Contains(t, resp.CheckoutURL, "intent_id="+resp.IntentID)
	assert.Contains(t, resp.CheckoutURL, "method=card")

	stored := repo.intents[resp.IntentID]
	require.NotNil(t, stored)
	assert.Equal(t, entity.PaymentPending, stored.Status)
	assert.Equal(t, "Carlos Torres", stored.Metadata["parent_name"])
}

func TestProcessDemoPaymentApproved(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	resp, err := svc.CreateIntent(context.Background(), intentRequest())
	require.NoError(t, err)

	outcome, err := svc.ProcessDemoPayment(context.Background(), resp.IntentID, false)
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, entity.PaymentApproved, outcome.Status)
	assert.Equal(t, "Pago aprobado exitosamente", outcome.Message)
	assert.True(t, strings.HasPrefix(outcome.Reference, "REF"))
	assert.True(t, strings.HasPrefix(outcome.AuthorizationCode, "AUTH"))

	assert.Equal(t, entity.PaymentApproved, repo.intents[resp.IntentID].Status)
	require.Len(t, repo.transactions, 1)
	assert.Equal(t, entity.PaymentApproved, repo.transactions[0].Status)

	require.Len(t, repo.subscriptions, 1)
	sub := repo.subscriptions[0]
	assert.Equal(t, entity.SubscriptionActive, sub.Status)
	assert.Equal(t, "1234", sub.CardLast4)
	assert.NotNil(t, sub.LastChargeDate)
	assert.True(t, sub.NextChargeDate.After(time.Now().UTC().AddDate(0, 0, 29)))
}

func TestProcessDemoPaymentRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	resp, err := svc.CreateIntent(context.Background(), intentRequest())
	require.NoError(t, err)

	outcome, err := svc.ProcessDemoPayment(context.Background(), resp.IntentID, true)
	require.NoError(t, err)

	assert.False(t, outcome.Success)
	assert.Equal(t, entity.PaymentRejected, outcome.Status)
	assert.Equal(t, "Pago rechazado", outcome.Message)
	assert.Empty(t, outcome.AuthorizationCode)

	assert.Equal(t, entity.PaymentRejected, repo.intents[resp.IntentID].Status)
	require.Len(t, repo.transactions, 1)
	assert.Empty(t, repo.subscriptions)
}

func TestProcessDemoPaymentUnknownIntent(t *testing.T) {
	svc := testService(newFakeRepo())

	_, err := svc.ProcessDemoPayment(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrIntentNotFound)
}

func TestProcessDemoPaymentBankTransfer(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	req := intentRequest()
	req.PaymentMethod = "pse"
	resp, err := svc.CreateIntent(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.ProcessDemoPayment(context.Background(), resp.IntentID, false)
	require.NoError(t, err)

	require.Len(t, repo.subscriptions, 1)
	assert.Equal(t, "Bancolombia", repo.subscriptions[0].BankName)
	assert.Empty(t, repo.subscriptions[0].CardLast4)
}

func TestStudentTransactionsDemo(t *testing.T) {
	svc := testService(newFakeRepo())

	transactions, err := svc.StudentTransactions(context.Background(), "demo_student_1", 20)
	require.NoError(t, err)
	require.Len(t, transactions, 6)

	var approved, pending int
	for _, txn := range transactions {
		switch txn.Status {
		case entity.PaymentApproved:
			approved++
			assert.NotEmpty(t, txn.AuthorizationCode)
		case entity.PaymentPending:
			pending++
		}
		assert.Equal(t, "demo_student_1", txn.StudentID)
		assert.NotEmpty(t, txn.Metadata["program_name"])
	}
	assert.Equal(t, 5, approved)
	assert.Equal(t, 1, pending)
}

func TestStudentSubscriptionsDemo(t *testing.T) {
	svc := testService(newFakeRepo())

	subs, err := svc.StudentSubscriptions(context.Background(), "kid@demo.sportmaps.com")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub_demo_1", subs[0].ID)
	assert.Equal(t, entity.SubscriptionActive, subs[0].Status)
}

func TestSchoolTransactionsDemo(t *testing.T) {
	svc := testService(newFakeRepo())

	ledger, err := svc.SchoolTransactions(context.Background(), "school_elite", 30)
	require.NoError(t, err)
	require.Len(t, ledger.Transactions, 12)
	assert.Equal(t, 0.985, ledger.SuccessRate)

	var approvedTotal int64
	for _, txn := range ledger.Transactions {
		if txn.Status == entity.PaymentApproved {
			approvedTotal += txn.Amount
		}
	}
	assert.Equal(t, approvedTotal, ledger.TotalAmount)
}

func TestSchoolTransactionsStored(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	now := time.Now().UTC()
	repo.transactions = []*entity.Transaction{
		{ID: "t1", SchoolID: "school_1", Amount: 100, Status: entity.PaymentApproved, TransactionDate: now.AddDate(0, 0, -1)},
		{ID: "t2", SchoolID: "school_1", Amount: 200, Status: entity.PaymentRejected, TransactionDate: now.AddDate(0, 0, -2)},
		{ID: "t3", SchoolID: "school_1", Amount: 300, Status: entity.PaymentApproved, TransactionDate: now.AddDate(0, 0, -60)},
	}

	ledger, err := svc.SchoolTransactions(context.Background(), "school_1", 30)
	require.NoError(t, err)
	require.Len(t, ledger.Transactions, 2)
	assert.Equal(t, int64(100), ledger.TotalAmount)
	assert.Equal(t, 0.5, ledger.SuccessRate)
}

func TestCancelSubscription(t *testing.T) {
	repo := newFakeRepo()
	svc := testService(repo)

	repo.subscriptions = []*entity.Subscription{
		{ID: "sub_1", StudentID: "s1", Status: entity.SubscriptionActive},
	}

	require.NoError(t, svc.Cancel(context.Background(), "sub_1"))
	assert.Equal(t, entity.SubscriptionCanceled, repo.subscriptions[0].Status)

	assert.ErrorIs(t, svc.Cancel(context.Background(), "sub_1"), ErrSubscriptionNotFound)
	assert.ErrorIs(t, svc.Cancel(context.Background(), "missing"), ErrSubscriptionNotFound)
}

func TestDemoDetection(t *testing.T) {
	assert.True(t, isDemoStudent("demo_abc"))
	assert.True(t, isDemoStudent("kid@demo.sportmaps.com"))
	assert.False(t, isDemoStudent("student_1"))

	assert.True(t, isDemoSchool("school_elite"))
	assert.True(t, isDemoSchool("demo_school"))
	assert.False(t, isDemoSchool("school_1"))
}
