package repository

import (
	"context"
	"errors"
	"fmt"
	"sportmaps/entity"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertPaymentIntent stores a new payment intent.
func (m *MongoDB) InsertPaymentIntent(ctx context.Context, intent *entity.PaymentIntent) error {
	_, err := m.collection(intentsCollection).InsertOne(ctx, intent)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// GetPaymentIntent retrieves an intent by id. Returns nil when missing.
func (m *MongoDB) GetPaymentIntent(ctx context.Context, id string) (*entity.PaymentIntent, error) {
	filter := bson.D{{"_id", id}}

	var intent entity.PaymentIntent
	err := m.collection(intentsCollection).FindOne(ctx, filter).Decode(&intent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, m.findError(err)
	}

	return &intent, nil
}

// SetPaymentIntentStatus updates the status of an intent.
func (m *MongoDB) SetPaymentIntentStatus(ctx context.Context, id, status string) error {
	filter := bson.D{{"_id", id}}
	update := bson.M{"$set": bson.M{"status": status}}

	_, err := m.collection(intentsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("mongodb update error: %w", err)
	}
	return nil
}

// InsertTransaction stores a transaction outcome record.
func (m *MongoDB) InsertTransaction(ctx context.Context, txn *entity.Transaction) error {
	_, err := m.collection(transactionsCollection).InsertOne(ctx, txn)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// ListStudentTransactions retrieves the latest transactions of a
// student, newest first.
func (m *MongoDB) ListStudentTransactions(ctx context.Context, studentID string, limit int64) ([]entity.Transaction, error) {
	filter := bson.D{{"student_id", studentID}}
	opts := options.Find().
		SetSort(bson.D{{"transaction_date", -1}}).
		SetLimit(limit)

	cursor, err := m.collection(transactionsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []entity.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("mongodb decode transactions: %w", err)
	}

	return transactions, nil
}

// ListSchoolTransactions retrieves school transactions newer than
// since, newest first.
func (m *MongoDB) ListSchoolTransactions(ctx context.Context, schoolID string, since time.Time) ([]entity.Transaction, error) {
	filter := bson.D{
		{"school_id", schoolID},
		{"transaction_date", bson.D{{"$gte", since}}},
	}
	opts := options.Find().SetSort(bson.D{{"transaction_date", -1}})

	cursor, err := m.collection(transactionsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []entity.Transaction
	if err = cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("mongodb decode transactions: %w", err)
	}

	return transactions, nil
}

// InsertSubscription stores a recurring-charge subscription.
func (m *MongoDB) InsertSubscription(ctx context.Context, sub *entity.Subscription) error {
	_, err := m.collection(subscriptionsCollection).InsertOne(ctx, sub)
	if err != nil {
		return fmt.Errorf("mongodb insert error: %w", err)
	}
	return nil
}

// ListActiveSubscriptions retrieves the active subscriptions of a
// student.
func (m *MongoDB) ListActiveSubscriptions(ctx context.Context, studentID string) ([]entity.Subscription, error) {
	filter := bson.D{
		{"student_id", studentID},
		{"status", entity.SubscriptionActive},
	}

	cursor, err := m.collection(subscriptionsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongodb find subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var subscriptions []entity.Subscription
	if err = cursor.All(ctx, &subscriptions); err != nil {
		return nil, fmt.Errorf("mongodb decode subscriptions: %w", err)
	}

	return subscriptions, nil
}

// CancelSubscription sets a subscription to canceled. Returns the
// modified count.
func (m *MongoDB) CancelSubscription(ctx context.Context, id string) (int64, error) {
	filter := bson.D{{"_id", id}}
	update := bson.M{"$set": bson.M{"status": entity.SubscriptionCanceled}}

	result, err := m.collection(subscriptionsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("mongodb update error: %w", err)
	}
	return result.ModifiedCount, nil
}
