package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sportmaps/internal/config"
	"sportmaps/internal/lib/sl"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	studentsCollection      = "students"
	classesCollection       = "classes"
	enrollmentsCollection   = "enrollments"
	intentsCollection       = "payment-intents"
	transactionsCollection  = "transactions"
	subscriptionsCollection = "subscriptions"
)

// MongoDB holds the process-wide client, established once at startup
// and reused for every request.
type MongoDB struct {
	client   *mongo.Client
	database string
	log      *slog.Logger
}

func NewMongoClient(conf *config.Config, logger *slog.Logger) (*MongoDB, error) {
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect error: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongodb ping error: %w", err)
	}

	return &MongoDB{
		client:   client,
		database: conf.Mongo.Database,
		log:      logger.With(sl.Module("mongodb")),
	}, nil
}

// Close disconnects the client. Called once at process shutdown.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

func (m *MongoDB) findError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("mongodb find error: %w", err)
}

// groupCount runs a $match + $group count aggregation and returns the
// per-key counts, skipping empty group keys.
func (m *MongoDB) groupCount(ctx context.Context, collName string, filter bson.D, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{"$match", filter}},
		{{"$group", bson.D{
			{"_id", "$" + field},
			{"count", bson.D{{"$sum", 1}}},
		}}},
	}

	cursor, err := m.collection(collName).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("mongodb aggregate error: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("mongodb decode aggregate: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.Key != "" {
			counts[row.Key] = row.Count
		}
	}
	return counts, nil
}
