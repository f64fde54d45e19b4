package notification

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const HistoryCollectionName = "alert_history"

type Alert struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Channel   string             `json:"channel" bson:"channel"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go
type Repository interface {
	CreateAlert(ctx context.Context, alert *Alert) error
	GetAlertList(ctx context.Context, limit int64) ([]*Alert, error)
}

type repository struct {
	db             *mongo.Client
	dbName         string
	collectionName string
	logger         *zap.SugaredLogger
}

func NewRepository(db *mongo.Client, dbName string, logger *zap.SugaredLogger) (Repository, error) {
	if db == nil {
		return nil, errors.New("[notification_repository] invalid user database")
	}
	if dbName == "" {
		return nil, errors.New("[notification_repository] invalid database name")
	}
	if logger == nil {
		return nil, errors.New("[notification_repository] invalid logger")
	}

	return &repository{db: db, dbName: dbName, collectionName: HistoryCollectionName, logger: logger}, nil
}

func (r *repository) CreateAlert(ctx context.Context, alert *Alert) error {
	if alert.ID.IsZero() {
		alert.ID = primitive.NewObjectID()
	}

	_, err := r.db.Database(r.dbName).Collection(r.collectionName).InsertOne(ctx, alert)
	if err != nil {
		r.logger.Errorf("unable to store alert due to internal error: %v", err)
		return err
	}

	return nil
}

// GetAlertList returns the newest alerts first.
func (r *repository) GetAlertList(ctx context.Context, limit int64) ([]*Alert, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.db.Database(r.dbName).Collection(r.collectionName).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		r.logger.Errorf("unable to find alerts due to internal error: %v", err)
		return nil, err
	}
	defer cur.Close(ctx)

	alerts := make([]*Alert, 0)
	for cur.Next(ctx) {
		var alert Alert
		if err := cur.Decode(&alert); err != nil {
			return nil, err
		}
		alerts = append(alerts, &alert)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	return alerts, nil
}
