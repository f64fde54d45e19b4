package migration

import (
	"context"
	"errors"
	"time"

	"wallet-monitor/services/notification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const CollectionName = "migrations"

type Migration struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	IsApplied bool               `json:"is_applied" bson:"is_applied"`
	AppliedAt time.Time          `json:"applied_at" bson:"applied_at"`
}

type migrationFunc func(ctx context.Context, db *mongo.Database) error

var migrations = []struct {
	name string
	run  migrationFunc
}{
	{name: "alert_history_created_at_index", run: alertHistoryIndexMigration},
	// Add more migrations here
}

// RunMigrations applies every migration that is not recorded in the
// migrations collection yet, in order.
func RunMigrations(ctx context.Context, db *mongo.Client, dbName string, logger *zap.SugaredLogger) error {
	if db == nil {
		return errors.New("[migration] invalid user database")
	}
	if dbName == "" {
		return errors.New("[migration] invalid database name")
	}
	if logger == nil {
		return errors.New("[migration] invalid logger")
	}

	database := db.Database(dbName)
	migrationsCollection := database.Collection(CollectionName)

	for _, m := range migrations {
		// Check if migration has already been run
		var applied Migration
		err := migrationsCollection.FindOne(ctx, bson.M{"name": m.name}).Decode(&applied)
		if err == nil {
			logger.Infof("migration %s already applied", m.name)
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}

		logger.Infof("starting migration %s", m.name)
		if err := m.run(ctx, database); err != nil {
			return err
		}

		_, err = migrationsCollection.InsertOne(ctx, &Migration{
			ID:        primitive.NewObjectID(),
			Name:      m.name,
			IsApplied: true,
			AppliedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		logger.Infof("migration %s completed successfully", m.name)
	}

	return nil
}

func alertHistoryIndexMigration(ctx context.Context, db *mongo.Database) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	}

	_, err := db.Collection(notification.HistoryCollectionName).Indexes().CreateOne(ctx, indexModel)
	return err
}
