package audit

import (
	"clinic-portal-service/internal/app/contracts"
	"clinic-portal-service/internal/app/models"
	"clinic-portal-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type auditMongoRepository struct {
	Collection *mongo.Collection
}

func NewAuditMongoRepository(db *mongo.Database, collectionName string) contracts.AuditRepository {
	return &auditMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *auditMongoRepository) Insert(ctx context.Context, event *models.AuditEvent) error {
	_, err := repo.Collection.InsertOne(ctx, event)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

// FindRecent returns the newest events first.
func (repo *auditMongoRepository) FindRecent(ctx context.Context, limit int64) ([]models.AuditEvent, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	events := make([]models.AuditEvent, 0)
	err = cursor.All(ctx, &events)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return events, nil
}

func (repo *auditMongoRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := repo.Collection.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
