package audit

import (
	"context"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/database"
	"go-fieldops/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogFilter narrows ListLogs. Empty fields are ignored.
type LogFilter struct {
	Module   string
	RecordID string
}

type AuditRepository interface {
	Create(ctx context.Context, log common_models.AuditLog) error
	List(ctx context.Context, filter LogFilter, limit, offset int64) ([]common_models.AuditLog, error)
}

type AuditRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAuditRepository(mongodb *database.MongodbDB) AuditRepository {
	return &AuditRepositoryImpl{
		Collection: mongodb.DB.Collection(database.AuditCollection),
	}
}

func (r *AuditRepositoryImpl) Create(ctx context.Context, log common_models.AuditLog) error {
	if _, err := r.Collection.InsertOne(ctx, log); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (r *AuditRepositoryImpl) List(ctx context.Context, filter LogFilter, limit, offset int64) ([]common_models.AuditLog, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(offset).
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.Collection.Find(ctx, buildLogQuery(filter), opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	logs := []common_models.AuditLog{}
	if err = cursor.All(ctx, &logs); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return logs, nil
}

func buildLogQuery(filter LogFilter) bson.M {
	query := bson.M{}
	if filter.Module != "" {
		query["module"] = filter.Module
	}
	if filter.RecordID != "" {
		query["record_id"] = filter.RecordID
	}
	return query
}
