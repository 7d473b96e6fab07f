package worker

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go-fieldops/internal/database"
	"go-fieldops/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WorkerRepository interface {
	List(ctx context.Context) ([]Worker, error)
	SearchByName(ctx context.Context, nombre string) ([]Worker, error)
	FindByCIs(ctx context.Context, cis []string) ([]Worker, error)
	Create(ctx context.Context, worker *Worker) error
	EnsureIndexes(ctx context.Context) error
}

type WorkerRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewWorkerRepository(db *database.MongodbDB) WorkerRepository {
	return &WorkerRepositoryImpl{
		Collection: db.DB.Collection(database.WorkersCollection),
	}
}

func (r *WorkerRepositoryImpl) List(ctx context.Context) ([]Worker, error) {
	return r.find(ctx, bson.M{})
}

// SearchByName matches nombre case-insensitively anywhere in nombre or
// apellido.
func (r *WorkerRepositoryImpl) SearchByName(ctx context.Context, nombre string) ([]Worker, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(nombre), Options: "i"}
	return r.find(ctx, bson.M{"$or": bson.A{
		bson.M{"nombre": pattern},
		bson.M{"apellido": pattern},
	}})
}

func (r *WorkerRepositoryImpl) FindByCIs(ctx context.Context, cis []string) ([]Worker, error) {
	if len(cis) == 0 {
		return []Worker{}, nil
	}
	return r.find(ctx, bson.M{"CI": bson.M{"$in": cis}})
}

func (r *WorkerRepositoryImpl) find(ctx context.Context, query bson.M) ([]Worker, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	workers := []Worker{}
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return workers, nil
}

func (r *WorkerRepositoryImpl) Create(ctx context.Context, worker *Worker) error {
	if worker.ID.IsZero() {
		worker.ID = primitive.NewObjectID()
	}
	worker.CreatedAt = time.Now().UTC()
	_, err := r.Collection.InsertOne(ctx, worker)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrWorkerExists
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (r *WorkerRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "CI", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type BrigadeRepository interface {
	List(ctx context.Context) ([]Brigade, error)
	GetByLeader(ctx context.Context, liderCI string) (*Brigade, error)
	Create(ctx context.Context, brigade *Brigade) error
	Delete(ctx context.Context, liderCI string) error
	AddMember(ctx context.Context, liderCI, ci string) error
	RemoveMember(ctx context.Context, liderCI, ci string) error
	EnsureIndexes(ctx context.Context) error
}

type BrigadeRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBrigadeRepository(db *database.MongodbDB) BrigadeRepository {
	return &BrigadeRepositoryImpl{
		Collection: db.DB.Collection(database.BrigadesCollection),
	}
}

func (r *BrigadeRepositoryImpl) List(ctx context.Context) ([]Brigade, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lider_ci", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	brigades := []Brigade{}
	if err := cursor.All(ctx, &brigades); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return brigades, nil
}

func (r *BrigadeRepositoryImpl) GetByLeader(ctx context.Context, liderCI string) (*Brigade, error) {
	var brigade Brigade
	err := r.Collection.FindOne(ctx, bson.M{"lider_ci": liderCI}).Decode(&brigade)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrBrigadeNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return &brigade, nil
}

func (r *BrigadeRepositoryImpl) Create(ctx context.Context, brigade *Brigade) error {
	if brigade.ID.IsZero() {
		brigade.ID = primitive.NewObjectID()
	}
	if brigade.IntegrantesCI == nil {
		brigade.IntegrantesCI = []string{}
	}
	_, err := r.Collection.InsertOne(ctx, brigade)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.ErrBrigadeExists
	}
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (r *BrigadeRepositoryImpl) Delete(ctx context.Context, liderCI string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"lider_ci": liderCI})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrBrigadeNotFound
	}
	return nil
}

// AddMember is idempotent: adding a current member is not an error.
func (r *BrigadeRepositoryImpl) AddMember(ctx context.Context, liderCI, ci string) error {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"lider_ci": liderCI},
		bson.M{"$addToSet": bson.M{"integrantes_ci": ci}},
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrBrigadeNotFound
	}
	return nil
}

func (r *BrigadeRepositoryImpl) RemoveMember(ctx context.Context, liderCI, ci string) error {
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"lider_ci": liderCI},
		bson.M{"$pull": bson.M{"integrantes_ci": ci}},
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrBrigadeNotFound
	}
	if res.ModifiedCount == 0 {
		return apperrors.Clone(apperrors.ErrWorkerNotFound, "worker is not a member of the brigade")
	}
	return nil
}

func (r *BrigadeRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "lider_ci", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "integrantes_ci", Value: 1}}},
	})
	return err
}
