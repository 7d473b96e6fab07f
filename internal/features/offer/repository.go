package offer

import (
	"context"
	"errors"

	"go-fieldops/internal/database"
	"go-fieldops/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OfferRepository stores offers with their elements in append order.
type OfferRepository interface {
	List(ctx context.Context) ([]Offer, error)
	Get(ctx context.Context, id string) (*Offer, error)
	Create(ctx context.Context, offer *Offer) error
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	PushElement(ctx context.Context, id string, element Element) error
	// ReplaceElements overwrites the element list. When expectedVersion is
	// non-nil the write only applies if the stored version still matches and
	// fails with ErrConcurrentModification otherwise.
	ReplaceElements(ctx context.Context, id string, expectedVersion *int64, elements []Element) error
}

type OfferRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewOfferRepository(db *database.MongodbDB) OfferRepository {
	return &OfferRepositoryImpl{
		Collection: db.DB.Collection(database.OffersCollection),
	}
}

func (r *OfferRepositoryImpl) List(ctx context.Context) ([]Offer, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	offers := []Offer{}
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return offers, nil
}

func (r *OfferRepositoryImpl) Get(ctx context.Context, id string) (*Offer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrOfferNotFound
	}

	var offer Offer
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&offer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return &offer, nil
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, offer *Offer) error {
	if offer.ID.IsZero() {
		offer.ID = primitive.NewObjectID()
	}
	if offer.Elementos == nil {
		offer.Elementos = []Element{}
	}
	if offer.Garantias == nil {
		offer.Garantias = []string{}
	}
	if _, err := r.Collection.InsertOne(ctx, offer); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (r *OfferRepositoryImpl) Update(ctx context.Context, id string, fields bson.M) error {
	return r.updateOne(ctx, id, bson.M{"$set": fields})
}

func (r *OfferRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrOfferNotFound
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrOfferNotFound
	}
	return nil
}

// PushElement appends atomically, so it never conflicts with other writers,
// but it still bumps the version for readers holding a stale projection.
func (r *OfferRepositoryImpl) PushElement(ctx context.Context, id string, element Element) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{"elementos": element},
		"$inc":  bson.M{"version": 1},
	})
}

func (r *OfferRepositoryImpl) ReplaceElements(ctx context.Context, id string, expectedVersion *int64, elements []Element) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrOfferNotFound
	}

	filter := bson.M{"_id": oid}
	if expectedVersion != nil {
		filter = versionFilter(oid, *expectedVersion)
	}

	res, err := r.Collection.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"elementos": elements},
		"$inc": bson.M{"version": 1},
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	if expectedVersion == nil {
		return apperrors.ErrOfferNotFound
	}

	// either the offer is gone or someone else wrote first
	n, err := r.Collection.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if n == 0 {
		return apperrors.ErrOfferNotFound
	}
	return apperrors.ErrConcurrentModification
}

func (r *OfferRepositoryImpl) updateOne(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrOfferNotFound
	}
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrOfferNotFound
	}
	return nil
}

// versionFilter matches the offer only at the given version. Documents that
// predate versioning have no version field and count as version 0.
func versionFilter(oid primitive.ObjectID, version int64) bson.M {
	if version == 0 {
		return bson.M{
			"_id": oid,
			"$or": bson.A{
				bson.M{"version": 0},
				bson.M{"version": bson.M{"$exists": false}},
			},
		}
	}
	return bson.M{"_id": oid, "version": version}
}
