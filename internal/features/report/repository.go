package report

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

// ReportRepository is the report side of the document store. Every store
// failure comes back as apperrors.ErrStoreUnavailable.
type ReportRepository interface {
	Create(ctx context.Context, report *Report) error
	Get(ctx context.Context, id string) (*Report, error)
	Find(ctx context.Context, filter ReportFilter) ([]Report, error)
	EnsureIndexes(ctx context.Context) error
}

type ReportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewReportRepository(db *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		Collection: db.DB.Collection(database.ReportsCollection),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	report.CreatedAt = time.Now().UTC()
	if _, err := r.Collection.InsertOne(ctx, report); err != nil {
		return apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return nil
}

func (r *ReportRepositoryImpl) Get(ctx context.Context, id string) (*Report, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrReportNotFound
	}
	var report Report
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrReportNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return &report, nil
}

// Find returns matching reports ordered by date then insertion, so callers
// that keep "first seen" values get the earliest report's.
func (r *ReportRepositoryImpl) Find(ctx context.Context, filter ReportFilter) ([]Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fecha_hora.fecha", Value: 1}, {Key: "_id", Value: 1}})
	if filter.SkipAttachments {
		opts.SetProjection(bson.M{"adjuntos": 0})
	}

	cursor, err := r.Collection.Find(ctx, buildReportQuery(filter), opts)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStoreUnavailable)
	}
	return reports, nil
}

func (r *ReportRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "fecha_hora.fecha", Value: 1}}},
		{Keys: bson.D{{Key: "brigada.lider.CI", Value: 1}, {Key: "fecha_hora.fecha", Value: 1}}},
		{Keys: bson.D{{Key: "brigada.integrantes.CI", Value: 1}}},
	})
	return err
}

// buildReportQuery translates a ReportFilter into a Mongo query document.
func buildReportQuery(f ReportFilter) bson.M {
	query := bson.M{}
	if f.TipoReporte != "" {
		query["tipo_reporte"] = f.TipoReporte
	}
	if f.ClienteNumero != "" {
		query["cliente.numero"] = f.ClienteNumero
	}

	dateRange := bson.M{}
	if f.FechaInicio != "" {
		dateRange["$gte"] = f.FechaInicio
	}
	if f.FechaFin != "" {
		dateRange["$lte"] = f.FechaFin
	}
	if len(dateRange) > 0 {
		query["fecha_hora.fecha"] = dateRange
	}

	if f.LiderCI != "" {
		query["brigada.lider.CI"] = f.LiderCI
	}
	if f.Descripcion != "" {
		query["descripcion"] = containsPattern(f.Descripcion)
	}

	var alternatives []bson.A
	if f.ParticipantCI != "" {
		alternatives = append(alternatives, bson.A{
			bson.M{"brigada.lider.CI": f.ParticipantCI},
			bson.M{"brigada.integrantes.CI": f.ParticipantCI},
		})
	}
	if f.Q != "" {
		pattern := containsPattern(f.Q)
		alternatives = append(alternatives, bson.A{
			bson.M{"descripcion": pattern},
			bson.M{"cliente.nombre": pattern},
			bson.M{"cliente.numero": pattern},
			bson.M{"brigada.lider.nombre": pattern},
			bson.M{"tipo_reporte": pattern},
		})
	}

	switch len(alternatives) {
	case 0:
	case 1:
		query["$or"] = alternatives[0]
	default:
		and := bson.A{}
		for _, alt := range alternatives {
			and = append(and, bson.M{"$or": alt})
		}
		query["$and"] = and
	}

	return query
}

// containsPattern matches the literal text case-insensitively.
func containsPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}
