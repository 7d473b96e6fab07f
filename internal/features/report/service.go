package report

import (
	"context"
	"time"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/database"
	"go-fieldops/internal/features/audit"
	"go-fieldops/pkg/apperrors"
	"go-fieldops/pkg/timerange"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AggregationObserver is notified after every aggregation run.
type AggregationObserver interface {
	ObserveAggregation(operation string, duration time.Duration, err error)
}

// WorkerDirectory resolves current worker names by CI. CIs it does not know
// are absent from the result.
type WorkerDirectory interface {
	LookupNames(ctx context.Context, cis []string) (map[string]WorkerRef, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, report *Report) error
	GetReport(ctx context.Context, id string) (*Report, error)
	ListReports(ctx context.Context, filter ReportFilter) ([]Report, error)

	HoursForWorker(ctx context.Context, ci, fechaInicio, fechaFin string) (float64, error)
	HoursForAllWorkers(ctx context.Context, fechaInicio, fechaFin string) ([]WorkerHours, error)
	MaterialsForBrigade(ctx context.Context, liderCI, fechaInicio, fechaFin, categoria string) ([]MaterialUsage, error)
	MaterialsForAllBrigades(ctx context.Context, fechaInicio, fechaFin, categoria string) ([]BrigadeMaterials, error)
	Summary(ctx context.Context, fechaInicio, fechaFin, categoria string) (*PeriodSummary, error)

	ExportHours(ctx context.Context, fechaInicio, fechaFin string) ([]byte, string, error)
	ExportMaterials(ctx context.Context, fechaInicio, fechaFin, categoria string) ([]byte, string, error)
}

// ReportServiceImpl holds no state between calls; every aggregation works on
// whatever the store returns at that moment.
type ReportServiceImpl struct {
	ReportRepo   ReportRepository
	AuditService audit.AuditService
	Validate     *validator.Validate
	Observer     AggregationObserver
	Directory    WorkerDirectory
	Logger       *zap.Logger
}

func NewReportService(reportRepo ReportRepository, auditService audit.AuditService, validate *validator.Validate, observer AggregationObserver, directory WorkerDirectory, logger *zap.Logger) ReportService {
	return &ReportServiceImpl{
		ReportRepo:   reportRepo,
		AuditService: auditService,
		Validate:     validate,
		Observer:     observer,
		Directory:    directory,
		Logger:       logger.Named("report"),
	}
}

func (s *ReportServiceImpl) CreateReport(ctx context.Context, report *Report) error {
	if err := s.Validate.Struct(report); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation)
	}
	if _, err := timerange.DurationMinutes(report.FechaHora.Fecha, report.FechaHora.HoraInicio, report.FechaHora.HoraFin); err != nil {
		return err
	}

	if err := s.ReportRepo.Create(ctx, report); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, database.ReportsCollection, report.ID.Hex(), map[string]common_models.Change{
		"report": {New: report},
	})
	return nil
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*Report, error) {
	return s.ReportRepo.Get(ctx, id)
}

func (s *ReportServiceImpl) ListReports(ctx context.Context, filter ReportFilter) ([]Report, error) {
	return s.ReportRepo.Find(ctx, filter)
}

// Summary runs the all-workers hours and all-brigades materials aggregations
// concurrently over the same period.
func (s *ReportServiceImpl) Summary(ctx context.Context, fechaInicio, fechaFin, categoria string) (*PeriodSummary, error) {
	summary := &PeriodSummary{FechaInicio: fechaInicio, FechaFin: fechaFin}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.HoursForAllWorkers(gctx, fechaInicio, fechaFin)
		summary.Trabajadores = rows
		return err
	})
	g.Go(func() error {
		groups, err := s.MaterialsForAllBrigades(gctx, fechaInicio, fechaFin, categoria)
		summary.Brigadas = groups
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *ReportServiceImpl) observe(operation string, start time.Time, err error) {
	if s.Observer != nil {
		s.Observer.ObserveAggregation(operation, time.Since(start), err)
	}
}
