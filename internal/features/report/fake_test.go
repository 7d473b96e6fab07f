package report

import (
	"context"
	"sync"
	"time"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/features/audit"
	"go-fieldops/pkg/apperrors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeReportRepo keeps reports in memory and applies the same filters the
// Mongo query would.
type fakeReportRepo struct {
	mu      sync.Mutex
	reports []Report
	findErr error
	finds   int
}

func (f *fakeReportRepo) Create(ctx context.Context, report *Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	f.reports = append(f.reports, *report)
	return nil
}

func (f *fakeReportRepo) Get(ctx context.Context, id string) (*Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.reports {
		if f.reports[i].ID.Hex() == id {
			r := f.reports[i]
			return &r, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

func (f *fakeReportRepo) Find(ctx context.Context, filter ReportFilter) ([]Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	if f.findErr != nil {
		return nil, f.findErr
	}

	out := []Report{}
	for _, r := range f.reports {
		fecha := r.FechaHora.Fecha
		if filter.FechaInicio != "" && fecha < filter.FechaInicio {
			continue
		}
		if filter.FechaFin != "" && fecha > filter.FechaFin {
			continue
		}
		if filter.TipoReporte != "" && string(r.TipoReporte) != filter.TipoReporte {
			continue
		}
		if filter.LiderCI != "" && r.Brigada.Lider.CI != filter.LiderCI {
			continue
		}
		if filter.ParticipantCI != "" && !participates(&r, filter.ParticipantCI) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReportRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeAuditService struct {
	mu      sync.Mutex
	entries []common_models.AuditLog
}

func (f *fakeAuditService) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, common_models.AuditLog{Action: action, Module: module, RecordID: recordID, Changes: changes})
	return nil
}

func (f *fakeAuditService) ListLogs(ctx context.Context, filter audit.LogFilter, page, limit int64) ([]common_models.AuditLog, error) {
	return f.entries, nil
}

type observation struct {
	operation string
	err       error
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *fakeObserver) ObserveAggregation(operation string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{operation: operation, err: err})
}

func worker(ci, nombre string) WorkerRef {
	return WorkerRef{CI: ci, Nombre: nombre}
}

func newReport(fecha, inicio, fin string, lider WorkerRef, members []WorkerRef, materials ...Material) Report {
	return Report{
		ID:          primitive.NewObjectID(),
		TipoReporte: ReportTypeInversion,
		Brigada:     Brigade{Lider: lider, Integrantes: members},
		Materiales:  materials,
		FechaHora:   FechaHora{Fecha: fecha, HoraInicio: inicio, HoraFin: fin},
	}
}
