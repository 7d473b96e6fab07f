package report

import (
	"context"
	"errors"
	"testing"

	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func newTestService(repo *fakeReportRepo) (*ReportServiceImpl, *fakeAuditService, *fakeObserver) {
	auditSvc := &fakeAuditService{}
	observer := &fakeObserver{}
	svc := NewReportService(repo, auditSvc, validator.New(), observer, nil, zap.NewNop()).(*ReportServiceImpl)
	return svc, auditSvc, observer
}

func TestHoursForWorker_LeaderAndMember(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "17:00", worker("111", "Ana"), []WorkerRef{worker("222", "Luis")}),
	}}
	svc, _, _ := newTestService(repo)
	ctx := context.Background()

	for _, ci := range []string{"111", "222"} {
		hours, err := svc.HoursForWorker(ctx, ci, "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, 9.0, hours, "ci %s", ci)
	}
}

func TestHoursForWorker_Idempotent(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "12:30", worker("111", "Ana"), nil),
		newReport("2024-01-11", "13:00", "14:00", worker("333", "Eva"), []WorkerRef{worker("111", "Ana")}),
	}}
	svc, _, _ := newTestService(repo)

	first, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	second, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, 5.5, first)
	assert.Equal(t, first, second)
}

func TestHoursForWorker_UnrelatedReportsIgnored(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "10:00", worker("111", "Ana"), nil),
	}}
	svc, _, _ := newTestService(repo)

	before, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	repo.reports = append(repo.reports,
		newReport("2024-01-12", "08:00", "18:00", worker("999", "Otro"), []WorkerRef{worker("888", "Mas")}),
		newReport("2024-02-01", "08:00", "18:00", worker("111", "Ana"), nil),
	)

	after, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 2.0, after)
}

func TestHoursForWorker_CountedOncePerReport(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "10:00", worker("111", "Ana"), []WorkerRef{worker("111", "Ana")}),
	}}
	svc, _, _ := newTestService(repo)

	hours, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 2.0, hours)
}

func TestHoursForWorker_NegativeRangeKept(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "10:00", "08:00", worker("111", "Ana"), nil),
		newReport("2024-01-11", "08:00", "13:00", worker("111", "Ana"), nil),
	}}
	svc, _, _ := newTestService(repo)

	hours, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, 3.0, hours)
}

func TestHoursForWorker_MalformedTime(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "8:00", "17:00", worker("111", "Ana"), nil),
	}}
	svc, _, observer := newTestService(repo)

	_, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedTime)
	assert.Contains(t, err.Error(), repo.reports[0].ID.Hex())

	require.Len(t, observer.seen, 1)
	assert.Equal(t, "hours_for_worker", observer.seen[0].operation)
	assert.Error(t, observer.seen[0].err)
}

func TestHoursForWorker_StoreUnavailable(t *testing.T) {
	repo := &fakeReportRepo{findErr: apperrors.Wrap(errors.New("connection refused"), apperrors.ErrStoreUnavailable)}
	svc, _, _ := newTestService(repo)

	_, err := svc.HoursForWorker(context.Background(), "111", "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestHoursForAllWorkers_FanOut(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "17:00", worker("111", "Ana"), []WorkerRef{worker("222", "Luis"), {CI: ""}}),
		newReport("2024-01-11", "08:00", "10:00", worker("222", "Luis B"), []WorkerRef{worker("333", "Eva")}),
		newReport("2024-01-12", "08:00", "10:00", worker("333", "Eva"), nil),
	}}
	svc, _, _ := newTestService(repo)

	rows, err := svc.HoursForAllWorkers(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	expected := []WorkerHours{
		{CI: "222", Nombre: "Luis", TotalHoras: 11},
		{CI: "111", Nombre: "Ana", TotalHoras: 9},
		{CI: "333", Nombre: "Eva", TotalHoras: 4},
	}
	assert.Equal(t, expected, rows)

	for _, row := range rows {
		single, err := svc.HoursForWorker(context.Background(), row.CI, "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, single, row.TotalHoras, "ci %s", row.CI)
	}
}

func TestHoursForAllWorkers_TiesKeepFirstSeenOrder(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "09:00", worker("b", "B"), nil),
		newReport("2024-01-10", "08:00", "09:00", worker("a", "A"), nil),
	}}
	svc, _, _ := newTestService(repo)

	rows, err := svc.HoursForAllWorkers(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].CI)
	assert.Equal(t, "a", rows[1].CI)
}

type fakeDirectory struct {
	names map[string]WorkerRef
	err   error
	calls int
}

func (d *fakeDirectory) LookupNames(ctx context.Context, cis []string) (map[string]WorkerRef, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	out := map[string]WorkerRef{}
	for _, ci := range cis {
		if w, ok := d.names[ci]; ok {
			out[ci] = w
		}
	}
	return out, nil
}

func TestHoursForAllWorkers_NamesFromDirectory(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "17:00", worker("111", "ana"), []WorkerRef{worker("222", "Luis")}),
	}}
	svc, _, _ := newTestService(repo)
	dir := &fakeDirectory{names: map[string]WorkerRef{
		"111": {CI: "111", Nombre: "Ana", Apellido: "Pérez"},
	}}
	svc.Directory = dir

	rows, err := svc.HoursForAllWorkers(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, []WorkerHours{
		{CI: "111", Nombre: "Ana", Apellido: "Pérez", TotalHoras: 9},
		{CI: "222", Nombre: "Luis", TotalHoras: 9},
	}, rows)
	assert.Equal(t, 1, dir.calls)
}

func TestHoursForAllWorkers_DirectoryFailureKeepsReportNames(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "10:00", worker("111", "Ana"), nil),
	}}
	svc, _, _ := newTestService(repo)
	svc.Directory = &fakeDirectory{err: apperrors.ErrStoreUnavailable}

	rows, err := svc.HoursForAllWorkers(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, []WorkerHours{{CI: "111", Nombre: "Ana", TotalHoras: 2}}, rows)
}

func TestHoursForAllWorkers_EmptyPeriod(t *testing.T) {
	svc, _, _ := newTestService(&fakeReportRepo{})

	rows, err := svc.HoursForAllWorkers(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMaterialsForBrigade_SumsAcrossReports(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "09:00", worker("111", "Ana"), nil,
			Material{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: "5"}),
		newReport("2024-01-15", "08:00", "09:00", worker("111", "Ana"), nil,
			Material{Codigo: "A", Descripcion: "Cable otro", UM: "u", Cantidad: "3"}),
	}}
	svc, _, _ := newTestService(repo)

	usage, err := svc.MaterialsForBrigade(context.Background(), "111", "2024-01-01", "2024-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, []MaterialUsage{{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 8}}, usage)
}

func TestMaterialsForBrigade_Rules(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "09:00", worker("111", "Ana"), nil,
			Material{Codigo: "", Descripcion: "sin codigo", Cantidad: 4},
			Material{Codigo: "P1", Descripcion: "Panel", Categoria: "paneles", Cantidad: int32(2)},
			Material{Codigo: "B1", Descripcion: "paneles", Cantidad: 1.5},
			Material{Codigo: "X", Descripcion: "Tornillo", Categoria: "otros", Cantidad: 10},
			Material{Codigo: "P1", Descripcion: "Panel", Categoria: "paneles", Cantidad: "n/a"},
		),
		newReport("2024-01-11", "08:00", "09:00", worker("222", "Luis"), []WorkerRef{worker("111", "Ana")},
			Material{Codigo: "P1", Categoria: "paneles", Cantidad: 100},
		),
	}}
	svc, _, _ := newTestService(repo)

	usage, err := svc.MaterialsForBrigade(context.Background(), "111", "2024-01-01", "2024-01-31", "paneles")
	require.NoError(t, err)
	assert.Equal(t, []MaterialUsage{
		{Codigo: "P1", Descripcion: "Panel", Cantidad: 2},
		{Codigo: "B1", Descripcion: "paneles", Cantidad: 1.5},
	}, usage)
}

func TestMaterialsForAllBrigades_GroupsByLeader(t *testing.T) {
	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "09:00", worker("111", "Ana"), nil,
			Material{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 5}),
		newReport("2024-01-11", "08:00", "09:00", worker("222", "Luis"), nil,
			Material{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 1}),
		newReport("2024-01-12", "08:00", "09:00", worker("111", "Ana Maria"), nil,
			Material{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 3}),
		newReport("2024-01-13", "08:00", "09:00", WorkerRef{}, nil,
			Material{Codigo: "A", Cantidad: 50}),
	}}
	svc, _, _ := newTestService(repo)

	groups, err := svc.MaterialsForAllBrigades(context.Background(), "2024-01-01", "2024-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, []BrigadeMaterials{
		{LiderCI: "111", LiderNombre: "Ana", Materiales: []MaterialUsage{{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 8}}},
		{LiderCI: "222", LiderNombre: "Luis", Materiales: []MaterialUsage{{Codigo: "A", Descripcion: "Cable", UM: "m", Cantidad: 1}}},
	}, groups)
}

func TestMaterialsForAllBrigades_StoreUnavailable(t *testing.T) {
	repo := &fakeReportRepo{findErr: apperrors.Wrap(errors.New("timeout"), apperrors.ErrStoreUnavailable)}
	svc, _, _ := newTestService(repo)

	groups, err := svc.MaterialsForAllBrigades(context.Background(), "2024-01-01", "2024-01-31", "")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Nil(t, groups)
}

func TestSummary(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeReportRepo{reports: []Report{
		newReport("2024-01-10", "08:00", "17:00", worker("111", "Ana"), []WorkerRef{worker("222", "Luis")},
			Material{Codigo: "A", Cantidad: "5"}),
	}}
	svc, _, observer := newTestService(repo)

	summary, err := svc.Summary(context.Background(), "2024-01-01", "2024-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", summary.FechaInicio)
	assert.Len(t, summary.Trabajadores, 2)
	require.Len(t, summary.Brigadas, 1)
	assert.Equal(t, 5.0, summary.Brigadas[0].Materiales[0].Cantidad)
	assert.Equal(t, 2, repo.finds)
	assert.Len(t, observer.seen, 2)
}

func TestSummary_FailsWhenEitherSideFails(t *testing.T) {
	defer goleak.VerifyNone(t)

	repo := &fakeReportRepo{findErr: apperrors.Wrap(errors.New("down"), apperrors.ErrStoreUnavailable)}
	svc, _, _ := newTestService(repo)

	summary, err := svc.Summary(context.Background(), "2024-01-01", "2024-01-31", "")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Nil(t, summary)
}

func TestCreateReport(t *testing.T) {
	repo := &fakeReportRepo{}
	svc, auditSvc, _ := newTestService(repo)

	report := newReport("2024-01-10", "08:00", "17:00", worker("111", "Ana"), nil)
	require.NoError(t, svc.CreateReport(context.Background(), &report))
	assert.Len(t, repo.reports, 1)
	require.Len(t, auditSvc.entries, 1)
	assert.Equal(t, "reportes", auditSvc.entries[0].Module)
	assert.Equal(t, report.ID.Hex(), auditSvc.entries[0].RecordID)
}

func TestCreateReport_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *Report)
		expected error
	}{
		{"missing leader", func(r *Report) { r.Brigada.Lider.CI = "" }, apperrors.ErrValidation},
		{"bad type", func(r *Report) { r.TipoReporte = "otro" }, apperrors.ErrValidation},
		{"bad date", func(r *Report) { r.FechaHora.Fecha = "10/01/2024" }, apperrors.ErrValidation},
		{"bad clock", func(r *Report) { r.FechaHora.HoraFin = "25:00" }, apperrors.ErrMalformedTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReportRepo{}
			svc, _, _ := newTestService(repo)

			report := newReport("2024-01-10", "08:00", "17:00", worker("111", "Ana"), nil)
			tt.mutate(&report)

			err := svc.CreateReport(context.Background(), &report)
			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, repo.reports)
		})
	}
}
