package worker

import (
	"context"
	"slices"
	"strings"
	"sync"
	"testing"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/features/audit"
	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWorkerRepo struct {
	mu      sync.Mutex
	workers []Worker
	err     error
}

func (f *fakeWorkerRepo) List(ctx context.Context) ([]Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.workers), nil
}

func (f *fakeWorkerRepo) SearchByName(ctx context.Context, nombre string) ([]Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []Worker{}
	for _, w := range f.workers {
		if workerMatches(w, strings.ToLower(nombre)) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) FindByCIs(ctx context.Context, cis []string) ([]Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []Worker{}
	for _, w := range f.workers {
		if slices.Contains(cis, w.CI) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWorkerRepo) Create(ctx context.Context, worker *Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workers {
		if w.CI == worker.CI {
			return apperrors.ErrWorkerExists
		}
	}
	f.workers = append(f.workers, *worker)
	return nil
}

func (f *fakeWorkerRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeBrigadeRepo struct {
	mu       sync.Mutex
	brigades []Brigade
}

func (f *fakeBrigadeRepo) List(ctx context.Context) ([]Brigade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.brigades), nil
}

func (f *fakeBrigadeRepo) find(liderCI string) int {
	return slices.IndexFunc(f.brigades, func(b Brigade) bool { return b.LiderCI == liderCI })
}

func (f *fakeBrigadeRepo) GetByLeader(ctx context.Context, liderCI string) (*Brigade, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(liderCI)
	if i < 0 {
		return nil, apperrors.ErrBrigadeNotFound
	}
	b := f.brigades[i]
	b.IntegrantesCI = slices.Clone(b.IntegrantesCI)
	return &b, nil
}

func (f *fakeBrigadeRepo) Create(ctx context.Context, brigade *Brigade) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.find(brigade.LiderCI) >= 0 {
		return apperrors.ErrBrigadeExists
	}
	f.brigades = append(f.brigades, *brigade)
	return nil
}

func (f *fakeBrigadeRepo) Delete(ctx context.Context, liderCI string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(liderCI)
	if i < 0 {
		return apperrors.ErrBrigadeNotFound
	}
	f.brigades = slices.Delete(f.brigades, i, i+1)
	return nil
}

func (f *fakeBrigadeRepo) AddMember(ctx context.Context, liderCI, ci string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(liderCI)
	if i < 0 {
		return apperrors.ErrBrigadeNotFound
	}
	if !slices.Contains(f.brigades[i].IntegrantesCI, ci) {
		f.brigades[i].IntegrantesCI = append(f.brigades[i].IntegrantesCI, ci)
	}
	return nil
}

func (f *fakeBrigadeRepo) RemoveMember(ctx context.Context, liderCI, ci string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.find(liderCI)
	if i < 0 {
		return apperrors.ErrBrigadeNotFound
	}
	j := slices.Index(f.brigades[i].IntegrantesCI, ci)
	if j < 0 {
		return apperrors.Clone(apperrors.ErrWorkerNotFound, "worker is not a member of the brigade")
	}
	f.brigades[i].IntegrantesCI = slices.Delete(f.brigades[i].IntegrantesCI, j, j+1)
	return nil
}

func (f *fakeBrigadeRepo) EnsureIndexes(ctx context.Context) error { return nil }

type fakeAudit struct {
	mu      sync.Mutex
	actions []common_models.AuditAction
}

func (f *fakeAudit) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAudit) ListLogs(ctx context.Context, filter audit.LogFilter, page, limit int64) ([]common_models.AuditLog, error) {
	return nil, nil
}

func directory() []Worker {
	return []Worker{
		{CI: "111", Nombre: "Ana", Apellido: "Pérez"},
		{CI: "222", Nombre: "Luis", Apellido: "Gómez"},
		{CI: "333", Nombre: "Eva", Apellido: "Martí"},
	}
}

func newTestWorkerService(workers *fakeWorkerRepo, brigades *fakeBrigadeRepo) (*WorkerServiceImpl, *fakeAudit) {
	auditSvc := &fakeAudit{}
	svc := NewWorkerService(workers, brigades, auditSvc, validator.New(), zap.NewNop()).(*WorkerServiceImpl)
	return svc, auditSvc
}

func TestCreateWorker(t *testing.T) {
	svc, auditSvc := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, &fakeBrigadeRepo{})
	ctx := context.Background()

	require.NoError(t, svc.CreateWorker(ctx, &Worker{CI: " 444 ", Nombre: "Raúl"}))
	assert.Equal(t, []common_models.AuditAction{common_models.AuditActionCreate}, auditSvc.actions)

	err := svc.CreateWorker(ctx, &Worker{CI: "444", Nombre: "Otro"})
	assert.ErrorIs(t, err, apperrors.ErrWorkerExists)

	err = svc.CreateWorker(ctx, &Worker{CI: "555"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearchWorkers_RequiresName(t *testing.T) {
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, &fakeBrigadeRepo{})

	_, err := svc.SearchWorkers(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	found, err := svc.SearchWorkers(context.Background(), "gómez")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "222", found[0].CI)
}

func TestCreateBrigade_ResolvesAndCleansMembers(t *testing.T) {
	brigades := &fakeBrigadeRepo{}
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, brigades)

	view, err := svc.CreateBrigade(context.Background(), &Brigade{
		LiderCI:       "111",
		IntegrantesCI: []string{"222", "111", "222", " ", "333"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", view.Lider.Nombre)
	require.Len(t, view.Integrantes, 2)
	assert.Equal(t, "Luis", view.Integrantes[0].Nombre)
	assert.Equal(t, "Eva", view.Integrantes[1].Nombre)
	assert.Equal(t, []string{"222", "333"}, brigades.brigades[0].IntegrantesCI)
}

func TestCreateBrigade_UnknownWorker(t *testing.T) {
	brigades := &fakeBrigadeRepo{}
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, brigades)

	_, err := svc.CreateBrigade(context.Background(), &Brigade{LiderCI: "111", IntegrantesCI: []string{"999"}})
	assert.ErrorIs(t, err, apperrors.ErrWorkerNotFound)
	assert.Contains(t, err.Error(), "999")
	assert.Empty(t, brigades.brigades)

	_, err = svc.CreateBrigade(context.Background(), &Brigade{LiderCI: "111"})
	require.NoError(t, err)
	_, err = svc.CreateBrigade(context.Background(), &Brigade{LiderCI: "111"})
	assert.ErrorIs(t, err, apperrors.ErrBrigadeExists)
}

func TestListBrigades_SearchAndMissingLeader(t *testing.T) {
	brigades := &fakeBrigadeRepo{brigades: []Brigade{
		{LiderCI: "111", IntegrantesCI: []string{"222", "900"}},
		{LiderCI: "333"},
		{LiderCI: "777", IntegrantesCI: []string{"111"}},
	}}
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, brigades)
	ctx := context.Background()

	all, err := svc.ListBrigades(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, Worker{CI: "900"}, all[0].Integrantes[1])

	found, err := svc.ListBrigades(ctx, "LUIS")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "111", found[0].LiderCI)

	found, err = svc.ListBrigades(ctx, "nadie")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestGetBrigade(t *testing.T) {
	brigades := &fakeBrigadeRepo{brigades: []Brigade{{LiderCI: "111", IntegrantesCI: []string{"222"}}, {LiderCI: "777"}}}
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, brigades)
	ctx := context.Background()

	view, err := svc.GetBrigade(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "Luis", view.Integrantes[0].Nombre)

	_, err = svc.GetBrigade(ctx, "404")
	assert.ErrorIs(t, err, apperrors.ErrBrigadeNotFound)

	_, err = svc.GetBrigade(ctx, "777")
	assert.ErrorIs(t, err, apperrors.ErrWorkerNotFound)
}

func TestBrigadeMembers(t *testing.T) {
	brigades := &fakeBrigadeRepo{brigades: []Brigade{{LiderCI: "111"}}}
	svc, auditSvc := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, brigades)
	ctx := context.Background()

	require.NoError(t, svc.AddMember(ctx, "111", "222"))
	require.NoError(t, svc.AddMember(ctx, "111", "222"))
	assert.Equal(t, []string{"222"}, brigades.brigades[0].IntegrantesCI)

	assert.ErrorIs(t, svc.AddMember(ctx, "111", "111"), apperrors.ErrValidation)
	assert.ErrorIs(t, svc.AddMember(ctx, "111", "999"), apperrors.ErrWorkerNotFound)
	assert.ErrorIs(t, svc.AddMember(ctx, "404", "333"), apperrors.ErrBrigadeNotFound)

	require.NoError(t, svc.RemoveMember(ctx, "111", "222"))
	assert.Empty(t, brigades.brigades[0].IntegrantesCI)
	assert.ErrorIs(t, svc.RemoveMember(ctx, "111", "222"), apperrors.ErrWorkerNotFound)

	require.NoError(t, svc.DeleteBrigade(ctx, "111"))
	assert.ErrorIs(t, svc.DeleteBrigade(ctx, "111"), apperrors.ErrBrigadeNotFound)
	assert.Len(t, auditSvc.actions, 4)
}

func TestReportDirectory(t *testing.T) {
	svc, _ := newTestWorkerService(&fakeWorkerRepo{workers: directory()}, &fakeBrigadeRepo{})
	dir := NewReportDirectory(svc)

	names, err := dir.LookupNames(context.Background(), []string{"111", "999"})
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Pérez", names["111"].Apellido)

	failing, _ := newTestWorkerService(&fakeWorkerRepo{err: apperrors.ErrStoreUnavailable}, &fakeBrigadeRepo{})
	_, err = NewReportDirectory(failing).LookupNames(context.Background(), []string{"111"})
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
