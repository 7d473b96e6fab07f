package worker

import (
	"context"
	"fmt"
	"strings"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/database"
	"go-fieldops/internal/features/audit"
	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type WorkerService interface {
	ListWorkers(ctx context.Context) ([]Worker, error)
	SearchWorkers(ctx context.Context, nombre string) ([]Worker, error)
	CreateWorker(ctx context.Context, worker *Worker) error
	Lookup(ctx context.Context, cis []string) (map[string]Worker, error)

	ListBrigades(ctx context.Context, search string) ([]BrigadeView, error)
	GetBrigade(ctx context.Context, liderCI string) (*BrigadeView, error)
	CreateBrigade(ctx context.Context, brigade *Brigade) (*BrigadeView, error)
	DeleteBrigade(ctx context.Context, liderCI string) error
	AddMember(ctx context.Context, liderCI, ci string) error
	RemoveMember(ctx context.Context, liderCI, ci string) error
}

type WorkerServiceImpl struct {
	WorkerRepo   WorkerRepository
	BrigadeRepo  BrigadeRepository
	AuditService audit.AuditService
	Validate     *validator.Validate
	Logger       *zap.Logger
}

func NewWorkerService(workerRepo WorkerRepository, brigadeRepo BrigadeRepository, auditService audit.AuditService, validate *validator.Validate, logger *zap.Logger) WorkerService {
	return &WorkerServiceImpl{
		WorkerRepo:   workerRepo,
		BrigadeRepo:  brigadeRepo,
		AuditService: auditService,
		Validate:     validate,
		Logger:       logger.Named("worker"),
	}
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]Worker, error) {
	return s.WorkerRepo.List(ctx)
}

func (s *WorkerServiceImpl) SearchWorkers(ctx context.Context, nombre string) ([]Worker, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, apperrors.Clone(apperrors.ErrValidation, "nombre is required")
	}
	return s.WorkerRepo.SearchByName(ctx, nombre)
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, worker *Worker) error {
	worker.CI = strings.TrimSpace(worker.CI)
	if err := s.Validate.Struct(worker); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation)
	}
	if err := s.WorkerRepo.Create(ctx, worker); err != nil {
		return err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, database.WorkersCollection, worker.ID.Hex(), map[string]common_models.Change{
		"worker": {New: worker},
	})
	return nil
}

// Lookup returns the directory entries for cis, keyed by CI. Unknown CIs are
// absent from the result.
func (s *WorkerServiceImpl) Lookup(ctx context.Context, cis []string) (map[string]Worker, error) {
	workers, err := s.WorkerRepo.FindByCIs(ctx, cis)
	if err != nil {
		return nil, err
	}
	byCI := make(map[string]Worker, len(workers))
	for _, w := range workers {
		byCI[w.CI] = w
	}
	return byCI, nil
}

// ListBrigades resolves every brigade through the directory. Brigades whose
// leader is not in the directory are skipped. search matches leader or member
// names case-insensitively.
func (s *WorkerServiceImpl) ListBrigades(ctx context.Context, search string) ([]BrigadeView, error) {
	brigades, err := s.BrigadeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var cis []string
	for _, b := range brigades {
		cis = append(cis, b.LiderCI)
		cis = append(cis, b.IntegrantesCI...)
	}
	directory, err := s.Lookup(ctx, cis)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	views := make([]BrigadeView, 0, len(brigades))
	for _, b := range brigades {
		view, ok := resolveBrigade(b, directory)
		if !ok {
			s.Logger.Warn("brigade leader missing from directory", zap.String("lider_ci", b.LiderCI))
			continue
		}
		if search != "" && !view.matches(search) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *WorkerServiceImpl) GetBrigade(ctx context.Context, liderCI string) (*BrigadeView, error) {
	brigade, err := s.BrigadeRepo.GetByLeader(ctx, liderCI)
	if err != nil {
		return nil, err
	}
	directory, err := s.Lookup(ctx, append([]string{brigade.LiderCI}, brigade.IntegrantesCI...))
	if err != nil {
		return nil, err
	}
	view, ok := resolveBrigade(*brigade, directory)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrWorkerNotFound, "brigade leader is not in the worker directory")
	}
	return &view, nil
}

// CreateBrigade requires the leader and every member to be in the directory.
// Duplicate members and the leader listed as a member are dropped.
func (s *WorkerServiceImpl) CreateBrigade(ctx context.Context, brigade *Brigade) (*BrigadeView, error) {
	brigade.LiderCI = strings.TrimSpace(brigade.LiderCI)
	if err := s.Validate.Struct(brigade); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation)
	}

	seen := map[string]bool{brigade.LiderCI: true}
	members := []string{}
	for _, ci := range brigade.IntegrantesCI {
		ci = strings.TrimSpace(ci)
		if ci == "" || seen[ci] {
			continue
		}
		seen[ci] = true
		members = append(members, ci)
	}
	brigade.IntegrantesCI = members

	directory, err := s.Lookup(ctx, append([]string{brigade.LiderCI}, members...))
	if err != nil {
		return nil, err
	}
	for _, ci := range append([]string{brigade.LiderCI}, members...) {
		if _, ok := directory[ci]; !ok {
			return nil, apperrors.Clone(apperrors.ErrWorkerNotFound, fmt.Sprintf("worker %s not found", ci))
		}
	}

	if err := s.BrigadeRepo.Create(ctx, brigade); err != nil {
		return nil, err
	}

	_ = s.AuditService.LogChange(ctx, common_models.AuditActionCreate, database.BrigadesCollection, brigade.LiderCI, map[string]common_models.Change{
		"brigade": {New: brigade},
	})

	view, _ := resolveBrigade(*brigade, directory)
	return &view, nil
}

func (s *WorkerServiceImpl) DeleteBrigade(ctx context.Context, liderCI string) error {
	if err := s.BrigadeRepo.Delete(ctx, liderCI); err != nil {
		return err
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionDelete, database.BrigadesCollection, liderCI, nil)
	return nil
}

func (s *WorkerServiceImpl) AddMember(ctx context.Context, liderCI, ci string) error {
	ci = strings.TrimSpace(ci)
	if ci == "" || ci == liderCI {
		return apperrors.Clone(apperrors.ErrValidation, "member CI must be set and differ from the leader")
	}
	directory, err := s.Lookup(ctx, []string{ci})
	if err != nil {
		return err
	}
	if _, ok := directory[ci]; !ok {
		return apperrors.Clone(apperrors.ErrWorkerNotFound, fmt.Sprintf("worker %s not found", ci))
	}

	if err := s.BrigadeRepo.AddMember(ctx, liderCI, ci); err != nil {
		return err
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, database.BrigadesCollection, liderCI, map[string]common_models.Change{
		"integrantes_ci": {New: ci},
	})
	return nil
}

func (s *WorkerServiceImpl) RemoveMember(ctx context.Context, liderCI, ci string) error {
	if err := s.BrigadeRepo.RemoveMember(ctx, liderCI, ci); err != nil {
		return err
	}
	_ = s.AuditService.LogChange(ctx, common_models.AuditActionUpdate, database.BrigadesCollection, liderCI, map[string]common_models.Change{
		"integrantes_ci": {Old: ci},
	})
	return nil
}

func resolveBrigade(b Brigade, directory map[string]Worker) (BrigadeView, bool) {
	lider, ok := directory[b.LiderCI]
	if !ok {
		return BrigadeView{}, false
	}
	view := BrigadeView{LiderCI: b.LiderCI, Lider: lider, Integrantes: make([]Worker, 0, len(b.IntegrantesCI))}
	for _, ci := range b.IntegrantesCI {
		member, ok := directory[ci]
		if !ok {
			member = Worker{CI: ci}
		}
		view.Integrantes = append(view.Integrantes, member)
	}
	return view, true
}

func (v BrigadeView) matches(search string) bool {
	if workerMatches(v.Lider, search) {
		return true
	}
	for _, m := range v.Integrantes {
		if workerMatches(m, search) {
			return true
		}
	}
	return false
}

func workerMatches(w Worker, search string) bool {
	return strings.Contains(strings.ToLower(w.Nombre), search) ||
		strings.Contains(strings.ToLower(w.Apellido), search)
}
