package audit

import (
	"context"
	"time"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const systemActor = "system"

type AuditService interface {
	LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error
	ListLogs(ctx context.Context, filter LogFilter, page, limit int64) ([]common_models.AuditLog, error)
}

type AuditServiceImpl struct {
	Repo   AuditRepository
	Logger *zap.Logger
}

func NewAuditService(repo AuditRepository, logger *zap.Logger) AuditService {
	return &AuditServiceImpl{
		Repo:   repo,
		Logger: logger.Named("audit"),
	}
}

// LogChange records who changed what. The actor comes from the JWT claims in
// ctx; requests without claims are attributed to "system". Failures are
// logged and returned, callers usually do not abort the mutation over them.
func (s *AuditServiceImpl) LogChange(ctx context.Context, action common_models.AuditAction, module string, recordID string, changes map[string]common_models.Change) error {
	actorID, actorCI := systemActor, ""
	if claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims); ok && claims != nil {
		actorID, actorCI = claims.UserID, claims.CI
	}

	log := common_models.AuditLog{
		ID:        primitive.NewObjectID(),
		Action:    action,
		Module:    module,
		RecordID:  recordID,
		ActorID:   actorID,
		ActorCI:   actorCI,
		Changes:   changes,
		Timestamp: time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, log); err != nil {
		s.Logger.Warn("audit log not written",
			zap.String("module", module),
			zap.String("record_id", recordID),
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *AuditServiceImpl) ListLogs(ctx context.Context, filter LogFilter, page, limit int64) ([]common_models.AuditLog, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit
	return s.Repo.List(ctx, filter, limit, offset)
}
