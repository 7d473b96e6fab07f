package offer

import (
	"context"
	"errors"

	common_models "go-fieldops/internal/common/models"
	"go-fieldops/internal/config"
	"go-fieldops/internal/database"
	"go-fieldops/internal/features/audit"
	"go-fieldops/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ConflictObserver is told about every rejected concurrent element write.
type ConflictObserver interface {
	IncOfferConflict()
}

type OfferService interface {
	ListOffers(ctx context.Context) ([]Offer, error)
	ListSimplified(ctx context.Context) ([]SimplifiedOffer, error)
	GetOffer(ctx context.Context, id string) (*Offer, error)
	CreateOffer(ctx context.Context, offer *Offer) error
	UpdateOffer(ctx context.Context, id string, update OfferUpdate) (*Offer, error)
	DeleteOffer(ctx context.Context, id string) error

	AddElement(ctx context.Context, id string, element Element) (*Element, error)
	UpdateElement(ctx context.Context, id string, index int, patch ElementPatch) (*Element, error)
	RemoveElement(ctx context.Context, id string, index int) error
	UpdateElementByID(ctx context.Context, id, elementID string, patch ElementPatch) (*Element, error)
	RemoveElementByID(ctx context.Context, id, elementID string) error
}

type OfferServiceImpl struct {
	Repo         OfferRepository
	AuditService audit.AuditService
	Validate     *validator.Validate
	Observer     ConflictObserver
	Logger       *zap.Logger
	// checkVersion is off in last-write-wins mode, where concurrent element
	// writes silently overwrite each other.
	checkVersion bool
}

func NewOfferService(repo OfferRepository, auditService audit.AuditService, validate *validator.Validate, cfg *config.Config, observer ConflictObserver, logger *zap.Logger) OfferService {
	return &OfferServiceImpl{
		Repo:         repo,
		AuditService: auditService,
		Validate:     validate,
		Observer:     observer,
		Logger:       logger.Named("offer"),
		checkVersion: cfg.OfferConcurrency != config.OfferConcurrencyLastWriteWins,
	}
}

func (s *OfferServiceImpl) ListOffers(ctx context.Context) ([]Offer, error) {
	offers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range offers {
		offers[i].Elementos = Project(offers[i].Elementos)
	}
	return offers, nil
}

func (s *OfferServiceImpl) ListSimplified(ctx context.Context) ([]SimplifiedOffer, error) {
	offers, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SimplifiedOffer, 0, len(offers))
	for _, o := range offers {
		out = append(out, SimplifiedOffer{
			ID:            o.ID,
			Descripcion:   o.Descripcion,
			Precio:        o.Precio,
			PrecioCliente: o.PrecioCliente,
			Imagen:        o.Imagen,
		})
	}
	return out, nil
}

func (s *OfferServiceImpl) GetOffer(ctx context.Context, id string) (*Offer, error) {
	offer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	offer.Elementos = Project(offer.Elementos)
	return offer, nil
}

func (s *OfferServiceImpl) CreateOffer(ctx context.Context, offer *Offer) error {
	if err := s.Validate.Struct(offer); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation)
	}

	var raw []Element
	for _, e := range offer.Elementos {
		raw, _ = Append(raw, e)
	}
	offer.Elementos = raw
	offer.Version = 0

	if err := s.Repo.Create(ctx, offer); err != nil {
		return err
	}
	offer.Elementos = Project(offer.Elementos)

	s.audit(ctx, common_models.AuditActionCreate, offer.ID.Hex(), map[string]common_models.Change{
		"offer": {New: offer},
	})
	return nil
}

func (s *OfferServiceImpl) UpdateOffer(ctx context.Context, id string, update OfferUpdate) (*Offer, error) {
	fields := bson.M{}
	if update.Descripcion != nil {
		if *update.Descripcion == "" {
			return nil, apperrors.Clone(apperrors.ErrValidation, "descripcion cannot be empty")
		}
		fields["descripcion"] = *update.Descripcion
	}
	if update.Precio != nil {
		if *update.Precio < 0 {
			return nil, apperrors.Clone(apperrors.ErrValidation, "precio cannot be negative")
		}
		fields["precio"] = *update.Precio
	}
	if update.PrecioCliente != nil {
		fields["precio_cliente"] = *update.PrecioCliente
	}
	if update.Imagen != nil {
		fields["imagen"] = *update.Imagen
	}
	if update.Garantias != nil {
		fields["garantias"] = *update.Garantias
	}
	if len(fields) == 0 {
		return nil, apperrors.Clone(apperrors.ErrValidation, "no fields to update")
	}

	before, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	changes := make(map[string]common_models.Change, len(fields))
	for k, v := range fields {
		changes[k] = common_models.Change{Old: topLevelField(before, k), New: v}
	}
	s.audit(ctx, common_models.AuditActionUpdate, id, changes)

	return s.GetOffer(ctx, id)
}

func (s *OfferServiceImpl) DeleteOffer(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, common_models.AuditActionDelete, id, nil)
	return nil
}

func (s *OfferServiceImpl) AddElement(ctx context.Context, id string, element Element) (*Element, error) {
	if err := s.Validate.Struct(element); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation)
	}

	_, added := Append(nil, element)
	if err := s.Repo.PushElement(ctx, id, added); err != nil {
		return nil, err
	}

	s.audit(ctx, common_models.AuditActionElementAdd, id, map[string]common_models.Change{
		"elementos": {New: added},
	})
	return &added, nil
}

func (s *OfferServiceImpl) UpdateElement(ctx context.Context, id string, index int, patch ElementPatch) (*Element, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	var updated Element
	err := s.mutateElements(ctx, id, common_models.AuditActionElementUpdate, func(raw []Element) ([]Element, common_models.Change, error) {
		out, before, after, err := UpdateAt(raw, index, patch)
		updated = after
		return out, common_models.Change{Old: before, New: after}, err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *OfferServiceImpl) RemoveElement(ctx context.Context, id string, index int) error {
	return s.mutateElements(ctx, id, common_models.AuditActionElementRemove, func(raw []Element) ([]Element, common_models.Change, error) {
		out, removed, err := RemoveAt(raw, index)
		return out, common_models.Change{Old: removed}, err
	})
}

func (s *OfferServiceImpl) UpdateElementByID(ctx context.Context, id, elementID string, patch ElementPatch) (*Element, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	var updated Element
	err := s.mutateElements(ctx, id, common_models.AuditActionElementUpdate, func(raw []Element) ([]Element, common_models.Change, error) {
		out, before, after, err := UpdateByID(raw, elementID, patch)
		updated = after
		return out, common_models.Change{Old: before, New: after}, err
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *OfferServiceImpl) RemoveElementByID(ctx context.Context, id, elementID string) error {
	return s.mutateElements(ctx, id, common_models.AuditActionElementRemove, func(raw []Element) ([]Element, common_models.Change, error) {
		out, removed, err := RemoveByID(raw, elementID)
		return out, common_models.Change{Old: removed}, err
	})
}

// mutateElements reads the offer, applies fn to its raw elements and writes
// the result back. In optimistic mode the write is conditional on the version
// read here. The change is audited only once the write went through.
func (s *OfferServiceImpl) mutateElements(ctx context.Context, id string, action common_models.AuditAction, fn func(raw []Element) ([]Element, common_models.Change, error)) error {
	offer, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}

	out, change, err := fn(offer.Elementos)
	if err != nil {
		return err
	}

	var expected *int64
	if s.checkVersion {
		expected = &offer.Version
	}

	err = s.Repo.ReplaceElements(ctx, id, expected, out)
	if errors.Is(err, apperrors.ErrConcurrentModification) {
		s.Logger.Warn("concurrent offer modification rejected",
			zap.String("offer_id", id),
			zap.String("operation", string(action)),
			zap.Int64("version", offer.Version),
		)
		if s.Observer != nil {
			s.Observer.IncOfferConflict()
		}
	}
	if err != nil {
		return err
	}

	s.audit(ctx, action, id, map[string]common_models.Change{"elementos": change})
	return nil
}

func (s *OfferServiceImpl) audit(ctx context.Context, action common_models.AuditAction, id string, changes map[string]common_models.Change) {
	_ = s.AuditService.LogChange(ctx, action, database.OffersCollection, id, changes)
}

func validatePatch(p ElementPatch) error {
	if p.IsEmpty() {
		return apperrors.Clone(apperrors.ErrValidation, "no fields to update")
	}
	if p.Cantidad != nil && *p.Cantidad <= 0 {
		return apperrors.Clone(apperrors.ErrValidation, "cantidad must be greater than 0")
	}
	if p.Descripcion != nil && *p.Descripcion == "" {
		return apperrors.Clone(apperrors.ErrValidation, "descripcion cannot be empty")
	}
	return nil
}

func topLevelField(o *Offer, field string) any {
	switch field {
	case "descripcion":
		return o.Descripcion
	case "precio":
		return o.Precio
	case "precio_cliente":
		return o.PrecioCliente
	case "imagen":
		return o.Imagen
	case "garantias":
		return o.Garantias
	}
	return nil
}
