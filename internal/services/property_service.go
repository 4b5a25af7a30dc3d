package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/internal/transformers"
	"realestate-listings/internal/utils"
	"realestate-listings/internal/validators"
	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"gorm.io/datatypes"
)

// PropertyService composes the relational record and the attribute document
// into one property entity. Writes follow a saga: each step that can leave
// the stores apart is either compensated or recorded as a write intent for
// the reconciler.
type PropertyService struct {
	records   repositories.RelationalPropertyStore
	documents repositories.DocumentPropertyStore
	cache     repositories.PropertyCache
	locker    repositories.EntityLocker
	trans     transformers.PropertyTransformer
	addrTrans transformers.AddressTransformer
	validator validators.PropertyValidator
	timeout   time.Duration

	now   func() time.Time
	newID func() string
}

// NewPropertyService wires the stores. cache and locker may be nil.
func NewPropertyService(
	records repositories.RelationalPropertyStore,
	documents repositories.DocumentPropertyStore,
	cache repositories.PropertyCache,
	locker repositories.EntityLocker,
	trans transformers.PropertyTransformer,
	addrTrans transformers.AddressTransformer,
	validator validators.PropertyValidator,
	timeout time.Duration,
) *PropertyService {
	return &PropertyService{
		records:   records,
		documents: documents,
		cache:     cache,
		locker:    locker,
		trans:     trans,
		addrTrans: addrTrans,
		validator: validator,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:     models.NewID,
	}
}

func (s *PropertyService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// detached returns a context for compensation that outlives a cancelled request.
func (s *PropertyService) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return s.withTimeout(context.WithoutCancel(ctx))
}

// Create writes the row and its write intent, then the document, then links
// them. A fresh id is generated per call so a retried create never collides
// with leftovers of a failed one.
func (s *PropertyService) Create(ctx context.Context, ownerID string, fields models.PropertyFields, attrs models.Attributes) (*models.PropertyEntity, error) {
	ownerID, err := models.CanonicalID(ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateCreate(&fields, &attrs); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	id := s.newID()
	rec := s.trans.NewRecord(id, ownerID, fields, now)
	payload, _ := json.Marshal(models.IntentPayload{OwnerID: ownerID})
	intent := &models.WriteIntent{Operation: models.IntentCreate, Payload: datatypes.JSON(payload), CreatedAt: now}

	if err := s.records.Insert(ctx, rec, intent); err != nil {
		logger.GlobalLogger.Errorf("create property %s: relational insert failed: %v", id, err)
		return nil, err
	}

	doc := models.NewPropertyDocument(id, ownerID, attrs, now)
	ref, err := s.documents.Insert(ctx, doc)
	if err != nil {
		logger.GlobalLogger.Errorf("create property %s: document insert failed: %v", id, err)
		return nil, s.compensateCreate(ctx, id, err)
	}

	if err := s.records.LinkDocument(ctx, id, ref); err != nil {
		logger.GlobalLogger.Errorf("create property %s: linking document %s failed: %v", id, ref, err)
		return nil, s.compensateCreate(ctx, id, err)
	}
	rec.DocumentRef = &ref

	s.invalidateOwnerListing(ctx, ownerID)
	logger.GlobalLogger.Debugf("created property %s for owner %s", id, ownerID)
	return s.trans.ToEntity(rec, doc), nil
}

// compensateCreate removes whatever the failed create left behind. The
// document goes first; the row, and with it the intent, only once the
// document is gone, so a failure here leaves the intent for the reconciler.
func (s *PropertyService) compensateCreate(ctx context.Context, id string, cause error) error {
	cctx, cancel := s.detached(ctx)
	defer cancel()

	_, err := s.documents.DeleteByBackRef(cctx, id)
	if err == nil {
		_, err = s.records.Delete(cctx, id)
	}
	if err != nil {
		metrics.CompensationsTotal.WithLabelValues("create", "failed").Inc()
		metrics.PartialWritesTotal.WithLabelValues("create").Inc()
		logger.GlobalLogger.Errorf("create property %s: compensation failed, stores inconsistent: %v", id, err)
		return &apperrors.PartialWriteError{Operation: "create", PropertyID: id, Cause: errors.Join(cause, err)}
	}
	metrics.CompensationsTotal.WithLabelValues("create", "succeeded").Inc()
	logger.GlobalLogger.Warnf("create property %s rolled back: %v", id, cause)
	return utils.WrapError(cause, "create property %s rolled back", id)
}

// Get returns nil, nil when the property does not exist or is incomplete.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.PropertyEntity, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if entity := s.cachedProperty(ctx, id); entity != nil {
		return entity, nil
	}
	gen, cacheable := s.propertyGeneration(ctx, id)

	rec, err := s.records.Get(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	doc, err := s.documents.FindByBackRef(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.complete("get", rec, doc) {
		return nil, nil
	}

	entity := s.trans.ToEntity(rec, doc)
	if cacheable {
		s.storeProperty(ctx, entity, gen)
	}
	return entity, nil
}

// OwnerOf returns the owner recorded on the relational row, or "" when there
// is no row. It ignores the document, so a row whose document went missing
// stays deletable by its owner.
func (s *PropertyService) OwnerOf(ctx context.Context, id string) (string, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rec, err := s.records.Get(ctx, id)
	if err != nil || rec == nil {
		return "", err
	}
	return rec.OwnerID, nil
}

// ListByOwner returns the owner's complete properties, newest first.
func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string) ([]models.PropertyEntity, error) {
	ownerID, err := models.CanonicalID(ownerID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var gen string
	cacheable := false
	if s.cache != nil {
		entities, ok, err := s.cache.GetOwnerListing(ctx, ownerID)
		if err != nil {
			logger.GlobalLogger.Warnf("owner listing cache read for %s failed: %v", ownerID, err)
		} else if ok {
			return entities, nil
		}
		if gen, err = s.cache.OwnerListingGeneration(ctx, ownerID); err != nil {
			logger.GlobalLogger.Warnf("owner listing generation read for %s failed: %v", ownerID, err)
		} else {
			cacheable = true
		}
	}

	recs, err := s.records.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	entities, err := s.compose(ctx, "list_by_owner", recs, "")
	if err != nil {
		return nil, err
	}

	if cacheable {
		stored, err := s.cache.SetOwnerListing(ctx, ownerID, gen, entities)
		if err != nil {
			logger.GlobalLogger.Warnf("owner listing cache write for %s failed: %v", ownerID, err)
		} else if !stored {
			logger.GlobalLogger.Debugf("owner listing for %s changed while loading, not cached", ownerID)
		}
	}
	return entities, nil
}

// Search filters rows in the relational store, then matches the location
// against each candidate's document.
func (s *PropertyService) Search(ctx context.Context, filter models.SearchFilter) ([]models.PropertyEntity, error) {
	if err := s.validator.ValidateSearch(&filter); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	recs, err := s.records.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.compose(ctx, "search", recs, filter.Location)
}

// compose joins rows with their documents in one batch lookup, dropping
// incomplete entities and, when location is set, non-matching ones.
func (s *PropertyService) compose(ctx context.Context, op string, recs []models.PropertyRecord, location string) ([]models.PropertyEntity, error) {
	entities := make([]models.PropertyEntity, 0, len(recs))
	if len(recs) == 0 {
		return entities, nil
	}
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	docs, err := s.documents.FindByBackRefs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range recs {
		rec := &recs[i]
		doc := docs[rec.ID]
		if !s.complete(op, rec, doc) {
			continue
		}
		if !s.addrTrans.MatchesLocation(doc.Location, location) {
			continue
		}
		entities = append(entities, *s.trans.ToEntity(rec, doc))
	}
	return entities, nil
}

// complete reports whether rec is a finished entity with its document. Rows
// still waiting for their link are skipped quietly; a linked row without a
// document is an integrity problem.
func (s *PropertyService) complete(op string, rec *models.PropertyRecord, doc *models.PropertyDocument) bool {
	if rec.DocumentRef == nil {
		logger.GlobalLogger.Debugf("%s: property %s has no linked document yet", op, rec.ID)
		return false
	}
	if doc == nil {
		metrics.MissingDocumentsTotal.WithLabelValues(op).Inc()
		logger.GlobalLogger.Warnf("%s: property %s references document %s which does not exist", op, rec.ID, *rec.DocumentRef)
		return false
	}
	return true
}

// Update applies the relational columns first and the document fields
// second. When the document write fails the previous column values are
// restored. Returns nil, nil when the property does not exist.
func (s *PropertyService) Update(ctx context.Context, id string, partial map[string]interface{}) (*models.PropertyEntity, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return nil, err
	}
	upd, attrs, err := s.trans.SplitUpdate(partial)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateUpdate(&upd, &attrs); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	rec, err := s.records.Get(ctx, id)
	if err != nil || rec == nil {
		return nil, err
	}
	doc, err := s.documents.FindByBackRef(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.complete("update", rec, doc) {
		return nil, nil
	}

	ownerID := rec.OwnerID
	prev := upd.Snapshot(rec)
	if !upd.IsEmpty() {
		rec, err = s.records.Update(ctx, id, upd)
		if err != nil || rec == nil {
			s.invalidateProperty(ctx, id)
			s.invalidateOwnerListing(ctx, ownerID)
			return nil, err
		}
	}

	if !attrs.IsEmpty() {
		ok, err := s.documents.UpdateByBackRef(ctx, id, attrs)
		if err == nil && !ok {
			err = fmt.Errorf("document for property %s: %w", id, apperrors.ErrNotFound)
		}
		if err != nil {
			logger.GlobalLogger.Errorf("update property %s: document update failed: %v", id, err)
			return nil, s.compensateUpdate(ctx, id, ownerID, upd, prev, err)
		}
		doc, err = s.documents.FindByBackRef(ctx, id)
		if err != nil {
			s.invalidateProperty(ctx, id)
			s.invalidateOwnerListing(ctx, ownerID)
			return nil, err
		}
		if doc == nil {
			s.invalidateProperty(ctx, id)
			s.invalidateOwnerListing(ctx, ownerID)
			metrics.MissingDocumentsTotal.WithLabelValues("update").Inc()
			return nil, nil
		}
	}

	s.invalidateProperty(ctx, id)
	s.invalidateOwnerListing(ctx, ownerID)
	return s.trans.ToEntity(rec, doc), nil
}

func (s *PropertyService) compensateUpdate(ctx context.Context, id, ownerID string, upd, prev models.RecordUpdate, cause error) error {
	cctx, cancel := s.detached(ctx)
	defer cancel()
	defer s.invalidateOwnerListing(cctx, ownerID)
	defer s.invalidateProperty(cctx, id)

	if upd.IsEmpty() {
		return utils.WrapError(cause, "update property %s", id)
	}
	if _, err := s.records.Update(cctx, id, prev); err != nil {
		metrics.CompensationsTotal.WithLabelValues("update", "failed").Inc()
		metrics.PartialWritesTotal.WithLabelValues("update").Inc()
		logger.GlobalLogger.Errorf("update property %s: restoring columns failed, stores inconsistent: %v", id, err)
		return &apperrors.PartialWriteError{Operation: "update", PropertyID: id, Cause: errors.Join(cause, err)}
	}
	metrics.CompensationsTotal.WithLabelValues("update", "succeeded").Inc()
	logger.GlobalLogger.Warnf("update property %s rolled back: %v", id, cause)
	return utils.WrapError(cause, "update property %s", id)
}

// Delete removes the document and then the row. A delete intent covers the
// window between the two so an interrupted delete is finished by the
// reconciler. Returns false when the property does not exist.
func (s *PropertyService) Delete(ctx context.Context, id string) (bool, error) {
	id, err := models.CanonicalID(id)
	if err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	release, err := s.lock(ctx, id)
	if err != nil {
		return false, err
	}
	defer release()

	rec, err := s.records.Get(ctx, id)
	if err != nil || rec == nil {
		return false, err
	}

	payload := models.IntentPayload{OwnerID: rec.OwnerID}
	if rec.DocumentRef != nil {
		payload.DocumentRef = *rec.DocumentRef
	}
	raw, _ := json.Marshal(payload)
	intent := &models.WriteIntent{PropertyID: id, Operation: models.IntentDelete, Payload: datatypes.JSON(raw), CreatedAt: s.now()}
	if err := s.records.AddIntent(ctx, intent); err != nil && !errors.Is(err, apperrors.ErrConstraintViolation) {
		return false, err
	}

	if _, err := s.documents.DeleteByBackRef(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("delete property %s: document delete failed: %v", id, err)
		cctx, ccancel := s.detached(ctx)
		defer ccancel()
		if cerr := s.records.ClearIntent(cctx, id, models.IntentDelete); cerr != nil {
			logger.GlobalLogger.Warnf("delete property %s: clearing intent failed, reconciler will finish the delete: %v", id, cerr)
		}
		return false, err
	}

	deleted, err := s.records.Delete(ctx, id)
	s.invalidateProperty(ctx, id)
	s.invalidateOwnerListing(ctx, rec.OwnerID)
	if err != nil {
		metrics.PartialWritesTotal.WithLabelValues("delete").Inc()
		logger.GlobalLogger.Errorf("delete property %s: row delete failed after document removal: %v", id, err)
		return false, &apperrors.PartialWriteError{Operation: "delete", PropertyID: id, Cause: err}
	}
	return deleted, nil
}

func (s *PropertyService) lock(ctx context.Context, id string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	unlock, err := s.locker.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	return func() {
		rctx, cancel := s.detached(ctx)
		defer cancel()
		if err := unlock(rctx); err != nil {
			logger.GlobalLogger.Warnf("releasing lock for property %s failed: %v", id, err)
		}
	}, nil
}

func (s *PropertyService) cachedProperty(ctx context.Context, id string) *models.PropertyEntity {
	if s.cache == nil {
		return nil
	}
	entity, err := s.cache.GetProperty(ctx, id)
	if err != nil {
		logger.GlobalLogger.Warnf("property cache read for %s failed: %v", id, err)
		return nil
	}
	return entity
}

// propertyGeneration reads the cache generation ahead of a store read. A
// fill is only attempted when the read succeeded.
func (s *PropertyService) propertyGeneration(ctx context.Context, id string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.PropertyGeneration(ctx, id)
	if err != nil {
		logger.GlobalLogger.Warnf("property cache generation read for %s failed: %v", id, err)
		return "", false
	}
	return gen, true
}

func (s *PropertyService) storeProperty(ctx context.Context, entity *models.PropertyEntity, gen string) {
	stored, err := s.cache.SetProperty(ctx, entity, gen)
	if err != nil {
		logger.GlobalLogger.Warnf("property cache write for %s failed: %v", entity.ID, err)
		return
	}
	if !stored {
		logger.GlobalLogger.Debugf("property %s changed while loading, not cached", entity.ID)
	}
}

func (s *PropertyService) invalidateProperty(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateProperty(ctx, id); err != nil {
		logger.GlobalLogger.Warnf("property cache invalidation for %s failed: %v", id, err)
	}
}

func (s *PropertyService) invalidateOwnerListing(ctx context.Context, ownerID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateOwnerListing(ctx, ownerID); err != nil {
		logger.GlobalLogger.Warnf("owner listing cache invalidation for %s failed: %v", ownerID, err)
	}
}
