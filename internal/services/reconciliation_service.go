package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	apperrors "realestate-listings/internal/errors"
	"realestate-listings/internal/models"
	"realestate-listings/internal/repositories"
	"realestate-listings/pkg/logger"
	"realestate-listings/pkg/metrics"

	"github.com/gammazero/workerpool"
)

// ReconcilerConfig wires the reconciler. Locker and Cache may be nil.
type ReconcilerConfig struct {
	Records     repositories.RelationalPropertyStore
	Documents   repositories.DocumentPropertyStore
	Locker      repositories.EntityLocker
	Cache       repositories.PropertyCache
	Interval    time.Duration
	StaleAfter  time.Duration
	WorkerCount int
	BatchSize   int
}

// ReconciliationService repairs what interrupted composed writes leave
// behind: stale write intents in the relational store and documents whose
// relational row no longer exists.
type ReconciliationService struct {
	records    repositories.RelationalPropertyStore
	documents  repositories.DocumentPropertyStore
	locker     repositories.EntityLocker
	cache      repositories.PropertyCache
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int

	workerPool *workerpool.WorkerPool

	// sweepFrom is where the next orphan sweep page starts; zero means
	// start from the newest eligible document.
	sweepFrom models.SweepCursor
	mu        sync.Mutex

	now  func() time.Time
	wg   *sync.WaitGroup
	done chan struct{}
	stop sync.Once
}

func NewReconciliationService(cfg ReconcilerConfig) *ReconciliationService {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &ReconciliationService{
		records:    cfg.Records,
		documents:  cfg.Documents,
		locker:     cfg.Locker,
		cache:      cfg.Cache,
		interval:   cfg.Interval,
		staleAfter: cfg.StaleAfter,
		batchSize:  cfg.BatchSize,
		workerPool: workerpool.New(cfg.WorkerCount),
		now:        func() time.Time { return time.Now().UTC() },
		wg:         &sync.WaitGroup{},
		done:       make(chan struct{}),
	}
}

// Start runs a pass every interval until ctx is done or Stop is called.
func (r *ReconciliationService) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := r.RunOnce(ctx); err != nil {
					logger.GlobalLogger.Errorf("reconciliation pass failed: %v", err)
				}
			case <-ctx.Done():
				return
			case <-r.done:
				return
			}
		}
	}()
}

// Stop ends the loop and waits for submitted repairs to finish.
func (r *ReconciliationService) Stop() {
	r.stop.Do(func() {
		close(r.done)
		r.wg.Wait()
		r.workerPool.StopWait()
	})
}

// RunOnce repairs stale intents and then sweeps one page of documents.
func (r *ReconciliationService) RunOnce(ctx context.Context) error {
	if _, err := r.RepairIntents(ctx); err != nil {
		return err
	}
	_, err := r.SweepOrphanDocuments(ctx)
	return err
}

// RepairIntents resolves write intents older than the stale threshold. An
// unfinished create is rolled back and an unfinished delete is rolled
// forward; both end with the row and the document gone. Returns the number of
// properties repaired.
func (r *ReconciliationService) RepairIntents(ctx context.Context) (int, error) {
	intents, err := r.records.StaleIntents(ctx, r.now().Add(-r.staleAfter), r.batchSize)
	if err != nil {
		return 0, err
	}
	if len(intents) == 0 {
		return 0, nil
	}

	seen := make(map[string]bool, len(intents))
	var repaired int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, intent := range intents {
		if seen[intent.PropertyID] {
			continue
		}
		seen[intent.PropertyID] = true

		intent := intent
		wg.Add(1)
		r.workerPool.Submit(func() {
			defer wg.Done()
			if r.repairIntent(ctx, intent) {
				mu.Lock()
				repaired++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	return repaired, nil
}

// repairIntent claims the intent together with the row before touching the
// document. A create still running past the claim then fails to link and
// compensates itself; a document left behind here is removed by the sweep.
func (r *ReconciliationService) repairIntent(ctx context.Context, intent models.WriteIntent) bool {
	kind := "intent_" + string(intent.Operation)
	id := intent.PropertyID

	if r.locker != nil {
		unlock, err := r.locker.Lock(ctx, id)
		if errors.Is(err, apperrors.ErrEntityBusy) {
			metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "skipped").Inc()
			logger.GlobalLogger.Debugf("reconciler: property %s is locked, retrying on the next pass", id)
			return false
		}
		if err != nil {
			metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "failed").Inc()
			logger.GlobalLogger.Errorf("reconciler: locking property %s failed: %v", id, err)
			return false
		}
		defer func() {
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := unlock(rctx); err != nil {
				logger.GlobalLogger.Warnf("reconciler: releasing lock for property %s failed: %v", id, err)
			}
		}()
	}

	claimed, err := r.records.ResolveIntent(ctx, id, intent.Operation)
	if err != nil {
		metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "failed").Inc()
		logger.GlobalLogger.Errorf("reconciler: deleting row of property %s (%s intent) failed: %v", id, intent.Operation, err)
		return false
	}
	if !claimed {
		metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "skipped").Inc()
		logger.GlobalLogger.Debugf("reconciler: %s intent for property %s already resolved", intent.Operation, id)
		return false
	}
	r.invalidate(ctx, intent)

	if _, err := r.documents.DeleteByBackRef(ctx, id); err != nil {
		metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "failed").Inc()
		logger.GlobalLogger.Errorf("reconciler: row of property %s removed but deleting its document failed, left for the orphan sweep: %v", id, err)
		return false
	}
	metrics.ReconcilerRepairsTotal.WithLabelValues(kind, "succeeded").Inc()
	logger.GlobalLogger.Printf("reconciler: resolved %s intent for property %s", intent.Operation, id)
	return true
}

func (r *ReconciliationService) invalidate(ctx context.Context, intent models.WriteIntent) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateProperty(ctx, intent.PropertyID); err != nil {
		logger.GlobalLogger.Warnf("reconciler: property cache invalidation for %s failed: %v", intent.PropertyID, err)
	}
	var payload models.IntentPayload
	if err := json.Unmarshal(intent.Payload, &payload); err != nil || payload.OwnerID == "" {
		return
	}
	if err := r.cache.InvalidateOwnerListing(ctx, payload.OwnerID); err != nil {
		logger.GlobalLogger.Warnf("reconciler: owner listing cache invalidation for %s failed: %v", payload.OwnerID, err)
	}
}

// SweepOrphanDocuments checks one page of documents older than the stale
// threshold and deletes those without a relational row. Successive calls walk
// back through the collection on (created_at, _id) and wrap around after the
// oldest page.
func (r *ReconciliationService) SweepOrphanDocuments(ctx context.Context) (int, error) {
	cursor := models.SweepCursor{Before: r.now().Add(-r.staleAfter)}
	r.mu.Lock()
	if !r.sweepFrom.Before.IsZero() && !r.sweepFrom.Before.After(cursor.Before) {
		cursor = r.sweepFrom
	}
	r.mu.Unlock()

	stamps, err := r.documents.ListBackRefs(ctx, cursor, r.batchSize)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	if len(stamps) < r.batchSize {
		r.sweepFrom = models.SweepCursor{}
	} else {
		r.sweepFrom = stamps[len(stamps)-1].Cursor()
	}
	r.mu.Unlock()

	if len(stamps) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(stamps))
	for _, stamp := range stamps {
		id, err := models.CanonicalID(stamp.BackRef)
		if err != nil {
			logger.GlobalLogger.Warnf("reconciler: document with malformed back reference %q skipped", stamp.BackRef)
			continue
		}
		ids = append(ids, id)
	}
	existing, err := r.records.ExistingIDs(ctx, ids)
	if err != nil {
		return 0, err
	}

	var removed int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, id := range ids {
		if existing[id] {
			continue
		}
		id := id
		wg.Add(1)
		r.workerPool.Submit(func() {
			defer wg.Done()
			ok, err := r.documents.DeleteByBackRef(ctx, id)
			if err != nil {
				metrics.ReconcilerRepairsTotal.WithLabelValues("orphan_document", "failed").Inc()
				logger.GlobalLogger.Errorf("reconciler: deleting orphan document for %s failed: %v", id, err)
				return
			}
			if ok {
				metrics.ReconcilerRepairsTotal.WithLabelValues("orphan_document", "succeeded").Inc()
				logger.GlobalLogger.Printf("reconciler: deleted orphan document for %s", id)
				mu.Lock()
				removed++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	return removed, nil
}
