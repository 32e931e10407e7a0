package xerosync

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/config"
	"bitbucket.org/mmdatafocus/xero_mirror_backend/utils"
)

const moduleName = "xerosync"

// syncLockTTL bounds how long a crashed holder can block other instances.
const syncLockTTL = 2 * time.Minute

// Result reports what one sync cycle did.
type Result struct {
	Entity   string `json:"entity"`
	Fetched  int    `json:"fetched"`
	New      int    `json:"new"`
	Dropped  int    `json:"dropped"`
	Inserted int    `json:"inserted"`
	// Skipped is true when an overlapping cycle for the same entity was
	// already running and this one gave way.
	Skipped bool `json:"skipped"`
	// NoOp is true when the cycle completed without anything to insert.
	NoOp bool `json:"noop"`
}

// Engine runs fetch, validate, dedup, normalize and persist for one entity
// type per call. Cycles for the same entity never overlap: an in-process busy
// flag covers this instance and, when a lock client is present, a redis lease
// covers replicas. A cycle that finds nothing new is a success.
type Engine struct {
	client fetcher
	store  Store
	logger *logrus.Logger
	// publish emits the sync-completed event for any cycle that inserted
	// records, timer-driven and on-demand alike.
	publish func(ctx context.Context, logger *logrus.Logger, event SyncEvent)

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewEngine(cfg config.XeroConfig, store Store, logger *logrus.Logger) *Engine {
	return &Engine{
		client:   newXeroClient(cfg),
		store:    store,
		logger:   logger,
		publish:  publishSyncEvent,
		inFlight: make(map[string]bool),
	}
}

func (e *Engine) tryAcquire(entity string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[entity] {
		return false
	}
	e.inFlight[entity] = true
	return true
}

func (e *Engine) release(entity string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, entity)
}

// SyncOnce runs one full cycle for the entity. The returned error, when not
// nil, is always a *SyncError carrying the failure kind.
func (e *Engine) SyncOnce(ctx context.Context, entity EntityConfig) (Result, error) {
	result := Result{Entity: entity.Name}

	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)

	if !e.tryAcquire(entity.Name) {
		result.Skipped = true
		e.logger.WithFields(logrus.Fields{
			"entity":        entity.Name,
			"correlationId": correlationId,
		}).Info("sync already in progress, skipping cycle")
		return result, nil
	}
	defer e.release(entity.Name)

	// The lock client appears once redis connects; until then the busy flag
	// alone guards this instance.
	if locker := config.GetRedisLock(); locker != nil {
		lock, err := locker.Obtain(ctx, "xerosync:lock:"+entity.Name, syncLockTTL, nil)
		if errors.Is(err, redislock.ErrNotObtained) {
			result.Skipped = true
			e.logger.WithField("entity", entity.Name).Info("sync lock held elsewhere, skipping cycle")
			return result, nil
		}
		if err == nil {
			defer lock.Release(context.Background())
		} else {
			// Redis being down must not stop the mirror; the busy flag
			// still prevents overlap within this instance.
			e.logger.WithField("entity", entity.Name).WithError(err).Warn("sync lock unavailable, continuing without it")
		}
	}

	payload, err := e.client.getCollection(ctx, entity.Path)
	if err != nil {
		if errors.Is(err, errMalformedPayload) {
			return result, newSyncError(ErrKindInvalidRemoteShape, entity.Name, err)
		}
		return result, newSyncError(ErrKindFetchFailed, entity.Name, err)
	}

	records, err := recordsFromPayload(payload, entity.WrapperKey)
	if err != nil {
		return result, newSyncError(ErrKindInvalidRemoteShape, entity.Name, err)
	}
	result.Fetched = len(records)

	existing, err := e.store.ExistingIDs(ctx, entity.Collection, entity.IDField)
	if err != nil {
		return result, newSyncError(ErrKindPersistFailed, entity.Name, err)
	}

	fresh := filterNew(existing, records, entity.RemoteIDKey)
	result.New = len(fresh)
	if len(fresh) == 0 {
		result.NoOp = true
		return result, nil
	}

	docs := make([]interface{}, 0, len(fresh))
	for _, raw := range fresh {
		doc, err := entity.Normalize(raw)
		if err != nil {
			result.Dropped++
			config.LogError(e.logger, moduleName, "SyncOnce", "dropping record that failed to normalize: "+entity.Name, string(raw), newSyncError(ErrKindNormalizationFault, entity.Name, err))
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		result.NoOp = true
		return result, nil
	}

	inserted, err := e.store.InsertMany(ctx, entity.Collection, docs)
	result.Inserted = inserted
	if err != nil {
		if errors.Is(err, ErrConflict) {
			// Another writer got some of these first. The unique index kept
			// the store consistent, so the cycle still counts as a success.
			e.logger.WithFields(logrus.Fields{
				"entity":   entity.Name,
				"inserted": inserted,
				"skipped":  len(docs) - inserted,
			}).Info("duplicate inserts rejected by index, keeping partial batch")
			e.publishIfInserted(ctx, result, correlationId)
			return result, nil
		}
		return result, newSyncError(ErrKindPersistFailed, entity.Name, err)
	}

	e.logger.WithFields(logrus.Fields{
		"entity":        entity.Name,
		"fetched":       result.Fetched,
		"new":           result.New,
		"dropped":       result.Dropped,
		"inserted":      result.Inserted,
		"correlationId": correlationId,
	}).Info("sync cycle complete")
	e.publishIfInserted(ctx, result, correlationId)
	return result, nil
}

func (e *Engine) publishIfInserted(ctx context.Context, result Result, correlationId string) {
	if result.Inserted == 0 || e.publish == nil {
		return
	}
	e.publish(ctx, e.logger, SyncEvent{
		Entity:        result.Entity,
		Inserted:      result.Inserted,
		Fetched:       result.Fetched,
		CompletedAt:   time.Now().UTC(),
		CorrelationId: correlationId,
	})
}

// recordsFromPayload pulls the entity array out of the remote response
// wrapper. A missing wrapper key or a key holding anything but an array is a
// shape fault; an empty remote collection still carries the key with an empty
// array.
func recordsFromPayload(payload map[string]json.RawMessage, wrapperKey string) ([]json.RawMessage, error) {
	raw, ok := payload[wrapperKey]
	if !ok {
		return nil, errors.New("response is missing field " + wrapperKey)
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.New("response field " + wrapperKey + " is not an array")
	}
	return records, nil
}
