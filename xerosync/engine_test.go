package xerosync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"

	"bitbucket.org/mmdatafocus/xero_mirror_backend/models"
)

type fakeFetcher struct {
	payload map[string]json.RawMessage
	err     error
	calls   int
}

func (f *fakeFetcher) getCollection(ctx context.Context, path string) (map[string]json.RawMessage, error) {
	f.calls++
	return f.payload, f.err
}

type fakeStore struct {
	ids         map[string]struct{}
	insertCalls int
	insertErr   error
	// insertedOnErr is the partial count reported alongside insertErr.
	insertedOnErr int
	scanErr       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{ids: make(map[string]struct{})}
}

func (s *fakeStore) ExistingIDs(ctx context.Context, collection string, field string) (map[string]struct{}, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	snapshot := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		snapshot[id] = struct{}{}
	}
	return snapshot, nil
}

func (s *fakeStore) InsertMany(ctx context.Context, collection string, docs []interface{}) (int, error) {
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertedOnErr, s.insertErr
	}
	for _, doc := range docs {
		if account, ok := doc.(*models.Account); ok {
			s.ids[account.AccountID] = struct{}{}
		}
	}
	return len(docs), nil
}

func newTestEngine(client fetcher, store Store) *Engine {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &Engine{
		client:   client,
		store:    store,
		logger:   logger,
		inFlight: make(map[string]bool),
	}
}

func accountsEntity(t *testing.T) EntityConfig {
	t.Helper()
	entity, ok := EntityByName("accounts")
	if !ok {
		t.Fatal("accounts entity not registered")
	}
	return entity
}

func accountsPayload(ids ...string) map[string]json.RawMessage {
	records := make([]json.RawMessage, 0, len(ids))
	for _, id := range ids {
		records = append(records, json.RawMessage(fmt.Sprintf(`{"AccountID":%q,"Name":"n-%s"}`, id, id)))
	}
	raw, _ := json.Marshal(records)
	return map[string]json.RawMessage{"Accounts": raw}
}

func TestSyncOnceInsertsOnlyNewRecords(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: accountsPayload("a1", "a2")}
	engine := newTestEngine(client, store)
	entity := accountsEntity(t)

	result, err := engine.SyncOnce(context.Background(), entity)
	if err != nil {
		t.Fatalf("first cycle error: %v", err)
	}
	if result.Fetched != 2 || result.New != 2 || result.Inserted != 2 {
		t.Fatalf("unexpected first cycle result: %+v", result)
	}

	// Same payload again: everything is already mirrored.
	result, err = engine.SyncOnce(context.Background(), entity)
	if err != nil {
		t.Fatalf("second cycle error: %v", err)
	}
	if !result.NoOp || result.Inserted != 0 {
		t.Fatalf("second cycle should be a no-op: %+v", result)
	}
	if store.insertCalls != 1 {
		t.Fatalf("no-op cycle must not touch the store, insert calls = %d", store.insertCalls)
	}
}

func TestSyncOncePartialOverlap(t *testing.T) {
	store := newFakeStore()
	store.ids["a1"] = struct{}{}
	client := &fakeFetcher{payload: accountsPayload("a1", "a2", "a3")}
	engine := newTestEngine(client, store)

	result, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	if err != nil {
		t.Fatalf("cycle error: %v", err)
	}
	if result.Fetched != 3 || result.New != 2 || result.Inserted != 2 {
		t.Fatalf("expected only the unseen records inserted: %+v", result)
	}
}

func TestSyncOnceInvalidShape(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: map[string]json.RawMessage{
		"Accounts": json.RawMessage(`"not-an-array"`),
	}}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindInvalidRemoteShape {
		t.Fatalf("expected invalid_remote_shape, got %v", err)
	}
	if store.insertCalls != 0 {
		t.Fatal("a rejected payload must write nothing")
	}
}

func TestSyncOnceMissingWrapperKey(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: map[string]json.RawMessage{}}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindInvalidRemoteShape {
		t.Fatalf("missing wrapper key must be a shape fault, got %v", err)
	}
	if store.insertCalls != 0 {
		t.Fatal("a rejected payload must write nothing")
	}
}

func TestSyncOnceEmptyRemoteCollection(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: map[string]json.RawMessage{
		"Accounts": json.RawMessage(`[]`),
	}}
	engine := newTestEngine(client, store)

	result, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	if err != nil {
		t.Fatalf("cycle error: %v", err)
	}
	if !result.NoOp || result.Fetched != 0 {
		t.Fatalf("an empty array is a valid empty fetch: %+v", result)
	}
	if store.insertCalls != 0 {
		t.Fatalf("no-op cycle must not touch the store, insert calls = %d", store.insertCalls)
	}
}

func TestSyncOnceFetchFailure(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{err: errors.New("connection refused")}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindFetchFailed {
		t.Fatalf("expected fetch_failed, got %v", err)
	}
}

func TestSyncOnceMalformedPayload(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{err: fmt.Errorf("%w: oops", errMalformedPayload)}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindInvalidRemoteShape {
		t.Fatalf("expected invalid_remote_shape, got %v", err)
	}
}

func TestSyncOnceDropsRecordsThatFailToNormalize(t *testing.T) {
	store := newFakeStore()
	records := []json.RawMessage{
		json.RawMessage(`{"AccountID":"a1","Name":"ok"}`),
		json.RawMessage(`{"AccountID":"a2","Name":"ok"}`),
		json.RawMessage(`{"AccountID":"a3","Name":12345}`),
		json.RawMessage(`{"AccountID":"a4","Name":"ok"}`),
		json.RawMessage(`{"AccountID":"a5","Name":"ok"}`),
	}
	raw, _ := json.Marshal(records)
	client := &fakeFetcher{payload: map[string]json.RawMessage{"Accounts": raw}}
	engine := newTestEngine(client, store)

	result, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	if err != nil {
		t.Fatalf("cycle error: %v", err)
	}
	if result.Dropped != 1 || result.Inserted != 4 {
		t.Fatalf("expected one dropped and four inserted: %+v", result)
	}
	if _, ok := store.ids["a3"]; ok {
		t.Fatal("the malformed record must not be persisted")
	}
}

func TestSyncOnceConflictIsBenign(t *testing.T) {
	store := newFakeStore()
	store.insertErr = fmt.Errorf("bulk write: %w", ErrConflict)
	store.insertedOnErr = 3
	client := &fakeFetcher{payload: accountsPayload("a1", "a2", "a3", "a4")}
	engine := newTestEngine(client, store)

	result, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	if err != nil {
		t.Fatalf("conflict should not fail the cycle: %v", err)
	}
	if result.Inserted != 3 {
		t.Fatalf("expected partial insert count carried through: %+v", result)
	}
}

func TestSyncOncePersistFailure(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("server selection timeout")
	client := &fakeFetcher{payload: accountsPayload("a1")}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindPersistFailed {
		t.Fatalf("expected persist_failed, got %v", err)
	}
}

func TestSyncOnceScanFailure(t *testing.T) {
	store := newFakeStore()
	store.scanErr = errors.New("cursor timeout")
	client := &fakeFetcher{payload: accountsPayload("a1")}
	engine := newTestEngine(client, store)

	_, err := engine.SyncOnce(context.Background(), accountsEntity(t))
	var syncErr *SyncError
	if !errors.As(err, &syncErr) || syncErr.Kind != ErrKindPersistFailed {
		t.Fatalf("expected persist_failed, got %v", err)
	}
	if store.insertCalls != 0 {
		t.Fatal("a failed scan must write nothing")
	}
}

func TestSyncOncePublishesEventAfterInserts(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: accountsPayload("a1", "a2")}
	engine := newTestEngine(client, store)

	var events []SyncEvent
	engine.publish = func(ctx context.Context, logger *logrus.Logger, event SyncEvent) {
		events = append(events, event)
	}

	if _, err := engine.SyncOnce(context.Background(), accountsEntity(t)); err != nil {
		t.Fatalf("first cycle error: %v", err)
	}
	if len(events) != 1 || events[0].Entity != "accounts" || events[0].Inserted != 2 {
		t.Fatalf("expected one event for the inserting cycle, got %+v", events)
	}

	// A no-op cycle emits nothing.
	if _, err := engine.SyncOnce(context.Background(), accountsEntity(t)); err != nil {
		t.Fatalf("second cycle error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("no-op cycle must not publish, got %+v", events)
	}
}

func TestSyncOncePublishesPartialBatchOnConflict(t *testing.T) {
	store := newFakeStore()
	store.insertErr = fmt.Errorf("bulk write: %w", ErrConflict)
	store.insertedOnErr = 1
	client := &fakeFetcher{payload: accountsPayload("a1", "a2")}
	engine := newTestEngine(client, store)

	var events []SyncEvent
	engine.publish = func(ctx context.Context, logger *logrus.Logger, event SyncEvent) {
		events = append(events, event)
	}

	if _, err := engine.SyncOnce(context.Background(), accountsEntity(t)); err != nil {
		t.Fatalf("conflict should not fail the cycle: %v", err)
	}
	if len(events) != 1 || events[0].Inserted != 1 {
		t.Fatalf("expected partial insert count in the event, got %+v", events)
	}
}

func TestSyncOnceSkipsWhenAlreadyRunning(t *testing.T) {
	store := newFakeStore()
	client := &fakeFetcher{payload: accountsPayload("a1")}
	engine := newTestEngine(client, store)
	entity := accountsEntity(t)

	engine.mu.Lock()
	engine.inFlight[entity.Name] = true
	engine.mu.Unlock()

	result, err := engine.SyncOnce(context.Background(), entity)
	if err != nil {
		t.Fatalf("skip should not be an error: %v", err)
	}
	if !result.Skipped {
		t.Fatalf("expected skipped cycle: %+v", result)
	}
	if client.calls != 0 || store.insertCalls != 0 {
		t.Fatal("a skipped cycle must not fetch or write")
	}
}
