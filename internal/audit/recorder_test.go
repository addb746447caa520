package audit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhub/hostel-backend/internal/models"
	"github.com/hostelhub/hostel-backend/internal/worker"
)

// fakeAuditStore fails the first failures inserts, then accepts.
type fakeAuditStore struct {
	mu       sync.Mutex
	rows     []models.AuditLog
	failures int
	attempts int
}

func (f *fakeAuditStore) Create(_ context.Context, l models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("store unavailable")
	}
	f.rows = append(f.rows, l)
	return nil
}

func (f *fakeAuditStore) List(_ context.Context, limit, offset int) ([]models.AuditLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.AuditLog, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeAuditStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

func (f *fakeAuditStore) last() models.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[len(f.rows)-1]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRecorder(t *testing.T, store *fakeAuditStore) *Recorder {
	t.Helper()
	pool := worker.NewPool(2, testLogger())
	t.Cleanup(pool.Stop)
	return NewRecorder(store, pool, testLogger(), 3, 5*time.Millisecond)
}

func waitRows(t *testing.T, store *fakeAuditStore, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return store.count() == n },
		2*time.Second, 5*time.Millisecond)
}

func TestSubmitPersistsEvent(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	actor := "actor-1"
	rec.Submit(models.AuditEvent{
		Action:      models.ActionCreate,
		Entity:      "Hotel",
		PerformedBy: &actor,
		Metadata:    map[string]any{"hotel_id": "h1"},
	})

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, models.ActionCreate, row.Action)
	assert.Equal(t, "Hotel", row.Entity)
	assert.Equal(t, models.AuditSuccess, row.Status)
	assert.Equal(t, "CREATE Hotel", row.Description)
	require.NotNil(t, row.PerformedBy)
	assert.Equal(t, "actor-1", *row.PerformedBy)
}

func TestSubmitRetriesTransientFailures(t *testing.T) {
	store := &fakeAuditStore{failures: 2}
	rec := newTestRecorder(t, store)

	rec.Submit(models.AuditEvent{Action: models.ActionUpdate, Entity: "Room"})

	waitRows(t, store, 1)
	store.mu.Lock()
	attempts := store.attempts
	store.mu.Unlock()
	assert.Equal(t, 3, attempts)
}

func TestSubmitDropsAfterRetryBudget(t *testing.T) {
	store := &fakeAuditStore{failures: 100}
	rec := newTestRecorder(t, store)

	rec.Submit(models.AuditEvent{Action: models.ActionDelete, Entity: "Floor"})

	// first attempt plus three retries, then the event is gone
	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.attempts == 4
	}, 2*time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, store.count())
}

func TestSubmitRejectsInvalidEvent(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	rec.Submit(models.AuditEvent{Action: "EXPLODE", Entity: "Hotel"})
	rec.Submit(models.AuditEvent{Action: models.ActionCreate})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, store.count())
}

func TestSubmitSurvivesStoppedPool(t *testing.T) {
	store := &fakeAuditStore{}
	pool := worker.NewPool(1, testLogger())
	pool.Stop()
	rec := NewRecorder(store, pool, testLogger(), 3, time.Millisecond)

	// must not panic or block
	rec.Submit(models.AuditEvent{Action: models.ActionCreate, Entity: "Hotel"})
	assert.Equal(t, 0, store.count())
}

func TestSubmitConcurrent(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.Submit(models.AuditEvent{
				Action:   models.ActionCreate,
				Entity:   "Guest",
				Metadata: map[string]any{"i": fmt.Sprint(i)},
			})
		}(i)
	}
	wg.Wait()

	waitRows(t, store, n)
}

func TestLogFailureMarksStatusFailed(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	actor := "admin-1"
	target := "user-9"
	rec.LogFailure(models.ActionUpdate, "User", &actor, &target,
		"User update failed - Email already exists", map[string]any{"email": "x@y.z"})

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, models.AuditFailed, row.Status)
	assert.Equal(t, "User update failed - Email already exists", row.Description)
	require.NotNil(t, row.TargetUser)
	assert.Equal(t, "user-9", *row.TargetUser)
}

func TestLogLoginDefaultsDescriptionAndActor(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	u := models.User{ID: "u1", Email: "jane@hostel.test"}
	rec.LogLogin(&u, "", map[string]any{"ip": "10.0.0.1"})

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, models.ActionLogin, row.Action)
	assert.Equal(t, "User jane@hostel.test logged in", row.Description)
	require.NotNil(t, row.PerformedBy)
	require.NotNil(t, row.TargetUser)
	assert.Equal(t, "u1", *row.PerformedBy)
	assert.Equal(t, "u1", *row.TargetUser)
}

func TestLogReadRecordsAccess(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	actor := "admin-1"
	target := "user-7"
	rec.LogRead("User", &target, &actor, "", nil)

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, models.ActionRead, row.Action)
	assert.Equal(t, "READ User", row.Description)
	require.NotNil(t, row.TargetUser)
	assert.Equal(t, "user-7", *row.TargetUser)
}

func TestLogUpdateCarriesDiffs(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	target := "u2"
	rec.LogUpdate("User", &target, nil, "User jane@hostel.test updated",
		map[string]any{"email": "old@hostel.test"},
		map[string]any{"email": "new@hostel.test"},
		nil)

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, map[string]any{"email": "old@hostel.test"}, row.OldValues)
	assert.Equal(t, map[string]any{"email": "new@hostel.test"}, row.NewValues)
}

func TestLogPasswordChangeDefaultsActorToUser(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	u := models.User{ID: "u3", Email: "sam@hostel.test"}
	rec.LogPasswordChange(&u, nil, "", nil)

	waitRows(t, store, 1)
	row := store.last()
	assert.Equal(t, models.ActionChangePassword, row.Action)
	require.NotNil(t, row.PerformedBy)
	assert.Equal(t, "u3", *row.PerformedBy)
	assert.Equal(t, "Password changed for user sam@hostel.test", row.Description)
}

func TestLogToggleDeleteDescribesDirection(t *testing.T) {
	store := &fakeAuditStore{}
	rec := newTestRecorder(t, store)

	u := models.User{ID: "u4", Email: "kim@hostel.test"}
	rec.LogToggleDelete(&u, nil, true, "", nil)
	rec.LogToggleDelete(&u, nil, false, "", nil)

	waitRows(t, store, 2)
	rows, err := store.List(context.Background(), 10, 0)
	require.NoError(t, err)

	byDesc := map[string]models.AuditLog{}
	for _, row := range rows {
		byDesc[row.Description] = row
	}
	del, ok := byDesc["User kim@hostel.test deleted"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"is_deleted": true}, del.NewValues)
	res, ok := byDesc["User kim@hostel.test restored"]
	require.True(t, ok)
	assert.Equal(t, map[string]any{"is_deleted": false}, res.NewValues)
}
