package worker

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSubmitRunsWork(t *testing.T) {
	p := NewPool(2, testLogger())
	defer p.Stop()

	done := make(chan struct{})
	ok := p.Submit(func() { close(done) })
	require.True(t, ok)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("submitted work never ran")
	}
}

func TestEnqueueRetriesUntilSuccess(t *testing.T) {
	p := NewPool(1, testLogger())
	defer p.Stop()

	var attempts atomic.Int32
	done := make(chan struct{})
	ok := p.Enqueue(Job{
		Name:    "flaky",
		Retries: 3,
		Backoff: 5 * time.Millisecond,
		Run: func() error {
			if attempts.Add(1) < 3 {
				return errors.New("transient")
			}
			close(done)
			return nil
		},
		OnDrop: func(err error) { t.Errorf("job dropped: %v", err) },
	})
	require.True(t, ok)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never succeeded")
	}
	assert.Equal(t, int32(3), attempts.Load())
}

func TestEnqueueDropsAfterRetryBudget(t *testing.T) {
	p := NewPool(1, testLogger())
	defer p.Stop()

	var attempts atomic.Int32
	dropped := make(chan error, 1)
	ok := p.Enqueue(Job{
		Name:    "doomed",
		Retries: 2,
		Backoff: 5 * time.Millisecond,
		Run: func() error {
			attempts.Add(1)
			return errors.New("permanent")
		},
		OnDrop: func(err error) { dropped <- err },
	})
	require.True(t, ok)

	select {
	case err := <-dropped:
		assert.EqualError(t, err, "permanent")
	case <-time.After(2 * time.Second):
		t.Fatal("job was never dropped")
	}
	// first attempt plus two retries
	assert.Equal(t, int32(3), attempts.Load())
}

func TestZeroRetriesDropsOnFirstFailure(t *testing.T) {
	p := NewPool(1, testLogger())
	defer p.Stop()

	dropped := make(chan error, 1)
	ok := p.Enqueue(Job{
		Name:   "once",
		Run:    func() error { return errors.New("nope") },
		OnDrop: func(err error) { dropped <- err },
	})
	require.True(t, ok)

	select {
	case <-dropped:
	case <-time.After(2 * time.Second):
		t.Fatal("job was never dropped")
	}
}

func TestEnqueueAfterStopIsRejected(t *testing.T) {
	p := NewPool(1, testLogger())
	p.Stop()

	ok := p.Enqueue(Job{Name: "late", Run: func() error { return nil }})
	assert.False(t, ok)
}

func TestJobPanicDoesNotKillWorker(t *testing.T) {
	p := NewPool(1, testLogger())
	defer p.Stop()

	require.True(t, p.Submit(func() { panic("boom") }))

	done := make(chan struct{})
	require.Eventually(t, func() bool {
		return p.Submit(func() { close(done) })
	}, 2*time.Second, 10*time.Millisecond)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive a panicking job")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p := NewPool(2, testLogger())
	p.Stop()
	p.Stop()
}
