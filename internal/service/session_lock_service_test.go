package service

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSessionLockService_SerializesOneSession(t *testing.T) {
	t.Parallel()

	svc := NewSessionLockService(newTestLogger())
	defer svc.Stop()

	id := uuid.New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := svc.Lock(id)
			defer unlock()
			current := counter
			time.Sleep(time.Microsecond)
			counter = current + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestSessionLockService_CleanupStale(t *testing.T) {
	t.Parallel()

	svc := NewSessionLockService(newTestLogger())
	defer svc.Stop()

	idle := uuid.New()
	held := uuid.New()

	svc.Lock(idle)()
	unlock := svc.Lock(held)

	removed := svc.cleanupStale(time.Now().Add(time.Hour))
	assert.Equal(t, 1, removed)

	_, ok := svc.sessionMu.Load(idle)
	assert.False(t, ok)
	_, ok = svc.sessionMu.Load(held)
	assert.True(t, ok)

	unlock()
	svc.Forget(held)
	_, ok = svc.sessionMu.Load(held)
	assert.False(t, ok)
}

func TestSessionLockService_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := NewSessionLockService(newTestLogger())
	svc.Stop()
	svc.Stop()
}

func TestSessionLockService_RemovedMutexIsNotReused(t *testing.T) {
	t.Parallel()

	svc := NewSessionLockService(newTestLogger())
	defer svc.Stop()

	id := uuid.New()
	unlockFirst := svc.Lock(id)

	secondLocked := make(chan struct{})
	releaseSecond := make(chan struct{})
	go func() {
		unlock := svc.Lock(id)
		close(secondLocked)
		<-releaseSecond
		unlock()
	}()

	// Let the second caller queue on the current mutex, then drop it from the map.
	time.Sleep(20 * time.Millisecond)
	svc.sessionMu.Delete(id)
	unlockFirst()
	<-secondLocked

	thirdLocked := make(chan struct{})
	go func() {
		unlock := svc.Lock(id)
		close(thirdLocked)
		unlock()
	}()

	select {
	case <-thirdLocked:
		t.Fatal("two callers held the same session at once")
	case <-time.After(50 * time.Millisecond):
	}

	close(releaseSecond)
	select {
	case <-thirdLocked:
	case <-time.After(time.Second):
		t.Fatal("third caller never acquired the session")
	}
}
