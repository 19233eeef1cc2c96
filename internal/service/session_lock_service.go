package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// SessionLockService serializes actions on one browse session so that every
// action sees the state produced by the previous one.
//
// Mutexes are created on demand and dropped by a background loop once they
// have been unused for a while. Call Stop() during graceful shutdown.
type SessionLockService struct {
	log *logrus.Logger

	sessionMu sync.Map // map[uuid.UUID]*mutexWithTimestamp

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

func NewSessionLockService(log *logrus.Logger) *SessionLockService {
	svc := &SessionLockService{
		log:      log,
		stopChan: make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupLoop()

	return svc
}

// Lock acquires the mutex of one session and returns its unlock function.
//
// A mutex removed from the map while we waited for it (cleanup or Forget) is
// no longer the one other callers see, so it is released and Lock retries.
func (s *SessionLockService) Lock(id uuid.UUID) func() {
	for {
		mt := s.getMutex(id)
		mt.mu.Lock()

		if current, ok := s.sessionMu.Load(id); ok && current == mt {
			return func() {
				mt.lastUsed.Store(time.Now().Unix())
				mt.mu.Unlock()
			}
		}
		mt.mu.Unlock()
	}
}

// Forget drops the mutex of a deleted session.
func (s *SessionLockService) Forget(id uuid.UUID) {
	s.sessionMu.Delete(id)
}

// Stop gracefully shuts down the cleanup loop.
// Safe to call multiple times.
func (s *SessionLockService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("SessionLockService stopped")
	}
}

func (s *SessionLockService) getMutex(id uuid.UUID) *mutexWithTimestamp {
	now := time.Now().Unix()
	fresh := &mutexWithTimestamp{}
	fresh.lastUsed.Store(now)

	actual, _ := s.sessionMu.LoadOrStore(id, fresh)
	mt := actual.(*mutexWithTimestamp)
	mt.lastUsed.Store(now)
	return mt
}

func (s *SessionLockService) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanupStale(time.Now().Add(-mutexStaleThreshold))
		case <-s.stopChan:
			return
		}
	}
}

// cleanupStale removes mutexes unused since the cutoff. A mutex that is
// currently held is kept regardless of its timestamp.
func (s *SessionLockService) cleanupStale(cutoff time.Time) int {
	removed := 0
	s.sessionMu.Range(func(key, value any) bool {
		mt := value.(*mutexWithTimestamp)
		if mt.lastUsed.Load() >= cutoff.Unix() {
			return true
		}
		if !mt.mu.TryLock() {
			return true
		}
		// Used again between the first check and TryLock.
		if mt.lastUsed.Load() >= cutoff.Unix() {
			mt.mu.Unlock()
			return true
		}
		s.sessionMu.Delete(key)
		mt.mu.Unlock()
		removed++
		return true
	})

	if removed > 0 {
		s.log.Debugf("Cleaned up %d stale session mutexes", removed)
	}
	return removed
}
