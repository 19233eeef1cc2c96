package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"

	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Alice", Fee: decimal.NewFromInt(500), ExperienceYears: 10, SupportsVideoConsult: true, Specialties: entity.NewDoctorSpecialties("Cardiology")},
		{ID: 2, Name: "Bob", Fee: decimal.NewFromInt(300), ExperienceYears: 20, SupportsClinicVisit: true, Specialties: entity.NewDoctorSpecialties("Dermatology")},
		{ID: 3, Name: "Alina", Fee: decimal.NewFromInt(700), ExperienceYears: 3, SupportsVideoConsult: true, SupportsClinicVisit: true, Specialties: entity.NewDoctorSpecialties("Neurology", "Cardiology")},
		{ID: 4, Name: "Malik", Fee: decimal.NewFromInt(400), ExperienceYears: 8, SupportsClinicVisit: true, Specialties: entity.NewDoctorSpecialties("General Medicine")},
	}
}

type fakeSource struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (s *fakeSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doctors, nil
}

// memorySessionRepository stores sessions as JSON, as the redis repository does.
type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID][]byte
	saveErr  error
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{sessions: make(map[uuid.UUID][]byte)}
}

func (r *memorySessionRepository) Get(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	var session entity.BrowseSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *memorySessionRepository) Save(ctx context.Context, session *entity.BrowseSession) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = raw
	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok, nil
}

type fakeLocker struct {
	mu sync.Mutex
}

func (l *fakeLocker) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	return l.mu.Unlock
}

func (l *fakeLocker) Forget(id uuid.UUID) {}

var errBoom = errors.New("boom")

// blockingSource holds FindAll until release is closed.
type blockingSource struct {
	started chan struct{}
	release chan struct{}
	doctors []entity.Doctor
}

func newBlockingSource(doctors []entity.Doctor) *blockingSource {
	return &blockingSource{
		started: make(chan struct{}),
		release: make(chan struct{}),
		doctors: doctors,
	}
}

func (s *blockingSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	close(s.started)
	select {
	case <-s.release:
		return s.doctors, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
