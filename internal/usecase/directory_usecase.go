package usecase

import (
	"context"
	"errors"
	"sync"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/filter"
	"go-doctor-directory/internal/urlsync"

	"github.com/sirupsen/logrus"
)

var (
	ErrDirectoryNotLoaded = errors.New("directory not loaded")
	ErrLoadFailed         = errors.New("failed to load doctor data")
	ErrDoctorNotFound     = errors.New("doctor not found")
)

type DirectoryUsecase interface {
	Load(ctx context.Context) error
	Browse(ctx context.Context, state entity.FilterState) (*dto.DirectoryResponse, error)
	Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error)
	Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
}

type loadStatus int

const (
	loadPending loadStatus = iota
	loadDone
	loadFailed
)

type directoryUsecase struct {
	log             *logrus.Logger
	source          repository.DoctorSource
	basePath        string
	suggestionLimit int

	loadOnce sync.Once
	loadErr  error

	mu          sync.RWMutex
	status      loadStatus
	doctors     []entity.Doctor
	specialties []string
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	source repository.DoctorSource,
	basePath string,
	suggestionLimit int,
) DirectoryUsecase {
	if basePath == "" {
		basePath = "/"
	}
	return &directoryUsecase{
		log:             log,
		source:          source,
		basePath:        basePath,
		suggestionLimit: suggestionLimit,
	}
}

// Load fetches the record set once. Concurrent callers wait for the same
// fetch, while reads keep reporting ErrDirectoryNotLoaded until it finishes.
// A failed load is terminal: it is not retried and every later read reports
// ErrLoadFailed.
func (u *directoryUsecase) Load(ctx context.Context) error {
	u.loadOnce.Do(func() {
		u.loadErr = u.load(ctx)
	})
	return u.loadErr
}

func (u *directoryUsecase) load(ctx context.Context) error {
	doctors, err := u.source.FindAll(ctx)
	if err != nil {
		u.log.Errorf("Failed to load doctors: %+v", err)
		u.publish(loadFailed, nil, nil)
		return ErrLoadFailed
	}

	specialties := filter.UniqueSpecialties(doctors)
	u.publish(loadDone, doctors, specialties)

	u.log.Infof("Loaded %d doctors with %d specialties", len(doctors), len(specialties))
	return nil
}

func (u *directoryUsecase) publish(status loadStatus, doctors []entity.Doctor, specialties []string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.status = status
	u.doctors = doctors
	u.specialties = specialties
}

func (u *directoryUsecase) Browse(ctx context.Context, state entity.FilterState) (*dto.DirectoryResponse, error) {
	doctors, specialties, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	visible := filter.Visible(doctors, state)

	return &dto.DirectoryResponse{
		Doctors:        converter.DoctorsToResponses(visible),
		Total:          len(visible),
		Filters:        converter.FilterStateToResponse(state),
		AppliedFilters: state.Labels(),
		Query:          urlsync.Encode(state),
		Location:       urlsync.Location(u.basePath, state),
		Specialties:    specialties,
	}, nil
}

func (u *directoryUsecase) Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error) {
	doctors, _, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionListResponse{
		Query:       query,
		Suggestions: converter.DoctorsToSuggestions(filter.Suggest(doctors, query, u.suggestionLimit)),
	}, nil
}

func (u *directoryUsecase) Specialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	_, specialties, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: specialties,
		Total:       len(specialties),
	}, nil
}

func (u *directoryUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctors, _, err := u.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range doctors {
		if doctors[i].ID == doctorID {
			return converter.DoctorToResponse(&doctors[i]), nil
		}
	}
	return nil, ErrDoctorNotFound
}

// snapshot returns the loaded records. They are never modified after Load,
// so callers may read them without holding the lock.
func (u *directoryUsecase) snapshot() ([]entity.Doctor, []string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	switch u.status {
	case loadDone:
		specialties := append([]string{}, u.specialties...)
		return u.doctors, specialties, nil
	case loadFailed:
		return nil, nil, ErrLoadFailed
	default:
		return nil, nil, ErrDirectoryNotLoaded
	}
}
