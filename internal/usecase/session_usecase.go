package usecase

import (
	"context"
	"errors"
	"net/url"
	"time"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/urlsync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNoHistory       = errors.New("no history entry in that direction")
)

// SessionLocker serializes actions on one session.
type SessionLocker interface {
	Lock(id uuid.UUID) func()
	Forget(id uuid.UUID)
}

// SessionUsecase drives one user's browsing: every filter, search or sort
// change replaces the session state and pushes a history entry, and back or
// forward navigation restores the state of the entry it lands on.
type SessionUsecase interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
	RequestSearch(ctx context.Context, sessionID uuid.UUID, query string) (*dto.SessionResponse, error)
	RequestFilterChange(ctx context.Context, sessionID uuid.UUID, update entity.FilterUpdate) (*dto.SessionResponse, error)
	ToggleSpecialty(ctx context.Context, sessionID uuid.UUID, specialty string) (*dto.SessionResponse, error)
	ClearFilters(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	Forward(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
}

type sessionUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.SessionRepository
	directory   DirectoryUsecase
	locker      SessionLocker
	basePath    string
	now         func() time.Time
}

func NewSessionUsecase(
	log *logrus.Logger,
	sessionRepo repository.SessionRepository,
	directory DirectoryUsecase,
	locker SessionLocker,
	basePath string,
) SessionUsecase {
	if basePath == "" {
		basePath = "/"
	}
	return &sessionUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		directory:   directory,
		locker:      locker,
		basePath:    basePath,
		now:         time.Now,
	}
}

func (u *sessionUsecase) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	location := req.Location
	if location == "" {
		location = u.basePath
	}

	now := u.now().UTC()
	session := &entity.BrowseSession{
		ID:        uuid.New(),
		Path:      u.pathOf(location),
		State:     urlsync.DecodeLocation(location),
		History:   entity.NewNavigationHistory(location),
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp, err := u.toResponse(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *sessionUsecase) Get(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	session, err := u.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.toResponse(ctx, session)
}

func (u *sessionUsecase) Delete(ctx context.Context, sessionID uuid.UUID) error {
	unlock := u.locker.Lock(sessionID)
	defer func() {
		unlock()
		u.locker.Forget(sessionID)
	}()

	deleted, err := u.sessionRepo.Delete(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

func (u *sessionUsecase) RequestSearch(ctx context.Context, sessionID uuid.UUID, query string) (*dto.SessionResponse, error) {
	return u.RequestFilterChange(ctx, sessionID, entity.FilterUpdate{SearchQuery: &query})
}

func (u *sessionUsecase) RequestFilterChange(ctx context.Context, sessionID uuid.UUID, update entity.FilterUpdate) (*dto.SessionResponse, error) {
	return u.change(ctx, sessionID, func(state entity.FilterState) entity.FilterState {
		return state.Apply(update)
	})
}

func (u *sessionUsecase) ToggleSpecialty(ctx context.Context, sessionID uuid.UUID, specialty string) (*dto.SessionResponse, error) {
	return u.change(ctx, sessionID, func(state entity.FilterState) entity.FilterState {
		return state.ToggleSpecialty(specialty)
	})
}

func (u *sessionUsecase) ClearFilters(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	return u.change(ctx, sessionID, entity.FilterState.Clear)
}

func (u *sessionUsecase) Back(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	return u.navigate(ctx, sessionID, (*entity.NavigationHistory).Back)
}

func (u *sessionUsecase) Forward(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	return u.navigate(ctx, sessionID, (*entity.NavigationHistory).Forward)
}

// change replaces the session state and records the new location.
func (u *sessionUsecase) change(ctx context.Context, sessionID uuid.UUID, next func(entity.FilterState) entity.FilterState) (*dto.SessionResponse, error) {
	return u.update(ctx, sessionID, func(session *entity.BrowseSession) error {
		session.State = next(session.State)
		urlsync.Commit(&session.History, session.Path, session.State)
		return nil
	})
}

// navigate moves through the history and restores the landed entry's state.
func (u *sessionUsecase) navigate(ctx context.Context, sessionID uuid.UUID, move func(*entity.NavigationHistory) (entity.NavigationEntry, bool)) (*dto.SessionResponse, error) {
	return u.update(ctx, sessionID, func(session *entity.BrowseSession) error {
		entry, ok := move(&session.History)
		if !ok {
			return ErrNoHistory
		}
		session.State = urlsync.Restore(entry)
		return nil
	})
}

func (u *sessionUsecase) update(ctx context.Context, sessionID uuid.UUID, apply func(*entity.BrowseSession) error) (*dto.SessionResponse, error) {
	unlock := u.locker.Lock(sessionID)
	defer unlock()

	session, err := u.find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(session); err != nil {
		return nil, err
	}
	session.UpdatedAt = u.now().UTC()

	resp, err := u.toResponse(ctx, session)
	if err != nil {
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save session: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *sessionUsecase) find(ctx context.Context, sessionID uuid.UUID) (*entity.BrowseSession, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *sessionUsecase) toResponse(ctx context.Context, session *entity.BrowseSession) (*dto.SessionResponse, error) {
	directory, err := u.directory.Browse(ctx, session.State)
	if err != nil {
		return nil, err
	}
	directory.Location = urlsync.Location(session.Path, session.State)

	suggestions, err := u.directory.Suggest(ctx, session.State.SearchQuery)
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		ID:           session.ID,
		Location:     session.History.Current().Location,
		CanGoBack:    session.History.CanGoBack(),
		CanGoForward: session.History.CanGoForward(),
		Directory:    *directory,
		Suggestions:  suggestions.Suggestions,
		UpdatedAt:    session.UpdatedAt,
	}, nil
}

// pathOf returns the path part of a landing location, defaulting to the base path.
func (u *sessionUsecase) pathOf(location string) string {
	parsed, err := url.Parse(location)
	if err != nil || parsed.Path == "" {
		return u.basePath
	}
	return parsed.Path
}
