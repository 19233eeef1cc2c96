package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

type SessionRepository interface {
	// Get returns nil without error when the session does not exist.
	Get(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error)
	Save(ctx context.Context, session *entity.BrowseSession) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
