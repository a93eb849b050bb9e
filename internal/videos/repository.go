package videos

import (
	"context"

	"github.com/streamhub/streamhub/internal/models"
)

// Repository is the read/write contract for the videos collection.
type Repository interface {
	All(ctx context.Context) ([]*models.Video, error)
	SaveAll(ctx context.Context, videos []*models.Video) error

	// FindByID returns common.ErrNotFound when no video matches.
	FindByID(ctx context.Context, id string) (*models.Video, error)

	Append(ctx context.Context, video *models.Video) error

	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, video *models.Video) error

	// Delete returns common.ErrNotFound when no video matches.
	Delete(ctx context.Context, id string) error

	// UpdateOwnerInfo rewrites the denormalized owner fields on every video
	// owned by ownerID.
	UpdateOwnerInfo(ctx context.Context, ownerID, name, avatar string) error

	// DeleteByOwner removes every video owned by ownerID.
	DeleteByOwner(ctx context.Context, ownerID string) error
}
