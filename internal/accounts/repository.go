package accounts

import (
	"context"

	"github.com/streamhub/streamhub/internal/models"
)

// Repository is the read/write contract for the accounts collection.
type Repository interface {
	All(ctx context.Context) ([]*models.Account, error)
	SaveAll(ctx context.Context, accounts []*models.Account) error

	// FindByID returns common.ErrNotFound when no account matches.
	FindByID(ctx context.Context, id string) (*models.Account, error)

	// FindByEmail matches the email exactly (case-sensitive) and returns
	// common.ErrNotFound when no account matches.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
