package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/models"
	"github.com/streamhub/streamhub/internal/recordstore"
)

// StoreRepository persists accounts as one JSON collection in a record
// store. A corrupt payload is recovered as an empty collection and logged;
// the store is not authoritative enough to make corruption fatal.
type StoreRepository struct {
	store recordstore.Store
	log   logging.Logger
}

func NewStoreRepository(store recordstore.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log.With("collection", recordstore.CollectionAccounts)}
}

func (r *StoreRepository) All(ctx context.Context) ([]*models.Account, error) {
	data, err := r.store.Load(ctx, recordstore.CollectionAccounts)
	if err != nil {
		return nil, fmt.Errorf("error loading accounts: %w", err)
	}
	if data == nil {
		return []*models.Account{}, nil
	}

	var accounts []*models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.log.Warn(ctx, "malformed collection, treating as empty", "error", err.Error())
		return []*models.Account{}, nil
	}
	return accounts, nil
}

func (r *StoreRepository) SaveAll(ctx context.Context, accounts []*models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("error serializing accounts: %w", err)
	}
	if err := r.store.Save(ctx, recordstore.CollectionAccounts, data); err != nil {
		return fmt.Errorf("error saving accounts: %w", err)
	}
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, common.ErrNotFound
}
