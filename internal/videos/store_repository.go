package videos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/models"
	"github.com/streamhub/streamhub/internal/recordstore"
)

// StoreRepository persists videos as one JSON collection in a record store.
// Corrupt payloads recover as an empty collection, same policy as accounts.
type StoreRepository struct {
	store recordstore.Store
	log   logging.Logger
}

func NewStoreRepository(store recordstore.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log.With("collection", recordstore.CollectionVideos)}
}

func (r *StoreRepository) All(ctx context.Context) ([]*models.Video, error) {
	data, err := r.store.Load(ctx, recordstore.CollectionVideos)
	if err != nil {
		return nil, fmt.Errorf("error loading videos: %w", err)
	}
	if data == nil {
		return []*models.Video{}, nil
	}

	var videos []*models.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		r.log.Warn(ctx, "malformed collection, treating as empty", "error", err.Error())
		return []*models.Video{}, nil
	}
	return videos, nil
}

func (r *StoreRepository) SaveAll(ctx context.Context, videos []*models.Video) error {
	data, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("error serializing videos: %w", err)
	}
	if err := r.store.Save(ctx, recordstore.CollectionVideos, data); err != nil {
		return fmt.Errorf("error saving videos: %w", err)
	}
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*models.Video, error) {
	videos, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) Append(ctx context.Context, video *models.Video) error {
	videos, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.SaveAll(ctx, append(videos, video))
}

func (r *StoreRepository) Update(ctx context.Context, video *models.Video) error {
	videos, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i, v := range videos {
		if v.ID == video.ID {
			videos[i] = video
			return r.SaveAll(ctx, videos)
		}
	}
	return common.ErrNotFound
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	videos, err := r.All(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*models.Video, 0, len(videos))
	found := false
	for _, v := range videos {
		if v.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return common.ErrNotFound
	}
	return r.SaveAll(ctx, remaining)
}

func (r *StoreRepository) UpdateOwnerInfo(ctx context.Context, ownerID, name, avatar string) error {
	videos, err := r.All(ctx)
	if err != nil {
		return err
	}

	changed := false
	for _, v := range videos {
		if v.OwnerID == ownerID {
			v.OwnerName = name
			v.OwnerAvatar = avatar
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.SaveAll(ctx, videos)
}

func (r *StoreRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	videos, err := r.All(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*models.Video, 0, len(videos))
	for _, v := range videos {
		if v.OwnerID != ownerID {
			remaining = append(remaining, v)
		}
	}
	if len(remaining) == len(videos) {
		return nil
	}
	return r.SaveAll(ctx, remaining)
}
