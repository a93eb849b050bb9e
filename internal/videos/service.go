// Package videos implements the video catalog: creation, visibility-aware
// reads, view counting, deletion, and related-video ranking.
package videos

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/models"
)

// RelatedLimit caps the related-videos result.
const RelatedLimit = 8

// unknownOwnerName is shown when the owning account no longer exists.
const unknownOwnerName = "Unknown User"

// OwnerDirectory resolves video owners at read time. Satisfied by the
// accounts repository.
type OwnerDirectory interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

// CreateParams are the caller-supplied fields for a new video.
type CreateParams struct {
	Title       string
	Description string
	Thumbnail   string
	VideoRef    string
	Visibility  models.Visibility
	Duration    string
}

// Service provides catalog operations. Owner display fields are resolved by
// reference on every read; the persisted denormalized copies exist only as
// a cache that the account directory rewrites on profile changes.
type Service struct {
	repo   Repository
	owners OwnerDirectory
}

func NewService(repo Repository, owners OwnerDirectory) *Service {
	return &Service{repo: repo, owners: owners}
}

// Create validates and persists a new video owned by owner. The title must
// be non-empty after trimming and a video content reference is required.
func (s *Service) Create(ctx context.Context, owner *models.Account, p CreateParams) (*models.Video, error) {
	title := strings.TrimSpace(p.Title)
	if owner == nil || title == "" || p.VideoRef == "" {
		return nil, common.ErrValidation
	}

	visibility := p.Visibility
	if !visibility.Valid() {
		visibility = models.VisibilityPublic
	}

	video := &models.Video{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Thumbnail:   p.Thumbnail,
		VideoRef:    p.VideoRef,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		OwnerAvatar: owner.Avatar,
		Visibility:  visibility,
		Views:       0,
		CreatedAt:   time.Now(),
		Duration:    p.Duration,
	}

	if err := s.repo.Append(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// ListVisibleTo returns every public video plus, when a viewer is present,
// the viewer's own private videos. Owner fields are resolved at read time.
func (s *Service) ListVisibleTo(ctx context.Context, viewer *models.Account) ([]*models.Video, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]*models.Video, 0, len(all))
	for _, v := range all {
		if !s.visibleTo(v, viewer) {
			continue
		}
		visible = append(visible, s.withOwner(ctx, v))
	}
	return visible, nil
}

// ListByOwner returns every video owned by ownerID, regardless of
// visibility. Used by the owner's dashboard.
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*models.Video, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]*models.Video, 0, len(all))
	for _, v := range all {
		if v.OwnerID == ownerID {
			owned = append(owned, s.withOwner(ctx, v))
		}
	}
	return owned, nil
}

// GetByID returns the video or common.ErrNotFound. A private video is
// common.ErrForbidden for anyone but its owner.
func (s *Service) GetByID(ctx context.Context, id string, viewer *models.Account) (*models.Video, error) {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.visibleTo(video, viewer) {
		return nil, common.ErrForbidden
	}
	return s.withOwner(ctx, video), nil
}

// RecordView increments the view count by exactly one. N calls add N; the
// presentation layer is responsible for firing this at most once per
// viewing session (see ViewGate).
func (s *Service) RecordView(ctx context.Context, id string) error {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	video.Views++
	return s.repo.Update(ctx, video)
}

// Delete removes the video. Only the owner may delete.
func (s *Service) Delete(ctx context.Context, id, requesterID string) error {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if video.OwnerID != requesterID {
		return common.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// RelatedTo returns up to RelatedLimit public videos related to the subject,
// excluding the subject itself. Ranking is deterministic: videos sharing the
// subject's owner first, then newest first, ties broken by ascending ID.
// The viewer does not influence the pool; candidates are public only.
func (s *Service) RelatedTo(ctx context.Context, subject *models.Video, viewer *models.Account) ([]*models.Video, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.Video, 0, len(all))
	for _, v := range all {
		if v.ID == subject.ID || v.Visibility != models.VisibilityPublic {
			continue
		}
		candidates = append(candidates, v)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		sameA := a.OwnerID == subject.OwnerID
		sameB := b.OwnerID == subject.OwnerID
		if sameA != sameB {
			return sameA
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if len(candidates) > RelatedLimit {
		candidates = candidates[:RelatedLimit]
	}

	related := make([]*models.Video, 0, len(candidates))
	for _, v := range candidates {
		related = append(related, s.withOwner(ctx, v))
	}
	return related, nil
}

// OwnerStats summarizes an owner's catalog for the dashboard.
type OwnerStats struct {
	TotalVideos   int
	PublicVideos  int
	PrivateVideos int
	TotalViews    int64
}

// Stats computes dashboard statistics over the owner's videos.
func (s *Service) Stats(ctx context.Context, ownerID string) (*OwnerStats, error) {
	owned, err := s.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &OwnerStats{TotalVideos: len(owned)}
	for _, v := range owned {
		stats.TotalViews += v.Views
		if v.Visibility == models.VisibilityPublic {
			stats.PublicVideos++
		} else {
			stats.PrivateVideos++
		}
	}
	return stats, nil
}

func (s *Service) visibleTo(v *models.Video, viewer *models.Account) bool {
	if v.Visibility == models.VisibilityPublic {
		return true
	}
	return viewer != nil && v.OwnerID == viewer.ID
}

// withOwner returns a copy of the video with owner display fields resolved
// from the directory. A missing owner falls back to a placeholder name.
func (s *Service) withOwner(ctx context.Context, v *models.Video) *models.Video {
	out := *v

	owner, err := s.owners.FindByID(ctx, v.OwnerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			out.OwnerName = unknownOwnerName
			out.OwnerAvatar = ""
		}
		return &out
	}

	out.OwnerName = owner.Name
	out.OwnerAvatar = owner.Avatar
	return &out
}
