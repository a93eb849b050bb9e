package videos

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/models"
)

type fakeVideoRepo struct {
	videos []*models.Video
}

func (r *fakeVideoRepo) All(ctx context.Context) ([]*models.Video, error) {
	return r.videos, nil
}

func (r *fakeVideoRepo) SaveAll(ctx context.Context, videos []*models.Video) error {
	r.videos = videos
	return nil
}

func (r *fakeVideoRepo) FindByID(ctx context.Context, id string) (*models.Video, error) {
	for _, v := range r.videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeVideoRepo) Append(ctx context.Context, video *models.Video) error {
	r.videos = append(r.videos, video)
	return nil
}

func (r *fakeVideoRepo) Update(ctx context.Context, video *models.Video) error {
	for i, v := range r.videos {
		if v.ID == video.ID {
			r.videos[i] = video
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeVideoRepo) Delete(ctx context.Context, id string) error {
	for i, v := range r.videos {
		if v.ID == id {
			r.videos = append(r.videos[:i], r.videos[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeVideoRepo) UpdateOwnerInfo(ctx context.Context, ownerID, name, avatar string) error {
	for _, v := range r.videos {
		if v.OwnerID == ownerID {
			v.OwnerName = name
			v.OwnerAvatar = avatar
		}
	}
	return nil
}

func (r *fakeVideoRepo) DeleteByOwner(ctx context.Context, ownerID string) error {
	remaining := make([]*models.Video, 0, len(r.videos))
	for _, v := range r.videos {
		if v.OwnerID != ownerID {
			remaining = append(remaining, v)
		}
	}
	r.videos = remaining
	return nil
}

type fakeDirectory struct {
	accounts map[string]*models.Account
}

func (d *fakeDirectory) FindByID(ctx context.Context, id string) (*models.Account, error) {
	if a, ok := d.accounts[id]; ok {
		return a, nil
	}
	return nil, common.ErrNotFound
}

func newTestService() (*Service, *fakeVideoRepo, *fakeDirectory) {
	repo := &fakeVideoRepo{}
	dir := &fakeDirectory{accounts: map[string]*models.Account{
		"owner-1": {ID: "owner-1", Name: "Alice", Avatar: "http://a/alice.png"},
		"owner-2": {ID: "owner-2", Name: "Bob", Avatar: "http://a/bob.png"},
	}}
	return NewService(repo, dir), repo, dir
}

func owner1() *models.Account {
	return &models.Account{ID: "owner-1", Name: "Alice", Avatar: "http://a/alice.png"}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	video, err := svc.Create(ctx, owner1(), CreateParams{
		Title:      "  My Video  ",
		VideoRef:   "videos/1/clip.mp4",
		Visibility: models.VisibilityPrivate,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, video.ID)
	assert.Equal(t, "My Video", video.Title)
	assert.Equal(t, "owner-1", video.OwnerID)
	assert.Equal(t, "Alice", video.OwnerName)
	assert.Equal(t, models.VisibilityPrivate, video.Visibility)
	assert.Equal(t, int64(0), video.Views)
	require.Len(t, repo.videos, 1)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	tests := []struct {
		name   string
		owner  *models.Account
		params CreateParams
	}{
		{"nil owner", nil, CreateParams{Title: "T", VideoRef: "r"}},
		{"blank title", owner1(), CreateParams{Title: "   ", VideoRef: "r"}},
		{"missing media ref", owner1(), CreateParams{Title: "T"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.owner, tt.params)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestCreateInvalidVisibilityDefaultsPublic(t *testing.T) {
	svc, _, _ := newTestService()
	video, err := svc.Create(context.Background(), owner1(), CreateParams{
		Title:      "T",
		VideoRef:   "r",
		Visibility: "friends-only",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityPublic, video.Visibility)
}

func TestListVisibleTo(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{
		{ID: "a", OwnerID: "owner-1", Visibility: models.VisibilityPublic},
		{ID: "b", OwnerID: "owner-1", Visibility: models.VisibilityPrivate},
		{ID: "c", OwnerID: "owner-2", Visibility: models.VisibilityPrivate},
	}

	ids := func(vs []*models.Video) []string {
		out := make([]string, 0, len(vs))
		for _, v := range vs {
			out = append(out, v.ID)
		}
		return out
	}

	anonymous, err := svc.ListVisibleTo(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(anonymous))

	asOwner1, err := svc.ListVisibleTo(ctx, owner1())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(asOwner1))
}

func TestListVisibleToResolvesOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo, dir := newTestService()
	repo.videos = []*models.Video{
		{ID: "a", OwnerID: "owner-1", OwnerName: "Stale Name", Visibility: models.VisibilityPublic},
		{ID: "b", OwnerID: "ghost", OwnerName: "Stale Ghost", Visibility: models.VisibilityPublic},
	}
	dir.accounts["owner-1"].Name = "Alicia"

	visible, err := svc.ListVisibleTo(ctx, nil)
	require.NoError(t, err)
	require.Len(t, visible, 2)

	// display fields come from the directory, not the stored copy
	assert.Equal(t, "Alicia", visible[0].OwnerName)
	// a vanished owner shows the placeholder
	assert.Equal(t, "Unknown User", visible[1].OwnerName)
	assert.Empty(t, visible[1].OwnerAvatar)
	// the stored record is untouched
	assert.Equal(t, "Stale Name", repo.videos[0].OwnerName)
}

func TestListByOwner(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{
		{ID: "a", OwnerID: "owner-1", Visibility: models.VisibilityPublic},
		{ID: "b", OwnerID: "owner-1", Visibility: models.VisibilityPrivate},
		{ID: "c", OwnerID: "owner-2", Visibility: models.VisibilityPublic},
	}

	owned, err := svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{
		{ID: "pub", OwnerID: "owner-1", Visibility: models.VisibilityPublic},
		{ID: "priv", OwnerID: "owner-1", Visibility: models.VisibilityPrivate},
	}

	tests := []struct {
		name    string
		id      string
		viewer  *models.Account
		wantErr error
	}{
		{"public anonymous", "pub", nil, nil},
		{"private owner", "priv", owner1(), nil},
		{"private anonymous", "priv", nil, common.ErrForbidden},
		{"private other viewer", "priv", &models.Account{ID: "owner-2"}, common.ErrForbidden},
		{"missing", "nope", nil, common.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := svc.GetByID(ctx, tt.id, tt.viewer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, video.ID)
		})
	}
}

func TestRecordViewIsAdditive(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{{ID: "a", OwnerID: "owner-1", Views: 5}}

	require.NoError(t, svc.RecordView(ctx, "a"))
	require.NoError(t, svc.RecordView(ctx, "a"))
	require.NoError(t, svc.RecordView(ctx, "a"))

	assert.Equal(t, int64(8), repo.videos[0].Views)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{{ID: "a", OwnerID: "owner-1"}}

	assert.ErrorIs(t, svc.Delete(ctx, "a", "owner-2"), common.ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, "nope", "owner-1"), common.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "a", "owner-1"))
	assert.Empty(t, repo.videos)
}

func TestRelatedTo(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	subject := &models.Video{ID: "subject", OwnerID: "owner-1", Visibility: models.VisibilityPublic}
	repo.videos = []*models.Video{
		subject,
		{ID: "other-old", OwnerID: "owner-2", Visibility: models.VisibilityPublic, CreatedAt: base},
		{ID: "other-new", OwnerID: "owner-2", Visibility: models.VisibilityPublic, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "same-old", OwnerID: "owner-1", Visibility: models.VisibilityPublic, CreatedAt: base},
		{ID: "same-new", OwnerID: "owner-1", Visibility: models.VisibilityPublic, CreatedAt: base.Add(time.Hour)},
		{ID: "hidden", OwnerID: "owner-1", Visibility: models.VisibilityPrivate, CreatedAt: base.Add(3 * time.Hour)},
	}

	related, err := svc.RelatedTo(ctx, subject, nil)
	require.NoError(t, err)

	got := make([]string, 0, len(related))
	for _, v := range related {
		got = append(got, v.ID)
	}

	// same owner first, then newest; private and the subject never appear
	assert.Equal(t, []string{"same-new", "same-old", "other-new", "other-old"}, got)

	// same inputs, same order
	again, err := svc.RelatedTo(ctx, subject, nil)
	require.NoError(t, err)
	got2 := make([]string, 0, len(again))
	for _, v := range again {
		got2 = append(got2, v.ID)
	}
	assert.Equal(t, got, got2)
}

func TestRelatedToCap(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	subject := &models.Video{ID: "subject", OwnerID: "owner-1", Visibility: models.VisibilityPublic}
	repo.videos = []*models.Video{subject}
	for i := 0; i < RelatedLimit+4; i++ {
		repo.videos = append(repo.videos, &models.Video{
			ID:         fmt.Sprintf("v-%02d", i),
			OwnerID:    "owner-2",
			Visibility: models.VisibilityPublic,
		})
	}

	related, err := svc.RelatedTo(ctx, subject, nil)
	require.NoError(t, err)
	assert.Len(t, related, RelatedLimit)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	repo.videos = []*models.Video{
		{ID: "a", OwnerID: "owner-1", Visibility: models.VisibilityPublic, Views: 10},
		{ID: "b", OwnerID: "owner-1", Visibility: models.VisibilityPrivate, Views: 3},
		{ID: "c", OwnerID: "owner-2", Visibility: models.VisibilityPublic, Views: 99},
	}

	stats, err := svc.Stats(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVideos)
	assert.Equal(t, 1, stats.PublicVideos)
	assert.Equal(t, 1, stats.PrivateVideos)
	assert.Equal(t, int64(13), stats.TotalViews)
}
