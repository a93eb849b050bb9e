package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/streamhub/streamhub/internal/models"
)

func sampleVideos() []*models.Video {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []*models.Video{
		{ID: "a", Title: "Cats Playing", Description: "two cats", OwnerName: "Alice", Visibility: models.VisibilityPublic, Views: 5, CreatedAt: base},
		{ID: "b", Title: "Dog Tricks", Description: "a good dog", OwnerName: "Bob", Visibility: models.VisibilityPrivate, Views: 1, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Title: "Cooking Pasta", Description: "italian dinner", OwnerName: "Catherine", Visibility: models.VisibilityPublic, Views: 9, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(vs []*models.Video) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.ID)
	}
	return out
}

func TestApplySort(t *testing.T) {
	tests := []struct {
		name string
		sort SortKey
		want []string
	}{
		{"newest", SortNewest, []string{"c", "b", "a"}},
		{"oldest", SortOldest, []string{"a", "b", "c"}},
		{"most viewed", SortMostViewed, []string{"c", "a", "b"}},
		{"least viewed", SortLeastViewed, []string{"b", "a", "c"}},
		{"unknown keeps input order", SortKey("trending"), []string{"a", "b", "c"}},
		{"empty keeps input order", SortKey(""), []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleVideos(), Params{Sort: tt.sort})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name           string
		search         string
		matchOwnerName bool
		want           []string
	}{
		{"title match case-insensitive", "CATS", true, []string{"a"}},
		{"description match", "italian", true, []string{"c"}},
		{"owner name match", "bob", true, []string{"b"}},
		{"substring across fields", "ca", true, []string{"a", "c"}},
		{"no match", "zebra", true, []string{}},
		{"empty matches all", "", true, []string{"a", "b", "c"}},
		{"owner name ignored without scope", "bob", false, []string{}},
		{"title still matches without scope", "CATS", false, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleVideos(), Params{Search: tt.search, MatchOwnerName: tt.matchOwnerName})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

// Dashboard scope: all videos share the viewer as owner, so searching one's
// own name must not match everything.
func TestApplySearchOwnVideosByOwnerName(t *testing.T) {
	owned := []*models.Video{
		{ID: "a", Title: "Cats Playing", Description: "two cats", OwnerName: "Alice"},
		{ID: "b", Title: "Dog Tricks", Description: "a good dog", OwnerName: "Alice"},
	}

	got := Apply(owned, Params{Search: "alice"})
	assert.Empty(t, got)

	got = Apply(owned, Params{Search: "cats"})
	assert.Equal(t, []string{"a"}, ids(got))
}

func TestApplyVisibilityFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter VisibilityFilter
		want   []string
	}{
		{"public only", FilterPublic, []string{"a", "c"}},
		{"private only", FilterPrivate, []string{"b"}},
		{"all", FilterAll, []string{"a", "b", "c"}},
		{"empty keeps all", VisibilityFilter(""), []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(sampleVideos(), Params{Visibility: tt.filter})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyCombined(t *testing.T) {
	got := Apply(sampleVideos(), Params{
		Search:         "ca",
		MatchOwnerName: true,
		Visibility:     FilterPublic,
		Sort:           SortMostViewed,
	})
	assert.Equal(t, []string{"c", "a"}, ids(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	videos := sampleVideos()
	Apply(videos, Params{Sort: SortNewest})
	assert.Equal(t, []string{"a", "b", "c"}, ids(videos))
}

func TestApplyStableTies(t *testing.T) {
	now := time.Now()
	videos := []*models.Video{
		{ID: "x", Views: 3, CreatedAt: now},
		{ID: "y", Views: 3, CreatedAt: now},
		{ID: "z", Views: 3, CreatedAt: now},
	}
	got := Apply(videos, Params{Sort: SortMostViewed})
	assert.Equal(t, []string{"x", "y", "z"}, ids(got))
}
