// Package query implements the feed filter/sort pipeline as a pure function
// over video slices. Inputs are never mutated.
package query

import (
	"sort"
	"strings"

	"github.com/streamhub/streamhub/internal/models"
)

type SortKey string

const (
	SortNewest      SortKey = "newest"
	SortOldest      SortKey = "oldest"
	SortMostViewed  SortKey = "most-viewed"
	SortLeastViewed SortKey = "least-viewed"
)

type VisibilityFilter string

const (
	FilterAll     VisibilityFilter = "all"
	FilterPublic  VisibilityFilter = "public"
	FilterPrivate VisibilityFilter = "private"
)

// Params select and order a video sequence.
//
// Search is a case-insensitive substring match against title and
// description; with MatchOwnerName set it also matches the owner display
// name. The home feed enables that; the dashboard searches its own videos,
// where the owner name carries no signal. Visibility narrows to an exact
// value (dashboard use); empty or FilterAll keeps everything. An unknown
// sort key keeps the input order.
type Params struct {
	Search         string
	MatchOwnerName bool
	Visibility     VisibilityFilter
	Sort           SortKey
}

// Apply returns a new, filtered, ordered slice. Ties under every sort key
// keep their input order.
func Apply(videos []*models.Video, p Params) []*models.Video {
	out := make([]*models.Video, 0, len(videos))

	search := strings.ToLower(p.Search)
	for _, v := range videos {
		if search != "" && !matches(v, search, p.MatchOwnerName) {
			continue
		}
		if p.Visibility != "" && p.Visibility != FilterAll && string(v.Visibility) != string(p.Visibility) {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, less(out, p.Sort))
	return out
}

func matches(v *models.Video, search string, matchOwnerName bool) bool {
	if strings.Contains(strings.ToLower(v.Title), search) ||
		strings.Contains(strings.ToLower(v.Description), search) {
		return true
	}
	return matchOwnerName && strings.Contains(strings.ToLower(v.OwnerName), search)
}

func less(videos []*models.Video, key SortKey) func(i, j int) bool {
	switch key {
	case SortNewest:
		return func(i, j int) bool { return videos[i].CreatedAt.After(videos[j].CreatedAt) }
	case SortOldest:
		return func(i, j int) bool { return videos[i].CreatedAt.Before(videos[j].CreatedAt) }
	case SortMostViewed:
		return func(i, j int) bool { return videos[i].Views > videos[j].Views }
	case SortLeastViewed:
		return func(i, j int) bool { return videos[i].Views < videos[j].Views }
	default:
		return func(i, j int) bool { return false }
	}
}
