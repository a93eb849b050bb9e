package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/streamhub/streamhub/internal/models"
	"github.com/streamhub/streamhub/internal/query"
)

// parseQueryArgs turns REPL arguments into query parameters. Recognized
// forms: search=<term>, sort=<key>, visibility=<filter>. A bare word is
// treated as a search term.
func parseQueryArgs(args []string) query.Params {
	p := query.Params{}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "search="):
			p.Search = strings.TrimPrefix(arg, "search=")
		case strings.HasPrefix(arg, "sort="):
			p.Sort = query.SortKey(strings.TrimPrefix(arg, "sort="))
		case strings.HasPrefix(arg, "visibility="):
			p.Visibility = query.VisibilityFilter(strings.TrimPrefix(arg, "visibility="))
		default:
			p.Search = arg
		}
	}
	return p
}

// feed lists videos visible to the current viewer, filtered and sorted by
// the given arguments.
func (a *App) feed(ctx context.Context, args []string) error {
	visible, err := a.videos.ListVisibleTo(ctx, a.sessions.Current())
	if err != nil {
		fmt.Println("Could not load feed:", err)
		return err
	}

	params := parseQueryArgs(args)
	params.MatchOwnerName = true

	result := query.Apply(visible, params)
	if len(result) == 0 {
		fmt.Println("No videos found.")
		return nil
	}

	printVideoList(result)
	return nil
}

// dashboard lists every video of the signed-in owner, public and private,
// plus catalog statistics.
func (a *App) dashboard(ctx context.Context, args []string) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	owned, err := a.videos.ListByOwner(ctx, current.ID)
	if err != nil {
		fmt.Println("Could not load dashboard:", err)
		return err
	}

	stats, err := a.videos.Stats(ctx, current.ID)
	if err != nil {
		fmt.Println("Could not load dashboard:", err)
		return err
	}

	fmt.Printf("%d videos (%d public, %d private), %d total views\n",
		stats.TotalVideos, stats.PublicVideos, stats.PrivateVideos, stats.TotalViews)

	result := query.Apply(owned, parseQueryArgs(args))
	if len(result) == 0 {
		fmt.Println("No videos found.")
		return nil
	}

	printVideoList(result)
	return nil
}

func printVideoList(videos []*models.Video) {
	for _, v := range videos {
		marker := ""
		if v.Visibility == models.VisibilityPrivate {
			marker = " [private]"
		}
		fmt.Printf("%s  %s%s by %s, %d views\n", v.ID, v.Title, marker, v.OwnerName, v.Views)
	}
}
