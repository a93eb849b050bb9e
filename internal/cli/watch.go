package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamhub/streamhub/internal/common"
)

// watch shows a single video: its metadata, a playable URL, and related
// videos. The view counter increments on the first play per run only.
func (a *App) watch(ctx context.Context, id string) error {
	video, err := a.videos.GetByID(ctx, id, a.sessions.Current())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such video.")
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("This video is private.")
		default:
			fmt.Println("Could not load video:", err)
		}
		return err
	}

	if a.viewGate.FirstPlay(video.ID) {
		if err := a.videos.RecordView(ctx, video.ID); err != nil {
			a.log.Warn(ctx, "failed to record view", "video", video.ID, "error", err.Error())
		} else {
			video.Views++
		}
	}

	fmt.Printf("%s by %s, %d views\n", video.Title, video.OwnerName, video.Views)
	if video.Description != "" {
		fmt.Println(video.Description)
	}

	url, err := a.media.ResolveURL(ctx, video.VideoRef)
	if err != nil {
		fmt.Println("Media unavailable:", err)
	} else {
		fmt.Println("Play:", url)
	}

	related, err := a.videos.RelatedTo(ctx, video, a.sessions.Current())
	if err != nil {
		return err
	}
	if len(related) > 0 {
		fmt.Println("Related:")
		printVideoList(related)
	}
	return nil
}
