package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/models"
	"github.com/streamhub/streamhub/internal/videos"
)

// upload prompts for video fields, ingests the media file into the media
// store, and creates the catalog entry.
func (a *App) upload(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Enter path to video file", os.Stdout)
	if err != nil {
		return err
	}

	visibility, err := getSimpleText(a.reader, "Visibility (public/private)", os.Stdout)
	if err != nil {
		return err
	}

	ref, err := a.media.Put(ctx, path)
	if err != nil {
		fmt.Println("Upload failed:", err)
		return err
	}

	video, err := a.videos.Create(ctx, current, videos.CreateParams{
		Title:       title,
		Description: description,
		VideoRef:    ref,
		Visibility:  models.Visibility(visibility),
	})
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fmt.Println("A title and a video file are required.")
		} else {
			fmt.Println("Upload failed:", err)
		}
		return err
	}

	fmt.Printf("Uploaded %s (%s)\n", video.Title, video.ID)
	return nil
}

// remove deletes one of the signed-in owner's videos.
func (a *App) remove(ctx context.Context, id string) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	if err := a.videos.Delete(ctx, id, current.ID); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			fmt.Println("No such video.")
		case errors.Is(err, common.ErrForbidden):
			fmt.Println("You can only delete your own videos.")
		default:
			fmt.Println("Delete failed:", err)
		}
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
