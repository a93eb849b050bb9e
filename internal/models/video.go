package models

import "time"

// Visibility controls who may list and play a video.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Valid reports whether v is one of the known visibility values.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// Video is a catalog record. OwnerName and OwnerAvatar are denormalized
// copies of the owning account's profile; the account directory rewrites
// them on profile changes and the catalog re-resolves them at read time.
type Video struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	VideoRef    string     `json:"videoUrl"`
	OwnerID     string     `json:"userId"`
	OwnerName   string     `json:"userName,omitempty"`
	OwnerAvatar string     `json:"userAvatar,omitempty"`
	Visibility  Visibility `json:"privacy"`
	Views       int64      `json:"views"`
	CreatedAt   time.Time  `json:"createdAt"`
	Duration    string     `json:"duration,omitempty"`
}
