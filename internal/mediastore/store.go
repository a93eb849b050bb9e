// Package mediastore stores uploaded media files and resolves playback
// references to URLs. The catalog persists only the opaque reference a
// store hands back.
package mediastore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store ingests media files and resolves their references for playback.
type Store interface {
	// Put stores the file at sourcePath and returns an opaque reference.
	Put(ctx context.Context, sourcePath string) (string, error)
	// ResolveURL turns a stored reference into a playable URL.
	ResolveURL(ctx context.Context, ref string) (string, error)
}

// NewStorageKey returns a date-partitioned random object key.
func NewStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("videos/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}
