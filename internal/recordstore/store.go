// Package recordstore provides durable storage of named JSON collections.
//
// A Store is a flat key-value namespace: each collection name maps to one
// opaque JSON payload (usually an array of records). There are no
// transactions, no schema versioning, and no migration support; a
// load-modify-save sequence across concurrent writers is last-write-wins.
// Each backend only guarantees that a single Save is never observed torn.
package recordstore

import "context"

// Collection names used by the application.
const (
	CollectionAccounts = "accounts"
	CollectionVideos   = "videos"
	CollectionSession  = "activeSession"
)

// Store persists named collections as raw JSON payloads.
//
// Load returns (nil, nil) when the collection is absent. Interpreting the
// payload, including recovering from corrupt content, is the caller's
// responsibility.
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, data []byte) error
	Delete(ctx context.Context, collection string) error
}
