// Package models defines the records persisted by the StreamHub record
// store. JSON tags mirror the persisted collection layout.
package models

import "time"

// Account is a user record. PasswordDigest holds the encoded argon2id digest
// of the credential; it never contains a plaintext secret and is stripped
// from every view that leaves the account directory.
type Account struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	PasswordDigest string    `json:"passwordDigest,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Public returns a copy of the account with the credential digest removed.
func (a *Account) Public() *Account {
	if a == nil {
		return nil
	}
	pub := *a
	pub.PasswordDigest = ""
	return &pub
}
