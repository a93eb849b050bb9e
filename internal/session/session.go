// Package session tracks the currently signed-in account. The session is a
// derived copy of one account's public fields, never the source of truth,
// persisted as a signed snapshot so it survives restarts without trusting
// tampered state.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/logging"
	"github.com/streamhub/streamhub/internal/models"
	"github.com/streamhub/streamhub/internal/recordstore"
)

// Claims carries the account's public fields alongside the registered
// claims. The credential digest never enters a snapshot.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
}

// Manager owns the single active session of an execution context. It is
// constructed at startup and passed explicitly to whatever needs identity.
type Manager struct {
	store    recordstore.Store
	secret   []byte
	validity time.Duration
	log      logging.Logger

	current *models.Account
}

func NewManager(store recordstore.Store, secret []byte, validity time.Duration, log logging.Logger) *Manager {
	return &Manager{store: store, secret: secret, validity: validity, log: log}
}

// Establish makes account the current identity and persists its signed
// public snapshot under the activeSession collection.
func (m *Manager) Establish(ctx context.Context, account *models.Account) error {
	pub := account.Public()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.validity)),
		},
		AccountID: pub.ID,
		Email:     pub.Email,
		Name:      pub.Name,
		Avatar:    pub.Avatar,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("error signing session: %w", err)
	}

	if err := m.store.Save(ctx, recordstore.CollectionSession, []byte(signed)); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	m.current = pub
	return nil
}

// Current returns the signed-in account's public view, or nil.
func (m *Manager) Current() *models.Account {
	return m.current
}

// Clear signs out: drops the in-memory identity and the persisted snapshot.
func (m *Manager) Clear(ctx context.Context) error {
	m.current = nil
	if err := m.store.Delete(ctx, recordstore.CollectionSession); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

// Restore rehydrates the session from the persisted snapshot at startup.
// A missing, malformed, tampered, or expired snapshot restores to the
// signed-out state; it is never an error to the caller.
func (m *Manager) Restore(ctx context.Context) {
	data, err := m.store.Load(ctx, recordstore.CollectionSession)
	if err != nil || data == nil {
		return
	}

	account, err := m.parseSnapshot(string(data))
	if err != nil {
		m.log.Warn(ctx, "discarding unusable session snapshot", "error", err.Error())
		_ = m.store.Delete(ctx, recordstore.CollectionSession)
		return
	}
	m.current = account
}

func (m *Manager) parseSnapshot(tokenString string) (*models.Account, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, common.ErrInvalidSession
	}

	return &models.Account{
		ID:     claims.AccountID,
		Email:  claims.Email,
		Name:   claims.Name,
		Avatar: claims.Avatar,
	}, nil
}
