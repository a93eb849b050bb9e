// Package accounts implements the account directory: sign-up, sign-in,
// profile management, and account deletion with its video cascade.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamhub/streamhub/internal/common"
	"github.com/streamhub/streamhub/internal/cryptox"
	"github.com/streamhub/streamhub/internal/models"
)

// MinPasswordLength is the minimum accepted password length for password
// changes.
const MinPasswordLength = 6

// avatarSeedURL is the deterministic placeholder avatar, seeded by email.
const avatarSeedURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"

// OwnerVideos covers the owner-scoped catalog writes that account changes
// fan out to. Satisfied by the videos repository.
type OwnerVideos interface {
	UpdateOwnerInfo(ctx context.Context, ownerID, name, avatar string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// Sessions is the session context the directory establishes and clears.
// Satisfied by session.Manager.
type Sessions interface {
	Establish(ctx context.Context, account *models.Account) error
	Clear(ctx context.Context) error
}

// Service provides account-directory operations. Email matching is
// case-sensitive exact, as in the reference behavior.
type Service struct {
	repo     Repository
	videos   OwnerVideos
	sessions Sessions
}

func NewService(repo Repository, videos OwnerVideos, sessions Sessions) *Service {
	return &Service{repo: repo, videos: videos, sessions: sessions}
}

// SignUp creates a new account, establishes a session for it, and returns
// the public (digest-stripped) view. Fails with common.ErrDuplicateEmail if
// any existing account already uses the email.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return nil, common.ErrValidation
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	digest, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		ID:             uuid.NewString(),
		Email:          email,
		Name:           name,
		PasswordDigest: digest,
		Avatar:         fmt.Sprintf(avatarSeedURL, email),
		CreatedAt:      time.Now(),
	}

	if err := s.repo.SaveAll(ctx, append(all, account)); err != nil {
		return nil, err
	}
	if err := s.sessions.Establish(ctx, account); err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// SignIn verifies the credentials, establishes a session on success, and
// returns the public view. Any failure, unknown email or wrong password
// alike, is reported as common.ErrInvalidCredentials.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := cryptox.VerifyPassword(password, account.PasswordDigest)
	if err != nil || !ok {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.sessions.Establish(ctx, account); err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// SignOut clears the session. There is no server-side state to invalidate.
func (s *Service) SignOut(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// UpdateProfile overwrites name, email, and avatar, rewrites the
// denormalized owner fields on every owned video, and refreshes the session
// snapshot.
func (s *Service) UpdateProfile(ctx context.Context, accountID, name, email, avatar string) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, common.ErrValidation
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	var account *models.Account
	for _, a := range all {
		if a.ID == accountID {
			account = a
			continue
		}
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}
	if account == nil {
		return nil, common.ErrNotFound
	}

	account.Name = name
	account.Email = email
	account.Avatar = avatar

	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	// explicit write-time fan-out of the cached owner fields
	if err := s.videos.UpdateOwnerInfo(ctx, account.ID, name, avatar); err != nil {
		return nil, err
	}

	if err := s.sessions.Establish(ctx, account); err != nil {
		return nil, err
	}
	return account.Public(), nil
}

// ChangePassword replaces the stored digest after verifying the current
// password. The new/confirmation equality check belongs to the caller; see
// ValidateConfirmation.
func (s *Service) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return common.ErrWeakPassword
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	var account *models.Account
	for _, a := range all {
		if a.ID == accountID {
			account = a
			break
		}
	}
	if account == nil {
		return common.ErrNotFound
	}

	ok, err := cryptox.VerifyPassword(currentPassword, account.PasswordDigest)
	if err != nil || !ok {
		return common.ErrInvalidCredentials
	}

	digest, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	account.PasswordDigest = digest

	return s.repo.SaveAll(ctx, all)
}

// DeleteAccount removes the account, cascades deletion of every video it
// owns, and clears the session.
func (s *Service) DeleteAccount(ctx context.Context, accountID string) error {
	all, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*models.Account, 0, len(all))
	found := false
	for _, a := range all {
		if a.ID == accountID {
			found = true
			continue
		}
		remaining = append(remaining, a)
	}
	if !found {
		return common.ErrNotFound
	}

	if err := s.repo.SaveAll(ctx, remaining); err != nil {
		return err
	}
	if err := s.videos.DeleteByOwner(ctx, accountID); err != nil {
		return err
	}
	return s.sessions.Clear(ctx)
}

// ValidateConfirmation is the caller-side check that a new password and its
// confirmation agree. Returned error is common.ErrPasswordMismatch.
func ValidateConfirmation(newPassword, confirmation string) error {
	if newPassword != confirmation {
		return common.ErrPasswordMismatch
	}
	return nil
}
