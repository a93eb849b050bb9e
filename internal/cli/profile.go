package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/streamhub/streamhub/internal/accounts"
	"github.com/streamhub/streamhub/internal/common"
)

// profile updates the display name, email, and avatar of the signed-in
// account. Empty input keeps the current value.
func (a *App) profile(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Display name [%s]", current.Name), os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", current.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}

	avatar, err := getSimpleText(a.reader, "Avatar URL (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if avatar == "" {
		avatar = current.Avatar
	}

	account, err := a.accounts.UpdateProfile(ctx, current.ID, name, email, avatar)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Println("That email is already registered.")
		} else {
			fmt.Println("Update failed:", err)
		}
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", account.Name, account.Email)
	return nil
}

// changePassword verifies the current password and replaces it.
func (a *App) changePassword(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	currentPassword, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(currentPassword)

	newPassword, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirmation, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	if err := accounts.ValidateConfirmation(string(newPassword), string(confirmation)); err != nil {
		fmt.Println("Passwords do not match.")
		return err
	}

	err = a.accounts.ChangePassword(ctx, current.ID, string(currentPassword), string(newPassword))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrWeakPassword):
			fmt.Println("Password must be at least 6 characters.")
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Current password is incorrect.")
		default:
			fmt.Println("Password change failed:", err)
		}
		return err
	}

	fmt.Println("Password changed.")
	return nil
}

// deleteAccount removes the signed-in account and all of its videos after
// an explicit confirmation.
func (a *App) deleteAccount(ctx context.Context) error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("Sign in first.")
		return nil
	}

	answer, err := getSimpleText(a.reader, "Delete your account and all of its videos? Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.accounts.DeleteAccount(ctx, current.ID); err != nil {
		fmt.Println("Deletion failed:", err)
		return err
	}

	fmt.Println("Account deleted.")
	return nil
}
