package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/streamhub/streamhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for sign-up fields and creates a new account. A
// successful sign-up signs the user in immediately.
func (a *App) register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.accounts.SignUp(ctx, email, string(password), name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fmt.Println("That email is already registered.")
		case errors.Is(err, common.ErrValidation):
			fmt.Println("Name, email and password are all required.")
		default:
			fmt.Println("Registration failed:", err)
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", account.Name)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.accounts.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("Invalid email or password.")
		} else {
			fmt.Println("Login failed:", err)
		}
		return err
	}

	fmt.Printf("Welcome back, %s!\n", account.Name)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if !a.isSignedIn() {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := a.accounts.SignOut(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
