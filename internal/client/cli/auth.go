package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/roles"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a FloodWatch account.
// The outcome (success or a user-facing failure message) is printed from the
// resulting session phase.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	roleStr, err := getSimpleText(a.reader, "Role (regular/volunteer, empty for regular)", os.Stdout)
	if err != nil {
		return err
	}
	role := roles.Default
	if roleStr != "" {
		parsed, ok := roles.Parse(roleStr)
		if !ok {
			return common.ErrorInvalidRole
		}
		role = parsed
	}

	if err := a.sessions.Register(ctx, email, string(password), name, role); err != nil {
		return err
	}
	a.printPhase()
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.Login(ctx, email, string(password)); err != nil {
		return err
	}
	a.printPhase()
	return nil
}

// Logout signs out and clears the local credential cache.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.printPhase()
	return nil
}

// ResetPassword requests a password-reset email for the given address.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.sessions.ResetPassword(ctx, email); err != nil {
		return err
	}
	a.printPhase()
	return nil
}

// WhoAmI prints the current user's profile.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sessions.CurrentUser()
	if u == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("ID:      %s\n", u.ID)
	fmt.Printf("Name:    %s\n", u.Name)
	fmt.Printf("Email:   %s\n", u.Email)
	fmt.Printf("Role:    %s\n", u.Role)
	if u.City != "" {
		fmt.Printf("City:    %s\n", u.City)
	}
	if u.County != "" {
		fmt.Printf("County:  %s\n", u.County)
	}
	fmt.Printf("Joined:  %s\n", u.CreatedAt.Format(time.RFC3339))
	return nil
}
