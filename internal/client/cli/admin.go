package cli

import (
	"context"
	"fmt"

	"github.com/vkozyrev/floodwatch/internal/common"
	"github.com/vkozyrev/floodwatch/internal/roles"
)

// SetRole changes a user's role:
//
//	setrole <user-id> <regular|volunteer|admin>
//
// The backend rejects the call unless the caller is an admin.
func (a *App) SetRole(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Println("Usage: setrole <user-id> <regular|volunteer|admin>")
		return nil
	}

	role, ok := roles.Parse(args[1])
	if !ok {
		return common.ErrorInvalidRole
	}

	user, err := a.sessions.UpdateUserRole(ctx, args[0], role)
	if err != nil {
		return err
	}

	fmt.Printf("%s is now %s.\n", user.Name, user.Role)
	return nil
}
