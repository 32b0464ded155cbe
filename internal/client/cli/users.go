package cli

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// Users refreshes and prints the account list. Requires the user
// administrator role.
func (a *App) Users(ctx context.Context) error {
	if !a.visit(ctx, session.PathUsers) {
		return nil
	}

	if err := a.users.Refresh(ctx); err != nil {
		printlnFn("Failed to load users:", err.Error())
		return err
	}
	for _, user := range a.users.List() {
		printlnFn(user.String())
	}
	return nil
}

// DeleteUser removes an account optimistically. Requires the user
// administrator role.
func (a *App) DeleteUser(ctx context.Context) error {
	if !a.visit(ctx, session.PathUsers) {
		return nil
	}

	raw, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		printlnFn("Not a valid user id:", raw)
		return err
	}

	if err := a.users.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such user")
		}
		return err
	}
	printlnFn("Deleted")
	return nil
}
