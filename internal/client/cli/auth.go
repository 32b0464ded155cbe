package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and creates a new account via the
// AuthService. Registration does not log the user in; they authenticate
// separately afterwards.
//
// The password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	if !a.visit(ctx, session.PathRegister) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	nick, err := getSimpleText(a.reader, "Enter nick", os.Stdout)
	if err != nil {
		return err
	}
	birthday, err := getSimpleText(a.reader, "Enter birthday (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, password, nick, birthday); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and establishes the session. On success the
// credential is persisted, so the session survives a restart. A credential
// the gateway accepts but the client cannot decode is rejected.
func (a *App) Login(ctx context.Context) error {
	if !a.visit(ctx, session.PathLogin) {
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrMalformedToken):
			printlnFn("Login failed: the server returned an unusable credential")
		case errors.Is(err, common.ErrTokenExpired):
			printlnFn("Login failed: the credential is already expired")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	sess := a.session.Current()
	printlnFn(fmt.Sprintf("Logged in as %s (%s)", sess.Claims.SubjectID, sess.Role()))
	return nil
}

// Logout clears the stored credential and falls back to anonymous.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Profile shows the current session's claims.
func (a *App) Profile(ctx context.Context) error {
	if !a.visit(ctx, session.PathProfile) {
		return nil
	}

	sess := a.session.Current()
	printlnFn("Subject:", sess.Claims.SubjectID)
	printlnFn("Role:   ", string(sess.Role()))
	printlnFn("Expires:", sess.Claims.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
