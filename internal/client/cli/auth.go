package cli

import (
	"context"
	"os"

	"github.com/avidalm/authgate/internal/client/validation"
)

// getSimpleText, getTextWithDefault and getPassword are indirections
// used to facilitate testing. They point to interactive input helpers
// and can be swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Login prompts for credentials, performs the login exchange, resolves
// the identity for the fresh access token and installs the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	pair, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return err
	}

	user, err := a.client.FetchCurrentUser(ctx, pair.AccessToken)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, user, pair); err != nil {
		return err
	}

	a.toasts.Success("Signed in successfully!")
	return nil
}

// Register prompts for account details, validates them locally and
// creates the account. The new account is not signed in automatically.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
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
	defer wipeBytes(password)

	input := validation.RegisterInput{Username: username, Email: email, Password: string(password)}
	if err := a.validate.Struct(input); err != nil {
		a.toasts.Warning(validation.Explain(err))
		return nil
	}

	if _, err := a.client.Register(ctx, username, email, string(password)); err != nil {
		return err
	}

	a.toasts.Success("Account created! You can now sign in.")
	return nil
}

// Logout drops the session. Always succeeds, even when no session is
// active.
func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.toasts.Info("Signed out.")
}
