package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/avidalm/authgate/internal/client/validation"
)

// ForgotPassword starts a password reset for an email address. Some
// servers run with in-band delivery and return the reset token in the
// response; that bypasses out-of-band delivery, so it is surfaced with
// an explicit warning instead of silently shown as normal output.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter account email", os.Stdout)
	if err != nil {
		return err
	}

	reset, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}

	a.toasts.Info(reset.Message)
	if reset.Token != "" {
		a.toasts.Warning("server returned the reset token in-band (development mode)")
		fmt.Fprintf(a.out, "Reset token: %s\n", reset.Token)
	}
	return nil
}

// ResetPassword completes a reset with the token the user received.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if !validation.StrongPassword(string(password)) {
		a.toasts.Warning("password must be at least 8 characters with upper and lower case letters, a digit and a special character")
		return nil
	}

	msg, err := a.client.ResetPassword(ctx, token, string(password))
	if err != nil {
		return err
	}

	a.toasts.Success(msg)
	return nil
}
