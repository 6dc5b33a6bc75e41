package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avidalm/authgate/internal/client/models"
	"github.com/avidalm/authgate/internal/client/validation"
)

var errNotSignedIn = errors.New("not signed in")

// WhoAmI fetches the current identity through the gateway and prints a
// small account dashboard. Going through the gateway means an expired
// access token is refreshed transparently.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return errNotSignedIn
	}

	var user models.User
	if err := a.gateway.Get(ctx, "/me", &user); err != nil {
		return err
	}
	a.session.UpdateUser(&user)

	fmt.Fprintf(a.out, "Username:  %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:     %s\n", user.Email)
	fmt.Fprintf(a.out, "Active:    %t\n", user.IsActive)
	fmt.Fprintf(a.out, "Member since: %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}

type profilePayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// EditProfile updates username/email, defaulting each field to its
// current value when the user just presses Enter.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.session.User()
	if current == nil || !a.isLoggedIn(ctx) {
		return errNotSignedIn
	}

	username, err := getTextWithDefault(a.reader, "Username", current.Username, os.Stdout)
	if err != nil {
		return err
	}
	email, err := getTextWithDefault(a.reader, "Email", current.Email, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(validation.ProfileInput{Username: username, Email: email}); err != nil {
		a.toasts.Warning(validation.Explain(err))
		return nil
	}

	var user models.User
	if err := a.gateway.Put(ctx, "/me", profilePayload{Username: username, Email: email}, &user); err != nil {
		return err
	}
	a.session.UpdateUser(&user)

	a.toasts.Success("Profile updated!")
	return nil
}

type changePasswordPayload struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type messagePayload struct {
	Message string `json:"message"`
}

// ChangePassword asks for the current and new password and submits the
// change through the gateway.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn(ctx) {
		return errNotSignedIn
	}

	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(current)

	next, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(next)

	if !validation.StrongPassword(string(next)) {
		a.toasts.Warning("password must be at least 8 characters with upper and lower case letters, a digit and a special character")
		return nil
	}

	payload := changePasswordPayload{CurrentPassword: string(current), NewPassword: string(next)}
	var msg messagePayload
	if err := a.gateway.Post(ctx, "/change-password", payload, &msg); err != nil {
		return err
	}

	a.toasts.Success(msg.Message)
	return nil
}

// PrintStatus shows the session snapshot: lifecycle state, identity and
// whether the client currently counts as authenticated.
func (a *App) PrintStatus(ctx context.Context) {
	snap := a.session.Snapshot(ctx)
	fmt.Fprintf(a.out, "Session:       %s\n", snap.Status)
	fmt.Fprintf(a.out, "Authenticated: %t\n", snap.Authenticated)
	if snap.User != nil {
		fmt.Fprintf(a.out, "User:          %s <%s>\n", snap.User.Username, snap.User.Email)
	}
}
