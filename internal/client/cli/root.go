package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	if user := a.session.User(); user != nil && a.isLoggedIn(ctx) {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

// Root runs the interactive command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to authgate (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "authgate %s> ", a.getStatus(ctx))
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(a.out, "Available commands: whoami, profile, passwd, status, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, forgot, reset, status, exit")
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "register":
			if err := a.Register(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "logout":
			a.Logout(ctx)
		case "whoami":
			if err := a.WhoAmI(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "profile":
			if err := a.EditProfile(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "passwd":
			if err := a.ChangePassword(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "forgot":
			if err := a.ForgotPassword(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "reset":
			if err := a.ResetPassword(ctx); err != nil {
				a.toasts.Error(err.Error())
			}
		case "status":
			a.PrintStatus(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
