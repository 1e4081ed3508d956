package cmd

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(app *app) *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := resolvePassword(cmd, password)
			if err != nil {
				return err
			}

			creds, err := app.auth.Login(cmd.Context(), strings.ToLower(strings.TrimSpace(username)), password)
			if err != nil {
				return err
			}

			if err := app.session.Login(cmd.Context(), creds.Token, creds.User); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as @%s\n", creds.User.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (omit to be prompted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var username string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, err := domain.ValidateUsername(username)
			if err != nil {
				return err
			}

			password, err := resolvePassword(cmd, password)
			if err != nil {
				return err
			}
			if err := domain.ValidatePassword(password); err != nil {
				return err
			}

			creds, err := app.auth.Register(cmd.Context(), username, email, password)
			if err != nil {
				return err
			}

			if err := app.session.Login(cmd.Context(), creds.Token, creds.User); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as @%s\n", creds.User.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (omit to be prompted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot := app.session.Restore(cmd.Context())
			if snapshot.State != domain.SessionAuthorized {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return err
			}

			user := snapshot.Session.User
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "@%s (id %d)\n", user.Username, user.ID)
			return err
		},
	}
}

func resolvePassword(cmd *cobra.Command, password string) (string, error) {
	if password != "" {
		return password, nil
	}

	if _, err := fmt.Fprint(cmd.ErrOrStderr(), "Password: "); err != nil {
		return "", err
	}
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if _, werr := fmt.Fprintln(cmd.ErrOrStderr()); werr != nil {
		return "", werr
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(raw) == 0 {
		return "", errors.New("password is empty")
	}
	return string(raw), nil
}
