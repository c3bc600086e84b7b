package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// NewLoginCommand verifies a set of credentials against the API. Sessions do
// not outlive the process; use the console (or configured credentials) for a
// session that spans multiple operations.
func NewLoginCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the storefront API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			creds := ports.Credentials{Username: username, Password: password}
			if err := a.auth.Login(cmd.Context(), creds); err != nil {
				return err
			}
			identity := a.sessions.Current().Identity
			fmt.Printf("logged in as %s (%s)\n", identity.FullName(), identity.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLogoutCommand ends the server-side session the configured credentials
// (or cookie) resolved to.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

// NewWhoamiCommand prints the identity the session resolved to.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			sess := a.sessions.Current()
			if !sess.Authenticated() {
				fmt.Println("anonymous")
				return nil
			}
			a.renderUser(sess.Identity)
			return nil
		},
	}
}

// NewRegisterCommand creates a new account. It does not log the account in.
func NewRegisterCommand() *cobra.Command {
	var input ports.RegistrationInput
	var gender, birthDate string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			input.Gender = domain.Gender(gender)
			input.BirthDate, err = domain.ParseDate(birthDate)
			if err != nil {
				return err
			}

			return a.auth.Register(cmd.Context(), input)
		},
	}

	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password")
	cmd.Flags().StringVar(&input.ConfirmPassword, "confirm-password", "", "password confirmation")
	cmd.Flags().StringVar(&gender, "gender", "", "MALE, FEMALE or OTHER")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date (yyyy-MM-dd)")
	return cmd
}
