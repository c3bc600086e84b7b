package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// NewUsersCommand groups the user management commands. Every subcommand is
// admin-gated, matching the server's route protection.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(
		newUsersListCommand(),
		newUsersGetCommand(),
		newUsersCreateCommand(),
		newUsersUpdateCommand(),
		newUsersDeleteCommand(),
	)
	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			return a.renderUsers(cmd.Context())
		},
	}
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := a.users.FetchOne(cmd.Context(), id); err != nil {
				return err
			}
			if detail, _ := a.users.Detail(); detail != nil {
				a.renderUser(detail)
			}
			return nil
		},
	}
}

// userInputFlags binds the shared create/update flags onto a UserInput.
func userInputFlags(cmd *cobra.Command, input *ports.UserInput, gender, birthDate *string) {
	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&input.Email, "email", "", "account email")
	cmd.Flags().StringVar(&input.Password, "password", "", "password (optional on update)")
	cmd.Flags().StringVar(gender, "gender", "", "MALE, FEMALE or OTHER")
	cmd.Flags().StringVar(birthDate, "birth-date", "", "birth date (yyyy-MM-dd)")
	cmd.Flags().BoolVar(&input.Enabled, "enabled", true, "whether the account is enabled")
}

func resolveUserInput(input *ports.UserInput, gender, birthDate string) error {
	input.Gender = domain.Gender(gender)
	parsed, err := domain.ParseDate(birthDate)
	if err != nil {
		return err
	}
	input.BirthDate = parsed
	return nil
}

func newUsersCreateCommand() *cobra.Command {
	var input ports.UserInput
	var gender, birthDate string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			if err := resolveUserInput(&input, gender, birthDate); err != nil {
				return err
			}
			return a.users.Create(cmd.Context(), input)
		},
	}
	userInputFlags(cmd, &input, &gender, &birthDate)
	return cmd
}

func newUsersUpdateCommand() *cobra.Command {
	var input ports.UserInput
	var gender, birthDate string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := resolveUserInput(&input, gender, birthDate); err != nil {
				return err
			}
			return a.users.Update(cmd.Context(), id, input)
		},
	}
	userInputFlags(cmd, &input, &gender, &birthDate)
	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return a.users.Delete(cmd.Context(), id)
		},
	}
}
