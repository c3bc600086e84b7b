package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "storectl",
		Short:         "Headless console for the storefront management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewLoginCommand(),
		NewLogoutCommand(),
		NewWhoamiCommand(),
		NewRegisterCommand(),
		NewUsersCommand(),
		NewProductsCommand(),
		NewConsoleCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
