package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped by the release build; the default marks dev builds.
var Version = "0.0.0-dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the storectl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("storectl %s\n", Version)
		},
	}
}
