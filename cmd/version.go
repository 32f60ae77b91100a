package cmd

import (
	"fmt"
	"runtime"

	"github.com/ethpandaops/chain-resolver/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of chain-resolver.",
		Long:  `Prints the version of chain-resolver.`,
		// Overrides the root hook; printing the version needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nCommit: %s\nOS/Arch: %s/%s\n",
				version.GetRelease(), version.GetGitCommit(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
