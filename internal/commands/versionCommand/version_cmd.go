package versioncommand

import (
	"fmt"

	"github.com/redjax/sloc/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetPackageInfo()

			if full {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
					info.PackageName,
					info.RepoUser,
					info.RepoName,
					info.RepoUrl,
					info.PackageVersion,
					info.PackageCommit,
					info.PackageReleaseDate,
				)
				return
			}

			// Print version string
			fmt.Fprintf(cmd.OutOrStdout(), "version:%s commit:%s date:%s\n",
				info.PackageVersion, info.PackageCommit, info.PackageReleaseDate)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show full package info, including repository details")

	return cmd
}
