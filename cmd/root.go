// The root command for the CLI.
// Counting happens here, on the root command itself; subcommands cover
// auxiliary concerns like printing the version.
package cmd

import (
	"fmt"
	"os"

	versioncommand "github.com/redjax/sloc/internal/commands/versionCommand"
	"github.com/redjax/sloc/internal/config"
	countservice "github.com/redjax/sloc/internal/services/countService"
	pathutil "github.com/redjax/sloc/internal/utils/path"
	"github.com/redjax/sloc/internal/utils/spinner"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the root 'sloc' command with flags and subcommands attached.
func NewRootCommand() *cobra.Command {
	// A path to a file to load configuration from
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "sloc [path]",
		Short: "Count source lines by file extension",
		Long: `Count lines of source code under a directory, grouped by file extension.

Inside a git working tree the git index is used to discover files, so ignored
and untracked files stay out of the count. Anywhere else (or with --mode walk)
the directory tree is walked directly. Only files with a known source-code
extension are counted, and a line means one newline byte.

Examples:
  sloc                   # Count under the current directory
  sloc ~/src/project     # Count under a specific directory
  sloc . --mode walk     # Ignore git metadata, walk the filesystem
  sloc . --mode git -D   # Require git listing, print skipped files
`,
		Args:         cobra.MaximumNArgs(1), // Accept 0 or 1 arguments
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadConfig(cmd.Flags(), cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to current directory if no path provided
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			root, err := pathutil.ExpandPath(root)
			if err != nil {
				return err
			}

			mode, err := countservice.ParseMode(config.K.String("mode"))
			if err != nil {
				return err
			}

			stop := spinner.StartSpinner("Counting lines...")
			result, err := countservice.Run(countservice.Options{Root: root, Mode: mode})
			stop()
			if err != nil {
				return err
			}

			if config.K.Bool("debug") {
				for _, skip := range result.Skipped {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipped %s: %v\n", skip.Path, skip.Err)
				}
			}

			return countservice.WriteReport(cmd.OutOrStdout(), result)
		},
	}

	// Add flags to the CLI's root command
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, JSON, TOML or .env)")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Print per-file skip diagnostics")
	rootCmd.Flags().StringP("mode", "m", "auto", "File discovery mode: auto, git or walk")

	// Add other CLI subcommands
	rootCmd.AddCommand(versioncommand.NewVersionCommand())

	return rootCmd
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
