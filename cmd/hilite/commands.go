package hilite

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hilite/internal/version"
	"github.com/arthur-debert/hilite/pkg/errors"
	"github.com/arthur-debert/hilite/pkg/logging"
	"github.com/arthur-debert/hilite/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
		inputPath  string
		ignoreCase bool
		colorFlag  string
	)

	rootCmd := &cobra.Command{
		Use:     "hilite",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage errors are reported before any processing begins
			if configPath == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrMissingConfig)
			}

			colorMode, err := ui.ParseColorMode(colorFlag)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --color value")
			}

			return run(runOptions{
				configPath: configPath,
				inputPath:  inputPath,
				ignoreCase: ignoreCase,
				colorize:   ui.ShouldColorize(colorMode, os.Stdout),
			}, os.Stdin, os.Stdout)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", MsgFlagFile)
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, MsgFlagIgnoreCase)
	rootCmd.Flags().StringVar(&colorFlag, "color", "auto", MsgFlagColor)

	// Set custom usage template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hilite version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
