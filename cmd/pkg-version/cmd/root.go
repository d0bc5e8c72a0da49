package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/pkg-version/internal/config"
	"github.com/oshokin/pkg-version/internal/logger"
	"github.com/oshokin/pkg-version/internal/service/resolve"
	"github.com/oshokin/pkg-version/internal/version"
)

var (
	// configPath to the settings YAML file.
	configPath string
	// root is the source directory holding the version file.
	root string
	// format selects text or json output.
	format string
	// timeout bounds the external git/python processes.
	timeout time.Duration
	// logLevel is the minimum level written to stderr.
	logLevel string

	// rootCmd represents the base command that prints the resolved version.
	rootCmd = &cobra.Command{
		Use:   "pkg-version",
		Short: "Print the package version string.",
		Long: `Compute the package version from the version file.

By default the CUDA and torch versions of the active Python environment are
appended ("+augment.cu121.torch23"). Set NVTE_NO_AUGMENT_VERSION=1 to append
the short git revision instead ("+abc1234"). NVTE_NO_LOCAL_VERSION=1 or
NVTE_RELEASE_BUILD=1 suppress the revision suffix.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,

		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &resolve.Options{
				ConfigPath: configPath,
				Root:       root,
				Format:     format,
				Timeout:    timeout,
				Output:     cmd.OutOrStdout(),
			}

			return resolve.Run(ctx, options)
		},
	}
)

// Execute runs the pkg-version CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "",
		"path to configuration file (default: "+config.DefaultConfigFilename+" inside the root directory)")
	rootCmd.Flags().StringVarP(&root, "root", "r", "", "source root holding the version file (default: executable directory)")
	rootCmd.Flags().StringVarP(&format, "format", "f", resolve.FormatText, "output format: text or json")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "timeout for git and python queries (0 disables)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
}
