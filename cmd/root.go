package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spotify-alarm/setup/internal/config"
	"github.com/spotify-alarm/setup/internal/log"
	"github.com/spotify-alarm/setup/internal/paths"
)

var (
	// Persistent flags
	configDir string
	logLevel  string
	noColor   bool

	version = "1.0.0" // This will be set during build
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-alarm-setup",
	Short: "Spotify Alarm Setup - configure and install Spotify Alarm",
	Long: `Spotify Alarm Setup collects your Spotify API credentials, writes them to
config.json in your per-user application-data directory and installs the
Spotify Alarm application.

Run without arguments in a terminal to start the interactive setup wizard.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureOutput()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

func configureOutput() {
	if noColor || os.Getenv("NO_COLOR") != "" {
		noColor = true
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	log.Configure(log.Config{Level: logLevel, NoColor: noColor})
}

// configStore returns the store for --config-dir, or the per-user
// application-data directory when the flag is unset.
func configStore() *config.Store {
	if configDir != "" {
		return config.NewStore(paths.Static(configDir))
	}
	return config.NewStore(paths.NewUserDir())
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for config.json (default: per-user application-data directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Spotify Alarm Setup",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Spotify Alarm Setup v%s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
}
