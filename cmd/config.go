package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/spotify-alarm/setup/internal/credentials"
)

var showReveal bool

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the Spotify Alarm configuration file",
	Long: `Inspect config.json as written by setup and read by Spotify Alarm at startup.

Examples:
  # Print where config.json lives
  spotify-alarm-setup config path

  # Print the configuration with the secret masked
  spotify-alarm-setup config show

  # Validate the file against the expected schema
  spotify-alarm-setup config check`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configStore().Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := configStore().Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w\nRun 'spotify-alarm-setup install' to create it", err)
		}
		if !showReveal {
			rec.ClientSecret = credentials.Mask(rec.ClientSecret)
		}

		data := string(credentials.Encode(rec))
		out := cmd.OutOrStdout()
		if f, ok := out.(*os.File); ok && !noColor && isTerminal(f) {
			if err := quick.Highlight(out, data, "json", "terminal256", "monokai"); err == nil {
				return nil
			}
		}
		_, err = fmt.Fprint(out, data)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate config.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configStore().Check()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&showReveal, "reveal", false, "Print the client secret in clear text")

	configCmd.AddCommand(configPathCmd, configShowCmd, configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
