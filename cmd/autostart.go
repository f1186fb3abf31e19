package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spotify-alarm/setup/internal/autostart"
	"github.com/spotify-alarm/setup/internal/paths"
)

var (
	autostartExe   string
	autostartScope string
)

// autostartCmd represents the autostart command
var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage starting Spotify Alarm at login",
	Long: `Add, remove or inspect the entry under
HKCU\Software\Microsoft\Windows\CurrentVersion\Run that starts Spotify Alarm
when you log in. Windows only.`,
}

var autostartEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Start Spotify Alarm at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		exe, err := installedExe()
		if err != nil {
			return err
		}
		if err := autostart.New().Enable(paths.AppName, exe); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Start on login enabled (%s)\n", autostart.Command(exe))
		return nil
	},
}

var autostartDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Stop starting Spotify Alarm at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := autostart.New().Disable(paths.AppName); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Start on login disabled")
		return nil
	},
}

var autostartStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether Spotify Alarm starts at login",
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := autostart.New().Enabled(paths.AppName)
		if err != nil {
			return err
		}
		if enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "Start on login: enabled")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Start on login: disabled")
		}
		return nil
	},
}

func installedExe() (string, error) {
	if autostartExe != "" {
		return filepath.Abs(autostartExe)
	}
	scope, err := paths.ValidateScope(autostartScope)
	if err != nil {
		return "", err
	}
	dir, err := paths.SystemEnv().ProgramDir(scope, paths.AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, paths.ExecutableName), nil
}

func init() {
	autostartEnableCmd.Flags().StringVar(&autostartExe, "exe", "", "Executable to start (default: installed "+paths.ExecutableName+")")
	autostartEnableCmd.Flags().StringVar(&autostartScope, "scope", "user", "Install scope used to locate the executable: user, machine")

	autostartCmd.AddCommand(autostartEnableCmd, autostartDisableCmd, autostartStatusCmd)
	rootCmd.AddCommand(autostartCmd)
}
