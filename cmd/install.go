package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spotify-alarm/setup/internal/autostart"
	"github.com/spotify-alarm/setup/internal/credentials"
	"github.com/spotify-alarm/setup/internal/install"
	"github.com/spotify-alarm/setup/internal/log"
	"github.com/spotify-alarm/setup/internal/paths"
	"github.com/spotify-alarm/setup/internal/wizard"
)

// Environment variables read for unattended installs.
const (
	envClientID     = "SPOTIFY_ALARM_CLIENT_ID"
	envClientSecret = "SPOTIFY_ALARM_CLIENT_SECRET"
	envDefaultURI   = "SPOTIFY_ALARM_DEFAULT_URI"
)

var (
	installClientID     string
	installClientSecret string
	installDefaultURI   string
	answersFile         string
	envFile             string
	desktopShortcut     bool
	startOnLogin        bool
	installScope        string
	sourceExe           string
	programDir          string
	launchAfter         bool
	nonInteractive      bool
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Configure credentials and install Spotify Alarm",
	Long: `Collect the Spotify API credentials, write config.json and install Spotify Alarm.

Interactive by default when run in a terminal. Values from flags, environment
variables, a .env file or an answers file prefill the wizard; with
--non-interactive they are used directly.

Precedence (highest first):
  1. Flags (--client-id, --client-secret, --default-uri, ...)
  2. Environment (SPOTIFY_ALARM_CLIENT_ID, SPOTIFY_ALARM_CLIENT_SECRET,
     SPOTIFY_ALARM_DEFAULT_URI), including values loaded from --env-file.
     An empty variable counts as unset.
  3. Answers file (--answers FILE, YAML)

A desktop shortcut is created unless --desktop-shortcut=false. Start on
login (--autostart) is only available on Windows.

Examples:
  # Interactive setup
  spotify-alarm-setup install

  # Unattended setup
  spotify-alarm-setup install --non-interactive \
    --client-id ID --client-secret SECRET --autostart

  # Answers file
  spotify-alarm-setup install --non-interactive --answers answers.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall(cmd)
	},
}

// answers is the layout of the --answers YAML file.
type answers struct {
	credentials.Record `yaml:",inline"`
	install.Tasks      `yaml:",inline"`
}

func runInstall(cmd *cobra.Command) error {
	logger := log.WithComponent("install")

	rec, tasks, err := resolveInputs(cmd)
	if err != nil {
		return err
	}
	if tasks.Autostart && !autostart.Supported() {
		return fmt.Errorf("--autostart: %w", autostart.ErrUnsupported)
	}

	scope, err := paths.ValidateScope(installScope)
	if err != nil {
		return err
	}

	env := paths.SystemEnv()
	progDir := programDir
	if progDir == "" {
		progDir, err = env.ProgramDir(scope, paths.AppName)
		if err != nil {
			return err
		}
	}

	src := sourceExe
	if src == "" {
		self, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate setup executable: %w", err)
		}
		src = filepath.Join(filepath.Dir(self), paths.ExecutableName)
	}

	store := configStore()
	cfgPath, err := store.Path()
	if err != nil {
		return err
	}

	if !nonInteractive && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		res, err := wizard.Run(cmd.Context(), wizard.Options{
			Record:      rec,
			Tasks:       &tasks,
			NoAutostart: !autostart.Supported(),
			ConfigPath:  cfgPath,
		}, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		rec, tasks = res.Record, res.Tasks
	} else if err := credentials.Validate(rec); err != nil {
		var verr *credentials.ValidationError
		if errors.As(err, &verr) && verr.Field == credentials.FieldClientSecret {
			return fmt.Errorf("%w: set --client-secret or %s", err, envClientSecret)
		}
		return fmt.Errorf("%w: set --client-id or %s", err, envClientID)
	}

	desktop := ""
	if tasks.DesktopShortcut {
		desktop, err = env.DesktopDir()
		if err != nil {
			return err
		}
	}

	installer := &install.Installer{
		Config:     store,
		Autostart:  autostart.New(),
		DesktopDir: desktop,
		Launch:     install.StartDetached,
		Log:        logger,
	}

	logger.Debug().
		Str("scope", string(scope)).
		Str("program_dir", progDir).
		Bool("desktop_shortcut", tasks.DesktopShortcut).
		Bool("autostart", tasks.Autostart).
		Msg("starting install")

	res, err := installer.Run(cmd.Context(), install.Plan{
		Record:     rec,
		Tasks:      tasks,
		SourceExe:  src,
		ProgramDir: progDir,
		Launch:     launchAfter,
	})
	if err != nil {
		return fmt.Errorf("installation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Spotify Alarm installed")
	fmt.Fprintf(out, "  Config:     %s\n", res.ConfigPath)
	fmt.Fprintf(out, "  Executable: %s\n", res.ExePath)
	if res.ShortcutPath != "" {
		fmt.Fprintf(out, "  Shortcut:   %s\n", res.ShortcutPath)
	}
	if res.Autostart {
		fmt.Fprintln(out, "  Starts on login")
	}
	return nil
}

// resolveInputs merges answers file, environment and flags, in increasing
// order of precedence, over the default task selection.
func resolveInputs(cmd *cobra.Command) (credentials.Record, install.Tasks, error) {
	a := answers{Tasks: install.DefaultTasks()}

	if answersFile != "" {
		data, err := os.ReadFile(answersFile)
		if err != nil {
			return a.Record, a.Tasks, fmt.Errorf("failed to read answers file: %w", err)
		}
		if err := yaml.Unmarshal(data, &a); err != nil {
			return a.Record, a.Tasks, fmt.Errorf("failed to parse answers file %s: %w", answersFile, err)
		}
	}

	fileEnv := map[string]string{}
	if envFile != "" {
		var err error
		fileEnv, err = godotenv.Read(envFile)
		if err != nil {
			return a.Record, a.Tasks, fmt.Errorf("failed to read env file: %w", err)
		}
	}
	// Empty values are treated as unset so an exported but blank variable
	// cannot mask a lower-precedence source.
	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v := fileEnv[key]
		return v, v != ""
	}
	if v, ok := lookup(envClientID); ok {
		a.ClientID = v
	}
	if v, ok := lookup(envClientSecret); ok {
		a.ClientSecret = v
	}
	if v, ok := lookup(envDefaultURI); ok {
		a.DefaultURI = v
	}

	flags := cmd.Flags()
	if flags.Changed("client-id") {
		a.ClientID = installClientID
	}
	if flags.Changed("client-secret") {
		a.ClientSecret = installClientSecret
	}
	if flags.Changed("default-uri") {
		a.DefaultURI = installDefaultURI
	}
	if flags.Changed("desktop-shortcut") {
		a.DesktopShortcut = desktopShortcut
	}
	if flags.Changed("autostart") {
		a.Autostart = startOnLogin
	}

	return a.Record, a.Tasks, nil
}

func addInstallFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&installClientID, "client-id", "", "Spotify API Client ID")
	cmd.Flags().StringVar(&installClientSecret, "client-secret", "", "Spotify API Client Secret")
	cmd.Flags().StringVar(&installDefaultURI, "default-uri", "", "Default Spotify URI played by alarms without their own (optional)")
	cmd.Flags().StringVar(&answersFile, "answers", "", "YAML answers file for unattended installs")
	cmd.Flags().StringVar(&envFile, "env-file", "", ".env file with SPOTIFY_ALARM_* variables")
	cmd.Flags().BoolVar(&desktopShortcut, "desktop-shortcut", true, "Create a desktop shortcut")
	cmd.Flags().BoolVar(&startOnLogin, "autostart", false, "Start Spotify Alarm when you log in")
	cmd.Flags().StringVar(&installScope, "scope", "user", "Install for: user, machine")
	cmd.Flags().StringVar(&sourceExe, "source", "", "Application executable to install (default: "+paths.ExecutableName+" next to setup)")
	cmd.Flags().StringVar(&programDir, "program-dir", "", "Install directory (default depends on --scope)")
	cmd.Flags().BoolVar(&launchAfter, "launch", false, "Launch Spotify Alarm after setup completes")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never start the wizard; fail if required values are missing")
}

func init() {
	addInstallFlags(installCmd)

	// Also add flags to the root command so `spotify-alarm-setup --client-id ...` works
	addInstallFlags(rootCmd)

	rootCmd.AddCommand(installCmd)
}
