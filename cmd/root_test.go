package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

// executeCommand executes a cobra command and captures its output.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (output string, err error) {
	t.Helper()

	// Capture stdout and stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	defer func() {
		// Restore stdout and stderr
		w.Close()
		os.Stdout = oldStdout
		os.Stderr = oldStderr
		output = <-outC
	}()

	resetFlags(cmd)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return output, err
}

// resetFlags restores every flag to its default so state from one test run
// does not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name                 string
		args                 []string
		expectError          bool
		expectOutputContains string
		expectErrorContains  string
	}{
		{
			name:                 "Version command",
			args:                 []string{"version"},
			expectOutputContains: "Spotify Alarm Setup v",
		},
		{
			name:                 "Help lists subcommands",
			args:                 []string{"--help"},
			expectOutputContains: "autostart",
		},
		{
			name:                "Invalid scope",
			args:                []string{"install", "--non-interactive", "--client-id", "a", "--client-secret", "b", "--scope", "global"},
			expectError:         true,
			expectErrorContains: "invalid scope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := t.TempDir()

			// Use the actual rootCmd for testing
			output, err := executeCommand(t, rootCmd, append(tt.args, "--config-dir", configDir)...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErrorContains)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, output, tt.expectOutputContains)
			}
		})
	}
}
