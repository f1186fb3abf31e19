package wizard

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the wizard on the given terminal streams and blocks until the
// user confirms or quits.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (Result, error) {
	p := tea.NewProgram(New(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	if err != nil {
		return Result{}, fmt.Errorf("wizard failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok || !m.Done() {
		return Result{}, ErrCancelled
	}
	return m.Result(), nil
}
