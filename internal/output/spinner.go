package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is a terminal, i.e. prompts can be
// answered.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunWithSpinner executes an action while a spinner is shown.
// Without a TTY the action runs directly. Returns the action's error.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}
	return runSpinning(ctx, cfg.title, action, showSpinner)
}

// showSpinner displays a spinner until wait returns or ctx is done.
func showSpinner(ctx context.Context, title string, wait func()) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		Action(wait).
		Run()
}

// runSpinning runs action in a goroutine while show displays progress.
// It always waits for action to finish, even when show fails, so callers
// never observe state the action is still writing.
func runSpinning(ctx context.Context, title string, action func() error,
	show func(ctx context.Context, title string, wait func()) error,
) error {
	errCh := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		errCh <- action()
		close(done)
	}()

	spinnerErr := show(ctx, title, func() { <-done })
	actionErr := <-errCh
	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
