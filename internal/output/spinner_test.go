package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NoTTYRunsAction(t *testing.T) {
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}

	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Baking"))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_PropagatesError(t *testing.T) {
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}

	want := errors.New("prune failed")
	err := RunWithSpinner(context.Background(), func() error { return want })
	assert.ErrorIs(t, err, want)
}

func TestRunSpinning_WaitsForActionWhenSpinnerFails(t *testing.T) {
	spinnerErr := errors.New("interrupted")
	release := make(chan struct{})
	finished := false

	failFast := func(context.Context, string, func()) error {
		close(release)
		return spinnerErr
	}

	err := runSpinning(context.Background(), "Baking", func() error {
		<-release
		finished = true
		return nil
	}, failFast)

	assert.True(t, finished, "action completes before returning")
	assert.ErrorIs(t, err, spinnerErr)
}

func TestRunSpinning_ActionErrorWinsOverSpinnerError(t *testing.T) {
	want := errors.New("prune failed")

	err := runSpinning(context.Background(), "Baking", func() error { return want },
		func(context.Context, string, func()) error { return errors.New("interrupted") })

	assert.ErrorIs(t, err, want)
}

func TestRunSpinning_Success(t *testing.T) {
	calls := 0
	err := runSpinning(context.Background(), "Baking", func() error {
		calls++
		return nil
	}, func(_ context.Context, title string, wait func()) error {
		assert.Equal(t, "Baking", title)
		wait()
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
