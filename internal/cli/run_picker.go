package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/tickwheel/internal/logging"
	"github.com/rshade/tickwheel/internal/timeconv"
	"github.com/rshade/tickwheel/internal/tui"
)

// ExitCodeNotConfirmed is returned when the picker is closed without confirming.
const ExitCodeNotConfirmed = 2

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// clock is the wall clock used for defaults and repairs. Tests replace it.
//
//nolint:gochecknoglobals // swapped in tests
var clock timeconv.Clock = timeconv.SystemClock{}

// program is the part of *tea.Program that runProgram drives.
type program interface {
	Run() (tea.Model, error)
	Quit()
}

// newProgram builds the Bubble Tea program for a picker model. Tests replace it.
//
//nolint:gochecknoglobals // swapped in tests
var newProgram = func(m tea.Model) program {
	return tea.NewProgram(m, tea.WithMouseCellMotion())
}

// runProgram runs a Bubble Tea model until it quits. Cancelling ctx asks the
// program to quit, which restores the terminal before Run returns, and the
// cancellation is reported as the error. It is a variable so tests can drive
// the model without a terminal.
//
//nolint:gochecknoglobals // swapped in tests
var runProgram = func(ctx context.Context, m tea.Model) error {
	p := newProgram(m)
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		return err
	})
	g.Go(func() error {
		select {
		case <-done:
			return nil
		case <-gctx.Done():
			p.Quit()
			return ctx.Err()
		}
	})
	return g.Wait()
}

func runPickerCmd(cmd *cobra.Command, kind tui.Kind, flags *pickerFlags) error {
	if err := validateHourCycle(flags.hourCycle); err != nil {
		return err
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	pc := pickerConfig(kind, flags, clock)

	if flags.noTUI || !interactive() {
		log.Debug().Msg("non-interactive, printing normalized value")
		m := tui.NewPickerModel(ctx, pc)
		m.Picker().Close()
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatResult(m.Result()))
		return nil
	}

	m := tui.NewPickerModel(ctx, pc)
	if err := runProgram(ctx, m); err != nil {
		m.Picker().Close()
		return fmt.Errorf("running picker: %w", err)
	}
	m.Picker().Close()

	result := m.Result()
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatResult(result))
	log.Debug().
		Str("session_id", m.Picker().Session()).
		Bool("confirmed", result.Confirmed).
		Msg("picker finished")

	if !result.Confirmed {
		return &ExitError{Code: ExitCodeNotConfirmed, Reason: "picker closed without confirming"}
	}
	return nil
}
