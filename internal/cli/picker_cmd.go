package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/tickwheel/internal/config"
	"github.com/rshade/tickwheel/internal/picker"
	"github.com/rshade/tickwheel/internal/timeconv"
	"github.com/rshade/tickwheel/internal/tui"
)

// pickerFlags are the flags shared by the picker commands.
type pickerFlags struct {
	value     string
	date      string
	hourCycle string
	embedded  bool
	recurring bool
	noLoop    bool
	noTUI     bool
}

func (f *pickerFlags) register(cmd *cobra.Command, valueHelp string) {
	cmd.Flags().StringVar(&f.value, "value", "", valueHelp)
	cmd.Flags().StringVar(&f.hourCycle, "hour-cycle", "", "hour display: 12, 24 or auto (default from config)")
	cmd.Flags().BoolVar(&f.embedded, "embedded", false, "draw inline instead of as a modal")
	cmd.Flags().BoolVar(&f.recurring, "recurring", false, "start with the recurring flag set")
	cmd.Flags().BoolVar(&f.noLoop, "no-loop", false, "stop wheels at the ends of their lists")
	cmd.Flags().BoolVar(&f.noTUI, "no-tui", false, "print the normalized value without opening the picker")
}

// NewTimeCmd creates the time command.
func NewTimeCmd() *cobra.Command {
	var flags pickerFlags
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Pick a time of day",
		Long: `Opens an hour/minute picker and prints the chosen time as HH:MM.

A malformed --value is repaired with the current wall-clock time.
When stdin or stdout is not a terminal, the normalized value is printed
without opening the picker.`,
		Example: `  tickwheel time --value 13:30
  tickwheel time --hour-cycle 24 --embedded`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPickerCmd(cmd, tui.KindTime, &flags)
		},
	}
	flags.register(cmd, "starting time as HH:MM (default now)")
	return cmd
}

// NewDateCmd creates the date command.
func NewDateCmd() *cobra.Command {
	var flags pickerFlags
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Pick a calendar date",
		Long: `Opens a month/day/year picker and prints the chosen date as YYYY-MM-DD.

The year wheel covers the current year and the years after it.`,
		Example: `  tickwheel date --value 2026-12-24`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.date = flags.value
			return runPickerCmd(cmd, tui.KindDate, &flags)
		},
	}
	flags.register(cmd, "starting date as YYYY-MM-DD (default today)")
	return cmd
}

// NewRemindCmd creates the remind command, which edits a time and a date.
func NewRemindCmd() *cobra.Command {
	var flags pickerFlags
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Pick a reminder time and date",
		Long: `Opens a picker with a time view and a date view. Press v to switch views
and r to toggle the recurring flag. Prints "YYYY-MM-DD HH:MM" followed by
"recurring" when the flag is set.`,
		Example: `  tickwheel remind --value 08:00 --date 2026-11-01 --recurring`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPickerCmd(cmd, tui.KindDateTime, &flags)
		},
	}
	flags.register(cmd, "starting time as HH:MM (default now)")
	cmd.Flags().StringVar(&flags.date, "date", "", "starting date as YYYY-MM-DD (default today)")
	return cmd
}

// pickerConfig builds the TUI configuration from the global config and flags.
func pickerConfig(kind tui.Kind, flags *pickerFlags, clock timeconv.Clock) tui.PickerConfig {
	cfg := config.GetGlobalConfig()

	setting := cfg.Picker.HourCycle
	if flags.hourCycle != "" {
		setting = flags.hourCycle
	}
	cycle := picker.Hour24
	if config.ResolveHourCycle(setting, cfg.Picker.Locale) == config.HourCycle12 {
		cycle = picker.Hour12
	}

	presentation := tui.PresentationModal
	if flags.embedded || cfg.Picker.Presentation == config.PresentationEmbedded {
		presentation = tui.PresentationEmbedded
	}

	pc := tui.PickerConfig{
		Kind: kind,
		Options: picker.Options{
			Cycle:       cycle,
			Loop:        cfg.Picker.Loop && !flags.noLoop,
			RowHeight:   cfg.Picker.RowHeight,
			VisibleRows: cfg.Picker.VisibleRows,
			Physics:     cfg.Physics.ToPhysics(),
			YearSpan:    cfg.Picker.YearSpan,
			Clock:       clock,
			Recurring:   flags.recurring,
		},
		Presentation: presentation,
	}
	if kind != tui.KindDate {
		pc.Time = flags.value
	}
	if kind != tui.KindTime {
		pc.Date = timeconv.DateOf(clock.Now())
		if flags.date != "" {
			pc.Date = timeconv.ParseDate(flags.date, clock)
		}
	}
	return pc
}

func validateHourCycle(s string) error {
	switch s {
	case "", config.HourCycle12, config.HourCycle24, config.HourCycleAuto:
		return nil
	}
	return fmt.Errorf("%w: %q (want 12, 24 or auto)", config.ErrInvalidHourCycle, s)
}

// formatResult renders a picker result for stdout.
func formatResult(r tui.Result) string {
	var out string
	switch {
	case r.HasDate && r.HasTime:
		out = r.Date.String() + " " + r.Time
	case r.HasDate:
		out = r.Date.String()
	default:
		out = r.Time
	}
	if r.Recurring {
		out += " recurring"
	}
	return out
}
