package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vctasks/vct/internal/caltui"
	"github.com/vctasks/vct/internal/ui"
	"github.com/vctasks/vct/task"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar [month]",
	Short: "Show the completion calendar",
	Long: `Show the completion calendar for a month (YYYY-MM, default the
current one). Days with tasks carry a dot: green for up to three tasks,
red above that.

Runs the interactive calendar when attached to a terminal; --plain prints
the month grid and exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

var (
	calendarPlain bool
	calendarDate  string
)

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVar(&calendarPlain, "plain", false, "Print the month grid instead of the interactive calendar")
	calendarCmd.Flags().StringVar(&calendarDate, "date", "", "Highlight a date (YYYY-MM-DD)")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	start := time.Now()
	if len(args) == 1 {
		month, err := caltui.ParseMonth(args[0])
		if err != nil {
			return err
		}
		start = month
	}
	if calendarDate != "" {
		date, ok := task.ParseDate(calendarDate)
		if !ok {
			return fmt.Errorf("invalid date %q", calendarDate)
		}
		start = date
	}

	store, _, err := newStore()
	if err != nil {
		return err
	}

	if calendarPlain || !ui.IsInteractive() {
		if err := store.FetchTasks(cmd.Context(), ""); err != nil {
			return storeError(store, err)
		}
		markings := task.DeriveMarkings(store.Tasks(), calendarDate)
		fmt.Print(caltui.RenderPlainMonth(caltui.MonthOf(start), markings))
		return nil
	}

	return caltui.Run(cmd.Context(), store, start)
}
