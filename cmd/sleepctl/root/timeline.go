package root

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PavaniTiago/sleep-coach-api/internal/domain/timeline"
	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
)

func newTimelineCmd() *cobra.Command {
	var (
		start     string
		days      int
		shifts    []string
		sleep     string
		wake      string
		melatonin bool
	)

	cmd := &cobra.Command{
		Use:     "timeline",
		Short:   "Project shifts and recommendation bands onto a day grid",
		Example: "  sleepctl timeline --start 2025-03-10 --days 3 --shift 2025-03-10,22:00,06:00",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start == "" {
				start = utils.Today(time.Local)
			}

			intervals, err := parseShifts(shifts)
			if err != nil {
				return err
			}

			bands := timeline.DefaultBands()
			if sleep != "" || wake != "" {
				if sleep == "" || wake == "" {
					return fmt.Errorf("--sleep and --wake must be used together")
				}
				if bands, err = timeline.BandsFor(timeline.Schedule{SleepStart: sleep, WakeTime: wake, UseMelatonin: melatonin}); err != nil {
					return err
				}
			}

			out, err := timeline.ProjectRange(start, days, intervals, bands)
			if err != nil {
				return err
			}
			return render(cmd, out)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "number of days")
	cmd.Flags().StringArrayVar(&shifts, "shift", nil, "shift as DATE,START,END (repeatable)")
	cmd.Flags().StringVar(&sleep, "sleep", "", "personal bedtime HH:MM")
	cmd.Flags().StringVar(&wake, "wake", "", "personal wake time HH:MM")
	cmd.Flags().BoolVar(&melatonin, "melatonin", true, "include the melatonin marker with --sleep/--wake")
	return cmd
}

func parseShifts(values []string) ([]timeline.ShiftInterval, error) {
	intervals := make([]timeline.ShiftInterval, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("shift %q: expected DATE,START,END", v)
		}
		intervals = append(intervals, timeline.ShiftInterval{
			Date:      strings.TrimSpace(parts[0]),
			StartTime: strings.TrimSpace(parts[1]),
			EndTime:   strings.TrimSpace(parts[2]),
		})
	}
	return intervals, nil
}
