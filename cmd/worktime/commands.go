package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/worktime/internal/calendar"
	"github.com/username/worktime/internal/config"
	"github.com/username/worktime/internal/worktime"
	"github.com/username/worktime/pkg/dateutil"
	"go.uber.org/zap"
)

// result is one printed classification
type result struct {
	Input      string `json:"input"`
	NonWorking bool   `json:"non_working"`
	Reason     string `json:"reason"`
	Local      string `json:"local,omitempty"`
}

func dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <YYYY-MM-DD>...",
		Short: "Check whether dates are days off",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := worktime.NewChecker(logger)
			return classifyAll(cmd.OutOrStdout(), args, func(input string) (result, error) {
				verdict, err := checker.ClassifyDate(input)
				if err != nil {
					return result{}, err
				}
				return result{
					Input:      input,
					NonWorking: verdict.NonWorking,
					Reason:     verdict.Reason.String(),
				}, nil
			})
		},
	}
}

func instantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instant <YYYY-MM-DDThh:mm:ss±hh:mm[Region]>...",
		Short: "Check whether moments fall outside working hours",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			checker := worktime.NewChecker(logger)
			return classifyAll(cmd.OutOrStdout(), args, func(input string) (result, error) {
				verdict, err := checker.ClassifyInstant(input)
				if err != nil {
					return result{}, err
				}
				return result{
					Input:      input,
					NonWorking: verdict.NonWorking,
					Reason:     verdict.Reason.String(),
					Local:      verdict.Local.Format(time.RFC3339),
				}, nil
			})
		},
	}
}

// classifyAll prints every input and stops at the first error
func classifyAll(w io.Writer, inputs []string, classify func(string) (result, error)) error {
	results := make([]result, 0, len(inputs))
	for _, input := range inputs {
		res, err := classify(input)
		if err != nil {
			logger.Warn("Classification failed", zap.String("input", input), zap.Error(err))
			if flushErr := printResults(w, results); flushErr != nil {
				return flushErr
			}
			return err
		}
		results = append(results, res)
	}
	return printResults(w, results)
}

func printResults(w io.Writer, results []result) error {
	if len(results) == 0 {
		return nil
	}

	if cfg.Output.Format == config.OutputJSON {
		enc := json.NewEncoder(w)
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
		}
		return nil
	}

	for _, res := range results {
		status := "working"
		if res.NonWorking {
			status = "non-working"
		}
		line := fmt.Sprintf("%s\t%s\t%s", res.Input, status, res.Reason)
		if res.Local != "" {
			line += "\t" + res.Local
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month",
		Short: "Show the May 2024 production calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := calendar.NewFixedCalendar(logger)
			monthInfo, err := cal.GetMonthInfo(calendar.SupportedYear, calendar.SupportedMonth)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if cfg.Output.Format == config.OutputJSON {
				return json.NewEncoder(w).Encode(monthJSON(monthInfo))
			}

			fmt.Fprintf(w, "%s %d (%s)\n", monthInfo.Month, monthInfo.Year, calendar.ReferenceZone())
			fmt.Fprintln(w, "═══════════════════════════════════════")
			for _, day := range monthInfo.Days {
				fmt.Fprintf(w, "  %s %s  %-8s %dh  %s\n",
					day.Date.Format(dateutil.ISODateLayout),
					day.Date.Format("Mon"),
					day.Type,
					day.WorkingHours,
					day.Note)
			}
			fmt.Fprintln(w, "═══════════════════════════════════════")
			fmt.Fprintf(w, "  Working days: %d\n", monthInfo.WorkDays)
			fmt.Fprintf(w, "  Weekends:     %d\n", monthInfo.Weekends)
			fmt.Fprintf(w, "  Holidays:     %d\n", monthInfo.Holidays)
			fmt.Fprintf(w, "  Hours:        %d\n", monthInfo.WorkingHours)
			return nil
		},
	}
}

type monthDayJSON struct {
	Date         string `json:"date"`
	Type         string `json:"type"`
	WorkingHours int    `json:"working_hours"`
	Note         string `json:"note,omitempty"`
}

type monthInfoJSON struct {
	Year         int            `json:"year"`
	Month        int            `json:"month"`
	WorkDays     int            `json:"work_days"`
	Weekends     int            `json:"weekends"`
	Holidays     int            `json:"holidays"`
	WorkingHours int            `json:"working_hours"`
	Days         []monthDayJSON `json:"days"`
}

func monthJSON(m *calendar.MonthInfo) monthInfoJSON {
	out := monthInfoJSON{
		Year:         m.Year,
		Month:        int(m.Month),
		WorkDays:     m.WorkDays,
		Weekends:     m.Weekends,
		Holidays:     m.Holidays,
		WorkingHours: m.WorkingHours,
		Days:         make([]monthDayJSON, 0, len(m.Days)),
	}
	for _, day := range m.Days {
		out.Days = append(out.Days, monthDayJSON{
			Date:         day.Date.Format(dateutil.ISODateLayout),
			Type:         day.Type.String(),
			WorkingHours: day.WorkingHours,
			Note:         day.Note,
		})
	}
	return out
}
