package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/biz-days/pkg/dateutil"
	"go.uber.org/zap"
)

func daysFromCmd() *cobra.Command {
	var startStr string
	var days int

	cmd := &cobra.Command{
		Use:   "days-from [-s START_DATE] -n DAYS [SKIP]...",
		Short: "Print the date DAYS business days from START_DATE",
		Long:  "Print the date DAYS business days from START_DATE, not counting START_DATE itself. Negative DAYS count backwards. SKIP dates are holidays.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ResolveStart(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}

			calc, err := buildCalculator(args)
			if err != nil {
				return err
			}

			logger.Info("Resolving business day offset",
				zap.Stringer("start", start),
				zap.Int("days", days),
				zap.Int("holidays", len(calc.Holidays())))

			result, err := calc.DaysFrom(start, days)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&startStr, "start", "s", "today", "Start date")
	cmd.Flags().IntVarP(&days, "days", "n", 0, "Number of business days to count")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func inIntervalCmd() *cobra.Command {
	var startStr string
	var endStr string

	cmd := &cobra.Command{
		Use:   "in-interval [-s START_DATE] -e END_DATE [SKIP]...",
		Short: "Print the number of business days between START_DATE and END_DATE",
		Long:  "Print the number of business days between START_DATE and END_DATE, both inclusive. An END_DATE before START_DATE gives 0. SKIP dates are holidays.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := dateutil.ResolveStart(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end, err := dateutil.ParseDate(endStr)
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}

			calc, err := buildCalculator(args)
			if err != nil {
				return err
			}

			count := calc.InInterval(start, end)

			logger.Info("Counted business days",
				zap.Stringer("start", start),
				zap.Stringer("end", end),
				zap.Int("holidays_in_range", calc.HolidayCount(start, end)),
				zap.Int("business_days", count))

			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}

	cmd.Flags().StringVarP(&startStr, "start", "s", "today", "Start date")
	cmd.Flags().StringVarP(&endStr, "end", "e", "", "End date")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
