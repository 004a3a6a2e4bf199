package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dori/clockin/internal/app"
	"github.com/dori/clockin/internal/calendar"
	"github.com/dori/clockin/internal/config"
	"github.com/dori/clockin/internal/mail"
	"github.com/dori/clockin/internal/model"
	"github.com/dori/clockin/internal/timefield"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Fill all missing days of the current month up to today",
	Long: `Submit the configured work schedule for every workday of the current
month that has no recorded hours yet. Days after today are left alone.

Meant for cron or a shell alias; prints one line per submitted day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubmit()
	},
}

func runSubmit() error {
	application, err := app.New()
	if err != nil {
		return err
	}
	defer application.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := application.Client.GetEmployee(ctx, ""); err != nil {
		return fmt.Errorf("fetching employee: %w", err)
	}

	now := time.Now()
	year, month := now.Year(), now.Month()
	start := calendar.FormatDate(year, month, 1)
	end := calendar.FormatDate(year, month, calendar.DaysInMonth(year, month))

	entries, err := application.Client.GetTimesheetEntries(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetching timesheet: %w", err)
	}
	timeOff, err := application.Client.GetTimeOffRequests(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetching time off: %w", err)
	}
	holidays, err := application.Client.GetHolidays(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetching holidays: %w", err)
	}

	idx := calendar.NewMonthIndex(entries, timeOff, holidays)

	// Headless runs never write ahead of today.
	today := now.Format(calendar.ISODate)
	missing := calendar.MissingDays(idx, year, month, today)

	if len(missing) == 0 {
		fmt.Println("Nothing to submit; every workday up to today has hours.")
	} else {
		schedule := application.Settings.WorkSchedule
		perDay := timefield.FormatHours(timefield.TotalHours(schedule))
		fmt.Printf("Submitting %d days (%s each):\n", len(missing), perDay)

		for i, date := range missing {
			if err := submitDay(ctx, application, date, schedule); err != nil {
				fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", date, err)
				return fmt.Errorf("stopped at %s; the %d days before it were kept", date, i)
			}
			fmt.Printf("  ✓ %s (%s)\n", date, perDay)
		}
	}

	mailCfg, err := config.LoadMailConfig()
	if err != nil {
		return err
	}
	return sendMonthEndReminder(ctx, application, now, mailCfg, os.Stdout)
}

func submitDay(ctx context.Context, application *app.App, date string, schedule model.WorkSchedule) error {
	for _, span := range []model.TimeSpan{schedule.Morning, schedule.Afternoon} {
		if err := application.Client.StoreClockEntry(ctx, date, span.Start, span.End); err != nil {
			return err
		}
		if _, err := application.Store.RecordSubmission(date, span.Start, span.End); err != nil {
			return err
		}
	}
	return nil
}

// sendMonthEndReminder mails a calendar invite for the next month's last
// working day, once per month.
func sendMonthEndReminder(ctx context.Context, application *app.App, now time.Time, mailCfg *config.MailConfig, out io.Writer) error {
	if mailCfg == nil {
		fmt.Fprintln(out, "Reminder skipped: mail is not configured (settings tab in the calendar).")
		return nil
	}

	nextYear, nextMonth := calendar.NextMonth(now.Year(), now.Month())
	yearMonth := fmt.Sprintf("%04d-%02d", nextYear, int(nextMonth))

	sent, err := application.Store.WasReminderSent(yearMonth)
	if err != nil {
		return fmt.Errorf("checking reminder log: %w", err)
	}
	if sent {
		return nil
	}

	start := calendar.FormatDate(nextYear, nextMonth, 1)
	end := calendar.FormatDate(nextYear, nextMonth, calendar.DaysInMonth(nextYear, nextMonth))
	timeOff, err := application.Client.GetTimeOffRequests(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetching next month's time off: %w", err)
	}
	holidays, err := application.Client.GetHolidays(ctx, start, end)
	if err != nil {
		return fmt.Errorf("fetching next month's holidays: %w", err)
	}

	lastDay := calendar.LastWorkingDay(nextYear, nextMonth, holidays, timeOff)
	monthName := fmt.Sprintf("%s %d", nextMonth.String(), nextYear)

	sender := mail.NewSender(mailCfg)
	reminder := mail.Reminder{
		Date:          lastDay,
		MonthName:     monthName,
		SubmitCommand: "clockin submit",
	}
	if err := sender.Send(ctx, reminder); err != nil {
		return fmt.Errorf("sending reminder: %w", err)
	}
	if err := application.Store.MarkReminderSent(yearMonth); err != nil {
		return fmt.Errorf("marking reminder sent: %w", err)
	}

	fmt.Fprintf(out, "Reminder for %s sent to %s.\n", monthName, mailCfg.Email)
	return nil
}
