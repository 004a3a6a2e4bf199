package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dori/clockin/internal/app"
	"github.com/dori/clockin/internal/store"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recently submitted spans",
	Long: `List the spans this machine has written to the remote service, most
recent first. The log is local; spans submitted elsewhere do not appear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLog()
	},
}

func init() {
	logCmd.Flags().IntVarP(&logLimit, "limit", "n", 20, "number of rows to show")
}

func runLog() error {
	application, err := app.New()
	if err != nil {
		return err
	}
	defer application.Close()

	subs, err := application.Store.RecentSubmissions(logLimit)
	if err != nil {
		return err
	}
	writeSubmissionLog(os.Stdout, subs)
	return nil
}

func writeSubmissionLog(w io.Writer, subs []store.Submission) {
	if len(subs) == 0 {
		fmt.Fprintln(w, "No submissions recorded yet.")
		return
	}
	for _, sub := range subs {
		fmt.Fprintf(w, "%s  %s  %s-%s\n",
			sub.SubmittedAt.Format("2006-01-02 15:04"),
			sub.Date, sub.Start, sub.End)
	}
}
