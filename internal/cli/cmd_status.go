package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wa-desk/internal/app"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/service"
	"github.com/MKhiriev/go-wa-desk/models"
)

func newStatusCommand(rt *deps) *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status MESSAGE_ID",
		Short: "Show the delivery status of a sent message",
		Long: `status prints the latest delivery status and the history reported by
the backend. With --watch it keeps polling until interrupted; failed polls
are printed and polling continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !watch {
				status, err := rt.services.MessageService.Status(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printStatus(cmd.OutOrStdout(), status)
				return nil
			}
			return watchStatus(cmd, rt, args[0], interval)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep polling until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", config.DefaultStatusPollInterval, "delay between two polls with --watch")

	return cmd
}

func watchStatus(cmd *cobra.Command, rt *deps, messageID string, interval time.Duration) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	poller := service.NewStatusPoller(rt.services.MessageService, interval)
	poller.Start(ctx, messageID)
	defer poller.Stop()

	fmt.Fprintln(out, app.TrackingMessage(strings.TrimSpace(messageID)))

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case u := <-poller.Updates():
			stamp := u.At.Format(time.TimeOnly)
			if u.Err != nil {
				fmt.Fprintf(out, "%s %s %s\n", stamp, app.MsgStatusFetchFailed, service.ErrorText(u.Err))
				last = ""
				continue
			}

			line := app.LatestStatusMessage(u.Status.LatestStatus())
			if line == last {
				continue
			}
			last = line
			fmt.Fprintf(out, "%s %s\n", stamp, line)
		}
	}
}

func printStatus(out io.Writer, status models.MessageStatus) {
	fmt.Fprintln(out, app.LatestStatusMessage(status.LatestStatus()))

	history := status.HistoryStatuses()
	if len(history) == 0 {
		fmt.Fprintln(out, "History: none")
		return
	}
	fmt.Fprintf(out, "History: %s\n", strings.Join(history, " -> "))
}
