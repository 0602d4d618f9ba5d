package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/skyexplorer/internal/app"
	"github.com/five82/skyexplorer/internal/booking"
	"github.com/five82/skyexplorer/internal/logtail"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// Validation failures were already reported by the search notice.
		if !errors.Is(err, booking.ErrMissingRequiredField) {
			fmt.Fprintf(os.Stderr, "skyexplorer: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "skyexplorer",
		Short:         "Terminal flight search form",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "override config path (optional)")
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "override preferences path (optional)")
	cmd.Flags().StringVar(&opts.ThemeName, "theme", "", "theme name: Slate, Nightfox or Kanagawa")

	cmd.AddCommand(newCalendarCmd(), newSearchCmd(), newDestinationsCmd(), newLogsCmd(&opts))
	return cmd
}

func newCalendarCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the month grid the date picker shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := time.Now()
			if dateStr != "" {
				d, err := booking.ParseISODate(dateStr)
				if err != nil {
					return err
				}
				ref = d.Time(time.Local)
			}
			return app.PrintCalendar(cmd.OutOrStdout(), ref)
		},
	}
	cmd.Flags().StringVar(&dateStr, "date", "", "reference date YYYY-MM-DD (default today)")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var opts app.SearchOptions

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Validate a search without the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Search(cmd.OutOrStdout(), opts)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Trip, "trip", string(booking.RoundTrip), "trip type: roundtrip, oneway or multicity")
	cmd.Flags().StringVar(&opts.From, "from", "", "origin airport, label or code")
	cmd.Flags().StringVar(&opts.To, "to", "", "destination airport, label or code")
	cmd.Flags().StringVar(&opts.Depart, "depart", "", "departure date YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Return, "return", "", "return date YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.Passengers, "passengers", "1", "number of passengers")
	return cmd
}

func newDestinationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List popular destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintDestinations(cmd.OutOrStdout())
		},
	}
}

func newLogsCmd(root *app.Options) *cobra.Command {
	var opts logtail.Options

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent log lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.PrintLogs(cmd.OutOrStdout(), root.ConfigPath, opts)
		},
	}
	cmd.Flags().IntVar(&opts.MaxLines, "lines", 50, "number of lines to show (0 for all)")
	cmd.Flags().StringVar(&opts.Session, "session", "", "only lines from the session with this id prefix")
	return cmd
}
