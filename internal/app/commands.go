package app

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/five82/skyexplorer/internal/booking"
	"github.com/five82/skyexplorer/internal/calendar"
	"github.com/five82/skyexplorer/internal/config"
	"github.com/five82/skyexplorer/internal/logtail"
)

// SearchOptions are the raw flag values of a non-interactive search.
type SearchOptions struct {
	Trip       string
	From       string
	To         string
	Depart     string
	Return     string
	Passengers string
}

// PrintCalendar writes the month grid containing ref.
func PrintCalendar(w io.Writer, ref time.Time) error {
	_, err := fmt.Fprintln(w, calendar.Generate(ref).Format())
	return err
}

// PrintDestinations writes one line per promotional destination.
func PrintDestinations(w io.Writer) error {
	for _, d := range booking.Destinations {
		if _, err := fmt.Fprintf(w, "%s %-10s %-8s from %s\n", d.Emoji, d.Name, d.Country, d.PriceLabel()); err != nil {
			return err
		}
	}
	return nil
}

// Search builds a form from opts and runs the same validation as the TUI,
// writing the notice to w. A validation failure is returned as an error
// wrapping booking.ErrMissingRequiredField.
func Search(w io.Writer, opts SearchOptions) (booking.Query, error) {
	form, err := formFromOptions(opts)
	if err != nil {
		return booking.Query{}, err
	}

	sink := booking.SinkFunc(func(n booking.Notice) {
		fmt.Fprintf(w, "%s: %s\n", n.Title, n.Body)
	})
	return booking.Search(form, sink)
}

func formFromOptions(opts SearchOptions) (booking.FormState, error) {
	form := booking.NewFormState()

	if strings.TrimSpace(opts.Trip) != "" {
		trip, err := booking.ParseTripType(opts.Trip)
		if err != nil {
			return form, err
		}
		form.SetTripType(trip)
	}

	for _, f := range []struct {
		raw string
		set func(booking.Airport)
	}{
		{opts.From, form.SetOrigin},
		{opts.To, form.SetDestination},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		airport, ok := booking.ParseAirport(f.raw)
		if !ok {
			return form, fmt.Errorf("unknown airport %q", f.raw)
		}
		f.set(airport)
	}

	for _, f := range []struct {
		raw  string
		name string
		dst  **booking.ISODate
	}{
		{opts.Depart, "departure", &form.Departure},
		{opts.Return, "return", &form.Return},
	} {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		d, err := booking.ParseISODate(strings.TrimSpace(f.raw))
		if err != nil {
			return form, fmt.Errorf("parse %s date: %w", f.name, err)
		}
		*f.dst = &d
	}

	if opts.Passengers != "" {
		form.SetPassengers(opts.Passengers)
	}
	return form, nil
}

// PrintLogs writes the tail of the log file named by the config at
// configPath, optionally limited to one session.
func PrintLogs(w io.Writer, configPath string, opts logtail.Options) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	lines, err := logtail.Read(cfg.LogPath(), opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
