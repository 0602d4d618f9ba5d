package booking

import (
	"fmt"
	"strings"
	"time"
)

// TripType selects how many legs a query has.
type TripType string

const (
	RoundTrip TripType = "roundtrip"
	OneWay    TripType = "oneway"
	MultiCity TripType = "multicity"
)

// TripTypes lists trip types in selector order.
var TripTypes = []TripType{RoundTrip, OneWay, MultiCity}

// Label returns the selector caption.
func (t TripType) Label() string {
	switch t {
	case OneWay:
		return "One-way"
	case MultiCity:
		return "Multi-city"
	default:
		return "Round-trip"
	}
}

// NeedsReturn reports whether a return date is shown and required.
func (t TripType) NeedsReturn() bool {
	return t == RoundTrip
}

// Next cycles forward through TripTypes.
func (t TripType) Next() TripType {
	for i, tt := range TripTypes {
		if tt == t {
			return TripTypes[(i+1)%len(TripTypes)]
		}
	}
	return RoundTrip
}

// Prev cycles backward through TripTypes.
func (t TripType) Prev() TripType {
	for i, tt := range TripTypes {
		if tt == t {
			return TripTypes[(i+len(TripTypes)-1)%len(TripTypes)]
		}
	}
	return RoundTrip
}

// ParseTripType accepts the canonical value or the label, case-insensitively.
func ParseTripType(value string) (TripType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	for _, tt := range TripTypes {
		if normalized == string(tt) {
			return tt, nil
		}
	}
	return "", fmt.Errorf("unknown trip type %q", value)
}

// DateField is the date input the picker is currently editing.
type DateField int

const (
	FieldNone DateField = iota
	FieldDeparture
	FieldReturn
)

func (f DateField) String() string {
	switch f {
	case FieldDeparture:
		return "departure"
	case FieldReturn:
		return "return"
	default:
		return "none"
	}
}

const isoLayout = "2006-01-02"

// ISODate is a calendar date rendered as YYYY-MM-DD. Month is 1-based.
type ISODate struct {
	Year  int
	Month int
	Day   int
}

// NewISODate builds a date from a zero-based month index, the form the month
// grid works in. The month is shifted to 1-based here.
func NewISODate(year, monthIndex, day int) ISODate {
	return ISODate{Year: year, Month: monthIndex + 1, Day: day}
}

// ParseISODate parses a YYYY-MM-DD string.
func ParseISODate(value string) (ISODate, error) {
	t, err := time.Parse(isoLayout, strings.TrimSpace(value))
	if err != nil {
		return ISODate{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return ISODate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

func (d ISODate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the date in loc.
func (d ISODate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func formatDate(d *ISODate) string {
	if d == nil {
		return ""
	}
	return d.String()
}
