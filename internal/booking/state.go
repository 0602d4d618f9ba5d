package booking

import (
	"strconv"
	"strings"
)

const (
	// MinPassengers is the floor applied to every passenger entry.
	MinPassengers = 1
	// MaxPassengers caps the stepper control only; typed values above it are kept.
	MaxPassengers = 9
)

// FormState is everything the search form holds for one session.
type FormState struct {
	TripType    TripType
	Origin      Airport
	Destination Airport
	Departure   *ISODate
	Return      *ISODate
	Passengers  int
	ActiveField DateField
}

// NewFormState returns the session defaults: round-trip, nothing chosen,
// one passenger and the picker closed.
func NewFormState() FormState {
	return FormState{
		TripType:    RoundTrip,
		Passengers:  MinPassengers,
		ActiveField: FieldNone,
	}
}

// PickerOpen reports whether a date field is being edited.
func (s *FormState) PickerOpen() bool {
	return s.ActiveField != FieldNone
}

func (s *FormState) SetTripType(t TripType) {
	s.TripType = t
}

func (s *FormState) SetOrigin(a Airport) {
	s.Origin = a
}

func (s *FormState) SetDestination(a Airport) {
	s.Destination = a
}

// SetPassengers stores the coerced value of a raw entry and returns it.
func (s *FormState) SetPassengers(raw string) int {
	s.Passengers = CoercePassengers(raw)
	return s.Passengers
}

// IncrementPassengers steps up, stopping at MaxPassengers.
func (s *FormState) IncrementPassengers() {
	if s.Passengers < MaxPassengers {
		s.Passengers++
	}
	if s.Passengers > MaxPassengers {
		s.Passengers = MaxPassengers
	}
}

// DecrementPassengers steps down, stopping at MinPassengers.
func (s *FormState) DecrementPassengers() {
	if s.Passengers > MinPassengers {
		s.Passengers--
	}
	if s.Passengers > MaxPassengers {
		s.Passengers = MaxPassengers
	}
	if s.Passengers < MinPassengers {
		s.Passengers = MinPassengers
	}
}

// DateFor returns the date stored for field.
func (s *FormState) DateFor(field DateField) *ISODate {
	switch field {
	case FieldDeparture:
		return s.Departure
	case FieldReturn:
		return s.Return
	default:
		return nil
	}
}

// CoercePassengers parses a passenger entry. Anything that is not a number,
// or is below one, becomes one. There is no upper clamp here.
func CoercePassengers(raw string) int {
	n, err := strconv.Atoi(leadingInt(raw))
	if err != nil || n < MinPassengers {
		return MinPassengers
	}
	return n
}

// leadingInt keeps an optional sign and the digits that follow it, so "5x"
// reads as 5 the way a browser number field does.
func leadingInt(raw string) string {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
