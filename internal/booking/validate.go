package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingFieldsMessage is shown when a search is attempted with gaps in the form.
const MissingFieldsMessage = "Please fill in all required fields"

// ErrMissingRequiredField is the only error the search validator produces.
var ErrMissingRequiredField = errors.New("missing required field")

// ValidationError lists the form fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrMissingRequiredField.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingRequiredField, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequiredField
}

// Query is a validated snapshot of the form, ready to hand to a search backend.
type Query struct {
	TripType    TripType
	Origin      Airport
	Destination Airport
	Departure   ISODate
	Return      *ISODate // set only for round trips
	Passengers  int
}

// searchForm mirrors FormState with the presence rules expressed as tags.
// Origin and destination are not cross-checked, nor are the dates ordered.
type searchForm struct {
	TripType    TripType `validate:"required"`
	Origin      string   `validate:"required"`
	Destination string   `validate:"required"`
	Departure   string   `validate:"required"`
	Return      string   `validate:"required_if=TripType roundtrip"`
}

var fieldNames = map[string]string{
	"TripType":    "trip type",
	"Origin":      "origin",
	"Destination": "destination",
	"Departure":   "departure date",
	"Return":      "return date",
}

var validateSearch = validator.New()

// Validate checks that every field the trip type needs is present.
func Validate(s FormState) (Query, error) {
	form := searchForm{
		TripType:    s.TripType,
		Origin:      strings.TrimSpace(string(s.Origin)),
		Destination: strings.TrimSpace(string(s.Destination)),
		Departure:   formatDate(s.Departure),
		Return:      formatDate(s.Return),
	}

	if err := validateSearch.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Query{}, fmt.Errorf("validate search form: %w", err)
		}
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			name, ok := fieldNames[fe.Field()]
			if !ok {
				name = strings.ToLower(fe.Field())
			}
			missing = append(missing, name)
		}
		return Query{}, &ValidationError{Fields: missing}
	}

	q := Query{
		TripType:    s.TripType,
		Origin:      s.Origin,
		Destination: s.Destination,
		Departure:   *s.Departure,
		Passengers:  s.Passengers,
	}
	if s.TripType.NeedsReturn() {
		ret := *s.Return
		q.Return = &ret
	}
	return q, nil
}

// Summary is the placeholder text shown in place of real results.
func (q Query) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Searching flights from %s to %s\nDeparture: %s", q.Origin, q.Destination, q.Departure)
	if q.TripType.NeedsReturn() && q.Return != nil {
		fmt.Fprintf(&b, "\nReturn: %s", q.Return)
	}
	fmt.Fprintf(&b, "\nPassengers: %d", q.Passengers)
	return b.String()
}
