package booking

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Airport is the display label of a selectable airport, e.g. "London (LHR)".
type Airport string

// Airports is the fixed list offered by the origin and destination pickers.
var Airports = []Airport{
	"London (LHR)",
	"New York (JFK)",
	"Paris (CDG)",
	"Tokyo (NRT)",
	"Dubai (DXB)",
	"Singapore (SIN)",
	"Los Angeles (LAX)",
	"Mumbai (BOM)",
}

// Code returns the IATA code inside the trailing parentheses.
func (a Airport) Code() string {
	s := string(a)
	open := strings.LastIndex(s, "(")
	end := strings.LastIndex(s, ")")
	if open < 0 || end <= open {
		return ""
	}
	return strings.TrimSpace(s[open+1 : end])
}

// City returns the label without the code.
func (a Airport) City() string {
	s := string(a)
	if open := strings.LastIndex(s, "("); open >= 0 {
		s = s[:open]
	}
	return strings.TrimSpace(s)
}

// IsKnownAirport reports whether label is exactly one of Airports.
func IsKnownAirport(label string) bool {
	for _, a := range Airports {
		if string(a) == label {
			return true
		}
	}
	return false
}

// ParseAirport resolves a full label or a bare IATA code.
func ParseAirport(value string) (Airport, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	for _, a := range Airports {
		if string(a) == trimmed || strings.EqualFold(a.Code(), trimmed) {
			return a, true
		}
	}
	return "", false
}

// airportIndex returns the position of a in Airports, or -1.
func airportIndex(a Airport) int {
	for i, candidate := range Airports {
		if candidate == a {
			return i
		}
	}
	return -1
}

// NextAirport cycles through Airports with an empty slot before the first
// entry, matching the "Select ..." placeholder of the picker.
func NextAirport(current Airport, step int) Airport {
	slots := len(Airports) + 1
	pos := airportIndex(current) + 1
	pos = ((pos+step)%slots + slots) % slots
	if pos == 0 {
		return ""
	}
	return Airports[pos-1]
}

// Destination is a promotional card in the popular destinations panel.
type Destination struct {
	Name     string
	Country  string
	Fare     int // whole units of Currency
	Currency currency.Unit
	Emoji    string
}

// Destinations is the compiled-in promo list.
var Destinations = []Destination{
	{Name: "Paris", Country: "France", Fare: 299, Currency: currency.USD, Emoji: "🗼"},
	{Name: "Tokyo", Country: "Japan", Fare: 599, Currency: currency.USD, Emoji: "🗾"},
	{Name: "New York", Country: "USA", Fare: 399, Currency: currency.USD, Emoji: "🗽"},
	{Name: "Dubai", Country: "UAE", Fare: 499, Currency: currency.USD, Emoji: "🏜️"},
}

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// PriceLabel renders the starting fare the way the card shows it, e.g. "$299".
func (d Destination) PriceLabel() string {
	symbol := pricePrinter.Sprint(currency.NarrowSymbol(d.Currency))
	amount := pricePrinter.Sprint(number.Decimal(d.Fare, number.MaxFractionDigits(0)))
	return symbol + amount
}
