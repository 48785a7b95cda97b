package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// kindParser describes how one quantity kind is read: which tokens its grammar
// accepts, how tokens are normalised before lookup, and how a number and a
// unit become a quantity.
type kindParser[U any, Q any] struct {
	kind      Kind
	scanToken tokenScanner
	foldCase  bool
	units     map[string]U
	canonical U
	build     func(float64, U) Q
}

var temperatureParser = &kindParser[TemperatureUnit, Temperature]{
	kind:      KindTemperature,
	scanToken: scanTemperatureToken,
	foldCase:  true,
	units:     temperatureTokens,
	canonical: Celsius,
	build:     NewTemperature,
}

var volumeParser = &kindParser[VolumeUnit, Volume]{
	kind:      KindVolume,
	scanToken: scanVolumeToken,
	foldCase:  true,
	units:     volumeTokens,
	canonical: Litres,
	build:     NewVolume,
}

var massParser = &kindParser[MassUnit, Mass]{
	kind:      KindMass,
	scanToken: scanMassToken,
	foldCase:  false,
	units:     massTokens,
	canonical: Grams,
	build:     NewMass,
}

func (k *kindParser[U, Q]) parse(input string) (Q, error) {
	if input == "" {
		return k.build(0, k.canonical), nil
	}

	text := strings.TrimSpace(norm.NFKC.String(input))

	if mantissa, token, ok := split(text, k.scanToken); ok {
		if k.foldCase {
			// a Caser keeps state, so it is not shared between calls
			token = cases.Fold().String(token)
		}
		if unit, found := k.units[token]; found {
			return k.number(input, mantissa, unit)
		}
	}

	// no known unit: the whole string must be a bare number
	return k.number(input, text, k.canonical)
}

func (k *kindParser[U, Q]) number(input, text string, unit U) (Q, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var zero Q
		return zero, &NumericParseError{Kind: k.kind, Input: input, Text: text, Err: err}
	}
	return k.build(v, unit), nil
}

// ParseTemperature reads a temperature such as "20C", "68 f" or "293.15K".
// A bare number is Celsius.
func ParseTemperature(s string) (Temperature, error) {
	return temperatureParser.parse(s)
}

// ParseVolume reads a volume such as "5gal", "330 ml" or "2 cm3". Tokens are
// case-insensitive and a bare number is litres.
func ParseVolume(s string) (Volume, error) {
	return volumeParser.parse(s)
}

// ParseMass reads a mass such as "2.5kg", "123 µg" or "1T". Tokens are case
// sensitive ("T" is metric tons) and a bare number is grams.
func ParseMass(s string) (Mass, error) {
	return massParser.parse(s)
}

// Parse reads s as a quantity of kind k, which must be one of Kinds().
func Parse(k Kind, s string) (Quantity, error) {
	switch k {
	case KindTemperature:
		t, err := ParseTemperature(s)
		if err != nil {
			return nil, err
		}
		return t, nil
	case KindVolume:
		v, err := ParseVolume(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	case KindMass:
		m, err := ParseMass(s)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	panic(fmt.Sprintf("parser: unknown quantity kind %d", k))
}
