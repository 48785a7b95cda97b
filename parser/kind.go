// Package parser reads human-entered measurements such as "5gal", "20 C" or
// "123µg" into typed quantities.
//
// Every quantity kind has one canonical unit (Celsius, litres, grams). A bare
// number is read in that unit, and so is an empty string, which is zero. The
// only error ever returned is *NumericParseError: an unknown unit token is
// not an error in itself, the whole string is then read as a bare number.
package parser

// Kind identifies which physical quantity a string is parsed as.
type Kind int

const (
	KindTemperature Kind = iota
	KindVolume
	KindMass
)

var kindNames = [...]string{
	KindTemperature: "temperature",
	KindVolume:      "volume",
	KindMass:        "mass",
}

// Kinds lists every quantity kind in display order.
func Kinds() []Kind {
	return []Kind{KindTemperature, KindVolume, KindMass}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Quantity is the read-only view shared by Temperature, Volume and Mass.
type Quantity interface {
	Kind() Kind
	// Canonical returns the value in the kind's canonical unit.
	Canonical() float64
	// Values returns the value in every unit of the kind, keyed by unit symbol.
	Values() map[string]float64
}

// unitInfo describes one unit of a linear kind. factor is the number of
// canonical units in one of this unit.
type unitInfo struct {
	symbol string
	name   string
	factor float64
}

func linearValues(canonical float64, units []unitInfo) map[string]float64 {
	values := make(map[string]float64, len(units))
	for _, u := range units {
		values[u.symbol] = canonical / u.factor
	}
	return values
}

// Symbols returns the unit symbols of a kind in display order, canonical first.
func Symbols(k Kind) []string {
	var symbols []string
	switch k {
	case KindTemperature:
		for _, u := range temperatureUnits {
			symbols = append(symbols, u.symbol)
		}
	case KindVolume:
		for _, u := range volumeUnits {
			symbols = append(symbols, u.symbol)
		}
	case KindMass:
		for _, u := range massUnits {
			symbols = append(symbols, u.symbol)
		}
	}
	return symbols
}

// Tokens returns every recognised unit token of a kind mapped to the long
// name of the unit it selects.
func Tokens(k Kind) map[string]string {
	tokens := make(map[string]string)
	switch k {
	case KindTemperature:
		for token, u := range temperatureTokens {
			tokens[token] = u.String()
		}
	case KindVolume:
		for token, u := range volumeTokens {
			tokens[token] = u.String()
		}
	case KindMass:
		for token, u := range massTokens {
			tokens[token] = u.String()
		}
	}
	return tokens
}
