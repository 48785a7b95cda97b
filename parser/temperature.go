package parser

// TemperatureUnit is a unit of temperature.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
	Rankine
)

var temperatureUnits = [...]struct{ symbol, name string }{
	Celsius:    {"C", "celsius"},
	Fahrenheit: {"F", "fahrenheit"},
	Kelvin:     {"K", "kelvin"},
	Rankine:    {"R", "rankine"},
}

// keys are case folded
var temperatureTokens = map[string]TemperatureUnit{
	"f": Fahrenheit,
	"c": Celsius,
	"k": Kelvin,
	"r": Rankine,
}

func (u TemperatureUnit) Symbol() string { return temperatureUnits[u.canonicalize()].symbol }
func (u TemperatureUnit) String() string { return temperatureUnits[u.canonicalize()].name }

// canonicalize maps a unit outside the table to Celsius.
func (u TemperatureUnit) canonicalize() TemperatureUnit {
	if u < 0 || int(u) >= len(temperatureUnits) {
		return Celsius
	}
	return u
}

const absoluteZero = 273.15

// Temperature is stored in Celsius.
type Temperature struct {
	celsius float64
}

func NewTemperature(v float64, u TemperatureUnit) Temperature {
	switch u {
	case Fahrenheit:
		return Temperature{(v - 32) * 5 / 9}
	case Kelvin:
		return Temperature{v - absoluteZero}
	case Rankine:
		return Temperature{v*5/9 - absoluteZero}
	default:
		return Temperature{v}
	}
}

func (t Temperature) Celsius() float64 { return t.celsius }
func (t Temperature) Fahrenheit() float64 { return t.celsius*9/5 + 32 }
func (t Temperature) Kelvin() float64 { return t.celsius + absoluteZero }
func (t Temperature) Rankine() float64 { return (t.celsius + absoluteZero) * 9 / 5 }

// In returns the temperature expressed in u.
func (t Temperature) In(u TemperatureUnit) float64 {
	switch u {
	case Fahrenheit:
		return t.Fahrenheit()
	case Kelvin:
		return t.Kelvin()
	case Rankine:
		return t.Rankine()
	default:
		return t.Celsius()
	}
}

func (t Temperature) Kind() Kind { return KindTemperature }
func (t Temperature) Canonical() float64 { return t.celsius }

func (t Temperature) Values() map[string]float64 {
	values := make(map[string]float64, len(temperatureUnits))
	for u, info := range temperatureUnits {
		values[info.symbol] = t.In(TemperatureUnit(u))
	}
	return values
}
