package parser

// VolumeUnit is a unit of volume. US customary units are used for gallons,
// pints, cups, teaspoons and drams.
type VolumeUnit int

const (
	Litres VolumeUnit = iota
	Millilitres
	CubicCentimetres
	CubicMetres
	CubicInches
	CubicFeet
	CubicYards
	Gallons
	Pints
	Cups
	Teaspoons
	Drams
	Drops
)

var volumeUnits = [...]unitInfo{
	Litres:           {"l", "litres", 1},
	Millilitres:      {"ml", "millilitres", 0.001},
	CubicCentimetres: {"cm3", "cubic centimetres", 0.001},
	CubicMetres:      {"m3", "cubic metres", 1000},
	CubicInches:      {"in3", "cubic inches", 0.016387064},
	CubicFeet:        {"ft3", "cubic feet", 28.316846592},
	CubicYards:       {"yd3", "cubic yards", 764.554857984},
	Gallons:          {"gal", "gallons", 3.785411784},
	Pints:            {"p", "pints", 0.473176473},
	Cups:             {"cup", "cups", 0.2365882365},
	Teaspoons:        {"tsp", "teaspoons", 0.00492892159375},
	Drams:            {"dr", "drams", 0.0036966911953125},
	Drops:            {"μl", "drops", 0.00005},
}

// keys are case folded
var volumeTokens = map[string]VolumeUnit{
	"cm3": CubicCentimetres,
	"ft3": CubicFeet,
	"yd3": CubicYards,
	"in3": CubicInches,
	"gal": Gallons,
	"cup": Cups,
	"tsp": Teaspoons,
	"ml":  Millilitres,
	"m3":  CubicMetres,
	"μl":  Drops,
	"dr":  Drams,
	"l":   Litres,
	"p":   Pints,
	"ʒ":   Pints,
}

// info falls back to litres for a unit outside the table.
func (u VolumeUnit) info() unitInfo {
	if u < 0 || int(u) >= len(volumeUnits) {
		u = Litres
	}
	return volumeUnits[u]
}

func (u VolumeUnit) Symbol() string { return u.info().symbol }
func (u VolumeUnit) String() string { return u.info().name }

// Volume is stored in litres.
type Volume struct {
	litres float64
}

func NewVolume(v float64, u VolumeUnit) Volume {
	return Volume{v * u.info().factor}
}

// In returns the volume expressed in u.
func (v Volume) In(u VolumeUnit) float64 {
	return v.litres / u.info().factor
}

func (v Volume) Litres() float64 { return v.litres }
func (v Volume) Millilitres() float64 { return v.In(Millilitres) }
func (v Volume) Gallons() float64 { return v.In(Gallons) }

func (v Volume) Kind() Kind { return KindVolume }
func (v Volume) Canonical() float64 { return v.litres }
func (v Volume) Values() map[string]float64 { return linearValues(v.litres, volumeUnits[:]) }
