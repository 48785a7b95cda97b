package parser

// MassUnit is a unit of mass.
type MassUnit int

const (
	Grams MassUnit = iota
	Micrograms
	Milligrams
	Kilograms
	MetricTons
	Carats
	Grains
	Pennyweights
	Ounces
	Pounds
	Stones
)

var massUnits = [...]unitInfo{
	Grams:        {"g", "grams", 1},
	Micrograms:   {"ug", "micrograms", 1e-6},
	Milligrams:   {"mg", "milligrams", 1e-3},
	Kilograms:    {"kg", "kilograms", 1e3},
	MetricTons:   {"T", "metric tons", 1e6},
	Carats:       {"ct", "carats", 0.2},
	Grains:       {"gr", "grains", 0.06479891},
	Pennyweights: {"dwt", "pennyweights", 1.55517384},
	Ounces:       {"oz", "ounces", 28.349523125},
	Pounds:       {"lbs", "pounds", 453.59237},
	Stones:       {"st", "stones", 6350.29318},
}

// Mass tokens are matched case sensitively so that "T" (metric tons) does
// not collide with lower case tokens.
var massTokens = map[string]MassUnit{
	"ug":  Micrograms,
	"μg":  Micrograms,
	"mg":  Milligrams,
	"ct":  Carats,
	"g":   Grams,
	"kg":  Kilograms,
	"T":   MetricTons,
	"gr":  Grains,
	"dwt": Pennyweights,
	"oz":  Ounces,
	"st":  Stones,
	"lbs": Pounds,
}

// info falls back to grams for a unit outside the table.
func (u MassUnit) info() unitInfo {
	if u < 0 || int(u) >= len(massUnits) {
		u = Grams
	}
	return massUnits[u]
}

func (u MassUnit) Symbol() string { return u.info().symbol }
func (u MassUnit) String() string { return u.info().name }

// Mass is stored in grams.
type Mass struct {
	grams float64
}

func NewMass(v float64, u MassUnit) Mass {
	return Mass{v * u.info().factor}
}

// In returns the mass expressed in u.
func (m Mass) In(u MassUnit) float64 {
	return m.grams / u.info().factor
}

func (m Mass) Grams() float64 { return m.grams }
func (m Mass) Kilograms() float64 { return m.In(Kilograms) }

func (m Mass) Kind() Kind { return KindMass }
func (m Mass) Canonical() float64 { return m.grams }
func (m Mass) Values() map[string]float64 { return linearValues(m.grams, massUnits[:]) }
