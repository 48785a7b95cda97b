// Package calc holds the alcohol arithmetic used by the abv_abw command. It
// works on plain numbers; measurements are parsed by the parser package.
package calc

// EthanolDensity is the density of ethanol in g/cm³ at 20 °C.
const EthanolDensity = 0.78945

// abwPerABV converts ABV to ABW for a beer of typical final gravity.
const abwPerABV = 0.79336

func ABVToABW(abv float64) float64 {
	return abv * abwPerABV
}

func ABWToABV(abw float64) float64 {
	return abw / abwPerABV
}

// ABVToABWDensity converts ABV to ABW for a beer of the given total density
// in g/cm³.
func ABVToABWDensity(abv, density float64) float64 {
	return abv * EthanolDensity / density
}

// ABWToABVDensity is the inverse of ABVToABWDensity.
func ABWToABVDensity(abw, density float64) float64 {
	return abw * density / EthanolDensity
}

// AlcoholVolume returns the millilitres of alcohol in totalMillilitres of beer.
func AlcoholVolume(totalMillilitres, abv float64) float64 {
	return totalMillilitres * abv / 100
}

// AlcoholWeight returns the grams of alcohol in totalMillilitres of beer.
func AlcoholWeight(totalMillilitres, abv float64) float64 {
	return AlcoholVolume(totalMillilitres, abv) * EthanolDensity
}
