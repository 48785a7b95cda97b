package main

import (
	"fmt"
	"strings"

	"github.com/MattSimmons1/brewcalc/calc"
	"github.com/MattSimmons1/brewcalc/parser"
	"github.com/spf13/cobra"
)

type abvResult struct {
	ABV                float64  `json:"abv" yaml:"abv"`
	ABW                float64  `json:"abw" yaml:"abw"`
	AlcoholGrams       *float64 `json:"alcohol_g,omitempty" yaml:"alcohol_g,omitempty"`
	AlcoholMillilitres *float64 `json:"alcohol_ml,omitempty" yaml:"alcohol_ml,omitempty"`

	reverse bool
}

func (r *abvResult) text() string {
	var b strings.Builder
	if r.reverse {
		fmt.Fprintf(&b, "ABV: %.3f%%\n", r.ABV)
	} else {
		fmt.Fprintf(&b, "ABW: %.3f%%\n", r.ABW)
	}
	if r.AlcoholGrams != nil {
		fmt.Fprintf(&b, "Alcohol: %.3f g\n", *r.AlcoholGrams)
	}
	if r.AlcoholMillilitres != nil {
		fmt.Fprintf(&b, "Alcohol: %.3f ml\n", *r.AlcoholMillilitres)
	}
	return b.String()
}

func (a *app) abvCmd() (abvCmd *cobra.Command) {
	var (
		percent      float64
		totalVolume  string
		totalDensity float64
		reverse      bool
	)

	abvCmd = &cobra.Command{
		Use:   "abv_abw",
		Short: "Calculates Alcohol by Weight (ABW) from Alcohol by Volume (ABV) and vice versa",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			withDensity := c.Flags().Changed("total_density")
			if withDensity && totalDensity <= 0 {
				return fmt.Errorf("total density must be positive, got %v", totalDensity)
			}

			r := &abvResult{reverse: reverse}
			switch {
			case reverse && withDensity:
				r.ABW, r.ABV = percent, calc.ABWToABVDensity(percent, totalDensity)
			case reverse:
				r.ABW, r.ABV = percent, calc.ABWToABV(percent)
			case withDensity:
				r.ABV, r.ABW = percent, calc.ABVToABWDensity(percent, totalDensity)
			default:
				r.ABV, r.ABW = percent, calc.ABVToABW(percent)
			}

			// quantity of alcohol
			if c.Flags().Changed("total_volume") {
				volume, err := parser.ParseVolume(totalVolume)
				if err != nil {
					return fmt.Errorf("total volume: %w", err)
				}
				millilitres := volume.Millilitres()
				a.log.Debug("parsed total volume", "input", totalVolume, "ml", millilitres)

				if reverse {
					alcohol := calc.AlcoholVolume(millilitres, r.ABV)
					r.AlcoholMillilitres = &alcohol
				} else {
					alcohol := calc.AlcoholWeight(millilitres, r.ABV)
					r.AlcoholGrams = &alcohol
				}
			}

			return render(c.OutOrStdout(), a.output, r)
		},
	}

	abvCmd.Flags().Float64VarP(&percent, "percent", "p", 0, "'From' alcohol percentage")
	abvCmd.Flags().StringVarP(&totalVolume, "total_volume", "v", "",
		"Total beer volume, e.g. 5gal or 19 l (litres if no unit)")
	abvCmd.Flags().Float64VarP(&totalDensity, "total_density", "d", 0, "Total density of beer in g/cm³")
	abvCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "Calculates ABW to ABV")
	_ = abvCmd.MarkFlagRequired("percent")
	return
}
