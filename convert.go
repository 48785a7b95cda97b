package main

import (
	"fmt"
	"strings"

	"github.com/MattSimmons1/brewcalc/parser"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"
)

var kindAliases = map[string]parser.Kind{
	"temperature": parser.KindTemperature,
	"temp":        parser.KindTemperature,
	"volume":      parser.KindVolume,
	"vol":         parser.KindVolume,
	"mass":        parser.KindMass,
	"weight":      parser.KindMass,
}

func parseKind(s string) (parser.Kind, error) {
	if k, ok := kindAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown quantity kind %q, want temperature, volume or mass", s)
}

type unitValue struct {
	Unit  string  `json:"unit" yaml:"unit"`
	Value float64 `json:"value" yaml:"value"`
}

type conversion struct {
	Kind   string      `json:"kind" yaml:"kind"`
	Input  string      `json:"input" yaml:"input"`
	Values []unitValue `json:"values" yaml:"values"`
	Script interface{} `json:"script,omitempty" yaml:"script,omitempty"`

	scripted bool
}

func (c *conversion) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %q\n", c.Kind, c.Input)
	for _, v := range c.Values {
		fmt.Fprintf(&b, "  %-5s %.6g\n", v.Unit, v.Value)
	}
	if c.scripted {
		if c.Script == nil {
			fmt.Fprintln(&b, "  script null")
		} else {
			fmt.Fprintf(&b, "  script %v\n", c.Script)
		}
	}
	return b.String()
}

func (a *app) convertCmd() (convertCmd *cobra.Command) {
	var (
		to     string
		script string
	)

	convertCmd = &cobra.Command{
		Use:   "convert KIND VALUE",
		Short: "Reads a measurement such as 5gal, 20C or 2.5kg and shows it in other units",
		Long: `Reads a measurement such as 5gal, 20C or 2.5kg and shows it in other units.

KIND is temperature, volume or mass. A number without a unit is read as
Celsius, litres or grams, and an empty VALUE is zero. Use "brewcalc units"
to list the recognised unit tokens.`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			q, err := parser.Parse(kind, args[1])
			if err != nil {
				return err
			}
			a.log.Debug("parsed measurement", "kind", kind, "input", args[1], "canonical", q.Canonical())

			values := q.Values()
			symbols := parser.Symbols(kind)
			if to != "" {
				to = norm.NFKC.String(to)
				if _, ok := values[to]; !ok {
					return fmt.Errorf("unknown %s unit %q, want one of %v", kind, to, symbols)
				}
				symbols = []string{to}
			}

			r := &conversion{Kind: kind.String(), Input: args[1]}
			for _, symbol := range symbols {
				r.Values = append(r.Values, unitValue{Unit: symbol, Value: values[symbol]})
			}

			if script != "" {
				datum := make(map[string]interface{}, len(values))
				for symbol, v := range values {
					datum[symbol] = v
				}
				r.Script, err = runScript(script, datum)
				if err != nil {
					return err
				}
				r.scripted = true
				if r.Script == nil {
					a.log.Warn("script returned no number", "script", script)
				}
			}

			return render(c.OutOrStdout(), a.output, r)
		},
	}

	convertCmd.Flags().StringVarP(&to, "to", "t", "", "only show this unit, e.g. ml or F")
	convertCmd.Flags().StringVarP(&script, "script", "s", "",
		"arrow function over the unit values, e.g. \"v => v.ml / 355\"")
	return
}
