package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MattSimmons1/brewcalc/parser"
	"github.com/spf13/cobra"
)

type tokenInfo struct {
	Token string `json:"token" yaml:"token"`
	Unit  string `json:"unit" yaml:"unit"`
}

type unitTable struct {
	Kind    string      `json:"kind" yaml:"kind"`
	Default string      `json:"default" yaml:"default"`
	Tokens  []tokenInfo `json:"tokens" yaml:"tokens"`
}

type unitTables struct {
	Kinds []unitTable `json:"kinds" yaml:"kinds"`
}

func (t *unitTables) text() string {
	var b strings.Builder
	for i, table := range t.Kinds {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (default %s)\n", table.Kind, table.Default)
		for _, token := range table.Tokens {
			fmt.Fprintf(&b, "  %-4s %s\n", token.Token, token.Unit)
		}
	}
	return b.String()
}

func newUnitTable(k parser.Kind) unitTable {
	table := unitTable{Kind: k.String(), Default: parser.Symbols(k)[0]}
	for token, unit := range parser.Tokens(k) {
		table.Tokens = append(table.Tokens, tokenInfo{Token: token, Unit: unit})
	}
	sort.Slice(table.Tokens, func(i, j int) bool {
		return table.Tokens[i].Token < table.Tokens[j].Token
	})
	return table
}

func (a *app) unitsCmd() (unitsCmd *cobra.Command) {
	unitsCmd = &cobra.Command{
		Use:   "units [KIND]",
		Short: "Lists the unit tokens recognised for each kind of measurement",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			kinds := parser.Kinds()
			if len(args) == 1 {
				kind, err := parseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []parser.Kind{kind}
			}

			r := &unitTables{}
			for _, k := range kinds {
				r.Kinds = append(r.Kinds, newUnitTable(k))
			}
			return render(c.OutOrStdout(), a.output, r)
		},
	}
	return
}
