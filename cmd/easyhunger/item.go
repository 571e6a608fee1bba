package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/easy-hunger/internal/items"
)

func newItemCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>...",
		Short: "Show the food and drink value of item ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			foods := items.NewTable(cfg.Foods)
			drinks := items.NewTable(cfg.Drinks)

			out := cmd.OutOrStdout()
			table := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Item", "Normalized", "Food", "Drink"}),
			)
			var unknown []string
			for _, raw := range args {
				id := items.NormalizeID(raw)
				if !foods.Has(id) && !drinks.Has(id) {
					unknown = append(unknown, id)
				}
				_ = table.Append([]string{raw, id, restoreCell(foods, id), restoreCell(drinks, id)})
			}
			_ = table.Render()

			warn := color.New(color.FgYellow)
			for _, id := range unknown {
				s, ok := foods.Suggest(id)
				if !ok {
					s, ok = drinks.Suggest(id)
				}
				if ok {
					warn.Fprintf(out, "%s is not configured; did you mean %s?\n", id, s)
				} else {
					warn.Fprintf(out, "%s is not configured; the default restore applies\n", id)
				}
			}
			return nil
		},
	}
}

func restoreCell(t *items.Table, id string) string {
	if !t.Has(id) {
		return "-"
	}
	return fmt.Sprintf("%.0f", t.Value(id))
}
