package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/easy-hunger/internal/config"
	"github.com/appengine-ltd/easy-hunger/internal/world"
)

func newBiomeCmd(g *globals) *cobra.Command {
	var (
		seed int64
		at   []string
	)
	cmd := &cobra.Command{
		Use:   "biome [name]...",
		Short: "Show the drain multipliers for biome names or world positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			type row struct{ label, biome string }
			var rows []row
			for _, name := range args {
				rows = append(rows, row{label: name, biome: name})
			}
			if len(at) > 0 {
				gen := world.DefaultGenConfig()
				gen.Seed = seed
				w := world.Generate(gen)
				for _, coords := range at {
					pos, err := parseXZ(coords)
					if err != nil {
						return err
					}
					biome, err := w.BiomeNameAt(pos)
					if err != nil {
						return fmt.Errorf("position %s: %w", coords, err)
					}
					rows = append(rows, row{label: coords, biome: biome})
				}
			}
			if len(rows) == 0 {
				return fmt.Errorf("give at least one biome name or --at position")
			}

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Query", "Biome", "Hunger", "Hunger rule", "Thirst", "Thirst rule"}),
			)
			for _, r := range rows {
				_ = table.Append([]string{
					r.label, r.biome,
					fmt.Sprintf("x%.2f", cfg.Biomes.HungerMultiplier(r.biome)),
					matchLabel(cfg.Biomes, cfg.Biomes.HungerModifiers, r.biome),
					fmt.Sprintf("x%.2f", cfg.Biomes.ThirstMultiplier(r.biome)),
					matchLabel(cfg.Biomes, cfg.Biomes.ThirstModifiers, r.biome),
				})
			}
			return table.Render()
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "world seed for --at lookups")
	cmd.Flags().StringArrayVar(&at, "at", nil, "x,z positions to sample in the generated world")
	return cmd
}

// matchLabel explains which rule produced a multiplier.
func matchLabel(c config.BiomeModifiersConfig, table config.ModifierTable, biome string) string {
	switch {
	case !c.Enabled:
		return "disabled"
	case biome == "":
		return "unknown biome"
	}
	if _, ok := table.Get(biome); ok {
		return "exact"
	}
	if m, ok := table.Match(biome); ok {
		return "keyword " + m.Keyword
	}
	return "default"
}

func parseXZ(s string) (world.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return world.Vec3{}, fmt.Errorf("position %q: want x,z", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return world.Vec3{}, fmt.Errorf("position %q: %w", s, err)
	}
	z, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return world.Vec3{}, fmt.Errorf("position %q: %w", s, err)
	}
	return world.Vec3{X: x, Z: z}, nil
}
