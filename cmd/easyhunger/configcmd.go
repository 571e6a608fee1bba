package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/easy-hunger/internal/config"
)

func newConfigCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the mod configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := g.env.ConfigDir
			if !force {
				for _, name := range []string{config.ModFile, config.BiomesFile, config.FoodsFile, config.DrinksFile} {
					_, err := os.Stat(filepath.Join(dir, name))
					if err == nil {
						return fmt.Errorf("%s already exists; use --force to overwrite", filepath.Join(dir, name))
					}
					if !errors.Is(err, os.ErrNotExist) {
						return err
					}
				}
			}
			if err := config.Save(dir, config.Default()); err != nil {
				return err
			}
			green := color.New(color.FgGreen, color.Bold)
			green.Fprintf(cmd.OutOrStdout(), "✓ wrote default config to %s\n", dir)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Load and validate the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config dir:       %s\n", g.env.ConfigDir)
			fmt.Fprintf(out, "biome modifiers:  %v (%d hunger, %d thirst keywords)\n",
				cfg.Biomes.Enabled, len(cfg.Biomes.HungerModifiers), len(cfg.Biomes.ThirstModifiers))
			fmt.Fprintf(out, "foods / drinks:   %d / %d\n", len(cfg.Foods), len(cfg.Drinks))
			fmt.Fprintf(out, "well-fed at:      %.0f of %.0f hunger, %.0f thirst\n",
				cfg.Mod.WellFedThreshold, cfg.Mod.MaxHunger, cfg.Mod.MaxThirst)
			color.New(color.FgGreen).Fprintln(out, "✓ configuration is valid")
			return nil
		},
	}

	cmd.AddCommand(initCmd, checkCmd)
	return cmd
}
