// Command easyhunger runs and inspects the survival mod outside the game
// server: a bot-driven simulation, biome and item lookups, and config setup.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/easy-hunger/internal/config"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type globals struct {
	env      config.Env
	logLevel string
	log      *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	env, envErr := config.ParseEnv()
	g.env = env

	root := &cobra.Command{
		Use:           "easyhunger",
		Short:         "Hunger and thirst survival mod tools",
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			log, err := newLogger(g.logLevel)
			if err != nil {
				return err
			}
			g.log = log
			slog.SetDefault(log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.env.ConfigDir, "config-dir", g.env.ConfigDir, "config directory (EASYHUNGER_CONFIG_DIR)")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", g.env.LogLevel, "debug, info, warn or error (EASYHUNGER_LOG_LEVEL)")

	root.AddCommand(
		newSimulateCmd(g),
		newBiomeCmd(g),
		newItemCmd(g),
		newConfigCmd(g),
	)
	return root
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig reads the config directory and applies env overrides.
func (g *globals) loadConfig() (config.Config, error) {
	cfg, err := config.Load(g.env.ConfigDir)
	if err != nil {
		return config.Config{}, err
	}
	g.env.Apply(&cfg)
	return cfg, nil
}
