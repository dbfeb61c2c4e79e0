package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// gameplayFlags are the per-run overrides shared by play and serve.
type gameplayFlags struct {
	difficulty string
	speed      int
	area       int
	static     bool
}

func (f *gameplayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().IntVar(&f.speed, "speed", 0, "Initial speed in ticks per second (1-100)")
	cmd.Flags().IntVar(&f.area, "area", 0, "Map area (columns; rows = area*2/3)")
	cmd.Flags().BoolVar(&f.static, "static", false, "Static level: no level or speed progression")
}

// resolveConfig loads the config file, then applies the difficulty preset
// and the flags the user set explicitly.
func resolveConfig(path string, f gameplayFlags, changed func(name string) bool) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(f.difficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if changed("speed") {
		cfg.Gameplay.Speed = f.speed
	}
	if changed("area") {
		cfg.Gameplay.Area = f.area
	}
	if changed("static") {
		cfg.Gameplay.StaticLevel = f.static
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

var configFlags gameplayFlags

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The file is looked up in this order: --config, ~/.snake/config.yaml,
./configs/snake.yaml, then the built-in defaults. Difficulty and flag
overrides are applied on top.

Examples:
  snake config
  snake config --difficulty hard > ~/.snake/config.yaml`,
	Run: runConfig,
}

func init() {
	configFlags.register(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := resolveConfig(flagConfig, configFlags, cmd.Flags().Changed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
