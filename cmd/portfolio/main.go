package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JuniorAww/junioraww.github.io/internal/app"
	"github.com/JuniorAww/junioraww.github.io/internal/asset"
	"github.com/JuniorAww/junioraww.github.io/internal/config"
	"github.com/JuniorAww/junioraww.github.io/internal/env"
	"github.com/JuniorAww/junioraww.github.io/internal/graphics"
	"github.com/JuniorAww/junioraww.github.io/internal/logger"
)

var (
	configPath string
	envPath    string
	assetPath  string
	fullscreen bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Animated fox that follows the mouse",
		Long: `portfolio - animated fox that follows the mouse

Move the mouse to lead the fox across the ground. ESC opens the terminal;
type "cmd help" for runtime commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.Path, "Path to the YAML config file")
	cmd.Flags().StringVar(&envPath, "env", ".env", "Path to a .env file with PORTFOLIO_* overrides")
	cmd.Flags().StringVar(&assetPath, "asset", "", "Animated model to load (overrides config)")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "Start fullscreen")

	infoCmd := &cobra.Command{
		Use:   "info <model.glb|model.gltf>",
		Short: "List the animation clips in a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	cmd.AddCommand(infoCmd)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	log := logger.New()
	if err := env.Load(envPath); err != nil {
		log.Errorf("env: %v", err)
	}
	prefs, err := config.Load(configPath)
	if err != nil {
		log.Errorf("%v (using defaults)", err)
	}
	prefs.ApplyEnv()
	if cmd.Flags().Changed("asset") {
		prefs.Asset.Path = assetPath
	}
	if cmd.Flags().Changed("fullscreen") {
		prefs.Window.Fullscreen = fullscreen
	}
	if err := prefs.Validate(); err != nil {
		return err
	}

	a := app.New(prefs, configPath, log)
	graphics.Run(a.Window(), a.Update, a.Draw)
	return nil
}

func runInfo(path string) error {
	info, err := asset.Read(path)
	if err != nil {
		return err
	}
	fmt.Printf("File:   %s\n", info.Path)
	fmt.Printf("Clips:  %d\n", len(info.Clips))
	for _, c := range info.Clips {
		fmt.Printf("  [%d] %-16s %6.2fs\n", c.Index, c.Name, c.Duration)
	}
	return nil
}
