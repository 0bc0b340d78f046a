package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"ibox/app"
	"ibox/config"
	"ibox/device/tcell"
	"ibox/events"
	"ibox/lifecycle"
	"ibox/stream"
)

// Build information set via ldflags
var version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:          "ibox",
	Short:        "Drag and resize a box in the terminal",
	Long:         `A terminal playground for pointer driven interaction: grab the box to move it, grab an edge or corner to resize it.`,
	Version:      version,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (TOML)")
	flags.Float64("threshold", config.DefaultConfig().EdgeThreshold, "edge proximity threshold in cells")
	flags.String("title", "", "box title")
	flags.String("log", "", "log file")
}

func run(cmd *cobra.Command, _ []string) error {
	manager := config.NewManager()
	if configFile != "" {
		manager.SetFile(configFile)
	}

	flags := cmd.Flags()
	v := manager.Viper()
	if err := v.BindPFlag("edge_threshold", flags.Lookup("threshold")); err != nil {
		return err
	}
	if err := v.BindPFlag("box.title", flags.Lookup("title")); err != nil {
		return err
	}
	if err := v.BindPFlag("log", flags.Lookup("log")); err != nil {
		return err
	}

	if err := manager.Load(); err != nil {
		return err
	}
	cfg := manager.Get()

	log.SetFlags(0)
	if cfg.Log != "" {
		logFile, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()
	defer func() {
		output.SetForegroundColor(fg)
		output.SetBackgroundColor(bg)
	}()

	lc := lifecycle.New()
	evs := stream.NewStream[events.Event]("ui")

	device, err := tcell.NewDevice(lc, evs)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	manager.OnConfigChange(func(*config.Config) {
		evs.Push(events.ConfigChanged{})
	})
	manager.Watch()

	state := app.Run(manager, device, evs)

	device.Stop()
	lc.Stop()

	app.Goodbye(os.Stdout, state)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
