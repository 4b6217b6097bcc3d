package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/chrissnell/windstats/internal/app"
	"github.com/chrissnell/windstats/internal/log"
	"github.com/chrissnell/windstats/pkg/config"
)

const version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

func main() {
	cfgFile := flag.String("config", "", "Path to YAML configuration file (flags override file values)")
	input := flag.String("input", "", "Path to the hourly capacity-factor CSV")
	skipRows := flag.Int("skip-rows", 0, "Metadata preamble lines before the CSV header")
	countries := flag.String("countries", "", "Comma-separated country column codes, e.g. DE,DK,NL")
	ratedPower := flag.Float64("rated-power", 0, "Nominal turbine rating in kW")
	outputDir := flag.String("output", "", "Directory for CSV artifacts")
	resultsDB := flag.String("results-db", "", "Optional SQLite results database path")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("windstats %s\n", version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Flags set on the command line override file and default values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputFile = *input
		case "skip-rows":
			cfg.SkipRows = *skipRows
		case "countries":
			cfg.Countries = splitCodes(*countries)
		case "rated-power":
			cfg.RatedPowerKW = *ratedPower
		case "output":
			cfg.OutputDir = *outputDir
		case "results-db":
			cfg.ResultsDB = *resultsDB
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	// Create and run the application
	application := app.New(cfg, log.GetSugaredLogger())
	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.NewYAMLProvider(path).LoadConfig()
}

func splitCodes(s string) []string {
	var out []string
	for _, code := range strings.Split(s, ",") {
		if code = strings.TrimSpace(code); code != "" {
			out = append(out, code)
		}
	}
	return out
}
