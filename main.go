// Command galaxygen generates a game universe from a YAML configuration and
// writes it to a sqlite database. The galaxy package is the real product;
// this is the operator tool around it.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"galaxygen/galaxy"
	"galaxygen/internal/log"
	"galaxygen/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	configPath := flag.String("config", "", "YAML generation config (optional; defaults used when omitted)")
	outPath := flag.String("out", "universe.db", "output sqlite database")
	seed := flag.Int64("seed", 0, "override the config seed")
	sectors := flag.Int("sectors", 500, "sector count when no config file is given")
	ports := flag.Int("ports", 100, "target port count when no config file is given")
	logFile := flag.String("log", "", "write logs to this file instead of stdout")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("galaxygen %s (%s, %s)\n", version, commit, date)
		return
	}

	if *logFile != "" {
		if err := log.SetFileOutput(*logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not log to %s: %v\n", *logFile, err)
		}
	}

	cfg, err := loadConfig(*configPath, *sectors, *ports)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	u, err := galaxy.Generate(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	st, err := store.Open(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()
	if err := st.SaveUniverse(u); err != nil {
		fmt.Fprintf(os.Stderr, "save universe: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Universe generated: %d sectors, %d warp links, %d ports (shortfall %d, repairs %d)\n",
		cfg.SectorCount, len(u.Edges), len(u.Ports), u.Status.PortShortfall, u.Status.RepairPassesUsed)
	fmt.Printf("Saved to %s\n", *outPath)
}

// loadConfig reads a GenerationConfig from YAML, or builds a default one
// when no path is given. Fields the file omits fall back to defaults.
func loadConfig(path string, sectors, ports int) (galaxy.GenerationConfig, error) {
	if path == "" {
		return galaxy.DefaultConfig(1, sectors, ports), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return galaxy.GenerationConfig{}, err
	}
	var cfg galaxy.GenerationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return galaxy.GenerationConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.MaxDegree == 0 {
		cfg.MaxDegree = 6
	}
	if len(cfg.DensityBands) == 0 {
		def := galaxy.DefaultConfig(cfg.Seed, cfg.SectorCount, cfg.PortCount)
		cfg.DensityBands = def.DensityBands
	}
	return cfg, nil
}
