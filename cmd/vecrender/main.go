package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"vec3f/internal/batch"
	"vec3f/internal/config"
	"vec3f/internal/imageio"
	"vec3f/internal/kernel"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	testN := flag.Int("test", 0, "Render only first N scenes for testing")
	workers := flag.Int("workers", 0, "Number of scene worker goroutines (default: NumCPU)")
	lanes := flag.Int("lanes", 0, "Number of kernel lanes per launch (default: NumCPU)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: webp, tga or png (default: webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		Workers:   *workers,
		Lanes:     *lanes,
	})

	if !imageio.Supported(cfg.Format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want one of %v)\n", cfg.Format, imageio.Formats)
		os.Exit(1)
	}

	scenes := cfg.Scenes
	if *testN > 0 && *testN < len(scenes) {
		scenes = scenes[:*testN]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dev := kernel.NewDevice(cfg.Lanes)

	fmt.Printf("Vec3f preview renderer → %s\n", cfg.Format)
	fmt.Printf("Scenes: %d, Workers: %d, Device: %s\n", len(scenes), cfg.Workers, dev.Describe())
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(ctx, batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.Format,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Device:      dev,
	}, scenes)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
			continue
		}
		failed++
		fmt.Printf("  %s: %s\n", r.Name, r.Error)
	}
	fmt.Printf("Rendered: %d/%d\n", success, len(scenes))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
