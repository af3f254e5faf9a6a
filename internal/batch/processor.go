package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"vec3f/internal/config"
	"vec3f/internal/imageio"
	"vec3f/internal/kernel"
	"vec3f/internal/mathutil"
	"vec3f/internal/postprocess"
	"vec3f/internal/raster"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Format      string
	RenderSize  int
	Supersample int
	Workers     int
	Device      *kernel.Device
}

// Result holds the outcome of rendering one scene.
type Result struct {
	Name    string
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// Run renders all scenes using a worker pool. Scene names are sanitized
// first, so every result gets its own image inside OutputDir.
func Run(ctx context.Context, cfg Config, scenes []config.Scene) []Result {
	scenes = config.SanitizeNames(scenes)
	total := len(scenes)
	results := make([]Result, total)
	var processed atomic.Int64

	if cfg.Device == nil {
		cfg.Device = kernel.NewDevice(0)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	sceneChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(ctx, cfg, scenes[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range scenes {
		sceneChan <- i
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

// LightDir returns the scene's main light direction.
func LightDir(s config.Scene) mathutil.Vec3f {
	if dir := mathutil.Vec3f(s.Light); dir.SquareLength() > 0 {
		return dir
	}
	return mathutil.FromSpherical(s.LightAzimuth, s.LightElevation)
}

func processScene(ctx context.Context, cfg Config, scene config.Scene) Result {
	res := Result{
		Name:  scene.Name,
		Image: scene.Name + "." + cfg.Format,
	}

	mesh, err := raster.Shape(scene.Shape, scene.Subdiv)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	lc := raster.DefaultLightConfig().WithLight(LightDir(scene))
	albedo := raster.RGBA{R: scene.Color[0], G: scene.Color[1], B: scene.Color[2], A: scene.Color[3]}
	view := raster.View{Yaw: scene.Yaw, Pitch: scene.Pitch}

	img, err := raster.Render(ctx, cfg.Device, mesh, view, lc, albedo, cfg.RenderSize, cfg.Supersample)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	// Post-processing: supersample downsample
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	if err := imageio.Save(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
