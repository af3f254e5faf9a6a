package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"vec3f/internal/config"
	"vec3f/internal/kernel"
	"vec3f/internal/mathutil"
)

func TestRunWritesImagesAndManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		OutputDir:   dir,
		Format:      "png",
		RenderSize:  32,
		Supersample: 2,
		Workers:     2,
		Device:      kernel.NewDevice(2),
	}
	scenes := []config.Scene{
		{Name: "ball", Shape: "sphere", Subdiv: 8, Color: [4]uint8{200, 100, 50, 255}, LightAzimuth: 30, LightElevation: 30},
		{Name: "box", Shape: "cube", Color: [4]uint8{50, 100, 200, 255}, Light: [3]float32{1, 1, 1}, Yaw: 30, Pitch: 20},
		{Name: "bad", Shape: "torus"},
	}

	results := Run(context.Background(), cfg, scenes)
	if len(results) != 3 {
		t.Fatalf("results=%d", len(results))
	}
	for _, r := range results[:2] {
		if !r.Success {
			t.Fatalf("%s failed: %s", r.Name, r.Error)
		}
		if _, err := os.Stat(filepath.Join(dir, r.Image)); err != nil {
			t.Fatalf("%s: %v", r.Name, err)
		}
	}
	if results[2].Success || results[2].Error == "" {
		t.Fatalf("unknown shape result=%+v", results[2])
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[0].Image != "ball.png" || entries[1].Name != "box" {
		t.Fatalf("manifest=%+v", entries)
	}
}

func TestLightDir(t *testing.T) {
	if got := LightDir(config.Scene{Light: [3]float32{0, 2, 0}}); got != mathutil.New(0, 2, 0) {
		t.Fatalf("explicit light=%v", got)
	}
	got := LightDir(config.Scene{LightAzimuth: 90})
	if got.Sub(mathutil.XAxis()).Length() > 1e-5 {
		t.Fatalf("spherical light=%v", got)
	}
}

func TestRunKeepsImagesDistinctAndInsideOutputDir(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "out")
	cfg := Config{OutputDir: dir, Format: "png", RenderSize: 16, Supersample: 1, Workers: 3, Device: kernel.NewDevice(2)}
	scenes := []config.Scene{
		{Name: "dup", Shape: "cube", Color: [4]uint8{255, 0, 0, 255}},
		{Name: "dup", Shape: "sphere", Subdiv: 6, Color: [4]uint8{0, 255, 0, 255}},
		{Name: "../escaped", Shape: "octahedron", Color: [4]uint8{0, 0, 255, 255}},
	}

	results := Run(context.Background(), cfg, scenes)
	seen := map[string]bool{}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("%s failed: %s", r.Name, r.Error)
		}
		if seen[r.Image] {
			t.Fatalf("image %q written twice", r.Image)
		}
		seen[r.Image] = true
		if filepath.Base(r.Image) != r.Image {
			t.Fatalf("image %q leaves the output dir", r.Image)
		}
		if _, err := os.Stat(filepath.Join(dir, r.Image)); err != nil {
			t.Fatalf("%s: %v", r.Name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "escaped.png")); !os.IsNotExist(err) {
		t.Fatalf("escaped.png written outside output dir: %v", err)
	}
	if scenes[2].Name != "../escaped" {
		t.Fatalf("caller scenes mutated: %+v", scenes[2])
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 || entries[0].Image != "dup.png" || entries[1].Image != "dup-2.png" || entries[2].Image != ".._escaped.png" {
		t.Fatalf("manifest=%+v", entries)
	}
}
