package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"unicode"
)

// Scene describes one preview render.
type Scene struct {
	Name           string     `json:"name"`
	Shape          string     `json:"shape"`
	Subdiv         int        `json:"subdiv"`
	Color          [4]uint8   `json:"color"`
	Light          [3]float32 `json:"light"` // direction; zero means use azimuth/elevation
	LightAzimuth   float32    `json:"light_azimuth"`
	LightElevation float32    `json:"light_elevation"`
	Yaw            float32    `json:"yaw"`
	Pitch          float32    `json:"pitch"`
}

// Config holds output paths and render settings.
type Config struct {
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`
	Lanes       int `json:"lanes"`

	Scenes []Scene `json:"scenes"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Size      int
	Workers   int
	Lanes     int
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Lanes > 0 {
		c.Lanes = flags.Lanes
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Lanes <= 0 {
		c.Lanes = runtime.NumCPU()
	}
	if len(c.Scenes) == 0 {
		c.Scenes = DefaultScenes()
	}
	c.Scenes = SanitizeNames(c.Scenes)
	for i := range c.Scenes {
		s := &c.Scenes[i]
		if s.Color == ([4]uint8{}) {
			s.Color = [4]uint8{170, 170, 180, 255}
		}
	}
}

// SanitizeNames returns a copy of scenes whose names are safe, unique file
// stems inside the output directory. Path separators and control characters
// become '_', empty, "." and ".." names become "scene<i>", and repeats (compared
// case-insensitively) get a "-<n>" suffix.
func SanitizeNames(scenes []Scene) []Scene {
	out := make([]Scene, len(scenes))
	seen := make(map[string]bool, len(scenes))
	for i, s := range scenes {
		name := strings.Map(func(r rune) rune {
			if r == '/' || r == '\\' || r == ':' || unicode.IsControl(r) {
				return '_'
			}
			return r
		}, strings.TrimSpace(s.Name))
		if name == "" || name == "." || name == ".." {
			name = fmt.Sprintf("scene%d", i)
		}

		unique := name
		for n := 2; seen[strings.ToLower(unique)]; n++ {
			unique = fmt.Sprintf("%s-%d", name, n)
		}
		seen[strings.ToLower(unique)] = true

		s.Name = unique
		out[i] = s
	}
	return out
}

// DefaultScenes is the preview set rendered when the config names none.
func DefaultScenes() []Scene {
	return []Scene{
		{Name: "sphere", Shape: "sphere", Subdiv: 32, Color: [4]uint8{200, 120, 80, 255}, LightAzimuth: 45, LightElevation: 40},
		{Name: "cube", Shape: "cube", Color: [4]uint8{90, 150, 210, 255}, LightAzimuth: 30, LightElevation: 50, Yaw: 35, Pitch: 25},
		{Name: "octahedron", Shape: "octahedron", Color: [4]uint8{120, 200, 120, 255}, LightAzimuth: -40, LightElevation: 30, Yaw: 20, Pitch: 15},
	}
}
