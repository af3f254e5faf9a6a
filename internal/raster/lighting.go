package raster

import (
	"github.com/chewxy/math32"

	"vec3f/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir  mathutil.Vec3f
	RimDir    mathutil.Vec3f
	ViewDir   mathutil.Vec3f
	HalfMain  mathutil.Vec3f // precomputed half-vector for Blinn-Phong
	Ambient   float32
	Hemi      float32
	Direct    float32
	Rim       float32
	SpecInt   float32
	SpecPow   float32
	Exposure  float32
	SRGBGamma float32
	InvGamma  float32
}

// DefaultLightConfig returns a key light from the upper right, a cool rim
// light from behind and a camera looking down -Z.
func DefaultLightConfig() LightConfig {
	lc := LightConfig{
		RimDir:    mathutil.New(-160, 130, -210).Normalized(),
		ViewDir:   mathutil.New(0, -110, -400).Normalized(),
		Ambient:   0.25,
		Hemi:      0.30,
		Direct:    0.90,
		Rim:       0.35,
		SpecInt:   0.45,
		SpecPow:   12.0,
		Exposure:  1.05,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
	return lc.WithLight(mathutil.New(180, 260, 140))
}

// WithLight returns a copy of lc with the main light pointing along dir.
// A near-zero dir keeps the current light.
func (lc LightConfig) WithLight(dir mathutil.Vec3f) LightConfig {
	if dir.SquareLength() <= 1e-6 {
		return lc
	}
	lc.LightDir = dir.Normalized()
	lc.HalfMain = lc.LightDir.Sub(lc.ViewDir).Normalized()
	return lc
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3f) float32 {
	// Lambertian (abs for double-sided)
	ndlMain := math32.Abs(normal.Dot(lc.LightDir))
	ndlRim := math32.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math32.Abs(normal.Y()))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math32.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Shade maps an sRGB albedo through lighting, exposure, ACES and gamma.
func (lc *LightConfig) Shade(shade float32, r, g, b uint8) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	return lc.encode(srgbToLinear[r] * k), lc.encode(srgbToLinear[g] * k), lc.encode(srgbToLinear[b] * k)
}

func (lc *LightConfig) encode(linear float32) uint8 {
	return clamp255(math32.Pow(ACESTonemap(linear), lc.InvGamma) * 255)
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math32.Pow(float32(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
