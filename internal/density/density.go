// Package density provides exchangeable density samplers for chunk sampling.
// None of them are part of the meshing core; any pure
// lattice.DensitySampler[voxel.Bool] can replace them.
package density

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"voxmesh/internal/config"
	"voxmesh/internal/lattice"
	"voxmesh/internal/voxel"
)

// Sampler is the boolean density sampler the meshing entry point consumes.
type Sampler = lattice.DensitySampler[voxel.Bool]

// Fbm parameters shared by the noise samplers.
const (
	persistence = 0.5
	lacunarity  = 2.0
)

// Sphere is FULL strictly inside radius around the domain origin.
func Sphere(radius float32) Sampler {
	return func(p mgl32.Vec3) voxel.Bool {
		return voxel.Bool(math32.Sqrt(p.Dot(p)) < radius)
	}
}

// Plane is FULL at and below height.
func Plane(height float32) Sampler {
	return func(p mgl32.Vec3) voxel.Bool {
		return voxel.Bool(p.Y() <= height)
	}
}

// FbmTerrain is a heightfield: FULL where fbm(x, z) * amplitude lies above y.
// fbm is octave value noise remapped to [-1, 1].
func FbmTerrain(seed int64, octaves int, amplitude, frequency float64) Sampler {
	return func(p mgl32.Vec3) voxel.Bool {
		n := octaveNoise2D(float64(p.X())*frequency, float64(p.Z())*frequency, seed, octaves, persistence, lacunarity)
		return voxel.Bool((n*2-1)*amplitude > float64(p.Y()))
	}
}

// FbmDensity combines 3-D noise with a falling height gradient, which allows
// overhangs and floating pieces. Positive density is FULL.
func FbmDensity(seed int64, octaves int, frequency float64) Sampler {
	return func(p mgl32.Vec3) voxel.Bool {
		n := octaveNoise3D(float64(p.X())*frequency, float64(p.Y())*frequency, float64(p.Z())*frequency, seed, octaves, persistence, lacunarity)
		return voxel.Bool(n*2-1-float64(p.Y()) > 0)
	}
}

// FromConfig builds the sampler named by cfg.Kind.
func FromConfig(cfg config.DensityConfig) (Sampler, error) {
	switch cfg.Kind {
	case config.SamplerSphere:
		return Sphere(cfg.Radius), nil
	case config.SamplerPlane:
		return Plane(cfg.Height), nil
	case config.SamplerFbmTerrain:
		return FbmTerrain(cfg.Seed, cfg.Octaves, cfg.Amplitude, cfg.Frequency), nil
	case config.SamplerFbmDensity:
		return FbmDensity(cfg.Seed, cfg.Octaves, cfg.Frequency), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSampler, cfg.Kind)
	}
}
