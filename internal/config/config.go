// Package config handles voxmesh configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Sampler kinds understood by the density package.
const (
	SamplerSphere      = "sphere"
	SamplerPlane       = "plane"
	SamplerFbmTerrain  = "fbm-terrain"
	SamplerFbmDensity  = "fbm-density"
	MaxChunkEdgeLength = 256
)

// SamplerKinds lists every valid Density.Kind.
var SamplerKinds = []string{SamplerSphere, SamplerPlane, SamplerFbmTerrain, SamplerFbmDensity}

var (
	ErrInvalidEdgeLength = errors.New("config: invalid chunk edge length")
	ErrUnknownSampler    = errors.New("config: unknown sampler kind")
)

// Config holds all settings.
type Config struct {
	Chunk   ChunkConfig   `yaml:"chunk"`
	Density DensityConfig `yaml:"density"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Export  ExportConfig  `yaml:"export"`
	Pool    PoolConfig    `yaml:"pool"`
	Logging LoggingConfig `yaml:"logging"`
}

// ChunkConfig holds the logical chunk size.
type ChunkConfig struct {
	EdgeLength uint32 `yaml:"edge_length"`
}

// DensityConfig selects and parameterizes the density sampler.
type DensityConfig struct {
	Kind      string  `yaml:"kind"`
	Radius    float32 `yaml:"radius"`    // sphere
	Height    float32 `yaml:"height"`    // plane
	Seed      int64   `yaml:"seed"`      // fbm-*
	Octaves   int     `yaml:"octaves"`   // fbm-*
	Amplitude float64 `yaml:"amplitude"` // fbm-terrain
	Frequency float64 `yaml:"frequency"` // fbm-*
}

// ViewerConfig holds window and scene settings for voxview.
type ViewerConfig struct {
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	VSync     bool       `yaml:"vsync"`
	FPSLimit  int        `yaml:"fps_limit"` // 0 = unlimited
	Wireframe bool       `yaml:"wireframe"`
	Placement [3]float32 `yaml:"placement"`
	Camera    [3]float32 `yaml:"camera"`
	Light     [3]float32 `yaml:"light"`
}

// ExportConfig holds output paths for voxmesh. Empty paths disable an output.
type ExportConfig struct {
	OBJPath     string `yaml:"obj_path"`
	PNGPath     string `yaml:"png_path"`
	PreviewSize int    `yaml:"preview_size"`
}

// PoolConfig controls multi-chunk generation.
type PoolConfig struct {
	Workers int `yaml:"workers"`
	Chunks  int `yaml:"chunks"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Chunk: ChunkConfig{EdgeLength: 16},
		Density: DensityConfig{
			Kind:      SamplerFbmTerrain,
			Radius:    0.9,
			Height:    0,
			Seed:      0,
			Octaves:   2,
			Amplitude: 2.0,
			Frequency: 1.0,
		},
		Viewer: ViewerConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			Wireframe: true,
			Placement: [3]float32{16, -16, 8},
			Camera:    [3]float32{50, 15, 50},
			Light:     [3]float32{25, 25, 25},
		},
		Export: ExportConfig{PreviewSize: 512},
		Pool:   PoolConfig{Workers: 4, Chunks: 1},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings that cannot produce a mesh.
func (c *Config) Validate() error {
	if c.Chunk.EdgeLength == 0 || c.Chunk.EdgeLength > MaxChunkEdgeLength {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidEdgeLength, c.Chunk.EdgeLength, MaxChunkEdgeLength)
	}
	if !slices.Contains(SamplerKinds, c.Density.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownSampler, c.Density.Kind)
	}
	if c.Pool.Workers < 1 {
		return fmt.Errorf("config: pool.workers must be positive, got %d", c.Pool.Workers)
	}
	return nil
}
