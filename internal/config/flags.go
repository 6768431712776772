package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagEdge    = flag.Uint("edge", 0, "Chunk edge length in voxels")
	flagSampler = flag.String("sampler", "", "Density sampler: sphere, plane, fbm-terrain, fbm-density")
	flagSeed    = flag.Int64("seed", 0, "Noise seed for fbm samplers")
	flagRadius  = flag.Float64("radius", 0, "Sphere radius in domain units")
	flagOBJ     = flag.String("obj", "", "Write the mesh as Wavefront OBJ to this path")
	flagPNG     = flag.String("png", "", "Write a top-down PNG preview to this path")
	flagWorkers = flag.Int("workers", 0, "Mesh worker goroutines")
	flagChunks  = flag.Int("chunks", 0, "Number of chunks to generate side by side")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagEdge > 0 {
		cfg.Chunk.EdgeLength = uint32(*flagEdge)
	}
	if *flagSampler != "" {
		cfg.Density.Kind = *flagSampler
	}
	if *flagSeed != 0 {
		cfg.Density.Seed = *flagSeed
	}
	if *flagRadius > 0 {
		cfg.Density.Radius = float32(*flagRadius)
	}
	if *flagOBJ != "" {
		cfg.Export.OBJPath = *flagOBJ
	}
	if *flagPNG != "" {
		cfg.Export.PNGPath = *flagPNG
	}
	if *flagWorkers > 0 {
		cfg.Pool.Workers = *flagWorkers
	}
	if *flagChunks > 0 {
		cfg.Pool.Chunks = *flagChunks
	}
}
