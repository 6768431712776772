// Command voxmesh generates greedy-meshed voxel chunks without a window,
// logs mesh statistics and optionally exports OBJ and a PNG preview.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"voxmesh/internal/config"
	"voxmesh/internal/density"
	"voxmesh/internal/export"
	"voxmesh/internal/logger"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
)

func main() {
	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "voxmesh: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "voxmesh: init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("voxmesh failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	sampler, err := density.FromConfig(cfg.Density)
	if err != nil {
		return err
	}

	start := time.Now()
	mesh, err := generateChunks(ctx, cfg, sampler)
	if err != nil {
		return err
	}
	if err := mesh.Validate(); err != nil {
		return err
	}

	logger.Info("mesh generated",
		zap.Uint32("edge", cfg.Chunk.EdgeLength),
		zap.Int("chunks", cfg.Pool.Chunks),
		zap.String("sampler", cfg.Density.Kind),
		zap.Int("quads", mesh.NumQuads()),
		zap.Int("vertices", mesh.NumVertices()),
		zap.Int("indices", len(mesh.Indices)),
		zap.Duration("elapsed", time.Since(start)),
	)
	logger.Debug("profiling", zap.String("top", profiling.TopN(4)))

	if path := cfg.Export.OBJPath; path != "" {
		if err := writeFile(path, func(f *os.File) error { return export.WriteOBJ(f, mesh) }); err != nil {
			return fmt.Errorf("writing obj: %w", err)
		}
		logger.Info("wrote obj", zap.String("path", path))
	}
	if path := cfg.Export.PNGPath; path != "" {
		img := export.RenderPreview(mesh, cfg.Export.PreviewSize)
		if err := writeFile(path, func(f *os.File) error { return export.WritePNG(f, img) }); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		logger.Info("wrote preview", zap.String("path", path))
	}
	return nil
}

// generateChunks meshes Pool.Chunks chunks laid out along +X. Each chunk
// samples the density domain shifted by one chunk width, so neighbouring
// chunks continue the same field.
func generateChunks(ctx context.Context, cfg *config.Config, sampler density.Sampler) (meshing.MeshBuffers, error) {
	n := cfg.Chunk.EdgeLength
	chunks := cfg.Pool.Chunks
	if chunks < 1 {
		chunks = 1
	}

	if err := ctx.Err(); err != nil {
		return meshing.MeshBuffers{}, err
	}

	pool := meshing.NewWorkerPool(cfg.Pool.Workers, chunks)
	defer pool.Shutdown()

	results := make(chan meshing.MeshResult, chunks)
	for i := 0; i < chunks; i++ {
		job := meshing.MeshJob{
			Coord:      [3]int{i, 0, 0},
			EdgeLength: n,
			Sampler:    shifted(sampler, mgl32.Vec3{2 * float32(i), 0, 0}),
			ResultChan: results,
		}
		if err := pool.SubmitJobBlocking(ctx, job); err != nil {
			return meshing.MeshBuffers{}, err
		}
	}

	collected := make([]meshing.MeshResult, 0, chunks)
	for len(collected) < chunks {
		select {
		case r := <-results:
			if r.Error != nil {
				return meshing.MeshBuffers{}, fmt.Errorf("chunk %v: %w", r.Coord, r.Error)
			}
			logger.Debug("chunk meshed", zap.Ints("coord", r.Coord[:]), zap.Int("quads", r.Mesh.NumQuads()), zap.Duration("took", r.Duration))
			collected = append(collected, r)
		case <-ctx.Done():
			return meshing.MeshBuffers{}, ctx.Err()
		}
	}

	sort.Slice(collected, func(i, j int) bool { return collected[i].Coord[0] < collected[j].Coord[0] })
	var merged meshing.MeshBuffers
	for _, r := range collected {
		merged.Append(r.Mesh, [3]float32{float32(r.Coord[0]) * float32(n), 0, 0})
	}
	return merged, nil
}

func shifted(s density.Sampler, offset mgl32.Vec3) density.Sampler {
	return func(p mgl32.Vec3) voxel.Bool {
		return s(p.Add(offset))
	}
}

func writeFile(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
