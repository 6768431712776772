package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxmesh/internal/config"
	"voxmesh/internal/density"
	"voxmesh/internal/meshing"
)

func TestGenerateChunksMatchesSingleChunk(t *testing.T) {
	cfg := config.Default()
	cfg.Chunk.EdgeLength = 8
	cfg.Density.Kind = config.SamplerSphere
	cfg.Pool.Chunks = 1
	sampler, err := density.FromConfig(cfg.Density)
	require.NoError(t, err)

	got, err := generateChunks(context.Background(), cfg, sampler)
	require.NoError(t, err)
	assert.Equal(t, meshing.GenerateMesh(8, sampler), got)
}

func TestGenerateChunksLaysOutAlongX(t *testing.T) {
	cfg := config.Default()
	cfg.Chunk.EdgeLength = 8
	cfg.Density.Kind = config.SamplerPlane
	cfg.Pool.Chunks = 3
	cfg.Pool.Workers = 2
	sampler, err := density.FromConfig(cfg.Density)
	require.NoError(t, err)

	m, err := generateChunks(context.Background(), cfg, sampler)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	single := meshing.GenerateMesh(8, sampler)
	assert.Equal(t, 3*single.NumQuads(), m.NumQuads())

	// Interior cells span padded x in [1, 9]; the third chunk is shifted by 16.
	var maxX float32
	for _, p := range m.Positions {
		maxX = max(maxX, p[0])
	}
	assert.Equal(t, float32(2*8+9), maxX)
}

func TestGenerateChunksCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.Pool.Chunks = 2
	sampler, err := density.FromConfig(cfg.Density)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = generateChunks(ctx, cfg, sampler)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWritesExports(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Chunk.EdgeLength = 6
	cfg.Export.OBJPath = filepath.Join(dir, "out", "chunk.obj")
	cfg.Export.PNGPath = filepath.Join(dir, "preview.png")
	cfg.Export.PreviewSize = 64

	require.NoError(t, run(context.Background(), cfg))
	for _, p := range []string{cfg.Export.OBJPath, cfg.Export.PNGPath} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
