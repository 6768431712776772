package density

import (
	"math"
)

// Deterministic value noise with multiple octaves. Lattice values come from
// integer hashing, so the same seed always yields the same field.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func hash2(x, z int64, seed int64) uint64 {
	// SplitMix64 style integer hash, stable across runs for same inputs
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func hash3(x, y, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0x517CC1B727220A95 + uint64(z)*0x6C62272E07BB0142 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

// unit maps a hash to [0,1].
func unit(h uint64) float64 {
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)
	ix, iz := int64(x0), int64(z0)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := unit(hash2(ix, iz, seed))
	v10 := unit(hash2(ix+1, iz, seed))
	v01 := unit(hash2(ix, iz+1, seed))
	v11 := unit(hash2(ix+1, iz+1, seed))

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz) // [0,1]
}

func valueNoise3D(x, y, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	z0 := math.Floor(z)
	ix, iy, iz := int64(x0), int64(y0), int64(z0)

	fx := fade(x - x0)
	fy := fade(y - y0)
	fz := fade(z - z0)

	v000 := unit(hash3(ix, iy, iz, seed))
	v100 := unit(hash3(ix+1, iy, iz, seed))
	v010 := unit(hash3(ix, iy+1, iz, seed))
	v110 := unit(hash3(ix+1, iy+1, iz, seed))
	v001 := unit(hash3(ix, iy, iz+1, seed))
	v101 := unit(hash3(ix+1, iy, iz+1, seed))
	v011 := unit(hash3(ix, iy+1, iz+1, seed))
	v111 := unit(hash3(ix+1, iy+1, iz+1, seed))

	// Trilinear: X, then Y, then Z.
	i00 := lerp(v000, v100, fx)
	i10 := lerp(v010, v110, fx)
	i01 := lerp(v001, v101, fx)
	i11 := lerp(v011, v111, fx)

	return lerp(lerp(i00, i10, fy), lerp(i01, i11, fy), fz) // [0,1]
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}

func octaveNoise3D(x, y, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise3D(x*frequency, y*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm // [0,1]
}
