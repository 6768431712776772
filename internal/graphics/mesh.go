package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"voxmesh/internal/meshing"
)

// Attribute locations used by MeshShader sources.
const (
	attribPosition = 0
	attribNormal   = 1
	attribUV       = 2
)

// GPUMesh is a MeshBuffers upload: one interleaved VBO plus an element buffer.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// UploadMesh copies m into GL buffers. Requires a current GL context.
func UploadMesh(m meshing.MeshBuffers) *GPUMesh {
	g := &GPUMesh{indexCount: int32(len(m.Indices))}
	data := m.Interleaved()

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	if len(m.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(attribPosition)
	gl.VertexAttribPointerWithOffset(attribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(attribNormal)
	gl.VertexAttribPointerWithOffset(attribNormal, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(attribUV)
	gl.VertexAttribPointerWithOffset(attribUV, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	return g
}

// Draw issues the indexed triangle draw.
func (g *GPUMesh) Draw() {
	if g.indexCount == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (g *GPUMesh) Delete() {
	gl.DeleteBuffers(1, &g.ebo)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteVertexArrays(1, &g.vao)
}

// MeshVertexShader matches the GPUMesh attribute layout.
const MeshVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;
uniform mat4 model;
uniform mat4 view;
uniform mat4 proj;
out vec3 Normal;
out vec3 FragPos;
void main() {
	vec4 world = model * vec4(aPos, 1.0);
	FragPos = world.xyz;
	Normal = mat3(model) * aNormal;
	gl_Position = proj * view * world;
}
`

// MeshFragmentShader is a rough diffuse material lit by one point light.
const MeshFragmentShader = `#version 410 core
in vec3 Normal;
in vec3 FragPos;
uniform vec3 color;
uniform vec3 lightPos;
uniform float lightRange;
uniform float roughness;
out vec4 FragColor;
void main() {
	vec3 n = normalize(Normal);
	vec3 toLight = lightPos - FragPos;
	float dist = length(toLight);
	float atten = clamp(1.0 - dist / lightRange, 0.0, 1.0);
	float diff = max(dot(n, toLight / dist), 0.0) * atten;
	float ambient = 0.15 + 0.1 * (1.0 - roughness);
	FragColor = vec4(color * (ambient + diff), 1.0);
}
`
