package graphics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Move is one of the six discrete camera steps.
type Move int

const (
	MoveForward Move = iota
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-fly camera with yaw/pitch orientation in radians.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32
	Pitch       float32
	AspectRatio float32
	FOV         float32 // degrees
	NearPlane   float32
	FarPlane    float32
}

// NewLookAtCamera places a camera at pos oriented towards target.
func NewLookAtCamera(pos, target mgl32.Vec3, width, height int) *Camera {
	c := &Camera{
		Position:    pos,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
	c.LookAt(target)
	return c
}

// LookAt reorients the camera towards target.
func (c *Camera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Yaw = math32.Atan2(dir.Z(), dir.X())
	c.Pitch = math32.Asin(mgl32.Clamp(dir.Y(), -1, 1))
}

// Forward is the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	return mgl32.Vec3{
		cp * math32.Cos(c.Yaw),
		math32.Sin(c.Pitch),
		cp * math32.Sin(c.Yaw),
	}
}

// Right is the unit vector to the right of the view direction, level with the ground.
func (c *Camera) Right() mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(c.Yaw), 0, math32.Cos(c.Yaw)}
}

// Up is perpendicular to Forward and Right.
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward())
}

// Step moves the camera one world unit in the given direction.
func (c *Camera) Step(m Move) {
	var d mgl32.Vec3
	switch m {
	case MoveForward:
		d = c.Forward()
	case MoveBack:
		d = c.Forward().Mul(-1)
	case MoveLeft:
		d = c.Right().Mul(-1)
	case MoveRight:
		d = c.Right()
	case MoveUp:
		d = c.Up()
	case MoveDown:
		d = c.Up().Mul(-1)
	}
	c.Position = c.Position.Add(d)
}

// SetViewport updates the aspect ratio after a resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), worldUp)
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
