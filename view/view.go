// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "github.com/go-gl/mathgl/mgl32"

// ProjectionMode selects how the scene is projected to the screen.
type ProjectionMode int32

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (pm ProjectionMode) String() string {
	if pm == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// uniform names the view writes each frame.
const (
	keyView         = "view"
	keyProjection   = "projection"
	keyViewPosition = "viewPosition"
)

// clip planes shared by both projections.
const (
	nearPlane = 0.1
	farPlane  = 100
)

// orthoExtent is the horizontal half-width of the orthographic volume
// in world units; the vertical bounds scale it by the aspect ratio.
const orthoExtent = 10

// orthoFront is the fixed viewing direction used while the projection
// is orthographic, so the flattened scene is always seen from the same
// downward-forward angle.
var orthoFront = mgl32.Vec3{0, -1, -1}

// Uniforms is the subset of shader program operations the view stage
// writes to.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
}

// State owns the camera, the projection mode, and the input bookkeeping
// for one window. It has no global instance: the window layer passes it
// into its callbacks, and the frame loop passes it to Apply.
type State struct {
	Camera     *Camera
	Projection ProjectionMode

	// drawable size in pixels, fixed for the window's lifetime.
	Width, Height int

	// cursor bookkeeping; the first event only seeds the position.
	lastX, lastY float32
	firstMouse   bool

	// time of the previous Advance call, in seconds.
	lastFrame float64
}

// NewState returns view state for a drawable of the given size, with
// the camera at its start pose and perspective projection.
func NewState(width, height int) *State {
	return &State{
		Camera:     NewCamera(),
		Width:      width,
		Height:     height,
		firstMouse: true,
	}
}

// Advance computes the frame time from the previous call, in seconds.
// The first frame measures from process start. The result is never
// negative.
func (vs *State) Advance(now float64) float32 {
	dt := now - vs.lastFrame
	vs.lastFrame = now
	if dt < 0 {
		return 0
	}
	return float32(dt)
}

// CursorTo handles an absolute cursor position event. The first event
// only seeds the reference position; later events apply the offset to
// the camera orientation, with Y inverted so moving the mouse up looks
// up.
func (vs *State) CursorTo(x, y float64) {
	if vs.firstMouse {
		vs.lastX, vs.lastY = float32(x), float32(y)
		vs.firstMouse = false
		return
	}
	dx := float32(x) - vs.lastX
	dy := vs.lastY - float32(y)
	vs.lastX, vs.lastY = float32(x), float32(y)
	vs.Camera.ProcessMouseMovement(dx, dy)
}

// ScrollBy handles a scroll event; the vertical offset adjusts the
// camera movement speed.
func (vs *State) ScrollBy(dx, dy float64) {
	vs.Camera.ProcessMouseScroll(float32(dy))
}

// SetProjection switches the projection mode, effective on the next
// Matrices call.
func (vs *State) SetProjection(pm ProjectionMode) {
	vs.Projection = pm
}

// Matrices returns the current view and projection matrices. While the
// projection is orthographic, the camera front is forced to the fixed
// downward-forward direction before the view matrix is taken.
func (vs *State) Matrices() (view, projection mgl32.Mat4) {
	switch vs.Projection {
	case Orthographic:
		vertical := float32(orthoExtent) * float32(vs.Height) / float32(vs.Width)
		projection = mgl32.Ortho(-orthoExtent, orthoExtent, -vertical, vertical, nearPlane, farPlane)
		vs.Camera.SetFront(orthoFront)
	default:
		aspect := float32(vs.Width) / float32(vs.Height)
		projection = mgl32.Perspective(mgl32.DegToRad(vs.Camera.Zoom), aspect, nearPlane, farPlane)
	}
	return vs.Camera.ViewMatrix(), projection
}

// Apply pushes the view matrix, projection matrix, and camera position
// for the current frame.
func (vs *State) Apply(u Uniforms) {
	view, projection := vs.Matrices()
	u.SetMat4(keyView, view)
	u.SetMat4(keyProjection, projection)
	u.SetVec3(keyViewPosition, vs.Camera.Position)
}
