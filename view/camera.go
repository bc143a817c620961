// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view implements the free-fly first-person camera and the
// per-frame view state: keyboard displacement, mouse orientation,
// scroll speed control, and the perspective/orthographic projection
// toggle. It is pure math; the window layer feeds it raw input events
// and it feeds matrices back to the shading stage.
package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera-relative movement direction, decoupled from
// any particular key binding.
type Direction int32

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// default camera parameters.
const (
	defaultYaw         = -90
	defaultSpeed       = 20
	defaultSensitivity = 0.1
	defaultZoom        = 80

	// pitch is clamped short of the poles so the view matrix
	// never degenerates.
	pitchLimit = 89

	// MinSpeed is the lower bound scroll adjustment cannot cross.
	MinSpeed = 1.0
)

// Camera is a free-fly first-person camera. Orientation is held as
// yaw/pitch Euler angles; Front, Right, and Up are derived from them
// and from WorldUp.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Euler angles in degrees.
	Yaw   float32
	Pitch float32

	// MovementSpeed is in world units per second; adjusted by scroll.
	MovementSpeed float32

	// MouseSensitivity scales raw cursor offsets into degrees.
	MouseSensitivity float32

	// Zoom is the perspective field of view in degrees.
	Zoom float32
}

// NewCamera returns a Camera at the standard start pose: above and in
// front of the scene, looking slightly downward at it.
func NewCamera() *Camera {
	cm := &Camera{
		Position:         mgl32.Vec3{0, 5, 12},
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              defaultYaw,
		MovementSpeed:    defaultSpeed,
		MouseSensitivity: defaultSensitivity,
		Zoom:             defaultZoom,
	}
	cm.SetFront(mgl32.Vec3{0, -0.5, -2})
	return cm
}

// ViewMatrix returns the look-at matrix for the current pose.
func (cm *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(cm.Position, cm.Position.Add(cm.Front), cm.Up)
}

// ProcessKeyboard displaces the camera along one of its basis vectors
// by MovementSpeed over the given frame time.
func (cm *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := cm.MovementSpeed * dt
	switch dir {
	case Forward:
		cm.Position = cm.Position.Add(cm.Front.Mul(velocity))
	case Backward:
		cm.Position = cm.Position.Sub(cm.Front.Mul(velocity))
	case Left:
		cm.Position = cm.Position.Sub(cm.Right.Mul(velocity))
	case Right:
		cm.Position = cm.Position.Add(cm.Right.Mul(velocity))
	case Up:
		cm.Position = cm.Position.Add(cm.Up.Mul(velocity))
	case Down:
		cm.Position = cm.Position.Sub(cm.Up.Mul(velocity))
	}
}

// ProcessMouseMovement applies a cursor offset, already sign-corrected
// by the caller, to the camera orientation. Pitch is constrained to
// keep the view matrix well-defined.
func (cm *Camera) ProcessMouseMovement(dx, dy float32) {
	cm.Yaw += dx * cm.MouseSensitivity
	cm.Pitch += dy * cm.MouseSensitivity
	if cm.Pitch > pitchLimit {
		cm.Pitch = pitchLimit
	}
	if cm.Pitch < -pitchLimit {
		cm.Pitch = -pitchLimit
	}
	cm.updateVectors()
}

// ProcessMouseScroll adjusts the movement speed by the scroll offset,
// never below MinSpeed.
func (cm *Camera) ProcessMouseScroll(dy float32) {
	cm.MovementSpeed += dy
	if cm.MovementSpeed < MinSpeed {
		cm.MovementSpeed = MinSpeed
	}
}

// SetFront points the camera along the given direction, re-deriving
// yaw and pitch so subsequent mouse movement continues smoothly from
// the new orientation.
func (cm *Camera) SetFront(front mgl32.Vec3) {
	f := front.Normalize()
	cm.Pitch = mgl32.RadToDeg(math32.Asin(f.Y()))
	cm.Yaw = mgl32.RadToDeg(math32.Atan2(f.Z(), f.X()))
	cm.updateVectors()
}

// updateVectors recomputes Front, Right, and Up from yaw and pitch.
func (cm *Camera) updateVectors() {
	yaw := mgl32.DegToRad(cm.Yaw)
	pitch := mgl32.DegToRad(cm.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	cm.Front = front.Normalize()
	cm.Right = cm.Front.Cross(cm.WorldUp).Normalize()
	cm.Up = cm.Right.Cross(cm.Front).Normalize()
}
