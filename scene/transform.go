// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// BuildModelMatrix composes an object's model matrix from its scale,
// rotation, and position. Rotation angles are in degrees and apply
// around X first, then Y, then Z, with translation last:
//
//	M = T * Rz * Ry * Rx * S
func BuildModelMatrix(scale, rotation, position mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation.Z())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation.X())))
	m = m.Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
	return m
}
