// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-gl/mathgl/mgl32"

// Plane is a flat rectangle in the XZ plane centered on the origin,
// with its normal along +Y. The ground and floor slabs scale this.
type Plane struct {
	ShapeBase

	// size along X and Z.
	Width, Depth float32
}

// NewPlane returns a Plane with the given X and Z extents.
func NewPlane(width, depth float32) *Plane {
	pl := &Plane{}
	pl.Width, pl.Depth = width, depth
	return pl
}

func (pl *Plane) N() (nVtx, nIdx int) {
	return quadVtx, quadIdx
}

func (pl *Plane) Set(vtx, norm, tex []float32, idx []uint32) {
	hw, hd := pl.Width/2, pl.Depth/2
	// org at (-hw, 0, hd) with du along +X and dv along -Z keeps the
	// +Y normal consistent with du cross dv.
	setQuad(vtx, norm, tex, idx, 0, 0,
		mgl32.Vec3{-hw, 0, hd},
		mgl32.Vec3{pl.Width, 0, 0},
		mgl32.Vec3{0, 0, -pl.Depth},
		mgl32.Vec3{0, 1, 0})
	pl.BBoxMin = mgl32.Vec3{-hw, 0, -hd}
	pl.BBoxMax = mgl32.Vec3{hw, 0, hd}
}
