// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/go-gl/mathgl/mgl32"

// Box is a rectangular solid centered on the origin. Walls, roofs,
// seats, and framing all scale the unit box.
type Box struct {
	ShapeBase

	// size along each dimension.
	Size mgl32.Vec3
}

// NewBox returns a Box with the given size.
func NewBox(width, height, depth float32) *Box {
	bx := &Box{}
	bx.Size = mgl32.Vec3{width, height, depth}
	return bx
}

func (bx *Box) N() (nVtx, nIdx int) {
	return 6 * quadVtx, 6 * quadIdx
}

func (bx *Box) Set(vtx, norm, tex []float32, idx []uint32) {
	w, h, d := bx.Size.X(), bx.Size.Y(), bx.Size.Z()
	hw, hh, hd := w/2, h/2, d/2

	faces := []struct {
		org, du, dv, nrm mgl32.Vec3
	}{
		{mgl32.Vec3{hw, -hh, -hd}, mgl32.Vec3{-w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, -1}},  // back
		{mgl32.Vec3{-hw, -hh, hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, 0, 1}},    // front
		{mgl32.Vec3{hw, -hh, hd}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{1, 0, 0}},    // right
		{mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, h, 0}, mgl32.Vec3{-1, 0, 0}},  // left
		{mgl32.Vec3{-hw, hh, hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, -d}, mgl32.Vec3{0, 1, 0}},    // top
		{mgl32.Vec3{-hw, -hh, -hd}, mgl32.Vec3{w, 0, 0}, mgl32.Vec3{0, 0, d}, mgl32.Vec3{0, -1, 0}},  // bottom
	}

	voff, ioff := 0, 0
	for _, f := range faces {
		setQuad(vtx, norm, tex, idx, voff, ioff, f.org, f.du, f.dv, f.nrm)
		voff += quadVtx
		ioff += quadIdx
	}

	bx.BBoxMin = mgl32.Vec3{-hw, -hh, -hd}
	bx.BBoxMax = mgl32.Vec3{hw, hh, hd}
}
