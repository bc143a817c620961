// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape tessellates the mesh primitives used by the scene:
// planes, boxes, and cylinders. Shapes fill caller-allocated vertex,
// normal, texture-coordinate, and index arrays, so they can be uploaded
// as separate attribute buffers or composed into larger ones.
package shape

import "github.com/go-gl/mathgl/mgl32"

// Shape is implemented by all mesh primitives.
type Shape interface {
	// N returns the number of vertex and index points in this shape.
	// Each vertex point is 3 floats in the vertex and normal arrays
	// and 2 floats in the texture-coordinate array.
	N() (nVtx, nIdx int)

	// Set fills the given pre-allocated arrays, which must hold at
	// least the sizes reported by N.
	Set(vtx, norm, tex []float32, idx []uint32)

	// BBox returns the axis-aligned bounding box of the shape.
	// It is only valid after Set has been called.
	BBox() (min, max mgl32.Vec3)
}

// ShapeBase is embedded by all shape primitives.
type ShapeBase struct {
	// bounding box in local coordinates, set during Set.
	BBoxMin, BBoxMax mgl32.Vec3
}

func (sb *ShapeBase) BBox() (min, max mgl32.Vec3) {
	return sb.BBoxMin, sb.BBoxMax
}

// setQuad writes one rectangular face with corners org, org+du,
// org+du+dv, org+dv at vertex point offset voff and index offset ioff.
// du cross dv must equal the outward normal nrm for front faces to
// wind counter-clockwise. Texture coordinates run 0..1 from org.
func setQuad(vtx, norm, tex []float32, idx []uint32, voff, ioff int, org, du, dv, nrm mgl32.Vec3) {
	corners := [4]mgl32.Vec3{
		org,
		org.Add(du),
		org.Add(du).Add(dv),
		org.Add(dv),
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range corners {
		vi := (voff + i) * 3
		vtx[vi], vtx[vi+1], vtx[vi+2] = c.X(), c.Y(), c.Z()
		norm[vi], norm[vi+1], norm[vi+2] = nrm.X(), nrm.Y(), nrm.Z()
		ti := (voff + i) * 2
		tex[ti], tex[ti+1] = uvs[i][0], uvs[i][1]
	}
	v := uint32(voff)
	idx[ioff+0], idx[ioff+1], idx[ioff+2] = v, v+1, v+2
	idx[ioff+3], idx[ioff+4], idx[ioff+5] = v, v+2, v+3
}

// quadN is the vertex and index footprint of one setQuad call.
const (
	quadVtx = 4
	quadIdx = 6
)
