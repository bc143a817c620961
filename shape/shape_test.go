// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill allocates the arrays a shape reports and fills them.
func fill(t *testing.T, sh Shape) (vtx, norm, tex []float32, idx []uint32) {
	t.Helper()
	nv, ni := sh.N()
	vtx = make([]float32, nv*3)
	norm = make([]float32, nv*3)
	tex = make([]float32, nv*2)
	idx = make([]uint32, ni)
	sh.Set(vtx, norm, tex, idx)
	return
}

func vec3At(ary []float32, i uint32) mgl32.Vec3 {
	return mgl32.Vec3{ary[i*3], ary[i*3+1], ary[i*3+2]}
}

// assertOutwardWinding checks that every triangle winds counter-clockwise
// relative to the averaged vertex normals, so front faces point outward.
func assertOutwardWinding(t *testing.T, vtx, norm []float32, idx []uint32) {
	t.Helper()
	for i := 0; i < len(idx); i += 3 {
		a, b, c := idx[i], idx[i+1], idx[i+2]
		va, vb, vc := vec3At(vtx, a), vec3At(vtx, b), vec3At(vtx, c)
		face := vb.Sub(va).Cross(vc.Sub(va))
		avg := vec3At(norm, a).Add(vec3At(norm, b)).Add(vec3At(norm, c))
		assert.Greater(t, face.Dot(avg), float32(0), "triangle at index %d", i)
	}
}

func TestPlane(t *testing.T) {
	pl := NewPlane(2, 2)
	nv, ni := pl.N()
	assert.Equal(t, 4, nv)
	assert.Equal(t, 6, ni)

	vtx, norm, tex, idx := fill(t, pl)
	for _, ix := range idx {
		require.Less(t, int(ix), nv)
	}
	for i := 0; i < nv; i++ {
		assert.Equal(t, float32(0), vtx[i*3+1], "plane lies at y=0")
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, vec3At(norm, uint32(i)))
	}
	for _, uv := range tex {
		assert.GreaterOrEqual(t, uv, float32(0))
		assert.LessOrEqual(t, uv, float32(1))
	}
	min, max := pl.BBox()
	assert.Equal(t, mgl32.Vec3{-1, 0, -1}, min)
	assert.Equal(t, mgl32.Vec3{1, 0, 1}, max)
	assertOutwardWinding(t, vtx, norm, idx)
}

func TestBox(t *testing.T) {
	bx := NewBox(1, 1, 1)
	nv, ni := bx.N()
	assert.Equal(t, 24, nv)
	assert.Equal(t, 36, ni)

	vtx, norm, _, idx := fill(t, bx)
	for _, ix := range idx {
		require.Less(t, int(ix), nv)
	}
	for i := 0; i < nv; i++ {
		n := vec3At(norm, uint32(i))
		assert.InDelta(t, 1, n.Len(), 1e-6, "unit normal")
		v := vec3At(vtx, uint32(i))
		assert.InDelta(t, 0.5, abs32(v.Dot(n)), 1e-6, "vertex lies on its face")
	}
	min, max := bx.BBox()
	assert.Equal(t, mgl32.Vec3{-0.5, -0.5, -0.5}, min)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, max)
	assertOutwardWinding(t, vtx, norm, idx)
}

func TestCylinder(t *testing.T) {
	const segs = 12
	cy := NewCylinder(1, 1, segs)
	nv, ni := cy.N()
	assert.Equal(t, 2*(segs+1)+2*(segs+2), nv)
	assert.Equal(t, 12*segs, ni)

	vtx, norm, _, idx := fill(t, cy)
	for _, ix := range idx {
		require.Less(t, int(ix), nv)
	}
	for i := 0; i < nv; i++ {
		v := vec3At(vtx, uint32(i))
		assert.GreaterOrEqual(t, v.Y(), float32(0), "base at y=0")
		assert.LessOrEqual(t, v.Y(), float32(1), "top at y=height")
		radial := mgl32.Vec3{v.X(), 0, v.Z()}.Len()
		assert.LessOrEqual(t, radial, float32(1)+1e-6)
		n := vec3At(norm, uint32(i))
		assert.InDelta(t, 1, n.Len(), 1e-6, "unit normal")
	}
	min, max := cy.BBox()
	assert.Equal(t, mgl32.Vec3{-1, 0, -1}, min)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, max)
	assertOutwardWinding(t, vtx, norm, idx)
}

func TestCylinderMinSegs(t *testing.T) {
	cy := NewCylinder(1, 1, 0)
	assert.Equal(t, 3, cy.RadialSegs)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
