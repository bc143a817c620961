// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder is a capped cylinder with its base ring at Y=0, extending
// up to Y=Height. Table parts, chair legs, and the sky dome scale this.
type Cylinder struct {
	ShapeBase

	Height float32
	Radius float32

	// number of segments around the ring.
	RadialSegs int
}

// NewCylinder returns a capped Cylinder with the given height, radius,
// and number of radial segments.
func NewCylinder(height, radius float32, radialSegs int) *Cylinder {
	cy := &Cylinder{}
	cy.Height, cy.Radius = height, radius
	cy.RadialSegs = radialSegs
	if cy.RadialSegs < 3 {
		cy.RadialSegs = 3
	}
	return cy
}

func (cy *Cylinder) N() (nVtx, nIdx int) {
	n := cy.RadialSegs
	// side has a duplicated seam column, each cap a center point.
	nVtx = 2*(n+1) + 2*(n+2)
	nIdx = 12 * n
	return
}

func (cy *Cylinder) Set(vtx, norm, tex []float32, idx []uint32) {
	n := cy.RadialSegs
	h, r := cy.Height, cy.Radius

	setv := func(vi int, pos, nrm mgl32.Vec3, u, v float32) {
		i3 := vi * 3
		vtx[i3], vtx[i3+1], vtx[i3+2] = pos.X(), pos.Y(), pos.Z()
		norm[i3], norm[i3+1], norm[i3+2] = nrm.X(), nrm.Y(), nrm.Z()
		i2 := vi * 2
		tex[i2], tex[i2+1] = u, v
	}

	// side: bottom ring then top ring, seam column duplicated for UVs.
	for i := 0; i <= n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		cos, sin := math32.Cos(theta), math32.Sin(theta)
		nrm := mgl32.Vec3{cos, 0, sin}
		u := float32(i) / float32(n)
		setv(i, mgl32.Vec3{r * cos, 0, r * sin}, nrm, u, 0)
		setv(n+1+i, mgl32.Vec3{r * cos, h, r * sin}, nrm, u, 1)
	}
	ii := 0
	for i := 0; i < n; i++ {
		b, t := uint32(i), uint32(n+1+i)
		idx[ii+0], idx[ii+1], idx[ii+2] = b, t, t+1
		idx[ii+3], idx[ii+4], idx[ii+5] = b, t+1, b+1
		ii += 6
	}

	// caps: center point plus rim, polar texture coordinates.
	setCap := func(voff int, y float32, up bool) {
		ny := float32(-1)
		if up {
			ny = 1
		}
		setv(voff, mgl32.Vec3{0, y, 0}, mgl32.Vec3{0, ny, 0}, 0.5, 0.5)
		for i := 0; i <= n; i++ {
			theta := 2 * math32.Pi * float32(i) / float32(n)
			cos, sin := math32.Cos(theta), math32.Sin(theta)
			setv(voff+1+i, mgl32.Vec3{r * cos, y, r * sin}, mgl32.Vec3{0, ny, 0},
				0.5+cos/2, 0.5+sin/2)
		}
		c := uint32(voff)
		for i := 0; i < n; i++ {
			ri := c + 1 + uint32(i)
			if up {
				idx[ii+0], idx[ii+1], idx[ii+2] = c, ri+1, ri
			} else {
				idx[ii+0], idx[ii+1], idx[ii+2] = c, ri, ri+1
			}
			ii += 3
		}
	}
	setCap(2*(n+1), h, true)
	setCap(2*(n+1)+n+2, 0, false)

	cy.BBoxMin = mgl32.Vec3{-r, 0, -r}
	cy.BBoxMax = mgl32.Vec3{r, h, r}
}
