// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/homestead3d/homestead/shape"
)

// meshShapes maps the mesh kind names the scene draws by to unit
// shape constructors: a 2x2 plane, a unit box, and a unit cylinder,
// all sized per object by the model matrix.
var meshShapes = map[string]func() shape.Shape{
	"plane":    func() shape.Shape { return shape.NewPlane(2, 2) },
	"box":      func() shape.Shape { return shape.NewBox(1, 1, 1) },
	"cylinder": func() shape.Shape { return shape.NewCylinder(1, 1, 36) },
}

// mesh is one uploaded primitive: a VAO with position, normal, and
// texture coordinate buffers plus an index buffer.
type mesh struct {
	vao    uint32
	bufs   [4]uint32 // position, normal, texcoord, index
	nIndex int32
}

// Meshes owns the GPU buffers for the primitive meshes the scene
// draws. It implements the mesh drawer interface of the scene
// package.
type Meshes struct {
	meshes map[string]*mesh
}

// NewMeshes returns an empty mesh set.
func NewMeshes() *Meshes {
	return &Meshes{meshes: make(map[string]*mesh)}
}

// Load tessellates and uploads the named primitives. Names already
// loaded are skipped; unknown names are an error.
func (ms *Meshes) Load(names ...string) error {
	for _, name := range names {
		if _, ok := ms.meshes[name]; ok {
			continue
		}
		ctor, ok := meshShapes[name]
		if !ok {
			return fmt.Errorf("gpu: unknown mesh %q", name)
		}
		ms.meshes[name] = uploadShape(ctor())
	}
	return nil
}

// Draw draws the named mesh with the current program and uniforms.
// Names that were never loaded draw nothing.
func (ms *Meshes) Draw(name string) {
	m, ok := ms.meshes[name]
	if !ok {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.nIndex, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Release deletes all mesh buffers.
func (ms *Meshes) Release() {
	for _, m := range ms.meshes {
		gl.DeleteBuffers(4, &m.bufs[0])
		gl.DeleteVertexArrays(1, &m.vao)
	}
	ms.meshes = make(map[string]*mesh)
}

func uploadShape(sh shape.Shape) *mesh {
	nVtx, nIdx := sh.N()
	vtx := make([]float32, nVtx*3)
	norm := make([]float32, nVtx*3)
	tex := make([]float32, nVtx*2)
	idx := make([]uint32, nIdx)
	sh.Set(vtx, norm, tex, idx)

	m := &mesh{nIndex: int32(nIdx)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(4, &m.bufs[0])

	uploadAttrib(m.bufs[0], 0, 3, vtx)
	uploadAttrib(m.bufs[1], 1, 3, norm)
	uploadAttrib(m.bufs[2], 2, 2, tex)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.bufs[3])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(idx), gl.Ptr(idx), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

// uploadAttrib fills one tightly packed float buffer and points the
// given attribute index at it.
func uploadAttrib(buf, index uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(index)
}
