// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene renders a declarative scene manifest: it loads the
// manifest's textures into an ordered registry, defines its materials
// and light rig, and draws its object list in order each frame. All
// GPU access goes through the narrow Uniforms, TextureDevice, and
// MeshDrawer interfaces, implemented by package gpu.
package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
)

// uniform names the renderer writes. The shader declares exactly
// these. Values persist across draws within a frame and across
// frames: a draw that does not set one inherits the last value
// written.
const (
	keyModel         = "model"
	keyObjectColor   = "objectColor"
	keyObjectTexture = "objectTexture"
	keyUseTexture    = "bUseTexture"
	keyUseLighting   = "bUseLighting"
	keyUVScale       = "UVscale"

	keyMaterialDiffuse   = "material.diffuseColor"
	keyMaterialSpecular  = "material.specularColor"
	keyMaterialShininess = "material.shininess"
)

// Uniforms is the shader program surface the renderer writes through.
// gpu.Program implements it; tests substitute a recorder.
type Uniforms interface {
	SetMat4(name string, m mgl32.Mat4)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetFloat(name string, v float32)
	SetBool(name string, v bool)
	SetSampler(name string, unit int32)
}

// MeshDrawer uploads and draws primitive meshes by kind name.
// gpu.Meshes implements it; tests substitute a recorder.
type MeshDrawer interface {
	Load(names ...string) error
	Draw(name string)
}

// Scene owns the registries for one manifest and draws its objects.
type Scene struct {
	// TextureDir is the directory the manifest's texture file names
	// resolve against.
	TextureDir string

	Manifest  *Manifest
	Textures  *Textures
	Materials *Materials

	uniforms Uniforms
	meshes   MeshDrawer
	prepared bool
}

// New returns a Scene that renders mf through the given shader
// uniforms, texture device, and mesh drawer.
func New(mf *Manifest, u Uniforms, device TextureDevice, meshes MeshDrawer) *Scene {
	return &Scene{
		Manifest:  mf,
		Textures:  NewTextures(device),
		Materials: &Materials{},
		uniforms:  u,
		meshes:    meshes,
	}
}

// Prepare readies the scene for rendering: it defines the manifest's
// materials, pushes the light rig, loads and binds the textures, and
// uploads the meshes the object list needs. Texture failures are
// logged and skipped; the objects referencing them draw untextured.
// Prepare is a no-op after the first successful call.
func (sc *Scene) Prepare() error {
	if sc.prepared {
		return nil
	}

	for _, m := range sc.Manifest.Materials {
		sc.Materials.Define(m)
	}
	if _, ok := sc.Materials.Find(DefaultMaterialTag); !ok {
		sc.Materials.Define(defaultMaterial())
	}

	sc.Manifest.Lighting.apply(sc.uniforms)
	sc.uniforms.SetVec2(keyUVScale, mgl32.Vec2{1, 1})

	for _, tr := range sc.Manifest.Textures {
		path := filepath.Join(sc.TextureDir, tr.File)
		if err := sc.Textures.Load(path, tr.Tag); err != nil {
			slog.Error("scene: texture load failed", "tag", tr.Tag, "file", path, "error", err)
		}
	}
	sc.Textures.BindAll()

	if err := sc.meshes.Load(sc.meshNames()...); err != nil {
		return fmt.Errorf("scene %q: loading meshes: %w", sc.Manifest.Name, err)
	}

	sc.prepared = true
	return nil
}

// meshNames returns the distinct mesh kinds the object list uses, in
// first-use order.
func (sc *Scene) meshNames() []string {
	seen := map[MeshKind]bool{}
	var names []string
	for _, ob := range sc.Manifest.Objects {
		if !seen[ob.Mesh] {
			seen[ob.Mesh] = true
			names = append(names, ob.Mesh.String())
		}
	}
	return names
}

// RenderFrame draws every object in manifest order. The view and
// projection are pushed separately by the view stage; RenderFrame
// only writes per-object state.
func (sc *Scene) RenderFrame() {
	for i := range sc.Manifest.Objects {
		sc.renderObject(&sc.Manifest.Objects[i])
	}
}

// renderObject pushes one object's transform and shading state, then
// draws its mesh. Unset optional fields write nothing, inheriting the
// previous draw's values.
func (sc *Scene) renderObject(ob *Object) {
	sc.uniforms.SetMat4(keyModel, BuildModelMatrix(ob.Scale, ob.Rotation, ob.Position))

	if ob.Color != nil {
		c := *ob.Color
		sc.uniforms.SetBool(keyUseTexture, false)
		sc.uniforms.SetVec4(keyObjectColor, mgl32.Vec4{c[0], c[1], c[2], c[3]})
	}

	if ob.Texture != "" {
		if slot := sc.Textures.Slot(ob.Texture); slot >= 0 {
			sc.uniforms.SetBool(keyUseTexture, true)
			sc.uniforms.SetSampler(keyObjectTexture, int32(slot))
		} else {
			// unresolved tag: draw as if no texture were given.
			sc.uniforms.SetBool(keyUseTexture, false)
		}
	}

	if ob.UVScale != nil {
		sc.uniforms.SetVec2(keyUVScale, mgl32.Vec2{ob.UVScale[0], ob.UVScale[1]})
	}

	if ob.Material != "" {
		if m, ok := sc.Materials.Find(ob.Material); ok {
			sc.uniforms.SetVec3(keyMaterialDiffuse, m.Diffuse)
			sc.uniforms.SetVec3(keyMaterialSpecular, m.Specular)
			sc.uniforms.SetFloat(keyMaterialShininess, m.Shininess)
		}
	}

	sc.meshes.Draw(ob.Mesh.String())
}

// Release frees the GPU textures the scene loaded. The shader program
// and meshes are released by their owners.
func (sc *Scene) Release() {
	sc.Textures.Release()
}
