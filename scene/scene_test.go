// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// op is one recorded shader or draw operation, preserving the exact
// interleaving the renderer produced.
type op struct {
	kind  string
	name  string
	value any
}

type recorder struct {
	ops []op
}

func (r *recorder) add(kind, name string, value any) {
	r.ops = append(r.ops, op{kind, name, value})
}

// drawBlocks splits the recorded operations into per-draw blocks, each
// ending with its draw op.
func (r *recorder) drawBlocks() [][]op {
	var blocks [][]op
	start := 0
	for i, o := range r.ops {
		if o.kind == "draw" {
			blocks = append(blocks, r.ops[start:i+1])
			start = i + 1
		}
	}
	return blocks
}

type recUniforms struct{ r *recorder }

func (ru recUniforms) SetMat4(name string, m mgl32.Mat4)  { ru.r.add("mat4", name, m) }
func (ru recUniforms) SetVec2(name string, v mgl32.Vec2)  { ru.r.add("vec2", name, v) }
func (ru recUniforms) SetVec3(name string, v mgl32.Vec3)  { ru.r.add("vec3", name, v) }
func (ru recUniforms) SetVec4(name string, v mgl32.Vec4)  { ru.r.add("vec4", name, v) }
func (ru recUniforms) SetFloat(name string, v float32)    { ru.r.add("float", name, v) }
func (ru recUniforms) SetBool(name string, v bool)        { ru.r.add("bool", name, v) }
func (ru recUniforms) SetSampler(name string, unit int32) { ru.r.add("sampler", name, unit) }

type recMeshes struct {
	r       *recorder
	loads   [][]string
	loadErr error
}

func (rm *recMeshes) Load(names ...string) error {
	rm.loads = append(rm.loads, names)
	return rm.loadErr
}

func (rm *recMeshes) Draw(name string) { rm.r.add("draw", name, nil) }

// newHomestead builds a scene from the built-in manifest with fakes
// and, when withTextures is set, a texture fixture for every manifest
// entry.
func newHomestead(t *testing.T, withTextures bool) (*Scene, *recorder, *fakeDevice, *recMeshes) {
	t.Helper()
	mf, err := Homestead()
	require.NoError(t, err)

	dir := t.TempDir()
	if withTextures {
		for _, tr := range mf.Textures {
			writePNG(t, dir, tr.File, color.NRGBA{50, 100, 150, 255})
		}
	}

	rec := &recorder{}
	fd := &fakeDevice{}
	rm := &recMeshes{r: rec}
	sc := New(mf, recUniforms{rec}, fd, rm)
	sc.TextureDir = dir
	return sc, rec, fd, rm
}

func TestPrepare(t *testing.T) {
	sc, rec, fd, rm := newHomestead(t, true)
	require.NoError(t, sc.Prepare())

	// the default material comes from the manifest, not the fallback.
	assert.Equal(t, 1, sc.Materials.Len())
	m, ok := sc.Materials.Find(DefaultMaterialTag)
	require.True(t, ok)
	assert.Equal(t, float32(64), m.Shininess)

	// all seven textures load in manifest order and bind to their
	// slots.
	assert.Equal(t, 7, sc.Textures.Count())
	assert.Equal(t, 0, sc.Textures.Slot("grass"))
	assert.Equal(t, 2, sc.Textures.Slot("woodseat"))
	assert.Equal(t, 6, sc.Textures.Slot("stucco"))
	require.Len(t, fd.binds, 7)
	for i, b := range fd.binds {
		assert.Equal(t, i, b.unit)
		assert.Equal(t, uint32(101+i), b.handle)
	}

	// meshes load once, in first-use order.
	assert.Equal(t, [][]string{{"plane", "cylinder", "box"}}, rm.loads)

	// the light rig and texture scale push exactly once, in order.
	want := []op{
		{"bool", "bUseLighting", true},
		{"vec3", "directionalLight.direction", mgl32.Vec3{-0.5, -1, -0.3}},
		{"vec3", "directionalLight.ambient", mgl32.Vec3{0.2, 0.1, 0.05}},
		{"vec3", "directionalLight.diffuse", mgl32.Vec3{1, 0.5, 0.2}},
		{"vec3", "directionalLight.specular", mgl32.Vec3{1, 0.5, 0.3}},
		{"bool", "directionalLight.bActive", true},
		{"vec3", "pointLights[0].position", mgl32.Vec3{0, 5, -8}},
		{"vec3", "pointLights[0].ambient", mgl32.Vec3{0.2, 0.15, 0.1}},
		{"vec3", "pointLights[0].diffuse", mgl32.Vec3{1, 0.85, 0.6}},
		{"vec3", "pointLights[0].specular", mgl32.Vec3{1, 0.9, 0.7}},
		{"bool", "pointLights[0].bActive", true},
		{"vec3", "pointLights[1].position", mgl32.Vec3{0, 3, 2}},
		{"vec3", "pointLights[1].ambient", mgl32.Vec3{0.1, 0.1, 0.2}},
		{"vec3", "pointLights[1].diffuse", mgl32.Vec3{0.3, 0.3, 0.6}},
		{"vec3", "pointLights[1].specular", mgl32.Vec3{0.5, 0.5, 0.9}},
		{"bool", "pointLights[1].bActive", true},
		{"vec2", "UVscale", mgl32.Vec2{1, 1}},
	}
	assert.Equal(t, want, rec.ops)
}

func TestPrepareIsIdempotent(t *testing.T) {
	sc, rec, _, rm := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	ops, loads := len(rec.ops), len(rm.loads)

	require.NoError(t, sc.Prepare())
	assert.Len(t, rec.ops, ops)
	assert.Len(t, rm.loads, loads)
	assert.Equal(t, 7, sc.Textures.Count())
}

func TestPrepareMissingTextureFiles(t *testing.T) {
	// an empty texture directory: every load fails, is logged, and is
	// skipped; preparation still succeeds.
	sc, _, fd, _ := newHomestead(t, false)
	require.NoError(t, sc.Prepare())
	assert.Equal(t, 0, sc.Textures.Count())
	assert.Empty(t, fd.binds)
}

// one missing texture file fails its own load only; the others stay
// usable, taking sequential slots in load order.
func TestPrepareSkipsFailedTexture(t *testing.T) {
	mf, err := Homestead()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, tr := range mf.Textures {
		if tr.Tag == "sky" {
			continue
		}
		writePNG(t, dir, tr.File, color.NRGBA{80, 80, 80, 255})
	}

	rec := &recorder{}
	sc := New(mf, recUniforms{rec}, &fakeDevice{}, &recMeshes{r: rec})
	sc.TextureDir = dir
	require.NoError(t, sc.Prepare())

	assert.Equal(t, 6, sc.Textures.Count())
	assert.Equal(t, -1, sc.Textures.Slot("sky"))
	assert.Equal(t, 0, sc.Textures.Slot("grass"))
	assert.Equal(t, 1, sc.Textures.Slot("woodseat"))
	assert.Equal(t, 5, sc.Textures.Slot("stucco"))
}

func TestPrepareMeshLoadError(t *testing.T) {
	sc, _, _, rm := newHomestead(t, true)
	rm.loadErr = errors.New("no such primitive")
	require.Error(t, sc.Prepare())
}

func TestRenderFrameDrawSequence(t *testing.T) {
	sc, rec, _, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()

	var draws []string
	for _, o := range rec.ops {
		if o.kind == "draw" {
			draws = append(draws, o.name)
		}
	}

	want := []string{
		"plane",    // ground
		"cylinder", // sky dome
		"cylinder", "cylinder", "cylinder", // table top rim, top, base
		"box",                                          // left chair seat
		"cylinder", "cylinder", "cylinder", "cylinder", // left chair legs
		"box",                                          // right chair seat
		"cylinder", "cylinder", "cylinder", "cylinder", // right chair legs
	}
	for i := 0; i < 20; i++ { // house boxes
		want = append(want, "box")
	}
	assert.Equal(t, want, draws)
}

// the golden sequence: every object's draw block carries exactly the
// state its manifest record sets, in renderer order, so the whole
// frame is pinned draw by draw against the authored list.
func TestRenderFrameGoldenSequence(t *testing.T) {
	sc, rec, _, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()
	blocks := rec.drawBlocks()

	mf := sc.Manifest
	require.Len(t, blocks, len(mf.Objects))
	for i, ob := range mf.Objects {
		want := []op{
			{"mat4", "model", BuildModelMatrix(ob.Scale, ob.Rotation, ob.Position)},
		}
		if ob.Color != nil {
			c := *ob.Color
			want = append(want,
				op{"bool", "bUseTexture", false},
				op{"vec4", "objectColor", mgl32.Vec4{c[0], c[1], c[2], c[3]}})
		}
		if ob.Texture != "" {
			slot := sc.Textures.Slot(ob.Texture)
			require.GreaterOrEqual(t, slot, 0, "object %q references texture %q", ob.Name, ob.Texture)
			want = append(want,
				op{"bool", "bUseTexture", true},
				op{"sampler", "objectTexture", int32(slot)})
		}
		if ob.UVScale != nil {
			want = append(want, op{"vec2", "UVscale", mgl32.Vec2{ob.UVScale[0], ob.UVScale[1]}})
		}
		if ob.Material != "" {
			m, ok := sc.Materials.Find(ob.Material)
			require.True(t, ok, "object %q references material %q", ob.Name, ob.Material)
			want = append(want,
				op{"vec3", "material.diffuseColor", m.Diffuse},
				op{"vec3", "material.specularColor", m.Specular},
				op{"float", "material.shininess", m.Shininess})
		}
		want = append(want, op{"draw", ob.Mesh.String(), nil})
		assert.Equal(t, want, blocks[i], "object %d %q", i, ob.Name)
	}
}

func TestRenderFrameGroundBlock(t *testing.T) {
	sc, rec, _, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()
	blocks := rec.drawBlocks()
	require.Len(t, blocks, 35)

	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{40, 0.1, 40}, mgl32.Vec3{}, mgl32.Vec3{0, -0.05, 0})},
		{"bool", "bUseTexture", false},
		{"vec4", "objectColor", mgl32.Vec4{0, 0.6, 0, 1}},
		{"bool", "bUseTexture", true},
		{"sampler", "objectTexture", int32(0)},
		{"vec3", "material.diffuseColor", mgl32.Vec3{0.6, 0.6, 0.5}},
		{"vec3", "material.specularColor", mgl32.Vec3{0.9, 0.9, 0.8}},
		{"float", "material.shininess", float32(64)},
		{"draw", "plane", nil},
	}
	assert.Equal(t, want, blocks[0])
}

// the table base sets only its transform and texture; color and
// material carry over from the previous object.
func TestRenderFrameInheritsUnsetState(t *testing.T) {
	sc, rec, _, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()
	blocks := rec.drawBlocks()
	require.Len(t, blocks, 35)

	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{0.2, 0.8, 0.2}, mgl32.Vec3{}, mgl32.Vec3{0, 0.4, 0})},
		{"bool", "bUseTexture", true},
		{"sampler", "objectTexture", int32(2)},
		{"draw", "cylinder", nil},
	}
	assert.Equal(t, want, blocks[4])
}

// the house base sets color and texture but no material: the material
// uniforms keep the previous object's values.
func TestRenderFrameHouseBaseBlock(t *testing.T) {
	sc, rec, _, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()
	blocks := rec.drawBlocks()
	require.Len(t, blocks, 35)

	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{8, 4, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, -8})},
		{"bool", "bUseTexture", false},
		{"vec4", "objectColor", mgl32.Vec4{0.8, 0.8, 0.8, 1}},
		{"bool", "bUseTexture", true},
		{"sampler", "objectTexture", int32(6)},
		{"draw", "box", nil},
	}
	assert.Equal(t, want, blocks[15])
}

func TestRenderObjectTextureMiss(t *testing.T) {
	mf := &Manifest{
		Objects: []Object{{
			Name:    "slab",
			Mesh:    MeshBox,
			Scale:   mgl32.Vec3{1, 1, 1},
			Texture: "missing",
		}},
	}
	rec := &recorder{}
	rm := &recMeshes{r: rec}
	sc := New(mf, recUniforms{rec}, &fakeDevice{}, rm)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()

	// an unresolved texture tag draws as if untextured.
	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{})},
		{"bool", "bUseTexture", false},
		{"draw", "box", nil},
	}
	assert.Equal(t, want, rec.ops)
}

func TestRenderObjectMaterialMiss(t *testing.T) {
	mf := &Manifest{
		Objects: []Object{{
			Name:     "slab",
			Mesh:     MeshBox,
			Scale:    mgl32.Vec3{1, 1, 1},
			Material: "granite",
		}},
	}
	rec := &recorder{}
	rm := &recMeshes{r: rec}
	sc := New(mf, recUniforms{rec}, &fakeDevice{}, rm)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()

	// an unknown material tag writes no material uniforms at all.
	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{})},
		{"draw", "box", nil},
	}
	assert.Equal(t, want, rec.ops)
}

func TestRenderObjectUVScale(t *testing.T) {
	uv := [2]float32{4, 4}
	mf := &Manifest{
		Objects: []Object{{
			Name:    "slab",
			Mesh:    MeshPlane,
			Scale:   mgl32.Vec3{1, 1, 1},
			UVScale: &uv,
		}},
	}
	rec := &recorder{}
	rm := &recMeshes{r: rec}
	sc := New(mf, recUniforms{rec}, &fakeDevice{}, rm)
	require.NoError(t, sc.Prepare())
	rec.ops = nil

	sc.RenderFrame()

	want := []op{
		{"mat4", "model", BuildModelMatrix(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{}, mgl32.Vec3{})},
		{"vec2", "UVscale", mgl32.Vec2{4, 4}},
		{"draw", "plane", nil},
	}
	assert.Equal(t, want, rec.ops)
}

func TestSceneRelease(t *testing.T) {
	sc, _, fd, _ := newHomestead(t, true)
	require.NoError(t, sc.Prepare())

	sc.Release()
	require.Len(t, fd.freed, 1)
	assert.Len(t, fd.freed[0], 7)
	assert.Equal(t, 0, sc.Textures.Count())
}

// the default material is guaranteed even when the manifest defines
// none.
func TestPrepareFallbackDefaultMaterial(t *testing.T) {
	mf := &Manifest{Objects: []Object{{Name: "slab", Mesh: MeshBox, Scale: mgl32.Vec3{1, 1, 1}}}}
	rec := &recorder{}
	sc := New(mf, recUniforms{rec}, &fakeDevice{}, &recMeshes{r: rec})
	require.NoError(t, sc.Prepare())

	m, ok := sc.Materials.Find(DefaultMaterialTag)
	require.True(t, ok)
	assert.Equal(t, defaultMaterial(), m)
}
