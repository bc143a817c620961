// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/go-gl/mathgl/mgl32"

// Material holds the Phong shading coefficients an object selects by
// tag.
type Material struct {
	Tag       string     `yaml:"tag"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// DefaultMaterialTag names the material guaranteed to exist after
// Prepare.
const DefaultMaterialTag = "default"

// defaultMaterial is defined when the manifest does not provide one.
func defaultMaterial() Material {
	return Material{
		Tag:       DefaultMaterialTag,
		Diffuse:   mgl32.Vec3{0.6, 0.6, 0.5},
		Specular:  mgl32.Vec3{0.9, 0.9, 0.8},
		Shininess: 64,
	}
}

// Materials is the material registry: an ordered list searched by tag.
type Materials struct {
	list []Material
}

// Define appends a material. Tags are not deduplicated; with duplicate
// tags, Find returns the first one defined.
func (mt *Materials) Define(m Material) {
	mt.list = append(mt.list, m)
}

// Find returns the first material defined with the given tag, and
// false if there is none.
func (mt *Materials) Find(tag string) (Material, bool) {
	for _, m := range mt.list {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (mt *Materials) Len() int {
	return len(mt.list)
}
