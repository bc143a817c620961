// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the size of the point light array in the shader.
const MaxPointLights = 5

// DirLight is a directional light: parallel rays from an infinitely
// distant source, like the sun.
type DirLight struct {
	Direction mgl32.Vec3 `yaml:"direction"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Active    bool       `yaml:"active"`
}

// PointLight is a positional light radiating in all directions.
type PointLight struct {
	Position mgl32.Vec3 `yaml:"position"`
	Ambient  mgl32.Vec3 `yaml:"ambient"`
	Diffuse  mgl32.Vec3 `yaml:"diffuse"`
	Specular mgl32.Vec3 `yaml:"specular"`
	Active   bool       `yaml:"active"`
}

// Lighting is the static light rig for a scene: one directional light
// and up to MaxPointLights point lights, pushed once during Prepare.
type Lighting struct {
	Enabled     bool         `yaml:"enabled"`
	Directional DirLight     `yaml:"directional"`
	Points      []PointLight `yaml:"points"`
}

// apply pushes the light rig into the shader. Lights beyond the
// shader's point light capacity are dropped with a warning. Unused
// array entries are never written and stay inactive.
func (lt *Lighting) apply(u Uniforms) {
	u.SetBool(keyUseLighting, lt.Enabled)
	if !lt.Enabled {
		return
	}

	d := lt.Directional
	u.SetVec3("directionalLight.direction", d.Direction)
	u.SetVec3("directionalLight.ambient", d.Ambient)
	u.SetVec3("directionalLight.diffuse", d.Diffuse)
	u.SetVec3("directionalLight.specular", d.Specular)
	u.SetBool("directionalLight.bActive", d.Active)

	points := lt.Points
	if len(points) > MaxPointLights {
		slog.Warn("scene: too many point lights", "count", len(points), "max", MaxPointLights)
		points = points[:MaxPointLights]
	}
	for i, p := range points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		u.SetVec3(prefix+"position", p.Position)
		u.SetVec3(prefix+"ambient", p.Ambient)
		u.SetVec3(prefix+"diffuse", p.Diffuse)
		u.SetVec3(prefix+"specular", p.Specular)
		u.SetBool(prefix+"bActive", p.Active)
	}
}
