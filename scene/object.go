// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// MeshKind selects one of the primitive meshes.
type MeshKind int32

const (
	MeshPlane MeshKind = iota
	MeshBox
	MeshCylinder
)

func (mk MeshKind) String() string {
	switch mk {
	case MeshPlane:
		return "plane"
	case MeshBox:
		return "box"
	case MeshCylinder:
		return "cylinder"
	}
	return fmt.Sprintf("MeshKind(%d)", int32(mk))
}

// UnmarshalYAML parses the lowercase kind names used in manifests.
func (mk *MeshKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "plane":
		*mk = MeshPlane
	case "box":
		*mk = MeshBox
	case "cylinder":
		*mk = MeshCylinder
	default:
		return fmt.Errorf("unknown mesh kind %q", s)
	}
	return nil
}

// Object is one draw record in the authored scene: a primitive mesh
// with its transform and the shader state to set before drawing.
// Optional fields that are unset leave the corresponding shader state
// untouched, so the draw inherits whatever the previous object set.
type Object struct {
	Name string   `yaml:"name"`
	Mesh MeshKind `yaml:"mesh"`

	Scale mgl32.Vec3 `yaml:"scale"`
	// Rotation is in degrees, applied around X, then Y, then Z.
	Rotation mgl32.Vec3 `yaml:"rotation"`
	Position mgl32.Vec3 `yaml:"position"`

	// Color disables texturing for this draw and fills with a flat
	// RGBA color.
	Color *[4]float32 `yaml:"color"`

	// Texture re-enables texturing with the registry tag's texture.
	Texture string `yaml:"texture"`

	// UVScale scales the texture coordinates for this and following
	// draws.
	UVScale *[2]float32 `yaml:"uvScale"`

	// Material selects Phong coefficients by registry tag.
	Material string `yaml:"material"`
}
