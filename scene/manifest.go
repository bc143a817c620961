// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed homestead.yaml
var homesteadYAML []byte

// TextureRef names an image file to load and the tag objects use to
// reference it. File paths resolve against the scene's texture
// directory.
type TextureRef struct {
	Tag  string `yaml:"tag"`
	File string `yaml:"file"`
}

// Manifest is the declarative description of a scene: the textures to
// load, the materials to define, the light rig, and the ordered object
// list. Objects draw in manifest order.
type Manifest struct {
	Name      string       `yaml:"name"`
	Textures  []TextureRef `yaml:"textures"`
	Materials []Material   `yaml:"materials"`
	Lighting  Lighting     `yaml:"lighting"`
	Objects   []Object     `yaml:"objects"`
}

// Homestead returns the built-in house and patio scene.
func Homestead() (*Manifest, error) {
	return ParseManifest(homesteadYAML)
}

// ParseManifest decodes a YAML scene description.
func ParseManifest(data []byte) (*Manifest, error) {
	mf := &Manifest{}
	if err := yaml.Unmarshal(data, mf); err != nil {
		return nil, fmt.Errorf("scene manifest: %w", err)
	}
	return mf, nil
}

// LoadManifest reads a YAML scene description from a file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene manifest: %w", err)
	}
	return ParseManifest(data)
}
