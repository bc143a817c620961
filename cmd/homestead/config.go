// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"

	"github.com/homestead3d/homestead/view"
)

// window size in screen coordinates. The orthographic projection
// bounds derive from this aspect ratio, so it is fixed rather than
// configurable.
const (
	windowWidth  = 1000
	windowHeight = 800
)

// Config is the renderer configuration: the window title, the texture
// directory, an optional scene manifest override, and the camera
// start parameters. A TOML file overlays the built-in defaults.
type Config struct {
	// Title is the window title.
	Title string `toml:"title"`

	// TextureDir is the directory the scene's texture files load from.
	TextureDir string `toml:"texture_dir"`

	// Manifest is an optional scene manifest file (YAML), rendered in
	// place of the built-in homestead scene.
	Manifest string `toml:"manifest"`

	Camera CameraConfig `toml:"camera"`
}

// CameraConfig is the camera start pose and input response.
type CameraConfig struct {
	Position    [3]float32 `toml:"position"`
	Front       [3]float32 `toml:"front"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	Zoom        float32    `toml:"zoom"`
}

func defaultConfig() Config {
	return Config{
		Title:      "Homestead",
		TextureDir: "Textures",
		Camera: CameraConfig{
			Position:    [3]float32{0, 5, 12},
			Front:       [3]float32{0, -0.5, -2},
			Speed:       20,
			Sensitivity: 0.1,
			Zoom:        80,
		},
	}
}

// loadConfig overlays the TOML file at path onto the defaults. A
// missing file leaves the defaults untouched.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Camera.Front == ([3]float32{}) {
		return cfg, fmt.Errorf("config %s: camera front must be nonzero", path)
	}
	return cfg, nil
}

// apply sets the camera start pose and input response.
func (cc CameraConfig) apply(cm *view.Camera) {
	cm.Position = mgl32.Vec3(cc.Position)
	cm.MovementSpeed = cc.Speed
	cm.MouseSensitivity = cc.Sensitivity
	cm.Zoom = cc.Zoom
	cm.SetFront(mgl32.Vec3(cc.Front))
}
