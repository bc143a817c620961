// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is the OpenGL 4.1 core backend for the renderer: window
// and context setup, shader program management, texture upload, and
// primitive mesh buffers. It implements the device interfaces that
// the scene and view packages render through, keeping all cgo and GL
// state here. Every call must run on the main OS thread with the
// window context current.
package gpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads the OpenGL function pointers and sets the fixed render
// state: depth testing and standard alpha blending. The window
// context must already be current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gpu: initializing OpenGL: %w", err)
	}
	slog.Info("gpu: OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// ClearFrame clears the color and depth buffers to start a new frame.
func ClearFrame() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport sets the GL viewport, for framebuffer size changes.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
