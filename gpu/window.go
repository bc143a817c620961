// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the GLFW render window and its OpenGL context.
type Window struct {
	*glfw.Window
}

// NewWindow initializes GLFW and creates the render window with an
// OpenGL 4.1 core profile context, made current on the calling
// goroutine. The caller must be locked to the main OS thread. The
// cursor is captured for mouselook and vsync is on.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gpu: initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gpu: creating window: %w", err)
	}
	w.MakeContextCurrent()
	w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	glfw.SwapInterval(1)

	return &Window{Window: w}, nil
}

// Terminate destroys the window and shuts down GLFW.
func (w *Window) Terminate() {
	w.Destroy()
	glfw.Terminate()
}
