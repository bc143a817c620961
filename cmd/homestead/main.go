// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command homestead renders a small 3D homestead scene in real time: a
// house, a table with chairs, and a sky dome on a textured ground
// plane, viewed through a free-fly first-person camera.
//
// Controls: W/A/S/D move, Q/E rise and fall, the mouse looks around,
// the scroll wheel adjusts movement speed, P and O select perspective
// and orthographic projection, and Escape quits.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/homestead3d/homestead/gpu"
	"github.com/homestead3d/homestead/scene"
	"github.com/homestead3d/homestead/view"
)

func init() {
	// GLFW and OpenGL require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configFile := flag.String("config", "homestead.toml", "TOML config `file`")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fatal("loading config", err)
	}
	if err := run(cfg); err != nil {
		fatal("rendering", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func run(cfg Config) error {
	win, err := gpu.NewWindow(windowWidth, windowHeight, cfg.Title)
	if err != nil {
		return err
	}
	defer win.Terminate()

	if err := gpu.Init(); err != nil {
		return err
	}

	prog, err := gpu.NewPhongProgram()
	if err != nil {
		return err
	}
	defer prog.Release()

	mf, err := sceneManifest(cfg)
	if err != nil {
		return err
	}

	meshes := gpu.NewMeshes()
	defer meshes.Release()

	sc := scene.New(mf, prog, gpu.Device{}, meshes)
	sc.TextureDir = cfg.TextureDir
	if err := sc.Prepare(); err != nil {
		return err
	}
	defer sc.Release()

	vs := view.NewState(windowWidth, windowHeight)
	cfg.Camera.apply(vs.Camera)

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		vs.CursorTo(x, y)
	})
	win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		vs.ScrollBy(dx, dy)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		gpu.SetViewport(w, h)
	})

	slog.Info("homestead: rendering", "scene", mf.Name, "objects", len(mf.Objects))

	for !win.ShouldClose() {
		dt := vs.Advance(glfw.GetTime())
		processInput(win, vs, dt)

		gpu.ClearFrame()
		vs.Apply(prog)
		sc.RenderFrame()

		win.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// sceneManifest returns the configured manifest, or the built-in
// homestead scene when none is set.
func sceneManifest(cfg Config) (*scene.Manifest, error) {
	if cfg.Manifest != "" {
		return scene.LoadManifest(cfg.Manifest)
	}
	return scene.Homestead()
}

// processInput polls the movement and mode keys once per frame.
func processInput(win *gpu.Window, vs *view.State, dt float32) {
	if win.GetKey(glfw.KeyEscape) == glfw.Press {
		win.SetShouldClose(true)
	}

	if win.GetKey(glfw.KeyW) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Forward, dt)
	}
	if win.GetKey(glfw.KeyS) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Backward, dt)
	}
	if win.GetKey(glfw.KeyA) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Left, dt)
	}
	if win.GetKey(glfw.KeyD) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Right, dt)
	}
	if win.GetKey(glfw.KeyQ) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Up, dt)
	}
	if win.GetKey(glfw.KeyE) == glfw.Press {
		vs.Camera.ProcessKeyboard(view.Down, dt)
	}

	if win.GetKey(glfw.KeyP) == glfw.Press {
		vs.SetProjection(view.Perspective)
	}
	if win.GetKey(glfw.KeyO) == glfw.Press {
		vs.SetProjection(view.Orthographic)
	}
}
