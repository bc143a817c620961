// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	_ "embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/phong.vert
var phongVertexSrc string

//go:embed shaders/phong.frag
var phongFragmentSrc string

// Program is a compiled and linked shader program with a uniform
// location cache. It implements the uniform surfaces the scene and
// view packages write through. Writes to uniforms the program does
// not define are dropped with a one-time warning per name.
type Program struct {
	handle uint32
	name   string
	locs   map[string]int32
}

// NewPhongProgram compiles the built-in Phong lighting program the
// scene renderer draws with, and makes it the active program.
func NewPhongProgram() (*Program, error) {
	return NewProgram("phong", phongVertexSrc, phongFragmentSrc)
}

// NewProgram compiles the given vertex and fragment shader sources,
// links them into a program named name (used in errors and logs), and
// makes it the active program.
func NewProgram(name, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("gpu: program %s: vertex shader: %w", name, err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("gpu: program %s: fragment shader: %w", name, err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		lg := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("gpu: program %s: linking: %s", name, lg)
	}

	pr := &Program{handle: handle, name: name, locs: make(map[string]int32)}
	pr.Activate()
	return pr, nil
}

// Activate makes this the active program.
func (pr *Program) Activate() {
	gl.UseProgram(pr.handle)
}

// loc returns the cached location for the named uniform, or -1 if the
// program does not define it. A miss warns once per name.
func (pr *Program) loc(name string) int32 {
	if l, ok := pr.locs[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(pr.handle, gl.Str(name+"\x00"))
	if l < 0 {
		slog.Warn("gpu: uniform not found", "program", pr.name, "uniform", name)
	}
	pr.locs[name] = l
	return l
}

// SetMat4 sets a mat4 uniform.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	if l := pr.loc(name); l >= 0 {
		gl.UniformMatrix4fv(l, 1, false, &m[0])
	}
}

// SetVec2 sets a vec2 uniform.
func (pr *Program) SetVec2(name string, v mgl32.Vec2) {
	if l := pr.loc(name); l >= 0 {
		gl.Uniform2fv(l, 1, &v[0])
	}
}

// SetVec3 sets a vec3 uniform.
func (pr *Program) SetVec3(name string, v mgl32.Vec3) {
	if l := pr.loc(name); l >= 0 {
		gl.Uniform3fv(l, 1, &v[0])
	}
}

// SetVec4 sets a vec4 uniform.
func (pr *Program) SetVec4(name string, v mgl32.Vec4) {
	if l := pr.loc(name); l >= 0 {
		gl.Uniform4fv(l, 1, &v[0])
	}
}

// SetFloat sets a float uniform.
func (pr *Program) SetFloat(name string, v float32) {
	if l := pr.loc(name); l >= 0 {
		gl.Uniform1f(l, v)
	}
}

// SetBool sets a bool uniform.
func (pr *Program) SetBool(name string, v bool) {
	if l := pr.loc(name); l >= 0 {
		var iv int32
		if v {
			iv = 1
		}
		gl.Uniform1i(l, iv)
	}
}

// SetSampler points a sampler2D uniform at the given texture unit.
func (pr *Program) SetSampler(name string, unit int32) {
	if l := pr.loc(name); l >= 0 {
		gl.Uniform1i(l, unit)
	}
}

// Release deletes the program's GPU resources.
func (pr *Program) Release() {
	if pr.handle != 0 {
		gl.DeleteProgram(pr.handle)
		pr.handle = 0
	}
}

// compileShader compiles one shader stage, returning its handle or the
// driver's info log on failure.
func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csrc, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(handle, n, nil, gl.Str(lg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compiling: %s", strings.TrimRight(lg, "\x00"))
	}
	return handle, nil
}

func programInfoLog(handle uint32) string {
	var n int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &n)
	lg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(handle, n, nil, gl.Str(lg))
	return strings.TrimRight(lg, "\x00")
}
