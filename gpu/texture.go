// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Device uploads decoded texture pixels to the GPU. It implements the
// texture device interface of the scene package.
type Device struct{}

// Upload creates a 2D texture from tightly packed 8-bit pixel rows
// with 3 or 4 channels, generates mipmaps, and returns the texture
// handle. Textures repeat in both directions and filter linearly.
func (Device) Upload(width, height, channels int, pix []byte) (uint32, error) {
	var internal int32
	var format uint32
	switch channels {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("gpu: unsupported channel count %d", channels)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if channels == 3 {
		// tightly packed RGB rows are not 4-byte aligned in general
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if channels == 3 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return handle, nil
}

// Bind binds the texture to the given texture unit.
func (Device) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Release deletes the given textures.
func (Device) Release(handles []uint32) {
	if len(handles) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(handles)), &handles[0])
}
