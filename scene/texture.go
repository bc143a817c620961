// Copyright (c) 2026, Homestead Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	"os"

	"github.com/anthonynsimon/bild/transform"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// TextureDevice is the GPU surface the texture registry drives.
// gpu.Textures implements it; tests substitute a recorder.
type TextureDevice interface {
	// Upload creates a texture from packed 8-bit pixels with 3 (RGB)
	// or 4 (RGBA) channels per pixel and returns its handle.
	Upload(width, height, channels int, pix []byte) (uint32, error)

	// Bind makes the texture with the given handle current on the
	// given texture unit.
	Bind(unit int, handle uint32)

	// Release frees the given textures.
	Release(handles []uint32)
}

// TextureEntry pairs a loaded texture's handle with the tag objects
// reference it by. Its index in the registry is the texture unit it
// binds to.
type TextureEntry struct {
	Tag    string
	Handle uint32
}

// MaxTextures is the number of texture units the registry can bind.
const MaxTextures = 16

// Textures is the ordered texture registry. Loading appends entries;
// a texture's slot is its load-order index, so sampler uniforms can
// address it after BindAll.
type Textures struct {
	device  TextureDevice
	entries []TextureEntry
}

// NewTextures returns an empty registry uploading through the given
// device.
func NewTextures(device TextureDevice) *Textures {
	return &Textures{device: device}
}

// Load reads the image file, flips it vertically so the first row is
// at texture coordinate origin, uploads it, and registers it under
// tag. Only 3-channel RGB and 4-channel RGBA images are supported.
// On any failure the registry is unchanged.
func (tx *Textures) Load(path, tag string) error {
	if tx.Slot(tag) >= 0 {
		return fmt.Errorf("texture tag %q already loaded", tag)
	}
	if len(tx.entries) >= MaxTextures {
		return fmt.Errorf("texture %q: all %d texture slots in use", tag, MaxTextures)
	}

	img, err := decodeImage(path)
	if err != nil {
		return err
	}
	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return fmt.Errorf("texture %s: unsupported channel count %d: only 3-channel RGB and 4-channel RGBA images are supported", path, channels)
	}

	flipped := transform.FlipV(img)
	pix := packPixels(flipped, channels)
	handle, err := tx.device.Upload(flipped.Rect.Dx(), flipped.Rect.Dy(), channels, pix)
	if err != nil {
		return fmt.Errorf("texture %s: %w", path, err)
	}

	tx.entries = append(tx.entries, TextureEntry{Tag: tag, Handle: handle})
	return nil
}

// BindAll binds every loaded texture to the unit matching its slot,
// in load order.
func (tx *Textures) BindAll() {
	for i, te := range tx.entries {
		tx.device.Bind(i, te.Handle)
	}
}

// Slot returns the texture unit for tag, or -1 if no texture with
// that tag has been loaded.
func (tx *Textures) Slot(tag string) int {
	for i, te := range tx.entries {
		if te.Tag == tag {
			return i
		}
	}
	return -1
}

// Handle returns the GPU handle for tag, and false if no texture with
// that tag has been loaded.
func (tx *Textures) Handle(tag string) (uint32, bool) {
	if i := tx.Slot(tag); i >= 0 {
		return tx.entries[i].Handle, true
	}
	return 0, false
}

// Count returns the number of loaded textures.
func (tx *Textures) Count() int {
	return len(tx.entries)
}

// Release frees all loaded textures and empties the registry.
func (tx *Textures) Release() {
	if len(tx.entries) == 0 {
		return
	}
	handles := make([]uint32, len(tx.entries))
	for i, te := range tx.entries {
		handles[i] = te.Handle
	}
	tx.device.Release(handles)
	tx.entries = nil
}

// decodeImage reads and decodes an image file in any registered
// format: png, jpeg, gif, bmp, tiff, or webp.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

// channelCount reports how many channels the decoded image carries,
// from its source encoding rather than its in-memory layout.
func channelCount(img image.Image) int {
	switch im := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 2
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.Paletted:
		for _, c := range im.Palette {
			if _, _, _, a := c.RGBA(); a < 0xffff {
				return 4
			}
		}
		return 3
	default:
		return 4
	}
}

// packPixels flattens an RGBA image into tightly packed rows with the
// given channel count, dropping alpha for 3-channel output.
func packPixels(img *image.RGBA, channels int) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if channels == 4 && img.Stride == 4*w {
		return img.Pix
	}
	pix := make([]byte, w*h*channels)
	di := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			si := x * 4
			pix[di] = row[si]
			pix[di+1] = row[si+1]
			pix[di+2] = row[si+2]
			if channels == 4 {
				pix[di+3] = row[si+3]
			}
			di += channels
		}
	}
	return pix
}
