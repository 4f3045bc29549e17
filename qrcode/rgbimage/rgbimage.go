// Package rgbimage defines the decoded-image shape the core pipeline
// consumes and the PNG-loading collaborator that produces it.
package rgbimage

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// RGBImage is an 8-bit-per-channel RGB raster: width, height, and a
// row-major byte sequence of length 3*Width*Height (R,G,B triples,
// origin top-left).
type RGBImage struct {
	Width, Height int
	Pixels        []byte
}

// At returns the (r, g, b) triple at the given pixel coordinates.
// Out-of-range coordinates are a programming error and panic.
func (img *RGBImage) At(x, y int) (r, g, b byte) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic(fmt.Sprintf("rgbimage: access (%d,%d) out of bounds for %dx%d", x, y, img.Width, img.Height))
	}
	offset := (y*img.Width + x) * 3
	return img.Pixels[offset], img.Pixels[offset+1], img.Pixels[offset+2]
}

// Load decodes a PNG stream into an RGBImage, converting whatever pixel
// format the PNG uses into 8-bit-per-channel RGB. This is the one
// PNG-decode collaborator the core pipeline depends on but does not
// implement itself.
func Load(r io.Reader) (*RGBImage, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rgbimage: decoding png: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 3*width*height)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := img.At(x, y).RGBA()
			pixels[i] = byte(r32 >> 8)
			pixels[i+1] = byte(g32 >> 8)
			pixels[i+2] = byte(b32 >> 8)
			i += 3
		}
	}

	return &RGBImage{Width: width, Height: height, Pixels: pixels}, nil
}

// FromImage converts a standard library image.Image directly, without a
// PNG-decode round trip; used by tests that build synthetic images.
func FromImage(img image.Image) *RGBImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 3*width*height)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r32, g32, b32, _ := img.At(x, y).RGBA()
			pixels[i] = byte(r32 >> 8)
			pixels[i+1] = byte(g32 >> 8)
			pixels[i+2] = byte(b32 >> 8)
			i += 3
		}
	}
	return &RGBImage{Width: width, Height: height, Pixels: pixels}
}
