package binarize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/binarize"
	"github.com/jalphad/qrcode/qrcode/rgbimage"
)

func solidImage(width, height int, r, g, b byte) *rgbimage.RGBImage {
	pixels := make([]byte, 3*width*height)
	for i := 0; i < width*height; i++ {
		pixels[3*i] = r
		pixels[3*i+1] = g
		pixels[3*i+2] = b
	}
	return &rgbimage.RGBImage{Width: width, Height: height, Pixels: pixels}
}

func TestBinarizeAllWhiteImageProducesAllWhiteMatrix(t *testing.T) {
	img := solidImage(16, 16, 255, 255, 255)
	bm := binarize.Binarize(img)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.True(t, bm.IsWhite(x, y))
		}
	}
}

func TestBinarizeAllBlackImageProducesAllBlackMatrix(t *testing.T) {
	img := solidImage(16, 16, 0, 0, 0)
	bm := binarize.Binarize(img)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			require.True(t, bm.IsBlack(x, y))
		}
	}
}

func TestBinarizeSplitImageSeparatesHalves(t *testing.T) {
	width, height := 16, 16
	pixels := make([]byte, 3*width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := byte(255)
			if x < width/2 {
				v = 0
			}
			off := (y*width + x) * 3
			pixels[off], pixels[off+1], pixels[off+2] = v, v, v
		}
	}
	img := &rgbimage.RGBImage{Width: width, Height: height, Pixels: pixels}
	bm := binarize.Binarize(img)

	require.True(t, bm.IsBlack(1, 8))
	require.True(t, bm.IsWhite(14, 8))
}
