// Package binarize turns an RGB image into a black/white module grid
// using block-local luminance thresholds, following the same
// block-averaging scheme zxing's HybridBinarizer uses.
package binarize

import (
	"github.com/jalphad/qrcode/qrcode/bitmatrix"
	"github.com/jalphad/qrcode/qrcode/rgbimage"
)

const (
	blockSize       = 8
	minDynamicRange = 24
)

// luminance computes (R + 2G + B) >> 2, approximating perceived
// brightness (the human eye weighs green roughly twice as heavily as red
// or blue).
func luminance(r, g, b byte) byte {
	return byte((uint16(r) + 2*uint16(g) + uint16(b)) >> 2)
}

func calculateLuminances(img *rgbimage.RGBImage) []byte {
	luminances := make([]byte, img.Width*img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			luminances[y*img.Width+x] = luminance(r, g, b)
		}
	}
	return luminances
}

func calculateBlackPoints(luminances []byte, subWidth, subHeight, width, height int) []byte {
	blackPoints := make([]byte, subWidth*subHeight)

	for y := 0; y < subHeight; y++ {
		for x := 0; x < subWidth; x++ {
			maxX := (x + 1) * blockSize
			if maxX > width {
				maxX = width
			}
			maxY := (y + 1) * blockSize
			if maxY > height {
				maxY = height
			}

			var sum, n int
			min, max := 0xFF, 0
			for yy := y * blockSize; yy < maxY; yy++ {
				for xx := x * blockSize; xx < maxX; xx++ {
					pixel := int(luminances[yy*width+xx])
					sum += pixel
					n++
					if pixel < min {
						min = pixel
					}
					if pixel > max {
						max = pixel
					}
				}
			}

			average := sum / n
			if max-min <= minDynamicRange {
				average = min / 2
				if y > 0 && x > 0 {
					neighborAverage := (int(blackPoints[(y-1)*subWidth+x]) +
						2*int(blackPoints[y*subWidth+x-1]) +
						int(blackPoints[(y-1)*subWidth+x-1])) / 4
					if min < neighborAverage {
						average = neighborAverage
					}
				}
			}

			blackPoints[y*subWidth+x] = byte(average)
		}
	}

	return blackPoints
}

func cap(value, max int) int {
	switch {
	case value < 2:
		return 2
	case value < max:
		return value
	default:
		return max
	}
}

func thresholdBlock(luminances []byte, x, y, threshold, width, height int, bm *bitmatrix.BitMatrix) {
	maxX := x + blockSize
	if maxX > bm.Width() {
		maxX = bm.Width()
	}
	maxY := y + blockSize
	if maxY > bm.Height() {
		maxY = bm.Height()
	}
	for yy := y; yy < maxY; yy++ {
		for xx := x; xx < maxX; xx++ {
			if int(luminances[yy*width+xx]) <= threshold {
				bm.SetBlack(xx, yy)
			}
		}
	}
}

func calculateThresholdForBlocks(luminances []byte, subWidth, subHeight, width, height int, blackPoints []byte, bm *bitmatrix.BitMatrix) {
	maxYOffset := height - blockSize
	maxXOffset := width - blockSize

	for y := 0; y < subHeight; y++ {
		yOffset := y * blockSize
		if yOffset > maxYOffset {
			yOffset = maxYOffset
		}
		top := cap(y, subHeight-3)

		for x := 0; x < subWidth; x++ {
			xOffset := x * blockSize
			if xOffset > maxXOffset {
				xOffset = maxXOffset
			}
			left := cap(x, subWidth-3)

			sum := 0
			for z := -2; z <= 2; z++ {
				yy := top + z
				if yy < 0 {
					yy = 0
				} else if yy >= subHeight {
					yy = subHeight - 1
				}
				row := blackPoints[yy*subWidth:]
				for dx := -2; dx <= 2; dx++ {
					xx := left + dx
					if xx < 0 {
						xx = 0
					} else if xx >= subWidth {
						xx = subWidth - 1
					}
					sum += int(row[xx])
				}
			}
			average := sum / 25
			thresholdBlock(luminances, xOffset, yOffset, average, width, height, bm)
		}
	}
}

// Binarize converts an RGB image into a BitMatrix using block-local
// luminance thresholds: 8x8 blocks (ragged at the right/bottom edges),
// each block's threshold derived from its own min/max/mean luminance
// (with a flat-block override for low-dynamic-range blocks), then
// smoothed over a 5x5 window of neighbouring raw thresholds before
// being applied per-pixel.
func Binarize(img *rgbimage.RGBImage) *bitmatrix.BitMatrix {
	luminances := calculateLuminances(img)

	subWidth := img.Width / blockSize
	if img.Width%blockSize != 0 {
		subWidth++
	}
	subHeight := img.Height / blockSize
	if img.Height%blockSize != 0 {
		subHeight++
	}

	blackPoints := calculateBlackPoints(luminances, subWidth, subHeight, img.Width, img.Height)

	bm := bitmatrix.New(img.Width, img.Height)
	calculateThresholdForBlocks(luminances, subWidth, subHeight, img.Width, img.Height, blackPoints, bm)

	return bm
}
