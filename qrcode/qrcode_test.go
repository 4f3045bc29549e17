package qrcode_test

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode"
	"github.com/jalphad/qrcode/qrcode/rgbimage"
)

func blankImage(t *testing.T) *rgbimage.RGBImage {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	return rgbimage.FromImage(img)
}

func TestFindQRCodesRejectsBlankImage(t *testing.T) {
	_, err := qrcode.FindQRCodes(blankImage(t))
	require.Error(t, err)

	var decodeErr *qrcode.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestFindQRCodesRejectsOversizedImage(t *testing.T) {
	_, err := qrcode.FindQRCodes(&rgbimage.RGBImage{Width: 100000, Height: 100000, Pixels: nil})
	require.Error(t, err)

	var memErr *qrcode.MemoryError
	require.ErrorAs(t, err, &memErr)
}

func TestMatchContainsOnlyText(t *testing.T) {
	require.True(t, qrcode.Match{Message: []byte("'Twas brillig")}.ContainsOnlyText())
	require.False(t, qrcode.Match{Message: []byte{0x00, 0x01}}.ContainsOnlyText())
}

func TestScanAllReturnsNoMatchesForBlankImages(t *testing.T) {
	images := []*rgbimage.RGBImage{blankImage(t), blankImage(t)}

	matches, err := qrcode.ScanAll(context.Background(), images)
	require.NoError(t, err)
	require.Empty(t, matches)
}
