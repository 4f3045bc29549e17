package qrcode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/bitmatrix"
	"github.com/jalphad/qrcode/qrcode/locate"
	"github.com/jalphad/qrcode/qrcode/mask"
)

// The traversal here is qrcode/codeword.Extract's own unexported
// snake order, run in reverse to place known codeword bytes onto a
// fresh module grid instead of reading them back off one.
func moveToNextDataModuleForTest(x, y *int, codewordMask *bitmatrix.BitMatrix, upwards, right *bool) {
	for {
		switch {
		case *right:
			*x--
			*right = false
		case *upwards:
			*right = true
			if *y > 0 {
				*x++
				*y--
			} else {
				*upwards = false
				*x--
				if *x == 6 {
					*x--
				}
			}
		default:
			*right = true
			if *y < codewordMask.Height()-1 {
				*x++
				*y++
			} else {
				*upwards = true
				*x--
				if *x == 6 {
					*x--
				}
			}
		}
		if !codewordMask.IsBlack(*x, *y) {
			return
		}
	}
}

func placeCodewordsForTest(modules, codewordMask *bitmatrix.BitMatrix, pattern mask.Pattern, codewords []byte) {
	size := modules.Width()
	x, y := size-1, size-1
	upwards, right := true, true

	for i, cw := range codewords {
		for bitPos := 7; bitPos >= 0; bitPos-- {
			bit := (cw >> uint(bitPos)) & 1
			maskBit := byte(0)
			if pattern.Applies(x, y) {
				maskBit = 1
			}
			if bit^maskBit == 1 {
				modules.SetBlack(x, y)
			}
			if i < len(codewords)-1 || bitPos > 0 {
				moveToNextDataModuleForTest(&x, &y, codewordMask, &upwards, &right)
			}
		}
	}
}

func placeFormatInfoForTest(modules *bitmatrix.BitMatrix, code uint16) {
	size := modules.Width()
	copy1 := [15][2]int{
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
		{8, 7}, {8, 5}, {8, 4}, {8, 3}, {8, 2}, {8, 1}, {8, 0},
	}
	copy2 := [15][2]int{
		{8, size - 1}, {8, size - 2}, {8, size - 3}, {8, size - 4}, {8, size - 5}, {8, size - 6}, {8, size - 7},
		{size - 8, 8}, {size - 7, 8}, {size - 6, 8}, {size - 5, 8}, {size - 4, 8}, {size - 3, 8}, {size - 2, 8}, {size - 1, 8},
	}
	for i := 0; i < 15; i++ {
		if (code>>uint(14-i))&1 == 1 {
			modules.SetBlack(copy1[i][0], copy1[i][1])
			modules.SetBlack(copy2[i][0], copy2[i][1])
		}
	}
}

// buildVersion1MediumQRCode renders a full 21x21 module grid, mask
// pattern 0, carrying codewords as its data+error-correction payload.
// formatCodes[0] in qrcode/format is the masked word for (EC level
// Medium, mask pattern 0).
func buildVersion1MediumQRCode(t *testing.T, codewords []byte) *locate.QRCode {
	t.Helper()
	const size = 21
	functionModules, err := mask.FunctionModules(size)
	require.NoError(t, err)

	modules := bitmatrix.New(size, size)
	placeCodewordsForTest(modules, functionModules, mask.Pattern(0), codewords)
	placeFormatInfoForTest(modules, 0x5412)

	return &locate.QRCode{
		Modules:      modules,
		TopLeftX:     1, TopLeftY: 1,
		TopRightX:    19, TopRightY: 1,
		BottomLeftX:  1, BottomLeftY: 19,
		BottomRightX: 19, BottomRightY: 19,
	}
}

func TestDecodeQRCodeCleanScenarioOne(t *testing.T) {
	data := []byte{0x40, 0xD2, 0x75, 0x47, 0x76, 0x17, 0x32, 0x06, 0x27, 0x26, 0x96, 0xC6, 0xC6, 0x96, 0x70, 0xEC}
	ec := []byte{0xBC, 0x2A, 0x90, 0x13, 0x6B, 0xAF, 0xEF, 0xFD, 0x4B, 0xE0}
	codewords := append(append([]byte{}, data...), ec...)

	code := buildVersion1MediumQRCode(t, codewords)
	match, err := decodeQRCode(code)
	require.NoError(t, err)
	require.Equal(t, "'Twas brillig", string(match.Message))
	require.Equal(t, 1, match.TopLeftX)
	require.Equal(t, 19, match.BottomRightX)
}

func TestDecodeQRCodeCorrectsTwoFlippedBytesScenarioTwo(t *testing.T) {
	data := []byte{0x40, 0xD2 ^ 63, 0x75, 0x47, 0x76, 0x17, 0x32, 0x06, 0x27, 0x26, 0x96, 0xC6, 0xC6, 0x96, 0x70 ^ 33, 0xEC}
	ec := []byte{0xBC, 0x2A, 0x90, 0x13, 0x6B, 0xAF, 0xEF, 0xFD, 0x4B, 0xE0}
	codewords := append(append([]byte{}, data...), ec...)

	code := buildVersion1MediumQRCode(t, codewords)
	match, err := decodeQRCode(code)
	require.NoError(t, err)
	require.Equal(t, "'Twas brillig", string(match.Message))
}

func TestDecodeQRCodeTooManyErrorsIsDecodeError(t *testing.T) {
	data := []byte{0x40, 0xD2, 0x75, 0x47, 0x76, 0x17, 0x32, 0x06, 0x27, 0x26, 0x96, 0xC6, 0xC6, 0x96, 0x70, 0xEC}
	ec := []byte{0xBC, 0x2A, 0x90, 0x13, 0x6B, 0xAF, 0xEF, 0xFD, 0x4B, 0xE0}
	codewords := append(append([]byte{}, data...), ec...)
	for i := 0; i < 8; i++ {
		codewords[i] ^= byte(0x55 + i)
	}

	code := buildVersion1MediumQRCode(t, codewords)
	_, err := decodeQRCode(code)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}
