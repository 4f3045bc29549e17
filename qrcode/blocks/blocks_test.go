package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/blocks"
	"github.com/jalphad/qrcode/qrcode/format"
)

func TestDeinterleaveVersion1SingleBlock(t *testing.T) {
	data := []byte{0x40, 0xD2, 0x75, 0x47, 0x76, 0x17, 0x32, 0x06, 0x27, 0x26, 0x96, 0xC6, 0xC6, 0x96, 0x70, 0xEC}
	ec := []byte{0xBC, 0x2A, 0x90, 0x13, 0x6B, 0xAF, 0xEF, 0xFD, 0x4B, 0xE0}
	all := append(append([]byte{}, data...), ec...)

	bs, err := blocks.Deinterleave(all, 1, format.Medium)
	require.NoError(t, err)
	require.Len(t, bs, 1)
	require.Equal(t, 16, bs[0].NData)
	require.Equal(t, 10, bs[0].NError)
	require.Equal(t, 4, bs[0].T)
	require.Equal(t, 2, bs[0].P)
	require.Equal(t, all, bs[0].Codewords)
}

func TestDeinterleaveRoundRobinsAcrossBlocks(t *testing.T) {
	// Version 5-Q has two groups of two blocks each: (2,33,15) and
	// (2,34,16), 4 blocks total, 15*2+16*2=62 data codewords and 18 EC
	// codewords per block.
	data := make([]byte, 62)
	for i := range data {
		data[i] = byte(i)
	}
	ec := make([]byte, 18*4)
	for i := range ec {
		ec[i] = byte(200 + i)
	}
	all := append(append([]byte{}, data...), ec...)

	bs, err := blocks.Deinterleave(all, 5, format.Quartile)
	require.NoError(t, err)
	require.Len(t, bs, 4)

	// Block 0 should receive data codewords 0, 4, 8, ... (round robin
	// across 4 blocks) for its first 15 data codewords.
	require.Equal(t, byte(0), bs[0].Codewords[0])
	require.Equal(t, byte(4), bs[0].Codewords[1])

	// The two larger (16-data) blocks are groups[1] (blocks 2 and 3);
	// they keep receiving codewords after the 15-data blocks are full.
	require.Equal(t, 15, bs[0].NData)
	require.Equal(t, 15, bs[1].NData)
	require.Equal(t, 16, bs[2].NData)
	require.Equal(t, 16, bs[3].NData)

	totalData := 0
	for _, b := range bs {
		totalData += b.NData
	}
	require.Equal(t, 62, totalData)
}

func TestDeinterleaveWrongLengthIsError(t *testing.T) {
	_, err := blocks.Deinterleave(make([]byte, 5), 1, format.Medium)
	require.Error(t, err)
}
