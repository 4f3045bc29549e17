package mask_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jalphad/qrcode/qrcode/mask"
)

func TestFunctionModulesRejectsIllegalSize(t *testing.T) {
	_, err := mask.FunctionModules(20)
	require.Error(t, err)

	_, err = mask.FunctionModules(178)
	require.Error(t, err)

	_, err = mask.FunctionModules(23) // not congruent to 1 mod 4
	require.Error(t, err)
}

func TestFunctionModulesMarksFinderAndTimingPatterns(t *testing.T) {
	bm, err := mask.FunctionModules(21)
	require.NoError(t, err)
	require.Equal(t, 21, bm.Width())

	// Top-left finder block, including its white separator border.
	require.True(t, bm.IsBlack(0, 0))
	require.True(t, bm.IsBlack(8, 8))

	// Timing patterns.
	require.True(t, bm.IsBlack(10, 6))
	require.True(t, bm.IsBlack(6, 10))

	// A data module well clear of any function region.
	require.False(t, bm.IsBlack(10, 10))
}

func TestFunctionModulesMarksAlignmentPatternForVersion2(t *testing.T) {
	// Version 2 is a 25x25 code with a single alignment pattern centred
	// at (18, 18).
	bm, err := mask.FunctionModules(25)
	require.NoError(t, err)

	require.True(t, bm.IsBlack(18, 18))
	require.True(t, bm.IsBlack(17, 17))
	require.True(t, bm.IsBlack(19, 19))
	require.False(t, bm.IsBlack(12, 12))
}

func TestFunctionModulesOmitsVersionInfoBelowSize45(t *testing.T) {
	// Version 1 (size 21) has no version information blocks; the
	// function-module count must leave exactly 208 data bits (26
	// codewords), matching blocks/tables.go's {1,26,16,4} entry.
	bm, err := mask.FunctionModules(21)
	require.NoError(t, err)

	dataModules := 0
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if !bm.IsBlack(x, y) {
				dataModules++
			}
		}
	}
	require.Equal(t, 208, dataModules)
}

func TestFunctionModulesIncludesVersionInfoAtSize45(t *testing.T) {
	// Version 7 (size 45) is the first version carrying version
	// information: two 6x3 blocks next to the top-right and bottom-left
	// finders.
	bm, err := mask.FunctionModules(45)
	require.NoError(t, err)

	require.True(t, bm.IsBlack(0, 44-9))
	require.True(t, bm.IsBlack(44-9, 0))
}

func TestPatternApplies(t *testing.T) {
	require.True(t, mask.Pattern(0).Applies(2, 4))
	require.False(t, mask.Pattern(0).Applies(1, 4))

	require.True(t, mask.Pattern(1).Applies(5, 0))
	require.False(t, mask.Pattern(1).Applies(5, 1))

	require.True(t, mask.Pattern(2).Applies(6, 9))
	require.False(t, mask.Pattern(2).Applies(7, 9))

	require.Panics(t, func() { mask.Pattern(8).Applies(0, 0) })
}
