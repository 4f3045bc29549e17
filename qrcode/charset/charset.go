// Package charset maps the ECI character sets a QR BYTE segment can
// declare to Unicode, so the segment decoder can re-emit them as UTF-8.
// Single-byte legacy codepages and the East Asian multi-byte charsets go
// through golang.org/x/text's encoding implementations rather than
// transcribed lookup tables; Shift JIS additionally needs a standalone
// byte-pair entry point for QR's KANJI mode, which packs Shift JIS code
// points into a dedicated 13-bit field rather than raw encoded bytes.
package charset

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Mode identifies the character set active for a BYTE segment, per the
// ECI value -> mode mapping in ISO/IEC 18004 Annex F.
type Mode int

const (
	Cp437 Mode = iota
	ISO8859_1
	ISO8859_2
	ISO8859_3
	ISO8859_4
	ISO8859_5
	ISO8859_6
	ISO8859_7
	ISO8859_8
	ISO8859_9
	ISO8859_10
	ISO8859_11
	ISO8859_13
	ISO8859_14
	ISO8859_15
	ISO8859_16
	SJIS
	Cp1250
	Cp1251
	Cp1252
	Cp1256
	UnicodeBigUnmarked
	UTF8
	ASCII
	Big5
	GB18030
	EUCKR
)

// singleByteDecoders maps every single-byte legacy codepage to the
// charmap.Charmap that decodes it. ISO-8859-11 has no distinct charmap
// entry in golang.org/x/text (it was never formally registered as its
// own codepage); Windows-874 is byte-compatible with it over the Thai
// range used in practice, so it stands in here.
var singleByteDecoders = map[Mode]*charmap.Charmap{
	Cp437:      charmap.CodePage437,
	ISO8859_1:  charmap.ISO8859_1,
	ISO8859_2:  charmap.ISO8859_2,
	ISO8859_3:  charmap.ISO8859_3,
	ISO8859_4:  charmap.ISO8859_4,
	ISO8859_5:  charmap.ISO8859_5,
	ISO8859_6:  charmap.ISO8859_6,
	ISO8859_7:  charmap.ISO8859_7,
	ISO8859_8:  charmap.ISO8859_8,
	ISO8859_9:  charmap.ISO8859_9,
	ISO8859_10: charmap.ISO8859_10,
	ISO8859_11: charmap.Windows874,
	ISO8859_13: charmap.ISO8859_13,
	ISO8859_14: charmap.ISO8859_14,
	ISO8859_15: charmap.ISO8859_15,
	ISO8859_16: charmap.ISO8859_16,
	Cp1250:     charmap.Windows1250,
	Cp1251:     charmap.Windows1251,
	Cp1252:     charmap.Windows1252,
	Cp1256:     charmap.Windows1256,
}

// DecodeSingleByte maps one byte of mode's codepage to its Unicode
// scalar value. mode must be one of the single-byte legacy codepages or
// ASCII; other modes are a programming error.
func DecodeSingleByte(mode Mode, b byte) (rune, error) {
	if mode == ASCII {
		if b > 0x7F {
			return 0, fmt.Errorf("charset: byte 0x%02X is not valid ASCII", b)
		}
		return rune(b), nil
	}
	cm, ok := singleByteDecoders[mode]
	if !ok {
		panic(fmt.Sprintf("charset: %d is not a single-byte legacy codepage", int(mode)))
	}
	r := cm.DecodeByte(b)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("charset: byte 0x%02X is unassigned in this codepage", b)
	}
	return r, nil
}

// shiftJIS is the shared Shift JIS decoder used both for BYTE-mode
// two-byte sequences and KANJI-mode 13-bit-packed code points.
var shiftJIS = japanese.ShiftJIS.NewDecoder()

// DecodeShiftJIS maps a two-byte Shift JIS code point (big-endian, e.g.
// 0x8140) to its Unicode scalar value.
func DecodeShiftJIS(code uint16) (rune, error) {
	in := []byte{byte(code >> 8), byte(code)}
	out, err := shiftJIS.Bytes(in)
	if err != nil {
		return 0, fmt.Errorf("charset: decoding shift-jis code 0x%04X: %w", code, err)
	}
	r, size := utf8.DecodeRune(out)
	if size != len(out) {
		return 0, fmt.Errorf("charset: shift-jis code 0x%04X did not decode to a single rune", code)
	}
	return r, nil
}

// DecodeMultiByte runs the WHATWG decoder for a multi-byte East Asian
// charset (Big5, GB18030, EUC-KR) over the full byte sequence and
// returns the resulting UTF-8 bytes.
func DecodeMultiByte(mode Mode, data []byte) ([]byte, error) {
	var dec = decoderFor(mode)
	out, err := dec.Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("charset: decoding %v segment: %w", mode, err)
	}
	return out, nil
}

func decoderFor(mode Mode) interface {
	Bytes([]byte) ([]byte, error)
} {
	switch mode {
	case Big5:
		return traditionalchinese.Big5.NewDecoder()
	case GB18030:
		return simplifiedchinese.GB18030.NewDecoder()
	case EUCKR:
		return korean.EUCKR.NewDecoder()
	default:
		panic(fmt.Sprintf("charset: %d is not a multi-byte charset", int(mode)))
	}
}

