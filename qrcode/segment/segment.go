// Package segment decodes a QR code's data codewords, already unmasked
// and de-interleaved into a flat bit stream, into the UTF-8 payload the
// bitstream's mode segments describe. Modes switch mid-stream (a BYTE
// segment can be followed by a NUMERIC one, an ECI designator can change
// the charset a later BYTE segment uses, and so on), so decoding is a
// single dispatch loop rather than a fixed format.
package segment

import (
	"fmt"

	"github.com/jalphad/qrcode/qrcode/buffer"
	"github.com/jalphad/qrcode/qrcode/charset"
)

// Mode is one of the segment mode indicators a QR bitstream's 4-bit mode
// field can carry.
type Mode int

const (
	Terminator       Mode = 0
	Numeric          Mode = 1
	Alphanumeric     Mode = 2
	StructuredAppend Mode = 3
	Byte             Mode = 4
	FNC1First        Mode = 5
	ECI              Mode = 7
	Kanji            Mode = 8
	FNC1Second       Mode = 9
)

// alphanumericChars is the 45-character alphabet ALPHANUMERIC segments
// index into, in code-value order.
const alphanumericChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// characterCountBits returns how many bits a segment's character-count
// field occupies for the given mode and symbol version, per ISO/IEC
// 18004 table 3.
func characterCountBits(mode Mode, version int) (int, error) {
	switch mode {
	case Numeric:
		switch {
		case version <= 9:
			return 10, nil
		case version <= 26:
			return 12, nil
		default:
			return 14, nil
		}
	case Alphanumeric:
		switch {
		case version <= 9:
			return 9, nil
		case version <= 26:
			return 11, nil
		default:
			return 13, nil
		}
	case Byte:
		if version <= 9 {
			return 8, nil
		}
		return 16, nil
	case Kanji:
		switch {
		case version <= 9:
			return 8, nil
		case version <= 26:
			return 10, nil
		default:
			return 12, nil
		}
	default:
		return 0, fmt.Errorf("segment: mode %d has no character count field", mode)
	}
}

// Decode reads version's bitstream mode segments one at a time and
// returns the decoded payload as UTF-8 bytes. It stops at a TERMINATOR
// mode, at end of stream, or at the first malformed segment.
func Decode(stream *buffer.BitStream, version int) (*buffer.ByteBuffer, error) {
	if version < 1 || version > 40 {
		return nil, fmt.Errorf("segment: invalid version %d", version)
	}

	out := buffer.NewByteBuffer()
	fnc1 := false
	eciMode := charset.ISO8859_1

	for {
		var mode Mode
		if stream.RemainingBits() < 4 {
			mode = Terminator
		} else {
			mode = Mode(stream.ReadBits(4))
		}

		switch mode {
		case Terminator:
			return out, nil

		case FNC1First, FNC1Second:
			fnc1 = true

		case StructuredAppend:
			if stream.RemainingBits() < 16 {
				return nil, fmt.Errorf("segment: truncated structured-append header")
			}
			stream.ReadBits(16)

		case ECI:
			newMode, err := readECIDesignator(stream)
			if err != nil {
				return nil, err
			}
			eciMode = newMode

		case Numeric, Alphanumeric, Byte, Kanji:
			bits, err := characterCountBits(mode, version)
			if err != nil {
				return nil, err
			}
			if stream.RemainingBits() < bits {
				return nil, fmt.Errorf("segment: truncated character count field for mode %d", mode)
			}
			count := int(stream.ReadBits(bits))

			switch mode {
			case Numeric:
				if err := decodeNumericSegment(stream, count, out); err != nil {
					return nil, err
				}
			case Alphanumeric:
				if err := decodeAlphanumericSegment(stream, count, fnc1, out); err != nil {
					return nil, err
				}
			case Byte:
				if err := decodeByteSegment(stream, count, eciMode, out); err != nil {
					return nil, err
				}
			case Kanji:
				if err := decodeKanjiSegment(stream, count, out); err != nil {
					return nil, err
				}
			}

		default:
			return nil, fmt.Errorf("segment: unsupported mode indicator %d", mode)
		}
	}
}

func decodeNumericSegment(stream *buffer.BitStream, count int, out *buffer.ByteBuffer) error {
	for count >= 3 {
		if stream.RemainingBits() < 10 {
			return fmt.Errorf("segment: truncated numeric triplet")
		}
		value := stream.ReadBits(10)
		if value >= 1000 {
			return fmt.Errorf("segment: numeric triplet %d out of range", value)
		}
		out.WriteByte('0' + byte(value/100))
		out.WriteByte('0' + byte((value/10)%10))
		out.WriteByte('0' + byte(value%10))
		count -= 3
	}

	switch count {
	case 1:
		if stream.RemainingBits() < 4 {
			return fmt.Errorf("segment: truncated numeric final digit")
		}
		value := stream.ReadBits(4)
		if value >= 10 {
			return fmt.Errorf("segment: numeric final digit %d out of range", value)
		}
		out.WriteByte('0' + byte(value))
	case 2:
		if stream.RemainingBits() < 7 {
			return fmt.Errorf("segment: truncated numeric final pair")
		}
		value := stream.ReadBits(7)
		if value >= 100 {
			return fmt.Errorf("segment: numeric final pair %d out of range", value)
		}
		out.WriteByte('0' + byte(value/10))
		out.WriteByte('0' + byte(value%10))
	}
	return nil
}

func decodeAlphanumericSegment(stream *buffer.BitStream, count int, fnc1 bool, out *buffer.ByteBuffer) error {
	var chars []byte

	for count > 1 {
		if stream.RemainingBits() < 11 {
			return fmt.Errorf("segment: truncated alphanumeric pair")
		}
		value := stream.ReadBits(11)
		if value/45 >= 45 {
			return fmt.Errorf("segment: alphanumeric pair %d out of range", value)
		}
		chars = append(chars, alphanumericChars[value/45], alphanumericChars[value%45])
		count -= 2
	}

	if count == 1 {
		if stream.RemainingBits() < 6 {
			return fmt.Errorf("segment: truncated alphanumeric final character")
		}
		value := stream.ReadBits(6)
		if value >= 45 {
			return fmt.Errorf("segment: alphanumeric final character %d out of range", value)
		}
		chars = append(chars, alphanumericChars[value])
	}

	if fnc1 {
		chars = decodePercentsInFNC1Mode(chars)
	}

	for _, c := range chars {
		out.WriteByte(c)
	}
	return nil
}

// decodePercentsInFNC1Mode applies the application-indicator escaping
// rule FNC1-flagged alphanumeric segments use: '%' followed by anything
// other than another '%' is the GS separator (0x1D) followed by that
// byte, a lone '%' is just the GS separator, and '%%' collapses to a
// literal '%'.
func decodePercentsInFNC1Mode(chars []byte) []byte {
	out := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		if chars[i] != '%' {
			out = append(out, chars[i])
			continue
		}
		if i+1 == len(chars) {
			out = append(out, 0x1D)
			break
		}
		i++
		if chars[i] == '%' {
			out = append(out, '%')
		} else {
			out = append(out, 0x1D, chars[i])
		}
	}
	return out
}

func decodeByteSegment(stream *buffer.BitStream, count int, eciMode charset.Mode, out *buffer.ByteBuffer) error {
	if 8*count > stream.RemainingBits() {
		return fmt.Errorf("segment: truncated byte segment, need %d bytes", count)
	}

	switch eciMode {
	case charset.GB18030, charset.Big5, charset.EUCKR:
		raw := make([]byte, count)
		for i := range raw {
			raw[i] = byte(stream.ReadBits(8))
		}
		decoded, err := charset.DecodeMultiByte(eciMode, raw)
		if err != nil {
			return fmt.Errorf("segment: %w", err)
		}
		for _, b := range decoded {
			out.WriteByte(b)
		}
		return nil
	}

	for i := 0; i < count; i++ {
		value := byte(stream.ReadBits(8))

		switch eciMode {
		case charset.UTF8:
			out.WriteByte(value)

		case charset.UnicodeBigUnmarked:
			if stream.RemainingBits() < 8 {
				return fmt.Errorf("segment: truncated utf-16 code unit")
			}
			out.WriteByte(value)
			out.WriteByte(byte(stream.ReadBits(8)))

		case charset.SJIS:
			if value <= 0x7F {
				out.WriteByte(value)
				continue
			}
			if stream.RemainingBits() < 8 {
				return fmt.Errorf("segment: truncated shift-jis code point")
			}
			value2 := byte(stream.ReadBits(8))
			r, err := charset.DecodeShiftJIS(uint16(value)<<8 | uint16(value2))
			if err != nil {
				return fmt.Errorf("segment: %w", err)
			}
			if !out.WriteUnicodeAsUTF8(uint32(r)) {
				return fmt.Errorf("segment: shift-jis code point encoded an invalid scalar value")
			}

		default:
			r, err := charset.DecodeSingleByte(eciMode, value)
			if err != nil {
				return fmt.Errorf("segment: %w", err)
			}
			if !out.WriteUnicodeAsUTF8(uint32(r)) {
				return fmt.Errorf("segment: byte 0x%02X decoded to an invalid scalar value", value)
			}
		}
	}
	return nil
}

// decodeKanjiSegment unpacks count 13-bit-packed Shift JIS X 0208 code
// points and writes each as UTF-8.
func decodeKanjiSegment(stream *buffer.BitStream, count int, out *buffer.ByteBuffer) error {
	if count*13 > stream.RemainingBits() {
		return fmt.Errorf("segment: truncated kanji segment, need %d characters", count)
	}
	for ; count > 0; count-- {
		packed := stream.ReadBits(13)
		value := (packed/0xC0)<<8 | packed%0xC0
		if value < 0x1F00 {
			value += 0x8140
		} else {
			value += 0xC140
		}
		r, err := charset.DecodeShiftJIS(uint16(value))
		if err != nil {
			return fmt.Errorf("segment: %w", err)
		}
		if !out.WriteUnicodeAsUTF8(uint32(r)) {
			return fmt.Errorf("segment: kanji code point 0x%04X decoded to an invalid scalar value", value)
		}
	}
	return nil
}

// readECIDesignator reads a 1-, 2-, or 3-byte ECI designator value and
// maps it to the character set it selects, per ISO/IEC 18004 Annex F.
func readECIDesignator(stream *buffer.BitStream) (charset.Mode, error) {
	if stream.RemainingBits() < 8 {
		return 0, fmt.Errorf("segment: truncated eci designator")
	}
	first := stream.ReadBits(8)

	var value uint32
	switch {
	case first&0x80 == 0:
		value = first
	case first&0x40 == 0:
		if stream.RemainingBits() < 8 {
			return 0, fmt.Errorf("segment: truncated two-byte eci designator")
		}
		value = (first&0x3F)<<8 | stream.ReadBits(8)
	case first&0x20 == 0:
		if stream.RemainingBits() < 16 {
			return 0, fmt.Errorf("segment: truncated three-byte eci designator")
		}
		value = (first&0x1F)<<16 | stream.ReadBits(16)
	default:
		return 0, fmt.Errorf("segment: invalid eci designator first byte 0x%02X", first)
	}

	return eciValueToMode(value)
}

// eciValueToMode maps a raw ECI designator value to the character set it
// selects. ECI value 14 designates ISO-8859-12, a codepage ISO/IEC 8859
// reserved but never published; there is nothing to decode it as, so it
// is rejected like any other unassigned value.
func eciValueToMode(value uint32) (charset.Mode, error) {
	switch value {
	case 0, 2:
		return charset.Cp437, nil
	case 1, 3:
		return charset.ISO8859_1, nil
	case 4:
		return charset.ISO8859_2, nil
	case 5:
		return charset.ISO8859_3, nil
	case 6:
		return charset.ISO8859_4, nil
	case 7:
		return charset.ISO8859_5, nil
	case 8:
		return charset.ISO8859_6, nil
	case 9:
		return charset.ISO8859_7, nil
	case 10:
		return charset.ISO8859_8, nil
	case 11:
		return charset.ISO8859_9, nil
	case 12:
		return charset.ISO8859_10, nil
	case 13:
		return charset.ISO8859_11, nil
	case 15:
		return charset.ISO8859_13, nil
	case 16:
		return charset.ISO8859_14, nil
	case 17:
		return charset.ISO8859_15, nil
	case 18:
		return charset.ISO8859_16, nil
	case 20:
		return charset.SJIS, nil
	case 21:
		return charset.Cp1250, nil
	case 22:
		return charset.Cp1251, nil
	case 23:
		return charset.Cp1252, nil
	case 24:
		return charset.Cp1256, nil
	case 25:
		return charset.UnicodeBigUnmarked, nil
	case 26:
		return charset.UTF8, nil
	case 27, 170:
		return charset.ASCII, nil
	case 28:
		return charset.Big5, nil
	case 29:
		return charset.GB18030, nil
	case 30:
		return charset.EUCKR, nil
	case 14:
		return 0, fmt.Errorf("segment: eci value 14 (ISO-8859-12) has no assigned encoding")
	default:
		return 0, fmt.Errorf("segment: unrecognised eci value %d", value)
	}
}
