package streamable

import "encoding/binary"

// countWidth enumerates the number of trailing bytes a count encoding carries,
// per the two-bit discriminant packed into the encoding's first byte.
type countWidth uint8

const (
	countWidth1 countWidth = 1
	countWidth2 countWidth = 2
	countWidth4 countWidth = 4
	countWidth8 countWidth = 8
)

// countDiscriminantShift is where the two-bit width discriminant lives within
// the first encoded byte; the remaining six bits either hold the inline value
// (width 1) or are unused (widths 2/4/8).
const countDiscriminantShift = 6

// countInlineMask isolates the six low bits of a width-1 first byte, the
// largest count a single byte can carry inline.
const countInlineMask = 0x3F

// MaxInlineCount is the largest value encodable in a single byte.
const MaxInlineCount uint64 = countInlineMask

var countWidthByDiscriminant = [4]countWidth{countWidth1, countWidth2, countWidth4, countWidth8}

func discriminantForWidth(w countWidth) byte {
	switch w {
	case countWidth1:
		return 0b00
	case countWidth2:
		return 0b01
	case countWidth4:
		return 0b10
	default:
		return 0b11
	}
}

// widthForCount picks the smallest width that can hold n, per spec.md §4.A:
// "Encoding an integer picks the smallest width that fits."
func widthForCount(n uint64) countWidth {
	switch {
	case n <= MaxInlineCount:
		return countWidth1
	case n <= 0xFFFF:
		return countWidth2
	case n <= 0xFFFFFFFF:
		return countWidth4
	default:
		return countWidth8
	}
}

// EncodedCountLen returns the number of bytes EncodeCount(n) would produce,
// without allocating.
func EncodedCountLen(n uint64) int {
	w := widthForCount(n)
	if w == countWidth1 {
		return 1
	}
	return 1 + int(w)
}

// EncodeCount appends the canonical variable-length encoding of n to dst and
// returns the extended slice. See spec.md §4.A and §6 for the wire format.
func EncodeCount(dst []byte, n uint64) []byte {
	w := widthForCount(n)

	if w == countWidth1 {
		return append(dst, discriminantForWidth(w)<<countDiscriminantShift|byte(n&countInlineMask))
	}

	first := discriminantForWidth(w) << countDiscriminantShift
	dst = append(dst, first)

	var buf [8]byte
	switch w {
	case countWidth2:
		binary.LittleEndian.PutUint16(buf[:2], uint16(n))
		dst = append(dst, buf[:2]...)
	case countWidth4:
		binary.LittleEndian.PutUint32(buf[:4], uint32(n))
		dst = append(dst, buf[:4]...)
	default:
		binary.LittleEndian.PutUint64(buf[:8], n)
		dst = append(dst, buf[:8]...)
	}

	return dst
}

// RequiredBytes reports the total number of bytes (including the first byte
// itself) the count encoding starting with firstByte occupies. A single
// peeked byte is always enough to determine this, per spec.md §6.
func RequiredBytes(firstByte byte) int {
	w := countWidthByDiscriminant[firstByte>>countDiscriminantShift]
	if w == countWidth1 {
		return 1
	}
	return 1 + int(w)
}

// DecodeCount decodes a count from the front of buf, which must hold at least
// RequiredBytes(buf[0]) bytes. It returns the value and the number of bytes
// consumed. ErrTruncatedData is returned if buf is shorter than required.
func DecodeCount(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, ErrTruncatedData
	}

	first := buf[0]
	w := countWidthByDiscriminant[first>>countDiscriminantShift]

	if w == countWidth1 {
		return uint64(first & countInlineMask), 1, nil
	}

	total := 1 + int(w)
	if len(buf) < total {
		return 0, 0, ErrTruncatedData
	}

	switch w {
	case countWidth2:
		return uint64(binary.LittleEndian.Uint16(buf[1:3])), total, nil
	case countWidth4:
		return uint64(binary.LittleEndian.Uint32(buf[1:5])), total, nil
	default:
		return binary.LittleEndian.Uint64(buf[1:9]), total, nil
	}
}
