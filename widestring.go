package streamable

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WideString holds text that must round-trip through a UTF-16 wire
// representation instead of UTF-8, per spec.md §3's "wide string" range
// flavour and §6's external interface notes. The Go value itself is a plain
// UTF-8 string; encoding/decoding transcodes at the boundary, grounded on
// golang.org/x/text/encoding/unicode (the dependency iotaledger-hive.go's
// serializer module pulls in transitively for exactly this purpose, and the
// only wide-character transcoder in the retrieval pack written for
// production use rather than as a one-off).
type WideString string

var wideLittleEndian = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// encodeUTF16 transcodes s to little-endian UTF-16 bytes.
func encodeUTF16(s string) ([]byte, error) {
	encoded, _, err := transform.Bytes(wideLittleEndian.NewEncoder(), []byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	return encoded, nil
}

// decodeUTF16 transcodes little-endian UTF-16 bytes back to a UTF-8 string.
func decodeUTF16(b []byte) (string, error) {
	decoded, _, err := transform.Bytes(wideLittleEndian.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	return string(decoded), nil
}

// utf16Len returns the byte length of s transcoded to UTF-16, without
// allocating the transcoded bytes, so size-finding stays allocation-free on
// the happy path (ASCII and most BMP text is a straight code-unit count).
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if utf16.RuneLen(r) == 2 {
			n += 4
		} else {
			n += 2
		}
	}
	return n
}

func sizeWideString(v WideString) int {
	n := utf16Len(string(v))
	return EncodedCountLen(uint64(n)) + n
}

func writeWideString(w *Writer, v WideString) error {
	if w.err != nil {
		return w.err
	}
	encoded, err := encodeUTF16(string(v))
	if err != nil {
		w.setError(err)
		return err
	}
	w.writeCount(uint64(len(encoded)))
	w.WriteBytes(encoded)
	return w.err
}

func readWideString(r *Reader, dest *WideString) error {
	n, err := r.readCount()
	if err != nil {
		return err
	}
	raw := r.readFull(int(n))
	if r.err != nil {
		return r.err
	}
	decoded, err := decodeUTF16(raw)
	if err != nil {
		r.setError(err)
		return err
	}
	*dest = WideString(decoded)
	return nil
}
