// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

// header is the parsed 3-byte `.Z` header (spec §6.1).
type header struct {
	maxBits       int
	blockCompress bool
}

// bytes serializes the header to its 3-byte wire form.
func (h header) bytes() [3]byte {
	flags := byte(h.maxBits)
	if h.blockCompress {
		flags |= flagBlockCompress
	}
	return [3]byte{magic1, magic2, flags}
}

// parseHeader validates and decodes a 3-byte `.Z` header.
func parseHeader(b []byte) (header, error) {
	if len(b) < 3 {
		return header{}, ErrTruncatedHeader
	}
	if b[0] != magic1 || b[1] != magic2 {
		return header{}, ErrBadMagic
	}
	if b[2]&flagReservedMask != 0 {
		return header{}, ErrReservedFlags
	}

	maxBits := int(b[2] & 0x1F)
	if maxBits < minMaxBits || maxBits > maxMaxBits {
		return header{}, ErrMaxBitsRange
	}

	return header{
		maxBits:       maxBits,
		blockCompress: b[2]&flagBlockCompress != 0,
	}, nil
}

// dictOffset returns the first free dictionary slot for this header.
func (h header) dictOffset() int {
	if h.blockCompress {
		return dictOffsetBlock
	}
	return dictOffsetPlain
}
