// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

// decodeDictEntry is the decoder's per-code record: the preceding code and
// the byte appended to its expansion (spec §3, §4.3.1).
type decodeDictEntry struct {
	prev uint16
	c    byte
}

// decodeDict is a flat array indexed directly by code - dictOffset, since
// decode codes are assigned strictly sequentially (spec §4.3.1). scratch is
// reused across expand calls to avoid per-code allocation; its capacity is
// sized for the worst case (2^maxbits codes chained).
type decodeDict struct {
	offset  int
	entries []decodeDictEntry
	scratch []byte
}

func newDecodeDict(offset, dictEntries int) *decodeDict {
	return &decodeDict{
		offset:  offset,
		entries: make([]decodeDictEntry, dictEntries-offset),
		scratch: make([]byte, 0, dictEntries),
	}
}

func (d *decodeDict) reset() {
	for i := range d.entries {
		d.entries[i] = decodeDictEntry{}
	}
}

func (d *decodeDict) set(code int, prev uint16, c byte) {
	d.entries[code-d.offset] = decodeDictEntry{prev: prev, c: c}
}

// expand writes the byte expansion of code into dst, via a temporary
// reversal through d.scratch, and returns the first byte of the expansion
// (needed by the caller to build the next dictionary entry and, in the
// KwKwK case, to complete the current one).
func (d *decodeDict) expand(code uint16, dst []byte) (out []byte, first byte) {
	d.scratch = d.scratch[:0]

	for code >= 256 {
		e := d.entries[int(code)-d.offset]
		d.scratch = append(d.scratch, e.c)
		code = e.prev
	}
	first = byte(code)

	dst = append(dst, first)
	for i := len(d.scratch) - 1; i >= 0; i-- {
		dst = append(dst, d.scratch[i])
	}
	return dst, first
}
