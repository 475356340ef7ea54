// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

// LZW `.Z` format constants: header layout, code-space bounds, and the
// dictionary hash-table sizing used by the encoder.

const (
	magic1 = 0x1F
	magic2 = 0x9D

	flagBlockCompress = 0x80
	flagReservedMask  = 0x60

	minMaxBits = 9
	maxMaxBits = 16

	clearCode = 256

	// dictOffsetBlock is the first free dictionary slot when BLOCK_COMPRESS
	// is set (code 256 is reserved as CLEAR). dictOffsetPlain is used when
	// it is not (code 256 is an ordinary slot).
	dictOffsetBlock = 257
	dictOffsetPlain = 256

	// checkInterval is the number of input bytes between ratio-heuristic
	// samples (historical convention, see spec §4.2.3).
	checkInterval = 5000

	// ioBufferSize is the size of the internal read/write buffers (spec §5).
	ioBufferSize = 32 * 1024
)

// hashDictSize is the encoder dictionary's table size: a prime comfortably
// above 1.5x the maximum code count (2^16), so double hashing always has
// room to enumerate the whole table without ever needing to resize.
const hashDictSize = 131101
