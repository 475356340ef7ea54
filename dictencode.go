// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/dchest/siphash"

// encodeDictEntry binds a dictionary code to its (prev, byte) pair. code==0
// marks an empty slot: code 0 is always a literal byte, never an assigned
// dictionary entry, so it is safe as the sentinel (spec §4.2.4).
type encodeDictEntry struct {
	code uint16
	prev uint16
	c    byte
}

// encodeDict is the encoder's fixed-size, open-addressed, double-hashed
// dictionary: a direct descendant of original_source/lzw.c's struct
// HashDict / findIndex, sized to stay correct (not necessarily fast) across
// the whole code range up to maxbits==16.
type encodeDict struct {
	slots [hashDictSize]encodeDictEntry
}

func newEncodeDict() *encodeDict {
	return &encodeDict{}
}

func (d *encodeDict) clear() {
	for i := range d.slots {
		d.slots[i] = encodeDictEntry{}
	}
}

// hash1 is the primary probe position, sourced from siphash over the
// 3-byte (prev, c) key rather than the original's bare XOR/shift, per
// SPEC_FULL.md §4.2.4.
func hash1(prev uint16, c byte) uint64 {
	key := [3]byte{byte(prev), byte(prev >> 8), c}
	return siphash.Hash(0, 0, key[:])
}

// hash2 is the double-hashing step distance. It must never be zero, or
// probing would never leave its starting slot; the `|1`
// guarantees an odd, nonzero step distinct from hash1's distribution.
func hash2(prev uint16, c byte) uint64 {
	return (uint64(prev) ^ uint64(c)<<9 ^ uint64(c)) | 1
}

// find returns the slot index for (prev, c): either an existing entry's
// index, or the first empty slot where a new entry should be inserted.
// Callers distinguish the two cases by checking slots[index].code != 0.
func (d *encodeDict) find(prev uint16, c byte) int {
	step := hash2(prev, c) % hashDictSize
	index := hash1(prev, c) % hashDictSize

	for d.slots[index].code != 0 {
		e := d.slots[index]
		if e.prev == prev && e.c == c {
			return int(index)
		}
		index = (index + step) % hashDictSize
	}
	return int(index)
}

func (d *encodeDict) insert(index int, code uint16, prev uint16, c byte) {
	d.slots[index] = encodeDictEntry{code: code, prev: prev, c: c}
}
