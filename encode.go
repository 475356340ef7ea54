// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Encode compresses data into the `.Z` format described in spec §6.1 and
// returns the compressed bytes together with the compression ratio (spec
// §6.2). opts may be nil, in which case DefaultEncodeOptions is used.
func Encode(data []byte, opts *EncodeOptions) ([]byte, float64, error) {
	var out bytes.Buffer
	ratio, err := EncodeReader(bytes.NewReader(data), &out, opts)
	if err != nil {
		return nil, 0, err
	}
	return out.Bytes(), ratio, nil
}

// EncodeReader compresses the full contents of r into w, writing the `.Z`
// header and body as it goes. It returns the compression ratio: for an
// empty input, -1.0 (spec §6.2).
func EncodeReader(r io.Reader, w io.Writer, opts *EncodeOptions) (float64, error) {
	maxBits := opts.maxBits()
	if maxBits < minMaxBits || maxBits > maxMaxBits {
		return 0, formatError(ErrMaxBitsRange)
	}

	h := header{maxBits: maxBits, blockCompress: true}
	hb := h.bytes()
	if _, err := w.Write(hb[:]); err != nil {
		return 0, writeError(errors.Wrap(err, "writing header"))
	}

	br := bufio.NewReaderSize(r, ioBufferSize)

	first, err := br.ReadByte()
	if err == io.EOF {
		return -1.0, nil
	}
	if err != nil {
		return 0, readError(errors.Wrap(err, "reading first byte"))
	}

	dictEntries := 1 << maxBits
	dictOffset := h.dictOffset()
	nextFree := dictOffset

	dict := newEncodeDict()
	ratioT := newRatioTracker()
	cw := newCodeWriter(w, minMaxBits)

	var inputBytes, outputBytes int64 = 1, 3
	cur := uint16(first)

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, readError(errors.Wrap(err, "reading input"))
		}
		inputBytes++

		idx := dict.find(cur, c)
		if dict.slots[idx].code != 0 {
			cur = dict.slots[idx].code
			continue
		}

		if err := cw.writeCode(cur); err != nil {
			return 0, writeError(err)
		}
		outputBytes = 3 + cw.written

		// The 9-bit quirk (spec §4.2.2): maxbits==9 leaves no room to grow
		// past width 9 through the normal power-of-two check below (512 is
		// already out of dictionary range), so it is forced here.
		if nextFree == 512 && maxBits == 9 && cw.width == 9 {
			if err := cw.padGroup(cw.width); err != nil {
				return 0, writeError(err)
			}
			cw.width = 10
			outputBytes = 3 + cw.written
		}

		if nextFree < dictEntries {
			dict.insert(idx, uint16(nextFree), cur, c)
			if nextFree&(nextFree-1) == 0 {
				if err := cw.padGroup(cw.width); err != nil {
					return 0, writeError(err)
				}
				cw.width++
				outputBytes = 3 + cw.written
			}
			nextFree++
		} else if ratioT.shouldClear(inputBytes, outputBytes) {
			if err := cw.writeCode(clearCode); err != nil {
				return 0, writeError(err)
			}
			if err := cw.padGroup(cw.width); err != nil {
				return 0, writeError(err)
			}
			outputBytes = 3 + cw.written

			dict.clear()
			nextFree = dictOffset
			cw.width = minMaxBits
		}

		cur = uint16(c)
	}

	if err := cw.writeCode(cur); err != nil {
		return 0, writeError(err)
	}
	if err := cw.flush(); err != nil {
		return 0, writeError(err)
	}
	outputBytes = 3 + cw.written

	ratio := 1.0 - float64(outputBytes)/float64(inputBytes)
	return ratio, nil
}
