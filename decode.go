// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Decode decompresses a `.Z` stream and returns the reconstructed bytes
// together with the decompression ratio (spec §6.2). opts may be nil.
func Decode(data []byte, opts *DecodeOptions) ([]byte, float64, error) {
	var out bytes.Buffer
	ratio, err := DecodeReader(bytes.NewReader(data), &out, opts)
	if err != nil {
		return nil, 0, err
	}
	return out.Bytes(), ratio, nil
}

// DecodeReader decompresses the `.Z` stream formed by opts.Prefix followed
// by the contents of r, writing the reconstructed bytes to w. A stream
// containing only the 3 header bytes decodes to no output (spec §6.1).
func DecodeReader(r io.Reader, w io.Writer, opts *DecodeOptions) (float64, error) {
	if opts == nil {
		opts = DefaultDecodeOptions()
	}

	br := newInputReader(r, opts.Prefix)

	hdr, inputBytes, err := readHeader(br)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriterSize(w, ioBufferSize)
	var outputBytes int64

	dictEntries := 1 << hdr.maxBits
	dictOffset := hdr.dictOffset()
	nextFree := dictOffset

	dict := newDecodeDict(dictOffset, dictEntries)
	cr := newCodeReader(br, minMaxBits)

	prevSeq, ok, err := cr.readCode()
	if err != nil {
		return 0, readError(errors.Wrap(err, "reading first code"))
	}
	if !ok {
		if err := bw.Flush(); err != nil {
			return 0, writeError(errors.Wrap(err, "flushing output"))
		}
		return 0, nil
	}
	if int(prevSeq) >= nextFree {
		return 0, formatError(ErrInvalidCode)
	}
	if err := bw.WriteByte(byte(prevSeq)); err != nil {
		return 0, writeError(errors.Wrap(err, "writing output byte"))
	}
	outputBytes++

	var scratch []byte
	for {
		code, ok, err := cr.readCode()
		if err != nil {
			return 0, readError(errors.Wrap(err, "reading code"))
		}
		if !ok {
			break
		}
		if int(code) > nextFree {
			return 0, formatError(ErrInvalidCode)
		}

		if hdr.blockCompress && code == clearCode {
			if ok, err := cr.discardPadding(cr.width); err != nil {
				return 0, readError(err)
			} else if !ok {
				return 0, formatError(ErrTruncatedPadding)
			}
			dict.reset()
			nextFree = dictOffset
			cr.width = minMaxBits

			prevSeq, ok, err = cr.readCode()
			if err != nil {
				return 0, readError(errors.Wrap(err, "reading code after CLEAR"))
			}
			if !ok {
				break
			}
			if int(prevSeq) >= nextFree {
				return 0, formatError(ErrInvalidCode)
			}
			if err := bw.WriteByte(byte(prevSeq)); err != nil {
				return 0, writeError(errors.Wrap(err, "writing output byte"))
			}
			outputBytes++
			continue
		}

		originalCode := code
		lookupCode := code
		if int(code) == nextFree {
			// KwKwK case: the code is not yet in the dictionary because it
			// would be the one about to be inserted. Its expansion is the
			// previous expansion followed by the previous expansion's own
			// first byte.
			lookupCode = prevSeq
		}

		var firstByte byte
		scratch, firstByte = dict.expand(lookupCode, scratch[:0])
		if _, err := bw.Write(scratch); err != nil {
			return 0, writeError(errors.Wrap(err, "writing output bytes"))
		}
		outputBytes += int64(len(scratch))

		if int(originalCode) == nextFree {
			if err := bw.WriteByte(firstByte); err != nil {
				return 0, writeError(errors.Wrap(err, "writing output byte"))
			}
			outputBytes++
		}

		if nextFree < dictEntries {
			dict.set(nextFree, prevSeq, firstByte)
			nextFree++
			if (cr.width < hdr.maxBits || cr.width == minMaxBits) && nextFree&(nextFree-1) == 0 {
				if ok, err := cr.discardPadding(cr.width); err != nil {
					return 0, readError(err)
				} else if !ok {
					return 0, formatError(ErrTruncatedPadding)
				}
				cr.width++
			}
		}

		prevSeq = originalCode
	}

	if err := bw.Flush(); err != nil {
		return 0, writeError(errors.Wrap(err, "flushing output"))
	}

	inputBytes += cr.read
	ratio := 1.0 - float64(inputBytes)/float64(outputBytes)
	return ratio, nil
}

// readHeader reads and validates the 3-byte `.Z` header from br, returning
// the parsed header and the number of bytes consumed (always 3 on success).
func readHeader(br *bufio.Reader) (header, int64, error) {
	var buf [3]byte
	n, err := io.ReadFull(br, buf[:])
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return header{}, 0, formatError(ErrTruncatedHeader)
		}
		return header{}, 0, readError(errors.Wrap(err, "reading header"))
	}

	hdr, err := parseHeader(buf[:n])
	if err != nil {
		return header{}, 0, formatError(err)
	}
	return hdr, 3, nil
}
