// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// codeWriter packs variable-width codes little-endian, LSB-first, into an
// underlying io.Writer, and implements the group-padding rule of spec §4.1.
//
// The field names mirror struct state in original_source/lzw.c: bitOffset is
// the number of valid low bits already buffered in pending, and
// bytesInGroup counts whole bytes written at the current width since the
// last width change.
type codeWriter struct {
	w            *bufio.Writer
	width        int
	pending      uint32
	bitOffset    int
	bytesInGroup int64
	written      int64
}

func newCodeWriter(w io.Writer, width int) *codeWriter {
	return &codeWriter{w: bufio.NewWriterSize(w, ioBufferSize), width: width}
}

// writeCode emits one code at the writer's current width.
func (cw *codeWriter) writeCode(code uint16) error {
	bits := cw.width
	v := cw.pending | uint32(code)<<cw.bitOffset
	avail := cw.bitOffset + bits

	for avail >= 8 {
		if err := cw.w.WriteByte(byte(v)); err != nil {
			return errors.Wrap(err, "writing code byte")
		}
		v >>= 8
		avail -= 8
		cw.bytesInGroup++
		cw.written++
	}

	cw.pending = v
	cw.bitOffset = avail
	return nil
}

// padGroup flushes any partial byte and pads with zero bytes so that the
// number of whole bytes written at oldWidth since the last transition is a
// multiple of oldWidth (spec §4.1).
func (cw *codeWriter) padGroup(oldWidth int) error {
	if cw.bitOffset > 0 {
		if err := cw.w.WriteByte(byte(cw.pending)); err != nil {
			return errors.Wrap(err, "flushing partial byte")
		}
		cw.pending = 0
		cw.bitOffset = 0
		cw.bytesInGroup++
		cw.written++
	}

	misalignment := cw.bytesInGroup % int64(oldWidth)
	cw.bytesInGroup = 0
	if misalignment == 0 {
		return nil
	}

	pad := int64(oldWidth) - misalignment
	for i := int64(0); i < pad; i++ {
		if err := cw.w.WriteByte(0); err != nil {
			return errors.Wrap(err, "writing group padding")
		}
	}
	cw.written += pad
	return nil
}

// flush writes any buffered partial byte (without padding) and flushes the
// underlying bufio.Writer. Called once, at end of stream.
func (cw *codeWriter) flush() error {
	if cw.bitOffset > 0 {
		if err := cw.w.WriteByte(byte(cw.pending)); err != nil {
			return errors.Wrap(err, "flushing final byte")
		}
		cw.pending = 0
		cw.bitOffset = 0
		cw.written++
	}
	if err := cw.w.Flush(); err != nil {
		return errors.Wrap(err, "flushing output buffer")
	}
	return nil
}

// codeReader is the read-side counterpart of codeWriter.
type codeReader struct {
	r            *bufio.Reader
	width        int
	pending      uint32
	bitOffset    int
	bytesInGroup int64
	read         int64
}

// newInputReader builds the single buffered reader used for both header and
// code bytes: the caller-supplied prefix (already-consumed bytes handed
// back for format probing, spec §6.2) spliced in front of the real stream.
func newInputReader(r io.Reader, prefix []byte) *bufio.Reader {
	return bufio.NewReaderSize(io.MultiReader(newByteSliceReader(prefix), r), ioBufferSize)
}

func newCodeReader(br *bufio.Reader, width int) *codeReader {
	return &codeReader{r: br, width: width}
}

// readCode reads one code at the reader's current width. ok is false on a
// clean EOF: nothing in the stream but (at most) the tail zero-padding that
// flush() leaves in the final partial byte, which carries no code bits of
// its own and must not be mistaken for a truncated code.
func (cr *codeReader) readCode() (code uint16, ok bool, err error) {
	bits := cr.width
	need := bits - cr.bitOffset
	startNeed := need

	for need > 0 {
		b, rerr := cr.r.ReadByte()
		if rerr == io.EOF {
			if need == startNeed {
				return 0, false, nil
			}
			return 0, false, io.ErrUnexpectedEOF
		}
		if rerr != nil {
			return 0, false, errors.Wrap(rerr, "reading code byte")
		}

		cr.pending |= uint32(b) << cr.bitOffset
		cr.bitOffset += 8
		cr.bytesInGroup++
		cr.read++
		need -= 8
	}

	mask := uint32(1)<<bits - 1
	code = uint16(cr.pending & mask)
	cr.pending >>= bits
	cr.bitOffset -= bits
	return code, true, nil
}

// discardPadding skips whatever group-padding bytes writeCode's padGroup
// would have written for oldWidth (spec §4.1). Returns false if the stream
// ends before the required padding is fully present.
func (cr *codeReader) discardPadding(oldWidth int) (bool, error) {
	// Leftover bits belong to a byte readCode already read and counted.
	if cr.bitOffset > 0 {
		cr.bitOffset = 0
		cr.pending = 0
	}

	misalignment := cr.bytesInGroup % int64(oldWidth)
	cr.bytesInGroup = 0
	if misalignment == 0 {
		return true, nil
	}

	pad := int64(oldWidth) - misalignment
	for i := int64(0); i < pad; i++ {
		if _, err := cr.r.ReadByte(); err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, errors.Wrap(err, "discarding group padding")
		}
		cr.read++
	}
	return true, nil
}

// byteSliceReader is a minimal io.Reader over a byte slice, used to splice
// a caller-supplied prefix buffer in front of the real input stream without
// pulling in a bytes.Reader allocation for the (common) empty-prefix case.
type byteSliceReader struct {
	b []byte
}

func newByteSliceReader(b []byte) *byteSliceReader { return &byteSliceReader{b: b} }

func (r *byteSliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}
