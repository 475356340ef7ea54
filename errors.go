// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"errors"
	"fmt"
)

// Kind classifies a CodecError the way the historical RESULT_* enum did.
type Kind int

const (
	// KindRead marks a transport fault on the input stream.
	KindRead Kind = iota + 1
	// KindWrite marks a transport fault on the output stream.
	KindWrite
	// KindFormat marks a malformed or rejected `.Z` stream.
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindRead:
		return "read error"
	case KindWrite:
		return "write error"
	case KindFormat:
		return "format error"
	default:
		return "unknown error"
	}
}

// CodecError is the error type returned by Encode/Decode and their Reader
// variants. It carries a Kind (read/write/format) and wraps the underlying
// cause, so callers can branch on Kind or use errors.Is/errors.As on the
// wrapped sentinel.
type CodecError struct {
	Kind Kind
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("lzw: %s: %v", e.Kind, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }

func readError(err error) *CodecError  { return &CodecError{Kind: KindRead, Err: err} }
func writeError(err error) *CodecError { return &CodecError{Kind: KindWrite, Err: err} }
func formatError(err error) *CodecError { return &CodecError{Kind: KindFormat, Err: err} }

// Sentinel format errors. Each is returned wrapped in a *CodecError with
// Kind == KindFormat, so both errors.Is(err, ErrBadMagic) and
// errors.Is(err, ErrFormatError) hold.
var (
	// ErrFormatError is the umbrella sentinel every format-rejection error wraps.
	ErrFormatError = errors.New("invalid .Z stream")

	// ErrBadMagic is returned when the first two bytes are not 0x1F, 0x9D.
	ErrBadMagic = fmt.Errorf("%w: bad magic bytes", ErrFormatError)
	// ErrReservedFlags is returned when header bits 5 or 6 are set.
	ErrReservedFlags = fmt.Errorf("%w: reserved header flags set", ErrFormatError)
	// ErrMaxBitsRange is returned when maxbits is outside 9..=16.
	ErrMaxBitsRange = fmt.Errorf("%w: maxbits out of range", ErrFormatError)
	// ErrInvalidCode is returned when a decoded code exceeds the current next-free slot.
	ErrInvalidCode = fmt.Errorf("%w: code exceeds dictionary", ErrFormatError)
	// ErrTruncatedPadding is returned when group padding (after a CLEAR code
	// or a width-growth boundary) is cut short by EOF.
	ErrTruncatedPadding = fmt.Errorf("%w: truncated group padding", ErrFormatError)
	// ErrTruncatedHeader is returned when fewer than 3 header bytes are available
	// and no more can be read (not even a valid empty-file header).
	ErrTruncatedHeader = fmt.Errorf("%w: truncated header", ErrFormatError)
)
