// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

/*
Package lzw implements the classical `compress(1)` `.Z` file format: an
adaptive Lempel-Ziv-Welch codec with variable-width codes, group-aligned
padding, and an adaptive dictionary-clear heuristic, byte-exact with
historical implementations (including the 10-bit misread quirk that occurs
when the maximum code size is 9).

# Encode

Options may be nil (uses maxbits=16, the historical default):

	out, ratio, err := lzw.Encode(data, nil)
	out, ratio, err := lzw.Encode(data, &lzw.EncodeOptions{MaxBits: 12})

From an io.Reader/io.Writer pair, for large or streamed input:

	ratio, err := lzw.EncodeReader(r, w, nil)

# Decode

	out, ratio, err := lzw.Decode(compressed, nil)
	ratio, err := lzw.DecodeReader(r, w, nil)

If the caller already consumed some bytes from the stream while probing the
format (the usual case: peeking the first few bytes to check the magic
number before committing to decompression), hand them back via
DecodeOptions.Prefix:

	opts := &lzw.DecodeOptions{Prefix: peeked}
	out, ratio, err := lzw.Decode(rest, opts)

Errors are returned as *lzw.CodecError, classified by Kind (KindRead,
KindWrite, KindFormat); format-specific failures additionally satisfy
errors.Is against one of the package's sentinel errors (ErrBadMagic,
ErrMaxBitsRange, ErrInvalidCode, and so on).
*/
package lzw
