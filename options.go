// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

// EncodeOptions configures Encode/EncodeReader.
type EncodeOptions struct {
	// MaxBits is the maximum code width in bits, 9..=16. The historical
	// `compress` default is 16; values of 9 trigger the 9-bit quirk
	// described in spec §4.2.2 and should generally be avoided.
	MaxBits int
}

// DefaultEncodeOptions returns options using the historical default of
// maxbits=16.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{MaxBits: 16}
}

// DecodeOptions configures Decode/DecodeReader.
type DecodeOptions struct {
	// Prefix holds bytes the caller already consumed from the stream
	// (typically the first few bytes read while probing the format). The
	// decoder treats Prefix as the initial contents of its read buffer.
	Prefix []byte
}

// DefaultDecodeOptions returns options with no prefix bytes.
func DefaultDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

func (o *EncodeOptions) maxBits() int {
	if o == nil || o.MaxBits == 0 {
		return DefaultEncodeOptions().MaxBits
	}
	return o.MaxBits
}
