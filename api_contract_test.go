// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"bytes"
	"errors"
	"testing"
)

func TestAPIContract_EncodeDecodeNilOptionsUseDefaults(t *testing.T) {
	data := bytes.Repeat([]byte("api-contract"), 64)

	compressed, _, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode with nil options failed: %v", err)
	}
	if compressed[2] != 0x80|16 {
		t.Fatalf("expected maxbits=16 default in header, got flags=%#x", compressed[2])
	}

	decoded, _, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode with nil options failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("decoded output mismatch with nil options on both sides")
	}
}

func TestAPIContract_EncodeReaderDecodeReaderRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("reader-contract-payload "), 512)

	var compressed bytes.Buffer
	ratio, err := EncodeReader(bytes.NewReader(data), &compressed, &EncodeOptions{MaxBits: 14})
	if err != nil {
		t.Fatalf("EncodeReader failed: %v", err)
	}
	if ratio <= 0 {
		t.Fatalf("expected a positive compression ratio for repetitive input, got %v", ratio)
	}

	var decoded bytes.Buffer
	if _, err := DecodeReader(bytes.NewReader(compressed.Bytes()), &decoded, nil); err != nil {
		t.Fatalf("DecodeReader failed: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), data) {
		t.Fatal("reader round-trip mismatch")
	}
}

func TestAPIContract_DecodeRatioMatchesEncodeRatioInverse(t *testing.T) {
	data := bytes.Repeat([]byte("ratio-contract-payload"), 2048)

	compressed, encodeRatio, err := Encode(data, &EncodeOptions{MaxBits: 16})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, decodeRatio, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("decoded output mismatch")
	}

	// Both ratios are defined as 1 - (compressed bytes / raw bytes); from
	// opposite ends of the same stream, they must agree.
	const epsilon = 1e-9
	if diff := encodeRatio - decodeRatio; diff > epsilon || diff < -epsilon {
		t.Fatalf("encode ratio %v does not match decode ratio %v", encodeRatio, decodeRatio)
	}
}

func TestAPIContract_DecodeErrorsAreCodecErrors(t *testing.T) {
	_, _, err := Decode([]byte{0x00, 0x00, 0x00}, nil)
	if err == nil {
		t.Fatal("expected an error for bad magic")
	}

	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("expected *CodecError, got %T: %v", err, err)
	}
	if codecErr.Kind != KindFormat {
		t.Fatalf("expected KindFormat, got %v", codecErr.Kind)
	}
}
