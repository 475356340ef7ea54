package lzw

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0x41}},
		{name: "short-text", data: []byte("TOBEORNOTTOBEORTOBEORNOT")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0x41}, 512)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
	}
}

func allMaxBits() []int {
	return []int{9, 10, 11, 12, 13, 14, 15, 16}
}

func TestEncodeDecode_RoundTripAcrossMaxBits(t *testing.T) {
	for _, in := range testInputSet() {
		for _, maxBits := range allMaxBits() {
			name := fmt.Sprintf("%s/maxbits-%d", in.name, maxBits)
			t.Run(name, func(t *testing.T) {
				compressed, ratio, err := Encode(in.data, &EncodeOptions{MaxBits: maxBits})
				if err != nil {
					t.Fatalf("Encode failed: %v", err)
				}
				if len(compressed) < 3 {
					t.Fatalf("compressed data too short: %d", len(compressed))
				}
				if len(in.data) == 0 {
					if ratio != -1.0 {
						t.Fatalf("expected ratio -1.0 for empty input, got %v", ratio)
					}
					if len(compressed) != 3 {
						t.Fatalf("expected exactly 3 header bytes for empty input, got %d", len(compressed))
					}
				}

				decoded, _, err := Decode(compressed, nil)
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !bytes.Equal(decoded, in.data) && !(len(decoded) == 0 && len(in.data) == 0) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(decoded), len(in.data))
				}
			})
		}
	}
}

func TestEncode_HeaderBytes(t *testing.T) {
	for _, maxBits := range allMaxBits() {
		compressed, _, err := Encode([]byte("x"), &EncodeOptions{MaxBits: maxBits})
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		want := []byte{magic1, magic2, byte(0x80 | maxBits)}
		if !bytes.Equal(compressed[:3], want) {
			t.Fatalf("header mismatch for maxbits=%d: got % x want % x", maxBits, compressed[:3], want)
		}
	}
}

func TestEncode_EmptyInputHeaderOnly(t *testing.T) {
	compressed, ratio, err := Encode(nil, &EncodeOptions{MaxBits: 12})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if ratio != -1.0 {
		t.Fatalf("expected ratio -1.0, got %v", ratio)
	}
	want := []byte{magic1, magic2, 0x8C}
	if !bytes.Equal(compressed, want) {
		t.Fatalf("got % x want % x", compressed, want)
	}
}

func TestEncode_Determinism(t *testing.T) {
	data := bytes.Repeat([]byte("determinism-check"), 4096)
	a, ratioA, err := Encode(data, &EncodeOptions{MaxBits: 16})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	b, ratioB, err := Encode(data, &EncodeOptions{MaxBits: 16})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("two encodes of identical input produced different output")
	}
	if ratioA != ratioB {
		t.Fatalf("ratio differs across identical runs: %v vs %v", ratioA, ratioB)
	}
}

func TestEncode_RejectsMaxBitsOutOfRange(t *testing.T) {
	for _, mb := range []int{1, 8, 17, 255} {
		_, _, err := Encode([]byte("x"), &EncodeOptions{MaxBits: mb})
		if err == nil {
			t.Fatalf("expected error for maxbits=%d", mb)
		}
	}
}

func TestEncodeDecode_NineBitQuirkRoundTrip(t *testing.T) {
	// Enough distinct 2-byte sequences to fill the maxbits=9 dictionary
	// (512 entries) and force the quirk described in spec §4.2.2.
	var data []byte
	for i := 0; i < 4000; i++ {
		data = append(data, byte(i), byte(i>>8), byte(i*7))
	}

	compressed, _, err := Encode(data, &EncodeOptions{MaxBits: 9})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, _, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatalf("round-trip mismatch for 9-bit quirk case: got=%d want=%d", len(decoded), len(data))
	}
}

func TestEncodeDecode_AdaptiveClearOnPseudorandomData(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 2<<20)
	rng.Read(data)

	compressed, ratio, err := Encode(data, &EncodeOptions{MaxBits: 16})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if ratio >= 0 {
		t.Logf("unexpectedly non-negative ratio for pseudorandom data: %v", ratio)
	}

	decoded, _, err := Decode(compressed, nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round-trip mismatch for pseudorandom data")
	}
}

func TestEncodeDecode_CompressibleText100KiB(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 2276)
	if len(data) < 100*1024 {
		t.Fatalf("test fixture too small: %d bytes", len(data))
	}

	for _, maxBits := range allMaxBits() {
		compressed, _, err := Encode(data, &EncodeOptions{MaxBits: maxBits})
		if err != nil {
			t.Fatalf("maxbits=%d: Encode failed: %v", maxBits, err)
		}
		decoded, _, err := Decode(compressed, nil)
		if err != nil {
			t.Fatalf("maxbits=%d: Decode failed: %v", maxBits, err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("maxbits=%d: round-trip mismatch", maxBits)
		}
	}
}

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(9))
	f.Add([]byte("hello world"), uint8(16))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(12))

	f.Fuzz(func(t *testing.T, data []byte, maxBits uint8) {
		mb := 9 + int(maxBits%8)

		compressed, _, err := Encode(data, &EncodeOptions{MaxBits: mb})
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		decoded, _, err := Decode(compressed, nil)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, data) && !(len(decoded) == 0 && len(data) == 0) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(decoded), len(data))
		}
	})
}
