//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzDecodeFields_NoPanic feeds arbitrary bytes to the decoder for
// every registered record type. Most inputs must fail cleanly; none may
// panic or return a partial record.
func FuzzDecodeFields_NoPanic(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add(make([]byte, 41))
	f.Add([]byte{0x05, 0x02, 0x00, 0x00, 0x00, 0x11, 0xF4, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<20 {
			t.Skip("input too large for fuzz test")
		}
		for _, rt := range RegisteredTypes() {
			fields, err := DecodeFields(rt, data)
			if err != nil {
				if CodeOf(err) == "" {
					t.Errorf("%s: unstructured error: %v", rt, err)
				}
				continue
			}
			// A successful decode must re-encode without error.
			if _, err := EncodeFields(rt, fields); err != nil {
				t.Errorf("%s: decoded fields failed to re-encode: %v", rt, err)
			}
		}
	})
}

// FuzzRoundTrip_Batch builds a vector record from fuzzed values and
// checks encode/decode/encode stability.
func FuzzRoundTrip_Batch(f *testing.F) {
	f.Add(uint8(0), uint8(0), uint64(0))
	f.Add(uint8(5), uint8(17), uint64(500))
	f.Add(uint8(255), uint8(49), uint64(18446744073709551615))

	f.Fuzz(func(t *testing.T, tag, elemTag uint8, x uint64) {
		fields := Fields{
			"tag": tag,
			"points": []Fields{
				{"tag": elemTag, "x": x},
				{"tag": elemTag ^ 0xFF, "x": x >> 1},
			},
		}
		encoded, err := EncodeFields(testBatch, fields)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		decoded, err := DecodeFields(testBatch, encoded)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		again, err := EncodeFields(testBatch, decoded)
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		if !bytes.Equal(encoded, again) {
			t.Errorf("round trip not stable: %x vs %x", encoded, again)
		}
	})
}
