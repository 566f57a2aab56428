package wire

import (
	"math"
	"testing"
)

// FuzzVarintRoundtrip exercises AppendVarint/DecodeVarint against arbitrary
// uint64 input, confirming VarintSize's prediction matches the bytes
// actually emitted and that decode recovers the original value exactly.
func FuzzVarintRoundtrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(127))
	f.Add(uint64(128))
	f.Add(uint64(math.MaxUint32))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, v uint64) {
		buf := AppendVarint(nil, v)
		if len(buf) != VarintSize(v) {
			t.Fatalf("VarintSize(%d) = %d, AppendVarint emitted %d bytes", v, VarintSize(v), len(buf))
		}
		got, n, err := DecodeVarint(buf)
		if err != nil {
			t.Fatalf("DecodeVarint(%v): %v", buf, err)
		}
		if got != v || n != len(buf) {
			t.Fatalf("DecodeVarint(%v) = (%d, %d), want (%d, %d)", buf, got, n, v, len(buf))
		}
	})
}

// FuzzDecodeVarintNeverPanics feeds arbitrary byte slices straight into
// DecodeVarint: it must either return a clean error or a value, never
// panic, regardless of how malformed the continuation bits are.
func FuzzDecodeVarintNeverPanics(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x80})
	f.Add([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01})

	f.Fuzz(func(t *testing.T, buf []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("DecodeVarint(%v) panicked: %v", buf, r)
			}
		}()
		_, _, _ = DecodeVarint(buf)
	})
}

// FuzzZigzag32Roundtrip confirms Zigzag32/UnZigzag32 is a bijection over
// the full int32 domain.
func FuzzZigzag32Roundtrip(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(-1))
	f.Add(int32(math.MaxInt32))
	f.Add(int32(math.MinInt32))

	f.Fuzz(func(t *testing.T, v int32) {
		if got := UnZigzag32(Zigzag32(v)); got != v {
			t.Fatalf("UnZigzag32(Zigzag32(%d)) = %d", v, got)
		}
	})
}

// FuzzZigzag64Roundtrip confirms Zigzag64/UnZigzag64 is a bijection over
// the full int64 domain.
func FuzzZigzag64Roundtrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(math.MinInt64))

	f.Fuzz(func(t *testing.T, v int64) {
		if got := UnZigzag64(Zigzag64(v)); got != v {
			t.Fatalf("UnZigzag64(Zigzag64(%d)) = %d", v, got)
		}
	})
}
