package wire

import (
	"errors"
	"testing"

	"github.com/kungfusheep/ncstream/ncerr"
)

func TestCursorMarkUnmarkRoundtrip(t *testing.T) {
	c := NewCursor(Write, nil)
	if err := c.WriteTag(1, WireCounted); err != nil {
		t.Fatal(err)
	}
	body := []byte("hello")
	if err := c.WriteVarint(uint64(len(body))); err != nil {
		t.Fatal(err)
	}
	if err := c.Mark(len(body)); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteBytes(body); err != nil {
		t.Fatal(err)
	}
	if err := c.Unmark(); err != nil {
		t.Fatalf("Unmark after exact write: %v", err)
	}
}

func TestCursorUnmarkDetectsShortWrite(t *testing.T) {
	c := NewCursor(Write, nil)
	if err := c.Mark(5); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteBytes([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	if err := c.Unmark(); !errors.Is(err, ncerr.ErrFramingError) {
		t.Fatalf("Unmark after short write: got %v, want ErrFramingError", err)
	}
}

func TestCursorUnmarkWithoutMark(t *testing.T) {
	c := NewCursor(Write, nil)
	if err := c.Unmark(); !errors.Is(err, ncerr.ErrFramingError) {
		t.Fatalf("Unmark with no active region: got %v, want ErrFramingError", err)
	}
}

func TestCursorReadBoundedByRegion(t *testing.T) {
	c := NewCursor(Read, []byte("0123456789"))
	if err := c.Mark(4); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ReadBytes(5); !errors.Is(err, ncerr.ErrShortBuffer) {
		t.Fatalf("ReadBytes past region end: got %v, want ErrShortBuffer", err)
	}
	b, err := c.ReadBytes(4)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "0123" {
		t.Fatalf("ReadBytes(4) = %q, want %q", b, "0123")
	}
	if !c.AtEnd() {
		t.Fatal("expected AtEnd() after consuming the whole region")
	}
}

func TestMarkRejectsExcessiveDepth(t *testing.T) {
	c := NewCursorWithLimits(Write, nil, Limits{MaxDepth: 2})
	if err := c.Mark(0); err != nil {
		t.Fatalf("first Mark within MaxDepth: %v", err)
	}
	if err := c.Mark(0); err != nil {
		t.Fatalf("second Mark within MaxDepth: %v", err)
	}
	if err := c.Mark(0); !errors.Is(err, ncerr.ErrMalformed) {
		t.Fatalf("Mark exceeding MaxDepth: got %v, want ErrMalformed", err)
	}
}

func TestZeroLimitsAreUnlimited(t *testing.T) {
	c := NewCursorWithLimits(Write, nil, Limits{})
	for i := 0; i < 100; i++ {
		if err := c.Mark(0); err != nil {
			t.Fatalf("Mark %d with zero-value Limits: %v", i, err)
		}
	}
}

func TestReadLengthPrefixedBytesRejectsOversizedLength(t *testing.T) {
	c := NewCursorWithLimits(Read, AppendVarint(nil, 1<<20), Limits{MaxBytesFieldLen: 1024})
	if _, err := c.ReadLengthPrefixedBytes(); !errors.Is(err, ncerr.ErrMalformed) {
		t.Fatalf("ReadLengthPrefixedBytes over MaxBytesFieldLen: got %v, want ErrMalformed", err)
	}
}
