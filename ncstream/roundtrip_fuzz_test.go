package ncstream

import (
	"testing"

	"github.com/kungfusheep/ncstream/wire"
)

// FuzzDimensionRoundtrip exercises WriteDimension/ReadDimension against
// arbitrary name/length/flag combinations, the same shape of fuzzing the
// original codec this runtime is modeled on applies per message type.
func FuzzDimensionRoundtrip(f *testing.F) {
	f.Add("time", uint64(10), false, false, false)
	f.Add("", uint64(0), true, false, false)
	f.Add("x", uint64(0), false, true, false)
	f.Add("y", uint64(0), false, false, true)

	f.Fuzz(func(t *testing.T, name string, length uint64, unlimited, vlen, private bool) {
		want := &Dimension{Name: Some(name), Length: Some(length)}
		if unlimited {
			want.IsUnlimited = Some(true)
		}
		if vlen {
			want.IsVlen = Some(true)
		}
		if private {
			want.IsPrivate = Some(true)
		}

		c := wire.NewCursor(wire.Write, nil)
		if err := WriteDimension(c, want); err != nil {
			t.Fatalf("WriteDimension: %v", err)
		}
		rc := wire.NewCursor(wire.Read, c.Bytes())
		got, err := ReadDimension(rc)
		if err != nil {
			t.Fatalf("ReadDimension: %v", err)
		}
		if got.Name.Value != name {
			t.Fatalf("Name = %q, want %q", got.Name.Value, name)
		}
		if got.Length.Value != length {
			t.Fatalf("Length = %d, want %d", got.Length.Value, length)
		}
	})
}

// FuzzAttributeRoundtrip exercises WriteAttribute/ReadAttribute with
// arbitrary name/payload/string-array combinations.
func FuzzAttributeRoundtrip(f *testing.F) {
	f.Add("units", "kelvin")
	f.Add("", "")
	f.Add("comment", "data\x00null")

	f.Fuzz(func(t *testing.T, name, text string) {
		want := &Attribute{
			Name:  name,
			Type:  String,
			SData: []string{text, text + "_2"},
		}
		c := wire.NewCursor(wire.Write, nil)
		if err := WriteAttribute(c, want); err != nil {
			t.Fatalf("WriteAttribute: %v", err)
		}
		rc := wire.NewCursor(wire.Read, c.Bytes())
		got, err := ReadAttribute(rc)
		if err != nil {
			t.Fatalf("ReadAttribute: %v", err)
		}
		if got.Name != name {
			t.Fatalf("Name = %q, want %q", got.Name, name)
		}
		if len(got.SData) != 2 || got.SData[0] != text {
			t.Fatalf("SData = %v, want [%q %q]", got.SData, text, text+"_2")
		}
	})
}

// FuzzVariableRoundtrip exercises WriteVariable/ReadVariable across
// arbitrary names and unsigned flag combinations.
func FuzzVariableRoundtrip(f *testing.F) {
	f.Add("temperature", false)
	f.Add("", true)

	f.Fuzz(func(t *testing.T, name string, unsigned bool) {
		want := &Variable{
			Name:     name,
			DataType: Float,
			Shape:    []*Dimension{{Name: Some("time")}},
			Unsigned: Some(unsigned),
		}
		c := wire.NewCursor(wire.Write, nil)
		if err := WriteVariable(c, want); err != nil {
			t.Fatalf("WriteVariable: %v", err)
		}
		rc := wire.NewCursor(wire.Read, c.Bytes())
		got, err := ReadVariable(rc)
		if err != nil {
			t.Fatalf("ReadVariable: %v", err)
		}
		if got.Name != name {
			t.Fatalf("Name = %q, want %q", got.Name, name)
		}
		if got.Unsigned.Value != unsigned {
			t.Fatalf("Unsigned = %v, want %v", got.Unsigned.Value, unsigned)
		}
	})
}
