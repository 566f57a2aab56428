package framing

import (
	"testing"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/ncstream"
	"github.com/kungfusheep/ncstream/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrame assembles magic + varint(len(payload)) + payload, the outer
// envelope shape every Decode* function expects (§4.5).
func buildFrame(magic Magic, payload []byte) []byte {
	frame := append([]byte{}, magic[:]...)
	frame = wire.AppendVarint(frame, uint64(len(payload)))
	frame = append(frame, payload...)
	return frame
}

func headerPayload(t *testing.T) []byte {
	t.Helper()
	c := wire.NewCursor(wire.Write, nil)
	h := &ncstream.Header{Root: &ncstream.Group{Name: ""}}
	require.NoError(t, ncstream.WriteHeader(c, h))
	return c.Bytes()
}

func TestDecodeHeaderValidFrame(t *testing.T) {
	frame := buildFrame(MagicHeader, headerPayload(t))
	h, err := DecodeHeader(frame)
	require.NoError(t, err)
	assert.NotNil(t, h.Root)
}

func TestDecodeHeaderTruncatedFrame(t *testing.T) {
	_, err := DecodeHeader([]byte{0xAD, 0xEC, 0xCE})
	assert.ErrorIs(t, err, ncerr.ErrShortBuffer)
}

func TestDecodeHeaderWrongMagic(t *testing.T) {
	frame := buildFrame(MagicData, headerPayload(t))
	_, err := DecodeHeader(frame)
	assert.ErrorIs(t, err, ncerr.ErrBadMagic)
}

func TestDecodeHeaderLengthMismatch(t *testing.T) {
	frame := buildFrame(MagicHeader, headerPayload(t))
	frame = append(frame, 0xFF) // trailing byte the declared length doesn't account for
	_, err := DecodeHeader(frame)
	assert.ErrorIs(t, err, ncerr.ErrLengthMismatch)
}

func TestDecodeHeaderServerHTMLIntrusion(t *testing.T) {
	page := []byte("<html><body>502 Bad Gateway</body></html>")
	_, err := DecodeHeader(page)
	var htmlErr *ncerr.ServerHTMLError
	require.ErrorAs(t, err, &htmlErr)
	assert.Contains(t, htmlErr.Excerpt, "502 Bad Gateway")
}

func TestDecodeHeaderUnknownFieldIsSkippedNotFatal(t *testing.T) {
	c := wire.NewCursor(wire.Write, nil)
	require.NoError(t, c.WriteTag(99, wire.WireVarint))
	require.NoError(t, c.WriteVarint(7))
	h := &ncstream.Header{Root: &ncstream.Group{}}
	require.NoError(t, ncstream.WriteHeader(c, h))

	frame := buildFrame(MagicHeader, c.Bytes())
	_, skipped, err := DecodeHeaderWithStats(frame, ncstream.Limits{})
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
}

func TestDecodeHeaderNestedSubmessageDeclaredLongerThanAvailable(t *testing.T) {
	// Hand-build a Header payload whose Root submessage declares a length
	// longer than the bytes that actually follow it within the frame.
	c := wire.NewCursor(wire.Write, nil)
	require.NoError(t, c.WriteTag(4, wire.WireCounted)) // Header field 4 = Root
	require.NoError(t, c.WriteVarint(5))                // claims 5 bytes, only 4 follow
	require.NoError(t, c.WriteBytes([]byte{0x00, 0x00, 0x00, 0x00}))

	frame := buildFrame(MagicHeader, c.Bytes())
	_, err := DecodeHeader(frame)
	assert.ErrorIs(t, err, ncerr.ErrShortBuffer)
}

func TestDecodeDataRoundtrip(t *testing.T) {
	c := wire.NewCursor(wire.Write, nil)
	d := &ncstream.Data{VarName: "temp", DataType: ncstream.Float}
	require.NoError(t, ncstream.WriteData(c, d))
	frame := buildFrame(MagicData, c.Bytes())

	got, err := DecodeData(frame)
	require.NoError(t, err)
	assert.Equal(t, "temp", got.VarName)
}

func TestDecodeErrorWrapsUpstreamError(t *testing.T) {
	c := wire.NewCursor(wire.Write, nil)
	e := &ncstream.ErrorMsg{Message: "no such variable"}
	require.NoError(t, ncstream.WriteErrorMsg(c, e))
	frame := buildFrame(MagicError, c.Bytes())

	err := DecodeError(frame)
	var upstream *ncerr.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "no such variable", upstream.Message)
}

func TestMagicString(t *testing.T) {
	assert.Equal(t, "header", MagicHeader.String())
	assert.Equal(t, "data", MagicData.String())
	assert.Equal(t, "error", MagicError.String())
	assert.Equal(t, "start", MagicStart.String())
	assert.Equal(t, "end", MagicEnd.String())
}
