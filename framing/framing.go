// Package framing implements the ncStream outer envelope: magic-prefixed,
// length-prefixed frames carrying a Header, a Data announcement, or an
// Error message (§4.5). It is the layer a transport (HTTP body, TCP
// stream, file) hands raw bytes to before the ncstream message runtime
// ever sees them.
package framing

import (
	"bytes"
	"fmt"

	"github.com/kungfusheep/ncstream/ncerr"
	"github.com/kungfusheep/ncstream/ncstream"
	"github.com/kungfusheep/ncstream/wire"
)

// Magic identifies the purpose of a frame. Bytes are bit-exact per the
// wire contract (§4.5) and MUST NOT be reordered or renumbered.
type Magic [4]byte

var (
	MagicStart  = Magic{0x43, 0x44, 0x46, 0x53}
	MagicEnd    = Magic{0xED, 0xED, 0xDE, 0xDE}
	MagicHeader = Magic{0xAD, 0xEC, 0xCE, 0xDA}
	MagicData   = Magic{0xAB, 0xEC, 0xCE, 0xBA}
	MagicError  = Magic{0xAB, 0xAD, 0xBA, 0xDA}
)

func (m Magic) String() string {
	switch m {
	case MagicStart:
		return "start"
	case MagicEnd:
		return "end"
	case MagicHeader:
		return "header"
	case MagicData:
		return "data"
	case MagicError:
		return "error"
	default:
		return fmt.Sprintf("unknown(% x)", [4]byte(m))
	}
}

const htmlScanWindow = 4096

// htmlExcerptLimit bounds the substring surfaced in a ServerHTMLError so a
// multi-megabyte error page can't be copied into the error value whole.
const htmlExcerptLimit = 512

// DecodeHeader implements the decode_header algorithm (§4.5): validate the
// outer envelope, recognize the header magic, and hand the remaining
// bytes to the ncstream message reader. A leading HTML error page from a
// misconfigured server is detected and surfaced as a ServerHTMLError
// instead of being pushed through the varint/tag decoder.
func DecodeHeader(packet []byte) (*ncstream.Header, error) {
	return DecodeHeaderWithLimits(packet, ncstream.Limits{})
}

// DecodeHeaderWithLimits is DecodeHeader bounded by limits, for callers
// decoding untrusted input (§1.3's Limits/DefaultLimits surface).
func DecodeHeaderWithLimits(packet []byte, limits ncstream.Limits) (*ncstream.Header, error) {
	h, _, err := DecodeHeaderWithStats(packet, limits)
	return h, err
}

// DecodeHeaderWithStats is DecodeHeaderWithLimits plus the count of
// unknown field numbers skipped while decoding (§4.10), for callers that
// want to feed that count into metrics without re-parsing the frame.
func DecodeHeaderWithStats(packet []byte, limits ncstream.Limits) (*ncstream.Header, int, error) {
	if err := checkServerHTML(packet); err != nil {
		return nil, 0, err
	}
	if len(packet) < 8 {
		return nil, 0, ncerr.ErrShortBuffer
	}
	var got Magic
	copy(got[:], packet[:4])
	if got != MagicHeader {
		return nil, 0, ncerr.ErrBadMagic
	}
	payload, err := splitEnvelope(packet[4:])
	if err != nil {
		return nil, 0, err
	}
	c := wire.NewCursorWithLimits(wire.Read, payload, limits)
	h, err := ncstream.ReadHeader(c)
	return h, c.SkippedFields(), err
}

// DecodeData reads a data-magic frame's announcement (§3.1's Data
// message); the bulk payload bytes that follow it in the stream are the
// caller's responsibility to consume based on Data.Section.
func DecodeData(packet []byte) (*ncstream.Data, error) {
	return DecodeDataWithLimits(packet, ncstream.Limits{})
}

// DecodeDataWithLimits is DecodeData bounded by limits, for callers
// decoding untrusted input (§1.3's Limits/DefaultLimits surface).
func DecodeDataWithLimits(packet []byte, limits ncstream.Limits) (*ncstream.Data, error) {
	if err := checkServerHTML(packet); err != nil {
		return nil, err
	}
	if len(packet) < 8 {
		return nil, ncerr.ErrShortBuffer
	}
	var got Magic
	copy(got[:], packet[:4])
	if got != MagicData {
		return nil, ncerr.ErrBadMagic
	}
	payload, err := splitEnvelope(packet[4:])
	if err != nil {
		return nil, err
	}
	c := wire.NewCursorWithLimits(wire.Read, payload, limits)
	return ncstream.ReadData(c)
}

// DecodeError reads an error-magic frame and returns its message wrapped
// as an UpstreamError (§6.3).
func DecodeError(packet []byte) error {
	return DecodeErrorWithLimits(packet, ncstream.Limits{})
}

// DecodeErrorWithLimits is DecodeError bounded by limits, for callers
// decoding untrusted input (§1.3's Limits/DefaultLimits surface).
func DecodeErrorWithLimits(packet []byte, limits ncstream.Limits) error {
	if err := checkServerHTML(packet); err != nil {
		return err
	}
	if len(packet) < 8 {
		return ncerr.ErrShortBuffer
	}
	var got Magic
	copy(got[:], packet[:4])
	if got != MagicError {
		return ncerr.ErrBadMagic
	}
	payload, err := splitEnvelope(packet[4:])
	if err != nil {
		return err
	}
	c := wire.NewCursorWithLimits(wire.Read, payload, limits)
	msg, err := ncstream.ReadErrorMsg(c)
	if err != nil {
		return err
	}
	upstream := &ncerr.UpstreamError{Message: msg.Message}
	msg.Reclaim()
	return upstream
}

// splitEnvelope consumes a varint length from buf and returns the
// payload slice it prefixes, failing LengthMismatch if the declared
// length doesn't match what's actually left in buf.
func splitEnvelope(buf []byte) ([]byte, error) {
	vlen, n, err := wire.DecodeVarint(buf)
	if err != nil {
		return nil, err
	}
	if int(vlen) != len(buf)-n {
		return nil, ncerr.ErrLengthMismatch
	}
	return buf[n:], nil
}

// checkServerHTML detects a leading "<html" (after whitespace skip) and,
// if found, surfaces a bounded excerpt up to "</html>" as a
// ServerHTMLError instead of letting the framer misinterpret the page as
// a malformed magic (§4.5).
func checkServerHTML(packet []byte) error {
	window := packet
	if len(window) > htmlScanWindow {
		window = window[:htmlScanWindow]
	}
	trimmed := bytes.TrimLeft(window, " \t\r\n")
	if !bytes.HasPrefix(bytes.ToLower(trimmed), []byte("<html")) {
		return nil
	}
	excerpt := trimmed
	if idx := bytes.Index(bytes.ToLower(excerpt), []byte("</html>")); idx >= 0 {
		excerpt = excerpt[:idx+len("</html>")]
	}
	if len(excerpt) > htmlExcerptLimit {
		excerpt = excerpt[:htmlExcerptLimit]
	}
	return &ncerr.ServerHTMLError{Excerpt: string(excerpt)}
}
