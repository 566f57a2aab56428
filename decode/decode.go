// Package decode wires the framing, message runtime, and graph packages
// together into the single entry point most callers want: bytes in,
// a normalized Header and NodeSet out (§6.2).
package decode

import (
	"github.com/kungfusheep/ncstream/framing"
	"github.com/kungfusheep/ncstream/graph"
	"github.com/kungfusheep/ncstream/metrics"
	"github.com/kungfusheep/ncstream/ncstream"
)

// Result bundles a decoded Header with its normalized, flat NodeSet. The
// Header owns the tree; reclaiming it (Header.Reclaim) is the caller's
// responsibility once Result is no longer needed.
type Result struct {
	Header  *ncstream.Header
	NodeSet graph.NodeSet
}

// Decode runs the full pipeline over a single header-magic frame: parse
// the envelope and Header message, walk the graph, compute pathnames,
// then resolve and dereference dimension references (§6.2). On any
// normalization failure the partially-built Header is reclaimed before
// returning, matching the no-leak policy the message runtime applies on
// decode failures (§7).
func Decode(packet []byte) (*Result, error) {
	return DecodeWithMetrics(packet, nil)
}

// DecodeWithMetrics is Decode with optional Prometheus instrumentation. A
// nil m behaves exactly like Decode (metrics.Metrics's Record* methods
// are themselves nil-safe, but skipping the call avoids layering a no-op
// through every decode in the hot path).
func DecodeWithMetrics(packet []byte, m *metrics.Metrics) (*Result, error) {
	return DecodeWithOptions(packet, ncstream.Limits{}, m)
}

// DecodeWithOptions is DecodeWithMetrics with an explicit Limits bound, for
// callers decoding untrusted input (§1.3's Limits/DefaultLimits surface).
func DecodeWithOptions(packet []byte, limits ncstream.Limits, m *metrics.Metrics) (*Result, error) {
	h, skipped, err := framing.DecodeHeaderWithStats(packet, limits)
	if m != nil {
		m.RecordUnknownField(skipped)
	}
	if err != nil {
		if m != nil {
			m.RecordDecode("error", len(packet))
		}
		return nil, err
	}
	set := graph.Walk(h)
	graph.ComputePathnames(set)
	if err := graph.MapDimensions(set); err != nil {
		h.Reclaim()
		if m != nil {
			m.RecordDecode("error", len(packet))
			m.RecordDimensionResolveError("invalid_coords")
		}
		return nil, err
	}
	graph.DerefDimensions(&set)
	if m != nil {
		m.RecordDecode("ok", len(packet))
	}
	return &Result{Header: h, NodeSet: set}, nil
}
