package http2

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Instrumentation for the HPACK codec, in the same promauto idiom the
// rest of the toolkit uses for its buffer pool. Unlike that pool's
// metrics (gated behind a "prometheus" build tag and updated from a
// polling goroutine), these are incremented directly on the hot path:
// an Encode/Decode call is synchronous and cheap enough that there is no
// separate "current state" to poll between scrapes.
var (
	representationsEncoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hpackwire",
			Subsystem: "hpack",
			Name:      "representations_encoded_total",
			Help:      "Header field representations written, by representation kind.",
		},
		[]string{"kind"},
	)

	representationsDecoded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hpackwire",
			Subsystem: "hpack",
			Name:      "representations_decoded_total",
			Help:      "Header field representations read, by representation kind.",
		},
		[]string{"kind"},
	)

	decodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hpackwire",
			Subsystem: "hpack",
			Name:      "decode_failures_total",
			Help:      "Decode errors, by sentinel error name.",
		},
		[]string{"reason"},
	)

	dynamicTableEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hpackwire",
			Subsystem: "hpack",
			Name:      "dynamic_table_evictions_total",
			Help:      "Entries evicted from a dynamic table to make room or honor a size update.",
		},
	)

	dynamicTableSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "hpackwire",
			Subsystem: "hpack",
			Name:      "dynamic_table_size_bytes",
			Help:      "Current accounted size of a dynamic table.",
		},
		[]string{"role"},
	)
)

const (
	kindIndexed       = "indexed"
	kindLiteralIndex  = "literal_incremental_indexing"
	kindLiteralPlain  = "literal_without_indexing"
	kindLiteralNever  = "literal_never_indexed"
	kindSizeUpdate    = "dynamic_table_size_update"

	roleEncoder = "encoder"
	roleDecoder = "decoder"
)

func observeDecodeFailure(err error) {
	reason := "unknown"
	switch err {
	case ErrInvalidIndex:
		reason = "invalid_index"
	case ErrIntegerOverflow:
		reason = "integer_overflow"
	case ErrUnexpectedEOF:
		reason = "unexpected_eof"
	case ErrStringTooLong:
		reason = "string_too_long"
	case ErrHuffmanPadding:
		reason = "huffman_padding"
	case ErrHuffmanEOSSymbol:
		reason = "huffman_eos_symbol"
	case ErrSizeUpdatePosition:
		reason = "size_update_position"
	case ErrSizeUpdateExceedsLimit:
		reason = "size_update_exceeds_limit"
	}
	decodeFailures.WithLabelValues(reason).Inc()
}
