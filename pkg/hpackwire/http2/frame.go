package http2

import (
	"encoding/binary"
	"fmt"
)

// FrameType is an HTTP/2 frame type (RFC 7540 §4.1). hpackwire only
// decodes the frame header generically, plus the two frame bodies that
// actually carry an HPACK header block.
type FrameType uint8

const (
	FrameData         FrameType = 0x0
	FrameHeaders      FrameType = 0x1
	FramePriority     FrameType = 0x2
	FrameRSTStream    FrameType = 0x3
	FrameSettings     FrameType = 0x4
	FramePushPromise  FrameType = 0x5
	FramePing         FrameType = 0x6
	FrameGoAway       FrameType = 0x7
	FrameWindowUpdate FrameType = 0x8
	FrameContinuation FrameType = 0x9
)

func (t FrameType) String() string {
	switch t {
	case FrameData:
		return "DATA"
	case FrameHeaders:
		return "HEADERS"
	case FramePriority:
		return "PRIORITY"
	case FrameRSTStream:
		return "RST_STREAM"
	case FrameSettings:
		return "SETTINGS"
	case FramePushPromise:
		return "PUSH_PROMISE"
	case FramePing:
		return "PING"
	case FrameGoAway:
		return "GOAWAY"
	case FrameWindowUpdate:
		return "WINDOW_UPDATE"
	case FrameContinuation:
		return "CONTINUATION"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

// Flags holds a frame's 8 flag bits (RFC 7540 §4.1). Meaning depends on
// FrameType.
type Flags uint8

const (
	FlagHeadersEndStream  Flags = 0x1
	FlagHeadersEndHeaders Flags = 0x4
	FlagHeadersPadded     Flags = 0x8
	FlagHeadersPriority   Flags = 0x20

	FlagContinuationEndHeaders Flags = 0x4

	FlagSettingsAck Flags = 0x1
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// FrameHeader is the fixed 9-byte header that precedes every frame's
// payload (RFC 7540 §4.1):
//
//	+-----------------------------------------------+
//	|                 Length (24)                   |
//	+---------------+---------------+---------------+
//	|   Type (8)    |   Flags (8)   |
//	+-+-------------+---------------+-------------------------------+
//	|R|                 Stream Identifier (31)                      |
//	+=+=============================================================+
type FrameHeader struct {
	Length   uint32
	Type     FrameType
	Flags    Flags
	StreamID uint32
}

// DecodeFrameHeader parses the fixed 9-byte frame header from the front
// of b and validates it against RFC 7540 before returning, completing
// what the toolkit this was ported from left as an unconditional-failure
// stub: a frame boundary is exactly the information HPACK needs from its
// transport to know where one header block ends and possibly a
// CONTINUATION frame's picks up.
func DecodeFrameHeader(b []byte) (FrameHeader, error) {
	if len(b) < FrameHeaderLen {
		return FrameHeader{}, ErrInvalidFrameLength
	}

	fh := FrameHeader{
		Length:   uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]),
		Type:     FrameType(b[3]),
		Flags:    Flags(b[4]),
		StreamID: binary.BigEndian.Uint32(b[5:9]) & 0x7fffffff,
	}

	if err := fh.Validate(); err != nil {
		return FrameHeader{}, err
	}
	return fh, nil
}

// EncodeFrameHeader writes fh's 9-byte wire form to dst, which must be
// at least FrameHeaderLen bytes, and returns the number of bytes written.
func EncodeFrameHeader(dst []byte, fh FrameHeader) int {
	dst[0] = byte(fh.Length >> 16)
	dst[1] = byte(fh.Length >> 8)
	dst[2] = byte(fh.Length)
	dst[3] = byte(fh.Type)
	dst[4] = byte(fh.Flags)
	binary.BigEndian.PutUint32(dst[5:9], fh.StreamID&0x7fffffff)
	return FrameHeaderLen
}

// Validate checks a decoded frame header against the length and
// stream-ID constraints RFC 7540 places on its specific frame type.
// Only HEADERS, CONTINUATION, and SETTINGS are checked in any depth -
// the frame types relevant to flow control, priority, and push are
// deliberately out of scope here (see SPEC_FULL.md's Non-goals); every
// other type, recognized or not (RFC 7540 §4.1's extensibility rule), is
// checked for nothing beyond the frame-size ceiling.
func (fh *FrameHeader) Validate() error {
	if fh.Length > MaxFrameSize {
		return &ConnectionError{Code: ErrCodeFrameSize, Err: ErrFrameTooLarge}
	}

	switch fh.Type {
	case FrameHeaders, FrameContinuation:
		if fh.StreamID == 0 {
			return &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
		}
	case FrameSettings:
		if fh.StreamID != 0 {
			return &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
		}
		if fh.Length%6 != 0 {
			return &ConnectionError{Code: ErrCodeFrameSize, Err: ErrInvalidFrameLength}
		}
		if fh.Flags.Has(FlagSettingsAck) && fh.Length != 0 {
			return &ConnectionError{Code: ErrCodeFrameSize, Err: ErrSettingsAckWithLength}
		}
	}

	return nil
}

// HeadersFrame carries the start (and possibly all) of a header block
// (RFC 7540 §6.2).
type HeadersFrame struct {
	FrameHeader
	PadLength   uint8
	HeaderBlock []byte
}

func (f *HeadersFrame) EndStream() bool  { return f.Flags.Has(FlagHeadersEndStream) }
func (f *HeadersFrame) EndHeaders() bool { return f.Flags.Has(FlagHeadersEndHeaders) }

// ParseHeadersFrame extracts the padding and header-block-fragment from
// a HEADERS frame's payload. PRIORITY-flagged dependency/weight fields
// are out of scope (see Non-goals) and are treated as part of the
// fragment if present - callers that need PRIORITY parsing sit above
// this package.
func ParseHeadersFrame(fh FrameHeader, payload []byte) (*HeadersFrame, error) {
	f := &HeadersFrame{FrameHeader: fh}
	offset := 0

	if fh.Flags.Has(FlagHeadersPadded) {
		if len(payload) < 1 {
			return nil, &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
		}
		f.PadLength = payload[0]
		offset = 1
	}

	dataLen := len(payload) - offset - int(f.PadLength)
	if dataLen < 0 {
		return nil, &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
	}

	f.HeaderBlock = payload[offset : offset+dataLen]
	return f, nil
}

// ContinuationFrame carries the remainder of a header block that didn't
// fit in the initiating HEADERS (or PUSH_PROMISE) frame (RFC 7540
// §6.10).
type ContinuationFrame struct {
	FrameHeader
	HeaderBlock []byte
}

func (f *ContinuationFrame) EndHeaders() bool { return f.Flags.Has(FlagContinuationEndHeaders) }

func ParseContinuationFrame(fh FrameHeader, payload []byte) (*ContinuationFrame, error) {
	return &ContinuationFrame{FrameHeader: fh, HeaderBlock: payload}, nil
}

// HeaderBlockReassembler concatenates a HEADERS frame's fragment with
// zero or more CONTINUATION frames' fragments into the single contiguous
// header block HPACK actually decodes (RFC 7540 §4.3): "Header blocks
// MUST be transmitted as a contiguous sequence of frames, with no
// interleaved frames of any other type or from any other stream."
type HeaderBlockReassembler struct {
	streamID uint32
	buf      []byte
	done     bool
}

// StartHeaders begins reassembly for f, the HEADERS frame that opens a
// header block.
func (r *HeaderBlockReassembler) StartHeaders(f *HeadersFrame) {
	r.streamID = f.StreamID
	r.buf = append(r.buf[:0], f.HeaderBlock...)
	r.done = f.EndHeaders()
}

// AddContinuation appends f's fragment. It is an error for f to belong
// to a different stream than the one reassembly started on, or to arrive
// after END_HEADERS was already seen.
func (r *HeaderBlockReassembler) AddContinuation(f *ContinuationFrame) error {
	if r.done {
		return &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
	}
	if f.StreamID != r.streamID {
		return &ConnectionError{Code: ErrCodeProtocol, Err: ErrInvalidFrameLength}
	}
	r.buf = append(r.buf, f.HeaderBlock...)
	r.done = f.EndHeaders()
	return nil
}

// Done reports whether END_HEADERS has been seen.
func (r *HeaderBlockReassembler) Done() bool { return r.done }

// Block returns the reassembled header block. Valid only once Done
// reports true.
func (r *HeaderBlockReassembler) Block() []byte { return r.buf }
