package http2

// Frame size limits (RFC 7540 §4.2).
const (
	// MaxFrameSize is the largest payload length any frame may carry.
	MaxFrameSize = 1<<24 - 1 // 16,777,215 bytes

	// DefaultMaxFrameSize is SETTINGS_MAX_FRAME_SIZE's initial value.
	DefaultMaxFrameSize = 16384

	// MinMaxFrameSize is the smallest legal value for SETTINGS_MAX_FRAME_SIZE.
	MinMaxFrameSize = 16384

	// FrameHeaderLen is the fixed length of an HTTP/2 frame header.
	FrameHeaderLen = 9
)

// Window size limits (RFC 7540 §6.9.1).
const (
	MaxWindowSize       = 1<<31 - 1
	DefaultWindowSize   = 65535
	ConnectionStreamID  = 0
	DefaultEnablePush   = 1
	MaxStreamID         = 1<<31 - 1
	MaxPadding          = 255
)

// DefaultDynamicTableSize is HPACK's dynamic table capacity before any
// SETTINGS_HEADER_TABLE_SIZE or Dynamic Table Size Update is applied, and
// the value a Reset must restore (RFC 7541 §2.3.2).
const DefaultDynamicTableSize = 4096

// ClientPreface is the magic connection preface a client sends before its
// first frame: "PRI * HTTP/2.0\r\n\r\nSM\r\n\r\n" (RFC 7540 §3.5).
var ClientPreface = []byte{
	0x50, 0x52, 0x49, 0x20, 0x2a, 0x20, 0x48, 0x54,
	0x54, 0x50, 0x2f, 0x32, 0x2e, 0x30, 0x0d, 0x0a,
	0x0d, 0x0a, 0x53, 0x4d, 0x0d, 0x0a, 0x0d, 0x0a,
}
