package http2

import "encoding/binary"

// SettingID identifies a parameter in a SETTINGS frame payload (RFC 7540
// §6.5.2).
type SettingID uint16

const (
	SettingHeaderTableSize      SettingID = 0x1
	SettingEnablePush           SettingID = 0x2
	SettingMaxConcurrentStreams SettingID = 0x3
	SettingInitialWindowSize    SettingID = 0x4
	SettingMaxFrameSize         SettingID = 0x5
	SettingMaxHeaderListSize    SettingID = 0x6
)

// Settings holds the six connection parameters negotiated by SETTINGS
// frames. Of these, only HeaderTableSize crosses into HPACK proper (via
// ApplyToEncoder/ApplyToDecoder below); the rest are carried because a
// SETTINGS payload is encoded and decoded as one unit and HPACK's own
// dynamic-table-size handshake can't be exercised realistically without
// the frame it normally travels alongside.
type Settings struct {
	HeaderTableSize      uint32
	EnablePush           bool
	MaxConcurrentStreams uint32
	InitialWindowSize    uint32
	MaxFrameSize         uint32
	MaxHeaderListSize    uint32

	dirty uint8
}

// NewSettings returns Settings populated with RFC 7540 §6.5.2's defaults
// and nothing marked dirty.
func NewSettings() Settings {
	return Settings{
		HeaderTableSize:      DefaultDynamicTableSize,
		EnablePush:           true,
		MaxConcurrentStreams: ^uint32(0),
		InitialWindowSize:    DefaultWindowSize,
		MaxFrameSize:         DefaultMaxFrameSize,
		MaxHeaderListSize:    ^uint32(0),
	}
}

const (
	dirtyHeaderTableSize = 1 << (iota)
	dirtyEnablePush
	dirtyMaxConcurrentStreams
	dirtyInitialWindowSize
	dirtyMaxFrameSize
	dirtyMaxHeaderListSize
)

func (s *Settings) SetHeaderTableSize(v uint32) {
	s.HeaderTableSize = v
	s.dirty |= dirtyHeaderTableSize
}

func (s *Settings) SetEnablePush(v bool) {
	s.EnablePush = v
	s.dirty |= dirtyEnablePush
}

func (s *Settings) SetMaxConcurrentStreams(v uint32) {
	s.MaxConcurrentStreams = v
	s.dirty |= dirtyMaxConcurrentStreams
}

func (s *Settings) SetInitialWindowSize(v uint32) {
	s.InitialWindowSize = v
	s.dirty |= dirtyInitialWindowSize
}

func (s *Settings) SetMaxFrameSize(v uint32) {
	s.MaxFrameSize = v
	s.dirty |= dirtyMaxFrameSize
}

func (s *Settings) SetMaxHeaderListSize(v uint32) {
	s.MaxHeaderListSize = v
	s.dirty |= dirtyMaxHeaderListSize
}

// Encode appends the wire form of every parameter that has been set
// (via the Set* methods) to dst: a 2-byte identifier and a 4-byte value
// per parameter, with no separate framing of its own (the enclosing
// SETTINGS frame header supplies the length).
func (s *Settings) Encode(dst []byte) []byte {
	if s.dirty&dirtyHeaderTableSize != 0 {
		dst = appendSetting(dst, SettingHeaderTableSize, s.HeaderTableSize)
	}
	if s.dirty&dirtyEnablePush != 0 {
		v := uint32(0)
		if s.EnablePush {
			v = 1
		}
		dst = appendSetting(dst, SettingEnablePush, v)
	}
	if s.dirty&dirtyMaxConcurrentStreams != 0 {
		dst = appendSetting(dst, SettingMaxConcurrentStreams, s.MaxConcurrentStreams)
	}
	if s.dirty&dirtyInitialWindowSize != 0 {
		dst = appendSetting(dst, SettingInitialWindowSize, s.InitialWindowSize)
	}
	if s.dirty&dirtyMaxFrameSize != 0 {
		dst = appendSetting(dst, SettingMaxFrameSize, s.MaxFrameSize)
	}
	if s.dirty&dirtyMaxHeaderListSize != 0 {
		dst = appendSetting(dst, SettingMaxHeaderListSize, s.MaxHeaderListSize)
	}
	return dst
}

func appendSetting(dst []byte, id SettingID, value uint32) []byte {
	var buf [6]byte
	binary.BigEndian.PutUint16(buf[0:2], uint16(id))
	binary.BigEndian.PutUint32(buf[2:6], value)
	return append(dst, buf[:]...)
}

// DecodeSettings parses a full SETTINGS frame payload (RFC 7540 §6.5.2).
// Unknown parameter IDs are ignored, per the RFC; known parameters
// outside their legal range fail with the same error the RFC assigns.
func DecodeSettings(payload []byte) (Settings, error) {
	if len(payload)%6 != 0 {
		return Settings{}, ErrSettingsPayloadMalformed
	}

	s := NewSettings()
	s.dirty = 0

	for i := 0; i < len(payload); i += 6 {
		id := SettingID(binary.BigEndian.Uint16(payload[i : i+2]))
		value := binary.BigEndian.Uint32(payload[i+2 : i+6])

		switch id {
		case SettingHeaderTableSize:
			s.SetHeaderTableSize(value)
		case SettingEnablePush:
			if value != 0 && value != 1 {
				return Settings{}, &ConnectionError{Code: ErrCodeProtocol, Err: ErrSettingsEnablePushValue}
			}
			s.SetEnablePush(value == 1)
		case SettingMaxConcurrentStreams:
			s.SetMaxConcurrentStreams(value)
		case SettingInitialWindowSize:
			if value > MaxWindowSize {
				return Settings{}, &ConnectionError{Code: ErrCodeFlowControl, Err: ErrSettingsWindowTooLarge}
			}
			s.SetInitialWindowSize(value)
		case SettingMaxFrameSize:
			if value < MinMaxFrameSize || value > MaxFrameSize {
				return Settings{}, &ConnectionError{Code: ErrCodeProtocol, Err: ErrSettingsFrameSizeRange}
			}
			s.SetMaxFrameSize(value)
		case SettingMaxHeaderListSize:
			s.SetMaxHeaderListSize(value)
		}
	}

	return s, nil
}

// ApplyToEncoder pushes a peer's SETTINGS_HEADER_TABLE_SIZE into enc:
// the one point where the SETTINGS layer reaches into HPACK. It both
// resizes enc's dynamic table and arms the Dynamic Table Size Update
// enc must emit before its next encoded header field, per RFC 7541
// §4.2.
func (s Settings) ApplyToEncoder(enc *Encoder) {
	if s.dirty&dirtyHeaderTableSize != 0 {
		enc.SetMaxDynamicTableSize(s.HeaderTableSize)
	}
}

// ApplyToDecoder records the table-size ceiling this side advertised (the
// value it is about to send as SETTINGS_HEADER_TABLE_SIZE) on dec, so dec
// can reject a peer's Dynamic Table Size Update that tries to exceed it.
func (s Settings) ApplyToDecoder(dec *Decoder) {
	if s.dirty&dirtyHeaderTableSize != 0 {
		dec.SetPeerMaxTableSize(s.HeaderTableSize)
	}
}
