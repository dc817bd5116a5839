package http2

import (
	"errors"
	"testing"
)

func TestEncodeInteger(t *testing.T) {
	tests := []struct {
		name       string
		value      uint32
		prefixBits uint8
		prefixByte byte
		want       []byte
	}{
		// RFC 7541 C.1.1: 10 encoded with a 5-bit prefix.
		{"fits in prefix", 10, 5, 0x00, []byte{0x0a}},
		// RFC 7541 C.1.2: 1337 encoded with a 5-bit prefix.
		{"needs continuation", 1337, 5, 0x00, []byte{0x1f, 0x9a, 0x0a}},
		// RFC 7541 C.1.3: 42 encoded with an 8-bit prefix.
		{"full byte prefix", 42, 8, 0x00, []byte{0x2a}},
		{"prefix boundary exact", 30, 5, 0x00, []byte{0x1e}},
		{"prefix boundary plus one", 31, 5, 0x00, []byte{0x1f, 0x00}},
		{"prefix byte ORed in", 10, 5, 0x80, []byte{0x8a}},
		{"zero", 0, 7, 0x00, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeInteger(nil, tt.value, tt.prefixBits, tt.prefixByte)
			if string(got) != string(tt.want) {
				t.Errorf("EncodeInteger(%d, %d, %#x) = % x, want % x", tt.value, tt.prefixBits, tt.prefixByte, got, tt.want)
			}
		})
	}
}

func TestDecodeInteger(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		prefixBits   uint8
		wantValue    uint32
		wantConsumed int
	}{
		{"fits in prefix", []byte{0x0a}, 5, 10, 1},
		{"needs continuation", []byte{0x1f, 0x9a, 0x0a}, 5, 1337, 3},
		{"full byte prefix", []byte{0x2a}, 8, 42, 1},
		{"trailing bytes ignored", []byte{0x0a, 0xff, 0xff}, 5, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, consumed, err := DecodeInteger(tt.data, tt.prefixBits)
			if err != nil {
				t.Fatalf("DecodeInteger() error = %v", err)
			}
			if value != tt.wantValue {
				t.Errorf("value = %d, want %d", value, tt.wantValue)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.wantConsumed)
			}
		})
	}
}

func TestDecodeIntegerTruncated(t *testing.T) {
	tests := [][]byte{
		{},
		{0x1f},
		{0x1f, 0x9a},
	}
	for _, data := range tests {
		_, _, err := DecodeInteger(data, 5)
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("DecodeInteger(% x) error = %v, want ErrUnexpectedEOF", data, err)
		}
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	// A prefix of all 1s followed by enough continuation bytes, each
	// carrying 7 bits with the continuation bit set, to push the
	// accumulated value past math.MaxUint32.
	data := []byte{0x1f, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}
	_, _, err := DecodeInteger(data, 5)
	if !errors.Is(err, ErrIntegerOverflow) {
		t.Errorf("DecodeInteger(% x) error = %v, want ErrIntegerOverflow", data, err)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 30, 31, 127, 128, 1337, 65535, 1 << 20, 1<<31 - 1}
	for _, prefixBits := range []uint8{4, 5, 6, 7, 8} {
		for _, v := range values {
			encoded := EncodeInteger(nil, v, prefixBits, 0)
			got, consumed, err := DecodeInteger(encoded, prefixBits)
			if err != nil {
				t.Fatalf("prefix=%d value=%d: decode error %v", prefixBits, v, err)
			}
			if got != v {
				t.Errorf("prefix=%d value=%d: round-tripped to %d", prefixBits, v, got)
			}
			if consumed != len(encoded) {
				t.Errorf("prefix=%d value=%d: consumed %d, want %d", prefixBits, v, consumed, len(encoded))
			}
		}
	}
}
