package http2

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

// Vectors from RFC 7541 Appendix C: the Huffman-coded octets that appear
// literally in the three-request walkthroughs (C.4, C.6).
func TestHuffmanRFCVectors(t *testing.T) {
	tests := []struct {
		plain string
		hex   string
	}{
		{"www.example.com", "f1e3c2e5f23a6ba0ab90f4ff"},
		{"no-cache", "a8eb10649cbf"},
		{"custom-key", "25a849e95ba97d7f"},
		{"custom-value", "25a849e95bb8e8b4bf"},
	}

	for _, tt := range tests {
		t.Run(tt.plain, func(t *testing.T) {
			want, err := hex.DecodeString(tt.hex)
			if err != nil {
				t.Fatalf("bad test vector hex: %v", err)
			}

			got := HuffmanEncode(tt.plain)
			if !bytes.Equal(got, want) {
				t.Errorf("HuffmanEncode(%q) = % x, want % x", tt.plain, got, want)
			}

			decoded, err := HuffmanDecode(want)
			if err != nil {
				t.Fatalf("HuffmanDecode(% x) error = %v", want, err)
			}
			if decoded != tt.plain {
				t.Errorf("HuffmanDecode(% x) = %q, want %q", want, decoded, tt.plain)
			}
		})
	}
}

func TestHuffmanEncodeLenMatchesEncode(t *testing.T) {
	inputs := []string{"", "a", "www.example.com", "no-cache", "custom-key", "custom-value", "mixed Case 123!"}
	for _, s := range inputs {
		if got, want := HuffmanEncodeLen(s), len(HuffmanEncode(s)); got != want {
			t.Errorf("HuffmanEncodeLen(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestHuffmanRoundTrip(t *testing.T) {
	inputs := []string{
		"", "/", "/index.html", "200", "GET", "a very long header value with spaces and punctuation!!",
	}
	for _, s := range inputs {
		encoded := HuffmanEncode(s)
		decoded, err := HuffmanDecode(encoded)
		if err != nil {
			t.Fatalf("HuffmanDecode(HuffmanEncode(%q)) error = %v", s, err)
		}
		if decoded != s {
			t.Errorf("round trip: got %q, want %q", decoded, s)
		}
	}
}

func TestHuffmanDecodeRejectsEOSSymbol(t *testing.T) {
	// The EOS codeword is 30 bits of 1s; this is more than a full byte of
	// padding, so it can only appear if a peer actually encoded symbol 256.
	data := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := HuffmanDecode(data)
	if !errors.Is(err, ErrHuffmanEOSSymbol) && !errors.Is(err, ErrHuffmanPadding) {
		t.Errorf("HuffmanDecode(% x) error = %v, want EOS or padding error", data, err)
	}
}

func TestHuffmanDecodeRejectsBadPadding(t *testing.T) {
	// 'a' is a short code; flipping a trailing bit so the padding isn't a
	// prefix of all-1s should be rejected.
	encoded := HuffmanEncode("a")
	corrupted := append([]byte{}, encoded...)
	corrupted[len(corrupted)-1] &^= 0x01

	_, err := HuffmanDecode(corrupted)
	if err == nil {
		t.Errorf("HuffmanDecode(% x) error = nil, want a padding error", corrupted)
	}
}

func TestHuffmanEncodeWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewHuffmanEncodeWriter(&buf)

	if _, err := w.Write([]byte("www.example.com")); err != nil {
		t.Fatalf("Write error = %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush error = %v", err)
	}

	want, _ := hex.DecodeString("f1e3c2e5f23a6ba0ab90f4ff")
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("HuffmanEncodeWriter output = % x, want % x", buf.Bytes(), want)
	}
}
