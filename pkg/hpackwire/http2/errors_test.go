package http2

import (
	"errors"
	"strings"
	"testing"
)

func TestConnectionErrorUnwrap(t *testing.T) {
	ce := &ConnectionError{Code: ErrCodeCompression, Err: ErrInvalidIndex}

	if !errors.Is(ce, ErrInvalidIndex) {
		t.Error("errors.Is did not see through ConnectionError to its wrapped cause")
	}
	if !strings.Contains(ce.Error(), "COMPRESSION_ERROR") {
		t.Errorf("Error() = %q, want it to mention COMPRESSION_ERROR", ce.Error())
	}
}

func TestStreamErrorFormatsStreamIDAsDecimal(t *testing.T) {
	se := &StreamError{StreamID: 72, Code: ErrCodeProtocol, Err: ErrUnexpectedEOF}

	got := se.Error()
	if !strings.Contains(got, "stream 72") {
		t.Errorf("Error() = %q, want it to contain the decimal stream ID %q", got, "stream 72")
	}
	if strings.ContainsRune(got, 'H') {
		// 72 is 'H' in ASCII; a correct implementation never emits the
		// stream ID as a single rune, so the letter should only ever
		// appear if it happens to be part of another word in the message.
		for _, word := range strings.Fields(got) {
			if word == "H" {
				t.Errorf("Error() = %q, stream ID appears to have been rendered as a rune, not a number", got)
			}
		}
	}
	if !errors.Is(se, ErrUnexpectedEOF) {
		t.Error("errors.Is did not see through StreamError to its wrapped cause")
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrCodeNo.String(); got != "NO_ERROR" {
		t.Errorf("ErrCodeNo.String() = %q, want NO_ERROR", got)
	}
	if got := ErrorCode(0xffff).String(); got != "UNKNOWN_ERROR" {
		t.Errorf("unknown code String() = %q, want UNKNOWN_ERROR", got)
	}
}
