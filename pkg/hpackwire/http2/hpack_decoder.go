package http2

import "io"

// byteReader is a zero-allocation substitute for bytes.NewReader: it
// implements the subset of io.ByteScanner/io.Reader the decoder needs
// directly over a re-used []byte, so decoding a header block never
// allocates a reader.
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) UnreadByte() error {
	if r.pos <= 0 {
		return io.EOF
	}
	r.pos--
	return nil
}

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *byteReader) Len() int { return len(r.data) - r.pos }

func (r *byteReader) Reset(data []byte) {
	r.data = data
	r.pos = 0
}

// commonHeaderNames seeds the decoder's string-interning table so that
// decoding the same handful of header names over and over (as a real
// HTTP/2 connection does) reuses one Go string instead of allocating a
// fresh one per header block.
var commonHeaderNames = []string{
	":authority", ":method", ":path", ":scheme", ":status",
	"accept", "accept-encoding", "accept-language", "accept-ranges",
	"access-control-allow-credentials", "access-control-allow-headers",
	"access-control-allow-methods", "access-control-allow-origin",
	"access-control-expose-headers", "access-control-max-age",
	"age", "cache-control", "content-disposition", "content-encoding",
	"content-language", "content-length", "content-location", "content-range",
	"content-type", "cookie", "date", "etag", "expect", "expires", "from",
	"host", "if-match", "if-modified-since", "if-none-match", "if-range",
	"if-unmodified-since", "last-modified", "link", "location", "max-forwards",
	"proxy-authenticate", "proxy-authorization", "range", "referer", "refresh",
	"retry-after", "server", "set-cookie", "strict-transport-security",
	"transfer-encoding", "user-agent", "vary", "via", "www-authenticate",
}

// Decoder expands an HPACK header block back into a HeaderList (RFC 7541
// §4.5 / §6). Like Encoder, it owns a dynamic table and carries state
// across calls: the table built up decoding one block is exactly the
// table used to resolve indices in the next.
type Decoder struct {
	table           *indexTable
	maxStringLength int

	// peerMaxTableSize is the ceiling SETTINGS_HEADER_TABLE_SIZE placed
	// on this decoder's own table (i.e. the value we told the remote
	// peer we'd accept). A Dynamic Table Size Update larger than this
	// means the peer is violating the agreed limit.
	peerMaxTableSize    uint32
	peerMaxTableSizeSet bool

	stringIntern map[string]string
	headerBuf    []HeaderField
	stringBuf    []byte
	reader       byteReader
}

// NewDecoder creates a decoder whose dynamic table starts at
// maxDynamicTableSize bytes. maxStringLength bounds how large a single
// name or value literal is allowed to be (0 selects a 16 MiB default),
// guarding against a peer claiming an enormous length prefix to force a
// huge allocation before any of the claimed bytes have even arrived.
func NewDecoder(maxDynamicTableSize uint32, maxStringLength int) *Decoder {
	if maxStringLength == 0 {
		maxStringLength = 16 * 1024 * 1024
	}

	stringIntern := make(map[string]string, len(commonHeaderNames))
	for _, h := range commonHeaderNames {
		stringIntern[h] = h
	}

	return &Decoder{
		table:           newIndexTable(maxDynamicTableSize),
		maxStringLength: maxStringLength,
		stringIntern:    stringIntern,
		headerBuf:       make([]HeaderField, 0, 32),
		stringBuf:       make([]byte, 0, 256),
	}
}

// SetPeerMaxTableSize records the SETTINGS_HEADER_TABLE_SIZE value this
// side advertised to its peer. Any Dynamic Table Size Update the peer
// subsequently sends that exceeds it is a protocol violation: the peer
// would be claiming a table larger than this side agreed to track.
func (d *Decoder) SetPeerMaxTableSize(size uint32) {
	d.peerMaxTableSize = size
	d.peerMaxTableSizeSet = true
}

// Reset clears the dynamic table and restores its maximum size to 4096.
func (d *Decoder) Reset() { d.table.Reset() }

// Decode expands encoded into a freshly allocated HeaderList.
func (d *Decoder) Decode(encoded []byte) (HeaderList, error) {
	headers, err := d.decodeInto(encoded, nil)
	if err != nil {
		return nil, err
	}
	out := make(HeaderList, len(headers))
	copy(out, headers)
	return out, nil
}

// DecodeInto decodes encoded, appending results onto headers (pass
// headers[:0] to reuse a backing array across calls) and returning the
// extended slice. This avoids the copy Decode makes for callers who
// already own the destination slice's lifetime.
func (d *Decoder) DecodeInto(encoded []byte, headers HeaderList) (HeaderList, error) {
	return d.decodeInto(encoded, headers)
}

func (d *Decoder) decodeInto(encoded []byte, headers HeaderList) (HeaderList, error) {
	d.headerBuf = d.headerBuf[:0]
	d.reader.Reset(encoded)

	sawRepresentation := false

	for d.reader.Len() > 0 {
		b, err := d.reader.ReadByte()
		if err != nil {
			return headers, err
		}
		d.reader.UnreadByte()

		switch {
		case b&0x80 != 0:
			hf, err := d.decodeIndexed()
			if err != nil {
				observeDecodeFailure(err)
				return headers, err
			}
			representationsDecoded.WithLabelValues(kindIndexed).Inc()
			sawRepresentation = true
			d.headerBuf = append(d.headerBuf, hf)

		case b&0x40 != 0:
			hf, err := d.decodeLiteral(6, true, false)
			if err != nil {
				observeDecodeFailure(err)
				return headers, err
			}
			representationsDecoded.WithLabelValues(kindLiteralIndex).Inc()
			sawRepresentation = true
			d.headerBuf = append(d.headerBuf, hf)

		case b&0x20 != 0:
			if sawRepresentation {
				observeDecodeFailure(ErrSizeUpdatePosition)
				return headers, ErrSizeUpdatePosition
			}
			if err := d.decodeTableSizeUpdate(); err != nil {
				observeDecodeFailure(err)
				return headers, err
			}
			representationsDecoded.WithLabelValues(kindSizeUpdate).Inc()
			continue

		case b&0x10 != 0:
			hf, err := d.decodeLiteral(4, false, true)
			if err != nil {
				observeDecodeFailure(err)
				return headers, err
			}
			representationsDecoded.WithLabelValues(kindLiteralNever).Inc()
			sawRepresentation = true
			d.headerBuf = append(d.headerBuf, hf)

		default:
			hf, err := d.decodeLiteral(4, false, false)
			if err != nil {
				observeDecodeFailure(err)
				return headers, err
			}
			representationsDecoded.WithLabelValues(kindLiteralPlain).Inc()
			sawRepresentation = true
			d.headerBuf = append(d.headerBuf, hf)
		}
	}

	headers = append(headers, d.headerBuf...)
	return headers, nil
}

func (d *Decoder) intern(name string) string {
	if interned, ok := d.stringIntern[name]; ok {
		return interned
	}
	if len(d.stringIntern) < 512 {
		d.stringIntern[name] = name
	}
	return name
}

// decodeIndexed decodes an Indexed Header Field (RFC 7541 §6.1).
func (d *Decoder) decodeIndexed() (HeaderField, error) {
	value, consumed, err := DecodeInteger(d.remaining(), 7)
	if err != nil {
		return HeaderField{}, err
	}
	d.advance(consumed)

	if value == 0 {
		return HeaderField{}, ErrInvalidIndex
	}

	hf, ok := d.table.Get(int(value))
	if !ok {
		return HeaderField{}, ErrInvalidIndex
	}
	return hf, nil
}

// decodeLiteral decodes any of the three literal representations (RFC
// 7541 §6.2.1-6.2.3). They share a shape - an N-bit name-index prefix,
// then a name if that index is 0, then a value - and differ only in N
// and in whether a successful decode adds the field to the dynamic
// table.
func (d *Decoder) decodeLiteral(prefixBits uint8, addToTable bool, neverIndexed bool) (HeaderField, error) {
	nameIndex, consumed, err := DecodeInteger(d.remaining(), prefixBits)
	if err != nil {
		return HeaderField{}, err
	}
	d.advance(consumed)

	var name string
	if nameIndex == 0 {
		name, err = d.decodeString()
		if err != nil {
			return HeaderField{}, err
		}
	} else {
		hf, ok := d.table.Get(int(nameIndex))
		if !ok {
			return HeaderField{}, ErrInvalidIndex
		}
		name = d.intern(hf.Name)
	}

	value, err := d.decodeString()
	if err != nil {
		return HeaderField{}, err
	}

	hf := HeaderField{Name: name, Value: value}

	if addToTable && !neverIndexed && !IsSensitive(name) {
		d.table.Add(name, value)
		dynamicTableSize.WithLabelValues(roleDecoder).Set(float64(d.table.DynamicTableSize()))
	}

	return hf, nil
}

// decodeTableSizeUpdate decodes a Dynamic Table Size Update (RFC 7541
// §6.3) and applies it, rejecting a value that exceeds the ceiling this
// side advertised via SETTINGS_HEADER_TABLE_SIZE.
func (d *Decoder) decodeTableSizeUpdate() error {
	size, consumed, err := DecodeInteger(d.remaining(), 5)
	if err != nil {
		return err
	}
	d.advance(consumed)

	if d.peerMaxTableSizeSet && size > d.peerMaxTableSize {
		return ErrSizeUpdateExceedsLimit
	}

	d.table.SetMaxDynamicSize(size)
	return nil
}

// decodeString decodes a string literal (RFC 7541 §5.2): an H bit, a
// length prefix, then that many bytes, Huffman-decoded if H was set.
func (d *Decoder) decodeString() (string, error) {
	b, err := d.reader.ReadByte()
	if err != nil {
		return "", ErrUnexpectedEOF
	}
	huffman := b&0x80 != 0
	d.reader.UnreadByte()

	length, consumed, err := DecodeInteger(d.remaining(), 7)
	if err != nil {
		return "", err
	}
	d.advance(consumed)

	if int(length) > d.maxStringLength {
		return "", ErrStringTooLong
	}
	if length == 0 {
		return "", nil
	}

	if cap(d.stringBuf) < int(length) {
		d.stringBuf = make([]byte, length)
	} else {
		d.stringBuf = d.stringBuf[:length]
	}

	n, err := d.reader.Read(d.stringBuf)
	if err != nil || n != int(length) {
		return "", ErrUnexpectedEOF
	}

	if huffman {
		return HuffmanDecode(d.stringBuf)
	}
	// d.stringBuf is reused by the next decodeString call (e.g. the value
	// half of this same literal), so the returned string must own its
	// bytes rather than alias that buffer - a plain conversion copies,
	// unlike bytesToString.
	return string(d.stringBuf), nil
}

// remaining returns the unread tail of the current header block, for
// passing to the free-function DecodeInteger without the reader
// allocating a copy.
func (d *Decoder) remaining() []byte {
	return d.reader.data[d.reader.pos:]
}

func (d *Decoder) advance(n int) {
	d.reader.pos += n
}
