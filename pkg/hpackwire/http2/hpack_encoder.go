package http2

// Encoder compresses a HeaderList into an HPACK header block (RFC 7541
// §4.4 / §6). It owns a dynamic table and is stateful across calls the
// same way the protocol requires: entries indexed by one call remain
// indexable (and must be accounted for) in the next.
type Encoder struct {
	table      *indexTable
	buf        []byte
	useHuffman bool

	sensitive map[string]bool

	pendingSizeUpdate bool
	pendingSize       uint32
}

// NewEncoder creates an encoder whose dynamic table starts at
// maxDynamicTableSize bytes (use DefaultDynamicTableSize absent a prior SETTINGS exchange).
func NewEncoder(maxDynamicTableSize uint32) *Encoder {
	return &Encoder{
		table:      newIndexTable(maxDynamicTableSize),
		useHuffman: true,
	}
}

// SetUseHuffman toggles opportunistic Huffman coding of string literals.
// It defaults to on; every representation still gets a correct plain
// encoding when Huffman coding wouldn't save space (see encodeString).
func (e *Encoder) SetUseHuffman(use bool) { e.useHuffman = use }

// SetMaxDynamicTableSize applies a new ceiling to the encoder's own
// dynamic table and arms a Dynamic Table Size Update to be emitted at
// the front of the next EncodeAll/EncodeField call, per RFC 7541 §4.2: the
// peer cannot know about the change until it sees that instruction on
// the wire. This is how a received SETTINGS_HEADER_TABLE_SIZE from the
// peer (via Settings.ApplyToEncoder) takes effect.
func (e *Encoder) SetMaxDynamicTableSize(size uint32) {
	e.table.SetMaxDynamicSize(size)
	e.pendingSizeUpdate = true
	e.pendingSize = size
}

// MarkSensitive adds name to the set of header names this encoder must
// never place in the dynamic table, beyond the fixed set IsSensitive
// already covers (cookie, set-cookie, proxy-authenticate,
// www-authenticate). Such a field is encoded as Literal Header Field
// Never Indexed unless it exactly matches a table entry, in which case
// it is an Indexed Header Field like any other exact match.
func (e *Encoder) MarkSensitive(name string) {
	if e.sensitive == nil {
		e.sensitive = make(map[string]bool)
	}
	e.sensitive[name] = true
}

func (e *Encoder) isSensitive(name string) bool {
	return IsSensitive(name) || e.sensitive[name]
}

// bigHeaderThreshold is the size past which a header is classified "big"
// rather than "indexable" (RFC 7541 §4.4 policy: avoid letting one large
// entry crowd out the dynamic table).
const bigHeaderThreshold = 256

// headerClass is the per-field classification that decides which literal
// representation encodeField emits and whether a match against it gets
// added to the dynamic table.
type headerClass int

const (
	classIndexable headerClass = iota
	classSensitive
	classBig
)

func (e *Encoder) classify(h HeaderField) headerClass {
	switch {
	case e.isSensitive(h.Name):
		return classSensitive
	case h.Size() > bigHeaderThreshold:
		return classBig
	default:
		return classIndexable
	}
}

// representation returns the prefix bits/byte and metrics label a literal
// representation uses for this class (RFC 7541 §6.2.1-6.2.3).
func (c headerClass) representation() (prefixBits uint8, prefixByte byte, kind string) {
	switch c {
	case classSensitive:
		return 4, 0x10, kindLiteralNever
	case classBig:
		return 4, 0x00, kindLiteralPlain
	default:
		return 6, 0x40, kindLiteralIndex
	}
}

// Reset clears the dynamic table and restores its maximum size to 4096,
// the state two endpoints agree on before any SETTINGS exchange (RFC
// 7541 §2.3.2). Any armed size update is discarded with it.
func (e *Encoder) Reset() {
	e.table.Reset()
	e.pendingSizeUpdate = false
	e.pendingSize = 0
}

// EncodeAll encodes every field in headers into one header block and
// returns it as a freshly allocated slice.
func (e *Encoder) EncodeAll(headers HeaderList) []byte {
	e.buf = e.buf[:0]
	e.emitPendingSizeUpdate()

	for _, h := range headers {
		e.encodeField(h)
	}

	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out
}

// EncodeField encodes a single header field and appends it to dst,
// returning the extended slice. Useful for callers building a block
// incrementally rather than from a complete HeaderList.
func (e *Encoder) EncodeField(dst []byte, h HeaderField) []byte {
	save := e.buf
	e.buf = dst
	e.emitPendingSizeUpdate()
	e.encodeField(h)
	out := e.buf
	e.buf = save
	return out
}

func (e *Encoder) emitPendingSizeUpdate() {
	if !e.pendingSizeUpdate {
		return
	}
	e.buf = EncodeInteger(e.buf, e.pendingSize, 5, 0x20)
	representationsEncoded.WithLabelValues(kindSizeUpdate).Inc()
	e.pendingSizeUpdate = false
}

// encodeField implements best_match (RFC 7541 §4.3) followed by the
// classification-driven representation choice of §4.4: best_match is
// always computed first, and a header's sensitive/big/indexable class
// only decides how an unmatched or name-only match gets encoded - an
// exact name+value match is always a plain Indexed Header Field, full
// stop, regardless of class.
func (e *Encoder) encodeField(h HeaderField) {
	class := e.classify(h)
	index, exact := e.table.Find(h.Name, h.Value)

	switch {
	case exact:
		e.encodeIndexed(index)

	case index > 0:
		e.encodeLiteralIndexedName(class, index, h.Value)
		if class == classIndexable {
			e.table.Add(h.Name, h.Value)
			dynamicTableSize.WithLabelValues(roleEncoder).Set(float64(e.table.DynamicTableSize()))
		}

	default:
		e.encodeLiteralNewName(class, h.Name, h.Value)
		if class == classIndexable {
			e.table.Add(h.Name, h.Value)
			dynamicTableSize.WithLabelValues(roleEncoder).Set(float64(e.table.DynamicTableSize()))
		}
	}
}

// encodeIndexed emits an Indexed Header Field: RFC 7541 §6.1, 1xxxxxxx.
func (e *Encoder) encodeIndexed(index int) {
	e.buf = EncodeInteger(e.buf, uint32(index), 7, 0x80)
	representationsEncoded.WithLabelValues(kindIndexed).Inc()
}

// encodeLiteralIndexedName emits the indexed-name literal form for class:
// Incremental Indexing (§6.2.1, 01xxxxxx) when indexable, Never Indexed
// (§6.2.3, 0001xxxx) when sensitive, or without indexing (§6.2.2,
// 0000xxxx) when big.
func (e *Encoder) encodeLiteralIndexedName(class headerClass, nameIndex int, value string) {
	prefixBits, prefixByte, kind := class.representation()
	e.buf = EncodeInteger(e.buf, uint32(nameIndex), prefixBits, prefixByte)
	representationsEncoded.WithLabelValues(kind).Inc()
	e.encodeString(value)
}

// encodeLiteralNewName emits the "New Name" form of a literal (index 0 in
// the name-index prefix) in the representation class dictates.
func (e *Encoder) encodeLiteralNewName(class headerClass, name, value string) {
	_, prefixByte, kind := class.representation()
	e.buf = append(e.buf, prefixByte)
	representationsEncoded.WithLabelValues(kind).Inc()
	e.encodeString(name)
	e.encodeString(value)
}

// encodeString encodes a string literal (RFC 7541 §5.2): an H bit, a
// length prefix, and the bytes. There is no length this can't represent
// - EncodeInteger's prefix continuation handles arbitrarily long names
// and values, so unlike the C++ this was ported from, nothing here
// refuses a long literal.
func (e *Encoder) encodeString(s string) {
	if e.useHuffman && len(s) > 0 {
		if huffmanLen := HuffmanEncodeLen(s); huffmanLen < len(s) {
			encoded := HuffmanEncode(s)
			e.buf = EncodeInteger(e.buf, uint32(len(encoded)), 7, 0x80)
			e.buf = append(e.buf, encoded...)
			return
		}
	}

	e.buf = EncodeInteger(e.buf, uint32(len(s)), 7, 0x00)
	e.buf = append(e.buf, s...)
}
