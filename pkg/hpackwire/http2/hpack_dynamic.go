package http2

// The dynamic table (RFC 7541 §2.3.2): a byte-size-bounded, LIFO list of
// header fields. New entries go in at the front; when adding one would
// push the table over its size limit, entries are evicted from the back
// until it fits. Dynamic table indices are combined with the static
// table's by the caller: static occupies 1-61, dynamic starts at 62.
//
// Implemented as a circular buffer so Add/evict never shift existing
// entries; the buffer only grows (by doubling) when it's actually full,
// never on every insert.

type dynamicTable struct {
	entries []HeaderField
	head    int
	count   int
	size    uint32
	maxSize uint32
}

func newDynamicTable(maxSize uint32) *dynamicTable {
	capacity := int(maxSize / 64)
	if capacity < 16 {
		capacity = 16
	}
	return &dynamicTable{
		entries: make([]HeaderField, capacity),
		maxSize: maxSize,
	}
}

// Add inserts name/value at the front of the table, evicting from the
// back first if needed to stay within maxSize. An entry whose own size
// exceeds maxSize is never added (RFC 7541 §4.4): the resulting state is
// the same as if the table had been emptied and the entry discarded.
func (dt *dynamicTable) Add(name, value string) {
	hf := HeaderField{Name: name, Value: value}
	size := hf.Size()

	for dt.size+size > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}

	if size > dt.maxSize {
		return
	}

	if dt.count == len(dt.entries) {
		dt.resize()
	}

	dt.head = (dt.head - 1 + len(dt.entries)) % len(dt.entries)
	dt.entries[dt.head] = hf
	dt.count++
	dt.size += size
}

// Get retrieves the entry at a 1-based dynamic index, where 1 is the
// most recently added entry.
func (dt *dynamicTable) Get(index int) (HeaderField, bool) {
	if index < 1 || index > dt.count {
		return HeaderField{}, false
	}
	pos := (dt.head + index - 1) % len(dt.entries)
	return dt.entries[pos], true
}

// Find reports the 1-based dynamic index of name/value. If only the name
// is found, index is the first (most recent) entry with that name and
// exactMatch is false.
func (dt *dynamicTable) Find(name, value string) (index int, exactMatch bool) {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		entry := dt.entries[pos]

		if entry.Name == name {
			if entry.Value == value {
				return i + 1, true
			}
			if index == 0 {
				index = i + 1
			}
		}
	}
	return index, false
}

func (dt *dynamicTable) Len() int         { return dt.count }
func (dt *dynamicTable) Size() uint32     { return dt.size }
func (dt *dynamicTable) MaxSize() uint32  { return dt.maxSize }

// SetMaxSize changes the table's capacity, evicting from the back if the
// current contents no longer fit (RFC 7541 §4.3, a Dynamic Table Size
// Update applies immediately).
func (dt *dynamicTable) SetMaxSize(maxSize uint32) {
	dt.maxSize = maxSize
	for dt.size > dt.maxSize && dt.count > 0 {
		dt.evictOldest()
	}
}

func (dt *dynamicTable) evictOldest() {
	if dt.count == 0 {
		return
	}
	tail := (dt.head + dt.count - 1) % len(dt.entries)
	entry := dt.entries[tail]

	dt.size -= entry.Size()
	dt.count--
	dt.entries[tail] = HeaderField{}
	dynamicTableEvictions.Inc()
}

func (dt *dynamicTable) resize() {
	newEntries := make([]HeaderField, len(dt.entries)*2)
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		newEntries[i] = dt.entries[pos]
	}
	dt.entries = newEntries
	dt.head = 0
}

// Reset empties the table and restores its maximum size to the protocol
// default of 4096 bytes (RFC 7541 §2.3.2 / §4.2), not merely its size at
// the time of the reset - a connection-level reset must bring both
// endpoints back to the same known starting state.
func (dt *dynamicTable) Reset() {
	for i := 0; i < dt.count; i++ {
		pos := (dt.head + i) % len(dt.entries)
		dt.entries[pos] = HeaderField{}
	}
	dt.head = 0
	dt.count = 0
	dt.size = 0
	dt.maxSize = DefaultDynamicTableSize
}

// indexTable combines the static and dynamic tables under one absolute
// index space: 1-61 static, 62+ dynamic.
type indexTable struct {
	dynamic *dynamicTable
}

func newIndexTable(maxDynamicSize uint32) *indexTable {
	return &indexTable{dynamic: newDynamicTable(maxDynamicSize)}
}

func (it *indexTable) Get(index int) (HeaderField, bool) {
	if index <= 0 {
		return HeaderField{}, false
	}
	if index <= StaticTableSize {
		return GetStaticEntry(index), true
	}
	return it.dynamic.Get(index - StaticTableSize)
}

func (it *indexTable) Add(name, value string) {
	it.dynamic.Add(name, value)
}

// Find searches the static table, then the dynamic table, preferring an
// exact match in either over a name-only match in either, and preferring
// the static table's name-only match over the dynamic table's when both
// exist (RFC 7541 §4.4's suggested but non-normative best_match ordering,
// also followed by the original toolkit's Table::best_match).
func (it *indexTable) Find(name, value string) (index int, exactMatch bool) {
	staticIdx, staticExact := FindStaticIndex(name, value)
	if staticExact {
		return staticIdx, true
	}

	dynamicIdx, dynamicExact := it.dynamic.Find(name, value)
	if dynamicIdx > 0 {
		absoluteIdx := StaticTableSize + dynamicIdx
		if dynamicExact {
			return absoluteIdx, true
		}
		if staticIdx == 0 {
			return absoluteIdx, false
		}
	}

	if staticIdx > 0 {
		return staticIdx, false
	}

	return 0, false
}

func (it *indexTable) SetMaxDynamicSize(maxSize uint32) {
	it.dynamic.SetMaxSize(maxSize)
}

func (it *indexTable) DynamicTableSize() uint32 { return it.dynamic.Size() }

func (it *indexTable) Reset() { it.dynamic.Reset() }
