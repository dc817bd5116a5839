package http2

import "testing"

func TestStaticTableKnownEntries(t *testing.T) {
	tests := []struct {
		index int
		name  string
		value string
	}{
		{1, ":authority", ""},
		{2, ":method", "GET"},
		{3, ":method", "POST"},
		{4, ":path", "/"},
		{8, ":status", "200"},
		{32, "cookie", ""},
		{61, "www-authenticate", ""},
	}

	for _, tt := range tests {
		got := GetStaticEntry(tt.index)
		if got.Name != tt.name || got.Value != tt.value {
			t.Errorf("GetStaticEntry(%d) = %+v, want {%q %q}", tt.index, got, tt.name, tt.value)
		}
	}
}

func TestStaticTableOutOfRange(t *testing.T) {
	for _, idx := range []int{0, -1, 62, 1000} {
		got := GetStaticEntry(idx)
		if got != (HeaderField{}) {
			t.Errorf("GetStaticEntry(%d) = %+v, want zero value", idx, got)
		}
	}
}

func TestFindStaticIndexExactMatch(t *testing.T) {
	idx, exact := FindStaticIndex(":method", "GET")
	if idx != 2 || !exact {
		t.Errorf("FindStaticIndex(:method, GET) = (%d, %v), want (2, true)", idx, exact)
	}
}

func TestFindStaticIndexNameOnly(t *testing.T) {
	idx, exact := FindStaticIndex(":method", "PATCH")
	if idx == 0 || exact {
		t.Errorf("FindStaticIndex(:method, PATCH) = (%d, %v), want (non-zero, false)", idx, exact)
	}
	// The first entry named ":method" is GET at index 2.
	if idx != 2 {
		t.Errorf("FindStaticIndex(:method, PATCH) index = %d, want 2", idx)
	}
}

func TestFindStaticIndexEmptyValueExactMatch(t *testing.T) {
	idx, exact := FindStaticIndex(":authority", "")
	if idx != 1 || !exact {
		t.Errorf("FindStaticIndex(:authority, \"\") = (%d, %v), want (1, true)", idx, exact)
	}
}

func TestFindStaticIndexNotFound(t *testing.T) {
	idx, exact := FindStaticIndex("x-not-a-real-header", "value")
	if idx != 0 || exact {
		t.Errorf("FindStaticIndex(unknown) = (%d, %v), want (0, false)", idx, exact)
	}
}

func TestStaticTableSize(t *testing.T) {
	if StaticTableSize != 61 {
		t.Errorf("StaticTableSize = %d, want 61", StaticTableSize)
	}
}
