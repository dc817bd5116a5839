package http2

import "testing"

func TestHeaderFieldSize(t *testing.T) {
	hf := HeaderField{Name: "content-type", Value: "text/html"}
	want := uint32(len("content-type") + len("text/html") + 32)
	if got := hf.Size(); got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}

func TestIsSensitive(t *testing.T) {
	sensitive := []string{"cookie", "set-cookie", "proxy-authenticate", "www-authenticate"}
	for _, name := range sensitive {
		if !IsSensitive(name) {
			t.Errorf("IsSensitive(%q) = false, want true", name)
		}
	}

	notSensitive := []string{"content-type", "accept", ":path", "x-custom-header"}
	for _, name := range notSensitive {
		if IsSensitive(name) {
			t.Errorf("IsSensitive(%q) = true, want false", name)
		}
	}
}

func TestHeaderListEveryFirstLast(t *testing.T) {
	list := HeaderList{
		{"set-cookie", "a=1"},
		{"content-type", "text/html"},
		{"set-cookie", "b=2"},
	}

	if got := list.Every("set-cookie"); len(got) != 2 || got[0] != "a=1" || got[1] != "b=2" {
		t.Errorf("Every(set-cookie) = %v", got)
	}

	if v, ok := list.First("set-cookie"); !ok || v != "a=1" {
		t.Errorf("First(set-cookie) = %q, %v", v, ok)
	}

	if v, ok := list.Last("set-cookie"); !ok || v != "b=2" {
		t.Errorf("Last(set-cookie) = %q, %v", v, ok)
	}

	if _, ok := list.First("missing"); ok {
		t.Errorf("First(missing) reported found")
	}
}

func TestHeaderListReplace(t *testing.T) {
	list := HeaderList{
		{":method", "GET"},
		{"content-type", "text/html"},
		{"content-type", "application/json"},
	}

	list.Replace(HeaderField{Name: "content-type", Value: "text/plain"})

	want := HeaderList{
		{":method", "GET"},
		{"content-type", "text/plain"},
	}
	if len(list) != len(want) {
		t.Fatalf("Replace: got %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("Replace: index %d = %v, want %v", i, list[i], want[i])
		}
	}
}

func TestHeaderListReplaceAppendsWhenAbsent(t *testing.T) {
	list := HeaderList{{":method", "GET"}}
	list.Replace(HeaderField{Name: "content-type", Value: "text/plain"})

	if len(list) != 2 || list[1].Name != "content-type" {
		t.Errorf("Replace did not append missing field: %v", list)
	}
}

func TestHeaderListRemove(t *testing.T) {
	list := HeaderList{
		{":method", "GET"},
		{"cookie", "a=1"},
		{"content-type", "text/html"},
		{"cookie", "b=2"},
	}
	list.Remove("cookie")

	if len(list) != 2 {
		t.Fatalf("Remove: got %v, want 2 entries", list)
	}
	for _, f := range list {
		if f.Name == "cookie" {
			t.Errorf("Remove did not remove all cookie fields: %v", list)
		}
	}
}
