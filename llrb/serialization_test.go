package llrb

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestSerializationRoundTrip(t *testing.T) {
	t.Parallel()

	tree := New[string, string]()
	_ = tree.Put("c", "3")
	_ = tree.Put("b", "2")
	_ = tree.Put("a", "1")

	data, err := tree.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() = %v", err)
	}

	round := New[string, string]()
	if err := round.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() = %v", err)
	}

	if got := round.Len(); got != 3 {
		t.Errorf("Len() after round trip = %d, want 3", got)
	}

	wantKeys := []string{"a", "b", "c"}
	if got := round.Keys(); !slices.Equal(got, wantKeys) {
		t.Errorf("Keys() after round trip = %v, want %v", got, wantKeys)
	}

	checkInvariants(t, round)
}

func TestUnmarshalJSONViaStandardLibrary(t *testing.T) {
	t.Parallel()

	tree := New[string, int]()
	if err := json.Unmarshal([]byte(`{"a":1,"b":2}`), tree); err != nil {
		t.Fatalf("json.Unmarshal() = %v", err)
	}

	if got := tree.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}

	if v, ok := tree.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}
}

func TestMarshalJSONBadInput(t *testing.T) {
	t.Parallel()

	tree := New[string, int]()
	if err := tree.FromJSON([]byte("not json")); err == nil {
		t.Errorf("FromJSON(invalid) = nil, want error")
	}
}
