package xerosync

import (
	"encoding/json"
	"testing"
)

func TestIdentifierOf(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{`{"AccountID":"a1","Name":"Cash"}`, "a1"},
		{`{"AccountID":"  a1  "}`, "a1"},
		{`{"AccountID":""}`, ""},
		{`{"Name":"Cash"}`, ""},
		{`{"AccountID":42}`, ""},
		{`not json`, ""},
	}
	for _, tc := range cases {
		got := identifierOf(json.RawMessage(tc.raw), "AccountID")
		if got != tc.expected {
			t.Fatalf("identifierOf(%s) expected %q, got %q", tc.raw, tc.expected, got)
		}
	}
}

func TestFilterNew(t *testing.T) {
	existing := map[string]struct{}{"a1": {}, "a3": {}}
	candidates := []json.RawMessage{
		json.RawMessage(`{"AccountID":"a1"}`),
		json.RawMessage(`{"AccountID":"a2"}`),
		json.RawMessage(`{"AccountID":""}`),
		json.RawMessage(`{"AccountID":"a4"}`),
		json.RawMessage(`{"AccountID":"a3"}`),
	}

	fresh := filterNew(existing, candidates, "AccountID")
	if len(fresh) != 2 {
		t.Fatalf("expected 2 fresh records, got %d", len(fresh))
	}
	if identifierOf(fresh[0], "AccountID") != "a2" || identifierOf(fresh[1], "AccountID") != "a4" {
		t.Fatalf("fetch order not preserved: %s %s", fresh[0], fresh[1])
	}
}

func TestFilterNewEmptyInputs(t *testing.T) {
	if got := filterNew(nil, nil, "AccountID"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	candidates := []json.RawMessage{json.RawMessage(`{"AccountID":"a1"}`)}
	if got := filterNew(nil, candidates, "AccountID"); len(got) != 1 {
		t.Fatalf("empty existing set should pass everything, got %v", got)
	}
}
