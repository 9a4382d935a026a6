package views

import "testing"

func TestFromNameRoundTrip(t *testing.T) {
	for _, v := range All() {
		got, ok := FromName(v.Name())
		if !ok || got != v {
			t.Fatalf("round trip %s: got %v ok=%v", v.Name(), got, ok)
		}
	}
	if _, ok := FromName("bogus"); ok {
		t.Fatalf("bogus name should not resolve")
	}
}

func TestEntityPreconditions(t *testing.T) {
	required := map[View]bool{
		Home: false, Search: false, Summary: true, Storages: true,
		Flow: true, Trace: true, Between: true, Reports: true, Ask: false,
	}
	for v, want := range required {
		if v.RequiresEntity() != want {
			t.Fatalf("%s RequiresEntity = %v, want %v", v.Name(), v.RequiresEntity(), want)
		}
	}
	if !Trace.EntityAtEntry() {
		t.Fatalf("trace enforces entity at view entry")
	}
	if Summary.EntityAtEntry() {
		t.Fatalf("summary enforces entity at submit, not entry")
	}
}

func TestReportsNeverCallsNetwork(t *testing.T) {
	if Reports.CallsNetwork() {
		t.Fatalf("reports must not call the network")
	}
	if Home.CallsNetwork() {
		t.Fatalf("home must not call the network")
	}
	if !Ask.CallsNetwork() {
		t.Fatalf("ask calls the network")
	}
}

func TestEmptyData(t *testing.T) {
	if !Search.EmptyData(map[string]any{"events": []any{}}) {
		t.Fatalf("zero events is empty")
	}
	if Search.EmptyData(map[string]any{"events": []any{map[string]any{"id": 1.0}}}) {
		t.Fatalf("one event is not empty")
	}
	if !Storages.EmptyData(map[string]any{"containers": []any{}}) {
		t.Fatalf("zero containers is empty")
	}
	if !Flow.EmptyData(nil) {
		t.Fatalf("nil data is empty")
	}
	if Trace.EmptyData(map[string]any{"nodes": []any{"42"}, "events": []any{}}) {
		t.Fatalf("nodes without events is still data")
	}
	if !Ask.EmptyData(map[string]any{"answer": "", "evidence": []any{}}) {
		t.Fatalf("blank answer with no evidence is empty")
	}
}
