package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"inquest/internal/api"
)

func TestTextWritesDataOnly(t *testing.T) {
	dir := t.TempDir()
	env := &api.Envelope{OK: true, Data: map[string]any{"x": 1.0}, Warnings: []api.Warning{}}
	path, err := Write(dir, "summary", FormatText, env)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "summary.txt" {
		t.Fatalf("filename: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["x"] != 1.0 {
		t.Fatalf("data: %v", got)
	}
	if _, ok := got["ok"]; ok {
		t.Fatalf("txt format must exclude the envelope wrapper")
	}
	if _, ok := got["warnings"]; ok {
		t.Fatalf("txt format must exclude warnings")
	}
}

func TestJSONWritesFullEnvelope(t *testing.T) {
	dir := t.TempDir()
	env := &api.Envelope{OK: true, Data: map[string]any{"x": 1.0}, Warnings: []api.Warning{}}
	path, err := Write(dir, "search", FormatJSON, env)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "search.json" {
		t.Fatalf("filename: %s", path)
	}
	b, _ := os.ReadFile(path)
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["ok"] != true {
		t.Fatalf("json format keeps the envelope: %v", got)
	}
	data, ok := got["data"].(map[string]any)
	if !ok || data["x"] != 1.0 {
		t.Fatalf("payload: %v", got)
	}
}

func TestNilEnvelopeRejected(t *testing.T) {
	if _, err := Write(t.TempDir(), "flow", FormatJSON, nil); err == nil {
		t.Fatalf("nil envelope must error")
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	env := &api.Envelope{OK: true}
	if _, err := Write(t.TempDir(), "flow", Format("csv"), env); err == nil {
		t.Fatalf("unknown format must error")
	}
}
