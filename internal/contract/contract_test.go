package contract

import "testing"

func TestBuildPathSubstitutesParam(t *testing.T) {
	got := BuildPath("/api/interviews/:id", map[string]any{"id": 42})
	if got != "/api/interviews/42" {
		t.Fatalf("expected /api/interviews/42, got %s", got)
	}
}

func TestBuildPathStringParam(t *testing.T) {
	got := BuildPath("/api/interviews/:id/messages", map[string]any{"id": "abc-123"})
	if got != "/api/interviews/abc-123/messages" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestBuildPathIgnoresUnknownParam(t *testing.T) {
	got := BuildPath("/api/interviews/:id", map[string]any{"id": 7, "other": "x"})
	if got != "/api/interviews/7" {
		t.Fatalf("unknown param corrupted path: %s", got)
	}
}

func TestBuildPathIgnoresPlaceholderPrefixParam(t *testing.T) {
	got := BuildPath("/api/interviews/:id", map[string]any{"i": 7})
	if got != "/api/interviews/:id" {
		t.Fatalf("prefix param should not touch the :id placeholder, got %s", got)
	}
}

func TestBuildPathLeavesMissingPlaceholder(t *testing.T) {
	got := BuildPath("/api/interviews/:id/messages", map[string]any{"other": "x"})
	if got != "/api/interviews/:id/messages" {
		t.Fatalf("missing param should leave placeholder intact, got %s", got)
	}
}

func TestBuildPathNilParams(t *testing.T) {
	got := BuildPath("/api/jobs", nil)
	if got != "/api/jobs" {
		t.Fatalf("unexpected path: %s", got)
	}
}

func TestRegistryCoversAllOperations(t *testing.T) {
	reg := NewRegistry()
	endpoints := reg.All()
	if len(endpoints) != 8 {
		t.Fatalf("expected 8 endpoints, got %d", len(endpoints))
	}

	seen := make(map[string]bool)
	for _, ep := range endpoints {
		if ep.Name == "" || ep.Method == "" || ep.Path == "" {
			t.Fatalf("incomplete endpoint: %+v", ep)
		}
		key := ep.Method + " " + ep.Path
		if seen[key] {
			t.Fatalf("duplicate route %s", key)
		}
		seen[key] = true
	}

	if !seen["POST /api/interviews/:id/end"] {
		t.Fatal("end endpoint missing from registry")
	}
}
