package browser

import (
	"strings"
	"testing"
)

func TestOpen_Disabled(t *testing.T) {
	l := New("", true)

	err := l.Open("https://example.com")
	if err == nil {
		t.Fatal("expected error from disabled launcher")
	}
	if !strings.Contains(err.Error(), "disabled") {
		t.Errorf("error = %q", err)
	}
}

func TestOpen_RejectsNonHTTPSchemes(t *testing.T) {
	l := New("", false)

	for _, raw := range []string{"file:///etc/passwd", "javascript:alert(1)", "ftp://host/x"} {
		if err := l.Open(raw); err == nil {
			t.Errorf("Open(%q) = nil, want scheme error", raw)
		}
	}
}

func TestOpen_CustomCommand(t *testing.T) {
	// "true" exists on any POSIX system and exits immediately
	l := New("true", false)

	if err := l.Open("https://example.com/search?q=x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpen_CustomCommandMissing(t *testing.T) {
	l := New("definitely-not-a-real-binary-xyz", false)

	if err := l.Open("https://example.com"); err == nil {
		t.Fatal("expected error for missing launcher binary")
	}
}
