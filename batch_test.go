package cybersearch

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBatch_Overrides(t *testing.T) {
	client := New()

	result, err := client.Batch("test").
		Vectors(2).
		Density(200).
		Page(3).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(result.Vectors))
	}
	if result.Vectors[0].Iterations != 200 {
		t.Errorf("primary iterations = %d, want 200", result.Vectors[0].Iterations)
	}
	if !strings.HasSuffix(result.Vectors[0].URL, "&start=30") {
		t.Errorf("URL %q should end with the page offset", result.Vectors[0].URL)
	}
}

func TestBatch_ClampsOutOfRange(t *testing.T) {
	client := New()

	result, err := client.Batch("test").
		Vectors(99).
		Density(9999).
		Page(42).
		Do(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Vectors) != 20 {
		t.Errorf("got %d vectors, want the 20 maximum", len(result.Vectors))
	}
	if result.Vectors[0].Iterations != 1024 {
		t.Errorf("primary iterations = %d, want the 1024 maximum", result.Vectors[0].Iterations)
	}
	if !strings.HasSuffix(result.Vectors[0].URL, "&start=90") {
		t.Errorf("URL %q should clamp the page to 9", result.Vectors[0].URL)
	}
}

func TestBatch_EmptyTerm(t *testing.T) {
	client := New()

	_, err := client.Batch("\x00\x01").Do(context.Background())
	if !errors.Is(err, ErrEmptyTerm) {
		t.Fatalf("err = %v, want ErrEmptyTerm", err)
	}
}

func TestBatch_LaunchRefusalAppendsDiagnostic(t *testing.T) {
	client := New(WithoutBrowser())

	result, err := client.Batch("test").Vectors(1).Launch(context.Background())
	if err != nil {
		t.Fatalf("launch refusal must not fail the batch: %v", err)
	}
	if len(result.Vectors) != 1 {
		t.Fatalf("got %d vectors, want 1", len(result.Vectors))
	}
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected a popup-blocked diagnostic")
	}
	last := result.Diagnostics[len(result.Diagnostics)-1]
	if last.Kind != KindPopupBlocked {
		t.Errorf("diagnostic kind = %q, want %q", last.Kind, KindPopupBlocked)
	}
}

func TestBatch_LaunchOpensPrimary(t *testing.T) {
	// "true" exists on any POSIX system and exits immediately.
	client := New(WithBrowserCommand("true"))

	result, err := client.Batch("test").Vectors(1).Launch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, d := range result.Diagnostics {
		if d.Kind == KindPopupBlocked {
			t.Errorf("unexpected popup-blocked diagnostic: %s", d.Text)
		}
	}
}
