package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("Truncate: expected unchanged string, got %q", got)
	}

	long := strings.Repeat("a", 150)
	got := Truncate(long, 100)
	if len([]rune(got)) != 103 {
		t.Fatalf("Truncate: expected 103 runes, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("Truncate: expected ellipsis suffix, got %q", got)
	}

	if got := Truncate("", 100); got != "" {
		t.Fatalf("Truncate empty: expected empty string, got %q", got)
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(22.0 / 3.0); got != 7.33 {
		t.Fatalf("Round2: expected 7.33, got %v", got)
	}
	if got := Round2(7.5); got != 7.5 {
		t.Fatalf("Round2: expected 7.5, got %v", got)
	}
	if got := Round2(0); got != 0 {
		t.Fatalf("Round2: expected 0, got %v", got)
	}
}

func TestNormalizeHelpers(t *testing.T) {
	if got := NormalizeTechnology("  Go "); got != "Go" {
		t.Fatalf("NormalizeTechnology: expected Go, got %q", got)
	}
	if got := NormalizePosition(" Backend Engineer "); got != "Backend Engineer" {
		t.Fatalf("NormalizePosition: expected Backend Engineer, got %q", got)
	}
}

func TestJSONWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := map[string]string{"hello": "world"}

	JSON(rec, http.StatusCreated, payload)

	if rec.Code != http.StatusCreated {
		t.Fatalf("JSON: expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if contentType := rec.Header().Get("Content-Type"); contentType != "application/json" {
		t.Fatalf("JSON: expected content-type application/json, got %s", contentType)
	}

	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("JSON decode failed: %v", err)
	}
	if got["hello"] != "world" {
		t.Fatalf("JSON body mismatch: %+v", got)
	}
}

func TestGetLoggerSingleton(t *testing.T) {
	first := GetLogger()
	if first == nil {
		t.Fatal("expected logger instance")
	}
	if second := GetLogger(); second != first {
		t.Fatal("expected the same logger instance on repeated calls")
	}
}
