package llm

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct{}

func (fakeProvider) Complete(context.Context, string, string) (string, error) { return "text", nil }
func (fakeProvider) GetProviderName() string                                  { return "fake" }

func TestRegistry(t *testing.T) {
	RegisterProvider("fake", func() (Provider, error) {
		return fakeProvider{}, nil
	})

	p, err := NewProvider("fake")
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}
	if p.GetProviderName() != "fake" {
		t.Fatalf("expected fake provider, got %s", p.GetProviderName())
	}

	if _, err := NewProvider("missing"); err == nil {
		t.Fatal("expected error for unregistered provider")
	}
}

func TestProviderError(t *testing.T) {
	inner := errors.New("connection refused")
	err := &ProviderError{Provider: "openrouter", Code: ErrCodeServiceDown, Message: "request failed", Err: inner}

	if !errors.Is(err, inner) {
		t.Fatal("expected ProviderError to unwrap inner error")
	}

	want := "openrouter error: request failed (connection refused)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	bare := &ProviderError{Provider: "gemini", Code: ErrCodeAPIKey, Message: "missing key"}
	if bare.Error() != "gemini error: missing key" {
		t.Fatalf("unexpected message: %q", bare.Error())
	}
}
