package borang

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/logo"
)

type fakeLogo struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeLogo) EnsureLoaded(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeLogo) Get() ([]byte, bool) { return f.data, f.data != nil }

func TestRenderEndToEnd(t *testing.T) {
	jpeg, err := logo.Encode(image.NewNRGBA(image.Rect(0, 0, 90, 50)))
	if err != nil {
		t.Fatal(err)
	}
	src := &fakeLogo{data: jpeg}
	r := New(config.DefaultInstitution(), src, WithCompression(false))

	st, p := muthu()
	doc, err := r.Render(context.Background(), st, p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("EnsureLoaded calls = %d", src.calls)
	}
	if doc.Filename != "MUTHU_KEJOHANAN_OLAHRAGA.pdf" {
		t.Errorf("Filename = %q", doc.Filename)
	}
	if doc.Pages != 2 {
		t.Errorf("Pages = %d", doc.Pages)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
		t.Fatalf("not a PDF: %.10q", doc.Data)
	}
	for _, want := range []string{"MUTHU", "KEJOHANAN OLAHRAGA", "15/03/2026", "/Subtype /Image"} {
		if !bytes.Contains(doc.Data, []byte(want)) {
			t.Errorf("output missing %q", want)
		}
	}
	if bytes.Contains(doc.Data, []byte("sehingga")) {
		t.Error("single-day activity should not print a range")
	}
}

func TestRenderWithoutLogo(t *testing.T) {
	r := New(config.DefaultInstitution(), &fakeLogo{}, WithCompression(false))
	st, p := muthu()
	doc, err := r.Render(context.Background(), st, p)
	if err != nil {
		t.Fatalf("missing logo must not fail: %v", err)
	}
	if doc.Pages != 2 || bytes.Contains(doc.Data, []byte("/Subtype /Image")) {
		t.Errorf("expected 2 pages and no image, pages=%d", doc.Pages)
	}

	// nil source behaves the same
	if _, err := New(config.DefaultInstitution(), nil).Render(context.Background(), st, p); err != nil {
		t.Fatal(err)
	}
}

func TestRenderErrors(t *testing.T) {
	st, p := muthu()

	t.Run("logo wait cancelled", func(t *testing.T) {
		r := New(config.DefaultInstitution(), &fakeLogo{err: context.Canceled})
		_, err := r.Render(context.Background(), st, p)
		var re *RenderError
		if !errors.As(err, &re) || re.Student != "Muthu" {
			t.Fatalf("expected RenderError for Muthu, got %v", err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("cause not wrapped: %v", err)
		}
	})

	t.Run("drawing failure", func(t *testing.T) {
		r := New(config.DefaultInstitution(), &fakeLogo{data: []byte("not a jpeg")})
		_, err := r.Render(context.Background(), st, p)
		var re *RenderError
		if !errors.As(err, &re) {
			t.Fatalf("expected RenderError, got %v", err)
		}
	})
}
