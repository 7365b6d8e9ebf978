// Package borang lays out the two-page co-curricular consent and health
// declaration document for one student.
package borang

import (
	"context"
	"fmt"

	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/models"
)

// LogoSource is satisfied by *logo.Cache.
type LogoSource interface {
	EnsureLoaded(ctx context.Context) error
	Get() ([]byte, bool)
}

type Document struct {
	Filename string
	Data     []byte
	Pages    int
}

// RenderError reports which student's document could not be produced.
type RenderError struct {
	Student string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q: %v", e.Student, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

type Renderer struct {
	inst     config.Institution
	logo     LogoSource
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles PDF stream compression (on by default).
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

// New returns a renderer printing inst's constants. logo may be nil.
func New(inst config.Institution, logo LogoSource, opts ...Option) *Renderer {
	r := &Renderer{inst: inst, logo: logo, compress: true}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render builds the consent letter and health declaration for one student.
// It waits for the logo cache first; a missing logo is not an error.
func (r *Renderer) Render(ctx context.Context, st models.Student, p models.ProgramInfo) (Document, error) {
	var logo []byte
	if r.logo != nil {
		if err := r.logo.EnsureLoaded(ctx); err != nil {
			return Document{}, &RenderError{Student: st.Name, Err: err}
		}
		logo, _ = r.logo.Get()
	}

	s := newPDFSurface(logo, r.compress)
	s.pdf.SetTitle(Filename(st, p), true)
	layout(s, r.inst, st, p)

	data, pages, err := s.output()
	if err != nil {
		return Document{}, &RenderError{Student: st.Name, Err: err}
	}
	return Document{Filename: Filename(st, p), Data: data, Pages: pages}, nil
}

func layout(s surface, inst config.Institution, st models.Student, p models.ProgramInfo) {
	consentPage(s, inst, st, p)
	healthPage(s, st, p)
}
