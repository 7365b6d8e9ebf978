package borang

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// surface is the set of drawing calls the page layouts need. Coordinates are
// millimetres on an A4 portrait page; y for text is the baseline.
type surface interface {
	AddPage()
	SetFont(style string, size float64)
	Text(x, y float64, s string)
	TextCentered(cx, y float64, s string)
	TextWrapped(x, y, width float64, s string)
	Paragraph(x, y, width float64, s string)
	Rect(x, y, w, h float64)
	Image(x, y, w, h float64)
}

const logoName = "logo"

type pdfSurface struct {
	pdf  *fpdf.Fpdf
	tr   func(string) string
	logo bool
}

func newPDFSurface(logo []byte, compress bool) *pdfSurface {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, 10, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(compress)
	pdf.SetCreator("borang-kokurikulum", true)

	s := &pdfSurface{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if len(logo) > 0 {
		pdf.RegisterImageOptionsReader(logoName, fpdf.ImageOptions{ImageType: "JPEG"}, bytes.NewReader(logo))
		s.logo = true
	}
	return s
}

func (s *pdfSurface) AddPage() { s.pdf.AddPage() }

func (s *pdfSurface) SetFont(style string, size float64) {
	s.pdf.SetFont("Helvetica", style, size)
}

func (s *pdfSurface) Text(x, y float64, txt string) {
	s.pdf.Text(x, y, s.tr(txt))
}

func (s *pdfSurface) TextCentered(cx, y float64, txt string) {
	t := s.tr(txt)
	s.pdf.Text(cx-s.pdf.GetStringWidth(t)/2, y, t)
}

// TextWrapped breaks on spaces so no line exceeds width.
func (s *pdfSurface) TextWrapped(x, y, width float64, txt string) {
	_, fh := s.pdf.GetFontSize()
	for i, line := range s.wrap(txt, width) {
		s.pdf.Text(x, y+float64(i)*fh*1.15, line)
	}
}

func (s *pdfSurface) wrap(txt string, width float64) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(txt) {
		tw := s.tr(w)
		next := tw
		if cur != "" {
			next = cur + " " + tw
		}
		if cur != "" && s.pdf.GetStringWidth(next) > width {
			lines = append(lines, cur)
			next = tw
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// Paragraph writes justified text whose first baseline sits at y.
func (s *pdfSurface) Paragraph(x, y, width float64, txt string) {
	_, fh := s.pdf.GetFontSize()
	lh := fh * 1.15
	s.pdf.SetXY(x, y-(lh/2+0.3*fh))
	s.pdf.SetCellMargin(0)
	s.pdf.MultiCell(width, lh, s.tr(txt), "", "J", false)
}

func (s *pdfSurface) Rect(x, y, w, h float64) { s.pdf.Rect(x, y, w, h, "D") }

// Image draws the registered logo; a missing logo is skipped.
func (s *pdfSurface) Image(x, y, w, h float64) {
	if !s.logo {
		return
	}
	s.pdf.ImageOptions(logoName, x, y, w, h, false, fpdf.ImageOptions{ImageType: "JPEG"}, 0, "")
}

func (s *pdfSurface) output() ([]byte, int, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), s.pdf.PageCount(), nil
}
