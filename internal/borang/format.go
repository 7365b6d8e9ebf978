package borang

import (
	"regexp"
	"strings"

	"github.com/sksa/borang/internal/models"
)

// Placeholder stands in for any empty value that is filled in by hand after
// printing.
var Placeholder = dots(20)

var (
	lineFull    = dots(113)
	lineHalf    = dots(49)
	lineNote    = dots(107)
	studentFill = dots(86)
	programFill = dots(71)
	signFill    = dots(71)
)

func dots(n int) string { return strings.Repeat(".", n) }

// orDots returns v, or fill when v is blank.
func orDots(v, fill string) string {
	if strings.TrimSpace(v) == "" {
		return fill
	}
	return v
}

func upper(v string) string { return strings.ToUpper(strings.TrimSpace(v)) }

// FormatDate turns YYYY-MM-DD into DD/MM/YYYY. Empty input yields the
// placeholder; anything that does not split into three parts is returned
// unchanged.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return s
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DateRange is the "Tarikh" line: the start date alone for a single-day
// activity, otherwise "<start> sehingga <end>".
func DateRange(start, end string) string {
	if strings.TrimSpace(end) == "" {
		return FormatDate(start)
	}
	return FormatDate(start) + " sehingga " + FormatDate(end)
}

var reSpaces = regexp.MustCompile(`\s+`)

// Snake upper-cases s and joins its words with underscores.
func Snake(s string) string {
	return reSpaces.ReplaceAllString(upper(s), "_")
}

// Filename is the download name for one student's document, e.g.
// ALI_BIN_BAKAR_SUKAN_TAHUNAN.pdf.
func Filename(s models.Student, p models.ProgramInfo) string {
	return Snake(s.Name) + "_" + Snake(p.Name) + ".pdf"
}
