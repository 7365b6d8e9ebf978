// internal/handlers/flash.go
package handlers

import "strings"

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"student_added":   "Murid ditambah.",
	"student_removed": "Murid dibuang.",
	"generated":       "PDF berjaya dijana.",
}

var errText = map[string]string{
	"missing_program": "Sila isi Nama Program / Aktiviti.",
	"missing_student": "Sila isi sekurang-kurangnya satu Nama Pelajar.",
	"busy":            "Penjanaan PDF sedang berjalan. Sila tunggu.",
	"last_student":    "Sekurang-kurangnya seorang murid diperlukan.",
	"generate_failed": "Gagal menjana PDF. Sila cuba lagi.",
}

// MakeFlash builds a flash from message keys. Unknown keys are shown as-is;
// several keys are joined into one line.
func MakeFlash(kind string, keys ...string) *Flash {
	if len(keys) == 0 {
		return nil
	}
	table := okText
	if kind == "error" {
		table = errText
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if t, ok := table[strings.ToLower(k)]; ok {
			parts = append(parts, t)
			continue
		}
		parts = append(parts, k)
	}
	return &Flash{Kind: kind, Text: strings.Join(parts, " ")}
}
