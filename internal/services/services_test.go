package services

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sksa/borang/internal/borang"
	"github.com/sksa/borang/internal/models"
)

func TestNormText(t *testing.T) {
	cases := map[string]string{
		"":                                   "",
		"   ":                                "",
		"  Ali   bin\tBakar \n":              "Ali bin Bakar",
		"<b>Kejohanan</b> <i>Olahraga</i>":   "Kejohanan Olahraga",
		"PPD Muar & Ledang":                  "PPD Muar & Ledang",
		"<script>alert(1)</script>Sukan":     "Sukan",
		"O'Neil":                             "O'Neil",
	}
	for in, want := range cases {
		if got := NormText(in); got != want {
			t.Errorf("NormText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormIC(t *testing.T) {
	if got := NormIC(" 140101 01 1234 "); got != "140101011234" {
		t.Errorf("NormIC = %q", got)
	}
	if got := NormIC("140101-01-1234"); got != "140101-01-1234" {
		t.Errorf("dashes must be kept, got %q", got)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	ctx := context.Background()
	for _, n := range []string{"A.pdf", "B.pdf"} {
		if err := c.Save(ctx, borang.Document{Filename: n}); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	for _, d := range c.Docs() {
		got = append(got, d.Filename)
	}
	if diff := cmp.Diff([]string{"A.pdf", "B.pdf"}, got); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := c.Save(cancelled, borang.Document{Filename: "C.pdf"}); err == nil {
		t.Error("save on a cancelled context should fail")
	}
}

func TestWriteZip(t *testing.T) {
	docs := []borang.Document{
		{Filename: "ALI_SUKAN.pdf", Data: []byte("%PDF-1 ali")},
		{Filename: "MUTHU_SUKAN.pdf", Data: []byte("%PDF-1 muthu")},
		{Filename: "ALI_SUKAN.pdf", Data: []byte("%PDF-1 ali two")},
	}
	var buf bytes.Buffer
	if err := WriteZip(&buf, docs, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var names, bodies []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, _ := io.ReadAll(rc)
		rc.Close()
		bodies = append(bodies, string(b))
	}
	if diff := cmp.Diff([]string{"ALI_SUKAN.pdf", "MUTHU_SUKAN.pdf", "ALI_SUKAN_2.pdf"}, names); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
	if bodies[2] != "%PDF-1 ali two" {
		t.Errorf("third entry body = %q", bodies[2])
	}
}

func TestWriteZipFlattensSlashes(t *testing.T) {
	program := models.ProgramInfo{Name: "Sukan Tahunan"}
	docs := []borang.Document{
		{Filename: borang.Filename(models.Student{Name: "Muthu a/l Raju"}, program)},
		{Filename: borang.Filename(models.Student{Name: "Devi a/p Kumar"}, program)},
		{Filename: "../B_X.pdf"},
		{Filename: `..\C\Y.pdf`},
	}
	var buf bytes.Buffer
	if err := WriteZip(&buf, docs, time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := []string{
		"MUTHU_A_L_RAJU_SUKAN_TAHUNAN.pdf",
		"DEVI_A_P_KUMAR_SUKAN_TAHUNAN.pdf",
		".._B_X.pdf",
		".._C_Y.pdf",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
}

func TestSafeName(t *testing.T) {
	cases := map[string]string{
		"ALI_SUKAN.pdf": "ALI_SUKAN.pdf",
		"A/L.pdf":       "A_L.pdf",
		"":              "BORANG.pdf",
		"..":            "BORANG.pdf",
	}
	for in, want := range cases {
		if got := SafeName(in); got != want {
			t.Errorf("SafeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBundleName(t *testing.T) {
	if got := BundleName("Sukan  Tahunan"); got != "BORANG_SUKAN_TAHUNAN.zip" {
		t.Errorf("BundleName = %q", got)
	}
	if got := BundleName(" "); got != "BORANG.zip" {
		t.Errorf("empty BundleName = %q", got)
	}
}
