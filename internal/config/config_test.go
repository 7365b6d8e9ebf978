package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	for _, k := range []string{"ADDR", "INSTITUTION_FILE", "SCHOOL_NAME", "SCHOOL_CODE",
		"HEADTEACHER_NAME", "HEADTEACHER_IC", "LOGO_URL", "BANNER_URL", "FOOTER_TEXT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if diff := cmp.Diff(DefaultInstitution(), cfg.Institution); diff != "" {
		t.Errorf("institution (-want +got):\n%s", diff)
	}
}

// File values override defaults, environment overrides the file.
func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "school.yaml")
	body := "school_name: SK BUKIT BENDERA\nschool_code: PBA 1234\nheadteacher_name: AHMAD BIN ALI\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INSTITUTION_FILE", path)
	t.Setenv("HEADTEACHER_NAME", "NUR AINA BINTI HASSAN")
	t.Setenv("ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := cfg.Institution
	if got.SchoolName != "SK BUKIT BENDERA" || got.SchoolCode != "PBA 1234" {
		t.Errorf("file values not applied: %+v", got)
	}
	if got.HeadteacherName != "NUR AINA BINTI HASSAN" {
		t.Errorf("env did not override file: %q", got.HeadteacherName)
	}
	if got.HeadteacherIC != DefaultInstitution().HeadteacherIC {
		t.Errorf("missing key should keep default, got %q", got.HeadteacherIC)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
}

func TestLoadInstitutionFileErrors(t *testing.T) {
	if _, err := LoadInstitutionFile(filepath.Join(t.TempDir(), "missing.yaml"), DefaultInstitution()); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("school_name: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInstitutionFile(bad, DefaultInstitution()); err == nil {
		t.Error("expected parse error")
	}
}

func TestSchoolLine(t *testing.T) {
	if got := DefaultInstitution().SchoolLine(); got != "SEKOLAH KEBANGSAAN SUNGAI ABONG (JBA 5095)" {
		t.Errorf("SchoolLine = %q", got)
	}
	if got := (Institution{SchoolName: "SK X"}).SchoolLine(); got != "SK X" {
		t.Errorf("SchoolLine without code = %q", got)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(orig) }) //nolint:errcheck
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
}
