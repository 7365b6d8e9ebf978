// Package config loads the server settings and the institution profile that
// is printed on every generated document.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Institution holds the constants printed on the consent letter and the
// health declaration.
type Institution struct {
	SchoolName      string `yaml:"school_name"`
	SchoolCode      string `yaml:"school_code"`
	HeadteacherName string `yaml:"headteacher_name"`
	HeadteacherIC   string `yaml:"headteacher_ic"`
	LogoURL         string `yaml:"logo_url"`   // raster embedded in both PDF pages
	BannerURL       string `yaml:"banner_url"` // shown on the web form only
	FooterText      string `yaml:"footer_text"`
}

type Config struct {
	Addr        string
	PublicURL   string // encoded in the share QR; derived from the request host when empty
	Institution Institution
}

func DefaultInstitution() Institution {
	return Institution{
		SchoolName:      "SEKOLAH KEBANGSAAN SUNGAI ABONG",
		SchoolCode:      "JBA 5095",
		HeadteacherName: "SITI ZALEHA BINTI RAMLAN",
		HeadteacherIC:   "710810015746",
		LogoURL:         "https://i.postimg.cc/sg7cFNyJ/logo-kpm-3.jpg",
		BannerURL:       "https://i.postimg.cc/25B49VqL/Untitled-design-(11).png",
		FooterText:      "HAK MILIK UNIT KOKURIKULUM SKSA 2026",
	}
}

// SchoolLine is the "Sekolah" value on the consent letter.
func (i Institution) SchoolLine() string {
	if i.SchoolCode == "" {
		return i.SchoolName
	}
	return fmt.Sprintf("%s (%s)", i.SchoolName, i.SchoolCode)
}

// Load reads an optional .env, then an optional YAML institution profile
// (INSTITUTION_FILE), then individual environment overrides.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := Config{
		Addr:        getEnv("ADDR", ":8080"),
		PublicURL:   getEnv("PUBLIC_URL", ""),
		Institution: DefaultInstitution(),
	}

	if path := getEnv("INSTITUTION_FILE", ""); path != "" {
		inst, err := LoadInstitutionFile(path, cfg.Institution)
		if err != nil {
			return Config{}, err
		}
		cfg.Institution = inst
	}

	applyEnv(&cfg.Institution)
	return cfg, nil
}

// LoadInstitutionFile overlays the YAML profile at path onto base. Keys
// missing from the file keep their base value.
func LoadInstitutionFile(path string, base Institution) (Institution, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Institution{}, fmt.Errorf("read institution file: %w", err)
	}
	inst := base
	if err := yaml.Unmarshal(raw, &inst); err != nil {
		return Institution{}, fmt.Errorf("parse institution file %s: %w", path, err)
	}
	return inst, nil
}

func applyEnv(i *Institution) {
	i.SchoolName = getEnv("SCHOOL_NAME", i.SchoolName)
	i.SchoolCode = getEnv("SCHOOL_CODE", i.SchoolCode)
	i.HeadteacherName = getEnv("HEADTEACHER_NAME", i.HeadteacherName)
	i.HeadteacherIC = getEnv("HEADTEACHER_IC", i.HeadteacherIC)
	i.LogoURL = getEnv("LOGO_URL", i.LogoURL)
	i.BannerURL = getEnv("BANNER_URL", i.BannerURL)
	i.FooterText = getEnv("FOOTER_TEXT", i.FooterText)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
