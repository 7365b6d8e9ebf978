package models

import "strings"

// Gender: "" (unset) | "male" | "female"
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var Genders = []Gender{GenderMale, GenderFemale}

// Label is the text printed on the health declaration.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "LELAKI"
	case GenderFemale:
		return "PEREMPUAN"
	}
	return ""
}

// ParseGender accepts the form keys and the printed labels, case-insensitively.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "lelaki":
		return GenderMale
	case "female", "perempuan":
		return GenderFemale
	}
	return GenderUnset
}

type Level string

const (
	LevelSchool        Level = "school"
	LevelDistrict      Level = "district"
	LevelState         Level = "state"
	LevelNational      Level = "national"
	LevelInternational Level = "international"
)

// Levels in the order they appear in the selector.
var Levels = []Level{LevelSchool, LevelDistrict, LevelState, LevelNational, LevelInternational}

var levelLabels = map[Level]string{
	LevelSchool:        "Peringkat Sekolah",
	LevelDistrict:      "Peringkat Daerah",
	LevelState:         "Peringkat Negeri",
	LevelNational:      "Peringkat Kebangsaan",
	LevelInternational: "Peringkat Antarabangsa",
}

func (l Level) Label() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return levelLabels[LevelSchool]
}

// ParseLevel maps a form value (key or label) to a Level, defaulting to school.
func ParseLevel(s string) Level {
	v := strings.TrimSpace(s)
	for _, l := range Levels {
		if strings.EqualFold(v, string(l)) || strings.EqualFold(v, levelLabels[l]) {
			return l
		}
	}
	return LevelSchool
}

type Student struct {
	ID     string
	Name   string
	Class  string
	IC     string // identity card / birth certificate number, printed verbatim
	Gender Gender
}

// Named reports whether a document will be generated for the student.
func (s Student) Named() bool {
	return strings.TrimSpace(s.Name) != ""
}

type ProgramInfo struct {
	Name      string
	DateStart string // YYYY-MM-DD
	DateEnd   string // YYYY-MM-DD, empty for single-day activities
	Place     string
	Level     Level
	Organizer string
	ManagedBy string
}

func DefaultProgram() ProgramInfo {
	return ProgramInfo{Level: LevelSchool}
}

// Submission pairs one student with the program at generate time.
type Submission struct {
	Student Student
	Program ProgramInfo
}
