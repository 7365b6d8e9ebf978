// Package form holds the editable program details and student list for one
// submission and drives document generation for it.
package form

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sksa/borang/internal/models"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrBusy         = errors.New("generation already in progress")
)

// Form field names, shared with the HTML form.
const (
	FieldProgramName      = "program_name"
	FieldProgramDateStart = "program_date_start"
	FieldProgramDateEnd   = "program_date_end"
	FieldProgramPlace     = "program_place"
	FieldProgramLevel     = "program_level"
	FieldProgramOrganizer = "program_organizer"
	FieldProgramManagedBy = "program_managed_by"

	FieldStudentName   = "student_name"
	FieldStudentClass  = "student_class"
	FieldStudentIC     = "student_ic"
	FieldStudentGender = "student_gender"
)

var validate = validator.New()

// guard is the presence check behind CanSubmit.
type guard struct {
	ProgramName string `validate:"required"`
	Named       int    `validate:"gt=0"`
	Busy        bool   `validate:"eq=false"`
}

// Form is safe for concurrent use.
type Form struct {
	mu       sync.Mutex
	program  models.ProgramInfo
	students []models.Student
	busy     bool
}

// New returns a form with default program details and one blank student.
func New() *Form {
	return &Form{
		program:  models.DefaultProgram(),
		students: []models.Student{newStudent()},
	}
}

// Restore builds a form from already-decoded state. An empty student list
// gets one blank student; students without an id get a fresh one.
func Restore(p models.ProgramInfo, students []models.Student) *Form {
	f := &Form{program: p}
	seen := make(map[string]bool, len(students))
	for _, s := range students {
		if s.ID == "" || seen[s.ID] {
			s.ID = newID()
		}
		seen[s.ID] = true
		f.students = append(f.students, s)
	}
	if len(f.students) == 0 {
		f.students = []models.Student{newStudent()}
	}
	if f.program.Level == "" {
		f.program.Level = models.LevelSchool
	}
	return f
}

func newID() string { return uuid.NewString() }

func newStudent() models.Student { return models.Student{ID: newID()} }

func (f *Form) Program() models.ProgramInfo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.program
}

// Students returns a copy of the list in order.
func (f *Form) Students() []models.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Student(nil), f.students...)
}

// SetProgramField replaces one program field by its form name.
func (f *Form) SetProgramField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &f.program
	switch name {
	case FieldProgramName:
		p.Name = value
	case FieldProgramDateStart:
		p.DateStart = value
	case FieldProgramDateEnd:
		p.DateEnd = value
	case FieldProgramPlace:
		p.Place = value
	case FieldProgramLevel:
		p.Level = models.ParseLevel(value)
	case FieldProgramOrganizer:
		p.Organizer = value
	case FieldProgramManagedBy:
		p.ManagedBy = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetStudentField replaces one field of the student with id. An unknown id
// is a no-op.
func (f *Form) SetStudentField(id, name, value string) error {
	switch name {
	case FieldStudentName, FieldStudentClass, FieldStudentIC, FieldStudentGender:
	default:
		return ErrUnknownField
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.students {
		if f.students[i].ID != id {
			continue
		}
		s := &f.students[i]
		switch name {
		case FieldStudentName:
			s.Name = value
		case FieldStudentClass:
			s.Class = value
		case FieldStudentIC:
			s.IC = value
		case FieldStudentGender:
			s.Gender = models.ParseGender(value)
		}
		return nil
	}
	return nil
}

// AddStudent appends a blank student and returns it.
func (f *Form) AddStudent() models.Student {
	s := newStudent()
	f.mu.Lock()
	f.students = append(f.students, s)
	f.mu.Unlock()
	return s
}

// RemoveStudent drops the student with id unless it is the last one.
func (f *Form) RemoveStudent(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.students) <= 1 {
		return
	}
	for i := range f.students {
		if f.students[i].ID == id {
			f.students = append(f.students[:i], f.students[i+1:]...)
			return
		}
	}
}

// Named counts students that will get a document.
func (f *Form) Named() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.namedLocked()
}

func (f *Form) namedLocked() int {
	n := 0
	for _, s := range f.students {
		if s.Named() {
			n++
		}
	}
	return n
}

// Busy reports whether GenerateAll is running.
func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// CanSubmit is false when the program name is empty, no student is named,
// or a generation is running.
func (f *Form) CanSubmit() bool {
	return len(f.Problems()) == 0
}

// Problems lists a flash key for every failed submit precondition, in field
// order: "missing_program", "missing_student", "busy".
func (f *Form) Problems() []string {
	f.mu.Lock()
	g := guard{ProgramName: strings.TrimSpace(f.program.Name), Named: f.namedLocked(), Busy: f.busy}
	f.mu.Unlock()

	var ve validator.ValidationErrors
	if !errors.As(validate.Struct(g), &ve) {
		return nil
	}
	out := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Field() {
		case "ProgramName":
			out = append(out, "missing_program")
		case "Named":
			out = append(out, "missing_student")
		case "Busy":
			out = append(out, "busy")
		}
	}
	return out
}
