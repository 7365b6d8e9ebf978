package handlers

import (
	"bytes"
	"log"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/sksa/borang/internal/borang"
	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/form"
	"github.com/sksa/borang/internal/models"
	svc "github.com/sksa/borang/internal/services"
)

// maxFormBytes bounds the POST body; a class of forty students is ~10 KB.
const maxFormBytes = 1 << 20

type option struct {
	Value    string
	Label    string
	Selected bool
}

type studentRow struct {
	Number  int
	Student models.Student
	Genders []option
}

type formPage struct {
	Title       string
	Institution config.Institution
	LogoURI     string
	Program     models.ProgramInfo
	Levels      []option
	Students    []studentRow
	CanRemove   bool
	CanSubmit   bool
	Named       int
	Flash       *Flash
}

func newFormPage(env *Env, f *form.Form, flash *Flash) formPage {
	p := f.Program()
	students := f.Students()

	levels := make([]option, 0, len(models.Levels))
	for _, l := range models.Levels {
		levels = append(levels, option{Value: string(l), Label: l.Label(), Selected: l == p.Level})
	}

	rows := make([]studentRow, 0, len(students))
	for i, s := range students {
		g := []option{{Value: "", Label: "Pilih Jantina", Selected: s.Gender == models.GenderUnset}}
		for _, v := range models.Genders {
			g = append(g, option{Value: string(v), Label: v.Label(), Selected: s.Gender == v})
		}
		rows = append(rows, studentRow{Number: i + 1, Student: s, Genders: g})
	}

	logoURI := ""
	if env.Logo != nil {
		logoURI = env.Logo.DataURI()
	}
	return formPage{
		Title:       "Sistem Penjanaan Surat Kebenaran Ibu Bapa dan Akuan Kesihatan Murid",
		Institution: env.Institution,
		LogoURI:     logoURI,
		Program:     p,
		Levels:      levels,
		Students:    rows,
		CanRemove:   len(students) > 1,
		CanSubmit:   f.CanSubmit(),
		Named:       f.Named(),
		Flash:       flash,
	}
}

// decodeForm rebuilds the form state from a POST body. Students arrive as
// parallel student_* arrays keyed by student_id.
func decodeForm(r *http.Request) *form.Form {
	pf := r.PostForm
	ids := pf["student_id"]

	skeleton := make([]models.Student, len(ids))
	for i, id := range ids {
		skeleton[i] = models.Student{ID: strings.TrimSpace(id)}
	}
	f := form.Restore(models.DefaultProgram(), skeleton)

	for _, name := range []string{
		form.FieldProgramName, form.FieldProgramPlace, form.FieldProgramOrganizer, form.FieldProgramManagedBy,
	} {
		_ = f.SetProgramField(name, svc.NormText(pf.Get(name)))
	}
	_ = f.SetProgramField(form.FieldProgramDateStart, svc.NormDate(pf.Get(form.FieldProgramDateStart)))
	_ = f.SetProgramField(form.FieldProgramDateEnd, svc.NormDate(pf.Get(form.FieldProgramDateEnd)))
	_ = f.SetProgramField(form.FieldProgramLevel, pf.Get(form.FieldProgramLevel))

	// Restore may have replaced blank or duplicate ids; go by position.
	for i, s := range f.Students() {
		at := func(key string) string {
			if vals := pf[key]; i < len(vals) {
				return vals[i]
			}
			return ""
		}
		_ = f.SetStudentField(s.ID, form.FieldStudentName, svc.NormText(at(form.FieldStudentName)))
		_ = f.SetStudentField(s.ID, form.FieldStudentClass, svc.NormText(at(form.FieldStudentClass)))
		_ = f.SetStudentField(s.ID, form.FieldStudentIC, svc.NormIC(at(form.FieldStudentIC)))
		_ = f.SetStudentField(s.ID, form.FieldStudentGender, at(form.FieldStudentGender))
	}
	return f
}

// FormSubmit handles every button on the form: add, remove:<id>, generate.
// Anything else (Enter in a text field) just redraws the page.
func FormSubmit(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		f := decodeForm(r)
		action := r.PostForm.Get("action")

		switch {
		case action == "add":
			f.AddStudent()
			renderForm(w, env, f, nil, http.StatusOK)

		case strings.HasPrefix(action, "remove:"):
			before := len(f.Students())
			f.RemoveStudent(strings.TrimPrefix(action, "remove:"))
			var flash *Flash
			if before == 1 {
				flash = MakeFlash("error", "last_student")
			}
			renderForm(w, env, f, flash, http.StatusOK)

		case action == "generate":
			generate(w, r, env, f)

		default:
			renderForm(w, env, f, nil, http.StatusOK)
		}
	}
}

func generate(w http.ResponseWriter, r *http.Request, env *Env, f *form.Form) {
	if problems := f.Problems(); len(problems) > 0 {
		renderForm(w, env, f, MakeFlash("error", problems...), http.StatusUnprocessableEntity)
		return
	}

	var out svc.Collector
	rep := f.GenerateAll(r.Context(), env.Renderer, &out)
	docs := out.Docs()

	if len(docs) == 0 {
		log.Printf("generate: no documents produced: %v", rep.Err)
		renderForm(w, env, f, MakeFlash("error", "generate_failed"), http.StatusInternalServerError)
		return
	}
	if rep.Err != nil {
		// saved documents are independent; hand over what we have
		w.Header().Set("X-Borang-Incomplete", strconv.Itoa(f.Named()-len(docs)))
	}
	w.Header().Set("X-Borang-Count", strconv.Itoa(len(docs)))

	if len(docs) == 1 {
		writeDownload(w, "application/pdf", svc.SafeName(docs[0].Filename), docs[0].Data)
		return
	}
	var buf bytes.Buffer
	if err := svc.WriteZip(&buf, docs, Now()); err != nil {
		log.Printf("generate: bundle: %v", err)
		renderForm(w, env, f, MakeFlash("error", "generate_failed"), http.StatusInternalServerError)
		return
	}
	writeDownload(w, "application/zip", svc.BundleName(f.Program().Name), buf.Bytes())
}

func writeDownload(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

var _ form.Renderer = (*borang.Renderer)(nil)
