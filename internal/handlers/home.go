package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/form"
)

// Env carries what the handlers share; built once in cmd/server.
type Env struct {
	Tmpl        *template.Template
	Renderer    form.Renderer
	Logo        interface{ DataURI() string }
	Institution config.Institution
	PublicURL   string
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Home renders a blank form: default program, one empty student.
func Home(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderForm(w, env, form.New(), nil, http.StatusOK)
	}
}

func renderForm(w http.ResponseWriter, env *Env, f *form.Form, flash *Flash, status int) {
	data := newFormPage(env, f, flash)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := env.Tmpl.ExecuteTemplate(w, "form", data); err != nil {
		log.Printf("render form: %v", err)
	}
}
