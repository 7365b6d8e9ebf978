package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sksa/borang/internal/handlers"
)

//go:embed templates
var templateFS embed.FS

func Router(env *handlers.Env) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if env.Tmpl == nil {
		env.Tmpl = MustParseTemplates()
	}

	r.Get("/", handlers.Home(env))
	r.Post("/", handlers.FormSubmit(env))
	r.Get("/healthz", handlers.Health)

	// share link for opening the form on a phone
	r.Get("/qr.png", handlers.QR(env))

	return r
}

func MustParseTemplates() *template.Template {
	funcs := template.FuncMap{
		"year": func() string { return handlers.Now().Format("2006") },
		// only ever fed the logo cache's own base64 JPEG
		"dataURI": func(s string) template.URL { return template.URL(s) },
	}

	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseFS(sub, "layouts/*.tmpl"))
	p = template.Must(p.ParseFS(sub, "partials/*.tmpl"))
	return p
}
