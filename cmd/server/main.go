package main

import (
	"context"
	"log"
	"net/http"

	"github.com/sksa/borang/internal/borang"
	"github.com/sksa/borang/internal/config"
	"github.com/sksa/borang/internal/handlers"
	"github.com/sksa/borang/internal/logo"
	"github.com/sksa/borang/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// warm the logo so the first download doesn't wait on the fetch
	cache := logo.New(cfg.Institution.LogoURL, nil)
	go func() { _ = cache.EnsureLoaded(context.Background()) }()

	env := &handlers.Env{
		Renderer:    borang.New(cfg.Institution, cache),
		Logo:        cache,
		Institution: cfg.Institution,
		PublicURL:   cfg.PublicURL,
	}
	r := web.Router(env)

	log.Printf("%s borang listening on %s", cfg.Institution.SchoolName, cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
