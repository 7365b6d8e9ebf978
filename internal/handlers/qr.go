package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// QR serves a PNG code pointing at the form so it can be opened on a phone.
func QR(env *Env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := env.PublicURL
		if url == "" {
			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}
			url = scheme + "://" + r.Host + "/"
		}

		png, err := qrcode.Encode(url, qrcode.Medium, 256)
		if err != nil {
			http.Error(w, "failed to generate qr", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
