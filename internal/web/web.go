package web

import (
	"embed"
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// TokenStorageKey is the localStorage key the client keeps the bearer token under.
const TokenStorageKey = "book-manager-token"

//go:embed static
var staticFS embed.FS

// ClientConfig is handed to the browser as /app/config.js.
type ClientConfig struct {
	APIBase  string `json:"apiBase"`
	TokenKey string `json:"tokenKey"`
}

// Handler serves the client mounted at prefix (e.g. "/app").
func Handler(prefix, apiBase string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static/ is embedded at build time
		panic(err)
	}
	files := http.StripPrefix(prefix, http.FileServer(http.FS(sub)))

	cfgJS := configScript(ClientConfig{APIBase: apiBase, TokenKey: TokenStorageKey})

	r := chi.NewRouter()
	r.Get("/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(cfgJS)
	})
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == prefix {
			// relative asset URLs need the trailing slash
			http.Redirect(w, r, prefix+"/", http.StatusMovedPermanently)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		files.ServeHTTP(w, r)
	})
	return r
}

func configScript(c ClientConfig) []byte {
	b, _ := json.Marshal(c)
	return append(append([]byte("window.BOOK_MANAGER_CONFIG = "), b...), ";\n"...)
}
