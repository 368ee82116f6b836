package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// assetsDir holds the console's scripts and stylesheets. Paths under it are
// real files or 404s, never the console shell.
const assetsDir = "assets"

// spaFileServer serves the embedded console. Existing files are served as is.
// Missing assets answer 404 so a stale script reference fails loudly. Any other
// path gets index.html and the console routes it client side
// (/establishments/{id} and friends).
func spaFileServer(assets fs.FS) http.Handler {
	fileServer := http.FileServerFS(assets)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if name == "" {
			name = "index.html"
		}

		if _, err := fs.Stat(assets, name); err != nil {
			if name == assetsDir || strings.HasPrefix(name, assetsDir+"/") {
				http.NotFound(w, r)
				return
			}
			r.URL.Path = "/"
		}

		if r.URL.Path == "/" || name == "index.html" {
			w.Header().Set("Cache-Control", "no-cache")
		}
		fileServer.ServeHTTP(w, r)
	})
}
