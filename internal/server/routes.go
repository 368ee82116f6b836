package server

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	v1 "github.com/gosuda/snet/internal/api/v1"
)

// protectedPages are the console page prefixes gated on a logged-in session.
var protectedPages = []string{"/establishments", "/stores"} //nolint:gochecknoglobals // route table

func registerSessionRoutes(api huma.API, sessions v1.SessionManager, secureCookie bool) {
	v1.RegisterSessionRoutes(api, sessions, secureCookie)
}

func registerAPIRoutes(api huma.API, svc Service) {
	v1.RegisterEstablishmentRoutes(api, svc)
	v1.RegisterStoreRoutes(api, svc)
}

func registerPageRoutes(r chi.Router, ui http.Handler) {
	for _, prefix := range protectedPages {
		r.Get(prefix, ui.ServeHTTP)
		r.Get(prefix+"/*", ui.ServeHTTP)
	}
}
