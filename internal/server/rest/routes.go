package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// routePolicy binds a method and path to a handler and states whether the
// caller must hold a valid session.
type routePolicy struct {
	Method       string
	Path         string
	AuthRequired bool
	Handler      http.HandlerFunc
}

// tenant is one contact surface. PBD is the flag stored on its contacts.
type tenant struct {
	Name string
	PBD  bool
}

var tenants = []tenant{
	{Name: "pbd", PBD: true},
	{Name: "mesa", PBD: false},
}

func (s *Server) routes() []routePolicy {
	policies := []routePolicy{
		{Method: http.MethodGet, Path: "/ping", Handler: s.handlePing},
		{Method: http.MethodPost, Path: "/login", Handler: s.handleLogin},
		{Method: http.MethodPost, Path: "/create-account", Handler: s.handleCreateAccount},
	}

	for _, t := range tenants {
		path := "/" + t.Name + "/contact"
		policies = append(policies,
			routePolicy{Method: http.MethodPost, Path: path, Handler: s.handleSubmitContact(t.PBD)},
			routePolicy{Method: http.MethodGet, Path: path, AuthRequired: true, Handler: s.handleListContacts(t.PBD)},
			routePolicy{Method: http.MethodPatch, Path: path, AuthRequired: true, Handler: s.handleMarkContacted},
			routePolicy{Method: http.MethodDelete, Path: path, AuthRequired: true, Handler: s.handleRemoveContact},
		)
	}

	return policies
}

// Handler builds the router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(secureHeaders)
	r.Use(middleware.Compress(5))
	r.Use(s.corsHandler())
	if s.opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.opts.RequestTimeout))
	}

	for _, p := range s.routes() {
		var h http.Handler = p.Handler
		if p.AuthRequired {
			h = s.guard(h)
		}
		r.Method(p.Method, p.Path, h)
	}

	return r
}
