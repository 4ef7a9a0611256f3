package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/annual-summary-api/pkg/apiErrors"
)

// Route associa método e caminho a um handler; Middlewares rodam na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Option func(*Router)

func WithRoutes(routes ...Route) Option {
	return func(r *Router) { r.AddRoutes(routes...) }
}

// Router responde 404 e 405 no mesmo formato de erro do restante da API
type Router struct {
	mux *httprouter.Router
}

func New(opts ...Option) *Router {
	mux := httprouter.New()
	mux.NotFound = errorHandler(apiErrors.ErrNotFound, "Rota não encontrada")
	mux.MethodNotAllowed = errorHandler(apiErrors.ErrMethodNotAllowed, "Método não permitido")

	r := &Router{mux: mux}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		h := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			h = route.Middlewares[i](h)
		}
		r.mux.Handler(route.Method, route.Path, h)
	}
}

func errorHandler(code, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, code, message, nil)
	})
}
