package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data  Action = "data"
	Api   Action = "api"
	Chart Action = "chart"

	GET  Method = "GET"
	POST Method = "POST"
)

// Handler produces the response payload and status code for a request.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
	// ContentType of the response, json if empty.
	ContentType string
}

// Pattern returns the url path the route is served on.
func (r Route) Pattern() string {
	if r.Path != "" {
		return fmt.Sprintf("/%s/%s", r.Action, r.Path)
	}
	return fmt.Sprintf("/%s", r.Action)
}

type Server struct {
	name     string
	port     int
	debug    bool
	routes   []Route
	handlers map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:     name,
		port:     port,
		routes:   make([]Route, 0),
		handlers: make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// AddRoute adds a route for the given method and path to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Action: action,
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Handle mounts a plain http handler on the given pattern e.g. for metrics.
func (s *Server) Handle(pattern string, handler http.Handler) *Server {
	s.handlers[pattern] = handler
	return s
}

func (s *Server) handle(route Route) func(w http.ResponseWriter, r *http.Request) {
	contentType := route.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		if s.debug {
			log.Info().
				Str("url", r.URL.String()).
				Str("remote-address", r.RemoteAddr).
				Str("method", r.Method).
				Msg("received request")
		}
		if Method(r.Method) != route.Method {
			w.WriteHeader(http.StatusNotImplemented)
			return
		}
		b, code, err := route.Exec(r)
		switch {
		case err != nil:
			s.error(w, err)
		case code != http.StatusOK:
			s.code(w, b, code)
		default:
			w.Header().Set("Content-Type", contentType)
			s.respond(w, b)
		}
		log.Debug().
			Str("route", route.Pattern()).
			Int("code", code).
			Float64("duration", time.Since(start).Seconds()).
			Msg("completed request")
	}
}

// Mux creates the request multiplexer for all routes.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		mux.HandleFunc(route.Pattern(), s.handle(route))
	}
	for pattern, handler := range s.handlers {
		mux.Handle(pattern, handler)
	}
	return mux
}

// Run starts the server
func (s *Server) Run() error {
	log.Info().Str("server", s.name).Int("port", s.port).Int("routes", len(s.routes)).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Mux()); err != nil {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("error for http request")
	s.code(w, []byte(err.Error()), http.StatusInternalServerError)
}

func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// JsonResponse encodes the given value as the payload of a successful response.
func JsonResponse(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}
