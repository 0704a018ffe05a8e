package routing

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const unmatchedRoute = "unmatched"

type DispatcherOptions struct {
	// Prefix se quita del path antes de matchear (p.ej. /api).
	Prefix  string
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Dispatcher resuelve requests contra una Table. Es el único punto de entrada
// de ambos hosts: el dev server lo monta como fallback y el host de funciones
// usa ServePattern por patrón.
type Dispatcher struct {
	table   *Table
	prefix  string
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewDispatcher(t *Table, opts DispatcherOptions) *Dispatcher {
	return &Dispatcher{
		table:   t,
		prefix:  strings.TrimRight(opts.Prefix, "/"),
		log:     logger.OrNop(opts.Logger),
		metrics: opts.Metrics,
	}
}

func (d *Dispatcher) Table() *Table { return d.table }

// Normalize quita el prefijo: "/api/x" => "/x" y "/api" => "/".
func (d *Dispatcher) Normalize(path string) string {
	if d.prefix == "" {
		return path
	}
	if path == d.prefix {
		return "/"
	}
	if strings.HasPrefix(path, d.prefix+"/") {
		return path[len(d.prefix):]
	}
	return path
}

// ServeHTTP matchea contra la tabla completa. Sin match => 404 genérico.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := d.Normalize(r.URL.EscapedPath())
	rt, captures, ok := d.table.Match(r.Method, path)
	if !ok {
		d.serve(w, r, nil, nil)
		return
	}
	d.serve(w, r, rt, captures)
}

// ServePattern atiende solo las rutas de un patrón, como una función por ruta:
// método no declarado para el patrón => 405 con Allow.
func (d *Dispatcher) ServePattern(pattern string) http.Handler {
	var routes []Route
	var allow []string
	for _, rt := range d.table.Routes() {
		if rt.Pattern == pattern {
			routes = append(routes, rt)
			allow = append(allow, rt.Method)
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := d.Normalize(r.URL.EscapedPath())
		method := strings.ToUpper(r.Method)

		pathMatched := false
		for i := range routes {
			rt := &routes[i]
			captures, ok := rt.match(path)
			if !ok {
				continue
			}
			pathMatched = true
			if rt.Method == method {
				d.serve(w, r, rt, captures)
				return
			}
		}

		if !pathMatched {
			d.serve(w, r, nil, nil)
			return
		}
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Allow", strings.Join(allow, ", "))
		ww.WriteHeader(http.StatusMethodNotAllowed)
		d.finish(r, ww, pattern, time.Since(start))
	})
}

func (d *Dispatcher) serve(w http.ResponseWriter, r *http.Request, rt *Route, captures map[string]string) {
	start := time.Now()
	ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

	route := unmatchedRoute
	if rt != nil {
		route = rt.Pattern
	}

	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			d.log.Error("handler panic", zap.String("route", route), zap.Any("panic", rec), zap.Stack("stack"))
			if ww.Status() == 0 {
				writeInternal(ww, fmt.Sprint(rec))
			}
		}
		d.finish(r, ww, route, time.Since(start))
	}()

	if rt == nil {
		WriteMessage(ww, http.StatusNotFound, "Not Found")
		return
	}

	r = WithParams(r, mergeParams(r.URL.Query(), captures))
	if err := rt.handler(ww, r); err != nil {
		d.log.Error("handler error", zap.String("route", route), zap.Error(err))
		// Si el handler ya escribió headers no se puede cambiar el status.
		if ww.Status() == 0 {
			writeInternal(ww, err.Error())
		}
	}
}

func (d *Dispatcher) finish(r *http.Request, ww chimw.WrapResponseWriter, route string, elapsed time.Duration) {
	status := ww.Status()
	if status == 0 {
		status = http.StatusOK
	}
	d.metrics.RecordHTTPRequest(r.Method, route, status, elapsed)

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("route", route),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Duration("duration", elapsed),
	}
	if id := chimw.GetReqID(r.Context()); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	d.log.Info("request", fields...)
}
