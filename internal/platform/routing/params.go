package routing

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type ctxKey struct{}

// WithParams guarda los parámetros ya mezclados (query + path) en el request.
func WithParams(r *http.Request, params map[string]string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, params))
}

func params(r *http.Request) map[string]string {
	p, _ := r.Context().Value(ctxKey{}).(map[string]string)
	return p
}

// Param devuelve un parámetro y si estaba presente.
func Param(r *http.Request, name string) (string, bool) {
	v, ok := params(r)[name]
	return v, ok
}

// ID parsea un parámetro entero. ok=false si falta o no es numérico;
// los handlers lo tratan como id inexistente.
func ID(r *http.Request, name string) (int64, bool) {
	v, ok := Param(r, name)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Int parsea un parámetro numérico de query. Ausente o no entero => fallback;
// presente pero vacío => 0.
func Int(r *http.Request, name string, fallback int) int {
	v, ok := Param(r, name)
	if !ok {
		return fallback
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// mergeParams: primero la query (primer valor de cada key), después las
// capturas del path decodificadas, que pisan a la query.
func mergeParams(query url.Values, captures map[string]string) map[string]string {
	out := make(map[string]string, len(query)+len(captures))
	for k, vs := range query {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	for k, v := range captures {
		if dec, err := url.PathUnescape(v); err == nil {
			v = dec
		}
		out[k] = v
	}
	return out
}
