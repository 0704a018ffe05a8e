package routing

import (
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// HandlerFunc es un handler que puede fallar. Un error no nil lo convierte
// el Dispatcher en 500 con el detalle.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type Middleware func(HandlerFunc) HandlerFunc

// Route es una entrada (método, patrón, handler) de la tabla.
type Route struct {
	Method  string
	Pattern string

	handler HandlerFunc
	re      *regexp.Regexp
}

// Table es la lista ordenada de rutas compartida por todos los hosts.
// El orden de declaración importa: gana el primer match, así que los patrones
// más específicos van antes que los generales con el mismo prefijo.
type Table struct {
	routes *[]*Route
	mws    []Middleware
}

func NewTable() *Table {
	return &Table{routes: new([]*Route)}
}

// With devuelve una vista de la misma tabla cuyas rutas nuevas quedan envueltas
// por mws (el primero es el más externo).
func (t *Table) With(mws ...Middleware) *Table {
	return &Table{
		routes: t.routes,
		mws:    append(slices.Clone(t.mws), mws...),
	}
}

// Handle agrega una ruta. pattern usa segmentos {nombre}; panic si no compila.
func (t *Table) Handle(method, pattern string, h HandlerFunc) {
	for i := len(t.mws) - 1; i >= 0; i-- {
		h = t.mws[i](h)
	}
	*t.routes = append(*t.routes, &Route{
		Method:  strings.ToUpper(method),
		Pattern: pattern,
		handler: h,
		re:      compile(pattern),
	})
}

func (t *Table) Get(pattern string, h HandlerFunc)    { t.Handle(http.MethodGet, pattern, h) }
func (t *Table) Post(pattern string, h HandlerFunc)   { t.Handle(http.MethodPost, pattern, h) }
func (t *Table) Put(pattern string, h HandlerFunc)    { t.Handle(http.MethodPut, pattern, h) }
func (t *Table) Delete(pattern string, h HandlerFunc) { t.Handle(http.MethodDelete, pattern, h) }

// Match recorre la tabla en orden y devuelve la primera ruta cuyo método y path
// coinciden, con las capturas crudas (sin decodificar). Un método distinto
// cuenta como no-match.
func (t *Table) Match(method, path string) (*Route, map[string]string, bool) {
	method = strings.ToUpper(method)
	for _, rt := range *t.routes {
		if rt.Method != method {
			continue
		}
		if captures, ok := rt.match(path); ok {
			return rt, captures, true
		}
	}
	return nil, nil, false
}

// Patterns devuelve los patrones distintos en orden de declaración.
func (t *Table) Patterns() []string {
	var out []string
	for _, rt := range *t.routes {
		if !slices.Contains(out, rt.Pattern) {
			out = append(out, rt.Pattern)
		}
	}
	return out
}

// Routes devuelve una copia de las entradas (para docs y tests).
func (t *Table) Routes() []Route {
	out := make([]Route, 0, len(*t.routes))
	for _, rt := range *t.routes {
		out = append(out, *rt)
	}
	return out
}

func (rt *Route) match(path string) (map[string]string, bool) {
	m := rt.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	captures := make(map[string]string, len(m)-1)
	for i, name := range rt.re.SubexpNames() {
		if i > 0 && name != "" {
			captures[name] = m[i]
		}
	}
	return captures, true
}

var segmentParam = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// compile traduce "/v1/pets/{id}" a ^/v1/pets/(?P<id>[^/]+)/?$.
// La barra final es opcional.
func compile(pattern string) *regexp.Regexp {
	trimmed := strings.TrimRight(pattern, "/")

	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range segmentParam.FindAllStringSubmatchIndex(trimmed, -1) {
		b.WriteString(regexp.QuoteMeta(trimmed[last:loc[0]]))
		b.WriteString("(?P<" + trimmed[loc[2]:loc[3]] + ">[^/]+)")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(trimmed[last:]))
	b.WriteString("/?$")

	return regexp.MustCompile(b.String())
}
