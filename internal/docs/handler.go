package docs

import (
	"fmt"
	"net/http"
	"strings"

	"pet-registry/internal/platform/routing"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// RegisterRoutes publica la UI de Swagger y el documento en YAML. Son rutas
// públicas: van en la tabla sin RequireAccess.
func RegisterRoutes(t *routing.Table) {
	ui := httpSwagger.Handler(httpSwagger.InstanceName(SwaggerInfo.InstanceName()))

	t.Get("/docs", docsRedirectHandler())
	t.Get("/docs/{file}", func(w http.ResponseWriter, r *http.Request) error {
		ui.ServeHTTP(w, r)
		return nil
	})
	t.Get("/openapi", openAPIHandler())
}

func docsRedirectHandler() routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, strings.TrimSuffix(r.URL.Path, "/")+"/index.html", http.StatusMovedPermanently)
		return nil
	}
}

func openAPIHandler() routing.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		out, err := YAML()
		if err != nil {
			return err
		}
		w.Header().Set("Content-Type", "text/yaml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
		return nil
	}
}

// YAML devuelve el documento registrado en swag convertido a YAML, con las
// claves en el mismo orden que el JSON.
func YAML() ([]byte, error) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read swagger doc: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc), &root); err != nil {
		return nil, fmt.Errorf("parse swagger doc: %w", err)
	}
	blockStyle(&root)

	out, err := yaml.Marshal(&root)
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return out, nil
}

// blockStyle quita el estilo flow/quoted heredado del JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
