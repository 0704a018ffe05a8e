package vercelblob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-registry/internal/domain/store"
	"pet-registry/internal/platform/httpclient"
	"pet-registry/internal/ports/blob"
)

const (
	DefaultAPIURL = "https://blob.vercel-storage.com"
	apiVersion    = "7"
)

// Client habla la API REST de Vercel Blob. Sirve a la vez como backend del
// snapshot (store.Backend) y de los payloads de fotos (blob.Store).
type Client struct {
	http  *httpclient.Client
	token string
}

type Options struct {
	APIURL  string
	Token   string
	Timeout time.Duration
}

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.Token) == "" {
		return nil, errors.New("vercelblob: token is required")
	}
	apiURL := opts.APIURL
	if strings.TrimSpace(apiURL) == "" {
		apiURL = DefaultAPIURL
	}

	hc, err := httpclient.NewWithBaseURL(apiURL, opts.Timeout)
	if err != nil {
		return nil, fmt.Errorf("vercelblob: %w", err)
	}
	return &Client{http: hc, token: opts.Token}, nil
}

// Blob es un objeto tal como lo devuelve list/put.
type Blob struct {
	URL         string `json:"url"`
	Pathname    string `json:"pathname"`
	ContentType string `json:"contentType,omitempty"`
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.token,
		"x-api-version": apiVersion,
	}
}

// List devuelve hasta limit blobs cuyo pathname empieza con prefix.
func (c *Client) List(ctx context.Context, prefix string, limit int) ([]Blob, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Blobs []Blob `json:"blobs"`
	}
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodGet,
		Query:   q,
		Headers: c.headers(),
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("vercelblob: list %q: %w", prefix, err)
	}
	return out.Blobs, nil
}

// Put sube data bajo pathname tal cual: sin sufijo aleatorio y pisando lo que haya.
func (c *Client) Put(ctx context.Context, pathname string, data []byte, contentType string) (blob.Object, error) {
	h := c.headers()
	h["x-add-random-suffix"] = "0"
	h["x-allow-overwrite"] = "1"
	if contentType != "" {
		h["x-content-type"] = contentType
	}

	var out Blob
	err := c.http.DoJSON(ctx, httpclient.Request{
		Method:  http.MethodPut,
		URL:     "/" + escapePathname(pathname),
		Headers: h,
		Body:    bytes.NewReader(data),
	}, &out)
	if err != nil {
		return blob.Object{}, fmt.Errorf("vercelblob: put %q: %w", pathname, err)
	}
	return blob.Object{URL: out.URL}, nil
}

func (c *Client) DeleteByURL(ctx context.Context, blobURL string) error {
	_, err := c.http.Do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		URL:     "/delete",
		Headers: c.headers(),
		JSON:    map[string][]string{"urls": {blobURL}},
	})
	if err != nil {
		return fmt.Errorf("vercelblob: delete: %w", err)
	}
	return nil
}

// Read busca data.json (match exacto primero, si no el primero del listado)
// y baja su contenido por la URL pública. Un 404 en la descarga cuenta como
// snapshot inexistente.
func (c *Client) Read(ctx context.Context) ([]byte, error) {
	blobs, err := c.List(ctx, store.SnapshotKey, 1)
	if err != nil {
		return nil, err
	}
	b, ok := pickSnapshot(blobs)
	if !ok {
		return nil, store.ErrSnapshotNotFound
	}

	raw, err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, URL: b.URL})
	if err != nil {
		// Listado pero ya borrado (o todavía no propagado en la CDN).
		if httpclient.StatusOf(err) == http.StatusNotFound {
			return nil, store.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("vercelblob: fetch snapshot: %w", err)
	}
	return raw, nil
}

func (c *Client) Write(ctx context.Context, raw []byte) error {
	_, err := c.Put(ctx, store.SnapshotKey, raw, "application/json")
	return err
}

func pickSnapshot(blobs []Blob) (Blob, bool) {
	for _, b := range blobs {
		if b.Pathname == store.SnapshotKey {
			return b, true
		}
	}
	if len(blobs) > 0 {
		return blobs[0], true
	}
	return Blob{}, false
}

func escapePathname(p string) string {
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}
