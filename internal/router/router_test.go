package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-registry/internal/platform/config"
	"pet-registry/internal/router"
)

type message struct {
	Message string `json:"message"`
}

type anexo struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type petBody struct {
	ID      int64       `json:"id"`
	Nome    string      `json:"nome"`
	Foto    *anexo      `json:"foto"`
	Tutores []tutorBody `json:"tutores"`
}

type tutorBody struct {
	ID   int64     `json:"id"`
	Nome string    `json:"nome"`
	Pets []petBody `json:"pets"`
}

type pageBody struct {
	Page      int       `json:"page"`
	Size      int       `json:"size"`
	Total     int       `json:"total"`
	PageCount int       `json:"pageCount"`
	Content   []petBody `json:"content"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	d, err := router.NewRouter(router.Options{
		Prefix: "/api",
		Auth: config.Auth{
			Secret:   "test-secret",
			Username: "admin",
			Password: "admin",
		},
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(d)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PetsTutorsAndLinks(t *testing.T) {
	ts := newServer(t)
	tok := login(t, ts.URL).AccessToken

	// 1) Crear pet y tutor: los ids siguen a la seed
	var pet petBody
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/pets", tok, map[string]any{"nome": "Toby", "raca": "Poodle", "idade": 4})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &pet)
		if pet.ID != 3 {
			t.Fatalf("expected pet id 3, got %d", pet.ID)
		}
	}
	var tutor tutorBody
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/tutores", tok, map[string]any{"nome": "Ana", "telefone": "(11) 90000-0000"})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create tutor, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &tutor)
		if tutor.ID != 3 {
			t.Fatalf("expected tutor id 3, got %d", tutor.ID)
		}
	}

	// 2) Vincular: 201 sin body, visible desde los dos lados
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/tutores/3/pets/3", tok, nil)
		if st != http.StatusCreated || len(body) != 0 {
			t.Fatalf("expected 201 with empty body on link, got %d body=%q", st, string(body))
		}
		// Repetir no duplica
		st, _ = doReq(t, ts.URL, "POST", "/api/v1/tutores/3/pets/3", tok, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 on repeated link, got %d", st)
		}
	}
	{
		var got petBody
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pets/3", tok, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &got)
		if len(got.Tutores) != 1 || got.Tutores[0].ID != 3 {
			t.Fatalf("expected pet 3 linked to tutor 3, got %+v", got.Tutores)
		}

		var gotTutor tutorBody
		st, body = doReq(t, ts.URL, "GET", "/api/v1/tutores/3", tok, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get tutor, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &gotTutor)
		if len(gotTutor.Pets) != 1 || gotTutor.Pets[0].ID != 3 {
			t.Fatalf("expected tutor 3 linked to pet 3, got %+v", gotTutor.Pets)
		}
	}

	// 3) Vínculo con un id inexistente
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/tutores/3/pets/99", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Pet ou tutor nao encontrado.")
	}

	// 4) Desvincular
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/v1/tutores/3/pets/3", tok, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 unlink, got %d body=%s", st, string(body))
		}
		var got petBody
		_, body = doReq(t, ts.URL, "GET", "/api/v1/pets/3", tok, nil)
		mustDecode(t, body, &got)
		if len(got.Tutores) != 0 {
			t.Fatalf("expected no tutors after unlink, got %+v", got.Tutores)
		}
	}

	// 5) Validación antes que existencia
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/pets", tok, map[string]any{})
		expectMessage(t, st, body, http.StatusBadRequest, "Nome obrigatorio.")

		st, body = doReq(t, ts.URL, "PUT", "/api/v1/pets/999", tok, map[string]any{})
		expectMessage(t, st, body, http.StatusBadRequest, "Nome obrigatorio.")

		st, body = doReq(t, ts.URL, "PUT", "/api/v1/pets/999", tok, map[string]any{"nome": "X"})
		expectMessage(t, st, body, http.StatusNotFound, "Pet nao encontrado.")

		st, body = doReq(t, ts.URL, "POST", "/api/v1/tutores", tok, map[string]any{"nome": "Sem telefone"})
		expectMessage(t, st, body, http.StatusBadRequest, "Nome e telefone obrigatorios.")

		st, body = doRaw(t, ts.URL, "POST", "/api/v1/pets", tok, "application/json", strings.NewReader("{nome"))
		expectMessage(t, st, body, http.StatusBadRequest, "JSON invalido.")
	}

	// 6) PUT reemplaza: los campos omitidos quedan vacíos
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/v1/pets/3", tok, map[string]any{"nome": "Toby II"})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
		}
		var raw map[string]any
		mustDecode(t, body, &raw)
		if raw["nome"] != "Toby II" {
			t.Fatalf("expected updated name, got %v", raw["nome"])
		}
		if _, ok := raw["raca"]; ok {
			t.Fatalf("expected raca cleared by PUT, got %v", raw["raca"])
		}
	}

	// 7) Borrar tutor 1 lo saca del pet 1
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/v1/tutores/1", tok, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete tutor, got %d", st)
		}
		st, body := doReq(t, ts.URL, "GET", "/api/v1/tutores/1", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Tutor nao encontrado.")

		var got petBody
		_, body = doReq(t, ts.URL, "GET", "/api/v1/pets/1", tok, nil)
		mustDecode(t, body, &got)
		if len(got.Tutores) != 0 {
			t.Fatalf("expected pet 1 without tutors after cascade, got %+v", got.Tutores)
		}
	}

	// 8) Borrar pet 2 lo saca del tutor 2; segundo delete es 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/v1/pets/2", tok, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
		st, body := doReq(t, ts.URL, "DELETE", "/api/v1/pets/2", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Pet nao encontrado.")

		var got tutorBody
		_, body = doReq(t, ts.URL, "GET", "/api/v1/tutores/2", tok, nil)
		mustDecode(t, body, &got)
		if len(got.Pets) != 0 {
			t.Fatalf("expected tutor 2 without pets after cascade, got %+v", got.Pets)
		}
	}

	// 9) Ids no numéricos no existen
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pets/abc", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Pet nao encontrado.")
	}
}

func TestHTTP_SeedLinkAndCascade(t *testing.T) {
	ts := newServer(t)
	tok := login(t, ts.URL).AccessToken

	tutorPets := func() []int64 {
		t.Helper()
		var got tutorBody
		st, body := doReq(t, ts.URL, "GET", "/api/v1/tutores/1", tok, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get tutor 1, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &got)
		ids := make([]int64, 0, len(got.Pets))
		for _, p := range got.Pets {
			ids = append(ids, p.ID)
		}
		return ids
	}

	if st, _ := doReq(t, ts.URL, "POST", "/api/v1/tutores/1/pets/2", tok, nil); st != http.StatusCreated {
		t.Fatalf("expected 201 link, got %d", st)
	}
	if ids := tutorPets(); len(ids) != 2 || ids[1] != 2 {
		t.Fatalf("expected tutor 1 with pets [1 2], got %v", ids)
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/api/v1/tutores/1/pets/2", tok, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 unlink, got %d", st)
	}
	if ids := tutorPets(); len(ids) != 1 || ids[0] != 1 {
		t.Fatalf("expected tutor 1 with pets [1], got %v", ids)
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/api/v1/pets/1", tok, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pet 1, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/api/v1/pets/1", tok, nil)
	expectMessage(t, st, body, http.StatusNotFound, "Pet nao encontrado.")
	if ids := tutorPets(); len(ids) != 0 {
		t.Fatalf("expected tutor 1 without pets, got %v", ids)
	}

	// Los ids no se reutilizan después de borrar
	var created petBody
	_, body = doReq(t, ts.URL, "POST", "/api/v1/pets", tok, map[string]any{"nome": "Nova"})
	mustDecode(t, body, &created)
	if created.ID != 3 {
		t.Fatalf("expected new pet id 3, got %d", created.ID)
	}
}

func TestHTTP_Photos(t *testing.T) {
	ts := newServer(t)
	tok := login(t, ts.URL).AccessToken

	// 1) Subir foto al pet 1
	var first anexo
	{
		st, body := upload(t, ts.URL, "/api/v1/pets/1/fotos", tok, "rex.png", []byte("\x89PNG fake"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 upload, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &first)
		if first.ID != 1 || first.URL != "/__uploads/imagens/pets/1/1-rex.png" {
			t.Fatalf("unexpected anexo %+v", first)
		}
	}

	// 2) Reemplazar: nuevo id, el pet solo ve la última
	var second anexo
	{
		st, body := upload(t, ts.URL, "/api/v1/pets/1/fotos", tok, "rex2.png", []byte("\x89PNG other"))
		if st != http.StatusCreated {
			t.Fatalf("expected 201 second upload, got %d body=%s", st, string(body))
		}
		mustDecode(t, body, &second)
		if second.ID != 2 {
			t.Fatalf("expected photo id 2, got %d", second.ID)
		}

		var got petBody
		_, body = doReq(t, ts.URL, "GET", "/api/v1/pets/1", tok, nil)
		mustDecode(t, body, &got)
		if got.Foto == nil || got.Foto.ID != 2 {
			t.Fatalf("expected current photo 2, got %+v", got.Foto)
		}
	}

	// 3) Borrar con el id viejo no toca nada
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/v1/pets/1/fotos/1", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Foto nao encontrada.")
	}

	// 4) Borrar la actual
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/v1/pets/1/fotos/2", tok, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete photo, got %d body=%s", st, string(body))
		}
		var got petBody
		_, body = doReq(t, ts.URL, "GET", "/api/v1/pets/1", tok, nil)
		mustDecode(t, body, &got)
		if got.Foto != nil {
			t.Fatalf("expected no photo after delete, got %+v", got.Foto)
		}
	}

	// 5) Dueño inexistente gana sobre archivo ausente
	{
		st, body := doRaw(t, ts.URL, "POST", "/api/v1/tutores/99/fotos", tok, "application/json", strings.NewReader("{}"))
		expectMessage(t, st, body, http.StatusNotFound, "Tutor nao encontrado.")

		st, body = doRaw(t, ts.URL, "POST", "/api/v1/tutores/1/fotos", tok, "application/json", strings.NewReader("{}"))
		expectMessage(t, st, body, http.StatusBadRequest, "Arquivo obrigatorio.")

		st, body = doReq(t, ts.URL, "DELETE", "/api/v1/tutores/99/fotos/1", tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Foto nao encontrada.")
	}
}

func TestHTTP_ListPagination(t *testing.T) {
	ts := newServer(t)
	tok := login(t, ts.URL).AccessToken

	cases := []struct {
		query     string
		total     int
		pageCount int
		names     []string
	}{
		{query: "", total: 2, pageCount: 1, names: []string{"Rex", "Maya"}},
		{query: "?size=1&page=1", total: 2, pageCount: 2, names: []string{"Maya"}},
		{query: "?size=", total: 2, pageCount: 1, names: []string{"Rex", "Maya"}},
		{query: "?page=-1", total: 2, pageCount: 1, names: nil},
		{query: "?page=7", total: 2, pageCount: 1, names: nil},
		{query: "?page=4611686018427387904&size=2", total: 2, pageCount: 1, names: nil},
		{query: "?page=2305843009213693952&size=8", total: 2, pageCount: 1, names: nil},
		{query: "?nome=REX", total: 1, pageCount: 1, names: []string{"Rex"}},
		{query: "?raca=lata", total: 1, pageCount: 1, names: []string{"Maya"}},
		{query: "?size=abc", total: 2, pageCount: 1, names: []string{"Rex", "Maya"}},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pets"+tc.query, tok, nil)
		if st != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d body=%s", tc.query, st, string(body))
		}
		var p pageBody
		mustDecode(t, body, &p)
		if p.Total != tc.total || p.PageCount != tc.pageCount {
			t.Fatalf("%q: expected total=%d pageCount=%d, got %+v", tc.query, tc.total, tc.pageCount, p)
		}
		if p.Content == nil {
			t.Fatalf("%q: content must be an array, got null", tc.query)
		}
		var names []string
		for _, c := range p.Content {
			names = append(names, c.Nome)
		}
		if strings.Join(names, ",") != strings.Join(tc.names, ",") {
			t.Fatalf("%q: expected %v, got %v", tc.query, tc.names, names)
		}
	}
}

func TestHTTP_Authentication(t *testing.T) {
	ts := newServer(t)

	// 1) Sin token / token inválido
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pets", "", nil)
		expectMessage(t, st, body, http.StatusUnauthorized, "Authorization header missing.")

		st, body = doReq(t, ts.URL, "GET", "/api/v1/pets", "garbage", nil)
		expectMessage(t, st, body, http.StatusUnauthorized, "Invalid or expired token.")
	}

	// 2) Credenciales
	{
		st, body := doReq(t, ts.URL, "POST", "/api/autenticacao/login", "", map[string]any{"username": "admin", "password": "nope"})
		expectMessage(t, st, body, http.StatusUnauthorized, "Credenciais invalidas.")
	}

	pair := login(t, ts.URL)

	// 3) El refresh token no sirve como access token
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pets", pair.RefreshToken, nil)
		expectMessage(t, st, body, http.StatusUnauthorized, "Invalid or expired token.")
	}

	// 4) El esquema no distingue mayúsculas
	{
		st, body := doRawHeader(t, ts.URL, "GET", "/api/v1/pets", "bearer "+pair.AccessToken)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with lowercase scheme, got %d body=%s", st, string(body))
		}
	}

	// 5) Refresh
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/autenticacao/refresh", "", nil)
		expectMessage(t, st, body, http.StatusUnauthorized, "Token ausente.")

		st, body = doReq(t, ts.URL, "PUT", "/api/autenticacao/refresh", pair.AccessToken, nil)
		expectMessage(t, st, body, http.StatusUnauthorized, "Token invalido ou expirado.")

		st, body = doReq(t, ts.URL, "PUT", "/api/autenticacao/refresh", pair.RefreshToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 refresh, got %d body=%s", st, string(body))
		}
		var next tokenPair
		mustDecode(t, body, &next)
		st, body = doReq(t, ts.URL, "GET", "/api/v1/tutores", next.AccessToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with refreshed token, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_RoutingSurface(t *testing.T) {
	ts := newServer(t)
	tok := login(t, ts.URL).AccessToken

	for _, path := range []string{"/api/v1/pets/1", "/v1/pets/1", "/api/v1/pets/1/"} {
		st, body := doReq(t, ts.URL, "GET", path, tok, nil)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d body=%s", path, st, string(body))
		}
	}

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/nope"},
		{"PATCH", "/api/v1/pets/1"},
		{"GET", "/api/v1/pets/1/extra"},
	} {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tok, nil)
		expectMessage(t, st, body, http.StatusNotFound, "Not Found")
	}

	// Docs es público
	{
		st, body := doReq(t, ts.URL, "GET", "/api/openapi", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "/v1/pets") {
			t.Fatalf("expected 200 openapi document, got %d", st)
		}
	}
}

// ---------------- helpers ----------------

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func login(t *testing.T, baseURL string) tokenPair {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/api/autenticacao/login", "", map[string]any{"username": "admin", "password": "admin"})
	if st != http.StatusOK {
		t.Fatalf("login failed: status=%d body=%s", st, string(body))
	}
	var out tokenPair
	mustDecode(t, body, &out)
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Fatalf("login returned empty tokens: %s", string(body))
	}
	return out
}

func upload(t *testing.T, baseURL, path, token, filename string, data []byte) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("foto", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(data); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return doRaw(t, baseURL, "POST", path, token, mw.FormDataContentType(), &buf)
}

func doReq(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}
	return doRaw(t, baseURL, method, path, token, "application/json", body)
}

func doRaw(t *testing.T, baseURL, method, path, token, contentType string, body io.Reader) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func doRawHeader(t *testing.T, baseURL, method, path, authHeader string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", authHeader)
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func mustDecode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func expectMessage(t *testing.T, gotStatus int, body []byte, wantStatus int, wantMsg string) {
	t.Helper()
	if gotStatus != wantStatus {
		t.Fatalf("expected %d, got %d body=%s", wantStatus, gotStatus, string(body))
	}
	var m message
	mustDecode(t, body, &m)
	if m.Message != wantMsg {
		t.Fatalf("expected message %q, got %q", wantMsg, m.Message)
	}
}
