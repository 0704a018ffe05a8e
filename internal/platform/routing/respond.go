package routing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidJSON indica un body que no es JSON válido.
var ErrInvalidJSON = errors.New("invalid json body")

type Message struct {
	Message string `json:"message"`
}

type internalError struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ReadJSON decodifica el body en v. Un body vacío equivale a null: v queda
// como estaba y no es error.
func ReadJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

func writeInternal(w http.ResponseWriter, detail string) {
	WriteJSON(w, http.StatusInternalServerError, internalError{Message: "Erro interno.", Detail: detail})
}
