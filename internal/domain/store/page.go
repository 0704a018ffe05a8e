package store

import "strings"

const DefaultPageSize = 10

// Page es la respuesta paginada de los listados.
type Page[T any] struct {
	Page      int `json:"page"`
	Size      int `json:"size"`
	Total     int `json:"total"`
	PageCount int `json:"pageCount"`
	Content   []T `json:"content"`
}

// Paginate corta items en [page*size, page*size+size).
// size <= 0 desactiva la paginación (todo en una página, pageCount = 1).
// Una página fuera de rango (o negativa) devuelve content vacío, no error.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	out := Page[T]{Page: page, Size: size, Total: total}

	if size <= 0 {
		out.PageCount = 1
		out.Content = append([]T{}, items...)
		return out
	}

	out.Content = []T{}
	if total == 0 {
		return out
	}
	out.PageCount = (total-1)/size + 1

	// Se compara antes de multiplicar: page*size puede desbordar int.
	if page < 0 || page > (total-1)/size {
		return out
	}
	start := page * size
	end := min(start+size, total)
	out.Content = append(out.Content, items[start:end]...)
	return out
}

// Map transforma el contenido preservando los metadatos de paginación.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := Page[U]{Page: p.Page, Size: p.Size, Total: p.Total, PageCount: p.PageCount, Content: make([]U, 0, len(p.Content))}
	for _, v := range p.Content {
		out.Content = append(out.Content, fn(v))
	}
	return out
}

// ContainsFold: substring case-insensitive. Un filtro vacío siempre matchea.
func ContainsFold(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}
