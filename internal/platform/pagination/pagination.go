package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params son los parámetros page/page_size del request.
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Meta acompaña cada página de resultados.
type Meta struct {
	CurrentPage  int  `json:"current_page"`
	PageSize     int  `json:"page_size"`
	TotalRecords int  `json:"total_records"`
	TotalPages   int  `json:"total_pages"`
	HasPrevious  bool `json:"has_previous"`
	HasNext      bool `json:"has_next"`
}

// ParseParams lee page y page_size sin corregirlos: un valor fuera de rango
// se devuelve tal cual para que el caso de uso lo reporte. Devuelve además
// los nombres de los parámetros que no son enteros.
func ParseParams(r *http.Request) (Params, []string) {
	p := Params{Page: DefaultPage, PageSize: DefaultPageSize}
	var bad []string

	q := r.URL.Query()
	if s := strings.TrimSpace(q.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			bad = append(bad, "page")
		} else {
			p.Page = n
		}
	}
	if s := strings.TrimSpace(q.Get("page_size")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			bad = append(bad, "page_size")
		} else {
			p.PageSize = n
		}
	}
	return p, bad
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta calcula totales a partir del conteo previo a paginar.
// Sin registros, total_pages es 0.
func (p Params) Meta(totalRecords int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalRecords + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		CurrentPage:  p.Page,
		PageSize:     p.PageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		HasPrevious:  p.Page > 1,
		HasNext:      p.Page < totalPages,
	}
}
