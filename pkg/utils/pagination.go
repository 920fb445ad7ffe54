package utils

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage mantém (page-1)*page_size dentro de int
	MaxPage = math.MaxInt / MaxPageSize
)

// Pagination representa a paginação por offset usada nas listagens
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
	Pages    int `json:"pages"`
}

// Offset devolve o deslocamento para a consulta
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// WithTotal preenche o total de registros e de páginas
func (p Pagination) WithTotal(total int) Pagination {
	p.Total = total
	if p.PageSize > 0 {
		p.Pages = (total + p.PageSize - 1) / p.PageSize
	}
	return p
}

// NewPagination normaliza page e page_size
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// PaginationFromQuery lê page e page_size da query string, ignorando valores inválidos
func PaginationFromQuery(query url.Values) Pagination {
	// valor ausente ou inválido vira 0 e cai no padrão em NewPagination
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	return NewPagination(page, pageSize)
}
