// Package queryparams liste ekranlarının filtre ve sayfalama parametrelerini taşır.
package queryparams

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
	DefaultSortBy  = "created_at"
)

// ListParams randevu listesi için query string parametreleri.
// Name isim üzerinde büyük/küçük harf duyarsız substring araması,
// Date "2006-01-02" biçiminde tek günlük tarih filtresidir.
type ListParams struct {
	Name    string `query:"q"`
	Date    string `query:"tarih"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// DefaultListParams verilen sıralama sütunuyla varsayılan parametreleri döndürür.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// Validate eksik veya taşan değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset sayfa numarasından SQL offset hesaplar.
func (p *ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisi.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

// PaginatedResult liste verisi ve sayfalama bilgisini birlikte taşır.
type PaginatedResult struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResult toplam kayıt sayısından meta hesaplayarak sonuç oluşturur.
func NewPaginatedResult(data interface{}, params ListParams, totalItems int64) *PaginatedResult {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(params.PerPage)))
	}
	return &PaginatedResult{
		Data: data,
		Meta: PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalItems,
			TotalPages:  totalPages,
		},
	}
}
