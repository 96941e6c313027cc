package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Pagination is a request-scoped page descriptor, passed by value
// into repository queries. Pages are 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the descriptor to sane bounds.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Pagination) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}
