package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any list query can request.
	MaxPageSize = 100
)

// Params holds offset pagination inputs from controllers or services.
// Page is 1-based.
type Params struct {
	Page     int
	PageSize int
}

// Normalize enforces the 1-based page and the configured size bounds.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Params) Offset() int {
	p = p.Normalize()
	return (p.Page - 1) * p.PageSize
}

// Limit returns the normalized page size.
func (p Params) Limit() int {
	return p.Normalize().PageSize
}

// Meta is the pagination block every list response carries.
type Meta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// MetaFor builds response metadata from the normalized params and row count.
func MetaFor(p Params, total int64) Meta {
	p = p.Normalize()
	return Meta{Page: p.Page, PageSize: p.PageSize, Total: total}
}
