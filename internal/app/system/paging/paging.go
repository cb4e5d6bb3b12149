// internal/app/system/paging/paging.go
package paging

// PageSize is the default number of rows shown in paged lists.
const PageSize = 24

// LimitPlusOne returns PageSize+1 as int64 for look-ahead pagination
// (fetch one extra document to detect hasNext).
func LimitPlusOne() int64 { return int64(PageSize + 1) }

// Result holds the output of TrimPage.
type Result struct {
	HasPrev bool
	HasNext bool
}

// TrimPage trims a slice fetched with LimitPlusOne rows. It modifies
// the slice in place and reports whether previous/next pages exist.
// page is the 1-based page number the rows were fetched for.
func TrimPage[T any](rows *[]T, page int) Result {
	res := Result{HasPrev: page > 1}
	if len(*rows) > PageSize {
		*rows = (*rows)[:PageSize]
		res.HasNext = true
	}
	return res
}

// Skip returns the number of documents to skip for a 1-based page.
func Skip(page int) int64 {
	if page < 1 {
		page = 1
	}
	return int64((page - 1) * PageSize)
}
