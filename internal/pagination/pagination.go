package pagination

// DefaultPageSize is the number of list items shown per page.
const DefaultPageSize = 3

// TotalPages returns ceil(count/size). An empty list has zero pages.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count-1)/size + 1
}

// Paginate returns the items of the given 1-based page and the total page
// count. Pages outside the range yield an empty slice; callers clamp first.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	total := TotalPages(len(items), size)
	if size <= 0 || page < 1 || page > total {
		return []T{}, total
	}

	// page <= total keeps start inside items, so neither sum can overflow.
	start := (page - 1) * size
	end := len(items)
	if size < end-start {
		end = start + size
	}
	return items[start:end], total
}

// Clamp returns page when it lies inside the list, otherwise 1.
func Clamp(page, count, size int) int {
	if page < 1 || page > TotalPages(count, size) {
		return 1
	}
	return page
}

// ShowControls reports whether pagination controls should be rendered.
func ShowControls(totalPages int) bool {
	return totalPages > 1
}
