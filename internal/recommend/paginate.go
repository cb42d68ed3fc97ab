package recommend

import "github.com/reelpick/reelpick/internal/domain"

// PageSize is the fixed number of movies shown per page.
const PageSize = 10

// Paginate returns the 1-indexed page slice and the total page count.
// totalPages is 0 for empty input. The calculator does not clamp: an
// out-of-range page yields an empty slice, and callers are expected to keep
// the requested page inside [1, totalPages].
func Paginate(items []domain.Movie, pageSize, page int) ([]domain.Movie, int) {
	if pageSize <= 0 {
		return nil, 0
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start < 0 || start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// PageNumbers returns the page buttons to display, a window of at most five
// pages. With five or fewer pages every page is shown; near either edge the
// window sticks to that edge; otherwise it centers on the current page.
func PageNumbers(totalPages, current int) []int {
	if totalPages <= 0 {
		return nil
	}

	count := totalPages
	if count > 5 {
		count = 5
	}

	pages := make([]int, 0, count)
	for i := 0; i < count; i++ {
		var page int
		switch {
		case totalPages <= 5:
			page = i + 1
		case current <= 3:
			page = i + 1
		case current >= totalPages-2:
			page = totalPages - 4 + i
		default:
			page = current - 2 + i
		}
		if page > 0 && page <= totalPages {
			pages = append(pages, page)
		}
	}
	return pages
}
