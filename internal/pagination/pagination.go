package pagination

import "math"

const (
	MaxLimit  = 100
	BlockSize = 5

	// MaxPage keeps (page-1)*MaxLimit inside an int.
	MaxPage = math.MaxInt / MaxLimit
)

// Page is the resolved window for a listing request. TotalCount, TotalPages,
// StartPage and EndPage are only filled by CalculateWithTotal.
type Page struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	StartPage  int   `json:"start_page"`
	EndPage    int   `json:"end_page"`
}

func Calculate(page, size int) Page {
	page = clampPage(page)
	limit := clamp(size, 1, MaxLimit)
	return Page{
		Page:   page,
		Limit:  limit,
		Offset: max(0, (page-1)*limit),
	}
}

// CalculateWithTotal clamps the page into [1, TotalPages] before computing
// the offset, so a request past the end lands on the last page.
func CalculateWithTotal(page, size int, total int64) Page {
	page = clampPage(page)
	if total < 0 {
		total = 0
	}
	limit := clamp(size, 1, MaxLimit)

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	currentBlock := (page - 1) / BlockSize
	startPage := currentBlock*BlockSize + 1
	endPage := min(startPage+BlockSize-1, totalPages)

	return Page{
		Page:       page,
		Limit:      limit,
		Offset:     max(0, (page-1)*limit),
		TotalCount: total,
		TotalPages: totalPages,
		StartPage:  startPage,
		EndPage:    endPage,
	}
}

func clampPage(page int) int {
	return clamp(page, 1, MaxPage)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
