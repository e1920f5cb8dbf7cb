package grouping

// GroupPageSize is the number of client groups shown per board page.
const GroupPageSize = 10

// Page is one page of the grouped result set.
type Page struct {
	Groups      []Group `json:"groups"`
	PageNumber  int     `json:"page"`
	TotalGroups int     `json:"total_groups"`
	TotalPages  int     `json:"total_pages"`
}

// Paginate slices groups into the 1-based page number requested.
// Page numbers below 1 are clamped to 1; pages past the end yield an empty
// page with the totals preserved, so the caller can still render controls.
func Paginate(groups []Group, page int) Page {
	return paginateWithSize(groups, page, GroupPageSize)
}

func paginateWithSize(groups []Group, page, size int) Page {
	if page < 1 {
		page = 1
	}
	total := len(groups)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start >= total {
		return Page{Groups: []Group{}, PageNumber: page, TotalGroups: total, TotalPages: totalPages}
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page{Groups: groups[start:end], PageNumber: page, TotalGroups: total, TotalPages: totalPages}
}
