package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"empty", 0, 1, 20, 1, false, false},
		{"single page", 15, 1, 20, 1, false, false},
		{"exact boundary", 40, 1, 20, 2, true, false},
		{"middle page", 100, 3, 20, 5, true, true},
		{"last page", 100, 5, 20, 5, false, true},
		{"defaults on bad input", 10, 0, 0, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPagination(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tc.hasNext)
			}
			if p.HasPrev != tc.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tc.hasPrev)
			}
			if p.Total != tc.total {
				t.Errorf("Total = %d, want %d", p.Total, tc.total)
			}
		})
	}
}
