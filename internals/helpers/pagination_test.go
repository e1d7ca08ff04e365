package helper

import "testing"

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int64
		count          int
		wantPages      int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"first of many", 1, 10, 35, 10, 4, true, false},
		{"middle page", 2, 10, 35, 10, 4, true, true},
		{"last partial page", 4, 10, 35, 5, 4, false, true},
		{"single page", 1, 50, 12, 12, 1, false, false},
		{"empty result", 1, 10, 0, 0, 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPagination(tt.page, tt.perPage, tt.total, tt.count)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantHasNext || p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tt.wantHasNext, tt.wantHasPrev)
			}
			if p.Count != tt.count || p.Total != tt.total {
				t.Errorf("Count/Total = %d/%d", p.Count, p.Total)
			}
		})
	}
}
