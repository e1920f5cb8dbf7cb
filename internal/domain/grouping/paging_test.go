package grouping

import "testing"

func makeGroups(n int) []Group {
	out := make([]Group, n)
	for i := range out {
		out[i] = Group{ClientID: string(rune('A' + i))}
	}
	return out
}

func TestPaginate(t *testing.T) {
	groups := makeGroups(25)

	tests := []struct {
		page       int
		wantLen    int
		wantFirst  string
		wantPages  int
	}{
		{1, 10, "A", 3},
		{2, 10, "K", 3},
		{3, 5, "U", 3},
	}

	for _, tt := range tests {
		p := Paginate(groups, tt.page)
		if len(p.Groups) != tt.wantLen {
			t.Errorf("page %d: len = %d, want %d", tt.page, len(p.Groups), tt.wantLen)
		}
		if len(p.Groups) > 0 && p.Groups[0].ClientID != tt.wantFirst {
			t.Errorf("page %d: first = %q, want %q", tt.page, p.Groups[0].ClientID, tt.wantFirst)
		}
		if p.TotalPages != tt.wantPages {
			t.Errorf("page %d: total pages = %d, want %d", tt.page, p.TotalPages, tt.wantPages)
		}
		if p.TotalGroups != 25 {
			t.Errorf("page %d: total groups = %d, want 25", tt.page, p.TotalGroups)
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	groups := makeGroups(5)

	p := Paginate(groups, 99)
	if len(p.Groups) != 0 {
		t.Errorf("past-the-end page should be empty, got %d", len(p.Groups))
	}
	if p.TotalGroups != 5 || p.TotalPages != 1 {
		t.Errorf("totals must survive out-of-range pages: %+v", p)
	}

	p = Paginate(groups, 0)
	if p.PageNumber != 1 || len(p.Groups) != 5 {
		t.Errorf("page below 1 should clamp to 1: %+v", p)
	}
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 1)
	if len(p.Groups) != 0 || p.TotalGroups != 0 || p.TotalPages != 1 {
		t.Errorf("empty input: %+v", p)
	}
}
