package sheetdate

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"45000", "2023-03-15"},
		{"44927", "2023-01-01"},
		{"1", "1900-01-01"},
		// Serial 60 is the phantom 1900-02-29; the serials around it pin the
		// epoch switch.
		{"59", "1900-02-28"},
		{"61", "1900-03-01"},
		{"45000.0", "2023-03-15"},
		{"2024-03-15", "2024-03-15"},
		{"  2024-03-15  ", "2024-03-15"},
		{"", ""},
		{"   ", ""},
		// Unparsable strings pass through unchanged.
		{"next tuesday", "next tuesday"},
		{"15/03/2024", "15/03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDeadlineFor(t *testing.T) {
	tests := []struct {
		postDate string
		want     string
	}{
		{"2024-03-15", "2024-03-13"},
		{"2024-03-01", "2024-02-28"}, // crosses a month boundary
		{"2024-01-01", "2023-12-30"}, // crosses a year boundary
		{"2024-03-02", "2024-02-29"}, // leap year
		// Unparsable post dates keep the deadline verbatim.
		{"soon", "soon"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.postDate, func(t *testing.T) {
			got := DeadlineFor(tt.postDate)
			if got != tt.want {
				t.Errorf("DeadlineFor(%q) = %q, want %q", tt.postDate, got, tt.want)
			}
		})
	}
}
