package window

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonth_PrefixMatch(t *testing.T) {
	tests := []struct {
		month    string
		postDate string
		want     bool
	}{
		{"2024-03", "2024-03-15", true},
		{"2024-04", "2024-03-15", false},
		{"2024-03", "2024-03-01", true},
		{"2024-03", "2024-03-31", true},
		{"2024-03", "2023-03-15", false},
		{"2024-03", "", false},
		{"", "2024-03-15", false},
		// The prefix test is a pure string comparison: a malformed date
		// with the right prefix still matches.
		{"2024-03", "2024-03-banana", true},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.postDate, func(t *testing.T) {
			got := ForMonth(tt.month).Contains(tt.postDate)
			if got != tt.want {
				t.Errorf("ForMonth(%q).Contains(%q) = %v, want %v", tt.month, tt.postDate, got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	w := ForDay(date(2024, time.March, 15))

	if !w.Contains("2024-03-15") {
		t.Error("same day should match")
	}
	if w.Contains("2024-03-14") {
		t.Error("previous day should not match")
	}
	if w.Contains("2024-03-16") {
		t.Error("next day should not match")
	}
	if w.Contains("not-a-date") {
		t.Error("unparsable post date should not match")
	}
}

func TestWeek_MondayThroughSunday(t *testing.T) {
	// 2024-03-13 is a Wednesday; its week is Mon 2024-03-11 .. Sun 2024-03-17.
	w := ForWeek(date(2024, time.March, 13))

	start, end := w.Bounds()
	if got := start.Format("2006-01-02"); got != "2024-03-11" {
		t.Errorf("week start = %s, want 2024-03-11", got)
	}
	if got := end.Format("2006-01-02"); got != "2024-03-17" {
		t.Errorf("week end = %s, want 2024-03-17", got)
	}

	if !w.Contains("2024-03-11") {
		t.Error("Monday should be included")
	}
	if !w.Contains("2024-03-17") {
		t.Error("Sunday should be included")
	}
	if w.Contains("2024-03-10") {
		t.Error("prior Sunday should be excluded")
	}
	if w.Contains("2024-03-18") {
		t.Error("next Monday should be excluded")
	}
}

func TestWeek_SundayAnchorBelongsToPriorWeek(t *testing.T) {
	// 2024-03-17 is a Sunday: it is day 7 of the week starting 2024-03-11,
	// not day 0 of the week starting 2024-03-18.
	w := ForWeek(date(2024, time.March, 17))

	start, _ := w.Bounds()
	if got := start.Format("2006-01-02"); got != "2024-03-11" {
		t.Errorf("week start = %s, want 2024-03-11", got)
	}
	if !w.Contains("2024-03-11") {
		t.Error("Monday of the prior week should be included")
	}
	if w.Contains("2024-03-18") {
		t.Error("following Monday should be excluded")
	}
}

func TestWeek_MondayAnchor(t *testing.T) {
	w := ForWeek(date(2024, time.March, 11))
	start, end := w.Bounds()
	if got := start.Format("2006-01-02"); got != "2024-03-11" {
		t.Errorf("week start = %s, want 2024-03-11", got)
	}
	if got := end.Format("2006-01-02"); got != "2024-03-17" {
		t.Errorf("week end = %s, want 2024-03-17", got)
	}
}
