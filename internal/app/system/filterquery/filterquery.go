// Package filterquery parses the shared board filter controls (time window,
// category, search, refinement) out of request query parameters. The board,
// calendar, and report endpoints all accept the same controls.
package filterquery

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/domain/grouping"
	"github.com/dalemusser/incharge/internal/domain/window"
	"github.com/dalemusser/waffle/pantry/query"
)

const isoDay = "2006-01-02"

// ParseWindow reads mode/month/date query parameters into a Window.
//
//	mode=month&month=2024-03        (default mode; month defaults to now)
//	mode=week&date=2024-03-15
//	mode=day&date=2024-03-15
func ParseWindow(r *http.Request) (window.Window, error) {
	mode := normalize.QueryParam(query.Get(r, "mode"))
	switch window.Mode(mode) {
	case window.Day, window.Week:
		raw := normalize.QueryParam(query.Get(r, "date"))
		d, err := time.ParseInLocation(isoDay, raw, time.Local)
		if err != nil {
			return window.Window{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
		}
		if window.Mode(mode) == window.Day {
			return window.ForDay(d), nil
		}
		return window.ForWeek(d), nil
	case window.Month, "":
		key := normalize.QueryParam(query.Get(r, "month"))
		if key == "" {
			key = time.Now().Format("2006-01")
		}
		if _, err := time.Parse("2006-01", key); err != nil {
			return window.Window{}, fmt.Errorf("invalid month %q: want YYYY-MM", key)
		}
		return window.ForMonth(key), nil
	}
	return window.Window{}, fmt.Errorf("invalid mode %q: want month, week, or day", mode)
}

// ParseFilter reads the full board filter: window plus category, search, and
// department/status refinement.
func ParseFilter(r *http.Request) (grouping.Filter, error) {
	win, err := ParseWindow(r)
	if err != nil {
		return grouping.Filter{}, err
	}

	f := grouping.Filter{
		Window:     win,
		Category:   grouping.Category(normalize.Status(query.Get(r, "category"))),
		Search:     normalize.QueryParam(query.Get(r, "q")),
		Department: normalize.Department(query.Get(r, "department")),
		Status:     normalize.Status(query.Get(r, "status")),
	}

	switch f.Category {
	case "", grouping.CategoryAll, grouping.CategoryAssigned, grouping.CategoryPending,
		grouping.CategoryVideo, grouping.CategoryGraphics, grouping.CategorySocialMedia:
	default:
		return grouping.Filter{}, fmt.Errorf("invalid category %q", f.Category)
	}

	return f, nil
}
