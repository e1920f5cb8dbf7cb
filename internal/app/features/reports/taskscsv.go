// internal/app/features/reports/taskscsv.go
package reports

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/filterquery"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/grouping"
	"github.com/dalemusser/incharge/internal/domain/reportrows"
	"go.uber.org/zap"
)

// ServeTasksCSV handles GET /reports/tasks.csv and streams the filtered task
// listing. It accepts the same window/category/search parameters as the
// production board; the export is the flattened, unpaginated form of the
// same derivation.
func (h *Handler) ServeTasksCSV(w http.ResponseWriter, r *http.Request) {
	f, err := filterquery.ParseFilter(r)
	if err != nil {
		apierr.Validation(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	clients, err := h.Clients.ListAll(ctx)
	if err != nil {
		h.Log.Error("tasks CSV: list clients failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	tasks, err := h.Tasks.ListAll(ctx)
	if err != nil {
		h.Log.Error("tasks CSV: list tasks failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	groups := grouping.Derive(tasks, clients, f)
	rows := reportrows.FromGroups(groups)

	exp := csvExporter{}
	filename := exportFilenameFromQuery(r, "tasks", exp.Ext())

	w.Header().Set("Content-Type", exp.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	if err := exp.Export(w, reportrows.Columns, rows); err != nil {
		// Headers are gone by now; log and give up on the stream.
		h.Log.Error("tasks CSV: write failed", zap.Error(err))
		return
	}

	h.Log.Info("tasks CSV exported", zap.Int("rows", len(rows)))
}

// exportFilenameFromQuery returns a sanitized export filename based on the
// "filename" query param, or a timestamped default.
func exportFilenameFromQuery(r *http.Request, prefix, ext string) string {
	filename := strings.TrimSpace(r.URL.Query().Get("filename"))
	if filename == "" {
		filename = prefix + "_" + time.Now().UTC().Format("20060102_150405") + ext
	}
	if !strings.HasSuffix(strings.ToLower(filename), ext) {
		filename += ext
	}
	return filename
}
