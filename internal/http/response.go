package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"qrmenu-analytics/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// writeCSV sends a rendered export as a download.
func writeCSV(w http.ResponseWriter, r *http.Request, export *models.CSVExport) error {
	metricExportBytes.WithLabelValues(routePattern(r)).Observe(float64(len(export.Content)))

	w.Header().Set(headerContentType, "text/csv; charset=utf-8")
	w.Header().Set(headerContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, err := io.WriteString(w, export.Content)
	return err
}
