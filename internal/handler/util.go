// Package handler provides HTTP handlers for the API.
package handler

import (
	"fmt"
	"net/http"
	"time"
)

// respond writes a plain-text envelope shaped status|payload|context.
func respond(w http.ResponseWriter, httpStatus int, status, payload, context string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(httpStatus)
	fmt.Fprintf(w, "%s|%s|%s", status, payload, context)
}

// respondSuccess writes a success envelope with HTTP 200.
func respondSuccess(w http.ResponseWriter, payload, context string) {
	respond(w, http.StatusOK, "success", payload, context)
}

// respondError writes an error envelope with the given HTTP status.
func respondError(w http.ResponseWriter, httpStatus int, code, context string) {
	respond(w, httpStatus, "error", code, context)
}

// formatTime renders a timestamp for record lines.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
