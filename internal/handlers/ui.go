package handlers

import (
	"embed"
	"net/http"
)

//go:embed static/index.html
var staticFiles embed.FS

// UIHandler serves the embedded single-page report viewer at the root.
func UIHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "UI not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}
