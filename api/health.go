package api

import (
	"net/http"
)

// Health reports that the process is serving
func (server *Server) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
