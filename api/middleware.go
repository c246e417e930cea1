package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dzahariev/hellocafe/common"
	"github.com/gofrs/uuid/v5"
)

// Middleware to add request_id logger into context
func loggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.Must(uuid.NewV4()).String()
		ctx := common.WithRequestLogger(r.Context(), reqID)
		w.Header().Set(common.RequestIDHeader, reqID)
		common.GetLogger(ctx).Debug("Request received", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContentTypeJSON set the content type to JSON
func ContentTypeJSON(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next(w, r)
	}
}

// JSON returns data as JSON stream
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// ERROR returns error as JSON representation
func ERROR(w http.ResponseWriter, statusCode int, err error) {
	JSON(w, statusCode, struct {
		Error string `json:"error"`
	}{
		Error: err.Error(),
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	common.GetLogger(r.Context()).Debug("Route not found", "method", r.Method, "path", r.URL.Path)
	ERROR(w, http.StatusNotFound, fmt.Errorf("no route for %s", r.URL.Path))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	common.GetLogger(r.Context()).Debug("Method not allowed", "method", r.Method, "path", r.URL.Path)
	ERROR(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed on %s", r.Method, r.URL.Path))
}
