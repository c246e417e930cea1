package api

import (
	"net/http"

	"github.com/dzahariev/hellocafe/common"
)

const Greeting = "Welcome to our awesome cafe!"

// Home is an API root route controller
func (server *Server) Home(w http.ResponseWriter, r *http.Request) {
	logger := common.GetLogger(r.Context())
	logger.Debug("Home request received")
	JSON(w, http.StatusOK, Greeting)
}
