package api

import (
	"net/http"

	"github.com/dzahariev/hellocafe/common"
)

// Assortment lists the drinks of the catalog in catalog order
func (server *Server) Assortment(w http.ResponseWriter, r *http.Request) {
	logger := common.GetLogger(r.Context())
	assortment := server.Catalog.Assortment()
	logger.Debug("Assortment retrieved successfully", "count", len(assortment))
	JSON(w, http.StatusOK, assortment)
}
