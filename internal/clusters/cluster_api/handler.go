package cluster_api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studio-backoffice/internal/analytics"
	"studio-backoffice/internal/clusters/db"
	"studio-backoffice/internal/utils"
)

type Handler struct {
	DB *db.DB
}

func NewHandler(clusterDB *db.DB) *Handler {
	return &Handler{DB: clusterDB}
}

func writeJSON(w http.ResponseWriter, status int, body utils.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// GetClusterCost answers with the cluster's displayed total: the explicit
// override when set, the component sum otherwise.
func (h *Handler) GetClusterCost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cluster, err := h.DB.GetClusterByID(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, utils.ErrorResponse("Cluster not found", id))
		return
	}

	total := analytics.DeriveTotal(cluster.TotalCost, cluster.LogisticsCost, cluster.PermitCost, cluster.CrewCost)
	writeJSON(w, http.StatusOK, utils.SuccessResponse("Cluster cost", map[string]interface{}{
		"id":         cluster.ID,
		"name":       cluster.Name,
		"total_cost": total,
		"overridden": cluster.TotalCost != nil,
	}))
}
