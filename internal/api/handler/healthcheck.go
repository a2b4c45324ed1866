package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

// HealthcheckHandler responde o liveness junto com o estado do catálogo
func HealthcheckHandler(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, products, err := service.ListProducts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao consultar catálogo")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":   "ok",
			"time":     time.Now().Format(time.RFC3339),
			"catalog":  state,
			"products": len(products),
		})
	})
}
