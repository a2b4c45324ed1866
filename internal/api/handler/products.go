package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
)

type ProductListResponse struct {
	DisplayState domain.DisplayState     `json:"displayState"`
	Products     []domain.ProductSummary `json:"products"`
}

func ListProducts(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, products, err := service.ListProducts(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, r, http.StatusOK, ProductListResponse{
			DisplayState: state,
			Products:     products,
		})
	})
}
