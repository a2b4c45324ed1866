package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type SortTableRequest struct {
	Column    string `json:"column"`
	Direction string `json:"direction,omitempty"`
}

func GetTable(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := service.Table(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar tabela")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}

// SortTable aplica um clique no cabeçalho da coluna informada ou fixa a direção enviada
func SortTable(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request SortTableRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		if request.Column == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "column é obrigatório", nil)
			return
		}

		payload, err := service.SortTable(r.Context(), sessionID(r), request.Column, request.Direction)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao ordenar tabela")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}
