package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

type SelectProductRequest struct {
	ProductID string `json:"productId"`
}

// CreateSession abre uma sessão; sem productId o primeiro produto do catálogo é exibido
func CreateSession(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request SelectProductRequest
		if err := decodeBody(r, &request, true); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		state, err := service.CreateSession(r.Context(), request.ProductID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar sessão")
			return
		}

		writeJSON(w, r, http.StatusCreated, state)
	})
}

func GetSession(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state, err := service.GetSession(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar sessão")
			return
		}

		writeJSON(w, r, http.StatusOK, state)
	})
}

func SelectProduct(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request SelectProductRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		if request.ProductID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "productId é obrigatório", nil)
			return
		}

		state, err := service.SelectProduct(r.Context(), sessionID(r), request.ProductID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao selecionar produto")
			return
		}

		writeJSON(w, r, http.StatusOK, state)
	})
}
