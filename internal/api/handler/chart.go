package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-dashboard-api/infrastructure/renderer"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

type ResetZoomRequest struct {
	ProductID string `json:"productId"`
}

func GetChart(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := service.Chart(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar gráfico")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}

// GetChartImage desenha o viewport atual da sessão em PNG
func GetChartImage(service dashboard.Dashboarder, imageRenderer renderer.ChartImageRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := service.Chart(r.Context(), sessionID(r))
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar gráfico")
			return
		}

		image, err := imageRenderer.RenderPNG(*payload)
		if err != nil {
			var empty *domain.EmptySeriesError
			if errors.As(err, &empty) {
				apiErrors.WriteError(w, apiErrors.ErrRenderUnavailable, "Nada para desenhar no intervalo atual", map[string]string{
					"displayState": string(payload.DisplayState),
				})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("Erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar gráfico", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", strconv.Itoa(len(image)))
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		w.Write(image)
	})
}

func PanChart(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request dashboard.PanRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		payload, err := service.Pan(r.Context(), sessionID(r), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao deslocar gráfico")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}

func ZoomChart(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request dashboard.ZoomRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		payload, err := service.Zoom(r.Context(), sessionID(r), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao aplicar zoom")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}

func ResetChartZoom(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request ResetZoomRequest
		if err := decodeBody(r, &request, false); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		payload, err := service.ResetZoom(r.Context(), sessionID(r), request.ProductID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao restaurar zoom")
			return
		}

		writeJSON(w, r, http.StatusOK, payload)
	})
}
